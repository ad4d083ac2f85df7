package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	providerOpenAI    = "openai"
	providerAnthropic = "anthropic"
	providerOllama    = "ollama"
)

const callTimeout = 30 * time.Second

// CallRequest is a single completion call.
type CallRequest struct {
	// System is the role-specific system prompt prepended to the call.
	System string

	// Messages is the conversation window. Callers should pass the output of
	// RecentWindow rather than full history.
	Messages []Message

	// Temperature for generation. Zero for deterministic classification calls.
	Temperature float64

	// JSONObject requests a JSON object response where the provider supports it.
	JSONObject bool
}

// CallFunc performs a completion call and returns the assistant text.
type CallFunc func(ctx context.Context, req CallRequest) (string, error)

// CallerConfig holds configuration for creating a completion caller.
type CallerConfig struct {
	Provider string // "openai", "anthropic", or "ollama"
	Model    string // e.g. "gpt-4o-mini", "claude-haiku-4-5", "llama3.2"
	APIKey   string // explicit API key (highest priority)
	BaseURL  string // override base URL
}

// NewCaller creates a CallFunc based on the provided configuration.
// API key resolution order: explicit APIKey, then environment variables
// (OPENAI_API_KEY / ANTHROPIC_API_KEY). If no key can be resolved and the
// provider is not explicitly ollama, the caller falls back to Ollama at
// localhost:11434.
func NewCaller(cfg CallerConfig) (CallFunc, error) {
	provider := strings.ToLower(cfg.Provider)
	model := cfg.Model

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = resolveAPIKeyFromEnv(provider)
	}

	if apiKey == "" && provider != providerOllama {
		provider = providerOllama
	}

	switch provider {
	case providerOpenAI, "":
		if model == "" {
			model = "gpt-4o-mini"
		}
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "https://api.openai.com"
		}
		return newOpenAICaller(apiKey, model, baseURL), nil

	case providerAnthropic:
		if model == "" {
			model = "claude-haiku-4-5"
		}
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "https://api.anthropic.com"
		}
		return newAnthropicCaller(apiKey, model, baseURL), nil

	case providerOllama:
		if model == "" {
			model = "llama3.2"
		}
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return newOllamaCaller(model, baseURL), nil

	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
}

func resolveAPIKeyFromEnv(provider string) string {
	switch provider {
	case providerAnthropic:
		return os.Getenv("ANTHROPIC_API_KEY")
	case providerOpenAI, "":
		return os.Getenv("OPENAI_API_KEY")
	default:
		if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			return key
		}
		return os.Getenv("ANTHROPIC_API_KEY")
	}
}

// --- OpenAI caller ---

type openAIRequest struct {
	Model          string            `json:"model"`
	Messages       []openAIMessage   `json:"messages"`
	Temperature    float64           `json:"temperature"`
	ResponseFormat *openAIRespFormat `json:"response_format,omitempty"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRespFormat struct {
	Type string `json:"type"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func newOpenAICaller(apiKey, model, baseURL string) CallFunc {
	return func(ctx context.Context, call CallRequest) (string, error) {
		messages := make([]openAIMessage, 0, len(call.Messages)+1)
		if call.System != "" {
			messages = append(messages, openAIMessage{Role: RoleSystem, Content: call.System})
		}
		for _, m := range call.Messages {
			messages = append(messages, openAIMessage{Role: m.Role, Content: m.Content})
		}

		reqBody := openAIRequest{
			Model:       model,
			Messages:    messages,
			Temperature: call.Temperature,
		}
		if call.JSONObject {
			reqBody.ResponseFormat = &openAIRespFormat{Type: "json_object"}
		}

		data, err := json.Marshal(reqBody)
		if err != nil {
			return "", fmt.Errorf("marshal request: %w", err)
		}

		body, err := postJSON(ctx, baseURL+"/v1/chat/completions", data, map[string]string{
			"Authorization": "Bearer " + apiKey,
		})
		if err != nil {
			return "", err
		}

		var resp openAIResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return "", fmt.Errorf("decode response: %w", err)
		}
		if resp.Error != nil {
			return "", fmt.Errorf("openai: %s", resp.Error.Message)
		}
		if len(resp.Choices) == 0 {
			return "", errors.New("openai: empty choices")
		}
		return resp.Choices[0].Message.Content, nil
	}
}

// --- Anthropic caller ---

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
	Temperature float64            `json:"temperature"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func newAnthropicCaller(apiKey, model, baseURL string) CallFunc {
	return func(ctx context.Context, call CallRequest) (string, error) {
		messages := make([]anthropicMessage, 0, len(call.Messages))
		for _, m := range call.Messages {
			// Anthropic takes the system prompt as a top-level field.
			if m.Role == RoleSystem {
				continue
			}
			messages = append(messages, anthropicMessage{Role: m.Role, Content: m.Content})
		}

		reqBody := anthropicRequest{
			Model:       model,
			MaxTokens:   1024,
			System:      call.System,
			Messages:    messages,
			Temperature: call.Temperature,
		}

		data, err := json.Marshal(reqBody)
		if err != nil {
			return "", fmt.Errorf("marshal request: %w", err)
		}

		body, err := postJSON(ctx, baseURL+"/v1/messages", data, map[string]string{
			"x-api-key":         apiKey,
			"anthropic-version": "2023-06-01",
		})
		if err != nil {
			return "", err
		}

		var resp anthropicResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return "", fmt.Errorf("decode response: %w", err)
		}
		if resp.Error != nil {
			return "", fmt.Errorf("anthropic: %s", resp.Error.Message)
		}
		if len(resp.Content) == 0 {
			return "", errors.New("anthropic: empty content")
		}
		return resp.Content[0].Text, nil
	}
}

// --- Ollama caller ---

type ollamaRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Format   string          `json:"format,omitempty"`
	Options  ollamaOptions   `json:"options"`
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
}

type ollamaResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
	Error string `json:"error,omitempty"`
}

func newOllamaCaller(model, baseURL string) CallFunc {
	return func(ctx context.Context, call CallRequest) (string, error) {
		messages := make([]ollamaMessage, 0, len(call.Messages)+1)
		if call.System != "" {
			messages = append(messages, ollamaMessage{Role: RoleSystem, Content: call.System})
		}
		for _, m := range call.Messages {
			messages = append(messages, ollamaMessage{Role: m.Role, Content: m.Content})
		}

		reqBody := ollamaRequest{
			Model:    model,
			Messages: messages,
			Stream:   false,
			Options:  ollamaOptions{Temperature: call.Temperature},
		}
		if call.JSONObject {
			reqBody.Format = "json"
		}

		data, err := json.Marshal(reqBody)
		if err != nil {
			return "", fmt.Errorf("marshal request: %w", err)
		}

		body, err := postJSON(ctx, baseURL+"/api/chat", data, nil)
		if err != nil {
			return "", err
		}

		var resp ollamaResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return "", fmt.Errorf("decode response: %w", err)
		}
		if resp.Error != "" {
			return "", fmt.Errorf("ollama: %s", resp.Error)
		}
		return resp.Message.Content, nil
	}
}

func postJSON(ctx context.Context, url string, data []byte, headers map[string]string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
