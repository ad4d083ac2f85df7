package agent

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/haulflow/freightdesk/pkg/embeddings"
	"github.com/haulflow/freightdesk/pkg/llm"
	"github.com/haulflow/freightdesk/pkg/vector"
)

// supportTopK is the retrieval depth for support-article matching.
const supportTopK = 3

// SupportAgent handles problem reports. It grounds its answer on matched
// support articles and separately classifies whether a human should take
// over, surfacing that as response metadata.
type SupportAgent struct {
	call     llm.CallFunc
	embedder embeddings.Embedder
	articles vector.Driver
	logger   *zap.Logger
}

// NewSupportAgent creates a support agent.
func NewSupportAgent(call llm.CallFunc, embedder embeddings.Embedder, articles vector.Driver, logger *zap.Logger) *SupportAgent {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SupportAgent{call: call, embedder: embedder, articles: articles, logger: logger}
}

func (a *SupportAgent) Kind() Kind { return KindSupport }

func (a *SupportAgent) Process(ctx context.Context, req *Request) (*Response, error) {
	var results []vector.QueryResult
	if a.embedder != nil && a.articles != nil {
		var err error
		results, err = retrieve(ctx, a.embedder, a.articles, req.Message, supportTopK)
		if err != nil {
			a.logger.Warn("support retrieval failed", zap.Error(err))
		}
	}

	messages := append(llm.RecentWindow(req.History), llm.NewUserMessage(req.Message))
	text, err := a.call(ctx, llm.CallRequest{
		System:      supportSystemPrompt + "\n\n" + contextBlock(results),
		Messages:    messages,
		Temperature: 0.4,
	})
	if err != nil {
		return nil, err
	}

	resp := newAssistantResponse(KindSupport, text)
	resp.Sources = sourcesOf(results)
	resp.Escalate = a.shouldEscalate(ctx, req.Message)
	return resp, nil
}

// shouldEscalate runs a zero-temperature classification over the user's
// message. A failed or malformed classification means no escalation.
func (a *SupportAgent) shouldEscalate(ctx context.Context, message string) bool {
	raw, err := a.call(ctx, llm.CallRequest{
		System:     escalationPrompt,
		Messages:   []llm.Message{llm.NewUserMessage(message)},
		JSONObject: true,
	})
	if err != nil {
		a.logger.Warn("escalation classification failed", zap.Error(err))
		return false
	}

	var decision struct {
		Escalate bool `json:"escalate"`
	}
	if err := json.Unmarshal([]byte(raw), &decision); err != nil {
		a.logger.Warn("escalation classification malformed", zap.String("raw", raw))
		return false
	}
	return decision.Escalate
}
