// Package llm provides provider-agnostic chat types and a completion caller
// used by the agents and the router.
package llm

import "time"

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// recentWindow is the number of trailing messages forwarded to the
// completion provider. Full history is preserved by the caller for display
// but only the tail is sent downstream.
const recentWindow = 10

// Message represents a single message in a conversation.
type Message struct {
	Role     string    `json:"role"`
	Content  string    `json:"content"`
	Metadata *Metadata `json:"metadata,omitempty"`
}

// Metadata carries side-channel information attached to a message.
type Metadata struct {
	Timestamp time.Time `json:"timestamp,omitzero"`
	AgentID   string    `json:"agentId,omitempty"`
	Sources   []string  `json:"sources,omitempty"`
	Context   string    `json:"context,omitempty"`
}

// NewUserMessage creates a user-role message.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// NewAssistantMessage creates an assistant-role message.
func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// LastUserMessage returns the content of the most recent user message,
// or the empty string if there is none.
func LastUserMessage(history []Message) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == RoleUser {
			return history[i].Content
		}
	}
	return ""
}

// RecentWindow returns the trailing window of history sent to the provider.
func RecentWindow(history []Message) []Message {
	if len(history) <= recentWindow {
		return history
	}
	return history[len(history)-recentWindow:]
}
