package agent

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/haulflow/freightdesk/pkg/llm"
)

// Router selects which agent handles an incoming message. An explicit
// override always wins; otherwise a single deterministic classification
// call decides, with docs as the fallback on any failure.
type Router struct {
	call   llm.CallFunc
	logger *zap.Logger
}

// NewRouter creates a router over the given completion caller.
func NewRouter(call llm.CallFunc, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{call: call, logger: logger}
}

// Decision is the routing outcome.
type Decision struct {
	Agent Kind `json:"agent"`

	// Reason is the classifier's stated rationale, empty for overrides
	// and fallbacks. Surfaced only as debug metadata.
	Reason string `json:"reason,omitempty"`
}

// Route picks the agent for a message. Route never fails: anything it
// cannot classify goes to the docs agent.
func (r *Router) Route(ctx context.Context, override, message string) Decision {
	if kind, ok := ParseKind(override); ok {
		return Decision{Agent: kind, Reason: "explicit override"}
	}

	if strings.TrimSpace(message) == "" {
		return Decision{Agent: KindDocs}
	}

	raw, err := r.call(ctx, llm.CallRequest{
		System:     routerSystemPrompt,
		Messages:   []llm.Message{llm.NewUserMessage(message)},
		JSONObject: true,
	})
	if err != nil {
		r.logger.Warn("routing classification failed", zap.Error(err))
		return Decision{Agent: KindDocs}
	}

	var decision struct {
		Agent  string `json:"agent"`
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal([]byte(raw), &decision); err != nil {
		r.logger.Warn("routing classification malformed", zap.String("raw", raw))
		return Decision{Agent: KindDocs}
	}

	kind, ok := ParseKind(strings.ToLower(strings.TrimSpace(decision.Agent)))
	if !ok {
		r.logger.Warn("routing classification unknown agent", zap.String("agent", decision.Agent))
		return Decision{Agent: KindDocs}
	}

	return Decision{Agent: kind, Reason: decision.Reason}
}
