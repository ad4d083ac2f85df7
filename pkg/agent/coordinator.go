package agent

import (
	"context"

	"go.uber.org/zap"
)

// Coordinator routes a request to its agent and shields the transport
// from agent failures. Agents are constructed once at startup and
// injected; there is no runtime registration.
type Coordinator struct {
	router *Router
	agents map[Kind]Agent
	logger *zap.Logger
}

// NewCoordinator creates a coordinator over the given agents.
func NewCoordinator(router *Router, agents []Agent, logger *zap.Logger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	byKind := make(map[Kind]Agent, len(agents))
	for _, a := range agents {
		byKind[a.Kind()] = a
	}
	return &Coordinator{router: router, agents: byKind, logger: logger}
}

// Process handles one chat turn. It never returns an error: routing
// failures fall back to docs, a missing handler or a failing agent both
// degrade to a fixed assistant message.
func (c *Coordinator) Process(ctx context.Context, override string, req *Request) (*Response, Decision) {
	decision := c.router.Route(ctx, override, req.Message)

	handler, ok := c.agents[decision.Agent]
	if !ok {
		c.logger.Error("no handler for routed agent", zap.String("agent", string(decision.Agent)))
		return newAssistantResponse(decision.Agent, unavailableMessage), decision
	}

	resp, err := handler.Process(ctx, req)
	if err != nil {
		c.logger.Error("agent failed",
			zap.String("agent", string(decision.Agent)),
			zap.Error(err))
		return newAssistantResponse(decision.Agent, apologyMessage), decision
	}

	return resp, decision
}
