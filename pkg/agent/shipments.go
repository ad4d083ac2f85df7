package agent

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/haulflow/freightdesk/pkg/llm"
)

// ShipmentsAgent answers tracking questions against the shipment records
// the caller attached to the request. It never looks shipments up itself.
type ShipmentsAgent struct {
	call   llm.CallFunc
	logger *zap.Logger
}

// NewShipmentsAgent creates a shipments agent.
func NewShipmentsAgent(call llm.CallFunc, logger *zap.Logger) *ShipmentsAgent {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ShipmentsAgent{call: call, logger: logger}
}

func (a *ShipmentsAgent) Kind() Kind { return KindShipments }

func (a *ShipmentsAgent) Process(ctx context.Context, req *Request) (*Response, error) {
	messages := append(llm.RecentWindow(req.History), llm.NewUserMessage(req.Message))
	text, err := a.call(ctx, llm.CallRequest{
		System:      shipmentsSystemPrompt + "\n\n" + shipmentBlock(req.Shipments),
		Messages:    messages,
		Temperature: 0.2,
	})
	if err != nil {
		return nil, err
	}

	return newAssistantResponse(KindShipments, text), nil
}

func shipmentBlock(shipments []Shipment) string {
	if len(shipments) == 0 {
		return "The customer has no shipments on their account."
	}

	var sb strings.Builder
	sb.WriteString("Shipments on the customer's account:\n")
	for _, s := range shipments {
		fmt.Fprintf(&sb, "- %s: %s", s.ID, s.Status)
		if s.Origin != "" && s.Destination != "" {
			fmt.Fprintf(&sb, ", %s to %s", s.Origin, s.Destination)
		}
		if !s.ETA.IsZero() {
			fmt.Fprintf(&sb, ", ETA %s", s.ETA.Format("Mon, Jan 2"))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
