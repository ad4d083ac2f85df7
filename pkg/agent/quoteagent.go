package agent

import (
	"context"

	"github.com/haulflow/freightdesk/pkg/quote"
)

// QuoteAgent runs the deterministic quoting conversation. It makes no
// completion calls: every reply comes from the state machine.
type QuoteAgent struct {
	machine *quote.Machine
}

// NewQuoteAgent creates a quote agent over the given machine.
func NewQuoteAgent(machine *quote.Machine) *QuoteAgent {
	return &QuoteAgent{machine: machine}
}

func (a *QuoteAgent) Kind() Kind { return KindQuote }

func (a *QuoteAgent) Process(ctx context.Context, req *Request) (*Response, error) {
	reply := a.machine.Advance(ctx, req.Quote, req.Customer.ID, req.Message)

	resp := newAssistantResponse(KindQuote, reply.Text)
	resp.Quote = reply.State
	return resp, nil
}
