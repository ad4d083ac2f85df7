package agent

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/haulflow/freightdesk/pkg/llm"
)

type cannedAgent struct {
	kind Kind
	text string
	err  error
}

func (a *cannedAgent) Kind() Kind { return a.kind }

func (a *cannedAgent) Process(_ context.Context, _ *Request) (*Response, error) {
	if a.err != nil {
		return nil, a.err
	}
	return newAssistantResponse(a.kind, a.text), nil
}

var _ = Describe("Coordinator", func() {
	ctx := context.Background()

	It("dispatches to the routed agent", func() {
		router := NewRouter(fixedCaller(`{"agent": "support"}`), nil)
		coordinator := NewCoordinator(router, []Agent{
			&cannedAgent{kind: KindSupport, text: "try clearing the cache"},
			&cannedAgent{kind: KindDocs, text: "see the manual"},
		}, nil)

		resp, decision := coordinator.Process(ctx, "", &Request{Message: "uploads keep failing"})
		Expect(decision.Agent).To(Equal(KindSupport))
		Expect(resp.Message.Role).To(Equal(llm.RoleAssistant))
		Expect(resp.Message.Content).To(Equal("try clearing the cache"))
	})

	It("converts an agent failure into an apology message", func() {
		router := NewRouter(fixedCaller(`{"agent": "docs"}`), nil)
		coordinator := NewCoordinator(router, []Agent{
			&cannedAgent{kind: KindDocs, err: fmt.Errorf("completion failed")},
		}, nil)

		resp, _ := coordinator.Process(ctx, "", &Request{Message: "how do pallets work?"})
		Expect(resp.Message.Content).To(Equal(apologyMessage))
		Expect(resp.Message.Role).To(Equal(llm.RoleAssistant))
	})

	It("answers with a fixed message when no handler is registered", func() {
		router := NewRouter(fixedCaller(`{"agent": "shipments"}`), nil)
		coordinator := NewCoordinator(router, []Agent{
			&cannedAgent{kind: KindDocs, text: "see the manual"},
		}, nil)

		resp, decision := coordinator.Process(ctx, "", &Request{Message: "where is SHP-1?"})
		Expect(decision.Agent).To(Equal(KindShipments))
		Expect(resp.Message.Content).To(Equal(unavailableMessage))
	})
})
