package quote

import (
	"context"
	"fmt"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/haulflow/freightdesk/pkg/geo"
	"github.com/haulflow/freightdesk/pkg/pricing"
	"github.com/haulflow/freightdesk/pkg/storage/inmemory"
)

// stubGeocoder resolves any address to a canned place keyed by a
// substring of the query.
type stubGeocoder struct {
	places map[string]*geo.Place
}

func (g *stubGeocoder) Geocode(_ context.Context, address string) (*geo.Place, error) {
	for key, place := range g.places {
		if strings.Contains(strings.ToLower(address), key) {
			return place, nil
		}
	}
	return nil, nil
}

type stubRouter struct {
	route *geo.Route
}

func (r *stubRouter) Route(_ context.Context, _, _ geo.Coordinates) (*geo.Route, error) {
	return r.route, nil
}

var _ = Describe("Machine", func() {
	var (
		machine *Machine
		store   *inmemory.Store
		ctx     context.Context
	)

	berlin := &geo.Place{
		Coordinates:      geo.Coordinates{Lat: 52.52, Lon: 13.405},
		City:             "Berlin",
		FormattedAddress: "Berlin, Germany",
	}
	munich := &geo.Place{
		Coordinates:      geo.Coordinates{Lat: 48.1351, Lon: 11.582},
		City:             "Munich",
		FormattedAddress: "Munich, Germany",
	}

	BeforeEach(func() {
		ctx = context.Background()
		store = inmemory.NewStore()

		machine = NewMachine(Config{
			Geocoder: &stubGeocoder{places: map[string]*geo.Place{
				"berlin": berlin,
				"munich": munich,
			}},
			Router: &stubRouter{route: &geo.Route{
				Distance: geo.Distance{Kilometers: 585, Miles: 363.5},
				Duration: geo.Duration{Minutes: 420, Hours: 7},
			}},
			Quotes: store,
		})
	})

	send := func(state *State, message string) *Reply {
		return machine.Advance(ctx, state, "cust-1", message)
	}

	It("walks a complete conversation through to a created quote", func() {
		reply := send(NewState(), "I'd like a shipping quote")
		Expect(reply.State.Step).To(Equal(StepPackageDetails))

		reply = send(reply.State, "full truckload, 10 tons, 40 m3")
		Expect(reply.State.Step).To(Equal(StepAddresses))
		Expect(reply.State.Package).NotTo(BeNil())

		reply = send(reply.State, "from Berlin to Munich")
		Expect(reply.State.Step).To(Equal(StepServiceSelection))
		Expect(reply.State.Options).To(HaveLen(3))
		Expect(reply.State.Route.Distance.Kilometers).To(Equal(585.0))

		reply = send(reply.State, "standard please")
		Expect(reply.State.Step).To(Equal(StepConfirmation))
		Expect(reply.State.SelectedService).To(Equal(pricing.StandardFreight))
		Expect(reply.State.Price).To(BeNumerically(">", 0))

		reply = send(reply.State, "yes")
		Expect(reply.State.Step).To(Equal(StepCreated))
		Expect(reply.State.QuoteID).NotTo(BeEmpty())
		// Long-distance quotes round up to the nearest 1000.
		Expect(reply.State.Price % 1000).To(BeZero())

		stored, err := store.GetQuote(ctx, reply.State.QuoteID)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.CustomerID).To(Equal("cust-1"))
		Expect(stored.Service).To(Equal("standard_freight"))
		Expect(stored.Price).To(Equal(reply.State.Price))
		Expect(stored.DeliveryBy.After(stored.PickupDate)).To(BeTrue())
	})

	It("re-prompts without advancing when package extraction fails", func() {
		reply := send(NewState(), "hello")
		// Weight and volume are missing: the extractor is all-or-nothing.
		reply = send(reply.State, "full truckload, 5 tons")
		Expect(reply.State.Step).To(Equal(StepPackageDetails))
		Expect(reply.State.Package).To(BeNil())
	})

	It("re-prompts without advancing on an unparseable address pair", func() {
		reply := send(NewState(), "quote please")
		reply = send(reply.State, "full truckload, 10 tons, 40 m3")
		reply = send(reply.State, "just ship it somewhere")
		Expect(reply.State.Step).To(Equal(StepAddresses))
		Expect(reply.State.Pickup).To(BeNil())
	})

	It("stays at service selection on an unrecognized tier", func() {
		state := conversationAt(machine, ctx, StepServiceSelection)
		reply := send(state, "the purple one")
		Expect(reply.State.Step).To(Equal(StepServiceSelection))
		Expect(reply.State.SelectedService).To(BeEmpty())
	})

	It("stays at confirmation on an unclear answer", func() {
		state := conversationAt(machine, ctx, StepConfirmation)
		reply := send(state, "maybe later")
		Expect(reply.State.Step).To(Equal(StepConfirmation))
	})

	It("cancels from any mid-flow step", func() {
		state := conversationAt(machine, ctx, StepAddresses)
		reply := send(state, "actually, cancel that")
		Expect(reply.State.Step).To(Equal(StepCancelled))
		Expect(reply.State.Package).To(BeNil())
	})

	It("declines to create when confirmation arrives with missing data", func() {
		state := &State{Step: StepConfirmation, SelectedService: pricing.StandardFreight}
		reply := send(state, "yes")
		Expect(reply.State.Step).To(Equal(StepInitial))
		Expect(reply.State.QuoteID).To(BeEmpty())

		quotes, err := store.ListQuotes(ctx, "cust-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(quotes).To(BeEmpty())
	})

	It("declines the quote on a no", func() {
		state := conversationAt(machine, ctx, StepConfirmation)
		reply := send(state, "no thanks")
		Expect(reply.State.Step).To(Equal(StepCancelled))

		quotes, err := store.ListQuotes(ctx, "cust-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(quotes).To(BeEmpty())
	})

	It("starts over after a terminal step", func() {
		state := conversationAt(machine, ctx, StepConfirmation)
		reply := send(state, "yes")
		Expect(reply.State.Step).To(Equal(StepCreated))

		reply = send(reply.State, "I need another quote")
		Expect(reply.State.Step).To(Equal(StepPackageDetails))
		Expect(reply.State.QuoteID).To(BeEmpty())
	})

	It("sets service and price together from the presented options", func() {
		state := conversationAt(machine, ctx, StepServiceSelection)
		var expected int64
		for _, opt := range state.Options {
			if opt.Service == pricing.EcoFreight {
				expected = opt.Price
			}
		}

		reply := send(state, "eco is fine")
		Expect(reply.State.SelectedService).To(Equal(pricing.EcoFreight))
		Expect(reply.State.Price).To(Equal(expected))
	})

	It("falls back to a great-circle route when the router errors", func() {
		failing := NewMachine(Config{
			Geocoder: &stubGeocoder{places: map[string]*geo.Place{
				"berlin": berlin,
				"munich": munich,
			}},
			Router: &erroringRouter{},
			Quotes: store,
		})

		reply := failing.Advance(ctx, NewState(), "cust-1", "quote")
		reply = failing.Advance(ctx, reply.State, "cust-1", "full truckload, 10 tons, 40 m3")
		reply = failing.Advance(ctx, reply.State, "cust-1", "from Berlin to Munich")

		Expect(reply.State.Step).To(Equal(StepServiceSelection))
		Expect(reply.State.Route.Approximate).To(BeTrue())
		// Berlin to Munich is roughly 500 km great-circle.
		Expect(reply.State.Route.Distance.Kilometers).To(BeNumerically("~", 504, 10))
	})
})

type erroringRouter struct{}

func (r *erroringRouter) Route(_ context.Context, _, _ geo.Coordinates) (*geo.Route, error) {
	return nil, fmt.Errorf("routing service unavailable")
}

// conversationAt drives a fresh conversation up to the given step.
func conversationAt(m *Machine, ctx context.Context, step Step) *State {
	messages := []struct {
		step Step
		text string
	}{
		{StepPackageDetails, "I need a quote"},
		{StepAddresses, "full truckload, 10 tons, 40 m3"},
		{StepServiceSelection, "from Berlin to Munich"},
		{StepConfirmation, "standard"},
	}

	state := NewState()
	for _, msg := range messages {
		if state.Step == step {
			return state
		}
		reply := m.Advance(ctx, state, "cust-1", msg.text)
		state = reply.State
	}
	return state
}
