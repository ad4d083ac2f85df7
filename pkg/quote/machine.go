package quote

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/haulflow/freightdesk/pkg/eventstream"
	"github.com/haulflow/freightdesk/pkg/extract"
	"github.com/haulflow/freightdesk/pkg/geo"
	"github.com/haulflow/freightdesk/pkg/pricing"
	"github.com/haulflow/freightdesk/pkg/storage"
)

// rushThresholdHours marks a route as rush delivery when its estimated
// duration is below it. Rush is derived from the route, never
// user-specified.
const rushThresholdHours = 24

// Machine drives the quote conversation. It is stateless across requests:
// all per-conversation state lives in the State the caller passes in.
type Machine struct {
	rates     pricing.RateTable
	geocoder  geo.Geocoder
	router    geo.Router
	quotes    storage.QuoteStore
	publisher eventstream.Publisher
	logger    *zap.Logger
}

// Config holds the machine's collaborators.
type Config struct {
	// Rates is the pricing table. Defaults to pricing.DefaultRates().
	Rates pricing.RateTable

	// Geocoder resolves addresses. Optional: without one, endpoints keep
	// only their extracted text and routing uses the fallback.
	Geocoder geo.Geocoder

	// Router computes routes. Optional: the great-circle fallback covers
	// its absence.
	Router geo.Router

	// Quotes persists confirmed quote requests.
	Quotes storage.QuoteStore

	// Publisher announces created quotes downstream. Optional: publish
	// failures are logged, never surfaced to the user.
	Publisher eventstream.Publisher

	// Logger is the zap logger.
	Logger *zap.Logger
}

// NewMachine creates a quote machine.
func NewMachine(cfg Config) *Machine {
	rates := cfg.Rates
	if rates == nil {
		rates = pricing.DefaultRates()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Machine{
		rates:     rates,
		geocoder:  cfg.Geocoder,
		router:    cfg.Router,
		quotes:    cfg.Quotes,
		publisher: cfg.Publisher,
		logger:    logger,
	}
}

// Reply is the machine's answer for one turn.
type Reply struct {
	// Text is the assistant reply to stream to the user.
	Text string

	// State is the updated conversation state to carry into the next turn.
	State *State
}

// Advance runs one turn of the quote conversation. Extraction failures
// re-prompt without advancing; only explicit cancellation moves the step
// backwards. Advance never returns an error: provider and storage
// failures degrade to user-facing text with the state intact.
func (m *Machine) Advance(ctx context.Context, state *State, customerID, message string) *Reply {
	if state == nil {
		state = NewState()
	}

	lower := strings.ToLower(message)

	// Explicit cancellation resets from any non-terminal step.
	if strings.Contains(lower, "cancel") && state.Step != StepInitial {
		state.Reset()
		state.Step = StepCancelled
		return &Reply{Text: promptCancelled, State: state}
	}

	switch state.Step {
	case StepInitial, StepCreated, StepCancelled:
		// A terminal state starts a fresh conversation.
		state.Reset()
		state.Step = StepPackageDetails
		return &Reply{Text: promptPackageDetails, State: state}

	case StepPackageDetails:
		return m.advancePackageDetails(state, message)

	case StepAddresses:
		return m.advanceAddresses(ctx, state, message)

	case StepServiceSelection:
		return m.advanceServiceSelection(state, message)

	case StepConfirmation:
		return m.advanceConfirmation(ctx, state, customerID, lower)

	default:
		state.Reset()
		state.Step = StepPackageDetails
		return &Reply{Text: promptPackageDetails, State: state}
	}
}

func (m *Machine) advancePackageDetails(state *State, message string) *Reply {
	details := extract.PackageDetailsFromText(message)
	if details == nil {
		return &Reply{Text: promptPackageRetry, State: state}
	}

	state.Package = details
	state.Step = StepAddresses
	return &Reply{Text: promptAddresses, State: state}
}

func (m *Machine) advanceAddresses(ctx context.Context, state *State, message string) *Reply {
	pair := extract.ParseAddressPair(message)
	if pair == nil {
		return &Reply{Text: promptAddressRetry, State: state}
	}

	pickup, delivery := m.geocodePair(ctx, pair)
	if pickup.Place == nil || delivery.Place == nil {
		return &Reply{
			Text:  "I couldn't locate one of those addresses. Could you give me a bit more detail, like the city and state?",
			State: state,
		}
	}

	route := geo.RouteOrFallback(ctx, m.router, pickup.Place.Coordinates, delivery.Place.Coordinates)
	if route.Distance.Kilometers <= 0 {
		return &Reply{
			Text:  "Those two addresses resolve to the same location, so there's nothing to route. Please check the pickup and delivery addresses.",
			State: state,
		}
	}

	state.Pickup = &pickup
	state.Delivery = &delivery
	state.PickupWindow = pair.PickupWindow
	state.Route = route
	state.Options = m.serviceOptions(state)
	state.Step = StepServiceSelection

	return &Reply{Text: m.renderOptions(state), State: state}
}

// geocodePair geocodes both endpoints concurrently. A failed lookup
// leaves that endpoint's Place nil for the caller to re-prompt on.
func (m *Machine) geocodePair(ctx context.Context, pair *extract.AddressPair) (pickup, delivery Endpoint) {
	pickup = Endpoint{Address: pair.Pickup}
	delivery = Endpoint{Address: pair.Delivery}

	if m.geocoder == nil {
		return pickup, delivery
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if place, err := m.geocoder.Geocode(ctx, pair.Pickup.Raw); err == nil {
			pickup.Place = place
		} else {
			m.logger.Warn("pickup geocode failed", zap.Error(err))
		}
	}()
	go func() {
		defer wg.Done()
		if place, err := m.geocoder.Geocode(ctx, pair.Delivery.Raw); err == nil {
			delivery.Place = place
		} else {
			m.logger.Warn("delivery geocode failed", zap.Error(err))
		}
	}()
	wg.Wait()

	return pickup, delivery
}

// serviceOptions prices all three tiers against the accumulated package
// and route. Computed on entry to service selection.
func (m *Machine) serviceOptions(state *State) []ServiceOption {
	isRush := state.Route.Duration.Hours < rushThresholdHours

	options := make([]ServiceOption, 0, 3)
	for _, tier := range []pricing.ServiceType{pricing.ExpressFreight, pricing.StandardFreight, pricing.EcoFreight} {
		price, err := pricing.Price(m.rates, pricing.Input{
			Service:     tier,
			DistanceKm:  state.Route.Distance.Kilometers,
			VolumeM3:    state.volumeM3(),
			WeightTons:  state.weightTons(),
			PalletCount: state.palletCount(),
			IsRush:      isRush,
		})
		if err != nil {
			m.logger.Error("pricing failed", zap.String("service", string(tier)), zap.Error(err))
			continue
		}

		options = append(options, ServiceOption{
			Service:  tier,
			Price:    price,
			Estimate: pricing.EstimateDelivery(m.rates[tier], state.Route.Distance.Kilometers),
		})
	}
	return options
}

func (m *Machine) renderOptions(state *State) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "The route is %.1f km. Here are your service options:\n", state.Route.Distance.Kilometers)
	for _, opt := range state.Options {
		fmt.Fprintf(&sb, "- %s: $%d, %s\n", serviceLabel(opt.Service), opt.Price, opt.Estimate.Text)
	}
	sb.WriteString("Which service level would you like: express, standard, or eco?")
	return sb.String()
}

func serviceLabel(service pricing.ServiceType) string {
	switch service {
	case pricing.ExpressFreight:
		return "Express Freight"
	case pricing.StandardFreight:
		return "Standard Freight"
	case pricing.EcoFreight:
		return "Eco Freight"
	}
	return string(service)
}

func (m *Machine) advanceServiceSelection(state *State, message string) *Reply {
	selected := extract.ServiceLevelFromText(message)
	if selected == "" {
		return &Reply{Text: promptServiceRetry, State: state}
	}

	service, ok := pricing.ParseServiceType(selected)
	if !ok {
		return &Reply{Text: promptServiceRetry, State: state}
	}

	var option *ServiceOption
	for i := range state.Options {
		if state.Options[i].Service == service {
			option = &state.Options[i]
			break
		}
	}
	if option == nil {
		return &Reply{Text: promptServiceRetry, State: state}
	}

	// Selection and price are set together, per the state invariant.
	state.SelectedService = service
	state.Price = option.Price
	state.Step = StepConfirmation

	text := fmt.Sprintf(
		"To confirm: %s from %s to %s, %s for $%d, estimated %s. Shall I create the quote request? (yes/no)",
		state.Package.Type,
		state.Pickup.Place.FormattedAddress,
		state.Delivery.Place.FormattedAddress,
		serviceLabel(service),
		option.Price,
		option.Estimate.Text,
	)
	return &Reply{Text: text, State: state}
}

func (m *Machine) advanceConfirmation(ctx context.Context, state *State, customerID, lower string) *Reply {
	switch {
	case strings.Contains(lower, "yes"):
		if !state.complete() {
			state.Reset()
			return &Reply{Text: promptMissingInfo, State: state}
		}
		return m.createQuote(ctx, state, customerID)

	case strings.Contains(lower, "no"):
		state.Reset()
		state.Step = StepCancelled
		return &Reply{Text: promptCancelled, State: state}

	default:
		return &Reply{Text: promptConfirmRetry, State: state}
	}
}

func (m *Machine) createQuote(ctx context.Context, state *State, customerID string) *Reply {
	var option *ServiceOption
	for i := range state.Options {
		if state.Options[i].Service == state.SelectedService {
			option = &state.Options[i]
			break
		}
	}

	pickupDate := pricing.AddBusinessDays(time.Now().UTC(), 1)
	deliveryBy := pickupDate
	if option != nil {
		deliveryBy = pricing.DeliveryDate(pickupDate, option.Estimate.BusinessDays)
	}

	record := &storage.Quote{
		CustomerID:  customerID,
		Service:     string(state.SelectedService),
		Price:       state.Price,
		PackageType: string(state.Package.Type),
		WeightTons:  state.weightTons(),
		VolumeM3:    state.volumeM3(),
		Hazardous:   state.Package.Hazardous,
		Origin:      state.Pickup.Place.FormattedAddress,
		Destination: state.Delivery.Place.FormattedAddress,
		DistanceKm:  state.Route.Distance.Kilometers,
		PickupDate:  pickupDate,
		DeliveryBy:  deliveryBy,
	}

	if m.quotes == nil {
		m.logger.Error("quote store not configured")
		return &Reply{Text: promptStoreFailure, State: state}
	}

	id, err := m.quotes.CreateQuote(ctx, record)
	if err != nil {
		m.logger.Error("quote persistence failed", zap.Error(err))
		// State stays at confirmation so the user can retry by resending.
		return &Reply{Text: promptStoreFailure, State: state}
	}

	state.QuoteID = id
	state.Step = StepCreated

	if m.publisher != nil {
		event := &eventstream.QuoteCreatedEvent{
			QuoteID:     id,
			CustomerID:  customerID,
			Service:     record.Service,
			Price:       record.Price,
			Origin:      record.Origin,
			Destination: record.Destination,
			DistanceKm:  record.DistanceKm,
			PickupDate:  record.PickupDate,
			DeliveryBy:  record.DeliveryBy,
		}
		if err := m.publisher.PublishQuoteCreated(ctx, event); err != nil {
			m.logger.Warn("quote event publish failed", zap.Error(err))
		}
	}

	text := fmt.Sprintf(
		"Your quote request %s has been created: %s for $%d, pickup %s, estimated delivery by %s. Our team will follow up shortly.",
		id,
		serviceLabel(state.SelectedService),
		state.Price,
		pickupDate.Format("Mon, Jan 2"),
		deliveryBy.Format("Mon, Jan 2"),
	)
	return &Reply{Text: text, State: state}
}
