// Package quote implements the multi-turn shipping-quote conversation: a
// per-conversation step tracker that collects package details, addresses
// and a service selection, prices the shipment, and persists the confirmed
// quote.
package quote

import (
	"strconv"

	"github.com/haulflow/freightdesk/pkg/extract"
	"github.com/haulflow/freightdesk/pkg/geo"
	"github.com/haulflow/freightdesk/pkg/pricing"
)

// Step is the current position in the quoting conversation.
type Step string

const (
	StepInitial          Step = "initial"
	StepPackageDetails   Step = "package_details"
	StepAddresses        Step = "addresses"
	StepServiceSelection Step = "service_selection"
	StepConfirmation     Step = "confirmation"

	// Terminal steps.
	StepCreated   Step = "created"
	StepCancelled Step = "cancelled"
)

// Endpoint is one end of the shipment: the extracted address plus its
// geocoded place when resolution succeeded.
type Endpoint struct {
	Address extract.Address `json:"address"`
	Place   *geo.Place      `json:"place,omitempty"`
}

// ServiceOption is one priced service tier presented during selection.
type ServiceOption struct {
	Service  pricing.ServiceType `json:"service"`
	Price    int64               `json:"price"`
	Estimate pricing.Estimate    `json:"estimate"`
}

// State is the accumulated quote conversation state. It is held by the
// caller — it travels out in response metadata and back in on the next
// request — so the server keeps no per-conversation map.
type State struct {
	Step Step `json:"step"`

	// Package is replaced wholesale by a fresh successful extraction,
	// never partially updated.
	Package *extract.PackageDetails `json:"package,omitempty"`

	Pickup       *Endpoint `json:"pickup,omitempty"`
	Delivery     *Endpoint `json:"delivery,omitempty"`
	PickupWindow string    `json:"pickupWindow,omitempty"`

	// Route is derived from the endpoints, never user-supplied.
	Route *geo.Route `json:"route,omitempty"`

	// Options is recomputed when the conversation enters service
	// selection.
	Options []ServiceOption `json:"options,omitempty"`

	// SelectedService and Price are only ever set together, after both
	// Package and Route are populated.
	SelectedService pricing.ServiceType `json:"selectedService,omitempty"`
	Price           int64               `json:"price,omitempty"`

	// QuoteID is set when the quote request is persisted.
	QuoteID string `json:"quoteId,omitempty"`
}

// NewState returns an empty conversation state.
func NewState() *State {
	return &State{Step: StepInitial}
}

// Reset clears the state back to the start of a quoting conversation.
func (s *State) Reset() {
	*s = State{Step: StepInitial}
}

// complete reports whether everything needed to create the quote is
// present.
func (s *State) complete() bool {
	return s.Package != nil &&
		s.Pickup != nil &&
		s.Delivery != nil &&
		s.SelectedService != "" &&
		s.Route != nil &&
		s.Route.Distance.Kilometers > 0
}

// weightTons returns the package weight as a float, zero when absent.
func (s *State) weightTons() float64 {
	if s.Package == nil {
		return 0
	}
	v, _ := strconv.ParseFloat(s.Package.Weight, 64)
	return v
}

// volumeM3 returns the package volume as a float, zero when absent.
func (s *State) volumeM3() float64 {
	if s.Package == nil {
		return 0
	}
	v, _ := strconv.ParseFloat(s.Package.Volume, 64)
	return v
}

// palletCount returns the pallet count as an int, zero when absent.
func (s *State) palletCount() int {
	if s.Package == nil || s.Package.PalletCount == "" {
		return 0
	}
	v, _ := strconv.Atoi(s.Package.PalletCount)
	return v
}
