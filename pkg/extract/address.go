package extract

import (
	"regexp"
	"strings"
)

// Address is a best-effort split of a free-text address into components.
// Missing components default to the empty string.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Raw    string `json:"raw"`
}

// AddressPair is the pickup and delivery addresses extracted from one
// message, plus the requested pickup window when one was mentioned.
type AddressPair struct {
	Pickup       Address `json:"pickup"`
	Delivery     Address `json:"delivery"`
	PickupWindow string  `json:"pickupWindow,omitempty"`
}

// The address heuristic is anchored on literal "from"/"to"/"pickup"/"at"
// markers. It is deliberately isolated behind ParseAddressPair so it can be
// swapped for a geocoder-assisted parser without touching the quote state
// machine.
var (
	fromRe   = regexp.MustCompile(`(?i)\bfrom\b\s+(.+?)(?:\s+\bto\b|$)`)
	toRe     = regexp.MustCompile(`(?i)\bto\b\s+(.+?)(?:\s*,?\s*\bpickup\b.*)?$`)
	pickupRe = regexp.MustCompile(`(?i)\bpickup\b\s+(.+)$`)
)

// ParseAddressPair extracts the pickup and delivery addresses from free
// text. Returns nil unless both a "from" and a "to" capture are present.
func ParseAddressPair(text string) *AddressPair {
	from := fromRe.FindStringSubmatch(text)
	if from == nil {
		return nil
	}

	to := toRe.FindStringSubmatch(text)
	if to == nil {
		return nil
	}

	pair := &AddressPair{
		Pickup:   splitAddress(from[1]),
		Delivery: splitAddress(to[1]),
	}

	if window := pickupRe.FindStringSubmatch(text); window != nil {
		pair.PickupWindow = strings.TrimSpace(window[1])
	}

	return pair
}

// splitAddress splits a captured address on commas into street, city and
// state. Missing components stay empty rather than failing the extraction.
func splitAddress(raw string) Address {
	raw = strings.TrimSpace(strings.Trim(raw, ",."))
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	addr := Address{Raw: raw}
	switch len(parts) {
	case 1:
		addr.City = parts[0]
	case 2:
		addr.City = parts[0]
		addr.State = parts[1]
	default:
		addr.Street = parts[0]
		addr.City = parts[1]
		addr.State = parts[2]
	}
	return addr
}
