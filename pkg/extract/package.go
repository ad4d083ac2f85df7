// Package extract implements the free-text field extractors that pull
// structured package details, address pairs, and service selections out of
// user messages.
//
// All extractors are all-or-nothing: a partial match never produces a
// partial result. Extraction failure is modeled as a nil return, not an
// error — callers re-prompt the user instead of failing.
package extract

import (
	"regexp"
	"strings"
)

// PackageType classifies the freight load.
type PackageType string

const (
	FullTruckload     PackageType = "full_truckload"
	LessThanTruckload PackageType = "less_than_truckload"
	SeaContainer      PackageType = "sea_container"
	BulkFreight       PackageType = "bulk_freight"
)

// PackageDetails is a successfully extracted set of package fields.
// Type, Weight and Volume are always populated; the rest are best-effort.
type PackageDetails struct {
	Type                PackageType `json:"type"`
	Weight              string      `json:"weight"`
	Volume              string      `json:"volume"`
	Hazardous           bool        `json:"hazardous"`
	SpecialRequirements string      `json:"specialRequirements,omitempty"`
	PalletCount         string      `json:"palletCount,omitempty"`
}

var (
	fullTruckloadRe     = regexp.MustCompile(`(?i)full.*truck|\bftl\b|full.*load`)
	lessThanTruckloadRe = regexp.MustCompile(`(?i)less.*truck|\bltl\b|less.*load`)
	seaContainerRe      = regexp.MustCompile(`(?i)container|sea.*freight`)
	bulkFreightRe       = regexp.MustCompile(`(?i)\bbulk\b`)

	weightRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:tonnes|tons|ton|t)\b`)
	volumeRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:cubic meters|cubic meter|m3|m³|cbm)\b`)
	palletRe = regexp.MustCompile(`(?i)(\d+)\s*pallets?\b`)

	hazardRe   = regexp.MustCompile(`(?i)hazardous|dangerous`)
	negationRe = regexp.MustCompile(`(?i)\b(?:no|non|not)\b`)
)

// PackageDetailsFromText extracts package details from free text.
// Returns nil unless the type, weight and volume are all present.
func PackageDetailsFromText(text string) *PackageDetails {
	pkgType, ok := classifyPackageType(text)
	if !ok {
		return nil
	}

	weight := weightRe.FindStringSubmatch(text)
	if weight == nil {
		return nil
	}

	volume := volumeRe.FindStringSubmatch(text)
	if volume == nil {
		return nil
	}

	details := &PackageDetails{
		Type:      pkgType,
		Weight:    weight[1],
		Volume:    volume[1],
		Hazardous: hazardousFromText(text),
	}

	if pallets := palletRe.FindStringSubmatch(text); pallets != nil {
		details.PalletCount = pallets[1]
	}

	return details
}

func classifyPackageType(text string) (PackageType, bool) {
	switch {
	case fullTruckloadRe.MatchString(text):
		return FullTruckload, true
	case lessThanTruckloadRe.MatchString(text):
		return LessThanTruckload, true
	case seaContainerRe.MatchString(text):
		return SeaContainer, true
	case bulkFreightRe.MatchString(text):
		return BulkFreight, true
	}
	return "", false
}

// hazardousFromText reports whether the message flags hazardous cargo.
// The negation check searches the whole message, not just the hazard clause.
func hazardousFromText(text string) bool {
	if !hazardRe.MatchString(text) {
		return false
	}
	return !negationRe.MatchString(text)
}

// ServiceLevelFromText extracts a service-tier selection via substring
// match. Returns the empty string when no tier is mentioned.
func ServiceLevelFromText(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "express"):
		return "express_freight"
	case strings.Contains(lower, "standard"):
		return "standard_freight"
	case strings.Contains(lower, "eco"), strings.Contains(lower, "economy"):
		return "eco_freight"
	}
	return ""
}
