// Package pricing implements the freight pricing engine: per-tier rate
// tables, the distance/weight/volume price formula, and delivery-time
// estimation.
package pricing

import (
	"fmt"
	"math"
)

// ServiceType identifies a freight service tier.
type ServiceType string

const (
	ExpressFreight  ServiceType = "express_freight"
	StandardFreight ServiceType = "standard_freight"
	EcoFreight      ServiceType = "eco_freight"
)

// ParseServiceType returns the ServiceType for a wire value.
func ParseServiceType(value string) (ServiceType, bool) {
	switch ServiceType(value) {
	case ExpressFreight, StandardFreight, EcoFreight:
		return ServiceType(value), true
	}
	return "", false
}

// shortDistanceKm is the boundary between the short and long distance
// pricing bands. At or under this distance the per-km component is waived
// and the total rounds up to the nearest 100; above it the per-km component
// applies and the total rounds up to the nearest 1000.
const shortDistanceKm = 50

// Rate holds the fixed pricing constants for one service tier.
type Rate struct {
	BasePrice float64 `json:"base_price"`
	PerKm     float64 `json:"per_km"`
	PerM3     float64 `json:"per_m3"`
	PerTon    float64 `json:"per_ton"`
	PerPallet float64 `json:"per_pallet"`

	// SpeedFactor scales transit time relative to the 80 km/h baseline.
	SpeedFactor float64 `json:"speed_factor"`

	// RushFactor multiplies the price for rush routes (duration under 24h).
	// The eco tier carries a factor below 1: rush eco shipments are
	// discounted because they ride along with scheduled express capacity.
	RushFactor float64 `json:"rush_factor"`

	// HandlingHours is the fixed pickup/delivery handling overhead.
	HandlingHours float64 `json:"handling_hours"`

	// FallbackDays is the fixed delivery-day count used when no route
	// duration is available.
	FallbackDays int `json:"fallback_days"`
}

// RateTable maps service tiers to their rates.
type RateTable map[ServiceType]Rate

// DefaultRates returns the built-in rate table.
func DefaultRates() RateTable {
	return RateTable{
		ExpressFreight:  {BasePrice: 2000, PerKm: 15, PerM3: 50, PerTon: 100, PerPallet: 25, SpeedFactor: 0.8, RushFactor: 1.5, HandlingHours: 2, FallbackDays: 2},
		StandardFreight: {BasePrice: 1000, PerKm: 10, PerM3: 40, PerTon: 80, PerPallet: 20, SpeedFactor: 1.0, RushFactor: 1.3, HandlingHours: 8, FallbackDays: 4},
		EcoFreight:      {BasePrice: 500, PerKm: 7, PerM3: 30, PerTon: 60, PerPallet: 15, SpeedFactor: 1.3, RushFactor: 0.9, HandlingHours: 16, FallbackDays: 6},
	}
}

// Input is the set of parameters for a price calculation.
type Input struct {
	Service     ServiceType
	DistanceKm  float64
	VolumeM3    float64
	WeightTons  float64
	PalletCount int
	IsRush      bool
}

// Price computes the quoted price for the given input.
//
// Short-distance quotes (<= 50 km) waive the per-km component and round up
// to the nearest 100; long-distance quotes include it and round up to the
// nearest 1000. The rush multiplier applies before rounding.
func Price(rates RateTable, in Input) (int64, error) {
	rate, ok := rates[in.Service]
	if !ok {
		return 0, fmt.Errorf("unknown service type: %s", in.Service)
	}
	if in.DistanceKm < 0 || in.VolumeM3 < 0 || in.WeightTons < 0 || in.PalletCount < 0 {
		return 0, fmt.Errorf("negative pricing input")
	}

	amount := rate.BasePrice +
		in.VolumeM3*rate.PerM3 +
		in.WeightTons*rate.PerTon +
		float64(in.PalletCount)*rate.PerPallet

	granularity := 100.0
	if in.DistanceKm > shortDistanceKm {
		amount += in.DistanceKm * rate.PerKm
		granularity = 1000.0
	}

	if in.IsRush {
		amount *= rate.RushFactor
	}

	return int64(math.Ceil(amount/granularity) * granularity), nil
}
