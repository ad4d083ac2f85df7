package pricing

import (
	"fmt"
	"math"
	"time"
)

// baselineSpeedKmh is the assumed line-haul speed before the tier's
// SpeedFactor is applied.
const baselineSpeedKmh = 80

// workdayHours converts total transit hours into business days.
const workdayHours = 8

// Estimate is a structured delivery-time estimate. BusinessDays is carried
// as an integer so downstream consumers never have to parse it back out of
// the display text.
type Estimate struct {
	TotalHours   float64 `json:"total_hours"`
	BusinessDays int     `json:"business_days"`
	Text         string  `json:"text"`
}

// EstimateDelivery computes the delivery-time estimate for a tier over the
// given distance.
func EstimateDelivery(rate Rate, distanceKm float64) Estimate {
	totalHours := (distanceKm/baselineSpeedKmh)*rate.SpeedFactor + rate.HandlingHours
	days := int(math.Ceil(totalHours / workdayHours))
	if days < 1 {
		days = 1
	}

	return Estimate{
		TotalHours:   totalHours,
		BusinessDays: days,
		Text:         estimateText(days, totalHours),
	}
}

func estimateText(days int, totalHours float64) string {
	switch {
	case days <= 1 && totalHours <= 4:
		return "Same day delivery"
	case days <= 1:
		return "Next business day"
	case days == 2:
		return "2 business days"
	default:
		return fmt.Sprintf("%d business days", days)
	}
}

// AddBusinessDays advances from start by n business days, skipping
// Saturdays and Sundays.
func AddBusinessDays(start time.Time, n int) time.Time {
	t := start
	for added := 0; added < n; {
		t = t.AddDate(0, 0, 1)
		if wd := t.Weekday(); wd != time.Saturday && wd != time.Sunday {
			added++
		}
	}
	return t
}

// DeliveryDate computes the estimated delivery date from the pickup date
// and the structured business-day count.
func DeliveryDate(pickup time.Time, businessDays int) time.Time {
	return AddBusinessDays(pickup, businessDays)
}
