package booking

import (
	"math"
	"time"
)

// serviceFeeRate is the flat platform fee applied on top of the subtotal.
const serviceFeeRate = 0.05

const dayMillis = 24 * 60 * 60 * 1000

// Quote is the price breakdown for a date range at a given daily rate.
type Quote struct {
	Days       int     `json:"days"`
	RatePerDay float64 `json:"rate_per_day"`
	Subtotal   float64 `json:"subtotal"`
	ServiceFee float64 `json:"service_fee"`
	Total      float64 `json:"total"`
}

// Days returns the billable day span between two dates: the ceiling of the
// absolute difference in milliseconds over one day. A missing date yields 0,
// as does an equal pair.
func Days(start, end time.Time) int {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	diff := math.Abs(float64(end.Sub(start).Milliseconds()))
	return int(math.Ceil(diff / dayMillis))
}

// PriceFor computes the breakdown for a day count and daily rate. The service
// fee rounds half away from zero to a whole currency unit. Zero days zeroes
// every amount, including the rate, so an empty range shows no breakdown.
func PriceFor(days int, rate float64) Quote {
	if days <= 0 {
		return Quote{}
	}

	subtotal := float64(days) * rate
	fee := math.Round(subtotal * serviceFeeRate)

	return Quote{
		Days:       days,
		RatePerDay: rate,
		Subtotal:   subtotal,
		ServiceFee: fee,
		Total:      subtotal + fee,
	}
}

// QuoteFor derives the full quote from a raw date pair and rate.
func QuoteFor(start, end time.Time, rate float64) Quote {
	return PriceFor(Days(start, end), rate)
}
