package utils

import "math"

// taxRate is the flat surcharge applied on the pre-tax base.
const taxRate = 0.05

// FareBreakdown is the quoted amount for one train+class+passenger-count.
type FareBreakdown struct {
	Base  int64 `json:"base"`
	Tax   int64 `json:"tax"`
	Total int64 `json:"total"`
}

// ComputeFare returns base, tax and total for farePerSeat * passengers.
// Tax is 5% of the base rounded to the nearest integer. The function is pure;
// every workflow step recomputes the quote from the same inputs instead of
// carrying a stored total forward.
func ComputeFare(farePerSeat int64, passengers int) FareBreakdown {
	base := farePerSeat * int64(passengers)
	tax := int64(math.Round(float64(base) * taxRate))
	return FareBreakdown{
		Base:  base,
		Tax:   tax,
		Total: base + tax,
	}
}
