package expense

import (
	"errors"
	"math"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Entry is one recorded expense.
type Entry struct {
	Category string  `json:"category" validate:"required"`
	Amount   float64 `json:"amount" validate:"gt=0"`
}

// CategoryTotal is the summed amount of one category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

var errNotFinite = errors.New("amount must be finite")

// Validate rejects an empty category or a non-positive amount.
func (e Entry) Validate() error {
	if math.IsInf(e.Amount, 0) || math.IsNaN(e.Amount) {
		return errNotFinite
	}
	return validate.Struct(e)
}

// Aggregate sums amounts per category. Categories appear in first-seen order.
func Aggregate(entries []Entry) []CategoryTotal {
	index := make(map[string]int, len(entries))
	var totals []CategoryTotal
	for _, e := range entries {
		i, ok := index[e.Category]
		if !ok {
			i = len(totals)
			index[e.Category] = i
			totals = append(totals, CategoryTotal{Category: e.Category})
		}
		totals[i].Total += e.Amount
	}
	return totals
}

// Totals returns the aggregate as a category to amount mapping.
func Totals(entries []Entry) map[string]float64 {
	out := make(map[string]float64)
	for _, t := range Aggregate(entries) {
		out[t.Category] = t.Total
	}
	return out
}

// Sum returns the grand total of totals.
func Sum(totals []CategoryTotal) float64 {
	var sum float64
	for _, t := range totals {
		sum += t.Total
	}
	return sum
}

// Share returns t's fraction of sum as a percentage, 0 when sum is 0.
func Share(t CategoryTotal, sum float64) float64 {
	if sum == 0 {
		return 0
	}
	return t.Total / sum * 100
}
