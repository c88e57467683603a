// Package format holds the pure numeric display helpers shared by the
// chart and audience surfaces.
package format

import (
	"math"
	"strconv"
)

// Magnitude abbreviates a count the way chart pages do: one-decimal
// millions ("1.1M"), whole thousands ("607K"), or the plain integer.
func Magnitude(n int) string {
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(float64(n)/1_000_000, 'f', 1, 64) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(float64(n)/1_000, 'f', 0, 64) + "K"
	default:
		return strconv.Itoa(n)
	}
}

// PercentChange reports the growth of recent over earlier as a rounded
// signed percentage. The denominator is floored to 1 so an artist surfacing
// from zero yields a finite change instead of a division by zero.
func PercentChange(recent, earlier int) int {
	denom := earlier
	if denom < 1 {
		denom = 1
	}
	return int(math.Round(float64(recent-earlier) / float64(denom) * 100))
}
