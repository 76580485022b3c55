package models

import (
	"math"
	"regexp"
	"strconv"
)

var nonNumeric = regexp.MustCompile(`[^0-9.]`)

// ResolvePrice returns the effective unit price of an item. Catalog entries
// that carry no explicit price fall back to the numeric part of their
// display fee string ("KWD 0.950" -> 0.95); anything unparseable resolves
// to 0. Every price read in the codebase goes through here.
func ResolvePrice(it Item) float64 {
	if it.Price != nil {
		return *it.Price
	}
	parsed, err := strconv.ParseFloat(nonNumeric.ReplaceAllString(it.Fee, ""), 64)
	if err != nil || math.IsInf(parsed, 0) || math.IsNaN(parsed) {
		return 0
	}
	return parsed
}

// Round3 rounds a currency amount to 3 decimal places, the minor-unit
// precision of the displayed currency (KWD).
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
