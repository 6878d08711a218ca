// Package price parses and formats display prices such as "₹35.00".
package price

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Glyph is the fixed currency symbol used across the storefront.
const Glyph = "₹"

var nonNumeric = regexp.MustCompile(`[^0-9.-]`)

var ErrNotAPrice = errors.New("no numeric value in price")

// Parse extracts the numeric value from a displayed price by stripping
// everything but digits, dot and minus. Regex extraction is the
// authoritative strategy; prefix slicing is not.
func Parse(s string) (float64, error) {
	cleaned := nonNumeric.ReplaceAllString(s, "")
	if cleaned == "" {
		return 0, ErrNotAPrice
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, ErrNotAPrice
	}
	return v, nil
}

// Format renders a value with the currency glyph and exactly two decimal
// digits, rounding first.
func Format(v float64) string {
	return fmt.Sprintf("%s%.2f", Glyph, math.Round(v*100)/100)
}
