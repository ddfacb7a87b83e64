// Package price extracts comparable numeric values from the currency text
// retail sites render, which varies wildly in symbols, separators and
// surrounding markup. One permissive strip-then-parse rule is applied to every
// site rather than per-site formats.
package price

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrUnparseable reports price text that does not reduce to a finite,
// non-negative decimal number.
var ErrUnparseable = errors.New("price: unparseable text")

// Parse strips every character except digits, '.' and '-' from s and parses
// the remainder as a decimal, so "$1,299.99" yields 1299.99. Empty input, a
// remainder that is not a number, and negative values all fail.
func Parse(s string) (float64, error) {
	stripped := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
	if stripped == "" {
		return 0, ErrUnparseable
	}

	v, err := strconv.ParseFloat(stripped, 64)
	if err != nil {
		return 0, ErrUnparseable
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrUnparseable
	}
	return v, nil
}
