package model

import (
	"math"
	"strconv"
	"strings"
)

// IsNumeric reports whether v, after trimming, is a non-empty string that
// parses as a finite number.
func IsNumeric(v string) bool {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return false
	}
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return false
	}
	return !math.IsInf(n, 0) && !math.IsNaN(n)
}

// ToNumber returns the parsed value of v, or nil when v is not numeric.
// It never returns NaN or an infinity.
func ToNumber(v string) *float64 {
	if !IsNumeric(v) {
		return nil
	}
	n, _ := strconv.ParseFloat(strings.TrimSpace(v), 64)
	return &n
}
