package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// costPrefix matches the longest leading decimal literal, the way a
// browser's parseFloat reads "250.5 MAD" as 250.5.
var costPrefix = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// ParseCost returns the numeric value of a budget cost. Empty or
// non-numeric text counts as zero; so do infinities.
func ParseCost(s string) float64 {
	v, _ := LookupCost(s)
	return v
}

// LookupCost is ParseCost that also reports whether s held a number.
func LookupCost(s string) (float64, bool) {
	s = strings.TrimLeft(s, " \t\r\n\v\f")
	lit := costPrefix.FindString(s)
	if lit == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
