package report

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// DefaultNumberFormat groups thousands with "." and separates up to three
// decimals with ",", as Moroccan French does ("1.250,5").
const DefaultNumberFormat = "#.###,###"

// DefaultCurrency is appended to every amount in the report.
const DefaultCurrency = "MAD"

// ErrInvalidNumberFormat indicates a number format go-humanize cannot render.
var ErrInvalidNumberFormat = errors.New("invalid number format")

// numberFormatPattern accepts "#<group>###<decimal>#..." with one to six
// fraction digits.
var numberFormatPattern = regexp.MustCompile(`^#([^#0+])###([^#0+])(#{1,6})$`)

// ValidateNumberFormat checks that format names a thousands separator, a
// distinct decimal separator and a fraction precision.
func ValidateNumberFormat(format string) error {
	m := numberFormatPattern.FindStringSubmatch(format)
	if m == nil {
		return fmt.Errorf("%w: %q (want e.g. %q)", ErrInvalidNumberFormat, format, DefaultNumberFormat)
	}
	if m[1] == m[2] {
		return fmt.Errorf("%w: %q uses the same thousands and decimal separator", ErrInvalidNumberFormat, format)
	}
	return nil
}

// FormatAmount renders v with the grouping convention of format, dropping
// trailing fraction zeros: 1250.5 → "1.250,5", 3000 → "3.000".
// An invalid format falls back to DefaultNumberFormat. Infinite totals
// render as "∞" or "-∞".
func FormatAmount(v float64, format string) string {
	if ValidateNumberFormat(format) != nil {
		format = DefaultNumberFormat
	}
	m := numberFormatPattern.FindStringSubmatch(format)
	group, decimal, prec := m[1], m[2], len(m[3])

	switch {
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	case math.IsNaN(v):
		return "NaN"
	}

	var s string
	if math.Abs(v) < maxHumanizeAmount {
		s = humanize.FormatFloat(format, v)
	} else {
		// humanize truncates the integer part to int64.
		s = groupDigits(strconv.FormatFloat(v, 'f', prec, 64), group, decimal)
	}
	if strings.LastIndex(s, decimal) >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, decimal)
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// maxHumanizeAmount bounds the magnitudes humanize.FormatFloat renders;
// its integer part is an int64.
const maxHumanizeAmount = 1 << 62

// groupDigits regroups a strconv 'f' rendering ("-1234.500") with the
// given separators ("-1.234,500").
func groupDigits(plain, group, decimal string) string {
	sign := ""
	if strings.HasPrefix(plain, "-") {
		sign, plain = "-", plain[1:]
	}
	intPart, frac, hasFrac := strings.Cut(plain, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(group)
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteString(decimal)
		b.WriteString(frac)
	}
	return b.String()
}
