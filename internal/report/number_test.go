package report

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		format string
		want   string
	}{
		{"fraction", 1250.5, DefaultNumberFormat, "1.250,5"},
		{"whole thousands", 3000, DefaultNumberFormat, "3.000"},
		{"zero", 0, DefaultNumberFormat, "0"},
		{"millions", 1234567.891, DefaultNumberFormat, "1.234.567,891"},
		{"rounds to precision", 0.12345, DefaultNumberFormat, "0,123"},
		{"negative", -42.5, DefaultNumberFormat, "-42,5"},
		{"english grouping", 1250.5, "#,###.##", "1,250.5"},
		{"invalid format falls back", 1250.5, "bogus", "1.250,5"},
		{"beyond int64", 1e19, DefaultNumberFormat, "10.000.000.000.000.000.000"},
		{"far beyond int64", 1e21, DefaultNumberFormat, "1.000.000.000.000.000.000.000"},
		{"negative beyond int64", -1e19, DefaultNumberFormat, "-10.000.000.000.000.000.000"},
		{"beyond int64 english grouping", 1e19, "#,###.##", "10,000,000,000,000,000,000"},
		{"positive infinity", math.Inf(1), DefaultNumberFormat, "∞"},
		{"negative infinity", math.Inf(-1), DefaultNumberFormat, "-∞"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.value, tt.format))
		})
	}
}

func TestValidateNumberFormat(t *testing.T) {
	for _, ok := range []string{DefaultNumberFormat, "#,###.##", "# ###,#"} {
		assert.NoError(t, ValidateNumberFormat(ok), ok)
	}
	for _, bad := range []string{"", "#.##,##", "#.###.###", "+#.###,###", "#.###,", "#.###,#######"} {
		assert.ErrorIs(t, ValidateNumberFormat(bad), ErrInvalidNumberFormat, bad)
	}
}

func TestGroupDigits(t *testing.T) {
	assert.Equal(t, "1.234,500", groupDigits("1234.500", ".", ","))
	assert.Equal(t, "-123", groupDigits("-123", ".", ","))
	assert.Equal(t, "12 345 678", groupDigits("12345678", " ", ","))
}
