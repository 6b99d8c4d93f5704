package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "integer", value: "42", want: true},
		{name: "decimal", value: "8.5", want: true},
		{name: "negative", value: "-3.25", want: true},
		{name: "scientific notation", value: "1e3", want: true},
		{name: "padded with whitespace", value: "  97.5  ", want: true},
		{name: "zero", value: "0", want: true},
		{name: "empty string", value: "", want: false},
		{name: "whitespace only", value: "   ", want: false},
		{name: "letter grade", value: "A", want: false},
		{name: "excused marker", value: "EX", want: false},
		{name: "number with trailing text", value: "8 pts", want: false},
		{name: "infinity", value: "Inf", want: false},
		{name: "not a number literal", value: "NaN", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNumeric(tt.value))
		})
	}
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  *float64
	}{
		{name: "plain value", value: "88", want: ptr(88.0)},
		{name: "trimmed before parsing", value: " 7.25 ", want: ptr(7.25)},
		{name: "empty is nil", value: "", want: nil},
		{name: "text is nil", value: "absent", want: nil},
		{name: "infinity is nil", value: "-Inf", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToNumber(tt.value)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-12)
		})
	}
}

// IsNumeric and ToNumber must agree: numeric values always convert.
func TestNumericAgreement(t *testing.T) {
	for _, v := range []string{"0", "-1", " 99.9 ", "1e-2", "", "abc", "Inf"} {
		if IsNumeric(v) {
			assert.NotNil(t, ToNumber(v), "value %q", v)
		} else {
			assert.Nil(t, ToNumber(v), "value %q", v)
		}
	}
}

func ptr(f float64) *float64 { return &f }
