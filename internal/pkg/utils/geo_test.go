package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
		wantErr  bool
	}{
		{name: "positive", raw: "52.3740300", expected: 52.37403},
		{name: "negative", raw: "-37.3159", expected: -37.3159},
		{name: "integer", raw: "4", expected: 4},
		{name: "out of range accepted", raw: "123.5", expected: 123.5},
		{name: "letters", raw: "abc", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "padded", raw: " 1.0", wantErr: true},
		{name: "nan", raw: "NaN", wantErr: true},
		{name: "infinity", raw: "-Inf", wantErr: true},
		{name: "exponent", raw: "5e-1", expected: 0.5},
		{name: "hex float", raw: "0x1p0", wantErr: true},
		{name: "upper hex float", raw: "0X1P-2", wantErr: true},
		{name: "digit separators", raw: "1_0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := ParseCoordinate(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "0", FormatDistance(0))
	assert.Equal(t, "1.4142135623730951", FormatDistance(math.Sqrt(2)))
	assert.Equal(t, "2.5", FormatDistance(2.5))
	assert.Equal(t, "1000000000000000000000", FormatDistance(1e21))
}
