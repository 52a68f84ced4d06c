package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeDivide(t *testing.T) {
	tests := []struct {
		name        string
		numerator   float64
		denominator float64
		decimals    int
		expected    float64
	}{
		{
			name:        "Divisão exata com quatro casas decimais",
			numerator:   100_000,
			denominator: 3_000_000,
			decimals:    4,
			expected:    0.0333,
		},
		{
			name:        "Denominador zero retorna zero",
			numerator:   100,
			denominator: 0,
			decimals:    4,
			expected:    0,
		},
		{
			name:        "Denominador NaN retorna zero",
			numerator:   100,
			denominator: math.NaN(),
			decimals:    4,
			expected:    0,
		},
		{
			name:        "Numerador NaN retorna zero",
			numerator:   math.NaN(),
			denominator: 100,
			decimals:    4,
			expected:    0,
		},
		{
			name:        "Razão simples",
			numerator:   100_000,
			denominator: 1_000_000,
			decimals:    4,
			expected:    0.1,
		},
		{
			name:        "Numerador zero retorna zero",
			numerator:   0,
			denominator: 5,
			decimals:    4,
			expected:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SafeDivide(tt.numerator, tt.denominator, tt.decimals))
		})
	}
}

func TestRoundWithDecimalPlaces(t *testing.T) {
	assert.Equal(t, 25.0, RoundWithDecimalPlaces(25.0001, 1))
	assert.Equal(t, 0.1, RoundWithDecimalPlaces(0.10004, 4))
	assert.Equal(t, 3.0, RoundWithDecimalPlaces(2.5, 0))
	assert.Equal(t, 0.0, RoundWithDecimalPlaces(math.NaN(), 2))
	assert.Equal(t, 0.0, RoundWithDecimalPlaces(math.Inf(1), 2))
}

func TestToMillions(t *testing.T) {
	assert.Equal(t, 3.0, ToMillions(3_000_000, 0))
	assert.Equal(t, 0.5, ToMillions(500_000, 1))
	assert.Equal(t, 0.0, ToMillions(0, 1))
}
