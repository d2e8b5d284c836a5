package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "zero", in: 0, want: 0},
		{name: "arredonda para cima", in: 2.346, want: 2.35},
		{name: "arredonda para baixo", in: 2.344, want: 2.34},
		{name: "negativo", in: -1.234, want: -1.23},
		{name: "NaN vira zero", in: math.NaN(), want: 0},
		{name: "infinito vira zero", in: math.Inf(1), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundWithTwoDecimalPlace(tt.in))
		})
	}
}

func TestDivideOrZero(t *testing.T) {
	assert.Equal(t, 0.0, DivideOrZero(10, 0))
	assert.Equal(t, 2.5, DivideOrZero(50, 20))
}

func TestDenominatorOrOne(t *testing.T) {
	assert.Equal(t, 1.0, DenominatorOrOne(0))
	assert.Equal(t, 20.0, DenominatorOrOne(20))
}
