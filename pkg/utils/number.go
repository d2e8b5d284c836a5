package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return math.Round(f*100) / 100
}

// DivideOrZero retorna 0 quando o denominador é zero
func DivideOrZero(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}

	return numerator / denominator
}

// DenominatorOrOne troca um denominador zero por 1
func DenominatorOrOne(denominator float64) float64 {
	if denominator == 0 {
		return 1
	}

	return denominator
}
