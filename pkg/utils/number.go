package utils

import "math"

// RoundWithDecimalPlaces arredonda f para a quantidade de casas decimais informada
func RoundWithDecimalPlaces(f float64, decimals int) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	factor := math.Pow(10, float64(decimals))

	return math.Round(f*factor) / factor
}

// RoundWithTwoDecimalPlace arredonda f para duas casas decimais
func RoundWithTwoDecimalPlace(f float64) float64 {
	return RoundWithDecimalPlaces(f, 2)
}

// SafeDivide divide numerator por denominator sem nunca falhar: retorna 0
// quando o denominador é zero, NaN ou infinito. O resultado é arredondado
// para a quantidade de casas decimais informada.
func SafeDivide(numerator, denominator float64, decimals int) float64 {
	if denominator == 0 || math.IsNaN(denominator) || math.IsInf(denominator, 0) {
		return 0
	}
	if math.IsNaN(numerator) || math.IsInf(numerator, 0) {
		return 0
	}

	return RoundWithDecimalPlaces(numerator/denominator, decimals)
}

// ToMillions converte um valor absoluto para a unidade de milhões
func ToMillions(value float64, decimals int) float64 {
	return RoundWithDecimalPlaces(value/1_000_000, decimals)
}
