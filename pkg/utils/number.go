package utils

import "github.com/shopspring/decimal"

// DefaultLakhDivisor converte rúpias para lakhs (1 lakh = 100.000)
const DefaultLakhDivisor int64 = 100000

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}

func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return decimal.NewFromFloat(f).Round(1).InexactFloat64()
}

// ToLakhs divide o valor bruto pelo divisor e arredonda para duas casas
func ToLakhs(value float64, divisor int64) float64 {
	if divisor <= 0 {
		divisor = DefaultLakhDivisor
	}

	return decimal.NewFromFloat(value).
		Div(decimal.NewFromInt(divisor)).
		Round(2).
		InexactFloat64()
}
