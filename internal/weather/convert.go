package weather

import "github.com/shopspring/decimal"

const kelvinOffset = 273

// KelvinToCelsius subtracts the integer offset and keeps one decimal, rounding any
// discarded digits away from zero: 27.149999 becomes 27.2, -5.01 becomes -5.1.
func KelvinToCelsius(k float64) float64 {
	celsius := decimal.NewFromFloat(k - kelvinOffset)
	return celsius.RoundUp(1).InexactFloat64()
}
