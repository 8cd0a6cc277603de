package service

// CalculateEmission converts a reported quantity into kg CO2e.
// Inputs are not range checked; negative values pass through.
func CalculateEmission(value, emissionFactor float64) float64 {
	return value * emissionFactor
}
