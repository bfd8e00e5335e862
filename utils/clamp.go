package utils

import "math"

// Clamp limits t to the interval [min, max].
func Clamp(t, min, max float64) float64 {
	min, max = math.Min(min, max), math.Max(min, max)
	return math.Max(math.Min(t, max), min)
}

// ClampUnit limits t to the unit interval [0, 1].
func ClampUnit(t float64) float64 {
	return Clamp(t, 0, 1)
}

// ClampBipolarUnit limits t to [-1, 1].
func ClampBipolarUnit(t float64) float64 {
	return Clamp(t, -1, 1)
}
