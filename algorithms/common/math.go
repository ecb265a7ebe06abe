package common

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Basic statistical helpers shared by the chroma and tonal packages, backed by gonum

// Mean calculates the arithmetic mean of a slice using gonum
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// Variance calculates the sample variance of a slice using gonum
func Variance(data []float64) float64 {
	if len(data) < 2 {
		return 0.0
	}
	return stat.Variance(data, nil)
}

// StandardDeviation calculates the sample standard deviation
func StandardDeviation(data []float64) float64 {
	if len(data) < 2 {
		return 0.0
	}
	return math.Sqrt(Variance(data))
}

// SumNormalize returns a copy of data scaled so that it sums to 1.
// Data that sums to (nearly) zero is returned unscaled.
func SumNormalize(data []float64) []float64 {
	out := make([]float64, len(data))
	copy(out, data)

	sum := floats.Sum(out)
	if math.Abs(sum) < 1e-10 {
		return out
	}
	floats.Scale(1/sum, out)
	return out
}

// Rotate returns data shifted right by n positions, wrapping around.
func Rotate(data []float64, n int) []float64 {
	size := len(data)
	out := make([]float64, size)
	if size == 0 {
		return out
	}
	for i, v := range data {
		out[((i+n)%size+size)%size] = v
	}
	return out
}
