package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanAndDeviation(t *testing.T) {
	data := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 5.0, Mean(data), 1e-12)
	assert.InDelta(t, 2.138, StandardDeviation(data), 1e-3)

	assert.Zero(t, Mean(nil))
	assert.Zero(t, StandardDeviation([]float64{3}))
}

func TestSumNormalize(t *testing.T) {
	in := []float64{1, 3, 0, 4}
	out := SumNormalize(in)
	assert.InDeltaSlice(t, []float64{0.125, 0.375, 0, 0.5}, out, 1e-12)
	assert.Equal(t, []float64{1, 3, 0, 4}, in)

	assert.Equal(t, []float64{0, 0}, SumNormalize([]float64{0, 0}))
}

func TestRotate(t *testing.T) {
	assert.Equal(t, []float64{3, 1, 2}, Rotate([]float64{1, 2, 3}, 1))
	assert.Equal(t, []float64{2, 3, 1}, Rotate([]float64{1, 2, 3}, -1))
	assert.Equal(t, []float64{1, 2, 3}, Rotate([]float64{1, 2, 3}, 12))
	assert.Empty(t, Rotate(nil, 2))
}
