package chroma

import (
	"fmt"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// FourierMagnitudes returns |F0| ... |F6| of the discrete Fourier transform
// of a 12-bin pitch-class vector. The magnitudes do not change under
// transposition; |F5| measures how diatonic the collection is and peaks
// at 2+sqrt(3) for a seven-note scale.
func FourierMagnitudes(vector []float64) ([]float64, error) {
	if len(vector) != PitchClasses {
		return nil, fmt.Errorf("fourier: want %d pitch classes, got %d", PitchClasses, len(vector))
	}

	coeffs := fft.FFTReal(vector)

	magnitudes := make([]float64, PitchClasses/2+1)
	for k := range magnitudes {
		magnitudes[k] = cmplx.Abs(coeffs[k])
	}
	return magnitudes, nil
}

// SetVector is the 0/1 membership vector of a pitch-class set.
func SetVector(set []int) []float64 {
	vector := make([]float64, PitchClasses)
	for _, pc := range set {
		vector[((pc%PitchClasses)+PitchClasses)%PitchClasses] = 1
	}
	return vector
}
