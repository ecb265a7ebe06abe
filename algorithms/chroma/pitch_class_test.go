package chroma

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-escala/theory"
)

func TestCreateProfile(t *testing.T) {
	res, err := theory.Resolve("Major", 0)
	require.NoError(t, err)

	pca := NewPitchClassAnalyzer()
	p := pca.CreateProfile(res.Notes)

	require.Len(t, p.Profile, PitchClasses)
	sum := 0.0
	for _, w := range p.Profile {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-12)

	// C closes both octaves so it is counted three times.
	assert.InDelta(t, 3.0/15, p.Profile[0], 1e-12)
	assert.InDelta(t, 2.0/15, p.Profile[2], 1e-12)
	assert.Zero(t, p.Profile[1])

	assert.Greater(t, p.Entropy, 2.0)
	assert.Less(t, p.Entropy, math.Log2(7)+1e-9)
	assert.Less(t, p.Uniformity, 1.0)
}

func TestCreateProfileMergesEnharmonics(t *testing.T) {
	notes := []theory.SpelledNote{
		{Letter: "C", Accidental: "#"},
		{Letter: "D", Accidental: "b"},
		{Letter: "B", Accidental: "#"},
	}
	p := NewPitchClassAnalyzer().CreateProfile(notes)
	assert.InDelta(t, 2.0/3, p.Profile[1], 1e-12)
	assert.InDelta(t, 1.0/3, p.Profile[0], 1e-12)
}

func TestExtractPitchClasses(t *testing.T) {
	res := theory.MustResolve("Minor", 0)
	pca := NewPitchClassAnalyzer()
	classes := pca.ExtractPitchClasses(pca.CreateProfile(res.Notes), 0)

	require.Len(t, classes, 7)
	assert.Equal(t, "C", classes[0].Name)
	assert.Equal(t, []string{"C", "D", "Eb", "F", "G", "Ab", "Bb"}, func() []string {
		var out []string
		for _, c := range classes {
			out = append(out, c.Name)
		}
		return out
	}())
}

func TestIntervalVector(t *testing.T) {
	major := PitchClassSet(theory.MustResolve("Major", 0).Notes)
	assert.Equal(t, []int{0, 2, 4, 5, 7, 9, 11}, major)
	assert.Equal(t, [6]int{2, 5, 4, 3, 6, 1}, IntervalVector(major))

	// Every mode of the major scale shares its interval content.
	dorian := PitchClassSet(theory.MustResolve("Dorian", 3).Notes)
	assert.Equal(t, IntervalVector(major), IntervalVector(dorian))

	harmonic := PitchClassSet(theory.MustResolve("Harmonic Minor", 0).Notes)
	assert.Equal(t, [6]int{3, 3, 5, 4, 4, 2}, IntervalVector(harmonic))
}

func TestTransposeAndCompare(t *testing.T) {
	pca := NewPitchClassAnalyzer()
	c := pca.CreateProfile(theory.MustResolve("Major", 0).Notes).Profile
	d := pca.CreateProfile(theory.MustResolve("Major", 2).Notes).Profile

	assert.InDeltaSlice(t, d, pca.TransposeProfile(c, 2), 1e-12)

	metrics := pca.ComparePitchClassProfiles(d, pca.TransposeProfile(c, 2))
	assert.InDelta(t, 1.0, metrics["correlation"], 1e-9)
	assert.InDelta(t, 1.0, metrics["cosine_similarity"], 1e-9)
	assert.InDelta(t, 0.0, metrics["euclidean_distance"], 1e-9)

	assert.Empty(t, pca.ComparePitchClassProfiles(c, c[:5]))
}

func TestAnalyzeKeyRelationships(t *testing.T) {
	pca := NewPitchClassAnalyzer()
	p := pca.CreateProfile(theory.MustResolve("Major", 0).Notes).Profile
	analysis := pca.AnalyzeKeyRelationships(p)

	assert.InDelta(t, (3.0/15)*(2.0/15), analysis["tonic_dominant_strength"], 1e-12)
	assert.Greater(t, analysis["major_triad_strength"], 0.0)
	assert.Greater(t, analysis["minor_triad_strength"], 0.0)
}

func TestCorrelationConstantInput(t *testing.T) {
	assert.Zero(t, Correlation([]float64{1, 1, 1}, []float64{1, 2, 3}))
	assert.Zero(t, Correlation([]float64{1, 2}, []float64{1, 2, 3}))
}
