package chroma

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/RyanBlaney/sonido-escala/algorithms/common"
	"github.com/RyanBlaney/sonido-escala/theory"
)

// PitchClasses is the number of chromatic pitch classes.
const PitchClasses = 12

// PitchClass represents a pitch class (0-11) with associated data
type PitchClass struct {
	Class  int     `json:"class"`  // Pitch class number (0=C, 1=Db, ..., 11=B)
	Name   string  `json:"name"`   // Pitch class name
	Weight float64 `json:"weight"` // Share of the sequence in this pitch class
}

// PitchClassProfile represents a pitch class distribution
type PitchClassProfile struct {
	Profile    []float64 `json:"profile"`    // 12-element pitch class distribution
	Entropy    float64   `json:"entropy"`    // Entropy of the distribution in bits
	Centroid   float64   `json:"centroid"`   // Circular centroid of distribution
	Spread     float64   `json:"spread"`     // Spread around centroid
	Uniformity float64   `json:"uniformity"` // How uniform the distribution is
}

// PitchClassAnalyzer profiles spelled note sequences
type PitchClassAnalyzer struct {
	pitchClassNames []string
}

// NewPitchClassAnalyzer creates a new pitch class analyzer
func NewPitchClassAnalyzer() *PitchClassAnalyzer {
	return &PitchClassAnalyzer{
		pitchClassNames: theory.ChromaticKeys(),
	}
}

// CreateProfile counts every note of the sequence by pitch class and
// normalizes the counts to sum to 1. Enharmonic spellings fall in the same
// class.
func (pca *PitchClassAnalyzer) CreateProfile(notes []theory.SpelledNote) *PitchClassProfile {
	counts := make([]float64, PitchClasses)
	for _, n := range notes {
		counts[n.PitchClass()]++
	}
	return pca.profileFromWeights(counts)
}

func (pca *PitchClassAnalyzer) profileFromWeights(weights []float64) *PitchClassProfile {
	profile := common.SumNormalize(weights)
	centroid := pca.calculateCentroid(profile)

	return &PitchClassProfile{
		Profile:    profile,
		Entropy:    pca.calculateEntropy(profile),
		Centroid:   centroid,
		Spread:     pca.calculateSpread(profile, centroid),
		Uniformity: pca.calculateUniformity(profile),
	}
}

// ExtractPitchClasses returns the pitch classes whose weight reaches
// threshold, heaviest first
func (pca *PitchClassAnalyzer) ExtractPitchClasses(profile *PitchClassProfile, threshold float64) []PitchClass {
	var pitchClasses []PitchClass
	for pc, w := range profile.Profile {
		if w > 0 && w >= threshold {
			pitchClasses = append(pitchClasses, PitchClass{
				Class:  pc,
				Name:   pca.pitchClassNames[pc],
				Weight: w,
			})
		}
	}

	slices.SortStableFunc(pitchClasses, func(a, b PitchClass) int {
		switch {
		case a.Weight > b.Weight:
			return -1
		case a.Weight < b.Weight:
			return 1
		}
		return a.Class - b.Class
	})

	return pitchClasses
}

// PitchClassSet returns the distinct pitch classes of a note sequence in
// ascending order
func PitchClassSet(notes []theory.SpelledNote) []int {
	seen := make([]bool, PitchClasses)
	for _, n := range notes {
		seen[n.PitchClass()] = true
	}

	var set []int
	for pc, ok := range seen {
		if ok {
			set = append(set, pc)
		}
	}
	return set
}

// IntervalVector counts the interval classes 1-6 between every pair of
// pitch classes in the set
func IntervalVector(set []int) [6]int {
	var vector [6]int
	for i := 0; i < len(set); i++ {
		for j := i + 1; j < len(set); j++ {
			d := ((set[j]-set[i])%PitchClasses + PitchClasses) % PitchClasses
			if d > PitchClasses/2 {
				d = PitchClasses - d
			}
			if d > 0 {
				vector[d-1]++
			}
		}
	}
	return vector
}

// TransposeProfile transposes a pitch class profile by semitones
func (pca *PitchClassAnalyzer) TransposeProfile(profile []float64, semitones int) []float64 {
	if len(profile) != PitchClasses {
		return profile
	}
	return common.Rotate(profile, semitones)
}

// ComparePitchClassProfiles compares two pitch class profiles
func (pca *PitchClassAnalyzer) ComparePitchClassProfiles(profile1, profile2 []float64) map[string]float64 {
	metrics := make(map[string]float64)

	if len(profile1) != PitchClasses || len(profile2) != PitchClasses {
		return metrics
	}

	metrics["cosine_similarity"] = pca.cosineSimilarity(profile1, profile2)
	metrics["euclidean_distance"] = floats.Distance(profile1, profile2, 2)
	metrics["manhattan_distance"] = floats.Distance(profile1, profile2, 1)
	metrics["correlation"] = Correlation(profile1, profile2)

	return metrics
}

// AnalyzeKeyRelationships scores tonal relationships inside a profile
func (pca *PitchClassAnalyzer) AnalyzeKeyRelationships(profile []float64) map[string]float64 {
	analysis := make(map[string]float64)

	if len(profile) != PitchClasses {
		return analysis
	}

	analysis["tonic_dominant_strength"] = pca.analyzeTonicDominant(profile)
	analysis["major_triad_strength"] = pca.analyzeTriadicContent(profile, []int{0, 4, 7})
	analysis["minor_triad_strength"] = pca.analyzeTriadicContent(profile, []int{0, 3, 7})

	return analysis
}

// Correlation is the Pearson correlation of two equally long vectors, 0 when
// either is constant
func Correlation(a, b []float64) float64 {
	if len(a) != len(b) || len(a) < 2 {
		return 0.0
	}
	if common.StandardDeviation(a) < 1e-10 || common.StandardDeviation(b) < 1e-10 {
		return 0.0
	}
	return stat.Correlation(a, b, nil)
}

// calculateEntropy calculates Shannon entropy of pitch class distribution in bits
func (pca *PitchClassAnalyzer) calculateEntropy(profile []float64) float64 {
	if floats.Sum(profile) < 1e-10 {
		return 0.0
	}
	return stat.Entropy(profile) / math.Ln2
}

// calculateCentroid calculates the circular centroid of the distribution
func (pca *PitchClassAnalyzer) calculateCentroid(profile []float64) float64 {
	sumSin := 0.0
	sumCos := 0.0

	for pc, weight := range profile {
		angle := 2.0 * math.Pi * float64(pc) / PitchClasses
		sumSin += weight * math.Sin(angle)
		sumCos += weight * math.Cos(angle)
	}

	centroidAngle := math.Atan2(sumSin, sumCos)
	if centroidAngle < 0 {
		centroidAngle += 2.0 * math.Pi
	}

	return centroidAngle * PitchClasses / (2.0 * math.Pi)
}

// calculateSpread calculates spread around centroid
func (pca *PitchClassAnalyzer) calculateSpread(profile []float64, centroid float64) float64 {
	sumWeightedDistance := 0.0
	totalWeight := 0.0

	for pc, weight := range profile {
		distance := math.Min(
			math.Abs(float64(pc)-centroid),
			PitchClasses-math.Abs(float64(pc)-centroid),
		)
		sumWeightedDistance += weight * distance * distance
		totalWeight += weight
	}

	if totalWeight > 1e-10 {
		return math.Sqrt(sumWeightedDistance / totalWeight)
	}
	return 0.0
}

// calculateUniformity is 1 for a flat distribution and falls toward 0 as
// weight concentrates
func (pca *PitchClassAnalyzer) calculateUniformity(profile []float64) float64 {
	mean := 1.0 / PitchClasses
	variance := 0.0

	for _, val := range profile {
		diff := val - mean
		variance += diff * diff
	}
	variance /= PitchClasses

	return 1.0 - math.Sqrt(variance/(mean*mean))
}

// cosineSimilarity calculates cosine similarity
func (pca *PitchClassAnalyzer) cosineSimilarity(a, b []float64) float64 {
	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)

	if normA > 1e-10 && normB > 1e-10 {
		return floats.Dot(a, b) / (normA * normB)
	}
	return 0.0
}

// analyzeTonicDominant finds the strongest tonic-dominant pair
func (pca *PitchClassAnalyzer) analyzeTonicDominant(profile []float64) float64 {
	maxStrength := 0.0

	for tonic := 0; tonic < PitchClasses; tonic++ {
		dominant := (tonic + 7) % PitchClasses
		strength := profile[tonic] * profile[dominant]
		if strength > maxStrength {
			maxStrength = strength
		}
	}

	return maxStrength
}

// analyzeTriadicContent finds the strongest triad of the given shape
func (pca *PitchClassAnalyzer) analyzeTriadicContent(profile []float64, intervals []int) float64 {
	maxStrength := 0.0

	for root := 0; root < PitchClasses; root++ {
		strength := 1.0
		for _, interval := range intervals {
			strength *= profile[(root+interval)%PitchClasses]
		}
		if strength > maxStrength {
			maxStrength = strength
		}
	}

	return maxStrength
}
