package tonal

import (
	"fmt"
	"slices"
	"strings"

	"github.com/RyanBlaney/sonido-escala/algorithms/chroma"
	"github.com/RyanBlaney/sonido-escala/algorithms/common"
	"github.com/RyanBlaney/sonido-escala/theory"
)

// KeyProfile represents different key detection profiles
type KeyProfile int

const (
	KeyProfileKrumhansl KeyProfile = iota
	KeyProfileTemperley
	KeyProfileDiatonic
	KeyProfileTonicTriad
)

// KeyMode represents major or minor mode
type KeyMode int

const (
	KeyModeMajor KeyMode = iota
	KeyModeMinor
)

func (m KeyMode) String() string {
	if m == KeyModeMinor {
		return "minor"
	}
	return "major"
}

// KeyCandidate represents a potential key with confidence
type KeyCandidate struct {
	Key        int     `json:"key"`        // Key number (0=C, 1=Db, ..., 11=B)
	Mode       KeyMode `json:"mode"`       // Major or Minor
	KeyName    string  `json:"key_name"`   // Human-readable key name
	Confidence float64 `json:"confidence"` // Correlation with the profile
}

// KeyEstimationResult contains key estimation results
type KeyEstimationResult struct {
	Key        int     `json:"key"`        // Best key estimate (0-11)
	Mode       KeyMode `json:"mode"`       // Major or Minor
	KeyName    string  `json:"key_name"`   // Human-readable name (e.g., "C major")
	Confidence float64 `json:"confidence"` // Correlation of the best key

	Candidates        []KeyCandidate `json:"candidates"`
	CorrelationScores []float64      `json:"correlation_scores"` // 12 major then 12 minor
	KeyProfile        string         `json:"key_profile"`

	Clarity   float64 `json:"clarity"`   // Gap between the two best keys
	Ambiguity float64 `json:"ambiguity"` // Share of keys scoring close to the best
}

// KeyEstimationParams contains parameters for key estimation
type KeyEstimationParams struct {
	Profile       KeyProfile `json:"profile"`
	MaxCandidates int        `json:"max_candidates"`
}

// KeyProfileTemplate contains template for key profile
type KeyProfileTemplate struct {
	MajorProfile []float64 `json:"major_profile"`
	MinorProfile []float64 `json:"minor_profile"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
}

// keyProfiles holds every template, indexed by KeyProfile
var keyProfiles = map[KeyProfile]*KeyProfileTemplate{
	KeyProfileKrumhansl: {
		MajorProfile: []float64{6.35, 2.23, 3.48, 2.33, 4.38, 4.09, 2.52, 5.19, 2.39, 3.66, 2.29, 2.88},
		MinorProfile: []float64{6.33, 2.68, 3.52, 5.38, 2.60, 3.53, 2.54, 4.75, 3.98, 2.69, 3.34, 3.17},
		Name:         "Krumhansl-Schmuckler",
		Description:  "Empirical profiles based on listener ratings",
	},
	KeyProfileTemperley: {
		MajorProfile: []float64{5.0, 2.0, 3.5, 2.0, 4.5, 4.0, 2.0, 4.5, 2.0, 3.5, 1.5, 4.0},
		MinorProfile: []float64{5.0, 2.0, 3.5, 4.5, 2.0, 4.0, 2.0, 4.5, 3.5, 2.0, 1.5, 4.0},
		Name:         "Temperley",
		Description:  "Statistical profiles from musical corpora",
	},
	KeyProfileDiatonic: {
		MajorProfile: []float64{5.0, 0.0, 3.0, 0.0, 4.0, 3.5, 0.0, 4.5, 0.0, 3.0, 0.0, 2.0},
		MinorProfile: []float64{5.0, 0.0, 3.0, 3.5, 0.0, 3.5, 0.0, 4.5, 3.0, 0.0, 2.0, 0.0},
		Name:         "Diatonic",
		Description:  "Simple diatonic scale weights",
	},
	KeyProfileTonicTriad: {
		MajorProfile: []float64{5.0, 0.0, 0.0, 0.0, 3.0, 0.0, 0.0, 4.0, 0.0, 0.0, 0.0, 0.0},
		MinorProfile: []float64{5.0, 0.0, 0.0, 3.0, 0.0, 0.0, 0.0, 4.0, 0.0, 0.0, 0.0, 0.0},
		Name:         "Tonic Triad",
		Description:  "Emphasizes tonic triad notes only",
	},
}

// ParseKeyProfile maps a config name such as "krumhansl" to a KeyProfile.
func ParseKeyProfile(name string) (KeyProfile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "krumhansl", "krumhansl-schmuckler":
		return KeyProfileKrumhansl, nil
	case "temperley":
		return KeyProfileTemperley, nil
	case "diatonic":
		return KeyProfileDiatonic, nil
	case "tonic-triad", "tonic_triad", "triad":
		return KeyProfileTonicTriad, nil
	}
	return KeyProfileKrumhansl, fmt.Errorf("unknown key profile %q (want one of %s)", name, strings.Join(GetSupportedProfiles(), ", "))
}

// KeyEstimator correlates pitch-class profiles against key templates.
// It cross-checks a resolved scale: the key it finds should agree with the
// tonic and mode the scale implies.
type KeyEstimator struct {
	params KeyEstimationParams
}

// NewKeyEstimatorWithParams creates a key estimator. A zero MaxCandidates
// becomes 5 and an unknown profile becomes Krumhansl.
func NewKeyEstimatorWithParams(params KeyEstimationParams) *KeyEstimator {
	if params.MaxCandidates <= 0 {
		params.MaxCandidates = 5
	}
	if _, ok := keyProfiles[params.Profile]; !ok {
		params.Profile = KeyProfileKrumhansl
	}
	return &KeyEstimator{params: params}
}

// EstimateKeyFromNotes profiles a note sequence and estimates its key
func (ke *KeyEstimator) EstimateKeyFromNotes(notes []theory.SpelledNote) (KeyEstimationResult, error) {
	profile := chroma.NewPitchClassAnalyzer().CreateProfile(notes)
	return ke.EstimateKey(profile.Profile)
}

// EstimateKey estimates the key of a 12-bin pitch-class profile
func (ke *KeyEstimator) EstimateKey(profile []float64) (KeyEstimationResult, error) {
	if len(profile) != chroma.PitchClasses {
		return KeyEstimationResult{}, fmt.Errorf("estimate key: want %d pitch classes, got %d", chroma.PitchClasses, len(profile))
	}

	template := keyProfiles[ke.params.Profile]
	candidates := make([]KeyCandidate, 0, 2*chroma.PitchClasses)
	correlationScores := make([]float64, 2*chroma.PitchClasses)

	for key := 0; key < chroma.PitchClasses; key++ {
		majorCorr := ke.correlateWithProfile(profile, template.MajorProfile, key)
		correlationScores[key] = majorCorr
		candidates = append(candidates, KeyCandidate{
			Key:        key,
			Mode:       KeyModeMajor,
			KeyName:    GetKeyName(key, KeyModeMajor),
			Confidence: majorCorr,
		})

		minorCorr := ke.correlateWithProfile(profile, template.MinorProfile, key)
		correlationScores[key+chroma.PitchClasses] = minorCorr
		candidates = append(candidates, KeyCandidate{
			Key:        key,
			Mode:       KeyModeMinor,
			KeyName:    GetKeyName(key, KeyModeMinor),
			Confidence: minorCorr,
		})
	}

	slices.SortStableFunc(candidates, func(a, b KeyCandidate) int {
		switch {
		case a.Confidence > b.Confidence:
			return -1
		case a.Confidence < b.Confidence:
			return 1
		}
		return 0
	})

	best := candidates[0]
	if len(candidates) > ke.params.MaxCandidates {
		candidates = candidates[:ke.params.MaxCandidates]
	}

	return KeyEstimationResult{
		Key:               best.Key,
		Mode:              best.Mode,
		KeyName:           best.KeyName,
		Confidence:        best.Confidence,
		Candidates:        candidates,
		CorrelationScores: correlationScores,
		KeyProfile:        template.Name,
		Clarity:           ke.calculateClarity(correlationScores),
		Ambiguity:         ke.calculateAmbiguity(correlationScores),
	}, nil
}

// correlateWithProfile correlates the profile with a template rotated to key
func (ke *KeyEstimator) correlateWithProfile(profile, template []float64, key int) float64 {
	return chroma.Correlation(profile, common.Rotate(template, key))
}

// calculateClarity is the gap between the best and second best score
func (ke *KeyEstimator) calculateClarity(scores []float64) float64 {
	sorted := slices.Clone(scores)
	slices.Sort(sorted)
	n := len(sorted)
	if n < 2 {
		return 0.0
	}
	return sorted[n-1] - sorted[n-2]
}

// calculateAmbiguity is the share of keys scoring within 0.1 of the best
func (ke *KeyEstimator) calculateAmbiguity(scores []float64) float64 {
	if len(scores) == 0 {
		return 0.0
	}
	best := slices.Max(scores)
	near := 0
	for _, s := range scores {
		if best-s < 0.1 {
			near++
		}
	}
	return float64(near-1) / float64(len(scores)-1)
}

// Template returns the estimator's template for a key, rotated so that
// index 0 is C.
func (ke *KeyEstimator) Template(key int, mode KeyMode) []float64 {
	tmpl := keyProfiles[ke.params.Profile]
	profile := tmpl.MajorProfile
	if mode == KeyModeMinor {
		profile = tmpl.MinorProfile
	}
	return chroma.NewPitchClassAnalyzer().TransposeProfile(profile, key)
}

// GetSupportedProfiles lists the names ParseKeyProfile accepts
func GetSupportedProfiles() []string {
	return []string{"krumhansl", "temperley", "diatonic", "tonic-triad"}
}
