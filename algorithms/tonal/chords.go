package tonal

import (
	"fmt"
	"slices"
	"strings"

	"github.com/RyanBlaney/sonido-escala/theory"
)

// ChordQuality represents the quality/type of a chord
type ChordQuality int

const (
	ChordMajor ChordQuality = iota
	ChordMinor
	ChordDiminished
	ChordAugmented
	ChordMaj7
	ChordMin7
	ChordDom7
	ChordMinMaj7
	ChordAug7
	ChordAugMaj7
	ChordDim7
	ChordHalfDim7
	ChordUnknown
)

// chordTemplate is a chord quality spelled as semitones above the root.
type chordTemplate struct {
	Quality   ChordQuality
	Name      string
	Symbol    string
	Intervals []int
}

var triadTemplates = []chordTemplate{
	{ChordMajor, "major", "", []int{4, 7}},
	{ChordMinor, "minor", "m", []int{3, 7}},
	{ChordDiminished, "diminished", "°", []int{3, 6}},
	{ChordAugmented, "augmented", "+", []int{4, 8}},
}

var seventhTemplates = []chordTemplate{
	{ChordMaj7, "major7", "maj7", []int{4, 7, 11}},
	{ChordMin7, "minor7", "m7", []int{3, 7, 10}},
	{ChordDom7, "dominant7", "7", []int{4, 7, 10}},
	{ChordMinMaj7, "minor-major7", "m(maj7)", []int{3, 7, 11}},
	{ChordAug7, "augmented7", "+7", []int{4, 8, 10}},
	{ChordAugMaj7, "augmented-major7", "+maj7", []int{4, 8, 11}},
	{ChordDim7, "diminished7", "°7", []int{3, 6, 9}},
	{ChordHalfDim7, "half-diminished7", "ø7", []int{3, 6, 10}},
}

var romanNumerals = [theory.ScaleLength]string{"I", "II", "III", "IV", "V", "VI", "VII"}

// DiatonicChord is a chord stacked in thirds on one scale degree.
type DiatonicChord struct {
	Degree  int          `json:"degree" toml:"degree"` // 1-7
	Roman   string       `json:"roman" toml:"roman"`
	Symbol  string       `json:"symbol" toml:"symbol"`
	Quality ChordQuality `json:"quality" toml:"quality"`
	Notes   []string     `json:"notes" toml:"notes"`
}

// DiatonicHarmony holds the triads and seventh chords of one scale.
type DiatonicHarmony struct {
	Triads   []DiatonicChord `json:"triads" toml:"triads"`
	Sevenths []DiatonicChord `json:"sevenths" toml:"sevenths"`
}

// chordSpan is the number of scale notes needed to stack a seventh on the
// last degree.
const chordSpan = theory.ScaleLength + 6

// DiatonicChords stacks thirds on every degree of a resolved scale. The
// spellings come from the sequence itself, so an Eb major scale yields Bb7,
// never A#7.
func DiatonicChords(notes []theory.SpelledNote) (DiatonicHarmony, error) {
	if len(notes) < chordSpan {
		return DiatonicHarmony{}, fmt.Errorf("need %d scale notes to build diatonic chords, got %d", chordSpan, len(notes))
	}

	var h DiatonicHarmony
	for degree := 0; degree < theory.ScaleLength; degree++ {
		tones := []theory.SpelledNote{notes[degree], notes[degree+2], notes[degree+4], notes[degree+6]}
		h.Triads = append(h.Triads, buildChord(degree, tones[:3], triadTemplates))
		h.Sevenths = append(h.Sevenths, buildChord(degree, tones, seventhTemplates))
	}
	return h, nil
}

func buildChord(degree int, tones []theory.SpelledNote, templates []chordTemplate) DiatonicChord {
	root := tones[0]
	intervals := make([]int, len(tones)-1)
	names := make([]string, len(tones))
	names[0] = root.Name()
	for i, t := range tones[1:] {
		intervals[i] = ((t.PitchClass()-root.PitchClass())%12 + 12) % 12
		names[i+1] = t.Name()
	}

	tmpl := matchTemplate(intervals, templates)
	return DiatonicChord{
		Degree:  degree + 1,
		Roman:   romanNumeral(degree, intervals[0], tmpl),
		Symbol:  root.Name() + tmpl.Symbol,
		Quality: tmpl.Quality,
		Notes:   names,
	}
}

func matchTemplate(intervals []int, templates []chordTemplate) chordTemplate {
	for _, t := range templates {
		if slices.Equal(t.Intervals, intervals) {
			return t
		}
	}
	return chordTemplate{Quality: ChordUnknown, Name: "unknown", Symbol: "?"}
}

// romanNumeral is upper case over a major third and lower case over a
// minor one.
func romanNumeral(degree, third int, tmpl chordTemplate) string {
	numeral := romanNumerals[degree]
	if third == 3 {
		numeral = strings.ToLower(numeral)
	}
	switch tmpl.Quality {
	case ChordMajor, ChordMinor, ChordUnknown:
		return numeral
	case ChordMin7, ChordMinMaj7:
		return numeral + strings.TrimPrefix(tmpl.Symbol, "m")
	default:
		return numeral + tmpl.Symbol
	}
}

// GetChordQualityName returns the human-readable name for a chord quality
func GetChordQualityName(quality ChordQuality) string {
	for _, t := range slices.Concat(triadTemplates, seventhTemplates) {
		if t.Quality == quality {
			return t.Name
		}
	}
	return "unknown"
}

func (q ChordQuality) String() string {
	return GetChordQualityName(q)
}

func (q ChordQuality) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}
