package theory

import (
	"fmt"
	"slices"
)

// ScaleLength is the number of steps in every catalog interval pattern.
const ScaleLength = 7

// ScaleDefinition describes a named scale type.
type ScaleDefinition struct {
	Name string `json:"name" toml:"name"`

	// Intervals are the steps between consecutive degrees, in semitones.
	// Traversal wraps around the pattern.
	Intervals []int `json:"intervals" toml:"intervals"`

	// StartNote is the first degree at transposition index 0.
	StartNote string `json:"start_note" toml:"start_note"`

	// StartKey is the key signature used at transposition index 0.
	StartKey string `json:"start_key" toml:"start_key"`
}

var (
	majorIntervals         = []int{2, 2, 1, 2, 2, 2, 1}
	minorIntervals         = []int{2, 1, 2, 2, 1, 2, 2}
	dorianIntervals        = []int{2, 1, 2, 2, 2, 1, 2}
	phrygianIntervals      = []int{1, 2, 2, 2, 1, 2, 2}
	lydianIntervals        = []int{2, 2, 2, 1, 2, 2, 1}
	mixolydianIntervals    = []int{2, 2, 1, 2, 2, 1, 2}
	locrianIntervals       = []int{1, 2, 2, 1, 2, 2, 2}
	harmonicMinorIntervals = []int{2, 1, 2, 2, 1, 3, 1}
	melodicMinorIntervals  = []int{2, 1, 2, 2, 2, 2, 1}
)

// catalog is ordered; the first entry is the default scale.
var catalog = mustValidateCatalog([]ScaleDefinition{
	{Name: "Major", Intervals: majorIntervals, StartNote: "C", StartKey: "C"},
	{Name: "Minor", Intervals: minorIntervals, StartNote: "C", StartKey: "Eb"},
	{Name: "Dorian", Intervals: dorianIntervals, StartNote: "G", StartKey: "F"},
	{Name: "Phrygian", Intervals: phrygianIntervals, StartNote: "E", StartKey: "C"},
	{Name: "Lydian", Intervals: lydianIntervals, StartNote: "F", StartKey: "C"},
	{Name: "Mixolydian", Intervals: mixolydianIntervals, StartNote: "G", StartKey: "C"},
	{Name: "Locrian", Intervals: locrianIntervals, StartNote: "B", StartKey: "C"},
	{Name: "Harmonic Minor", Intervals: harmonicMinorIntervals, StartNote: "C", StartKey: "Eb"},
	{Name: "Melodic Minor", Intervals: melodicMinorIntervals, StartNote: "C", StartKey: "Eb"},
})

func mustValidateCatalog(defs []ScaleDefinition) []ScaleDefinition {
	for _, def := range defs {
		if err := def.Validate(); err != nil {
			panic(fmt.Sprintf("theory: %v", err))
		}
	}
	return defs
}

// Validate checks the definition against the key registry and the
// transition table's step sizes.
func (d ScaleDefinition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("scale has no name")
	}
	if len(d.Intervals) != ScaleLength {
		return fmt.Errorf("scale %q: want %d intervals, got %d", d.Name, ScaleLength, len(d.Intervals))
	}
	for i, step := range d.Intervals {
		if step < HalfStep || step > AugmentedSecond {
			return fmt.Errorf("scale %q: interval %d is %d, want 1-3", d.Name, i, step)
		}
	}
	if _, err := ParseNote(d.StartNote, 0); err != nil {
		return fmt.Errorf("scale %q: start note: %w", d.Name, err)
	}
	if _, ok := keys[d.StartKey]; !ok {
		return fmt.Errorf("scale %q: start key %q: %w", d.Name, d.StartKey, ErrNotFound)
	}
	return nil
}

func (d ScaleDefinition) clone() ScaleDefinition {
	d.Intervals = slices.Clone(d.Intervals)
	return d
}

// LookupScale returns the catalog entry with the given name.
func LookupScale(id string) (ScaleDefinition, error) {
	for _, def := range catalog {
		if def.Name == id {
			return def.clone(), nil
		}
	}
	return ScaleDefinition{}, fmt.Errorf("scale %q: %w", id, ErrNotFound)
}

// Scales returns the catalog names in order.
func Scales() []string {
	names := make([]string, len(catalog))
	for i, def := range catalog {
		names[i] = def.Name
	}
	return names
}

// DefaultScale is the first catalog entry.
func DefaultScale() ScaleDefinition {
	return catalog[0].clone()
}
