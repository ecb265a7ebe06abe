package theory

import (
	"fmt"
	"slices"
)

// Direction is the alteration direction of a key signature.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionSharps
	DirectionFlats
	directionMixed
)

func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "none"
	case DirectionSharps:
		return "sharps"
	case DirectionFlats:
		return "flats"
	default:
		return "mixed"
	}
}

// AccidentalSet is the ordered list of spellings a key signature implies,
// e.g. [Bb Eb Ab] for Eb major.
type AccidentalSet []string

// Contains reports whether the spelling is implied by the signature.
func (s AccidentalSet) Contains(name string) bool {
	return slices.Contains(s, name)
}

// AlterationFor returns the accidental the signature applies to a letter and
// whether the letter is altered at all.
func (s AccidentalSet) AlterationFor(letter string) (string, bool) {
	for _, name := range s {
		if name[:1] == letter {
			return name[1:], true
		}
	}
	return Natural, false
}

// Direction reports whether the signature uses sharps or flats.
func (s AccidentalSet) Direction() Direction {
	dir := DirectionNone
	for _, name := range s {
		var d Direction
		switch name[1:] {
		case Sharp, DoubleSharp:
			d = DirectionSharps
		case Flat, DoubleFlat:
			d = DirectionFlats
		default:
			continue
		}
		if dir != DirectionNone && dir != d {
			return directionMixed
		}
		dir = d
	}
	return dir
}

// Key is a key-signature identity. Equivalent is set for Db/C#, Eb/D# and
// Ab/G#, and also for F#/Gb and Bb/A# so that a first note spelled against
// the signature can be respelled in those keys too.
type Key struct {
	Name           string        `json:"name" toml:"name"`
	RootIndex      int           `json:"root_index" toml:"root_index"`
	ChromaticValue int           `json:"chromatic_value" toml:"chromatic_value"`
	Accidentals    AccidentalSet `json:"accidentals" toml:"accidentals"`
	Equivalent     string        `json:"equivalent,omitempty" toml:"equivalent,omitempty"`
}

func (k Key) clone() Key {
	k.Accidentals = slices.Clone(k.Accidentals)
	return k
}

var (
	sharpOrder = AccidentalSet{"F#", "C#", "G#", "D#", "A#", "E#", "B#"}
	flatOrder  = AccidentalSet{"Bb", "Eb", "Ab", "Db", "Gb", "Cb", "Fb"}
)

// keys is the key registry. Signatures are taken from the circle of fifths:
// a key with n sharps carries the first n entries of sharpOrder.
var keys = buildKeys([]struct {
	name       string
	sharps     int
	flats      int
	equivalent string
}{
	{name: "C"},
	{name: "G", sharps: 1},
	{name: "D", sharps: 2},
	{name: "A", sharps: 3},
	{name: "E", sharps: 4},
	{name: "B", sharps: 5},
	{name: "F#", sharps: 6, equivalent: "Gb"},
	{name: "C#", sharps: 7, equivalent: "Db"},
	{name: "F", flats: 1},
	{name: "Bb", flats: 2, equivalent: "A#"},
	{name: "Eb", flats: 3, equivalent: "D#"},
	{name: "Ab", flats: 4, equivalent: "G#"},
	{name: "Db", flats: 5, equivalent: "C#"},
	{name: "Gb", flats: 6, equivalent: "F#"},
	{name: "Cb", flats: 7},
})

// chromaticKeys lists the twelve usable keys by chromatic value.
var chromaticKeys = [12]string{"C", "Db", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B"}

func buildKeys(rows []struct {
	name       string
	sharps     int
	flats      int
	equivalent string
}) map[string]Key {
	out := make(map[string]Key, len(rows))
	for _, row := range rows {
		tonic, err := ParseNote(row.name, 0)
		if err != nil {
			panic(fmt.Sprintf("theory: bad key %q: %v", row.name, err))
		}
		accidentals := AccidentalSet{}
		accidentals = append(accidentals, sharpOrder[:row.sharps]...)
		accidentals = append(accidentals, flatOrder[:row.flats]...)
		if accidentals.Direction() == directionMixed {
			panic(fmt.Sprintf("theory: key %q mixes sharps and flats", row.name))
		}
		out[row.name] = Key{
			Name:           row.name,
			RootIndex:      tonic.RootIndex(),
			ChromaticValue: tonic.PitchClass(),
			Accidentals:    accidentals,
			Equivalent:     row.equivalent,
		}
	}
	return out
}

// LookupKey returns the registered key with the given name.
func LookupKey(name string) (Key, error) {
	k, ok := keys[name]
	if !ok {
		return Key{}, fmt.Errorf("key %q: %w", name, ErrNotFound)
	}
	return k.clone(), nil
}

// Keys returns every registered key name, sorted.
func Keys() []string {
	names := make([]string, 0, len(keys))
	for name := range keys {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ChromaticKeys returns the twelve usable key names ordered by chromatic value.
func ChromaticKeys() []string {
	return slices.Clone(chromaticKeys[:])
}

// equivalentOf returns the registered enharmonic alternate of a spelling.
// Spellings that are not key names themselves (D#, G#, A#) are resolved
// through the keys that list them as their equivalent.
func equivalentOf(name string) (string, bool) {
	if k, ok := keys[name]; ok && k.Equivalent != "" {
		return k.Equivalent, true
	}
	for _, k := range keys {
		if k.Equivalent == name {
			return k.Name, true
		}
	}
	return "", false
}
