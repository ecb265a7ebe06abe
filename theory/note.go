package theory

import (
	"fmt"
	"strconv"
	"strings"
)

// Accidentals understood by the engine.
const (
	Natural     = ""
	Sharp       = "#"
	DoubleSharp = "##"
	Flat        = "b"
	DoubleFlat  = "bb"

	// NaturalGlyph is the glyph drawn when a note cancels its key signature.
	NaturalGlyph = "n"
)

// Letters in staff order, C=0 ... B=6.
const Letters = "CDEFGAB"

// naturalValues holds the chromatic value of each unaltered letter.
var naturalValues = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// SpelledNote is a single note as it is written on a staff.
type SpelledNote struct {
	Letter     string `json:"letter" toml:"letter"`
	Accidental string `json:"accidental" toml:"accidental"`
	Octave     int    `json:"octave" toml:"octave"`

	// Glyph is the accidental the renderer must draw explicitly. Empty when
	// the key signature already implies the spelling.
	Glyph string `json:"glyph,omitempty" toml:"glyph,omitempty"`
}

// ParseNote parses a spelling such as "C", "F#" or "Bbb" at the given octave.
func ParseNote(name string, octave int) (SpelledNote, error) {
	if name == "" {
		return SpelledNote{}, fmt.Errorf("%w: empty spelling", ErrMalformedNote)
	}
	letter := strings.ToUpper(name[:1])
	if !strings.Contains(Letters, letter) {
		return SpelledNote{}, fmt.Errorf("%w: %q has no letter name", ErrMalformedNote, name)
	}
	acc := name[1:]
	if _, ok := accidentalOffset(acc); !ok {
		return SpelledNote{}, fmt.Errorf("%w: %q has unsupported accidental %q", ErrMalformedNote, name, acc)
	}
	return SpelledNote{Letter: letter, Accidental: acc, Octave: octave}, nil
}

// ParseScientific parses scientific pitch notation such as "Eb4" or "C#-1".
func ParseScientific(s string) (SpelledNote, error) {
	i := len(s)
	for i > 0 && (s[i-1] >= '0' && s[i-1] <= '9') {
		i--
	}
	if i > 0 && s[i-1] == '-' {
		i--
	}
	if i == len(s) {
		return SpelledNote{}, fmt.Errorf("%w: %q has no octave", ErrMalformedNote, s)
	}
	octave, err := strconv.Atoi(s[i:])
	if err != nil {
		return SpelledNote{}, fmt.Errorf("%w: %q: %v", ErrMalformedNote, s, err)
	}
	return ParseNote(s[:i], octave)
}

// Name returns the spelling without octave, e.g. "Eb".
func (n SpelledNote) Name() string {
	return n.Letter + n.Accidental
}

// String returns the spelling in scientific pitch notation, e.g. "Eb4".
func (n SpelledNote) String() string {
	return n.Name() + strconv.Itoa(n.Octave)
}

// RootIndex is the letter position, C=0 ... B=6.
func (n SpelledNote) RootIndex() int {
	return strings.Index(Letters, n.Letter)
}

// PitchClass is the chromatic value 0-11 of the spelling.
func (n SpelledNote) PitchClass() int {
	off, _ := accidentalOffset(n.Accidental)
	return floorMod(naturalValues[n.Letter[0]]+off, 12)
}

// IsSharp reports whether the note is raised.
func (n SpelledNote) IsSharp() bool {
	return strings.HasPrefix(n.Accidental, Sharp)
}

// IsFlat reports whether the note is lowered.
func (n SpelledNote) IsFlat() bool {
	return strings.HasPrefix(n.Accidental, Flat)
}

func accidentalOffset(acc string) (int, bool) {
	switch acc {
	case Natural:
		return 0, true
	case Sharp:
		return 1, true
	case DoubleSharp:
		return 2, true
	case Flat:
		return -1, true
	case DoubleFlat:
		return -2, true
	}
	return 0, false
}

// floorMod is modulo whose result always has the sign of n.
func floorMod(a, n int) int {
	return ((a % n) + n) % n
}
