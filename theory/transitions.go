package theory

import "fmt"

// Step sizes accepted by the transition table.
const (
	HalfStep         = 1
	WholeStep        = 2
	AugmentedSecond  = 3
	transitionsWidth = 3
)

// transitions maps a spelling to its successor for a half step, a whole step
// and an augmented second. The successor always carries the next letter name,
// so the table spells every step instead of deriving it from semitones.
// Empty entries would need a triple accidental.
var transitions = map[string][transitionsWidth]string{
	"Cbb": {"", "Dbb", "Db"},
	"Cb":  {"Dbb", "Db", "D"},
	"C":   {"Db", "D", "D#"},
	"C#":  {"D", "D#", "D##"},
	"C##": {"D#", "D##", ""},

	"Dbb": {"", "Ebb", "Eb"},
	"Db":  {"Ebb", "Eb", "E"},
	"D":   {"Eb", "E", "E#"},
	"D#":  {"E", "E#", "E##"},
	"D##": {"E#", "E##", ""},

	"Ebb": {"Fbb", "Fb", "F"},
	"Eb":  {"Fb", "F", "F#"},
	"E":   {"F", "F#", "F##"},
	"E#":  {"F#", "F##", ""},
	"E##": {"F##", "", ""},

	"Fbb": {"", "Gbb", "Gb"},
	"Fb":  {"Gbb", "Gb", "G"},
	"F":   {"Gb", "G", "G#"},
	"F#":  {"G", "G#", "G##"},
	"F##": {"G#", "G##", ""},

	"Gbb": {"", "Abb", "Ab"},
	"Gb":  {"Abb", "Ab", "A"},
	"G":   {"Ab", "A", "A#"},
	"G#":  {"A", "A#", "A##"},
	"G##": {"A#", "A##", ""},

	"Abb": {"", "Bbb", "Bb"},
	"Ab":  {"Bbb", "Bb", "B"},
	"A":   {"Bb", "B", "B#"},
	"A#":  {"B", "B#", "B##"},
	"A##": {"B#", "B##", ""},

	"Bbb": {"Cbb", "Cb", "C"},
	"Bb":  {"Cb", "C", "C#"},
	"B":   {"C", "C#", "C##"},
	"B#":  {"C#", "C##", ""},
	"B##": {"C##", "", ""},
}

// LookupTransition returns the spelling reached from name by step semitones.
func LookupTransition(name string, step int) (string, error) {
	row, ok := transitions[name]
	if !ok {
		return "", fmt.Errorf("%w: no transitions for %q", ErrUndefinedTransition, name)
	}
	if step < HalfStep || step > AugmentedSecond {
		return "", fmt.Errorf("%w: step %d from %q", ErrUndefinedTransition, step, name)
	}
	next := row[step-1]
	if next == "" {
		return "", fmt.Errorf("%w: step %d from %q", ErrUndefinedTransition, step, name)
	}
	return next, nil
}

