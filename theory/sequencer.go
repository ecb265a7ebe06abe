package theory

import "fmt"

// SequenceLength is two octaves plus the closing note.
const SequenceLength = 15

// GenerateScale spells SequenceLength notes starting at first and walking
// intervals cyclically. Every note carries the glyph a renderer has to draw
// given keyAccidentals. The octave goes up each time the letter name crosses
// from A or B to C or D, whatever the accidentals.
func GenerateScale(first SpelledNote, intervals []int, keyAccidentals AccidentalSet, startOctave int) ([]SpelledNote, error) {
	if len(intervals) == 0 {
		return nil, fmt.Errorf("%w: empty interval pattern", ErrUndefinedTransition)
	}

	notes := make([]SpelledNote, 0, SequenceLength)
	current := first.Name()
	octave := startOctave

	for i := 0; i < SequenceLength; i++ {
		note, err := ParseNote(current, octave)
		if err != nil {
			return nil, err
		}
		note.Glyph = glyphFor(note, keyAccidentals)
		notes = append(notes, note)

		if i == SequenceLength-1 {
			break
		}

		next, err := LookupTransition(current, intervals[i%len(intervals)])
		if err != nil {
			return nil, fmt.Errorf("degree %d of scale on %s: %w", i+2, first.Name(), err)
		}
		if crossesOctave(current[:1], next[:1]) {
			octave++
		}
		current = next
	}

	return notes, nil
}

// glyphFor returns the accidental to draw, or "" when the signature implies it.
func glyphFor(note SpelledNote, keyAccidentals AccidentalSet) string {
	implied, altered := keyAccidentals.AlterationFor(note.Letter)
	if altered && note.Accidental == implied {
		return ""
	}
	if !altered && note.Accidental == Natural {
		return ""
	}
	if note.Accidental == Natural {
		return NaturalGlyph
	}
	return note.Accidental
}

func crossesOctave(from, to string) bool {
	return (from == "A" || from == "B") && (to == "C" || to == "D")
}
