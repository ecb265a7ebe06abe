package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func letters(notes []SpelledNote) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.Letter
	}
	return out
}

func names(notes []SpelledNote) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.String()
	}
	return out
}

func TestGenerateScaleCMajor(t *testing.T) {
	notes, err := GenerateScale(note(t, "C"), majorIntervals, AccidentalSet{}, 4)
	require.NoError(t, err)
	require.Len(t, notes, SequenceLength)

	assert.Equal(t, []string{"C", "D", "E", "F", "G", "A", "B", "C"}, letters(notes[:8]))
	for _, n := range notes {
		assert.Empty(t, n.Accidental)
		assert.Empty(t, n.Glyph)
	}
	assert.Equal(t, notes[0].Octave+1, notes[7].Octave)
	assert.Equal(t, notes[0].Octave+2, notes[14].Octave)
}

func TestGenerateScaleCMinorInEb(t *testing.T) {
	key, err := LookupKey("Eb")
	require.NoError(t, err)

	notes, err := GenerateScale(note(t, "C"), minorIntervals, key.Accidentals, 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"C4", "D4", "Eb4", "F4", "G4", "Ab4", "Bb4", "C5"}, names(notes[:8]))
	for _, n := range notes {
		assert.Empty(t, n.Glyph, n.String())
	}
}

func TestGenerateScaleGlyphs(t *testing.T) {
	key, err := LookupKey("Eb")
	require.NoError(t, err)

	notes, err := GenerateScale(note(t, "C"), harmonicMinorIntervals, key.Accidentals, 4)
	require.NoError(t, err)

	// The raised seventh cancels the Bb of the signature.
	assert.Equal(t, "B4", notes[6].String())
	assert.Equal(t, NaturalGlyph, notes[6].Glyph)
	assert.Empty(t, notes[5].Glyph)

	notes, err = GenerateScale(note(t, "A"), harmonicMinorIntervals, AccidentalSet{}, 4)
	require.NoError(t, err)
	assert.Equal(t, "G#5", notes[6].String())
	assert.Equal(t, Sharp, notes[6].Glyph)
}

func TestGenerateScaleOctaveRollover(t *testing.T) {
	for _, name := range Scales() {
		def, err := LookupScale(name)
		require.NoError(t, err)

		for _, first := range []string{"C", "A", "B", "F#", "Bb", "G#", "B#"} {
			notes, err := GenerateScale(note(t, first), def.Intervals, AccidentalSet{}, 3)
			if err != nil {
				assert.ErrorIs(t, err, ErrUndefinedTransition)
				continue
			}
			assert.Equal(t, 3, notes[0].Octave)
			for i := 1; i < len(notes); i++ {
				prev, cur := notes[i-1], notes[i]
				if crossesOctave(prev.Letter, cur.Letter) {
					assert.Equal(t, prev.Octave+1, cur.Octave, "%s on %s: %s -> %s", name, first, prev, cur)
				} else {
					assert.Equal(t, prev.Octave, cur.Octave, "%s on %s: %s -> %s", name, first, prev, cur)
				}
			}
		}
	}
}

func TestGenerateScaleEnharmonicRollover(t *testing.T) {
	// B# sounds like C but is still written below the octave line.
	notes, err := GenerateScale(note(t, "C#"), harmonicMinorIntervals, AccidentalSet{}, 4)
	require.NoError(t, err)
	assert.Equal(t, "B#4", notes[6].String())
	assert.Equal(t, "C#5", notes[7].String())
}

func TestGenerateScaleUndefinedTransition(t *testing.T) {
	_, err := GenerateScale(note(t, "E##"), majorIntervals, AccidentalSet{}, 4)
	assert.ErrorIs(t, err, ErrUndefinedTransition)

	_, err = GenerateScale(note(t, "C"), nil, AccidentalSet{}, 4)
	assert.ErrorIs(t, err, ErrUndefinedTransition)
}

func TestGenerateScaleIsIdempotent(t *testing.T) {
	key, err := LookupKey("A")
	require.NoError(t, err)

	a, err := GenerateScale(note(t, "F#"), melodicMinorIntervals, key.Accidentals, 4)
	require.NoError(t, err)
	b, err := GenerateScale(note(t, "F#"), melodicMinorIntervals, key.Accidentals, 4)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
