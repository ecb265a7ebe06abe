package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNote(t *testing.T) {
	tests := []struct {
		in     string
		letter string
		acc    string
		pc     int
	}{
		{"C", "C", "", 0},
		{"F#", "F", "#", 6},
		{"Bb", "B", "b", 10},
		{"Cb", "C", "b", 11},
		{"B#", "B", "#", 0},
		{"F##", "F", "##", 7},
		{"Ebb", "E", "bb", 2},
		{"e", "E", "", 4},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			n, err := ParseNote(tt.in, 4)
			require.NoError(t, err)
			assert.Equal(t, tt.letter, n.Letter)
			assert.Equal(t, tt.acc, n.Accidental)
			assert.Equal(t, tt.pc, n.PitchClass())
			assert.Equal(t, 4, n.Octave)
		})
	}
}

func TestParseNoteRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "H", "C###", "Cx", "#"} {
		_, err := ParseNote(in, 4)
		assert.ErrorIs(t, err, ErrMalformedNote, in)
	}
}

func TestParseScientific(t *testing.T) {
	n, err := ParseScientific("Eb4")
	require.NoError(t, err)
	assert.Equal(t, SpelledNote{Letter: "E", Accidental: "b", Octave: 4}, n)
	assert.Equal(t, "Eb4", n.String())

	n, err = ParseScientific("C#-1")
	require.NoError(t, err)
	assert.Equal(t, -1, n.Octave)

	_, err = ParseScientific("G")
	assert.ErrorIs(t, err, ErrMalformedNote)
}

func TestRootIndex(t *testing.T) {
	for i, l := range Letters {
		n, err := ParseNote(string(l)+"#", 0)
		require.NoError(t, err)
		assert.Equal(t, i, n.RootIndex())
	}
}
