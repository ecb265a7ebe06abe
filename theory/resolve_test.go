package theory

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMajorAtZero(t *testing.T) {
	res, err := Resolve("Major", 0)
	require.NoError(t, err)

	assert.Equal(t, "C", res.KeyName)
	assert.Empty(t, res.KeyAccidentals)
	assert.Equal(t, "C Major", res.DisplayLabel)
	require.Len(t, res.Notes, SequenceLength)
	assert.Equal(t, []string{"C4", "D4", "E4", "F4", "G4", "A4", "B4", "C5"}, names(res.Notes[:8]))
	for _, n := range res.Notes {
		assert.Empty(t, n.Glyph)
	}
}

func TestResolveMinorAtZero(t *testing.T) {
	res, err := Resolve("Minor", 0)
	require.NoError(t, err)

	assert.Equal(t, "Eb", res.KeyName)
	assert.ElementsMatch(t, []string{"Bb", "Eb", "Ab"}, res.KeyAccidentals)
	assert.Equal(t, "C", res.Notes[0].Name())
	assert.Equal(t, "Eb", res.Notes[2].Name())
	assert.Empty(t, res.Notes[2].Glyph)
	assert.Equal(t, "C Minor", res.DisplayLabel)
}

func TestResolveTransposed(t *testing.T) {
	tests := []struct {
		scale string
		index int
		key   string
		label string
		first []string
	}{
		{"Major", 1, "Db", "Db Major", []string{"Db4", "Eb4", "F4", "Gb4", "Ab4", "Bb4", "C5", "Db5"}},
		{"Major", -1, "B", "B Major", []string{"B4", "C#5", "D#5", "E5", "F#5", "G#5", "A#5", "B5"}},
		{"Minor", 1, "E", "C# Minor", []string{"C#4", "D#4", "E4", "F#4", "G#4", "A4", "B4", "C#5"}},
		{"Minor", 3, "F#", "D# Minor", []string{"D#4", "E#4", "F#4", "G#4", "A#4", "B4", "C#5", "D#5"}},
		{"Dorian", 0, "F", "G Dorian", []string{"G4", "A4", "Bb4", "C5", "D5", "E5", "F5", "G5"}},
		{"Dorian", 1, "F#", "G# Dorian", []string{"G#4", "A#4", "B4", "C#5", "D#5", "E#5", "F#5", "G#5"}},
		{"Phrygian", 6, "F#", "A# Phrygian", []string{"A#4", "B4", "C#5", "D#5", "E#5", "F#5", "G#5", "A#5"}},
		{"Lydian", 1, "Db", "Gb Lydian", []string{"Gb4", "Ab4", "Bb4", "C5", "Db5", "Eb5", "F5", "Gb5"}},
		{"Harmonic Minor", 8, "B", "G# Harmonic Minor", []string{"G#4", "A#4", "B4", "C#5", "D#5", "E5", "F##5", "G#5"}},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			res, err := Resolve(tt.scale, tt.index)
			require.NoError(t, err)
			assert.Equal(t, tt.key, res.KeyName)
			assert.Equal(t, tt.label, res.DisplayLabel)
			assert.Equal(t, tt.first, names(res.Notes[:8]))
		})
	}
}

func TestResolveEveryCatalogEntry(t *testing.T) {
	for _, name := range Scales() {
		for index := -24; index <= 24; index++ {
			res, err := Resolve(name, index)
			require.NoError(t, err, "%s at %d", name, index)
			assert.NotEqual(t, directionMixed, res.KeyAccidentals.Direction())

			wrapped, err := Resolve(name, index+12)
			require.NoError(t, err)
			assert.Equal(t, res.KeyName, wrapped.KeyName)
			assert.Equal(t, res.Notes, wrapped.Notes)
		}
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	a, err := Resolve("Melodic Minor", 7)
	require.NoError(t, err)
	b, err := Resolve("Melodic Minor", 7)
	require.NoError(t, err)

	ja, err := json.Marshal(a)
	require.NoError(t, err)
	jb, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, ja, jb)
}

func TestResolveOptions(t *testing.T) {
	res, err := Resolve("Major", 0, WithBaseOctave(2), WithNoteCount(8))
	require.NoError(t, err)
	require.Len(t, res.Notes, 8)
	assert.Equal(t, "C2", res.Notes[0].String())
	assert.Equal(t, "C3", res.Notes[7].String())

	res, err = Resolve("Major", 0, WithNoteCount(0))
	require.NoError(t, err)
	assert.Len(t, res.Notes, SequenceLength)
}

func TestResolveUnknownScale(t *testing.T) {
	_, err := Resolve("Bebop", 0)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Panics(t, func() { MustResolve("Bebop", 0) })
	assert.NotPanics(t, func() { MustResolve("Locrian", -5) })
}

// F natural has no registered equivalent, so Locrian at 6 is spelled from F
// against the F# signature and every degree needs a glyph.
func TestResolveLocrianAgainstSharpSignature(t *testing.T) {
	res, err := Resolve("Locrian", 6)
	require.NoError(t, err)

	assert.Equal(t, "F#", res.KeyName)
	assert.Equal(t, "F Locrian", res.DisplayLabel)
	assert.Equal(t, []string{"F4", "Gb4", "Ab4", "Bb4", "Cb5", "Db5", "Eb5", "F5"}, names(res.Notes[:8]))
	assert.Equal(t, NaturalGlyph, res.Notes[0].Glyph)
	for _, n := range res.Notes {
		assert.NotEmpty(t, n.Glyph, n.String())
	}
}

func TestIndexFor(t *testing.T) {
	tests := []struct {
		scale string
		note  string
		index int
	}{
		{"Major", "C4", 0},
		{"Major", "Eb4", 3},
		{"Major", "D#4", 3},
		{"Major", "B3", 11},
		{"Dorian", "G4", 0},
		{"Dorian", "F#4", 11},
		{"Locrian", "C5", 1},
	}

	for _, tt := range tests {
		t.Run(tt.scale+" "+tt.note, func(t *testing.T) {
			n, err := ParseScientific(tt.note)
			require.NoError(t, err)

			index, err := IndexFor(tt.scale, n)
			require.NoError(t, err)
			assert.Equal(t, tt.index, index)
			assert.Equal(t, n.PitchClass(), MustResolve(tt.scale, index).Notes[0].PitchClass())
		})
	}

	_, err := IndexFor("Bebop", SpelledNote{Letter: "C"})
	assert.ErrorIs(t, err, ErrNotFound)
}
