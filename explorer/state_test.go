package explorer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-escala/logging"
)

func TestMain(m *testing.M) {
	logging.SetGlobalLogger(&logging.NoOpLogger{})
	os.Exit(m.Run())
}

func TestParseState(t *testing.T) {
	tests := []struct {
		query string
		want  State
	}{
		{"index=3&scale=Minor", State{ScaleID: "Minor", Index: 3}},
		{"?scale=Harmonic+Minor&index=-2", State{ScaleID: "Harmonic Minor", Index: -2}},
		{"", State{ScaleID: "Major"}},
		{"index=abc&scale=Dorian", State{ScaleID: "Dorian"}},
		{"index=2.5", State{ScaleID: "Major"}},
		{"index=4&scale=Bebop", State{ScaleID: "Major", Index: 4}},
		{"scale=%zz", State{ScaleID: "Major"}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseState(tt.query))
		})
	}
}

func TestStateEncodeRoundTrip(t *testing.T) {
	s := State{ScaleID: "Melodic Minor", Index: -7}
	assert.Equal(t, "index=-7&scale=Melodic+Minor", s.Encode())
	assert.Equal(t, s, ParseState(s.Encode()))
}

func TestStateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state")

	s, err := LoadStateFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultState(), s)

	want := State{ScaleID: "Lydian", Index: 5}
	require.NoError(t, SaveStateFile(path, want))

	s, err = LoadStateFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, s)
}
