package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionsPreservePitchClass(t *testing.T) {
	for name := range transitions {
		from, err := ParseNote(name, 0)
		require.NoError(t, err)

		for step := HalfStep; step <= AugmentedSecond; step++ {
			next, err := LookupTransition(name, step)
			if err != nil {
				assert.ErrorIs(t, err, ErrUndefinedTransition)
				continue
			}
			to, err := ParseNote(next, 0)
			require.NoError(t, err, "%s +%d", name, step)
			assert.Equal(t, (from.PitchClass()+step)%12, to.PitchClass(), "%s +%d -> %s", name, step, next)
			assert.Equal(t, (from.RootIndex()+1)%7, to.RootIndex(), "%s +%d -> %s", name, step, next)
		}
	}
}

func TestTransitionsCoverAllSpellings(t *testing.T) {
	assert.Len(t, transitions, len(Letters)*5)
}

func TestLookupTransition(t *testing.T) {
	next, err := LookupTransition("B", HalfStep)
	require.NoError(t, err)
	assert.Equal(t, "C", next)

	next, err = LookupTransition("Ab", AugmentedSecond)
	require.NoError(t, err)
	assert.Equal(t, "B", next)

	_, err = LookupTransition("E##", WholeStep)
	assert.ErrorIs(t, err, ErrUndefinedTransition)

	_, err = LookupTransition("H", HalfStep)
	assert.ErrorIs(t, err, ErrUndefinedTransition)

	_, err = LookupTransition("C", 4)
	assert.ErrorIs(t, err, ErrUndefinedTransition)
}
