package explorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-escala/theory"
)

func TestNewFallsBackToDefaultScale(t *testing.T) {
	e := New(State{ScaleID: "Bebop", Index: 2})
	assert.Equal(t, State{ScaleID: "Major", Index: 2}, e.State())
}

func TestListenersFireOnChange(t *testing.T) {
	e := New(DefaultState())

	var got []State
	e.OnChange(func(s State) { got = append(got, s) })

	e.Step(1)
	e.Step(1)
	require.NoError(t, e.SetScale("Minor"))
	e.SetIndex(-1)

	assert.Equal(t, []State{
		{ScaleID: "Major", Index: 1},
		{ScaleID: "Major", Index: 2},
		{ScaleID: "Minor", Index: 2},
		{ScaleID: "Minor", Index: -1},
	}, got)
}

func TestListenersSkipNoOpChanges(t *testing.T) {
	e := New(State{ScaleID: "Minor", Index: 4})

	calls := 0
	e.OnChange(func(State) { calls++ })

	e.SetIndex(4)
	require.NoError(t, e.SetScale("Minor"))
	e.Step(0)
	e.Restore(State{ScaleID: "Minor", Index: 4})

	assert.Zero(t, calls)
}

func TestListenersRunInOrderAndUnsubscribe(t *testing.T) {
	e := New(DefaultState())

	var order []string
	e.OnChange(func(State) { order = append(order, "first") })
	stop := e.OnChange(func(State) { order = append(order, "second") })

	e.Step(1)
	stop()
	e.Step(1)

	assert.Equal(t, []string{"first", "second", "first"}, order)
}

func TestSetScaleRejectsUnknown(t *testing.T) {
	e := New(DefaultState())
	err := e.SetScale("Bebop")
	assert.ErrorIs(t, err, theory.ErrNotFound)
	assert.Equal(t, DefaultState(), e.State())
}

func TestClickAndKeyPress(t *testing.T) {
	e := New(DefaultState())

	e.Click(10, 100)
	assert.Equal(t, 1, e.State().Index)
	e.Click(90, 100)
	e.Click(50, 100)
	assert.Equal(t, -1, e.State().Index)

	assert.True(t, e.KeyPress("up"))
	assert.True(t, e.KeyPress("up"))
	assert.True(t, e.KeyPress("down"))
	assert.False(t, e.KeyPress("left"))
	assert.Equal(t, 0, e.State().Index)

	assert.True(t, e.KeyPress("k"))
	assert.True(t, e.KeyPress("k"))
	assert.True(t, e.KeyPress("j"))
	assert.Equal(t, 1, e.State().Index)
}

func TestResolveUsesState(t *testing.T) {
	e := New(State{ScaleID: "Minor"}, WithResolveOptions(theory.WithNoteCount(8)))

	res, err := e.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "Eb", res.KeyName)
	assert.Len(t, res.Notes, 8)

	e.Step(2)
	res, err = e.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "F", res.KeyName)
	assert.Equal(t, "D Minor", res.DisplayLabel)
}

func TestRestore(t *testing.T) {
	e := New(DefaultState())
	var got State
	e.OnChange(func(s State) { got = s })

	e.Restore(State{ScaleID: "Bebop", Index: 9})
	assert.Equal(t, State{ScaleID: "Major", Index: 9}, got)
}
