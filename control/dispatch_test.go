package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch(t *testing.T) {
	t.Parallel()

	var got float64
	b := NewBuilder()
	require.NoError(t, b.Register(ID{Group: "venus", Name: "BaseRotation"}, func(v float64) { got = v }))
	table := b.Build()

	require.NoError(t, table.Dispatch(Event{ID: ID{Group: "venus", Name: "BaseRotation"}, Value: 0.5}))
	assert.Equal(t, 0.5, got)
}

func TestDispatchUnknownControl(t *testing.T) {
	t.Parallel()

	called := false
	b := NewBuilder()
	require.NoError(t, b.Register(ID{Group: "venus", Name: "BaseRotation"}, func(v float64) { called = true }))
	table := b.Build()

	// known group, unknown name
	err := table.Dispatch(Event{ID: ID{Group: "venus", Name: "Nope"}, Value: 1})
	require.Error(t, err)
	var unknownControl *UnknownControlError
	require.ErrorAs(t, err, &unknownControl)

	// unknown group entirely
	err = table.Dispatch(Event{ID: ID{Group: "ghost", Name: "BaseRotation"}, Value: 1})
	require.Error(t, err)
	var unknownGroup *UnknownControlGroupError
	require.ErrorAs(t, err, &unknownGroup)

	// neither touched any handler, and the table still dispatches afterwards
	assert.False(t, called)
	require.NoError(t, table.Dispatch(Event{ID: ID{Group: "venus", Name: "BaseRotation"}, Value: 1}))
	assert.True(t, called)
}

func TestRegisterDuplicateFails(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	id := ID{Group: "venus", Name: "Lamp"}
	require.NoError(t, b.Register(id, func(float64) {}))
	require.Error(t, b.Register(id, func(float64) {}))
}

func TestRegisterNilHandlerFails(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	require.Error(t, b.Register(ID{Group: "venus", Name: "Lamp"}, nil))
}

func TestTableIsImmutableAfterBuild(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	require.NoError(t, b.Register(ID{Group: "a", Name: "x"}, func(float64) {}))
	table := b.Build()

	// registrations after Build don't leak into the table
	require.NoError(t, b.Register(ID{Group: "a", Name: "y"}, func(float64) {}))
	assert.Equal(t, 1, table.Len())
}

func TestIDsAreSorted(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	require.NoError(t, b.Register(ID{Group: "b", Name: "z"}, func(float64) {}))
	require.NoError(t, b.Register(ID{Group: "a", Name: "y"}, func(float64) {}))
	require.NoError(t, b.Register(ID{Group: "a", Name: "x"}, func(float64) {}))
	table := b.Build()

	ids := table.IDs()
	require.Equal(t, []ID{
		{Group: "a", Name: "x"},
		{Group: "a", Name: "y"},
		{Group: "b", Name: "z"},
	}, ids)
}
