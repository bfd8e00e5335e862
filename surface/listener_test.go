package surface

import (
	"testing"

	"github.com/hypebeast/go-osc/osc"
	"github.com/robmorgan/helios/control"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatArgument(t *testing.T) {
	t.Parallel()

	cases := []struct {
		arg  interface{}
		want float64
	}{
		{float32(0.5), 0.5},
		{float64(0.25), 0.25},
		{int32(1), 1},
		{int64(0), 0},
		{true, 1},
		{false, 0},
	}
	for _, c := range cases {
		msg := osc.NewMessage("/venus/BaseRotation", c.arg)
		got, err := floatArgument(msg)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}

func TestFloatArgumentRejectsJunk(t *testing.T) {
	t.Parallel()

	_, err := floatArgument(osc.NewMessage("/venus/BaseRotation"))
	require.Error(t, err)

	_, err = floatArgument(osc.NewMessage("/venus/BaseRotation", "fast"))
	require.Error(t, err)
}

func TestNewListenerRegistersPatchedControls(t *testing.T) {
	t.Parallel()

	ids := []control.ID{
		{Group: "venus", Name: "BaseRotation"},
		{Group: "venus", Name: "Lamp"},
	}

	var got []control.Event
	l, err := NewListener("127.0.0.1:0", ids, func(ev control.Event) {
		got = append(got, ev)
	})
	require.NoError(t, err)
	require.NotNil(t, l)

	// drive the dispatcher directly rather than over UDP
	l.server.Dispatcher.Dispatch(osc.NewMessage("/venus/BaseRotation", float32(-0.5)))
	require.Len(t, got, 1)
	assert.Equal(t, control.ID{Group: "venus", Name: "BaseRotation"}, got[0].ID)
	assert.InDelta(t, -0.5, got[0].Value, 1e-6)

	// unpatched addresses never reach the queue
	l.server.Dispatcher.Dispatch(osc.NewMessage("/ghost/Lamp", float32(1)))
	require.Len(t, got, 1)
}
