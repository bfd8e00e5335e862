package fixture

import (
	"testing"
	"time"

	"github.com/robmorgan/helios/control"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func venusDispatch(t *testing.T, v *Venus) *control.Table {
	t.Helper()
	b := control.NewBuilder()
	require.NoError(t, v.PatchControls(b))
	return b.Build()
}

func TestVenusRenderAtRest(t *testing.T) {
	t.Parallel()

	v := NewVenus("venus", 0)
	buf := make([]byte, v.ChannelCount())
	v.Render(buf)

	// all motors stopped (positive direction bytes), lamp off
	assert.Equal(t, []byte{255, 0, 0, 255, 0, 255, 0, 0}, buf)
}

func TestVenusRenderScenario(t *testing.T) {
	t.Parallel()

	v := NewVenus("venus", 0)
	table := venusDispatch(t, v)

	require.NoError(t, table.Dispatch(control.Event{ID: control.ID{Group: "venus", Name: ControlBaseRotation}, Value: -0.5}))
	require.NoError(t, table.Dispatch(control.Event{ID: control.ID{Group: "venus", Name: ControlCradleMotion}, Value: 1.0}))
	require.NoError(t, table.Dispatch(control.Event{ID: control.ID{Group: "venus", Name: ControlLamp}, Value: 1.0}))

	buf := make([]byte, v.ChannelCount())
	v.Render(buf)

	assert.Equal(t, byte(0), buf[0], "base direction")
	assert.Equal(t, byte(128), buf[1], "base magnitude")
	assert.Equal(t, byte(255), buf[2], "cradle motion")
	assert.Equal(t, byte(255), buf[7], "lamp")
}

// The color carousel renders at half the commanded speed.
func TestVenusColorWheelScale(t *testing.T) {
	t.Parallel()

	v := NewVenus("venus", 0)
	table := venusDispatch(t, v)

	require.NoError(t, table.Dispatch(control.Event{ID: control.ID{Group: "venus", Name: ControlColorRotation}, Value: 1.0}))

	buf := make([]byte, v.ChannelCount())
	v.Render(buf)

	assert.Equal(t, byte(255), buf[5], "color direction")
	assert.Equal(t, byte(128), buf[6], "color magnitude is half scale")
}

func TestVenusRenderIsIdempotent(t *testing.T) {
	t.Parallel()

	v := NewVenus("venus", 0)
	table := venusDispatch(t, v)
	require.NoError(t, table.Dispatch(control.Event{ID: control.ID{Group: "venus", Name: ControlHeadRotation}, Value: 0.33}))

	first := make([]byte, v.ChannelCount())
	second := make([]byte, v.ChannelCount())
	v.Render(first)
	v.Render(second)

	assert.Equal(t, first, second)
}

// Out-of-domain values clamp to the boundary and still apply: a fader pinned
// past its end means "all the way".
func TestVenusClampsOutOfDomainValues(t *testing.T) {
	t.Parallel()

	v := NewVenus("venus", 0)
	table := venusDispatch(t, v)
	require.NoError(t, table.Dispatch(control.Event{ID: control.ID{Group: "venus", Name: ControlBaseRotation}, Value: -7.3}))

	buf := make([]byte, v.ChannelCount())
	v.Render(buf)

	assert.Equal(t, byte(0), buf[0])
	assert.Equal(t, byte(255), buf[1])
}

func TestVenusReset(t *testing.T) {
	t.Parallel()

	v := NewVenus("venus", 0)
	table := venusDispatch(t, v)
	require.NoError(t, table.Dispatch(control.Event{ID: control.ID{Group: "venus", Name: ControlBaseRotation}, Value: 1}))
	require.NoError(t, table.Dispatch(control.Event{ID: control.ID{Group: "venus", Name: ControlLamp}, Value: 1}))

	v.Reset()
	buf := make([]byte, v.ChannelCount())
	v.Render(buf)

	assert.Equal(t, []byte{255, 0, 0, 255, 0, 255, 0, 0}, buf)
}

func TestVenusRampedMove(t *testing.T) {
	t.Parallel()

	v := NewVenus("venus", time.Second)
	table := venusDispatch(t, v)
	require.NoError(t, table.Dispatch(control.Event{ID: control.ID{Group: "venus", Name: ControlBaseRotation}, Value: 1}))

	buf := make([]byte, v.ChannelCount())

	// before any update the motor hasn't moved
	v.Render(buf)
	assert.Equal(t, byte(0), buf[1])

	// after the full ramp time it is at speed
	v.Update(time.Second)
	v.Render(buf)
	assert.Equal(t, byte(255), buf[1])
}
