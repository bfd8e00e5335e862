package fixture

import (
	"time"

	"github.com/robmorgan/helios/control"
	"github.com/robmorgan/helios/logger"
)

// Control names exposed by the Venus.
const (
	ControlBaseRotation  = "BaseRotation"
	ControlCradleMotion  = "CradleMotion"
	ControlHeadRotation  = "HeadRotation"
	ControlColorRotation = "ColorRotation"
	ControlLamp          = "Lamp"
)

// The color carousel chewed itself to pieces at full speed, so its rotation is
// rendered at half the commanded rate.
const venusColorWheelScale = 0.5

// Venus drives the RA Venus, an 8-channel moving fixture:
//
//	1 - base rotation direction
//	2 - base rotation speed
//	3 - cradle translation speed
//	4 - head rotation direction
//	5 - head rotation speed
//	6 - color carousel direction
//	7 - color carousel speed
//	8 - lamp on/off
//
// Motor direction channels split at 127; lamp is on above 127.
type Venus struct {
	name string

	baseRotation  *Ramp
	cradleMotion  *Ramp
	headRotation  *Ramp
	colorRotation *Ramp
	lampOn        bool
}

// NewVenus creates a Venus at rest. rampTime smooths motor moves; zero snaps.
func NewVenus(name string, rampTime time.Duration) *Venus {
	return &Venus{
		name:          name,
		baseRotation:  NewRamp(0, rampTime),
		cradleMotion:  NewRamp(0, rampTime),
		headRotation:  NewRamp(0, rampTime),
		colorRotation: NewRamp(0, rampTime),
	}
}

func (v *Venus) Name() string {
	return v.name
}

func (v *Venus) ChannelCount() int {
	return 8
}

// PatchControls registers the Venus's controls under its fixture name.
func (v *Venus) PatchControls(b *control.Builder) error {
	handlers := map[string]control.Handler{
		ControlBaseRotation:  v.bipolarHandler(ControlBaseRotation, v.baseRotation),
		ControlCradleMotion:  v.unipolarHandler(ControlCradleMotion, v.cradleMotion),
		ControlHeadRotation:  v.bipolarHandler(ControlHeadRotation, v.headRotation),
		ControlColorRotation: v.bipolarHandler(ControlColorRotation, v.colorRotation),
		ControlLamp: func(value float64) {
			v.lampOn = value > 0.5
		},
	}
	for name, h := range handlers {
		if err := b.Register(control.ID{Group: v.name, Name: name}, h); err != nil {
			return err
		}
	}
	return nil
}

func (v *Venus) bipolarHandler(ctl string, r *Ramp) control.Handler {
	return func(value float64) {
		clamped, inDomain := NewBipolar(value)
		if !inDomain {
			logger.GetProjectLogger().Warnf("%s/%s: value %v outside [-1,1], clamped to %v", v.name, ctl, value, float64(clamped))
		}
		r.SetTarget(float64(clamped))
	}
}

func (v *Venus) unipolarHandler(ctl string, r *Ramp) control.Handler {
	return func(value float64) {
		clamped, inDomain := NewUnipolar(value)
		if !inDomain {
			logger.GetProjectLogger().Warnf("%s/%s: value %v outside [0,1], clamped to %v", v.name, ctl, value, float64(clamped))
		}
		r.SetTarget(float64(clamped))
	}
}

// Update advances the motion ramps.
func (v *Venus) Update(delta time.Duration) {
	v.baseRotation.Update(delta)
	v.cradleMotion.Update(delta)
	v.headRotation.Update(delta)
	v.colorRotation.Update(delta)
}

// Render writes all 8 channels.
func (v *Venus) Render(buf []byte) {
	buf[0], buf[1] = BipolarToDirAndMag(Bipolar(v.baseRotation.Current()))
	buf[2] = UnipolarToByte(Unipolar(v.cradleMotion.Current()))
	buf[3], buf[4] = BipolarToDirAndMag(Bipolar(v.headRotation.Current()))
	buf[5], buf[6] = BipolarToDirAndMag(Bipolar(v.colorRotation.Current() * venusColorWheelScale))
	buf[7] = BoolToByte(v.lampOn)
}

// Reset stops every motor and kills the lamp.
func (v *Venus) Reset() {
	v.baseRotation.Snap(0)
	v.cradleMotion.Snap(0)
	v.headRotation.Snap(0)
	v.colorRotation.Snap(0)
	v.lampOn = false
}
