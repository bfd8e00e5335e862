package fixture

import (
	"fmt"
	"time"

	"github.com/aybabtme/rgbterm"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/robmorgan/helios/control"
	"github.com/robmorgan/helios/logger"
)

// Control names exposed by the Par.
const (
	ControlIntensity = "Intensity"
	ControlRed       = "Red"
	ControlGreen     = "Green"
	ControlBlue      = "Blue"
)

// Par drives a 4-channel RGB par can: intensity, red, green, blue.
type Par struct {
	name string

	intensity *Ramp
	red       *Ramp
	green     *Ramp
	blue      *Ramp
}

// NewPar creates a dark par. rampTime smooths color and intensity fades.
func NewPar(name string, rampTime time.Duration) *Par {
	return &Par{
		name:      name,
		intensity: NewRamp(0, rampTime),
		red:       NewRamp(0, rampTime),
		green:     NewRamp(0, rampTime),
		blue:      NewRamp(0, rampTime),
	}
}

func (p *Par) Name() string {
	return p.name
}

func (p *Par) ChannelCount() int {
	return 4
}

// PatchControls registers the par's controls under its fixture name.
func (p *Par) PatchControls(b *control.Builder) error {
	handlers := map[string]*Ramp{
		ControlIntensity: p.intensity,
		ControlRed:       p.red,
		ControlGreen:     p.green,
		ControlBlue:      p.blue,
	}
	for name, ramp := range handlers {
		ctl, r := name, ramp
		h := func(value float64) {
			clamped, inDomain := NewUnipolar(value)
			if !inDomain {
				logger.GetProjectLogger().Warnf("%s/%s: value %v outside [0,1], clamped to %v", p.name, ctl, value, float64(clamped))
			}
			r.SetTarget(float64(clamped))
		}
		if err := b.Register(control.ID{Group: p.name, Name: ctl}, h); err != nil {
			return err
		}
	}
	return nil
}

// SetColorHex snaps the color axes to a hex color like "#FF8800". Used at patch
// time to give a par a default look before the surface says anything.
func (p *Par) SetColorHex(hex string) error {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fmt.Errorf("bad color %q for fixture %q: %w", hex, p.name, err)
	}
	p.red.Snap(c.R)
	p.green.Snap(c.G)
	p.blue.Snap(c.B)
	return nil
}

// Update advances the fade ramps.
func (p *Par) Update(delta time.Duration) {
	p.intensity.Update(delta)
	p.red.Update(delta)
	p.green.Update(delta)
	p.blue.Update(delta)
}

// Render writes all 4 channels.
func (p *Par) Render(buf []byte) {
	buf[0] = UnipolarToByte(Unipolar(p.intensity.Current()))
	buf[1] = UnipolarToByte(Unipolar(p.red.Current()))
	buf[2] = UnipolarToByte(Unipolar(p.green.Current()))
	buf[3] = UnipolarToByte(Unipolar(p.blue.Current()))
}

// Reset fades everything to black immediately.
func (p *Par) Reset() {
	p.intensity.Snap(0)
	p.red.Snap(0)
	p.green.Snap(0)
	p.blue.Snap(0)
}

// Summary renders a terminal color swatch of the par's current look.
func (p *Par) Summary() string {
	r := UnipolarToByte(Unipolar(p.red.Current() * p.intensity.Current()))
	g := UnipolarToByte(Unipolar(p.green.Current() * p.intensity.Current()))
	b := UnipolarToByte(Unipolar(p.blue.Current() * p.intensity.Current()))
	return rgbterm.FgString("████", r, g, b)
}
