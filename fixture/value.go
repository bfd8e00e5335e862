package fixture

import (
	"math"

	"github.com/robmorgan/helios/utils"
)

// Bipolar is a motion value in [-1, 1]. Zero is the rest position; the sign picks
// the motor direction and the magnitude picks the speed.
type Bipolar float64

// Unipolar is a value in [0, 1].
type Unipolar float64

// NewBipolar clamps v into [-1, 1]. The second return reports whether v was
// already in the domain.
func NewBipolar(v float64) (Bipolar, bool) {
	clamped := utils.ClampBipolarUnit(v)
	return Bipolar(clamped), clamped == v
}

// NewUnipolar clamps v into [0, 1]. The second return reports whether v was
// already in the domain.
func NewUnipolar(v float64) (Unipolar, bool) {
	clamped := utils.ClampUnit(v)
	return Unipolar(clamped), clamped == v
}

// UnipolarToByte scales a unit value onto the full DMX range.
// Rounds half away from zero, so 0.5 lands on 128.
func UnipolarToByte(v Unipolar) byte {
	return byte(utils.Clamp(math.Round(float64(v)*255), 0, 255))
}

// UnipolarToRange scales a unit value onto [start, end]. Some fixture functions
// only respond inside a sub-range of a channel (strobe rates and the like).
func UnipolarToRange(start, end byte, v Unipolar) byte {
	span := float64(end) - float64(start)
	return byte(utils.Clamp(float64(start)+math.Round(span*float64(v)), 0, 255))
}

// BipolarToDirAndMag splits a bipolar motion value into the direction/magnitude
// channel pair used by the motor drivers: direction 0 for negative, 255 for
// positive, magnitude |v| scaled onto 0..255.
//
// Note v == 0 renders as (255, 0) — the positive direction byte with zero speed.
// The hardware treats both direction values as stopped at magnitude 0, so do not
// swap this for a "neutral" encoding without checking a real unit.
func BipolarToDirAndMag(v Bipolar) (dir, mag byte) {
	if v < 0 {
		dir = 0
	} else {
		dir = 255
	}
	mag = byte(utils.Clamp(math.Round(math.Abs(float64(v))*255), 0, 255))
	return dir, mag
}

// BoolToByte renders an on/off channel.
func BoolToByte(on bool) byte {
	if on {
		return 255
	}
	return 0
}
