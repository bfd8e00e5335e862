// Package dmx holds the output side of the pipeline: the 512-slot universe
// buffer and the transmitters that push it to hardware.
package dmx

import (
	"encoding/hex"
	"fmt"
)

// UniverseSize is the number of channels in one DMX512 universe.
const UniverseSize = 512

// Universe is the addressable output buffer. It is owned exclusively by the
// render loop; nothing here locks.
type Universe struct {
	frame [UniverseSize]byte
}

// NewUniverse creates a zeroed universe.
func NewUniverse() *Universe {
	return &Universe{}
}

// Slice returns the writable sub-range [base, base+count) for one fixture.
// Writes through the slice land directly in the frame.
func (u *Universe) Slice(base, count int) ([]byte, error) {
	if base < 0 || count < 0 || base+count > UniverseSize {
		return nil, fmt.Errorf("channel range %d..%d outside universe", base, base+count-1)
	}
	return u.frame[base : base+count], nil
}

// Bytes returns the full frame for transmission. The slice aliases the frame,
// so only the render loop may hold it.
func (u *Universe) Bytes() []byte {
	return u.frame[:]
}

// Window copies out count bytes starting at base, for diagnostics snapshots
// that cross the loop boundary.
func (u *Universe) Window(base, count int) []byte {
	if base < 0 || count < 0 || base+count > UniverseSize {
		return nil
	}
	out := make([]byte, count)
	copy(out, u.frame[base:base+count])
	return out
}

func (u *Universe) String() string {
	return hex.Dump(u.frame[:])
}
