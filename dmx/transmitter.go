package dmx

// Transmitter pushes one full universe frame to the output hardware. The handle
// is owned by the render loop; implementations are not required to be safe for
// concurrent use.
type Transmitter interface {
	Transmit(frame []byte) error
	Close() error
}
