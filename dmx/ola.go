package dmx

import (
	"fmt"

	"github.com/nickysemenza/gola"
)

// OLAWriter transmits frames to an OLA daemon (olad) over its RPC port.
type OLAWriter struct {
	client   *gola.Client
	universe int
}

// NewOLAWriter connects to olad at addr (e.g. "localhost:9010") and targets the
// given OLA universe number.
func NewOLAWriter(addr string, universe int) (*OLAWriter, error) {
	client, err := gola.New(addr)
	if err != nil {
		return nil, fmt.Errorf("could not connect to OLA at %s: %w", addr, err)
	}
	return &OLAWriter{client: client, universe: universe}, nil
}

func (w *OLAWriter) Transmit(frame []byte) error {
	ok, err := w.client.SendDmx(w.universe, frame)
	if err != nil {
		return fmt.Errorf("OLA send to universe %d: %w", w.universe, err)
	}
	if !ok {
		return fmt.Errorf("OLA refused frame for universe %d", w.universe)
	}
	return nil
}

func (w *OLAWriter) Close() error {
	w.client.Close()
	return nil
}
