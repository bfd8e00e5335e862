package dmx

import (
	"github.com/sirupsen/logrus"
)

// LogWriter is a transmitter for bench runs without hardware: it logs a short
// prefix of each frame instead of sending it anywhere.
type LogWriter struct {
	Log    logrus.FieldLogger
	Window int
}

func (w *LogWriter) Transmit(frame []byte) error {
	window := w.Window
	if window <= 0 || window > len(frame) {
		window = 16
	}
	w.Log.Debugf("frame: % x ...", frame[:window])
	return nil
}

func (w *LogWriter) Close() error {
	return nil
}
