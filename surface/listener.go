// Package surface bridges an OSC control surface onto the control queue. It is
// boundary glue: it owns no fixture state and never blocks on the render loop.
package surface

import (
	"fmt"

	"github.com/hypebeast/go-osc/osc"
	"github.com/robmorgan/helios/control"
	"github.com/robmorgan/helios/logger"
	"github.com/sirupsen/logrus"
)

// Submit delivers one control event to the render loop without blocking.
type Submit func(control.Event)

// Listener is an OSC server translating messages addressed as
// /<fixture>/<control> into control events.
type Listener struct {
	log    *logrus.Logger
	server *osc.Server
}

// NewListener wires one OSC handler per registered control id. Messages for
// anything else never reach the queue; the surface only speaks the patched set.
func NewListener(addr string, ids []control.ID, submit Submit) (*Listener, error) {
	log := logger.GetProjectLogger()
	dispatcher := osc.NewStandardDispatcher()

	for _, id := range ids {
		id := id
		pattern := fmt.Sprintf("/%s/%s", id.Group, id.Name)
		err := dispatcher.AddMsgHandler(pattern, func(msg *osc.Message) {
			value, err := floatArgument(msg)
			if err != nil {
				log.Warnf("ignoring OSC message %s: %v", msg.Address, err)
				return
			}
			submit(control.Event{ID: id, Value: value})
		})
		if err != nil {
			return nil, fmt.Errorf("registering OSC handler %s: %w", pattern, err)
		}
	}

	return &Listener{
		log: log,
		server: &osc.Server{
			Addr:       addr,
			Dispatcher: dispatcher,
		},
	}, nil
}

// ListenAndServe blocks serving OSC until Close is called.
func (l *Listener) ListenAndServe() error {
	l.log.Infof("OSC listening on %s", l.server.Addr)
	return l.server.ListenAndServe()
}

// Close shuts the OSC server down.
func (l *Listener) Close() error {
	return l.server.CloseConnection()
}

// floatArgument pulls the first numeric argument out of an OSC message.
// Surfaces disagree about types, so ints and bools are accepted too.
func floatArgument(msg *osc.Message) (float64, error) {
	if len(msg.Arguments) == 0 {
		return 0, fmt.Errorf("no arguments")
	}
	switch v := msg.Arguments[0].(type) {
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("argument type %T is not numeric", v)
	}
}
