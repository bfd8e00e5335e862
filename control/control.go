// Package control maps opaque control-surface identifiers onto fixture state
// mutations. The table is built once at startup and read-only afterwards, so the
// render loop can dispatch without locking.
package control

import "fmt"

// ID names one control on the surface. Group is the owning fixture's name, Name
// the control within it. Both halves are agreed with the surface at patch time.
type ID struct {
	Group string
	Name  string
}

func (id ID) String() string {
	return id.Group + "/" + id.Name
}

// Event is one discrete control update: the identifier plus its new value.
// Boolean controls arrive as floats and are treated as true above 0.5.
type Event struct {
	ID    ID
	Value float64
}

// Handler applies a control value to the fixture it was registered for.
type Handler func(value float64)

// UnknownControlError reports a control name the table has no handler for, in a
// group that does exist.
type UnknownControlError struct {
	ID ID
}

func (e *UnknownControlError) Error() string {
	return fmt.Sprintf("unknown control %q in group %q", e.ID.Name, e.ID.Group)
}

// UnknownControlGroupError reports a control group no fixture claimed.
type UnknownControlGroupError struct {
	Group string
}

func (e *UnknownControlGroupError) Error() string {
	return fmt.Sprintf("unknown control group %q", e.Group)
}
