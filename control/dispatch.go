package control

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Builder accumulates control registrations before the render loop starts.
// Fixtures bind themselves into handlers at registration time, so the finished
// table never needs to look a fixture up.
type Builder struct {
	handlers map[ID]Handler
}

func NewBuilder() *Builder {
	return &Builder{
		handlers: make(map[ID]Handler),
	}
}

// Register adds a handler for id. Registering the same id twice is a patching
// mistake and fails loudly.
func (b *Builder) Register(id ID, h Handler) error {
	if h == nil {
		return fmt.Errorf("nil handler for control %v", id)
	}
	if _, exists := b.handlers[id]; exists {
		return fmt.Errorf("control %v registered twice", id)
	}
	b.handlers[id] = h
	return nil
}

// Build freezes the registrations into an immutable dispatch table. The builder
// can keep registering afterwards without affecting tables already built.
func (b *Builder) Build() *Table {
	handlers := make(map[ID]Handler, len(b.handlers))
	groups := make(map[string]struct{})
	for id, h := range b.handlers {
		handlers[id] = h
		groups[id.Group] = struct{}{}
	}
	return &Table{handlers: handlers, groups: groups}
}

// Table is the immutable control dispatch table consumed by the render loop.
type Table struct {
	handlers map[ID]Handler
	groups   map[string]struct{}
}

// Dispatch applies one control event. Unknown targets return an error without
// touching any fixture state; the caller logs and moves on.
func (t *Table) Dispatch(ev Event) error {
	h, ok := t.handlers[ev.ID]
	if !ok {
		if _, grouped := t.groups[ev.ID.Group]; !grouped {
			return &UnknownControlGroupError{Group: ev.ID.Group}
		}
		return &UnknownControlError{ID: ev.ID}
	}
	h(ev.Value)
	return nil
}

// IDs returns every registered control id, sorted for stable display.
func (t *Table) IDs() []ID {
	ids := maps.Keys(t.handlers)
	slices.SortFunc(ids, func(a, b ID) bool {
		if a.Group != b.Group {
			return a.Group < b.Group
		}
		return a.Name < b.Name
	})
	return ids
}

// Len is the number of registered controls.
func (t *Table) Len() int {
	return len(t.handlers)
}
