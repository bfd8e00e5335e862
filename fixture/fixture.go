package fixture

import (
	"fmt"
	"time"

	"github.com/robmorgan/helios/control"
	"golang.org/x/exp/slices"
)

// Fixture is one physical lighting device. All state lives behind this interface
// and is only ever touched by the render loop goroutine, so implementations don't
// lock anything.
type Fixture interface {
	// Name identifies the fixture in the patch and doubles as its control group.
	Name() string

	// ChannelCount is the number of contiguous DMX slots the fixture occupies.
	ChannelCount() int

	// PatchControls registers the fixture's control handlers on the builder.
	PatchControls(b *control.Builder) error

	// Update advances any ramped axes by the elapsed frame time.
	Update(delta time.Duration)

	// Render writes the fixture's current state into buf, which is exactly
	// ChannelCount bytes of the universe. Every byte is written every frame.
	Render(buf []byte)

	// Reset returns every axis to rest and the lamp to off.
	Reset()
}

// Summarizer is an optional interface for fixtures that can describe their
// current look in one line for the diagnostics stream.
type Summarizer interface {
	Summary() string
}

// Patch places a fixture at a base address in the universe.
type Patch struct {
	Fixture Fixture
	Base    int
}

// ValidatePatches checks that every patched fixture fits inside the universe and
// that no two sub-ranges overlap.
func ValidatePatches(patches []Patch, universeSize int) error {
	sorted := make([]Patch, len(patches))
	copy(sorted, patches)
	slices.SortFunc(sorted, func(a, b Patch) bool { return a.Base < b.Base })

	prevEnd := 0
	prevName := ""
	for _, p := range sorted {
		end := p.Base + p.Fixture.ChannelCount()
		if p.Base < 0 || end > universeSize {
			return fmt.Errorf("fixture %q does not fit the universe: channels %d..%d", p.Fixture.Name(), p.Base, end-1)
		}
		if p.Base < prevEnd {
			return fmt.Errorf("fixture %q overlaps fixture %q at channel %d", p.Fixture.Name(), prevName, p.Base)
		}
		prevEnd = end
		prevName = p.Fixture.Name()
	}
	return nil
}
