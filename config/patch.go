package config

import (
	"fmt"
	"time"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/robmorgan/helios/control"
	"github.com/robmorgan/helios/dmx"
	"github.com/robmorgan/helios/fixture"
)

// Fixture profiles the patch understands.
const (
	ProfileVenus = "venus"
	ProfilePar   = "rgb-par"
)

// Patch builds the configured fixtures and the dispatch table covering every
// control they expose. Called once at startup; the results are handed to the
// render loop and never mutated again.
func (c *Config) Patch() ([]fixture.Patch, *control.Table, error) {
	builder := control.NewBuilder()
	patches := make([]fixture.Patch, 0, len(c.Fixtures))

	for _, fc := range c.Fixtures {
		ramp, err := fc.rampTime()
		if err != nil {
			return nil, nil, err
		}

		var fix fixture.Fixture
		switch fc.Profile {
		case ProfileVenus:
			fix = fixture.NewVenus(fc.Name, ramp)
		case ProfilePar:
			par := fixture.NewPar(fc.Name, ramp)
			if fc.Color != "" {
				if err := par.SetColorHex(fc.Color); err != nil {
					return nil, nil, err
				}
			}
			fix = par
		default:
			return nil, nil, fmt.Errorf("fixture %q has unknown profile %q", fc.Name, fc.Profile)
		}

		if err := fix.PatchControls(builder); err != nil {
			return nil, nil, err
		}
		patches = append(patches, fixture.Patch{Fixture: fix, Base: fc.Address})
	}

	if err := fixture.ValidatePatches(patches, dmx.UniverseSize); err != nil {
		return nil, nil, err
	}
	return patches, builder.Build(), nil
}

func (fc FixtureConfig) rampTime() (time.Duration, error) {
	if fc.Ramp == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(fc.Ramp)
	if err != nil {
		return 0, errors.WithStackTrace(err)
	}
	if d < 0 {
		return 0, fmt.Errorf("fixture %q has negative ramp %q", fc.Name, fc.Ramp)
	}
	return d, nil
}
