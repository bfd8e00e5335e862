// Package config loads the startup configuration: endpoints, render cadence and
// the fixture patch. Everything here is immutable input once the loop starts.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/gruntwork-io/go-commons/errors"
	"gopkg.in/yaml.v3"
)

// Config is the full YAML configuration file.
type Config struct {
	// OSC is the control-surface listener endpoint.
	OSC OSCConfig `yaml:"osc"`

	// OLA is the DMX output daemon endpoint.
	OLA OLAConfig `yaml:"ola"`

	// FrameRate is the render cadence in frames per second. Default 25.
	FrameRate float64 `yaml:"frame_rate"`

	// QueueSize bounds the control queue.
	QueueSize int `yaml:"queue_size"`

	// TxFailureLimit is the consecutive transmit failures tolerated before the
	// loop gives up and drains.
	TxFailureLimit int `yaml:"tx_failure_limit"`

	// Monitor enables the terminal diagnostics view.
	Monitor bool `yaml:"monitor"`

	// Debug swaps the OLA output for a logging transmitter, for bench runs
	// without hardware.
	Debug bool `yaml:"debug"`

	// Fixtures is the patch list.
	Fixtures []FixtureConfig `yaml:"fixtures"`
}

type OSCConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

func (o OSCConfig) Addr() string {
	return fmt.Sprintf("%s:%d", o.Host, o.Port)
}

type OLAConfig struct {
	Address  string `yaml:"address"`
	Universe int    `yaml:"universe"`
}

// FixtureConfig patches one fixture.
type FixtureConfig struct {
	Name    string `yaml:"name"`
	Profile string `yaml:"profile"`

	// Address is the fixture's base slot in the universe, zero-indexed.
	Address int `yaml:"address"`

	// Ramp is an optional move-smoothing time like "500ms". Empty means snap.
	Ramp string `yaml:"ramp"`

	// Color is an optional startup color for par profiles, like "#2200FF".
	Color string `yaml:"color"`
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStackTrace(err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, errors.WithStackTrace(err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.OSC.Port == 0 {
		c.OSC.Port = 9000
	}
	if c.OLA.Address == "" {
		c.OLA.Address = "localhost:9010"
	}
	if c.OLA.Universe == 0 {
		c.OLA.Universe = 1
	}
	if c.FrameRate == 0 {
		c.FrameRate = 25
	}
}

func (c *Config) validate() error {
	if c.FrameRate <= 0 {
		return fmt.Errorf("frame_rate must be positive, got %v", c.FrameRate)
	}
	if len(c.Fixtures) == 0 {
		return fmt.Errorf("no fixtures patched")
	}
	seen := map[string]bool{}
	for _, f := range c.Fixtures {
		if f.Name == "" {
			return fmt.Errorf("fixture with address %d has no name", f.Address)
		}
		if seen[f.Name] {
			return fmt.Errorf("fixture name %q patched twice", f.Name)
		}
		seen[f.Name] = true
	}
	return nil
}

// Period converts the frame rate to a tick period.
func (c *Config) Period() time.Duration {
	return time.Duration(float64(time.Second) / c.FrameRate)
}
