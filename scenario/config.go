// Package scenario runs pairwise collision checks of moving circles on a
// collision clock that can be paused.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/sarchlab/ccd/collision"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned for scenarios that cannot be run.
var ErrInvalidConfig = errors.New("scenario: invalid config")

// Config describes a scenario. Pauses are given in exterior time, the time of
// the engine that drives the collision clock. All other times are read on the
// collision clock.
type Config struct {
	Band          string        `yaml:"band"`
	Detector      string        `yaml:"detector"`
	Inclusive     *bool         `yaml:"inclusive"`
	MaxIterations int           `yaml:"max_iterations"`
	Horizon       float32       `yaml:"horizon"`
	CheckPeriod   float32       `yaml:"check_period"`
	Lookahead     float32       `yaml:"lookahead"`
	Bodies        []BodyConfig  `yaml:"bodies"`
	Pairs         [][]string    `yaml:"pairs"`
	Pauses        []PauseConfig `yaml:"pauses"`
}

// BodyConfig describes a circle moving at a constant velocity.
type BodyConfig struct {
	Name     string     `yaml:"name"`
	Radius   float32    `yaml:"radius"`
	Position [2]float32 `yaml:"position"`
	Velocity [2]float32 `yaml:"velocity"`
	Start    float32    `yaml:"start"`
	End      *float32   `yaml:"end"`
}

// PauseConfig stops the collision clock at an exterior time for a duration.
type PauseConfig struct {
	At       float32 `yaml:"at"`
	Duration float32 `yaml:"duration"`
}

// Load reads a scenario from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse reads a scenario from YAML and validates it. Unknown keys are
// rejected.
func Parse(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	c := &Config{}
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// IsInclusive tells if the checks look for the first instant inside the band.
// It defaults to true.
func (c *Config) IsInclusive() bool {
	return c.Inclusive == nil || *c.Inclusive
}

// Validate checks that the scenario can be run.
func (c *Config) Validate() error {
	if _, err := collision.ParseDistanceBand(c.Band); err != nil {
		return fmt.Errorf("%w: band: %v", ErrInvalidConfig, err)
	}

	if _, err := c.detector(); err != nil {
		return fmt.Errorf("%w: detector: %v", ErrInvalidConfig, err)
	}

	if c.MaxIterations < 0 {
		return invalidf("max_iterations %d is negative", c.MaxIterations)
	}

	if !(c.Horizon > 0) {
		return invalidf("horizon %v must be positive", c.Horizon)
	}

	if !(c.CheckPeriod > 0) {
		return invalidf("check_period %v must be positive", c.CheckPeriod)
	}

	if c.Lookahead < c.CheckPeriod {
		return invalidf("lookahead %v is shorter than check_period %v",
			c.Lookahead, c.CheckPeriod)
	}

	if err := c.validateBodies(); err != nil {
		return err
	}

	if err := c.validatePairs(); err != nil {
		return err
	}

	return c.validatePauses()
}

func (c *Config) detector() (collision.PairDetector, error) {
	if c.Detector == "" {
		return collision.NewDetector(collision.KindDistance)
	}

	return collision.ParseDetector(c.Detector)
}

func (c *Config) validateBodies() error {
	names := make(map[string]bool)

	for _, b := range c.Bodies {
		if b.Name == "" {
			return invalidf("body without a name")
		}

		if names[b.Name] {
			return invalidf("body %s is defined twice", b.Name)
		}

		names[b.Name] = true

		if !(b.Radius > 0) {
			return invalidf("body %s has radius %v", b.Name, b.Radius)
		}

		if b.End != nil && *b.End < b.Start {
			return invalidf("body %s ends at %v before it starts at %v",
				b.Name, *b.End, b.Start)
		}
	}

	return nil
}

func (c *Config) validatePairs() error {
	names := make(map[string]bool)
	for _, b := range c.Bodies {
		names[b.Name] = true
	}

	for _, p := range c.Pairs {
		if len(p) != 2 {
			return invalidf("pair %v must name two bodies", p)
		}

		if p[0] == p[1] {
			return invalidf("pair %v names the same body twice", p)
		}

		for _, n := range p {
			if !names[n] {
				return invalidf("pair %v names unknown body %s", p, n)
			}
		}
	}

	return nil
}

func (c *Config) validatePauses() error {
	pauses := c.sortedPauses()

	for i, p := range pauses {
		if p.At < 0 {
			return invalidf("pause at %v is before the start", p.At)
		}

		if !(p.Duration > 0) {
			return invalidf("pause at %v has duration %v", p.At, p.Duration)
		}

		if i > 0 {
			prev := pauses[i-1]
			if prev.At+prev.Duration > p.At {
				return invalidf("pause at %v overlaps the pause at %v",
					p.At, prev.At)
			}
		}
	}

	return nil
}

func (c *Config) sortedPauses() []PauseConfig {
	pauses := append([]PauseConfig(nil), c.Pauses...)
	sort.SliceStable(pauses, func(i, j int) bool {
		return pauses[i].At < pauses[j].At
	})

	return pauses
}

// exteriorHorizon returns the exterior time at which the collision clock
// reaches the horizon.
func (c *Config) exteriorHorizon() float32 {
	t := c.Horizon

	for _, p := range c.sortedPauses() {
		if p.At < t {
			t += p.Duration
		}
	}

	return t
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
