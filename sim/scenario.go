// Package sim runs levels headlessly at the game's fixed timestep,
// driving the same systems the game runs from scripted scenario files.
// It backs movement regression checks without opening a window.
package sim

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario scripts one headless run: which level, how many ticks, what
// the player holds when, and what must be true along the way.
type Scenario struct {
	Name   string      `yaml:"name"`
	Level  string      `yaml:"level"`
	Ticks  int         `yaml:"ticks"`
	Inputs []InputSpan `yaml:"inputs"`
	Checks []Check     `yaml:"checks"`
}

// InputSpan holds the player's input for the tick range [From, To).
// X is the horizontal axis: -1, 0, or 1. Overlapping spans resolve in
// favor of the later one.
type InputSpan struct {
	From int  `yaml:"from"`
	To   int  `yaml:"to"`
	X    int  `yaml:"x"`
	Jump bool `yaml:"jump"`
	Down bool `yaml:"down"`
}

// Check asserts on player state after At ticks have run. Nil fields
// are not checked. Positions refer to the player's feet, the
// bottom-center of its box.
type Check struct {
	At       int      `yaml:"at"`
	MinX     *float64 `yaml:"minX"`
	MaxX     *float64 `yaml:"maxX"`
	MinY     *float64 `yaml:"minY"`
	MaxY     *float64 `yaml:"maxY"`
	Grounded *bool    `yaml:"grounded"`
	Dead     *bool    `yaml:"dead"`
	Complete *bool    `yaml:"complete"`
}

// LoadScenario decodes a YAML scenario from r.
func LoadScenario(r io.Reader) (*Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&sc); err != nil {
		return nil, err
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func LoadScenarioFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc, err := LoadScenario(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return sc, nil
}

func (s *Scenario) validate() error {
	if s.Level == "" {
		return fmt.Errorf("scenario %q: level is required", s.Name)
	}
	if s.Ticks <= 0 {
		return fmt.Errorf("scenario %q: ticks must be positive", s.Name)
	}
	for _, span := range s.Inputs {
		if span.To < span.From {
			return fmt.Errorf("scenario %q: input span [%d,%d) runs backwards", s.Name, span.From, span.To)
		}
	}
	for _, c := range s.Checks {
		if c.At < 1 || c.At > s.Ticks {
			return fmt.Errorf("scenario %q: check at tick %d outside run of %d ticks", s.Name, c.At, s.Ticks)
		}
	}
	return nil
}

// InputAt returns the scripted input for one tick.
func (s *Scenario) InputAt(tick int) InputSpan {
	var active InputSpan
	for _, span := range s.Inputs {
		if tick >= span.From && tick < span.To {
			active = span
		}
	}
	return active
}
