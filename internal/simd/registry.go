package simd

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Baseline is the always-available fallback mode, last in priority order.
const Baseline = "BASELINE"

//go:embed modes.yaml
var builtinModes []byte

// Mode is a recognized CPU dispatch mode.
type Mode struct {
	Name   string `yaml:"name"`
	Family Family `yaml:"family"`
}

// Registry holds the known dispatch modes keyed by name.
type Registry struct {
	Modes []Mode `yaml:"modes"`

	byName map[string]Mode
}

// LoadRegistry parses the built-in mode list.
func LoadRegistry() (*Registry, error) {
	return ParseRegistry(builtinModes)
}

// ParseRegistry parses YAML data into a Registry.
func ParseRegistry(data []byte) (*Registry, error) {
	var r Registry

	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing mode registry: %w", err)
	}

	r.byName = make(map[string]Mode, len(r.Modes))

	for _, m := range r.Modes {
		if m.Name == "" {
			return nil, errors.New("parsing mode registry: mode without a name")
		}

		if m.Name == Baseline {
			return nil, fmt.Errorf("parsing mode registry: %s is implicit and cannot be listed", Baseline)
		}

		if _, dup := r.byName[m.Name]; dup {
			return nil, fmt.Errorf("parsing mode registry: mode %s listed twice", m.Name)
		}

		r.byName[m.Name] = m
	}

	return &r, nil
}

// Lookup returns the mode with the given name. Names are case-sensitive,
// matching the CV_CPU_* macro suffixes.
func (r *Registry) Lookup(name string) (Mode, bool) {
	m, ok := r.byName[name]

	return m, ok
}
