package simd

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:generate go tool stringer -type=Family -trimprefix=Family -output=family_string.go

// Family is the CPU architecture a dispatch mode belongs to.
type Family int

const (
	_ Family = iota // zero value is an unset family

	FamilyX86
	FamilyARM
	FamilyPowerPC
	FamilyMIPS
	FamilyRISCV
	FamilyLoongArch

	familyTotal = int(iota)
)

// ParseFamily parses a family name case-insensitively ("x86", "arm", ...).
func ParseFamily(s string) (Family, error) {
	for f := Family(1); int(f) < familyTotal; f++ {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}

	return 0, fmt.Errorf("unknown CPU family %q", s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Family) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	parsed, err := ParseFamily(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}

	*f = parsed

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (f Family) MarshalYAML() (any, error) {
	return strings.ToLower(f.String()), nil
}
