package resource

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned by ParseKind for names outside the closed set.
var ErrUnknownKind = errors.New("resource: unknown kind")

// Kind identifies one resource and, equally, the producer that yields it.
type Kind int

const (
	// Ore is the base resource; the simulation starts with one ore producer.
	Ore Kind = iota
	// Clay is the first intermediate resource.
	Clay
	// Obsidian is the second intermediate resource.
	Obsidian
	// Geode is the target resource.
	Geode

	// NumKinds is the size of the closed kind set.
	NumKinds = 4
)

var kindNames = [NumKinds]string{"ore", "clay", "obsidian", "geode"}

// Kinds returns every kind in ascending order (Ore first, Geode last).
func Kinds() [NumKinds]Kind {
	return [NumKinds]Kind{Ore, Clay, Obsidian, Geode}
}

// String returns the lowercase kind name as used in puzzle input.
func (k Kind) String() string {
	if k < 0 || int(k) >= NumKinds {
		return fmt.Sprintf("kind(%d)", int(k))
	}

	return kindNames[k]
}

// Valid reports whether k belongs to the closed kind set.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < NumKinds
}

// ParseKind maps a case-insensitive name ("ore", "Clay", ...) to its Kind.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, kn := range kindNames {
		if kn == n {
			return Kind(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
