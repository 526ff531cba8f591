package resource

import (
	"fmt"
	"strconv"
	"strings"
)

// Vector holds one non-negative amount per Kind.
// The zero value is the empty stock.
type Vector [NumKinds]int

// Unit returns a vector holding a single unit of k.
func Unit(k Kind) Vector {
	var v Vector
	v[k] = 1

	return v
}

// Get returns the amount stored for k.
func (v Vector) Get(k Kind) int { return v[k] }

// Set returns a copy of v with the entry for k replaced by value.
func (v Vector) Set(k Kind, value int) Vector {
	v[k] = value

	return v
}

// Add returns a copy of v with amount added to the entry for k.
func (v Vector) Add(k Kind, amount int) Vector {
	v[k] += amount

	return v
}

// Contains reports whether every entry of v is at least the matching entry of other.
func (v Vector) Contains(other Vector) bool {
	for i := 0; i < NumKinds; i++ {
		if v[i] < other[i] {
			return false
		}
	}

	return true
}

// AddAll returns the elementwise sum v + other.
func (v Vector) AddAll(other Vector) Vector {
	for i := 0; i < NumKinds; i++ {
		v[i] += other[i]
	}

	return v
}

// RemoveAll returns the elementwise difference v - other.
// It panics if any entry would go negative: callers check Contains first,
// so a violation is a bug in the caller, not an input error.
func (v Vector) RemoveAll(other Vector) Vector {
	for i := 0; i < NumKinds; i++ {
		if v[i] < other[i] {
			panic(fmt.Sprintf("resource: cannot remove %d %s from %d", other[i], kindNames[i], v[i]))
		}
		v[i] -= other[i]
	}

	return v
}

// IsZero reports whether every entry is zero.
func (v Vector) IsZero() bool {
	return v == Vector{}
}

// String renders the vector as "ore=1 clay=0 obsidian=0 geode=0".
func (v Vector) String() string {
	var sb strings.Builder
	for i := 0; i < NumKinds; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(kindNames[i])
		sb.WriteByte('=')
		sb.WriteString(strconv.Itoa(v[i]))
	}

	return sb.String()
}
