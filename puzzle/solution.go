package puzzle

import (
	"encoding/json"
	"strconv"
)

// Kind tells which field of a Solution is meaningful.
type Kind int

const (
	// NotImplemented is the zero Kind: the part has no solver.
	NotImplemented Kind = iota
	// SignedKind holds an int64 answer.
	SignedKind
	// UnsignedKind holds a uint64 answer.
	UnsignedKind
	// TextKind holds a string answer.
	TextKind
)

// Solution is one part's answer. The zero value is NotImplemented.
type Solution struct {
	kind     Kind
	signed   int64
	unsigned uint64
	text     string
}

// Signed wraps a signed integer answer.
func Signed(v int64) Solution { return Solution{kind: SignedKind, signed: v} }

// Unsigned wraps an unsigned integer answer.
func Unsigned(v uint64) Solution { return Solution{kind: UnsignedKind, unsigned: v} }

// Text wraps a textual answer.
func Text(s string) Solution { return Solution{kind: TextKind, text: s} }

// Kind reports which kind of answer s holds.
func (s Solution) Kind() Kind { return s.kind }

// Implemented reports whether s holds an answer.
func (s Solution) Implemented() bool { return s.kind != NotImplemented }

// String renders the answer; "<not implemented>" for the zero value.
func (s Solution) String() string {
	switch s.kind {
	case SignedKind:
		return strconv.FormatInt(s.signed, 10)
	case UnsignedKind:
		return strconv.FormatUint(s.unsigned, 10)
	case TextKind:
		return s.text
	default:
		return "<not implemented>"
	}
}

// MarshalJSON encodes numbers as JSON numbers, text as a string and
// NotImplemented as null.
func (s Solution) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case SignedKind, UnsignedKind:
		return []byte(s.String()), nil
	case TextKind:
		return json.Marshal(s.text)
	default:
		return []byte("null"), nil
	}
}
