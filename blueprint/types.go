package blueprint

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/aoc2022/resource"
)

// Sentinel errors for blueprint construction and parsing.
var (
	// ErrSyntax indicates input that does not follow the expected grammar.
	ErrSyntax = errors.New("blueprint: syntax error")

	// ErrMissingProducer indicates a producer kind without a declared cost.
	ErrMissingProducer = errors.New("blueprint: missing producer cost")

	// ErrDuplicateProducer indicates a producer kind declared twice in one record.
	ErrDuplicateProducer = errors.New("blueprint: duplicate producer cost")

	// ErrNegativeCost indicates a negative amount in a cost vector.
	ErrNegativeCost = errors.New("blueprint: negative cost")

	// ErrInvalidID indicates a missing or non-positive blueprint ID.
	ErrInvalidID = errors.New("blueprint: invalid id")

	// ErrDuplicateID indicates two records sharing one ID.
	ErrDuplicateID = errors.New("blueprint: duplicate id")

	// ErrNoBlueprints indicates input without a single record.
	ErrNoBlueprints = errors.New("blueprint: no blueprints in input")

	// ErrUnsupportedFormat indicates an unknown Format value or name.
	ErrUnsupportedFormat = errors.New("blueprint: unsupported format")
)

// Format selects the input encoding understood by Parse.
type Format int

const (
	// FormatText is the puzzle's natural-language rule text.
	FormatText Format = iota
	// FormatJSON is the structured JSON form.
	FormatJSON
	// FormatYAML is the structured YAML form.
	FormatYAML
)

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	}

	return fmt.Sprintf("format(%d)", int(f))
}

// ParseFormat maps "text", "json", "yaml" (or "yml") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// FormatFromPath picks a Format from the file extension; anything that is
// not .json, .yaml or .yml is treated as rule text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}

	return FormatText
}

// Blueprint is the cost table of one problem instance.
// Costs[k] is what it takes to build one producer of kind k.
type Blueprint struct {
	ID    int
	Costs [resource.NumKinds]resource.Vector
}
