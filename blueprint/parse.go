package blueprint

import (
	"bytes"
	"fmt"
	"os"
)

// Parse decodes data in the given format.
func Parse(format Format, data []byte) ([]Blueprint, error) {
	switch format {
	case FormatText:
		return ParseText(bytes.NewReader(data))
	case FormatJSON:
		return ParseJSON(data)
	case FormatYAML:
		return ParseYAML(data)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}

// ParseFile reads path and decodes it in the format implied by its extension.
func ParseFile(path string) ([]Blueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("blueprint: %w", err)
	}

	return Parse(FormatFromPath(path), data)
}
