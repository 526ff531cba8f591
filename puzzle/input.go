package puzzle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrInputNotFound indicates a missing input file for a day.
var ErrInputNotFound = errors.New("puzzle: input file not found")

// InputPath returns the conventional input location for day: <dir>/<day>.txt.
func InputPath(dir string, day int) string {
	return filepath.Join(dir, strconv.Itoa(day)+".txt")
}

// LoadInput reads the input for day from dir and splits it into lines.
func LoadInput(dir string, day int) ([]string, error) {
	return ReadLines(InputPath(dir, day))
}

// ReadLines reads path and splits it into lines.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("puzzle: read %s: %w", path, err)
	}

	return SplitLines(string(data)), nil
}

// SplitLines splits text on newlines, dropping carriage returns and a
// single trailing empty line. Interior blank lines are kept.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}

	return strings.Split(text, "\n")
}
