package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/aoc2022/blueprint"
	"github.com/katalvlaran/aoc2022/puzzle"
)

// writeJSON pretty-prints v to w.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// loadLines picks the puzzle input: an inline sample, an explicit file,
// or <input dir>/<day>.txt, in that order.
func (a *app) loadLines(day int, inputPath, sample string) ([]string, error) {
	switch {
	case sample != "":
		return puzzle.SplitLines(strings.ReplaceAll(sample, `\n`, "\n")), nil
	case inputPath != "":
		return puzzle.ReadLines(inputPath)
	default:
		return puzzle.LoadInput(a.cfg.Input.Dir, day)
	}
}

// readBlueprints parses path ("-" for stdin). An empty format is inferred
// from the file extension; stdin defaults to text.
func readBlueprints(stdin io.Reader, path, format string) ([]blueprint.Blueprint, error) {
	f := blueprint.FormatFromPath(path)
	if format != "" {
		var err error
		if f, err = blueprint.ParseFormat(format); err != nil {
			return nil, err
		}
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read blueprints: %w", err)
	}

	return blueprint.Parse(f, data)
}
