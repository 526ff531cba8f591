package puzzle

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PartReport is one part's answer and how long it took.
type PartReport struct {
	Solution Solution      `json:"solution"`
	Elapsed  time.Duration `json:"elapsed_ns"`
}

// Report is the outcome of Registry.Solve.
type Report struct {
	Day     int        `json:"day"`
	RunID   uuid.UUID  `json:"run_id"`
	PartOne PartReport `json:"part_one"`
	PartTwo PartReport `json:"part_two"`
}

// String renders the report as two lines:
//
//	Part 1: 33 (0.0123 seconds)
//	Part 2: 3472 (0.4567 seconds)
func (r Report) String() string {
	var sb strings.Builder
	for i, p := range [...]PartReport{r.PartOne, r.PartTwo} {
		fmt.Fprintf(&sb, "Part %d: %s (%.4f seconds)\n", i+1, p.Solution, p.Elapsed.Seconds())
	}

	return sb.String()
}
