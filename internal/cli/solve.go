package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2022/internal/logging"
)

// newSolveCommand creates the solve command
func (a *app) newSolveCommand() *cobra.Command {
	var (
		inputPath string
		sample    string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "solve <day>",
		Short: "Solve both parts of a day",
		Long: `Solve both parts of a day and print each answer with its run time.

Input is read from <input dir>/<day>.txt unless --input or --sample is given.
In --sample, the two characters \n separate lines.

Examples:
  aoc2022 solve 19
  aoc2022 solve 12 --input ./day12.txt
  aoc2022 solve 12 --sample 'Sabqponm\nabcryxxl\naccszExk\nacctuvwj\nabdefghi'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid day %q: %w", args[0], err)
			}
			lines, err := a.loadLines(day, inputPath, sample)
			if err != nil {
				return err
			}
			reg, err := a.registry()
			if err != nil {
				return err
			}

			logging.Debug("solving", "day", day, "lines", len(lines))
			rep, err := reg.Solve(cmd.Context(), day, lines)
			if err != nil {
				return err
			}
			logging.Info("solved",
				"day", day,
				"run_id", rep.RunID.String(),
				"part_one_elapsed", rep.PartOne.Elapsed,
				"part_two_elapsed", rep.PartTwo.Elapsed,
			)

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, rep)
			}
			fmt.Fprintf(out, "Solving day %d...\n", day)
			fmt.Fprint(out, rep.String())

			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Read input from this file")
	cmd.Flags().StringVar(&sample, "sample", "", "Use this text as input")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	cmd.MarkFlagsMutuallyExclusive("input", "sample")

	return cmd
}
