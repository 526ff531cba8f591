package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2022/internal/logging"
	"github.com/katalvlaran/aoc2022/puzzle/day19"
)

// newGeodesCommand creates the geodes command
func (a *app) newGeodesCommand() *cobra.Command {
	var (
		minutes     int
		maxBranches int
		format      string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "geodes <file>",
		Short: "Search the best geode count for every blueprint in a file",
		Long: `Search the best geode count for every blueprint in a file.

The file holds puzzle text, JSON or YAML; the format comes from the
extension unless --format is set. Use - to read stdin.

--max-branches 0 explores every successor instead of the two most
promising ones: slower, but never loses the optimum.

Examples:
  aoc2022 geodes .input/19.txt
  aoc2022 geodes blueprints.json --minutes 32 --json
  cat blueprints.txt | aoc2022 geodes - --max-branches 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bps, err := readBlueprints(cmd.InOrStdin(), args[0], format)
			if err != nil {
				return err
			}

			cfg := a.cfg.Day19()
			if cmd.Flags().Changed("max-branches") {
				cfg.MaxBranches = maxBranches
			}
			if minutes == 0 {
				minutes = cfg.PartOneMinutes
			}

			evals, err := day19.EvaluateAll(cmd.Context(), bps, minutes, cfg)
			if err != nil {
				return err
			}
			for _, e := range evals {
				logging.Debug("blueprint searched",
					"id", e.Blueprint.ID,
					"minutes", minutes,
					"max_geodes", e.Result.Max,
					"examined", e.Result.Examined,
					"duplicates", e.Result.Duplicates,
					"pruned", e.Result.Pruned,
					"truncated", e.Result.Truncated,
					"elapsed", e.Elapsed,
				)
			}

			summary := day19.Summarize(evals, minutes, cfg)
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, summary)
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tGEODES\tQUALITY\tEXAMINED\tPRUNED\tTIME (ms)\tMAX ORE")
			fmt.Fprintln(w, "--\t------\t-------\t--------\t------\t---------\t-------")
			for _, b := range summary.Blueprints {
				fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%.1f\t%d\n",
					b.ID, b.MaxGeodes, b.Quality, b.Examined, b.Pruned, b.ElapsedMS, b.MaxOreCost)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nQuality level sum: %d (%d minutes)\n", summary.QualitySum, minutes)

			return nil
		},
	}

	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "Time budget (default: geodes.part_one_minutes)")
	cmd.Flags().IntVar(&maxBranches, "max-branches", 0, "Successors kept per state; 0 keeps all (default: geodes.max_branches)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Input format: text, json, yaml (default: from extension)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the results as JSON")

	return cmd
}
