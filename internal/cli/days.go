package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newDaysCommand creates the days command
func (a *app) newDaysCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List the days that have a solver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry()
			if err != nil {
				return err
			}
			for _, d := range reg.Days() {
				fmt.Fprintf(cmd.OutOrStdout(), "day %d\n", d)
			}
			return nil
		},
	}
}
