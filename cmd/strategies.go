package cmd

import (
	"fmt"

	"github.com/ArnaudCalmettes/binbench/bench"
	"github.com/spf13/cobra"
)

// newStrategiesCmd builds the strategies command
func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List available thresholding strategies in run order",
		Run: func(cmd *cobra.Command, args []string) {
			for _, s := range bench.Strategies() {
				if s.Name == bench.Reference {
					fmt.Fprintln(cmd.OutOrStdout(), s.Name, "(reference)")
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), s.Name)
			}
		},
	}
}
