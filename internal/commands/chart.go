package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newChartCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chart",
		Short: "Show the configured chart of accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer func() { _ = s.logger.Sync() }()

			out, err := s.terminal(s.renderer.Chart(s.engine.Chart()))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
