package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"timeaxis/internal/axis"
)

func newTicksCmd(opts *globalOptions) *cobra.Command {
	var domain domainFlags

	cmd := &cobra.Command{
		Use:   "ticks",
		Short: "Print the ticks of a domain with their labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, cleanup, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			s, err := domain.scale(cfg, opts.now())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "granularity: %s\n", axis.SelectGranularity(s.Length()))
			for _, label := range axis.TickLabels(s) {
				fmt.Fprintf(out, "%8.1f  %s\n", label.X, strings.Join(label.Lines, " | "))
			}
			return nil
		},
	}
	domain.register(cmd)
	return cmd
}
