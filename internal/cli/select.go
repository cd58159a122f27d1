package cli

import (
	"github.com/spf13/cobra"

	"timeaxis/internal/logger"
	"timeaxis/internal/period"
	"timeaxis/internal/summary"
)

func newSelectCmd(opts *globalOptions) *cobra.Command {
	var (
		domain    domainFlags
		x         float64
		startText string
		endText   string
		topics    []string
		regions   []string
		length    string
	)

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select the period under a click and print its summary request",
		Long: `Resolve a click at pixel offset --x to the tick interval under it, zoom to that period and
print the summary request for it as JSON. --start/--end then edit the period the way the form does.`,
		Args: cobra.NoArgs,
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
			ctrl := period.NewController(s, period.WithClock(opts.now))
			ctx := cmd.Context()

			_, tr, err := ctrl.Click(x)
			if err != nil {
				return err
			}
			tr.Finish()

			if cmd.Flags().Changed("start") || cmd.Flags().Changed("end") {
				from, to, err := ctrl.FormText(ctx)
				if err != nil {
					return err
				}
				if cmd.Flags().Changed("start") {
					from = startText
				}
				if cmd.Flags().Changed("end") {
					to = endText
				}
				_, tr, err := ctrl.Commit(ctx, from, to)
				if err != nil {
					return err
				}
				tr.Finish()
			}

			from, to, err := ctrl.FormText(ctx)
			if err != nil {
				return err
			}
			p, _ := ctrl.Period()
			logger.L().Info("period.selected", "period", p.String(), "start", from, "end", to)

			req, err := summary.NewRequest(from, to, topics, regions, summary.Length(length))
			if err != nil {
				return err
			}
			return req.Encode(cmd.OutOrStdout())
		},
	}
	domain.register(cmd)
	cmd.Flags().Float64Var(&x, "x", 0, "Pixel offset of the click on the axis")
	cmd.Flags().StringVar(&startText, "start", "", "Replace the period start (D/M/Y, M/Y or Y)")
	cmd.Flags().StringVar(&endText, "end", "", "Replace the period end (D/M/Y, M/Y or Y)")
	cmd.Flags().StringArrayVar(&topics, "topic", nil, "Summary topic (repeatable)")
	cmd.Flags().StringArrayVar(&regions, "region", nil, "Summary region (repeatable)")
	cmd.Flags().StringVar(&length, "length", string(summary.Length200), "Summary length: 0-200, 200-500, 500-1000, 1000-5000 or 5000+")
	_ = cmd.MarkFlagRequired("x")
	return cmd
}
