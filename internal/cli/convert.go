package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"timeaxis/internal/calendar"
	"timeaxis/internal/period"
)

func newConvertCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [flags] [--] DATE...",
		Short: "Show the Gregorian and Julian forms of dates",
		Long: `Show the proleptic Gregorian and proleptic Julian forms of each date.

Dates use the axis label formats: D/M/Y, M/Y or Y, with BCE years written as 44BCE or -44.
Flags go before the dates; everything from the first date on is read as a date. When the first
date starts with a minus sign, put -- in front of the dates.`,
		Example: `  timeaxis convert 15/3/44BCE 4/10/1582
  timeaxis convert 1/1/1900 -5000
  timeaxis convert -- -44 15/3/-44`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cleanup, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			for _, arg := range args {
				t, err := period.ParseDateText(arg, opts.now())
				if err != nil {
					return err
				}
				g := calendar.FromTime(t)
				julian := "unsupported year"
				if j, ok := calendar.ToJulian(t); ok {
					julian = j.String()
				}
				fmt.Fprintf(out, "gregorian=%s julian=%s", g, julian)
				if phase := calendar.TransitionPhase(t); phase != calendar.Steady {
					fmt.Fprintf(out, " transition=%s", phase)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}
