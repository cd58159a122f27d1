package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"timeaxis/internal/config"
	"timeaxis/internal/events"
	"timeaxis/internal/logger"
	"timeaxis/internal/period"
	"timeaxis/internal/render"
)

type renderOptions struct {
	domain      domainFlags
	click       float64
	periodStart string
	periodEnd   string
	zoom        bool
	eventsFile  string
	dateColumn  string
	output      string
}

func newRenderCmd(opts *globalOptions) *cobra.Command {
	ro := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the timeline axis to SVG",
		Long: `Render the timeline axis for a domain to SVG, with tick labels in the Gregorian calendar
and, on day-level domains, the Julian calendar.

A period can be highlighted by clicking (--click, a pixel offset) or by typing it
(--period-start/--period-end). With --zoom the axis is drawn zoomed to the period.`,
		Example: `  timeaxis render --from 1900 --to 2020 --output axis.svg
  timeaxis render --from 1/3/44BCE --to 31/3/44BCE --period-start 15/3/44BCE --period-end 16/3/44BCE
  timeaxis render --from 1800 --to 1900 --click 400 --zoom --events events.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, cleanup, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer cleanup()
			return ro.run(cmd, opts, cfg)
		},
	}
	ro.domain.register(cmd)
	cmd.Flags().Float64Var(&ro.click, "click", 0, "Highlight the tick interval under this pixel offset")
	cmd.Flags().StringVar(&ro.periodStart, "period-start", "", "Start of a typed period to highlight")
	cmd.Flags().StringVar(&ro.periodEnd, "period-end", "", "End of a typed period to highlight")
	cmd.Flags().BoolVar(&ro.zoom, "zoom", false, "Draw the axis zoomed to the highlighted period")
	cmd.Flags().StringVar(&ro.eventsFile, "events", "", "CSV file with events to mark on the axis (optional)")
	cmd.Flags().StringVar(&ro.dateColumn, "date-column", "date", "Name of the events CSV date column")
	cmd.Flags().StringVarP(&ro.output, "output", "o", "", "Output SVG filename (default stdout)")
	cmd.MarkFlagsMutuallyExclusive("click", "period-start")
	cmd.MarkFlagsRequiredTogether("period-start", "period-end")
	return cmd
}

func (ro *renderOptions) run(cmd *cobra.Command, opts *globalOptions, cfg config.Config) error {
	log := logger.L()
	now := opts.now()

	s, err := ro.domain.scale(cfg, now)
	if err != nil {
		return err
	}
	ctrl := period.NewController(s, period.WithClock(opts.now), period.WithLogger(log))

	switch {
	case cmd.Flags().Changed("click"):
		_, tr, err := ctrl.Click(ro.click)
		if errors.Is(err, period.ErrOutOfDomain) {
			log.Warn("render.click_ignored", "x", ro.click)
			break
		}
		if err != nil {
			return err
		}
		ro.settle(tr)
	case cmd.Flags().Changed("period-start"):
		_, tr, err := ctrl.Commit(cmd.Context(), ro.periodStart, ro.periodEnd)
		if err != nil {
			return err
		}
		ro.settle(tr)
	}

	var evs []events.Event
	if ro.eventsFile != "" {
		evs, err = events.Load(ro.eventsFile, ro.dateColumn, now)
		if err != nil {
			return err
		}
		log.Debug("events.loaded", "count", len(evs), "file", ro.eventsFile)
	}

	if err := ctrl.Wait(cmd.Context()); err != nil {
		return err
	}
	in := render.Input{Scale: ctrl.Scale(), Events: evs}
	if hl, ok := ctrl.Highlight(); ok {
		in.Highlight = &hl
	}
	svg := render.SVG(in, cfg)

	if ro.output == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), svg)
		return err
	}
	if err := os.WriteFile(ro.output, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("error writing SVG file: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Timeline SVG generated successfully: %s\n", ro.output)
	return nil
}

// settle ends a transition at once: there is no animation to wait for when drawing a file.
func (ro *renderOptions) settle(tr *period.Transition) {
	if ro.zoom {
		tr.Finish()
		return
	}
	tr.Cancel()
}
