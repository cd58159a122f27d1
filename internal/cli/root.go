package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"timeaxis/internal/axis"
	"timeaxis/internal/config"
	"timeaxis/internal/logger"
	"timeaxis/internal/period"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type globalOptions struct {
	configPath string
	debug      bool
	logFormat  string
	now        func() time.Time
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{now: time.Now}

	cmd := &cobra.Command{
		Use:          "timeaxis",
		Short:        "Historical timeline axis with Gregorian and Julian labels",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML configuration file (optional)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "Log format: text or json (overrides config)")

	cmd.AddCommand(
		newRenderCmd(opts),
		newTicksCmd(opts),
		newConvertCmd(opts),
		newSelectCmd(opts),
	)
	return cmd
}

// setup loads the configuration and installs the logger. The returned func restores logging.
func (o *globalOptions) setup(cmd *cobra.Command) (config.Config, func(), error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	if o.logFormat != "" {
		cfg.Log.Format = o.logFormat
	}
	if o.debug {
		cfg.Log.Debug = true
	}

	cleanup, err := logger.Setup(logger.Config{
		Format: cfg.Log.Format,
		Debug:  cfg.Log.Debug,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return config.Config{}, nil, err
	}
	logger.L().Debug("config.loaded", "path", o.configPath, "width", cfg.Layout.Width, "font_size", cfg.Font.Size)
	return cfg, cleanup, nil
}

// domainFlags are the --from/--to flags shared by the commands that build an axis.
type domainFlags struct {
	from, to string
}

func (d *domainFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&d.from, "from", "1900", "Start of the shown domain (D/M/Y, M/Y or Y; BCE years as 44BCE or -44)")
	cmd.Flags().StringVar(&d.to, "to", "2020", "End of the shown domain")
}

// scale parses the domain and maps it onto the configured axis range.
func (d *domainFlags) scale(cfg config.Config, now time.Time) (*axis.TimeScale, error) {
	start, err := period.ParseDateText(d.from, now)
	if err != nil {
		return nil, fmt.Errorf("--from: %w", err)
	}
	end, err := period.ParseDateText(d.to, now)
	if err != nil {
		return nil, fmt.Errorf("--to: %w", err)
	}
	domain, err := period.New(start, end)
	if err != nil {
		return nil, fmt.Errorf("domain: %w", err)
	}
	r0, r1 := cfg.AxisRange()
	return axis.NewTimeScale(domain.Start, domain.End, r0, r1), nil
}
