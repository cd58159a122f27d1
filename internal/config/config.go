/*
Package config holds the settings for drawing the timeline axis.

Configuration is layered: built-in defaults, then an optional YAML file, then TIMEAXIS_*
environment variables. Values missing from the file keep their defaults.
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is the complete configuration for rendering an axis. It maps directly onto the YAML
// file:
//   - font and colors control label text and the palette
//   - layout sets the SVG size; the axis spans the width minus the side margins
//   - axis controls the line, the tick marks and the label block under each tick
//   - highlight styles the selected period
//   - event_marker styles event markers drawn from a CSV overlay
//   - log selects the log format and level
type Config struct {
	Font struct {
		Family string `yaml:"family" env:"TIMEAXIS_FONT_FAMILY"` // Font family for all labels (e.g., "Arial, sans-serif")
		Size   int    `yaml:"size" env:"TIMEAXIS_FONT_SIZE"`     // Base label font size in pixels
	} `yaml:"font"`
	Colors struct {
		Background string `yaml:"background"` // SVG background color
		Axis       string `yaml:"axis"`       // Main axis line
		Ticks      string `yaml:"ticks"`      // Tick marks
		Labels     string `yaml:"labels"`     // Gregorian label line
		Julian     string `yaml:"julian"`     // Julian label line
		Events     string `yaml:"events"`     // Event titles
	} `yaml:"colors"`
	Layout struct {
		Width       int `yaml:"width" env:"TIMEAXIS_WIDTH"`   // Total SVG width in pixels
		Height      int `yaml:"height" env:"TIMEAXIS_HEIGHT"` // Total SVG height in pixels
		MarginLeft  int `yaml:"margin_left"`                  // Space before the axis starts
		MarginRight int `yaml:"margin_right"`                 // Space after the axis ends
	} `yaml:"layout"`
	Axis struct {
		LineWidth   int     `yaml:"line_width"`   // Width of the axis line
		TickWidth   int     `yaml:"tick_width"`   // Width of a tick mark
		TickHeight  int     `yaml:"tick_height"`  // Height of a tick mark, centered on the line
		LabelOffset int     `yaml:"label_offset"` // Distance from the line to the first label baseline
		LineSpacing float64 `yaml:"line_spacing"` // Spacing between label lines, in em
		ShowJulian  bool    `yaml:"show_julian"`  // Draw the Julian line under day-level labels
		ShrinkFonts bool    `yaml:"shrink_fonts"` // Shrink labels on crowded day-level domains
	} `yaml:"axis"`
	Highlight struct {
		Fill   string `yaml:"fill"`   // Fill of the highlighted period
		Height int    `yaml:"height"` // Height of the highlight band
		Radius int    `yaml:"radius"` // Corner radius of the highlight band
	} `yaml:"highlight"`
	EventMarker struct {
		Shape       string `yaml:"shape"`        // "circle", "triangle", "square" or "diamond"
		Size        int    `yaml:"size"`         // Radius for circles, half side for other shapes
		FillColor   string `yaml:"fill_color"`   // Marker fill
		StrokeColor string `yaml:"stroke_color"` // Marker border
		StrokeWidth int    `yaml:"stroke_width"` // Marker border width
	} `yaml:"event_marker"`
	Log struct {
		Format string `yaml:"format" env:"TIMEAXIS_LOG_FORMAT"` // "text" or "json"
		Debug  bool   `yaml:"debug" env:"TIMEAXIS_DEBUG"`       // Debug level with source locations
	} `yaml:"log"`
}

// Default returns the built-in configuration: a 1200x200 axis in an olive palette.
func Default() Config {
	var c Config

	c.Font.Family = "Arial, sans-serif"
	c.Font.Size = 12

	c.Colors.Background = "#ffffff"
	c.Colors.Axis = "#000000"
	c.Colors.Ticks = "#6b8e23"
	c.Colors.Labels = "#333333"
	c.Colors.Julian = "#777777"
	c.Colors.Events = "#333333"

	c.Layout.Width = 1200
	c.Layout.Height = 200
	c.Layout.MarginLeft = 40
	c.Layout.MarginRight = 40

	c.Axis.LineWidth = 2
	c.Axis.TickWidth = 3
	c.Axis.TickHeight = 20
	c.Axis.LabelOffset = 30
	c.Axis.LineSpacing = 1.2
	c.Axis.ShowJulian = true
	c.Axis.ShrinkFonts = true

	c.Highlight.Fill = "rgba(107, 142, 35, 0.3)"
	c.Highlight.Height = 20
	c.Highlight.Radius = 4

	c.EventMarker.Shape = "circle"
	c.EventMarker.Size = 5
	c.EventMarker.FillColor = "#4285f4"
	c.EventMarker.StrokeColor = "#333333"
	c.EventMarker.StrokeWidth = 1

	c.Log.Format = "text"
	return c
}

// Load reads the YAML file at path over the defaults, applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every setting that cannot produce a drawable axis.
func (c Config) Validate() error {
	var errs []error
	if c.Layout.Width <= c.Layout.MarginLeft+c.Layout.MarginRight {
		errs = append(errs, fmt.Errorf("layout.width %d leaves no room for the axis", c.Layout.Width))
	}
	if c.Layout.Height <= 0 {
		errs = append(errs, fmt.Errorf("layout.height must be positive, got %d", c.Layout.Height))
	}
	if c.Font.Size <= 0 {
		errs = append(errs, fmt.Errorf("font.size must be positive, got %d", c.Font.Size))
	}
	switch strings.ToLower(c.EventMarker.Shape) {
	case "circle", "triangle", "square", "diamond":
	default:
		errs = append(errs, fmt.Errorf("event_marker.shape %q is not supported", c.EventMarker.Shape))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q is not supported", c.Log.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// AxisRange returns the pixel range the axis spans.
func (c Config) AxisRange() (float64, float64) {
	return float64(c.Layout.MarginLeft), float64(c.Layout.Width - c.Layout.MarginRight)
}
