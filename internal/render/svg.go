/*
Package render draws a timeline axis as SVG: the axis line, a mark and a one- or two-line
calendar label per tick, the highlighted period, and optional event markers.

Labels come from the axis package; this package only positions and styles them.
*/
package render

import (
	"fmt"
	"math"
	"strings"

	"timeaxis/internal/axis"
	"timeaxis/internal/config"
	"timeaxis/internal/events"
	"timeaxis/internal/logger"
	"timeaxis/internal/period"
)

// Input is everything drawn on one axis.
type Input struct {
	Scale axis.Scale
	// Highlight is the period to shade, already clipped to the scale's domain.
	Highlight *period.Period
	Events    []events.Event
}

// SVG renders the axis described by in.
func SVG(in Input, cfg config.Config) string {
	width, height := cfg.Layout.Width, cfg.Layout.Height
	axisY := float64(height) / 2
	r0, r1 := cfg.AxisRange()

	var svg strings.Builder
	svg.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
<defs>
<style>
.timeline-label { font-family: %s; font-size: %dpx; fill: %s; }
.julian-line { fill: %s; }
.event-text { font-family: %s; font-size: %dpx; fill: %s; }
</style>
</defs>
`, width, height, cfg.Colors.Background,
		cfg.Font.Family, cfg.Font.Size, cfg.Colors.Labels,
		cfg.Colors.Julian,
		cfg.Font.Family, cfg.Font.Size-1, cfg.Colors.Events))

	if in.Highlight != nil {
		drawHighlight(&svg, *in.Highlight, in.Scale, axisY, cfg)
	}

	svg.WriteString(fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%d"/>`+"\n",
		num(r0), num(axisY), num(r1), num(axisY), cfg.Colors.Axis, cfg.Axis.LineWidth))

	start, end := in.Scale.Domain()
	length := axis.SpanOf(start, end)
	fontSize := 0
	if cfg.Axis.ShrinkFonts {
		if size, ok := axis.FontSize(length); ok {
			fontSize = size
		}
	}

	labels := axis.TickLabels(in.Scale)
	logger.L().Debug("render.ticks", "count", len(labels), "granularity", axis.SelectGranularity(length).String())
	for _, label := range labels {
		drawTick(&svg, label, axisY, fontSize, cfg)
	}

	for i, event := range events.Within(in.Events, start, end) {
		drawEvent(&svg, event, in.Scale.Position(event.At), axisY, i, cfg)
	}

	svg.WriteString("</svg>\n")
	return svg.String()
}

// drawHighlight shades the highlighted period as a rounded band over the axis.
func drawHighlight(svg *strings.Builder, p period.Period, scale axis.Scale, axisY float64, cfg config.Config) {
	startX := scale.Position(p.Start)
	endX := scale.Position(p.End)
	h := float64(cfg.Highlight.Height)
	svg.WriteString(fmt.Sprintf(`<rect class="highlight-area" x="%s" y="%s" width="%s" height="%s" fill="%s" rx="%d" ry="%d"/>`+"\n",
		num(startX), num(axisY-h/2), num(endX-startX), num(h), cfg.Highlight.Fill, cfg.Highlight.Radius, cfg.Highlight.Radius))
}

// drawTick draws one tick mark and its label block. The first line is the Gregorian date, the
// optional second line the Julian date. A non-zero fontSize overrides the stylesheet size.
func drawTick(svg *strings.Builder, label axis.TickLabel, axisY float64, fontSize int, cfg config.Config) {
	tw := float64(cfg.Axis.TickWidth)
	th := float64(cfg.Axis.TickHeight)
	svg.WriteString(fmt.Sprintf(`<rect class="timeline-mark" x="%s" y="%s" width="%s" height="%s" fill="%s" rx="2" ry="2"/>`+"\n",
		num(label.X-tw/2), num(axisY-th/2), num(tw), num(th), cfg.Colors.Ticks))

	lines := label.Lines
	if !cfg.Axis.ShowJulian && len(lines) > 1 {
		lines = lines[:1]
	}

	style := ""
	if fontSize > 0 {
		style = fmt.Sprintf(` style="font-size: %dpx"`, fontSize)
	}
	svg.WriteString(fmt.Sprintf(`<text class="timeline-label" x="%s" y="%s" text-anchor="middle">`,
		num(label.X), num(axisY+float64(cfg.Axis.LabelOffset))))
	for i, line := range lines {
		dy := "0em"
		class := ""
		if i > 0 {
			dy = num(cfg.Axis.LineSpacing) + "em"
			class = ` class="julian-line"`
		}
		svg.WriteString(fmt.Sprintf(`<tspan x="%s" dy="%s"%s%s>%s</tspan>`, num(label.X), dy, class, style, escapeXML(line)))
	}
	svg.WriteString("</text>\n")
}

// drawEvent draws an event marker on the axis with its title above it. Consecutive titles
// alternate between two heights so neighbours do not sit on the same baseline. Titles are shifted
// horizontally to stay inside the image; the marker stays at x.
func drawEvent(svg *strings.Builder, event events.Event, x, axisY float64, index int, cfg config.Config) {
	drawEventMarker(svg, x, axisY, cfg)

	title := event.Title()
	if title == "" {
		return
	}
	bounds := estimateTextBounds(title, cfg.Font.Size-1)
	y := axisY - float64(cfg.Axis.TickHeight)/2 - float64(cfg.EventMarker.Size) - float64(bounds.Height)/2
	if index%2 == 1 {
		y -= float64(bounds.Height)
	}
	half := float64(bounds.Width) / 2
	textX := math.Max(x, half)
	textX = math.Min(textX, math.Max(half, float64(cfg.Layout.Width)-half))
	svg.WriteString(fmt.Sprintf(`<text class="event-text" x="%s" y="%s" text-anchor="middle">%s</text>`+"\n",
		num(textX), num(y), escapeXML(title)))
}

// drawEventMarker draws a marker centred on (x, y) in the configured shape: "circle" (radius
// size), "square" (half side size), "diamond" or "triangle" (pointing up, 1.5 size tall).
// Unknown shapes are drawn as circles.
func drawEventMarker(svg *strings.Builder, x, y float64, cfg config.Config) {
	m := cfg.EventMarker
	size := float64(m.Size)
	paint := fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="%d"`, m.FillColor, m.StrokeColor, m.StrokeWidth)

	var corners [][2]float64
	switch strings.ToLower(m.Shape) {
	case "square":
		fmt.Fprintf(svg, `<rect x="%s" y="%s" width="%s" height="%s" %s/>`+"\n",
			num(x-size), num(y-size), num(size*2), num(size*2), paint)
		return
	case "diamond":
		corners = [][2]float64{{x, y - size}, {x + size, y}, {x, y + size}, {x - size, y}}
	case "triangle":
		h := size * 1.5
		corners = [][2]float64{{x, y - h}, {x - size, y + h/2}, {x + size, y + h/2}}
	default: // circle
		fmt.Fprintf(svg, `<circle cx="%s" cy="%s" r="%s" %s/>`+"\n", num(x), num(y), num(size), paint)
		return
	}

	points := make([]string, len(corners))
	for i, c := range corners {
		points[i] = num(c[0]) + "," + num(c[1])
	}
	fmt.Fprintf(svg, `<polygon points="%s" %s/>`+"\n", strings.Join(points, " "), paint)
}
