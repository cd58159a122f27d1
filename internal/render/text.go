package render

import (
	"math"
	"strconv"
	"strings"
)

// TextBounds represents the dimensions of a text element
type TextBounds struct {
	Width  int
	Height int
}

// estimateTextBounds calculates the approximate bounding box of text.
// Average character width is 0.7 * fontSize and line height 1.5 * fontSize.
func estimateTextBounds(text string, fontSize int) TextBounds {
	avgCharWidth := float64(fontSize) * 0.7
	lineHeight := float64(fontSize) * 1.5

	return TextBounds{
		Width:  int(float64(len([]rune(text))) * avgCharWidth),
		Height: int(lineHeight),
	}
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// escapeXML escapes the XML special characters (&, <, >, ", ') so text can be embedded in SVG.
func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// num formats a coordinate with at most two decimals and no trailing zeros.
func num(f float64) string {
	return strconv.FormatFloat(math.Round(f*100)/100, 'f', -1, 64)
}
