// Package text measures and wraps text for PDF layout.
package text

import (
	"fmt"
	"strings"
)

// LineHeightFactor is the baseline-to-baseline distance as a multiple of the
// font size.
const LineHeightFactor = 1.35

// LineHeight returns the line height for fontSize.
func LineHeight(fontSize float64) float64 {
	return fontSize * LineHeightFactor
}

// Color represents an RGB color.
type Color struct {
	R, G, B float64 // 0.0 to 1.0
}

// Black returns black color.
func Black() Color {
	return Color{0, 0, 0}
}

// Gray returns a gray color.
func Gray(level float64) Color {
	return Color{level, level, level}
}

// RGB creates a color from RGB values (0-255).
func RGB(r, g, b int) Color {
	return Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}

// Hex creates a color from a hex string (e.g., "#FF0000" or "FF0000").
// Malformed input yields black.
func Hex(s string) Color {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Black()
	}
	var r, g, b int
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return Black()
	}
	return RGB(r, g, b)
}

// Measurer reports the advance width of a string at a font size, in points.
type Measurer interface {
	MeasureText(s string, fontSize float64) float64
}

// MeasureFunc adapts a plain function to Measurer.
type MeasureFunc func(s string, fontSize float64) float64

// MeasureText implements Measurer.
func (f MeasureFunc) MeasureText(s string, fontSize float64) float64 {
	return f(s, fontSize)
}

// Line is one output line of Wrap. Hard is set when the line ends at an
// explicit newline or at the end of the input rather than at a wrap point.
type Line struct {
	Text string
	Hard bool
}

// Wrap breaks text into lines no wider than maxWidth.
//
// Newlines always break. Within a paragraph words are added greedily while
// the line width plus a space plus the word width fits. A word wider than
// maxWidth on its own is split between characters; a line only exceeds
// maxWidth when it holds a single character that is itself too wide.
// Empty input yields one empty line. A non-positive maxWidth disables
// wrapping.
func Wrap(text string, maxWidth float64, m Measurer, fontSize float64) []Line {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	paragraphs := strings.Split(text, "\n")

	w := wrapper{m: m, size: fontSize, max: maxWidth}
	w.space = m.MeasureText(" ", fontSize)
	for _, p := range paragraphs {
		w.paragraph(p)
	}
	return w.lines
}

// WrapText is Wrap without the break kinds.
func WrapText(text string, maxWidth float64, m Measurer, fontSize float64) []string {
	lines := Wrap(text, maxWidth, m, fontSize)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

// epsilon absorbs float rounding when comparing widths.
const epsilon = 1e-9

type wrapper struct {
	m     Measurer
	size  float64
	max   float64
	space float64
	lines []Line

	cur      strings.Builder
	curWidth float64
}

func (w *wrapper) fits(width float64) bool {
	return w.max <= 0 || width <= w.max+epsilon
}

func (w *wrapper) commit(hard bool) {
	w.lines = append(w.lines, Line{Text: w.cur.String(), Hard: hard})
	w.cur.Reset()
	w.curWidth = 0
}

func (w *wrapper) paragraph(p string) {
	for _, word := range strings.Fields(p) {
		width := w.m.MeasureText(word, w.size)
		if w.cur.Len() > 0 {
			if w.fits(w.curWidth + w.space + width) {
				w.cur.WriteByte(' ')
				w.cur.WriteString(word)
				w.curWidth += w.space + width
				continue
			}
			w.commit(false)
		}
		if w.fits(width) {
			w.cur.WriteString(word)
			w.curWidth = width
			continue
		}
		w.splitWord(word)
	}
	w.commit(true)
}

// splitWord places an over-wide word on fresh lines, character by character.
// The unfilled tail stays open so following words can join it.
func (w *wrapper) splitWord(word string) {
	for _, r := range word {
		ch := string(r)
		width := w.m.MeasureText(ch, w.size)
		if w.cur.Len() > 0 && !w.fits(w.curWidth+width) {
			w.commit(false)
		}
		w.cur.WriteString(ch)
		w.curWidth += width
	}
}
