package composer

import (
	"math"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/pdf/layout"
	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/pdf/text"
)

const (
	cellFontSize = 9
	cellPadding  = 4
	tableGap     = 8

	codeFontSize = 8
	codePadding  = 6
	tabWidth     = 4
)

// tableSpec is a table after normalization.
type tableSpec struct {
	header []string
	rows   [][]string
	widths []float64
	// labelColumn draws the first column in bold, as in key-value grids.
	labelColumn bool
}

// wrappedRow holds the lines of every cell of one row.
type wrappedRow [][]string

func (r wrappedRow) lineCount() int {
	n := 1
	for _, cell := range r {
		n = max(n, len(cell))
	}
	return n
}

// AddKeyValuePairs draws pairs as a two-column grid, labels in bold. An
// empty list draws emptyMessage as a note instead.
func (c *Composer) AddKeyValuePairs(pairs []KeyValuePair, emptyMessage string) {
	if c.err != nil {
		return
	}
	if len(pairs) == 0 {
		c.AddNote(orDefault(emptyMessage, DefaultEmptyMessage))
		return
	}
	rows := make([][]string, len(pairs))
	for i, p := range pairs {
		rows[i] = []string{p.Label, p.Value}
	}
	c.drawTable(tableSpec{
		rows:        rows,
		widths:      layout.Columns(c.area.Width, []float64{0.32, 0.68}, 2),
		labelColumn: true,
	})
}

// AddTable draws t with a bold header on a tinted band and striped rows.
// Each cell wraps on its own; a row is as tall as its tallest cell. The
// header is repeated at the top of every page the table continues on. A row
// that does not fit in the space left moves to the next page, and a row
// taller than a whole page is split across pages.
func (c *Composer) AddTable(t TableContent) {
	if c.err != nil {
		return
	}
	if len(t.Rows) == 0 {
		c.AddNote(orDefault(t.EmptyMessage, DefaultEmptyMessage))
		return
	}

	n := len(t.Columns)
	header := t.Columns
	if n == 0 {
		for _, row := range t.Rows {
			n = max(n, len(row))
		}
		header = nil
	}
	if n == 0 {
		c.AddNote(orDefault(t.EmptyMessage, DefaultEmptyMessage))
		return
	}

	c.drawTable(tableSpec{
		header: header,
		rows:   t.Rows,
		widths: layout.Columns(c.area.Width, t.ColumnRatios, n),
	})
	if t.Note != "" {
		c.AddNote(t.Note)
	}
}

func (c *Composer) wrapRow(cells []string, widths []float64, style func(col int) Style) wrappedRow {
	row := make(wrappedRow, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = norm.NFC.String(cells[i])
		}
		inner := math.Max(w-2*cellPadding, 1)
		row[i] = c.wrap(style(i), cell, inner, cellFontSize)
	}
	return row
}

func (c *Composer) drawTable(ts tableSpec) {
	lh := text.LineHeight(cellFontSize)

	var header wrappedRow
	headerHeight := 0.0
	if ts.header != nil {
		header = c.wrapRow(ts.header, ts.widths, func(int) Style { return Bold })
		headerHeight = float64(header.lineCount())*lh + 2*cellPadding
	}
	cellStyle := func(col int) Style {
		if ts.labelColumn && col == 0 {
			return Bold
		}
		return Regular
	}

	// Keep the header with at least one line of the first row.
	c.ensureSpace(headerHeight + lh + 2*cellPadding)
	c.drawHeader(header, ts.widths, headerHeight)

	fullPage := c.area.Height - headerHeight
	for i, cells := range ts.rows {
		row := c.wrapRow(cells, ts.widths, cellStyle)
		total := row.lineCount()
		height := float64(total)*lh + 2*cellPadding

		if height > c.remaining()+epsilon && height <= fullPage+epsilon {
			c.continueTable(header, ts.widths, headerHeight)
		}

		for start := 0; start < total; {
			fit := int(math.Floor((c.remaining() - 2*cellPadding + epsilon) / lh))
			if fit < 1 {
				c.continueTable(header, ts.widths, headerHeight)
				fit = max(1, int(math.Floor((c.remaining()-2*cellPadding+epsilon)/lh)))
			}
			count := min(fit, total-start)
			c.drawRowSlice(row, ts.widths, cellStyle, start, count, i%2 == 1)
			start += count
			if start < total {
				c.continueTable(header, ts.widths, headerHeight)
			}
		}
	}
	c.addSpace(tableGap)
}

// continueTable moves to a new page and repeats the header there.
func (c *Composer) continueTable(header wrappedRow, widths []float64, headerHeight float64) {
	c.startPage()
	c.drawHeader(header, widths, headerHeight)
}

func (c *Composer) drawHeader(header wrappedRow, widths []float64, height float64) {
	if header == nil {
		return
	}
	top := c.cursor
	c.fillRect(headerFill, c.area.X, top-height, c.area.Width, height)
	c.drawCells(header, widths, func(int) Style { return Bold }, 0, header.lineCount(), top)
	c.hline(borderLine, 0.5, c.area.X, c.area.Right(), top-height)
	c.advance(height)
}

// drawRowSlice draws lines [start, start+count) of every cell of row.
func (c *Composer) drawRowSlice(row wrappedRow, widths []float64, style func(int) Style, start, count int, striped bool) {
	lh := text.LineHeight(cellFontSize)
	height := float64(count)*lh + 2*cellPadding
	top := c.cursor
	if striped {
		c.fillRect(stripeFill, c.area.X, top-height, c.area.Width, height)
	}
	c.drawCells(row, widths, style, start, count, top)
	c.hline(borderLine, 0.25, c.area.X, c.area.Right(), top-height)
	c.advance(height)
}

func (c *Composer) drawCells(row wrappedRow, widths []float64, style func(int) Style, start, count int, top float64) {
	lh := text.LineHeight(cellFontSize)
	x := c.area.X
	for col, lines := range row {
		s := style(col)
		ascent := c.ascent(s, cellFontSize)
		for j := start; j < start+count && j < len(lines); j++ {
			y := top - cellPadding - ascent - float64(j-start)*lh
			c.showText(s, cellFontSize, inkColor, x+cellPadding, y, lines[j])
		}
		x += widths[col]
	}
}

// AddCodeBlock draws pre-split lines in the monospace font on a tinted
// block. Lines are not wrapped; tabs expand to four spaces. A block that
// does not fit continues on the next page.
func (c *Composer) AddCodeBlock(lines []string) {
	if c.err != nil || len(lines) == 0 {
		return
	}
	lh := text.LineHeight(codeFontSize)
	ascent := c.ascent(Mono, codeFontSize)

	for start := 0; start < len(lines); {
		fit := int(math.Floor((c.remaining() - 2*codePadding + epsilon) / lh))
		if fit < 1 {
			c.startPage()
			fit = max(1, int(math.Floor((c.remaining()-2*codePadding+epsilon)/lh)))
		}
		count := min(fit, len(lines)-start)
		height := float64(count)*lh + 2*codePadding
		top := c.cursor

		c.fillRect(codeFill, c.area.X, top-height, c.area.Width, height)
		for j := 0; j < count; j++ {
			line := strings.ReplaceAll(lines[start+j], "\t", strings.Repeat(" ", tabWidth))
			y := top - codePadding - ascent - float64(j)*lh
			c.showText(Mono, codeFontSize, inkColor, c.area.X+codePadding, y, line)
		}
		c.advance(height)

		start += count
		if start < len(lines) {
			c.startPage()
		}
	}
	c.addSpace(tableGap)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
