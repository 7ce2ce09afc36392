// Package fonts parses TrueType/OpenType font files and tracks the glyphs a
// document uses so they can be embedded as CID-keyed fonts.
package fonts

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrInvalidFont       = errors.New("invalid font data")
	ErrUnsupportedFormat = errors.New("unsupported font format")
	ErrMissingTable      = errors.New("missing required font table")
	ErrNoUsableCmap      = errors.New("no supported cmap subtable")
	ErrFontNotFound      = errors.New("font not found")
	ErrCIDSpaceExhausted = errors.New("glyph subset exceeds 65535 CIDs")
)

// MissingTableError reports a required sfnt table that is absent.
type MissingTableError struct {
	Tag string
}

func (e *MissingTableError) Error() string {
	return fmt.Sprintf("missing required font table %q", e.Tag)
}

func (e *MissingTableError) Unwrap() error {
	return ErrMissingTable
}

// FontType represents the PDF font dictionary subtype.
type FontType string

const (
	FontTypeType0   FontType = "Type0"
	FontTypeCIDFont FontType = "CIDFontType2"
)

// TableRecord locates one table inside the font file.
type TableRecord struct {
	Offset int
	Length int
}

// ParsedFont holds what the engine needs from an sfnt file. It is never
// modified after ParseFont returns and can be shared between goroutines.
type ParsedFont struct {
	// Tables is the table directory.
	Tables map[string]TableRecord

	UnitsPerEm int
	// Ascent and Descent are in font units; Descent is usually negative.
	Ascent    int
	Descent   int
	LineGap   int
	CapHeight int
	XHeight   int

	// ItalicAngle in degrees, counter-clockwise from vertical.
	ItalicAngle     float64
	IsFixedPitch    bool
	WeightClass     int
	AvgCharWidth    int
	MaxAdvanceWidth int
	// BBox is [xMin yMin xMax yMax] in font units.
	BBox [4]int

	PostScriptName string
	NumGlyphs      int

	// Widths holds the advance width of every glyph, indexed by glyph id.
	Widths []uint16

	Cmap Cmap

	// Data is the complete font program.
	Data []byte

	fallback uint16
}

// GlyphIndex returns the glyph id mapped to r, or 0 if r is not mapped.
func (f *ParsedFont) GlyphIndex(r rune) uint16 {
	return lookupGlyph(f.Cmap, r)
}

// FallbackGlyph returns the glyph substituted for unmapped characters,
// the glyph of '?' (0 if the font lacks one).
func (f *ParsedFont) FallbackGlyph() uint16 {
	return f.fallback
}

// Advance returns the advance width of gid in font units.
func (f *ParsedFont) Advance(gid uint16) uint16 {
	if int(gid) < len(f.Widths) {
		return f.Widths[gid]
	}
	if len(f.Widths) > 0 {
		return f.Widths[len(f.Widths)-1]
	}
	return 0
}

// Scale converts a font unit value to the 1000 units per em glyph space PDF uses.
func (f *ParsedFont) Scale(v int) float64 {
	return float64(v) * 1000 / float64(f.UnitsPerEm)
}
