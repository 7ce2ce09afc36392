package fonts

import (
	"strings"

	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/pdf"
)

// maxCID is the largest CID a two byte Identity-H code can carry.
const maxCID = 0xFFFF

// Glyph is one allocated entry of a GlyphSubset.
type Glyph struct {
	CID       uint16
	GlyphID   uint16
	Width     uint16
	CodePoint rune
}

// GlyphSubset assigns document-local CIDs to the characters a document
// actually uses. CIDs start at 1 and follow first use; a character keeps its
// CID for the life of the subset. A GlyphSubset is not safe for concurrent
// use.
type GlyphSubset struct {
	font   *ParsedFont
	byRune map[rune]Glyph
	// glyphs is indexed by CID-1.
	glyphs   []Glyph
	widthSum int
	widthMax int
}

// NewGlyphSubset creates an empty subset of font.
func NewGlyphSubset(font *ParsedFont) *GlyphSubset {
	return &GlyphSubset{
		font:   font,
		byRune: make(map[rune]Glyph),
	}
}

// Font returns the underlying parsed font.
func (s *GlyphSubset) Font() *ParsedFont {
	return s.font
}

// EnsureGlyph returns the glyph allocated for r, allocating the next CID on
// first sight. Characters the font does not map use the '?' glyph.
func (s *GlyphSubset) EnsureGlyph(r rune) (Glyph, error) {
	if g, ok := s.byRune[r]; ok {
		return g, nil
	}
	if len(s.glyphs) >= maxCID {
		return Glyph{}, ErrCIDSpaceExhausted
	}

	gid := s.font.GlyphIndex(r)
	if gid == 0 {
		gid = s.font.FallbackGlyph()
		pdf.Logger().Debug("glyph fallback", "font", s.font.PostScriptName, "rune", r)
	}
	width := s.font.Advance(gid)

	g := Glyph{
		CID:       uint16(len(s.glyphs) + 1),
		GlyphID:   gid,
		Width:     width,
		CodePoint: r,
	}
	s.glyphs = append(s.glyphs, g)
	s.byRune[r] = g
	s.widthSum += int(width)
	if int(width) > s.widthMax {
		s.widthMax = int(width)
	}
	return g, nil
}

// EncodeText returns text as a sequence of 4 hex digit CIDs, ready to be
// shown with Tj under Identity-H.
func (s *GlyphSubset) EncodeText(text string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(text) * 4)
	for _, r := range text {
		g, err := s.EnsureGlyph(r)
		if err != nil {
			return "", err
		}
		writeHex4(&sb, g.CID)
	}
	return sb.String(), nil
}

// MeasureText returns the advance width of text at fontSize, in points.
// Unseen characters are registered as a side effect.
func (s *GlyphSubset) MeasureText(text string, fontSize float64) float64 {
	var units int
	for _, r := range text {
		g, err := s.EnsureGlyph(r)
		if err != nil {
			// The subset is full; measuring still works from the font.
			gid := s.font.GlyphIndex(r)
			if gid == 0 {
				gid = s.font.FallbackGlyph()
			}
			units += int(s.font.Advance(gid))
			continue
		}
		units += int(g.Width)
	}
	return float64(units) * fontSize / float64(s.font.UnitsPerEm)
}

// Len returns the number of allocated CIDs.
func (s *GlyphSubset) Len() int {
	return len(s.glyphs)
}

// Glyphs returns the allocated glyphs in CID order.
func (s *GlyphSubset) Glyphs() []Glyph {
	return append([]Glyph(nil), s.glyphs...)
}

// Lookup returns the glyph allocated for r without allocating.
func (s *GlyphSubset) Lookup(r rune) (Glyph, bool) {
	g, ok := s.byRune[r]
	return g, ok
}

// AverageWidth returns the mean advance of the allocated glyphs in font units.
func (s *GlyphSubset) AverageWidth() int {
	if len(s.glyphs) == 0 {
		return 0
	}
	return s.widthSum / len(s.glyphs)
}

// MaxWidth returns the widest allocated advance in font units.
func (s *GlyphSubset) MaxWidth() int {
	return s.widthMax
}

const hexDigits = "0123456789ABCDEF"

func writeHex4(sb *strings.Builder, v uint16) {
	sb.WriteByte(hexDigits[v>>12&0xF])
	sb.WriteByte(hexDigits[v>>8&0xF])
	sb.WriteByte(hexDigits[v>>4&0xF])
	sb.WriteByte(hexDigits[v&0xF])
}
