package fonts

import (
	"sort"

	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/pdf"
)

// Cmap is the Unicode to glyph mapping of a font. It is either a
// *CmapFormat4 or a *CmapFormat12.
type Cmap interface {
	// Format returns the cmap subtable format number.
	Format() int
	isCmap()
}

// CmapFormat4 is a segment mapping to delta values (BMP only).
type CmapFormat4 struct {
	Segments []Format4Segment
	// GlyphIDs is the glyph index array that follows the segment arrays.
	GlyphIDs []uint16
}

// Format4Segment is one {start,end,idDelta,idRangeOffset} record.
type Format4Segment struct {
	Start         uint16
	End           uint16
	IDDelta       uint16
	IDRangeOffset uint16
}

// CmapFormat12 is a segmented coverage table over the full Unicode range.
type CmapFormat12 struct {
	// Groups are sorted by StartCode and do not overlap.
	Groups []Format12Group
}

// Format12Group maps [StartCode, EndCode] to consecutive glyph ids.
type Format12Group struct {
	StartCode  uint32
	EndCode    uint32
	StartGlyph uint32
}

// Format implements Cmap.
func (*CmapFormat4) Format() int { return 4 }

// Format implements Cmap.
func (*CmapFormat12) Format() int { return 12 }

func (*CmapFormat4) isCmap()  {}
func (*CmapFormat12) isCmap() {}

// lookupGlyph resolves r through whichever cmap variant the font carries.
func lookupGlyph(c Cmap, r rune) uint16 {
	switch c := c.(type) {
	case *CmapFormat4:
		return c.lookup(r)
	case *CmapFormat12:
		return c.lookup(r)
	default:
		return 0
	}
}

func (c *CmapFormat4) lookup(r rune) uint16 {
	if r < 0 || r > 0xFFFF {
		return 0
	}
	code := uint16(r)
	segCount := len(c.Segments)
	for i, seg := range c.Segments {
		if code < seg.Start || code > seg.End {
			continue
		}
		if seg.IDRangeOffset == 0 {
			return code + seg.IDDelta
		}
		// idRangeOffset is a byte offset from its own slot in the
		// idRangeOffset array; the glyph array starts right after that array.
		idx := int(seg.IDRangeOffset)/2 + int(code-seg.Start) + i - segCount
		if idx < 0 || idx >= len(c.GlyphIDs) {
			return 0
		}
		gid := c.GlyphIDs[idx]
		if gid == 0 {
			return 0
		}
		return gid + seg.IDDelta
	}
	return 0
}

func (c *CmapFormat12) lookup(r rune) uint16 {
	if r < 0 {
		return 0
	}
	code := uint32(r)
	i := sort.Search(len(c.Groups), func(i int) bool {
		return c.Groups[i].EndCode >= code
	})
	if i == len(c.Groups) || c.Groups[i].StartCode > code {
		return 0
	}
	g := c.Groups[i]
	gid := g.StartGlyph + (code - g.StartCode)
	if gid > 0xFFFF {
		return 0
	}
	return uint16(gid)
}

type cmapCandidate struct {
	platform uint16
	encoding uint16
	offset   int
	format   uint16
}

// parseCmap picks the best Unicode subtable: format 12 on (3,1) or (3,10)
// first, then format 4 on platform 3 or 0.
func parseCmap(data []byte, rec TableRecord) (Cmap, error) {
	r := newReader(data, rec.Offset)
	r.skip(2) // version
	numTables := int(r.u16())
	if r.err != nil {
		return nil, r.err
	}

	var candidates []cmapCandidate
	for i := 0; i < numTables; i++ {
		c := cmapCandidate{
			platform: r.u16(),
			encoding: r.u16(),
			offset:   rec.Offset + int(r.u32()),
		}
		if r.err != nil {
			return nil, r.err
		}
		fr := newReader(data, c.offset)
		c.format = fr.u16()
		if fr.err != nil {
			continue
		}
		candidates = append(candidates, c)
	}

	for _, c := range candidates {
		if c.format == 12 && c.platform == 3 && (c.encoding == 1 || c.encoding == 10) {
			pdf.Logger().Debug("using cmap subtable", "format", 12, "platform", c.platform, "encoding", c.encoding)
			return parseCmapFormat12(data, c.offset)
		}
	}
	for _, c := range candidates {
		if c.format == 4 && (c.platform == 3 || c.platform == 0) {
			pdf.Logger().Debug("using cmap subtable", "format", 4, "platform", c.platform, "encoding", c.encoding)
			return parseCmapFormat4(data, c.offset)
		}
	}
	return nil, ErrNoUsableCmap
}

func parseCmapFormat4(data []byte, offset int) (*CmapFormat4, error) {
	r := newReader(data, offset)
	r.skip(2) // format
	length := int(r.u16())
	r.skip(2) // language
	segCount := int(r.u16()) / 2
	r.skip(6) // searchRange, entrySelector, rangeShift
	if r.err != nil {
		return nil, r.err
	}

	segs := make([]Format4Segment, segCount)
	for i := range segs {
		segs[i].End = r.u16()
	}
	r.skip(2) // reservedPad
	for i := range segs {
		segs[i].Start = r.u16()
	}
	for i := range segs {
		segs[i].IDDelta = r.u16()
	}
	for i := range segs {
		segs[i].IDRangeOffset = r.u16()
	}
	if r.err != nil {
		return nil, r.err
	}

	// Some fonts carry a bogus length; never read beyond the file.
	end := offset + length
	if end > len(data) || end < r.pos {
		end = len(data)
	}
	var glyphs []uint16
	for r.pos+2 <= end {
		glyphs = append(glyphs, r.u16())
	}
	return &CmapFormat4{Segments: segs, GlyphIDs: glyphs}, r.err
}

func parseCmapFormat12(data []byte, offset int) (*CmapFormat12, error) {
	r := newReader(data, offset)
	r.skip(2 + 2 + 4 + 4) // format, reserved, length, language
	numGroups := int(r.u32())
	if r.err != nil {
		return nil, r.err
	}
	if numGroups*12 > len(data)-r.pos {
		return nil, ErrInvalidFont
	}

	groups := make([]Format12Group, numGroups)
	for i := range groups {
		groups[i] = Format12Group{
			StartCode:  r.u32(),
			EndCode:    r.u32(),
			StartGlyph: r.u32(),
		}
	}
	if r.err != nil {
		return nil, r.err
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].StartCode < groups[j].StartCode
	})
	return &CmapFormat12{Groups: groups}, nil
}
