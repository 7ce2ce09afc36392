package fonts

import (
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/pdf"
)

var requiredTables = []string{"head", "hhea", "maxp", "hmtx", "cmap"}

// ParseFont parses an in-memory sfnt font with TrueType outlines. OpenType
// fonts with CFF outlines ("OTTO") cannot be embedded as CIDFontType2 and are
// rejected. A missing head, hhea, maxp, hmtx or cmap table is fatal.
func ParseFont(data []byte) (*ParsedFont, error) {
	if len(data) < 12 {
		return nil, ErrInvalidFont
	}

	f := &ParsedFont{
		Tables: make(map[string]TableRecord),
		Data:   data,
	}

	switch string(data[0:4]) {
	case "\x00\x01\x00\x00", "true":
	default:
		return nil, ErrUnsupportedFormat
	}

	if err := f.parseTableDirectory(); err != nil {
		return nil, err
	}
	for _, tag := range requiredTables {
		if _, ok := f.Tables[tag]; !ok {
			return nil, &MissingTableError{Tag: tag}
		}
	}

	if err := f.parseHead(); err != nil {
		return nil, err
	}
	numHMetrics, err := f.parseHhea()
	if err != nil {
		return nil, err
	}
	if err := f.parseMaxp(); err != nil {
		return nil, err
	}
	if err := f.parseHmtx(numHMetrics); err != nil {
		return nil, err
	}

	f.CapHeight = f.Ascent * 7 / 10
	f.XHeight = f.Ascent / 2
	if rec, ok := f.Tables["OS/2"]; ok {
		f.parseOS2(rec)
	}
	if rec, ok := f.Tables["post"]; ok {
		f.parsePost(rec)
	}
	f.PostScriptName = "EmbeddedFont"
	if rec, ok := f.Tables["name"]; ok {
		if name := parsePostScriptName(data, rec); name != "" {
			f.PostScriptName = name
		}
	}

	cmap, err := parseCmap(data, f.Tables["cmap"])
	if err != nil {
		return nil, err
	}
	f.Cmap = cmap
	f.fallback = f.GlyphIndex('?')

	pdf.Logger().Debug("parsed font",
		"name", f.PostScriptName,
		"glyphs", f.NumGlyphs,
		"unitsPerEm", f.UnitsPerEm,
		"cmapFormat", cmap.Format())

	return f, nil
}

func (f *ParsedFont) parseTableDirectory() error {
	r := newReader(f.Data, 4)
	numTables := int(r.u16())
	r.skip(6) // searchRange, entrySelector, rangeShift
	for i := 0; i < numTables; i++ {
		tag := r.tag()
		r.skip(4) // checksum
		offset := int(r.u32())
		length := int(r.u32())
		if r.err != nil {
			return r.err
		}
		if offset > len(f.Data) || length > len(f.Data)-offset {
			return ErrInvalidFont
		}
		f.Tables[tag] = TableRecord{Offset: offset, Length: length}
	}
	return r.err
}

func (f *ParsedFont) parseHead() error {
	r := newReader(f.Data, f.Tables["head"].Offset)
	r.skip(18)
	f.UnitsPerEm = int(r.u16())
	r.skip(16) // created, modified
	f.BBox = [4]int{int(r.i16()), int(r.i16()), int(r.i16()), int(r.i16())}
	if r.err != nil {
		return r.err
	}
	if f.UnitsPerEm == 0 {
		f.UnitsPerEm = 1000
	}
	return nil
}

func (f *ParsedFont) parseHhea() (int, error) {
	r := newReader(f.Data, f.Tables["hhea"].Offset)
	r.skip(4) // version
	f.Ascent = int(r.i16())
	f.Descent = int(r.i16())
	f.LineGap = int(r.i16())
	f.MaxAdvanceWidth = int(r.u16())
	r.skip(22)
	numHMetrics := int(r.u16())
	return numHMetrics, r.err
}

func (f *ParsedFont) parseMaxp() error {
	r := newReader(f.Data, f.Tables["maxp"].Offset)
	r.skip(4) // version
	f.NumGlyphs = int(r.u16())
	return r.err
}

// parseHmtx reads the advance widths. Glyphs beyond numberOfHMetrics repeat
// the last advance.
func (f *ParsedFont) parseHmtx(numHMetrics int) error {
	rec := f.Tables["hmtx"]
	if numHMetrics > rec.Length/4 {
		numHMetrics = rec.Length / 4
	}
	n := f.NumGlyphs
	if n < numHMetrics {
		n = numHMetrics
	}
	f.Widths = make([]uint16, n)

	r := newReader(f.Data, rec.Offset)
	var last uint16
	for i := 0; i < numHMetrics; i++ {
		last = r.u16()
		r.skip(2) // lsb
		f.Widths[i] = last
	}
	for i := numHMetrics; i < n; i++ {
		f.Widths[i] = last
	}
	return r.err
}

// parseOS2 is best effort: a short or damaged OS/2 table leaves the
// head/hhea derived values in place.
func (f *ParsedFont) parseOS2(rec TableRecord) {
	r := newReader(f.Data, rec.Offset)
	version := r.u16()
	avg := int(r.i16())
	weight := int(r.u16())
	if r.err != nil {
		return
	}
	f.AvgCharWidth = avg
	f.WeightClass = weight

	r.seek(rec.Offset + 68)
	typoAscender := int(r.i16())
	typoDescender := int(r.i16())
	if r.err != nil || rec.Length < 72 {
		return
	}
	if typoAscender != 0 {
		f.Ascent = typoAscender
	}
	if typoDescender != 0 {
		f.Descent = typoDescender
	}
	f.CapHeight = f.Ascent * 7 / 10
	f.XHeight = f.Ascent / 2

	if version < 2 || rec.Length < 90 {
		return
	}
	r.seek(rec.Offset + 86)
	xHeight := int(r.i16())
	capHeight := int(r.i16())
	if r.err != nil {
		return
	}
	if xHeight > 0 {
		f.XHeight = xHeight
	}
	if capHeight > 0 {
		f.CapHeight = capHeight
	}
}

func (f *ParsedFont) parsePost(rec TableRecord) {
	r := newReader(f.Data, rec.Offset)
	r.skip(4) // version
	angle := r.i32()
	r.skip(4) // underlinePosition, underlineThickness
	fixed := r.u32()
	if r.err != nil {
		return
	}
	f.ItalicAngle = float64(angle) / 65536
	f.IsFixedPitch = fixed != 0
}

var utf16Decoder = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// parsePostScriptName returns name id 6, preferring the UTF-16BE records of
// the Unicode and Windows platforms over Macintosh ones.
func parsePostScriptName(data []byte, rec TableRecord) string {
	r := newReader(data, rec.Offset)
	r.skip(2) // format
	count := int(r.u16())
	storage := rec.Offset + int(r.u16())
	if r.err != nil {
		return ""
	}

	var macName string
	for i := 0; i < count; i++ {
		platform := r.u16()
		r.skip(4) // encoding, language
		nameID := r.u16()
		length := int(r.u16())
		offset := int(r.u16())
		if r.err != nil {
			return ""
		}
		if nameID != 6 {
			continue
		}
		raw := newReader(data, storage+offset).bytes(length)
		if raw == nil {
			continue
		}
		switch platform {
		case 0, 3:
			decoded, err := utf16Decoder.NewDecoder().Bytes(raw)
			if err != nil {
				continue
			}
			if name := sanitizePostScriptName(string(decoded)); name != "" {
				return name
			}
		case 1:
			if macName == "" {
				macName = sanitizePostScriptName(string(raw))
			}
		}
	}
	return macName
}

func sanitizePostScriptName(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		}
		return -1
	}, s)
}
