package fonts

import (
	"encoding/binary"
	"sort"
	"unicode/utf16"
)

// sfntBuilder assembles small synthetic fonts for tests.
type sfntBuilder struct {
	tables map[string][]byte
}

func newSfntBuilder() *sfntBuilder {
	return &sfntBuilder{tables: make(map[string][]byte)}
}

// minimalFont returns a builder holding every required table: 1000 units
// per em, glyphs 0..4 and a format 4 cmap for "?AB".
func minimalFont() *sfntBuilder {
	b := newSfntBuilder()
	b.tables["head"] = headTable(1000, [4]int16{-50, -200, 950, 800})
	b.tables["hhea"] = hheaTable(800, -200, 5)
	b.tables["maxp"] = maxpTable(5)
	b.tables["hmtx"] = hmtxTable(500, 300, 600, 700, 650)
	b.tables["cmap"] = cmapTable(cmapRecord{3, 1, cmap4Subtable([]seg4{
		{start: '?', end: '?', delta: delta(1, '?')},
		{start: 'A', end: 'B', delta: delta(2, 'A')},
	})})
	return b
}

func (b *sfntBuilder) without(tag string) *sfntBuilder {
	delete(b.tables, tag)
	return b
}

func (b *sfntBuilder) with(tag string, data []byte) *sfntBuilder {
	b.tables[tag] = data
	return b
}

func (b *sfntBuilder) build() []byte {
	tags := make([]string, 0, len(b.tables))
	for tag := range b.tables {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	out := make([]byte, 12+16*len(tags))
	binary.BigEndian.PutUint32(out[0:], 0x00010000)
	binary.BigEndian.PutUint16(out[4:], uint16(len(tags)))

	for i, tag := range tags {
		for len(out)%4 != 0 {
			out = append(out, 0)
		}
		data := b.tables[tag]
		rec := out[12+16*i:]
		copy(rec[0:4], tag)
		binary.BigEndian.PutUint32(rec[8:], uint32(len(out)))
		binary.BigEndian.PutUint32(rec[12:], uint32(len(data)))
		out = append(out, data...)
	}
	return out
}

func headTable(upem uint16, bbox [4]int16) []byte {
	t := make([]byte, 54)
	binary.BigEndian.PutUint32(t[0:], 0x00010000)
	binary.BigEndian.PutUint32(t[12:], 0x5F0F3CF5)
	binary.BigEndian.PutUint16(t[18:], upem)
	for i, v := range bbox {
		binary.BigEndian.PutUint16(t[36+2*i:], uint16(v))
	}
	return t
}

func hheaTable(ascent, descent int16, numHMetrics uint16) []byte {
	t := make([]byte, 36)
	binary.BigEndian.PutUint32(t[0:], 0x00010000)
	binary.BigEndian.PutUint16(t[4:], uint16(ascent))
	binary.BigEndian.PutUint16(t[6:], uint16(descent))
	binary.BigEndian.PutUint16(t[10:], 1000)
	binary.BigEndian.PutUint16(t[34:], numHMetrics)
	return t
}

func maxpTable(numGlyphs uint16) []byte {
	t := make([]byte, 6)
	binary.BigEndian.PutUint32(t[0:], 0x00005000)
	binary.BigEndian.PutUint16(t[4:], numGlyphs)
	return t
}

func hmtxTable(widths ...uint16) []byte {
	t := make([]byte, 4*len(widths))
	for i, w := range widths {
		binary.BigEndian.PutUint16(t[4*i:], w)
	}
	return t
}

func os2Table(weight uint16, typoAscender, typoDescender, xHeight, capHeight int16) []byte {
	t := make([]byte, 96)
	binary.BigEndian.PutUint16(t[0:], 2)
	binary.BigEndian.PutUint16(t[2:], 480)
	binary.BigEndian.PutUint16(t[4:], weight)
	binary.BigEndian.PutUint16(t[68:], uint16(typoAscender))
	binary.BigEndian.PutUint16(t[70:], uint16(typoDescender))
	binary.BigEndian.PutUint16(t[86:], uint16(xHeight))
	binary.BigEndian.PutUint16(t[88:], uint16(capHeight))
	return t
}

func postTable(italicAngle float64, fixedPitch bool) []byte {
	t := make([]byte, 32)
	binary.BigEndian.PutUint32(t[0:], 0x00030000)
	binary.BigEndian.PutUint32(t[4:], uint32(int32(italicAngle*65536)))
	if fixedPitch {
		binary.BigEndian.PutUint32(t[12:], 1)
	}
	return t
}

type nameRecord struct {
	platform uint16
	nameID   uint16
	value    string
}

func nameTable(records ...nameRecord) []byte {
	var storage []byte
	t := make([]byte, 6+12*len(records))
	binary.BigEndian.PutUint16(t[2:], uint16(len(records)))
	binary.BigEndian.PutUint16(t[4:], uint16(len(t)))
	for i, rec := range records {
		var raw []byte
		if rec.platform == 1 {
			raw = []byte(rec.value)
		} else {
			for _, u := range utf16.Encode([]rune(rec.value)) {
				raw = binary.BigEndian.AppendUint16(raw, u)
			}
		}
		r := t[6+12*i:]
		binary.BigEndian.PutUint16(r[0:], rec.platform)
		if rec.platform == 3 {
			binary.BigEndian.PutUint16(r[2:], 1)
		}
		binary.BigEndian.PutUint16(r[6:], rec.nameID)
		binary.BigEndian.PutUint16(r[8:], uint16(len(raw)))
		binary.BigEndian.PutUint16(r[10:], uint16(len(storage)))
		storage = append(storage, raw...)
	}
	return append(t, storage...)
}

type cmapRecord struct {
	platform, encoding uint16
	subtable           []byte
}

func cmapTable(records ...cmapRecord) []byte {
	t := make([]byte, 4+8*len(records))
	binary.BigEndian.PutUint16(t[2:], uint16(len(records)))
	for i, rec := range records {
		r := t[4+8*i:]
		binary.BigEndian.PutUint16(r[0:], rec.platform)
		binary.BigEndian.PutUint16(r[2:], rec.encoding)
		binary.BigEndian.PutUint32(r[4:], uint32(len(t)))
		t = append(t, rec.subtable...)
	}
	return t
}

// seg4 describes one format 4 segment. With glyphs set the segment is
// written with a non-zero idRangeOffset pointing into the glyph array.
type seg4 struct {
	start, end uint16
	delta      uint16
	glyphs     []uint16
}

// delta returns the idDelta mapping code to gid, modulo 65536.
func delta(gid, code int) uint16 {
	return uint16(gid - code)
}

func cmap4Subtable(segs []seg4) []byte {
	segs = append(segs, seg4{start: 0xFFFF, end: 0xFFFF, delta: 1})
	n := len(segs)

	var glyphArray []uint16
	rangeOffsets := make([]uint16, n)
	for i, s := range segs {
		if s.glyphs == nil {
			continue
		}
		rangeOffsets[i] = uint16((n-i)*2 + len(glyphArray)*2)
		glyphArray = append(glyphArray, s.glyphs...)
	}

	length := 16 + 8*n + 2*len(glyphArray)
	t := make([]byte, 14, length)
	binary.BigEndian.PutUint16(t[0:], 4)
	binary.BigEndian.PutUint16(t[2:], uint16(length))
	binary.BigEndian.PutUint16(t[6:], uint16(2*n))
	for _, s := range segs {
		t = binary.BigEndian.AppendUint16(t, s.end)
	}
	t = append(t, 0, 0)
	for _, s := range segs {
		t = binary.BigEndian.AppendUint16(t, s.start)
	}
	for _, s := range segs {
		t = binary.BigEndian.AppendUint16(t, s.delta)
	}
	for _, ro := range rangeOffsets {
		t = binary.BigEndian.AppendUint16(t, ro)
	}
	for _, g := range glyphArray {
		t = binary.BigEndian.AppendUint16(t, g)
	}
	return t
}

func cmap12Subtable(groups ...Format12Group) []byte {
	t := make([]byte, 16, 16+12*len(groups))
	binary.BigEndian.PutUint16(t[0:], 12)
	binary.BigEndian.PutUint32(t[4:], uint32(16+12*len(groups)))
	binary.BigEndian.PutUint32(t[12:], uint32(len(groups)))
	for _, g := range groups {
		t = binary.BigEndian.AppendUint32(t, g.StartCode)
		t = binary.BigEndian.AppendUint32(t, g.EndCode)
		t = binary.BigEndian.AppendUint32(t, g.StartGlyph)
	}
	return t
}

func cmap0Subtable() []byte {
	t := make([]byte, 262)
	binary.BigEndian.PutUint16(t[2:], 262)
	return t
}
