package fonts

import (
	"encoding/binary"
	"math"

	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/pdf/generic"
)

// ObjectsPerFont is the number of indirect objects BuildFontObjects emits
// for a non-empty subset.
const ObjectsPerFont = 6

// Font descriptor flags (PDF 32000-1, table 123).
const (
	FlagFixedPitch  = 1 << 0
	FlagNonsymbolic = 1 << 5
	FlagItalic      = 1 << 6
	FlagForceBold   = 1 << 18
)

// DescriptorFlags computes the FontDescriptor /Flags value.
func DescriptorFlags(f *ParsedFont) int {
	flags := FlagNonsymbolic
	if f.IsFixedPitch {
		flags |= FlagFixedPitch
	}
	if f.ItalicAngle != 0 {
		flags |= FlagItalic
	}
	if f.WeightClass >= 600 {
		flags |= FlagForceBold
	}
	return flags
}

// stemV estimates the dominant vertical stem width from the weight class.
func stemV(weight int) int {
	if weight <= 0 {
		weight = 400
	}
	w := float64(weight) / 65
	return 50 + int(w*w)
}

// BuildFontObjects returns the objects embedding s, numbered from first:
//
//	first+0 Type0 font
//	first+1 CIDFontType2 descendant
//	first+2 FontDescriptor
//	first+3 FontFile2
//	first+4 CIDToGIDMap
//	first+5 ToUnicode
//
// The Type0 font at first is the one to name in page resources. An empty
// subset yields no objects.
func BuildFontObjects(s *GlyphSubset, first int) []*generic.IndirectObject {
	if s.Len() == 0 {
		return nil
	}
	f := s.font

	type0Ref := generic.NewReference(first, 0)
	cidFontRef := generic.NewReference(first+1, 0)
	descRef := generic.NewReference(first+2, 0)
	fileRef := generic.NewReference(first+3, 0)
	cidToGIDRef := generic.NewReference(first+4, 0)
	toUnicodeRef := generic.NewReference(first+5, 0)

	baseFont := generic.NameObject(f.PostScriptName)

	desc := generic.NewDictionary()
	desc.Set("Type", generic.NameObject("FontDescriptor"))
	desc.Set("FontName", baseFont)
	desc.Set("Flags", generic.IntegerObject(DescriptorFlags(f)))
	desc.Set("FontBBox", generic.NewArray(
		scaled(f, f.BBox[0]), scaled(f, f.BBox[1]),
		scaled(f, f.BBox[2]), scaled(f, f.BBox[3]),
	))
	desc.Set("ItalicAngle", generic.RealObject(f.ItalicAngle))
	desc.Set("Ascent", scaled(f, f.Ascent))
	desc.Set("Descent", scaled(f, f.Descent))
	desc.Set("CapHeight", scaled(f, f.CapHeight))
	desc.Set("XHeight", scaled(f, f.XHeight))
	desc.Set("StemV", generic.IntegerObject(stemV(f.WeightClass)))
	desc.Set("AvgWidth", scaled(f, s.AverageWidth()))
	desc.Set("MaxWidth", scaled(f, s.MaxWidth()))
	desc.Set("FontFile2", fileRef)

	fileDict := generic.NewDictionary()
	fileDict.Set("Length1", generic.IntegerObject(len(f.Data)))
	fontFile := generic.NewStream(fileDict, f.Data)

	cidToGID := generic.NewStream(nil, CIDToGIDMap(s))

	toUnicode := generic.NewStream(nil, ToUnicodeCMap(s))

	sysInfo := generic.NewDictionary()
	sysInfo.Set("Registry", generic.NewLiteralString("Adobe"))
	sysInfo.Set("Ordering", generic.NewLiteralString("Identity"))
	sysInfo.Set("Supplement", generic.IntegerObject(0))

	cidFont := generic.NewDictionary()
	cidFont.Set("Type", generic.NameObject("Font"))
	cidFont.Set("Subtype", generic.NameObject(FontTypeCIDFont))
	cidFont.Set("BaseFont", baseFont)
	cidFont.Set("CIDSystemInfo", sysInfo)
	cidFont.Set("FontDescriptor", descRef)
	cidFont.Set("DW", generic.IntegerObject(1000))
	cidFont.Set("W", WidthArray(s))
	cidFont.Set("CIDToGIDMap", cidToGIDRef)

	type0 := generic.NewDictionary()
	type0.Set("Type", generic.NameObject("Font"))
	type0.Set("Subtype", generic.NameObject(FontTypeType0))
	type0.Set("BaseFont", baseFont)
	type0.Set("Encoding", generic.NameObject("Identity-H"))
	type0.Set("DescendantFonts", generic.NewArray(cidFontRef))
	type0.Set("ToUnicode", toUnicodeRef)

	return []*generic.IndirectObject{
		generic.NewIndirectObject(type0Ref.ObjectNumber, 0, type0),
		generic.NewIndirectObject(cidFontRef.ObjectNumber, 0, cidFont),
		generic.NewIndirectObject(descRef.ObjectNumber, 0, desc),
		generic.NewIndirectObject(fileRef.ObjectNumber, 0, fontFile),
		generic.NewIndirectObject(cidToGIDRef.ObjectNumber, 0, cidToGID),
		generic.NewIndirectObject(toUnicodeRef.ObjectNumber, 0, toUnicode),
	}
}

func scaled(f *ParsedFont, v int) generic.IntegerObject {
	return generic.IntegerObject(math.Round(f.Scale(v)))
}

// CIDToGIDMap returns one big-endian glyph id per CID, from CID 0 up to the
// highest allocated CID. CID 0 maps to glyph 0.
func CIDToGIDMap(s *GlyphSubset) []byte {
	out := make([]byte, 2*(len(s.glyphs)+1))
	for _, g := range s.glyphs {
		binary.BigEndian.PutUint16(out[2*int(g.CID):], g.GlyphID)
	}
	return out
}

// minRangeRun is the shortest run of equal widths written in the
// "first last width" form of /W.
const minRangeRun = 3

// WidthArray builds the CIDFont /W array. Runs of equal widths become
// "c1 c2 w", everything else "c [w1 w2 ...]".
func WidthArray(s *GlyphSubset) generic.ArrayObject {
	widths := make([]generic.IntegerObject, len(s.glyphs))
	for i, g := range s.glyphs {
		widths[i] = scaled(s.font, int(g.Width))
	}

	var out generic.ArrayObject
	var pending generic.ArrayObject
	pendingStart := 0
	flush := func() {
		if len(pending) > 0 {
			out = append(out, generic.IntegerObject(pendingStart+1), pending)
			pending = nil
		}
	}

	for i := 0; i < len(widths); {
		j := i + 1
		for j < len(widths) && widths[j] == widths[i] {
			j++
		}
		if j-i >= minRangeRun {
			flush()
			out = append(out, generic.IntegerObject(i+1), generic.IntegerObject(j), widths[i])
			i = j
			continue
		}
		if len(pending) == 0 {
			pendingStart = i
		}
		for k := i; k < j; k++ {
			pending = append(pending, widths[k])
		}
		i = j
	}
	flush()
	return out
}
