package fonts

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/pdf/generic"
)

func subsetOf(t *testing.T, f *ParsedFont, text string) *GlyphSubset {
	t.Helper()
	s := NewGlyphSubset(f)
	if _, err := s.EncodeText(text); err != nil {
		t.Fatal(err)
	}
	return s
}

func render(t *testing.T, obj generic.PdfObject) string {
	t.Helper()
	var buf bytes.Buffer
	if err := obj.Write(&buf); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestToUnicodeCMap(t *testing.T) {
	s := subsetOf(t, emojiFont(t), "AB😀")
	cmap := string(ToUnicodeCMap(s))

	want := "3 beginbfchar\n<0001> <0041>\n<0002> <0042>\n<0003> <01F600>\nendbfchar\n"
	if !strings.Contains(cmap, want) {
		t.Errorf("ToUnicode CMap missing entries, got:\n%s", cmap)
	}
	for _, part := range []string{"/CMapName /Adobe-Identity-UCS def", "<0000> <FFFF>", "endcmap"} {
		if !strings.Contains(cmap, part) {
			t.Errorf("ToUnicode CMap missing %q", part)
		}
	}
}

func TestToUnicodeCMapBlocks(t *testing.T) {
	s := NewGlyphSubset(mustParse(t, minimalFont().build()))
	for i := 0; i < 205; i++ {
		if _, err := s.EnsureGlyph(rune(0x4E00 + i)); err != nil {
			t.Fatal(err)
		}
	}
	cmap := string(ToUnicodeCMap(s))

	if n := strings.Count(cmap, "100 beginbfchar\n"); n != 2 {
		t.Errorf("got %d full blocks, want 2", n)
	}
	if !strings.Contains(cmap, "5 beginbfchar\n") {
		t.Error("missing trailing block of 5")
	}
	if n := strings.Count(cmap, "endbfchar"); n != 3 {
		t.Errorf("got %d endbfchar, want 3", n)
	}
	for cid := 1; cid <= 205; cid++ {
		entry := fmt.Sprintf("<%04X> <%04X>\n", cid, 0x4E00+cid-1)
		if !strings.Contains(cmap, entry) {
			t.Fatalf("missing entry %q", entry)
		}
	}
}

func TestCIDToGIDMap(t *testing.T) {
	s := subsetOf(t, mustParse(t, minimalFont().build()), "AB?")
	got := CIDToGIDMap(s)
	want := []byte{0, 0, 0, 2, 0, 3, 0, 1}
	if !bytes.Equal(got, want) {
		t.Errorf("CIDToGIDMap() = %v, want %v", got, want)
	}
}

func TestWidthArray(t *testing.T) {
	f := mustParse(t, minimalFont().build())

	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", "[]"},
		{"individual", "AB", "[1 [600 700]]"},
		{"run", "xyzAB", "[1 3 300 4 [600 700]]"},
		{"short run stays individual", "xyAB", "[1 [300 300 600 700]]"},
		{"run in the middle", "Axyz?B", "[1 [600] 2 5 300 6 [700]]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := subsetOf(t, f, tt.text)
			if got := render(t, WidthArray(s)); got != tt.want {
				t.Errorf("WidthArray() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestWidthArrayScalesToGlyphSpace(t *testing.T) {
	f := mustParse(t, minimalFont().with("head", headTable(2000, [4]int16{})).build())
	s := subsetOf(t, f, "A")
	if got := render(t, WidthArray(s)); got != "[1 [300]]" {
		t.Errorf("WidthArray() = %s, want [1 [300]]", got)
	}
}

func TestBuildFontObjects(t *testing.T) {
	f := mustParse(t, minimalFont().
		with("OS/2", os2Table(700, 900, -250, 480, 690)).
		with("post", postTable(-10, false)).
		with("name", nameTable(nameRecord{3, 6, "Test-Bold"})).
		build())

	if objs := BuildFontObjects(NewGlyphSubset(f), 7); objs != nil {
		t.Errorf("empty subset produced %d objects", len(objs))
	}

	s := subsetOf(t, f, "AB")
	objs := BuildFontObjects(s, 7)
	if len(objs) != ObjectsPerFont {
		t.Fatalf("got %d objects, want %d", len(objs), ObjectsPerFont)
	}
	for i, obj := range objs {
		if obj.ObjectNumber != 7+i {
			t.Errorf("object %d numbered %d", i, obj.ObjectNumber)
		}
	}

	type0 := render(t, objs[0])
	for _, part := range []string{"/Subtype /Type0", "/BaseFont /Test-Bold", "/Encoding /Identity-H", "/DescendantFonts [8 0 R]", "/ToUnicode 12 0 R"} {
		if !strings.Contains(type0, part) {
			t.Errorf("Type0 font missing %q:\n%s", part, type0)
		}
	}

	cid := render(t, objs[1])
	for _, part := range []string{"/Subtype /CIDFontType2", "/Registry (Adobe)", "/Ordering (Identity)", "/Supplement 0", "/FontDescriptor 9 0 R", "/DW 1000", "/W [1 [600 700]]", "/CIDToGIDMap 11 0 R"} {
		if !strings.Contains(cid, part) {
			t.Errorf("CIDFont missing %q:\n%s", part, cid)
		}
	}

	desc := render(t, objs[2])
	flags := FlagNonsymbolic | FlagItalic | FlagForceBold
	for _, part := range []string{
		"/Type /FontDescriptor",
		fmt.Sprintf("/Flags %d", flags),
		"/FontBBox [-50 -200 950 800]",
		"/ItalicAngle -10",
		"/Ascent 900", "/Descent -250", "/CapHeight 690", "/XHeight 480",
		"/AvgWidth 650", "/MaxWidth 700",
		"/FontFile2 10 0 R",
	} {
		if !strings.Contains(desc, part) {
			t.Errorf("FontDescriptor missing %q:\n%s", part, desc)
		}
	}

	file := render(t, objs[3])
	if !strings.Contains(file, fmt.Sprintf("/Length1 %d", len(f.Data))) {
		t.Errorf("FontFile2 missing /Length1:\n%.200s", file)
	}
	if !strings.Contains(file, fmt.Sprintf("/Length %d", len(f.Data))) {
		t.Errorf("FontFile2 missing /Length:\n%.200s", file)
	}
}

func TestDescriptorFlags(t *testing.T) {
	tests := []struct {
		name string
		font ParsedFont
		want int
	}{
		{"regular", ParsedFont{WeightClass: 400}, FlagNonsymbolic},
		{"mono", ParsedFont{IsFixedPitch: true}, FlagNonsymbolic | FlagFixedPitch},
		{"italic", ParsedFont{ItalicAngle: -12}, FlagNonsymbolic | FlagItalic},
		{"bold", ParsedFont{WeightClass: 700}, FlagNonsymbolic | FlagForceBold},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DescriptorFlags(&tt.font); got != tt.want {
				t.Errorf("DescriptorFlags() = %d, want %d", got, tt.want)
			}
		})
	}
}
