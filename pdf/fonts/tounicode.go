package fonts

import (
	"bytes"
	"fmt"
)

// bfcharBlockSize is the most entries one beginbfchar section may hold.
const bfcharBlockSize = 100

const toUnicodeHeader = `/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
/CIDSystemInfo << /Registry (Adobe) /Ordering (UCS) /Supplement 0 >> def
/CMapName /Adobe-Identity-UCS def
/CMapType 2 def
1 begincodespacerange
<0000> <FFFF>
endcodespacerange
`

const toUnicodeFooter = `endcmap
CMapName currentdict /CMap defineresource pop
end
end
`

// ToUnicodeCMap maps every CID of the subset back to the code point that
// produced it, so text can be extracted from the PDF.
func ToUnicodeCMap(s *GlyphSubset) []byte {
	var buf bytes.Buffer
	buf.WriteString(toUnicodeHeader)

	glyphs := s.glyphs
	for start := 0; start < len(glyphs); start += bfcharBlockSize {
		end := min(start+bfcharBlockSize, len(glyphs))
		fmt.Fprintf(&buf, "%d beginbfchar\n", end-start)
		for _, g := range glyphs[start:end] {
			if g.CodePoint > 0xFFFF {
				fmt.Fprintf(&buf, "<%04X> <%06X>\n", g.CID, g.CodePoint)
			} else {
				fmt.Fprintf(&buf, "<%04X> <%04X>\n", g.CID, g.CodePoint)
			}
		}
		buf.WriteString("endbfchar\n")
	}

	buf.WriteString(toUnicodeFooter)
	return buf.Bytes()
}
