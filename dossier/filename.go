package dossier

import (
	"path"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
	repeatedDashes  = regexp.MustCompile(`-{2,}`)
)

// stripMarks removes combining marks after canonical decomposition, so
// "Hồ sơ" becomes "Ho so". Chains keep state, so each call builds its own.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// FileName returns a safe PDF file name. The caller's name is reduced to
// ASCII letters, digits, dots, dashes and underscores; diacritics are
// dropped rather than replaced. An empty result falls back to
// "dossier-<caseReference>.pdf", or "dossier.pdf" without a reference. The
// result always ends in ".pdf".
func FileName(name, caseReference string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if strings.EqualFold(path.Ext(base), ".pdf") {
		base = base[:len(base)-len(".pdf")]
	}
	if s := sanitize(base); s != "" {
		return s + ".pdf"
	}
	if ref := sanitize(caseReference); ref != "" {
		return "dossier-" + ref + ".pdf"
	}
	return "dossier.pdf"
}

func sanitize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || s == "." || s == "/" {
		return ""
	}
	s = strings.NewReplacer("đ", "d", "Đ", "D").Replace(s)
	if folded, _, err := transform.String(stripMarks(), s); err == nil {
		s = folded
	}
	s = unsafeFileChars.ReplaceAllString(s, "-")
	s = repeatedDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, ".-_")
}
