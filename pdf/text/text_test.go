package text

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/pdf/fonts"
)

// monoMeasurer gives every character an advance of half the font size.
var monoMeasurer = MeasureFunc(func(s string, size float64) float64 {
	return float64(utf8.RuneCountInString(s)) * size / 2
})

func TestColorHelpers(t *testing.T) {
	tests := []struct {
		name string
		got  Color
		want Color
	}{
		{"black", Black(), Color{0, 0, 0}},
		{"gray", Gray(0.5), Color{0.5, 0.5, 0.5}},
		{"rgb", RGB(255, 0, 51), Color{1, 0, 0.2}},
		{"hex", Hex("#FF0033"), Color{1, 0, 0.2}},
		{"hex no hash", Hex("ff0033"), Color{1, 0, 0.2}},
		{"hex short", Hex("#F03"), Black()},
		{"hex junk", Hex("zzzzzz"), Black()},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestLineHeight(t *testing.T) {
	if got := LineHeight(10); got != 13.5 {
		t.Errorf("LineHeight(10) = %v, want 13.5", got)
	}
}

func TestWrap(t *testing.T) {
	// At size 2 every character is 1pt wide.
	tests := []struct {
		name     string
		text     string
		maxWidth float64
		want     []Line
	}{
		{"empty", "", 10, []Line{{"", true}}},
		{"fits", "hello world", 11, []Line{{"hello world", true}}},
		{"greedy", "aa bb cc dd", 5, []Line{{"aa bb", false}, {"cc dd", true}}},
		{"exact boundary", "abc de", 6, []Line{{"abc de", true}}},
		{"one over", "abc def", 6, []Line{{"abc", false}, {"def", true}}},
		{"collapses spaces", "  a   b  ", 10, []Line{{"a b", true}}},
		{"newlines", "a\nb", 10, []Line{{"a", true}, {"b", true}}},
		{"blank line kept", "a\n\nb", 10, []Line{{"a", true}, {"", true}, {"b", true}}},
		{"crlf", "a\r\nb", 10, []Line{{"a", true}, {"b", true}}},
		{"long word split", "abcdefghij", 4, []Line{{"abcd", false}, {"efgh", false}, {"ij", true}}},
		{"tail joins next word", "abcdef gh", 4, []Line{{"abcd", false}, {"ef", false}, {"gh", true}}},
		{"tail takes short word", "abcde f", 4, []Line{{"abcd", false}, {"e f", true}}},
		{"no wrapping", "aa bb cc", 0, []Line{{"aa bb cc", true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, tt.maxWidth, monoMeasurer, 2)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Wrap(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestWrapText(t *testing.T) {
	got := WrapText("aa bb cc dd", 5, monoMeasurer, 2)
	want := []string{"aa bb", "cc dd"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("WrapText() mismatch (-want +got):\n%s", diff)
	}
}

func TestWrapSingleWideCharacter(t *testing.T) {
	got := WrapText("xyz", 0.5, monoMeasurer, 2)
	want := []string{"x", "y", "z"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("WrapText() mismatch (-want +got):\n%s", diff)
	}
}

func TestWrapWidthBound(t *testing.T) {
	f, err := fonts.DefaultCache().Get(fonts.RegularFile)
	if err != nil {
		t.Fatal(err)
	}
	subset := fonts.NewGlyphSubset(f)

	texts := []string{
		"Hồ sơ tranh chấp giữa khách hàng và freelancer về cột mốc thanh toán thứ hai.",
		"The freelancer delivered the milestone late; the client requested a partial refund of 40%.",
		"https://example.com/evidence/attachments/9f1c2b7d-0e54-4c1a-b1b3-7a3e8f4d2c11/screenshot-final.png",
		strings.Repeat("W", 200),
	}
	const size = 10
	for _, maxWidth := range []float64{40, 120, 300} {
		for _, text := range texts {
			for _, line := range WrapText(text, maxWidth, subset, size) {
				if utf8.RuneCountInString(line) <= 1 {
					continue
				}
				if w := subset.MeasureText(line, size); w > maxWidth+1e-9 {
					t.Errorf("line %q is %.2fpt wide, limit %.0f", line, w, maxWidth)
				}
			}
		}
	}
}

func TestWrapPreservesWords(t *testing.T) {
	text := "one two three four five six seven eight nine ten"
	lines := WrapText(text, 12, monoMeasurer, 2)
	if got := strings.Join(lines, " "); got != text {
		t.Errorf("rejoined lines = %q, want %q", got, text)
	}
	if len(lines) < 4 {
		t.Errorf("got %d lines, expected wrapping", len(lines))
	}
}
