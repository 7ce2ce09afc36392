package dossier

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultCodeWidth is the number of characters per code block line that
// fits the content width of an A4 page with the default margins.
const DefaultCodeWidth = 96

// CodeBlock is a titled block of pre-split lines drawn verbatim.
//
// In a dossier file a code block gives either its lines, a raw text that is
// split with SplitCodeLines, or arbitrary data rendered as indented JSON:
//
//	payload:
//	  title: Dispute payload
//	  data: {amount: 1500, currency: USD}
type CodeBlock struct {
	Title string   `yaml:"title" json:"title"`
	Lines []string `yaml:"lines" json:"lines"`
}

// UnmarshalYAML accepts the lines, text and data forms of a code block.
func (b *CodeBlock) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Title string   `yaml:"title"`
		Lines []string `yaml:"lines"`
		Text  string   `yaml:"text"`
		Data  any      `yaml:"data"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	b.Title = raw.Title
	switch {
	case raw.Lines != nil:
		b.Lines = raw.Lines
	case raw.Text != "":
		b.Lines = SplitCodeLines(raw.Text, DefaultCodeWidth)
	case raw.Data != nil:
		block, err := PayloadFromJSON(raw.Title, raw.Data, DefaultCodeWidth)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		b.Lines = block.Lines
	}
	return nil
}

// SplitCodeLines splits raw into lines and cuts every line longer than
// maxChars characters into pieces of at most maxChars. A maxChars of zero or
// less keeps lines whole. Empty input yields no lines.
func SplitCodeLines(raw string, maxChars int) []string {
	if raw == "" {
		return nil
	}
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.TrimSuffix(raw, "\n")

	var out []string
	for _, line := range strings.Split(raw, "\n") {
		runes := []rune(line)
		if maxChars <= 0 || len(runes) <= maxChars {
			out = append(out, line)
			continue
		}
		for len(runes) > maxChars {
			out = append(out, string(runes[:maxChars]))
			runes = runes[maxChars:]
		}
		if len(runes) > 0 {
			out = append(out, string(runes))
		}
	}
	return out
}

// PayloadFromJSON renders v as indented JSON and splits it into a code
// block of lines at most maxChars long.
func PayloadFromJSON(title string, v any, maxChars int) (*CodeBlock, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	return &CodeBlock{
		Title: title,
		Lines: SplitCodeLines(string(data), maxChars),
	}, nil
}
