package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"text/tabwriter"

	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/pdf/fonts"
)

// InspectOptions contains options for the inspect-font command.
type InspectOptions struct {
	Chars string
	JSON  bool
}

// FontInfo is the inspect-font report.
type FontInfo struct {
	PostScriptName string      `json:"postscript_name"`
	Tables         []string    `json:"tables"`
	UnitsPerEm     int         `json:"units_per_em"`
	NumGlyphs      int         `json:"num_glyphs"`
	CmapFormat     int         `json:"cmap_format"`
	Ascent         int         `json:"ascent"`
	Descent        int         `json:"descent"`
	LineGap        int         `json:"line_gap"`
	CapHeight      int         `json:"cap_height"`
	XHeight        int         `json:"x_height"`
	ItalicAngle    float64     `json:"italic_angle"`
	FixedPitch     bool        `json:"fixed_pitch"`
	WeightClass    int         `json:"weight_class"`
	BBox           [4]int      `json:"bbox"`
	Flags          int         `json:"descriptor_flags"`
	Glyphs         []GlyphInfo `json:"glyphs,omitempty"`
}

// GlyphInfo describes how one character maps into the font.
type GlyphInfo struct {
	Char      string `json:"char"`
	CodePoint string `json:"code_point"`
	GlyphID   uint16 `json:"glyph_id"`
	Advance   uint16 `json:"advance"`
	Mapped    bool   `json:"mapped"`
}

// InspectFontCommand implements the 'inspect-font' command.
func InspectFontCommand(args []string) {
	inspectFlags := flag.NewFlagSet("inspect-font", flag.ExitOnError)

	var opts InspectOptions

	inspectFlags.StringVar(&opts.Chars, "chars", "", "Characters to look up in the cmap")
	inspectFlags.BoolVar(&opts.JSON, "json", false, "Output results in JSON format")

	inspectFlags.Usage = func() {
		fmt.Printf("Usage: %s inspect-font [options] <font.ttf>\n\n", os.Args[0])
		fmt.Println("Show the metrics and glyph mapping the renderer reads from a font.")
		fmt.Println("Names of the bundled fonts work without a file:")
		for _, name := range fonts.EmbeddedFiles() {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println("")
		fmt.Println("Options:")
		inspectFlags.PrintDefaults()
	}

	if err := inspectFlags.Parse(args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		osExit(1)
	}

	if len(inspectFlags.Args()) < 1 {
		inspectFlags.Usage()
		osExit(1)
	}

	info, err := inspectFont(inspectFlags.Arg(0), opts.Chars)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		osExit(1)
	}

	if opts.JSON {
		err = writeFontJSON(os.Stdout, info)
	} else {
		err = writeFontText(os.Stdout, info)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		osExit(1)
	}
}

// inspectFont parses the font at path, or the bundled font of that name.
func inspectFont(path, chars string) (*FontInfo, error) {
	cache := fonts.NewCache(fonts.DirLoader(filepath.Dir(path)))
	f, err := cache.Get(filepath.Base(path))
	if err != nil {
		return nil, err
	}

	info := &FontInfo{
		PostScriptName: f.PostScriptName,
		UnitsPerEm:     f.UnitsPerEm,
		NumGlyphs:      f.NumGlyphs,
		CmapFormat:     f.Cmap.Format(),
		Ascent:         f.Ascent,
		Descent:        f.Descent,
		LineGap:        f.LineGap,
		CapHeight:      f.CapHeight,
		XHeight:        f.XHeight,
		ItalicAngle:    f.ItalicAngle,
		FixedPitch:     f.IsFixedPitch,
		WeightClass:    f.WeightClass,
		BBox:           f.BBox,
		Flags:          fonts.DescriptorFlags(f),
	}
	for tag := range f.Tables {
		info.Tables = append(info.Tables, tag)
	}
	sort.Strings(info.Tables)

	for _, r := range chars {
		gid := f.GlyphIndex(r)
		mapped := gid != 0
		if !mapped {
			gid = f.FallbackGlyph()
		}
		info.Glyphs = append(info.Glyphs, GlyphInfo{
			Char:      string(r),
			CodePoint: fmt.Sprintf("U+%04X", r),
			GlyphID:   gid,
			Advance:   f.Advance(gid),
			Mapped:    mapped,
		})
	}
	return info, nil
}

func writeFontJSON(w io.Writer, info *FontInfo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(info)
}

func writeFontText(w io.Writer, info *FontInfo) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "PostScript name:\t%s\n", info.PostScriptName)
	fmt.Fprintf(tw, "Tables:\t%v\n", info.Tables)
	fmt.Fprintf(tw, "Units per em:\t%d\n", info.UnitsPerEm)
	fmt.Fprintf(tw, "Glyphs:\t%d\n", info.NumGlyphs)
	fmt.Fprintf(tw, "Cmap format:\t%d\n", info.CmapFormat)
	fmt.Fprintf(tw, "Ascent / descent / gap:\t%d / %d / %d\n", info.Ascent, info.Descent, info.LineGap)
	fmt.Fprintf(tw, "Cap height / x-height:\t%d / %d\n", info.CapHeight, info.XHeight)
	fmt.Fprintf(tw, "Italic angle:\t%g\n", info.ItalicAngle)
	fmt.Fprintf(tw, "Fixed pitch:\t%v\n", info.FixedPitch)
	fmt.Fprintf(tw, "Weight class:\t%d\n", info.WeightClass)
	fmt.Fprintf(tw, "Bounding box:\t%v\n", info.BBox)
	fmt.Fprintf(tw, "Descriptor flags:\t%d\n", info.Flags)
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(info.Glyphs) == 0 {
		return nil
	}
	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CHAR\tCODE\tGLYPH\tADVANCE\t")
	for _, g := range info.Glyphs {
		note := ""
		if !g.Mapped {
			note = "(fallback)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", g.Char, g.CodePoint, g.GlyphID, g.Advance, note)
	}
	return tw.Flush()
}
