// Package composer lays out dossier content onto PDF pages.
//
// A Composer keeps a vertical cursor on the current page and moves to a new
// page whenever the next draw would cross the bottom margin. Pages are never
// revisited. Text is drawn with four embedded font styles, each backed by
// its own glyph subset, and the finished document is serialized by
// Composer.Bytes.
package composer

import (
	"fmt"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/pdf"
	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/pdf/content"
	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/pdf/fonts"
	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/pdf/generic"
	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/pdf/layout"
	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/pdf/text"
	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/pdf/writer"
)

// Style is one of the four logical font styles.
type Style int

const (
	Regular Style = iota
	Italic
	Bold
	Mono

	numStyles
)

var styleNames = [numStyles]string{"regular", "italic", "bold", "mono"}

func (s Style) String() string {
	if s < 0 || s >= numStyles {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

// ResourceName is the page resource key of the style's font, F1 to F4.
func (s Style) ResourceName() string {
	return fmt.Sprintf("F%d", int(s)+1)
}

// FontSet names the font file of each style, as understood by the
// composer's font cache.
type FontSet struct {
	Regular string `yaml:"regular"`
	Italic  string `yaml:"italic"`
	Bold    string `yaml:"bold"`
	Mono    string `yaml:"mono"`
}

// DefaultFontSet returns the bundled Liberation Sans and Liberation Mono fonts.
func DefaultFontSet() FontSet {
	return FontSet{
		Regular: fonts.RegularFile,
		Italic:  fonts.ItalicFile,
		Bold:    fonts.BoldFile,
		Mono:    fonts.MonoFile,
	}
}

func (f FontSet) file(s Style) string {
	switch s {
	case Italic:
		return f.Italic
	case Bold:
		return f.Bold
	case Mono:
		return f.Mono
	default:
		return f.Regular
	}
}

// Options configures a Composer. Zero fields take the DefaultOptions value.
type Options struct {
	PageSize layout.PageSize
	Margins  layout.Margins
	Fonts    FontSet
	// Cache resolves font file names; nil means fonts.DefaultCache().
	Cache *fonts.Cache
	// Info becomes the document information dictionary.
	Info writer.Info
}

// DefaultOptions returns A4 pages with 48pt margins and the bundled fonts.
func DefaultOptions() Options {
	return Options{
		PageSize: layout.A4,
		Margins:  layout.UniformMargins(48),
		Fonts:    DefaultFontSet(),
		Cache:    fonts.DefaultCache(),
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.PageSize == (layout.PageSize{}) {
		o.PageSize = def.PageSize
	}
	if o.Margins == (layout.Margins{}) {
		o.Margins = def.Margins
	}
	if o.Fonts.Regular == "" {
		o.Fonts.Regular = def.Fonts.Regular
	}
	if o.Fonts.Italic == "" {
		o.Fonts.Italic = def.Fonts.Italic
	}
	if o.Fonts.Bold == "" {
		o.Fonts.Bold = def.Fonts.Bold
	}
	if o.Fonts.Mono == "" {
		o.Fonts.Mono = def.Fonts.Mono
	}
	if o.Cache == nil {
		o.Cache = def.Cache
	}
	return o
}

// Composer builds one document. It is not safe for concurrent use.
type Composer struct {
	layout *layout.PageLayout
	area   layout.Rectangle
	info   writer.Info

	subsets [numStyles]*fonts.GlyphSubset

	pages []*content.ContentBuilder
	page  *content.ContentBuilder
	// cursor is the y coordinate of the top of the next draw.
	cursor float64
	// fresh is set while nothing has been drawn on the current page.
	fresh bool

	err error
}

// New creates a Composer with one empty page. Every style's font is loaded
// up front; a font that cannot be loaded or parsed fails the whole document.
func New(opts Options) (*Composer, error) {
	opts = opts.withDefaults()

	pl := layout.NewPageLayout(opts.PageSize).SetMargins(opts.Margins)
	if err := pl.Validate(); err != nil {
		return nil, err
	}

	c := &Composer{
		layout: pl,
		area:   pl.ContentArea(),
		info:   opts.Info,
	}
	for s := Regular; s < numStyles; s++ {
		f, err := opts.Cache.Get(opts.Fonts.file(s))
		if err != nil {
			return nil, fmt.Errorf("%s font: %w", s, err)
		}
		c.subsets[s] = fonts.NewGlyphSubset(f)
	}
	c.startPage()
	return c, nil
}

// Err returns the first error met while drawing, if any.
func (c *Composer) Err() error {
	return c.err
}

func (c *Composer) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// PageCount returns the number of pages started so far.
func (c *Composer) PageCount() int {
	return len(c.pages)
}

// Pages returns the content stream of every page.
func (c *Composer) Pages() []*content.ContentStream {
	out := make([]*content.ContentStream, len(c.pages))
	for i, p := range c.pages {
		out[i] = p.Build()
	}
	return out
}

// ContentArea returns the printable area of a page.
func (c *Composer) ContentArea() layout.Rectangle {
	return c.area
}

// Subset returns the glyph subset of style s.
func (c *Composer) Subset(s Style) *fonts.GlyphSubset {
	return c.subsets[s]
}

// Cursor returns the y coordinate where the next draw starts.
func (c *Composer) Cursor() float64 {
	return c.cursor
}

func (c *Composer) startPage() {
	c.page = content.NewContentBuilder()
	c.pages = append(c.pages, c.page)
	c.cursor = c.area.Top()
	c.fresh = true
	if len(c.pages) > 1 {
		pdf.Logger().Debug("page break", "page", len(c.pages))
	}
}

func (c *Composer) bottom() float64 {
	return c.area.Y
}

// remaining returns the vertical space left on the current page.
func (c *Composer) remaining() float64 {
	return c.cursor - c.bottom()
}

// ensureSpace starts a new page unless h points fit below the cursor. A
// fresh page is kept even when h does not fit, as nothing better exists.
func (c *Composer) ensureSpace(h float64) {
	if h <= c.remaining()+epsilon || c.fresh {
		return
	}
	c.startPage()
}

const epsilon = 1e-6

// advance moves the cursor down by h and marks the page as used.
func (c *Composer) advance(h float64) {
	c.cursor -= h
	c.fresh = false
}

// ascent returns the distance from a line's top to its baseline.
func (c *Composer) ascent(s Style, size float64) float64 {
	f := c.subsets[s].Font()
	a := float64(f.Ascent) * size / float64(f.UnitsPerEm)
	if a <= 0 || a > text.LineHeight(size) {
		a = size
	}
	return a
}

func (c *Composer) measure(s Style, str string, size float64) float64 {
	return c.subsets[s].MeasureText(str, size)
}

func (c *Composer) wrap(s Style, str string, width, size float64) []string {
	return text.WrapText(str, width, c.subsets[s], size)
}

// showText draws one line with its baseline at y.
func (c *Composer) showText(s Style, size float64, color text.Color, x, y float64, str string) {
	if str == "" {
		return
	}
	hex, err := c.subsets[s].EncodeText(str)
	if err != nil {
		c.fail(fmt.Errorf("encode %s text: %w", s, err))
		return
	}
	c.page.BeginText().
		SetFillColor(color.R, color.G, color.B).
		SetFont(s.ResourceName(), size).
		TextPosition(x, y).
		ShowHex(hex).
		EndText()
}

func (c *Composer) fillRect(color text.Color, x, y, w, h float64) {
	c.page.SaveState().
		SetFillColor(color.R, color.G, color.B).
		Rectangle(x, y, w, h).
		Fill().
		RestoreState()
}

func (c *Composer) hline(color text.Color, width, x1, x2, y float64) {
	c.page.SaveState().
		SetStrokeColor(color.R, color.G, color.B).
		SetLineWidth(width).
		MoveTo(x1, y).
		LineTo(x2, y).
		Stroke().
		RestoreState()
}

// textStyle is a preset for one kind of running text.
type textStyle struct {
	style       Style
	size        float64
	color       text.Color
	spaceBefore float64
	spaceAfter  float64
	// keepWithNext reserves room for one line of body text after the
	// block, so headings are not left alone at the bottom of a page.
	keepWithNext bool
}

var (
	inkColor   = text.Hex("#1F2933")
	mutedColor = text.Hex("#52606D")
	accent     = text.Hex("#243B53")
	ruleColor  = text.Hex("#BCCCDC")
	headerFill = text.Hex("#D9E2EC")
	stripeFill = text.Hex("#F0F4F8")
	codeFill   = text.Hex("#F5F7FA")
	borderLine = text.Hex("#CBD2D9")
)

var (
	titleStyle    = textStyle{style: Bold, size: 18, color: accent, spaceAfter: 6}
	subtitleStyle = textStyle{style: Regular, size: 12, color: inkColor, spaceAfter: 4}
	metaStyle     = textStyle{style: Italic, size: 9, color: mutedColor, spaceAfter: 2}
	sectionStyle  = textStyle{style: Bold, size: 14, color: accent, spaceBefore: 12, spaceAfter: 6, keepWithNext: true}
	subheadStyle  = textStyle{style: Bold, size: 11, color: inkColor, spaceBefore: 6, spaceAfter: 4, keepWithNext: true}
	bodyStyle     = textStyle{style: Regular, size: 10, color: inkColor, spaceAfter: 6}
	noteStyle     = textStyle{style: Italic, size: 9, color: mutedColor, spaceAfter: 6}
)

// addText wraps str to the content width and draws it line by line.
func (c *Composer) addText(ts textStyle, str string) {
	if c.err != nil {
		return
	}
	str = norm.NFC.String(str)
	lh := text.LineHeight(ts.size)
	lines := c.wrap(ts.style, str, c.area.Width, ts.size)

	if ts.spaceBefore > 0 && !c.fresh {
		if c.remaining() < ts.spaceBefore+lh {
			c.startPage()
		} else {
			c.advance(ts.spaceBefore)
		}
	}
	if ts.keepWithNext {
		c.ensureSpace(float64(len(lines))*lh + text.LineHeight(bodyStyle.size))
	}

	ascent := c.ascent(ts.style, ts.size)
	for _, line := range lines {
		c.ensureSpace(lh)
		c.showText(ts.style, ts.size, ts.color, c.area.X, c.cursor-ascent, line)
		c.advance(lh)
	}
	c.addSpace(ts.spaceAfter)
}

// addSpace moves the cursor down, stopping at the bottom margin.
func (c *Composer) addSpace(h float64) {
	if h <= 0 {
		return
	}
	if h >= c.remaining() {
		c.cursor = c.bottom()
		c.fresh = false
		return
	}
	c.advance(h)
}

// AddTitle draws the document title.
func (c *Composer) AddTitle(s string) { c.addText(titleStyle, s) }

// AddSubtitle draws the line under the title.
func (c *Composer) AddSubtitle(s string) { c.addText(subtitleStyle, s) }

// AddMetadataLine draws a small muted line such as a generation date.
func (c *Composer) AddMetadataLine(s string) { c.addText(metaStyle, s) }

// AddSectionHeading starts a numbered or named section.
func (c *Composer) AddSectionHeading(s string) { c.addText(sectionStyle, s) }

// AddSubheading draws a heading inside a section.
func (c *Composer) AddSubheading(s string) { c.addText(subheadStyle, s) }

// AddParagraph draws wrapped body text.
func (c *Composer) AddParagraph(s string) { c.addText(bodyStyle, s) }

// AddNote draws a muted explanatory line.
func (c *Composer) AddNote(s string) { c.addText(noteStyle, s) }

// AddHorizontalRule draws a thin line across the content width.
func (c *Composer) AddHorizontalRule() {
	if c.err != nil {
		return
	}
	const h = 12
	c.ensureSpace(h)
	y := c.cursor - h/2
	c.hline(ruleColor, 0.75, c.area.X, c.area.Right(), y)
	c.advance(h)
}

// AddSpacing moves the cursor down by h points. Spacing never starts a
// page of its own; at the bottom margin it is dropped.
func (c *Composer) AddSpacing(h float64) {
	if c.err != nil {
		return
	}
	c.addSpace(h)
}

// Bytes serializes the document. It reports the first drawing error
// instead when one occurred.
func (c *Composer) Bytes() ([]byte, error) {
	if c.err != nil {
		return nil, c.err
	}

	w := writer.NewPdfFileWriter("1.7")
	w.MediaBox = generic.Rectangle{URX: c.layout.Size.Width, URY: c.layout.Size.Height}
	for _, p := range c.pages {
		w.AddPage(p.Render())
	}
	for s := Regular; s < numStyles; s++ {
		w.AddFont(s.ResourceName(), c.subsets[s])
	}

	info := c.info
	if info.Producer == "" {
		info.Producer = "dossierpdf"
	}
	if info.CreationDate.IsZero() {
		info.CreationDate = time.Now()
	}
	w.SetInfo(info)

	return w.Bytes()
}
