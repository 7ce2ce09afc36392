// Package layout provides page geometry for the composer: units, page
// sizes, margins and column splitting.
package layout

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Unit represents a measurement unit.
type Unit float64

const (
	// Points - the base PDF unit (1/72 inch)
	Pt Unit = 1
	// Inches
	In Unit = 72
	// Centimeters
	Cm Unit = 72 / 2.54
	// Millimeters
	Mm Unit = 72 / 25.4
)

// ToPoints converts a value in the given unit to points.
func ToPoints(value float64, unit Unit) float64 {
	return value * float64(unit)
}

// FromPoints converts points to the given unit.
func FromPoints(points float64, unit Unit) float64 {
	return points / float64(unit)
}

// ParseUnit parses a unit name ("pt", "in", "cm", "mm"). The empty string
// means points.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pt", "point", "points":
		return Pt, nil
	case "in", "inch", "inches":
		return In, nil
	case "cm":
		return Cm, nil
	case "mm":
		return Mm, nil
	}
	return 0, fmt.Errorf("unknown unit %q", s)
}

// PageSize represents standard page dimensions.
type PageSize struct {
	Width  float64
	Height float64
}

// Standard page sizes in points
var (
	A3 = PageSize{842, 1191}
	A4 = PageSize{595, 842}
	A5 = PageSize{420, 595}

	B5 = PageSize{499, 709}

	Letter    = PageSize{612, 792}
	Legal     = PageSize{612, 1008}
	Executive = PageSize{522, 756}
)

var pageSizes = map[string]PageSize{
	"a3":        A3,
	"a4":        A4,
	"a5":        A5,
	"b5":        B5,
	"letter":    Letter,
	"legal":     Legal,
	"executive": Executive,
}

// PageSizeByName looks up a standard size, ignoring case. A "-landscape"
// suffix rotates it.
func PageSizeByName(name string) (PageSize, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	landscape := false
	if base, ok := strings.CutSuffix(name, "-landscape"); ok {
		name, landscape = base, true
	}
	size, ok := pageSizes[name]
	if ok && landscape {
		size = size.Landscape()
	}
	return size, ok
}

// PageSizeNames lists the names PageSizeByName accepts, sorted.
func PageSizeNames() []string {
	names := make([]string, 0, len(pageSizes))
	for name := range pageSizes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Landscape returns the page size in landscape orientation.
func (p PageSize) Landscape() PageSize {
	if p.Width < p.Height {
		return PageSize{p.Height, p.Width}
	}
	return p
}

// IsLandscape returns true if width > height.
func (p PageSize) IsLandscape() bool {
	return p.Width > p.Height
}

// Rectangle represents a rectangle with origin at bottom-left (PDF coordinates).
type Rectangle struct {
	X, Y          float64 // Bottom-left corner
	Width, Height float64
}

// Right returns the right edge X coordinate.
func (r Rectangle) Right() float64 {
	return r.X + r.Width
}

// Top returns the top edge Y coordinate.
func (r Rectangle) Top() float64 {
	return r.Y + r.Height
}

// ToMediaBox converts to a PDF media box array [x1, y1, x2, y2].
func (r Rectangle) ToMediaBox() [4]float64 {
	return [4]float64{r.X, r.Y, r.Right(), r.Top()}
}

// Margins represents margins (spacing around content).
type Margins struct {
	Top, Right, Bottom, Left float64
}

// UniformMargins creates margins with the same value on all sides.
func UniformMargins(value float64) Margins {
	return Margins{value, value, value, value}
}

// Horizontal returns left + right.
func (m Margins) Horizontal() float64 {
	return m.Left + m.Right
}

// Vertical returns top + bottom.
func (m Margins) Vertical() float64 {
	return m.Top + m.Bottom
}

// Scale converts margins given in unit to points.
func (m Margins) Scale(unit Unit) Margins {
	return Margins{
		Top:    ToPoints(m.Top, unit),
		Right:  ToPoints(m.Right, unit),
		Bottom: ToPoints(m.Bottom, unit),
		Left:   ToPoints(m.Left, unit),
	}
}

// PageLayout represents a page with margins.
type PageLayout struct {
	Size    PageSize
	Margins Margins
}

// NewPageLayout creates a new page layout.
func NewPageLayout(size PageSize) *PageLayout {
	return &PageLayout{
		Size:    size,
		Margins: UniformMargins(48),
	}
}

// SetMargins sets the margins.
func (p *PageLayout) SetMargins(margins Margins) *PageLayout {
	p.Margins = margins
	return p
}

// ContentArea returns the content area rectangle.
func (p *PageLayout) ContentArea() Rectangle {
	return Rectangle{
		X:      p.Margins.Left,
		Y:      p.Margins.Bottom,
		Width:  p.Size.Width - p.Margins.Horizontal(),
		Height: p.Size.Height - p.Margins.Vertical(),
	}
}

// MediaBox returns the media box.
func (p *PageLayout) MediaBox() Rectangle {
	return Rectangle{Width: p.Size.Width, Height: p.Size.Height}
}

// Validate reports a layout whose margins leave no content area.
func (p *PageLayout) Validate() error {
	if p.Size.Width <= 0 || p.Size.Height <= 0 {
		return fmt.Errorf("invalid page size %gx%g", p.Size.Width, p.Size.Height)
	}
	area := p.ContentArea()
	if area.Width <= 0 || area.Height <= 0 {
		return fmt.Errorf("margins leave no content area on a %gx%g page", p.Size.Width, p.Size.Height)
	}
	return nil
}

// NormalizeRatios returns n weights summing to 1. Ratios that are missing,
// of the wrong length, negative, non-finite or all zero give an equal split.
func NormalizeRatios(ratios []float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	sum := 0.0
	valid := len(ratios) == n
	for _, r := range ratios {
		if !valid {
			break
		}
		if r < 0 || math.IsNaN(r) || math.IsInf(r, 0) {
			valid = false
		}
		sum += r
	}
	if !valid || sum <= 0 {
		for i := range out {
			out[i] = 1 / float64(n)
		}
		return out
	}
	for i, r := range ratios {
		out[i] = r / sum
	}
	return out
}

// Columns splits width into columns proportional to ratios (see
// NormalizeRatios) and returns their widths.
func Columns(width float64, ratios []float64, n int) []float64 {
	weights := NormalizeRatios(ratios, n)
	for i := range weights {
		weights[i] *= width
	}
	return weights
}
