package layout

import (
	"math"
	"testing"
)

const tolerance = 0.0001

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestToPoints(t *testing.T) {
	tests := []struct {
		value    float64
		unit     Unit
		expected float64
	}{
		{1, Pt, 1},
		{1, In, 72},
		{2.54, Cm, 72},
		{25.4, Mm, 72},
	}

	for _, tt := range tests {
		result := ToPoints(tt.value, tt.unit)
		if !floatEqual(result, tt.expected) {
			t.Errorf("ToPoints(%v, %v) = %v, want %v", tt.value, tt.unit, result, tt.expected)
		}
		if back := FromPoints(result, tt.unit); !floatEqual(back, tt.value) {
			t.Errorf("FromPoints(%v, %v) = %v, want %v", result, tt.unit, back, tt.value)
		}
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		input    string
		expected Unit
	}{
		{"", Pt},
		{"pt", Pt},
		{"IN", In},
		{" cm ", Cm},
		{"mm", Mm},
	}

	for _, tt := range tests {
		got, err := ParseUnit(tt.input)
		if err != nil {
			t.Errorf("ParseUnit(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseUnit(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}

	if _, err := ParseUnit("furlong"); err == nil {
		t.Error("ParseUnit(furlong) should fail")
	}
}

func TestPageSizeByName(t *testing.T) {
	tests := []struct {
		name     string
		expected PageSize
		ok       bool
	}{
		{"A4", A4, true},
		{"letter", Letter, true},
		{"a4-landscape", PageSize{842, 595}, true},
		{"Legal", Legal, true},
		{"tabloid-ish", PageSize{}, false},
	}

	for _, tt := range tests {
		got, ok := PageSizeByName(tt.name)
		if ok != tt.ok || got != tt.expected {
			t.Errorf("PageSizeByName(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.expected, tt.ok)
		}
	}

	for _, name := range PageSizeNames() {
		if _, ok := PageSizeByName(name); !ok {
			t.Errorf("listed name %q not accepted", name)
		}
	}
}

func TestPageSizeLandscape(t *testing.T) {
	if got := A4.Landscape(); got != (PageSize{842, 595}) {
		t.Errorf("A4.Landscape() = %v", got)
	}
	if !A4.Landscape().IsLandscape() || A4.IsLandscape() {
		t.Error("IsLandscape mismatch")
	}
	if got := A4.Landscape().Landscape(); got != A4.Landscape() {
		t.Error("Landscape should be idempotent")
	}
}

func TestPageLayout(t *testing.T) {
	p := NewPageLayout(A4).SetMargins(Margins{Top: 50, Right: 40, Bottom: 60, Left: 30})

	area := p.ContentArea()
	if area.X != 30 || area.Y != 60 || area.Width != 525 || area.Height != 732 {
		t.Errorf("ContentArea() = %+v", area)
	}
	if area.Top() != 792 || area.Right() != 555 {
		t.Errorf("Top/Right = %v/%v", area.Top(), area.Right())
	}
	if got := p.MediaBox().ToMediaBox(); got != [4]float64{0, 0, 595, 842} {
		t.Errorf("MediaBox = %v", got)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	bad := NewPageLayout(A5).SetMargins(UniformMargins(300))
	if err := bad.Validate(); err == nil {
		t.Error("Validate() should reject margins wider than the page")
	}
}

func TestMarginsScale(t *testing.T) {
	m := UniformMargins(10).Scale(Mm)
	if !floatEqual(m.Top, 28.3465) || !floatEqual(m.Horizontal(), 56.6929) {
		t.Errorf("Scale(Mm) = %+v", m)
	}
}

func TestNormalizeRatios(t *testing.T) {
	tests := []struct {
		name   string
		ratios []float64
		n      int
		want   []float64
	}{
		{"proportional", []float64{1, 3}, 2, []float64{0.25, 0.75}},
		{"already normalized", []float64{0.2, 0.3, 0.5}, 3, []float64{0.2, 0.3, 0.5}},
		{"missing", nil, 4, []float64{0.25, 0.25, 0.25, 0.25}},
		{"count mismatch", []float64{1, 2, 3}, 2, []float64{0.5, 0.5}},
		{"negative", []float64{1, -1}, 2, []float64{0.5, 0.5}},
		{"all zero", []float64{0, 0}, 2, []float64{0.5, 0.5}},
		{"nan", []float64{math.NaN(), 1}, 2, []float64{0.5, 0.5}},
		{"no columns", []float64{1}, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRatios(tt.ratios, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if !floatEqual(got[i], tt.want[i]) {
					t.Errorf("[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestColumns(t *testing.T) {
	widths := Columns(400, []float64{1, 1, 2}, 3)
	want := []float64{100, 100, 200}
	for i := range want {
		if !floatEqual(widths[i], want[i]) {
			t.Errorf("Columns[%d] = %v, want %v", i, widths[i], want[i])
		}
	}
}
