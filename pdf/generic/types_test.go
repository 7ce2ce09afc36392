package generic

import (
	"bytes"
	"testing"
)

func render(t *testing.T, obj PdfObject) string {
	t.Helper()
	var buf bytes.Buffer
	if err := obj.Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	return buf.String()
}

func TestScalarObjects(t *testing.T) {
	tests := []struct {
		name     string
		obj      PdfObject
		expected string
	}{
		{"null", NullObject{}, "null"},
		{"true", BooleanObject(true), "true"},
		{"false", BooleanObject(false), "false"},
		{"zero", IntegerObject(0), "0"},
		{"negative", IntegerObject(-123), "-123"},
		{"real", RealObject(3.14159), "3.1416"},
		{"real integral", RealObject(12), "12"},
		{"real negative", RealObject(-2.5), "-2.5"},
		{"real tiny", RealObject(0.00001), "0"},
		{"reference", NewReference(12, 0), "12 0 R"},
		{"name", NameObject("Type"), "/Type"},
		{"name escaped", NameObject("A B#"), "/A#20B#23"},
	}

	for _, tt := range tests {
		if got := render(t, tt.obj); got != tt.expected {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.expected, got)
		}
	}
}

func TestStringObject(t *testing.T) {
	if got := render(t, NewLiteralString("a(b)\\c\n")); got != `(a\(b\)\\c\n)` {
		t.Errorf("literal string: got %q", got)
	}
	if got := render(t, NewHexString([]byte{0x00, 0x01, 0xAB})); got != "<0001ab>" {
		t.Errorf("hex string: got %q", got)
	}
}

func TestNewTextString(t *testing.T) {
	ascii := NewTextString("Dossier")
	if ascii.IsHex || string(ascii.Value) != "Dossier" {
		t.Errorf("ASCII text should be kept literal, got %+v", ascii)
	}

	vn := NewTextString("Hồ sơ")
	if !vn.IsHex {
		t.Fatal("non-ASCII text should be hex encoded")
	}
	if !bytes.HasPrefix(vn.Value, []byte{0xFE, 0xFF}) {
		t.Errorf("expected UTF-16BE BOM, got % X", vn.Value[:2])
	}
	// H, ồ (U+1ED3), space, s, ơ (U+01A1)
	want := []byte{0xFE, 0xFF, 0x00, 'H', 0x1E, 0xD3, 0x00, ' ', 0x00, 's', 0x01, 0xA1}
	if !bytes.Equal(vn.Value, want) {
		t.Errorf("expected % X, got % X", want, vn.Value)
	}
}

func TestArrayObject(t *testing.T) {
	arr := NewArray(IntegerObject(1), NameObject("X"), NewReference(3, 0))
	if got := render(t, arr); got != "[1 /X 3 0 R]" {
		t.Errorf("got %q", got)
	}
}

func TestDictionaryPreservesOrder(t *testing.T) {
	d := NewDictionary()
	d.Set("Type", NameObject("Page"))
	d.Set("Parent", NewReference(2, 0))
	d.Set("Type", NameObject("Pages"))

	if got := render(t, d); got != "<< /Type /Pages /Parent 2 0 R >>" {
		t.Errorf("got %q", got)
	}
	if d.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", d.Len())
	}
	if d.GetName("Type") != "Pages" {
		t.Errorf("GetName: got %q", d.GetName("Type"))
	}
	if d.Get("Parent") == nil || d.Get("Kids") != nil {
		t.Error("Get returned wrong results")
	}
}

func TestStreamObject(t *testing.T) {
	s := NewStream(nil, []byte("BT ET"))
	got := render(t, s)
	want := "<< /Length 5 >>\nstream\nBT ET\nendstream"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestIndirectObject(t *testing.T) {
	obj := NewIndirectObject(7, 0, IntegerObject(42))
	if got := render(t, obj); got != "7 0 obj\n42\nendobj\n" {
		t.Errorf("got %q", got)
	}
	if obj.Reference() != NewReference(7, 0) {
		t.Errorf("unexpected reference %v", obj.Reference())
	}
	if got := render(t, NewIndirectObject(1, 0, nil)); got != "1 0 obj\nnull\nendobj\n" {
		t.Errorf("nil object: got %q", got)
	}
}

func TestComputeFileID(t *testing.T) {
	a := ComputeFileID([]byte("body"))
	b := ComputeFileID([]byte("body"))
	c := ComputeFileID([]byte("other"))
	if len(a) != 16 {
		t.Fatalf("expected 16 bytes, got %d", len(a))
	}
	if !bytes.Equal(a, b) {
		t.Error("same body should give the same ID")
	}
	if bytes.Equal(a, c) {
		t.Error("different bodies should give different IDs")
	}
}
