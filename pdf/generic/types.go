// Package generic provides the PDF object model used when serializing documents.
package generic

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"

	"golang.org/x/crypto/sha3"
	"golang.org/x/text/encoding/unicode"
)

// PdfObject is the base interface for all PDF objects.
type PdfObject interface {
	// Write serializes the object to PDF syntax.
	Write(w io.Writer) error
}

// Reference represents an indirect reference to a PDF object.
type Reference struct {
	ObjectNumber     int
	GenerationNumber int
}

// NewReference creates a new reference.
func NewReference(objNum, genNum int) Reference {
	return Reference{ObjectNumber: objNum, GenerationNumber: genNum}
}

// Write implements PdfObject.
func (r Reference) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%d %d R", r.ObjectNumber, r.GenerationNumber)
	return err
}

// String returns the string representation.
func (r Reference) String() string {
	return fmt.Sprintf("%d %d R", r.ObjectNumber, r.GenerationNumber)
}

// IndirectObject wraps a PDF object with its object and generation numbers.
type IndirectObject struct {
	ObjectNumber     int
	GenerationNumber int
	Object           PdfObject
}

// NewIndirectObject creates a new indirect object.
func NewIndirectObject(objNum, genNum int, obj PdfObject) *IndirectObject {
	return &IndirectObject{
		ObjectNumber:     objNum,
		GenerationNumber: genNum,
		Object:           obj,
	}
}

// Write writes "n g obj ... endobj". The first byte written is the first
// digit of the object number, which is what xref offsets point at.
func (i *IndirectObject) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%d %d obj\n", i.ObjectNumber, i.GenerationNumber)
	if err != nil {
		return err
	}
	if i.Object != nil {
		if err := i.Object.Write(w); err != nil {
			return err
		}
	} else {
		if err := (NullObject{}).Write(w); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("\nendobj\n"))
	return err
}

// Reference returns a reference to this indirect object.
func (i *IndirectObject) Reference() Reference {
	return Reference{ObjectNumber: i.ObjectNumber, GenerationNumber: i.GenerationNumber}
}

// NullObject represents the PDF null value.
type NullObject struct{}

// Write implements PdfObject.
func (n NullObject) Write(w io.Writer) error {
	_, err := w.Write([]byte("null"))
	return err
}

// BooleanObject represents a PDF boolean.
type BooleanObject bool

// Write implements PdfObject.
func (b BooleanObject) Write(w io.Writer) error {
	s := "false"
	if b {
		s = "true"
	}
	_, err := w.Write([]byte(s))
	return err
}

// IntegerObject represents a PDF integer.
type IntegerObject int64

// Write implements PdfObject.
func (i IntegerObject) Write(w io.Writer) error {
	_, err := w.Write([]byte(strconv.FormatInt(int64(i), 10)))
	return err
}

// RealObject represents a PDF real value.
type RealObject float64

// Write writes the value with at most four decimals; PDF has no exponent syntax.
func (r RealObject) Write(w io.Writer) error {
	_, err := w.Write([]byte(FormatReal(float64(r))))
	return err
}

// FormatReal formats f for use in PDF syntax.
func FormatReal(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "0"
	}
	v := math.Round(f*10000) / 10000
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// NameObject represents a PDF name object (e.g., /Type).
type NameObject string

var nameEscapeRegex = regexp.MustCompile(`[^!-~]|[#%/\[\]()<>{}]`)

// Write implements PdfObject.
func (n NameObject) Write(w io.Writer) error {
	escaped := nameEscapeRegex.ReplaceAllStringFunc(string(n), func(s string) string {
		var out bytes.Buffer
		for i := 0; i < len(s); i++ {
			fmt.Fprintf(&out, "#%02X", s[i])
		}
		return out.String()
	})
	_, err := fmt.Fprintf(w, "/%s", escaped)
	return err
}

// String returns the name without the leading slash.
func (n NameObject) String() string {
	return string(n)
}

// StringObject represents a PDF string object.
type StringObject struct {
	Value []byte
	IsHex bool
}

// NewLiteralString creates a new literal string.
func NewLiteralString(s string) *StringObject {
	return &StringObject{Value: []byte(s)}
}

// NewHexString creates a new hex string.
func NewHexString(data []byte) *StringObject {
	return &StringObject{Value: data, IsHex: true}
}

var utf16be = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)

// NewTextString creates a PDF text string. Pure ASCII is kept as is,
// anything else is encoded as UTF-16BE with a byte order mark.
func NewTextString(s string) *StringObject {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return &StringObject{Value: []byte(s)}
	}

	encoded, err := utf16be.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return &StringObject{Value: []byte(s)}
	}
	return &StringObject{Value: encoded, IsHex: true}
}

// Write implements PdfObject.
func (s *StringObject) Write(w io.Writer) error {
	if s.IsHex {
		_, err := fmt.Fprintf(w, "<%s>", hex.EncodeToString(s.Value))
		return err
	}

	var buf bytes.Buffer
	buf.WriteByte('(')
	for _, b := range s.Value {
		switch b {
		case '\\':
			buf.WriteString("\\\\")
		case '(':
			buf.WriteString("\\(")
		case ')':
			buf.WriteString("\\)")
		case '\n':
			buf.WriteString("\\n")
		case '\r':
			buf.WriteString("\\r")
		case '\t':
			buf.WriteString("\\t")
		default:
			if b < 32 || b > 126 {
				fmt.Fprintf(&buf, "\\%03o", b)
			} else {
				buf.WriteByte(b)
			}
		}
	}
	buf.WriteByte(')')
	_, err := w.Write(buf.Bytes())
	return err
}

// ArrayObject represents a PDF array.
type ArrayObject []PdfObject

// NewArray creates a new array.
func NewArray(items ...PdfObject) ArrayObject {
	return ArrayObject(items)
}

// Write implements PdfObject.
func (a ArrayObject) Write(w io.Writer) error {
	if _, err := w.Write([]byte("[")); err != nil {
		return err
	}
	for i, item := range a {
		if i > 0 {
			if _, err := w.Write([]byte(" ")); err != nil {
				return err
			}
		}
		if err := item.Write(w); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte("]"))
	return err
}

// DictionaryObject represents a PDF dictionary. Keys are written in
// insertion order so output is deterministic.
type DictionaryObject struct {
	entries map[string]PdfObject
	order   []string
}

// NewDictionary creates a new dictionary.
func NewDictionary() *DictionaryObject {
	return &DictionaryObject{
		entries: make(map[string]PdfObject),
	}
}

// Write implements PdfObject.
func (d *DictionaryObject) Write(w io.Writer) error {
	if _, err := w.Write([]byte("<<")); err != nil {
		return err
	}
	for _, key := range d.order {
		if _, err := w.Write([]byte(" ")); err != nil {
			return err
		}
		if err := NameObject(key).Write(w); err != nil {
			return err
		}
		if _, err := w.Write([]byte(" ")); err != nil {
			return err
		}
		if err := d.entries[key].Write(w); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte(" >>"))
	return err
}

// Set sets a key-value pair.
func (d *DictionaryObject) Set(key string, value PdfObject) {
	if _, exists := d.entries[key]; !exists {
		d.order = append(d.order, key)
	}
	d.entries[key] = value
}

// Get returns the value for a key.
func (d *DictionaryObject) Get(key string) PdfObject {
	return d.entries[key]
}

// GetName returns the name stored under key, or "".
func (d *DictionaryObject) GetName(key string) string {
	if n, ok := d.entries[key].(NameObject); ok {
		return string(n)
	}
	return ""
}

// Len returns the number of entries.
func (d *DictionaryObject) Len() int {
	return len(d.entries)
}

// StreamObject represents an unfiltered PDF stream.
type StreamObject struct {
	Dictionary *DictionaryObject
	Data       []byte
}

// NewStream creates a new stream.
func NewStream(dict *DictionaryObject, data []byte) *StreamObject {
	if dict == nil {
		dict = NewDictionary()
	}
	return &StreamObject{
		Dictionary: dict,
		Data:       data,
	}
}

// Write sets /Length from the data and writes the stream.
func (s *StreamObject) Write(w io.Writer) error {
	s.Dictionary.Set("Length", IntegerObject(len(s.Data)))
	if err := s.Dictionary.Write(w); err != nil {
		return err
	}
	if _, err := w.Write([]byte("\nstream\n")); err != nil {
		return err
	}
	if _, err := w.Write(s.Data); err != nil {
		return err
	}
	_, err := w.Write([]byte("\nendstream"))
	return err
}

// Rectangle represents a PDF rectangle (lower-left and upper-right coordinates).
type Rectangle struct {
	LLX, LLY float64
	URX, URY float64
}

// ToArray converts the rectangle to a PDF array.
func (r Rectangle) ToArray() ArrayObject {
	return ArrayObject{
		RealObject(r.LLX),
		RealObject(r.LLY),
		RealObject(r.URX),
		RealObject(r.URY),
	}
}

// ComputeFileID derives a 16 byte file identifier from the document body.
func ComputeFileID(body []byte) []byte {
	sum := sha3.Sum256(body)
	return sum[:16]
}
