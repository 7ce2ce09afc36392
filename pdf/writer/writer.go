// Package writer serializes a finished document into a PDF 1.7 file.
//
// Objects are numbered in a fixed layout:
//
//	1            Catalog
//	2            Pages
//	3 ..         one Page per page
//	next P       one content stream per page
//	next 6 × F   the objects of each used font (see fonts.BuildFontObjects)
//	last         Info, when set
package writer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/pdf"
	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/pdf/fonts"
	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/pdf/generic"
)

// ErrNoPages is returned when writing a document without pages.
var ErrNoPages = errors.New("document has no pages")

const (
	catalogObj = 1
	pagesObj   = 2
	firstPage  = 3
)

// Info holds the document information dictionary entries. Empty fields are
// omitted.
type Info struct {
	Title        string
	Author       string
	Subject      string
	Creator      string
	Producer     string
	CreationDate time.Time
}

type fontEntry struct {
	key    string
	subset *fonts.GlyphSubset
}

// PdfFileWriter creates new PDF files.
type PdfFileWriter struct {
	Version  string
	MediaBox generic.Rectangle
	// FileID overrides the trailer /ID, which is otherwise derived from
	// the file body.
	FileID []byte

	pages [][]byte
	fonts []fontEntry
	info  *Info
}

// NewPdfFileWriter creates a new PDF writer with an A4 media box.
func NewPdfFileWriter(version string) *PdfFileWriter {
	if version == "" {
		version = "1.7"
	}
	return &PdfFileWriter{
		Version:  version,
		MediaBox: generic.Rectangle{URX: 595, URY: 842},
	}
}

// AddPage appends a page drawn by contents and returns its index.
func (w *PdfFileWriter) AddPage(contents []byte) int {
	w.pages = append(w.pages, contents)
	return len(w.pages) - 1
}

// PageCount returns the number of pages added so far.
func (w *PdfFileWriter) PageCount() int {
	return len(w.pages)
}

// AddFont registers a glyph subset under the resource name key (for example
// "F1"). Fonts are written in the order they are added; a subset with no
// glyphs is left out of the file and of the page resources.
func (w *PdfFileWriter) AddFont(key string, subset *fonts.GlyphSubset) {
	w.fonts = append(w.fonts, fontEntry{key: key, subset: subset})
}

// SetInfo sets the document information dictionary.
func (w *PdfFileWriter) SetInfo(info Info) {
	w.info = &info
}

// objects assigns numbers and builds every indirect object in order.
func (w *PdfFileWriter) objects() []*generic.IndirectObject {
	p := len(w.pages)
	firstContent := firstPage + p
	next := firstContent + p

	fontRes := generic.NewDictionary()
	var fontObjs []*generic.IndirectObject
	for _, f := range w.fonts {
		objs := fonts.BuildFontObjects(f.subset, next)
		if objs == nil {
			continue
		}
		fontRes.Set(f.key, objs[0].Reference())
		fontObjs = append(fontObjs, objs...)
		next += len(objs)
	}

	out := make([]*generic.IndirectObject, 0, next)

	catalog := generic.NewDictionary()
	catalog.Set("Type", generic.NameObject("Catalog"))
	catalog.Set("Pages", generic.NewReference(pagesObj, 0))
	out = append(out, generic.NewIndirectObject(catalogObj, 0, catalog))

	kids := make(generic.ArrayObject, p)
	for i := range kids {
		kids[i] = generic.NewReference(firstPage+i, 0)
	}
	pages := generic.NewDictionary()
	pages.Set("Type", generic.NameObject("Pages"))
	pages.Set("Kids", kids)
	pages.Set("Count", generic.IntegerObject(p))
	out = append(out, generic.NewIndirectObject(pagesObj, 0, pages))

	resources := generic.NewDictionary()
	resources.Set("ProcSet", generic.NewArray(generic.NameObject("PDF"), generic.NameObject("Text")))
	if fontRes.Len() > 0 {
		resources.Set("Font", fontRes)
	}

	for i := range w.pages {
		page := generic.NewDictionary()
		page.Set("Type", generic.NameObject("Page"))
		page.Set("Parent", generic.NewReference(pagesObj, 0))
		page.Set("MediaBox", w.MediaBox.ToArray())
		page.Set("Resources", resources)
		page.Set("Contents", generic.NewReference(firstContent+i, 0))
		out = append(out, generic.NewIndirectObject(firstPage+i, 0, page))
	}
	for i, data := range w.pages {
		out = append(out, generic.NewIndirectObject(firstContent+i, 0, generic.NewStream(nil, data)))
	}

	out = append(out, fontObjs...)

	if w.info != nil {
		out = append(out, generic.NewIndirectObject(next, 0, w.infoDictionary()))
	}
	return out
}

func (w *PdfFileWriter) infoDictionary() *generic.DictionaryObject {
	d := generic.NewDictionary()
	set := func(key, value string) {
		if value != "" {
			d.Set(key, generic.NewTextString(value))
		}
	}
	set("Title", w.info.Title)
	set("Author", w.info.Author)
	set("Subject", w.info.Subject)
	set("Creator", w.info.Creator)
	set("Producer", w.info.Producer)
	if !w.info.CreationDate.IsZero() {
		d.Set("CreationDate", generic.NewLiteralString(formatPdfDate(w.info.CreationDate)))
	}
	return d
}

// Write writes the PDF to the given writer.
func (w *PdfFileWriter) Write(out io.Writer) error {
	if len(w.pages) == 0 {
		return ErrNoPages
	}

	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%%PDF-%s\n", w.Version)
	// Binary comment (per PDF spec)
	buf.Write([]byte{0x25, 0xE2, 0xE3, 0xCF, 0xD3, 0x0A})

	objs := w.objects()
	offsets := make([]int, len(objs)+1)
	for _, obj := range objs {
		offsets[obj.ObjectNumber] = buf.Len()
		if err := obj.Write(&buf); err != nil {
			return fmt.Errorf("write object %d: %w", obj.ObjectNumber, err)
		}
	}

	fileID := w.FileID
	if fileID == nil {
		fileID = generic.ComputeFileID(buf.Bytes())
	}

	size := len(objs) + 1
	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", size)
	buf.WriteString("0000000000 65535 f \n")
	for objNum := 1; objNum < size; objNum++ {
		fmt.Fprintf(&buf, "%010d %05d n \n", offsets[objNum], 0)
	}

	trailer := generic.NewDictionary()
	trailer.Set("Size", generic.IntegerObject(size))
	trailer.Set("Root", generic.NewReference(catalogObj, 0))
	if w.info != nil {
		trailer.Set("Info", generic.NewReference(size-1, 0))
	}
	trailer.Set("ID", generic.NewArray(
		generic.NewHexString(fileID),
		generic.NewHexString(fileID),
	))

	buf.WriteString("trailer\n")
	if err := trailer.Write(&buf); err != nil {
		return err
	}
	fmt.Fprintf(&buf, "\nstartxref\n%d\n%%%%EOF", xrefOffset)

	pdf.Logger().Info("document serialized",
		"pages", len(w.pages),
		"objects", len(objs),
		"bytes", buf.Len())

	_, err := out.Write(buf.Bytes())
	return err
}

// Bytes returns the complete PDF file.
func (w *PdfFileWriter) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := w.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatPdfDate formats a time as a PDF date string.
func formatPdfDate(t time.Time) string {
	_, offset := t.Zone()
	offsetHours := offset / 3600
	offsetMinutes := (offset % 3600) / 60

	sign := "+"
	if offset < 0 {
		sign = "-"
		offsetHours = -offsetHours
		offsetMinutes = -offsetMinutes
	}

	return fmt.Sprintf("D:%04d%02d%02d%02d%02d%02d%s%02d'%02d'",
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(),
		sign, offsetHours, offsetMinutes)
}
