// Package content builds and parses PDF page content streams.
package content

import (
	"bytes"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/pdf/generic"
)

// Operator represents a PDF content stream operator.
type Operator string

// Operators the composer emits.
const (
	// Graphics state operators
	OpSaveState    Operator = "q"
	OpRestoreState Operator = "Q"
	OpSetLineWidth Operator = "w"

	// Path construction operators
	OpMoveTo    Operator = "m"
	OpLineTo    Operator = "l"
	OpRectangle Operator = "re"

	// Path painting operators
	OpStroke Operator = "S"
	OpFill   Operator = "f"

	// Text object operators
	OpBeginText Operator = "BT"
	OpEndText   Operator = "ET"

	// Text state and positioning operators
	OpSetFont  Operator = "Tf"
	OpTextMove Operator = "Td"

	// Text showing operators
	OpShowText Operator = "Tj"

	// Color operators
	OpSetStrokeRGB Operator = "RG"
	OpSetFillRGB   Operator = "rg"
)

// HexString is a string operand written in hex form, <...>. Under
// Identity-H it carries two bytes per CID.
type HexString string

// ContentStream is a sequence of content stream operations.
type ContentStream struct {
	Operations []Operation
}

// Operation represents a single operation in a content stream.
type Operation struct {
	Operator Operator
	Operands []any
}

// NewContentStream creates a new empty content stream.
func NewContentStream() *ContentStream {
	return &ContentStream{
		Operations: make([]Operation, 0),
	}
}

// AddOperation adds an operation to the content stream.
func (cs *ContentStream) AddOperation(op Operator, operands ...any) {
	cs.Operations = append(cs.Operations, Operation{
		Operator: op,
		Operands: operands,
	})
}

// Count returns how many operations use op.
func (cs *ContentStream) Count(op Operator) int {
	n := 0
	for _, o := range cs.Operations {
		if o.Operator == op {
			n++
		}
	}
	return n
}

// Render renders the content stream to bytes.
func (cs *ContentStream) Render() []byte {
	var buf bytes.Buffer

	for _, op := range cs.Operations {
		for i, operand := range op.Operands {
			if i > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(formatOperand(operand))
		}
		if len(op.Operands) > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(string(op.Operator))
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

// formatOperand formats an operand for output.
func formatOperand(v any) string {
	switch val := v.(type) {
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return generic.FormatReal(val)
	case HexString:
		return "<" + string(val) + ">"
	case generic.NameObject:
		return "/" + string(val)
	case generic.PdfObject:
		var buf bytes.Buffer
		if err := val.Write(&buf); err != nil {
			return ""
		}
		return buf.String()
	case string:
		return val
	default:
		return ""
	}
}

// ContentBuilder provides a fluent interface for building content streams.
type ContentBuilder struct {
	stream *ContentStream
}

// NewContentBuilder creates a new content builder.
func NewContentBuilder() *ContentBuilder {
	return &ContentBuilder{
		stream: NewContentStream(),
	}
}

// SaveState saves the graphics state (q).
func (cb *ContentBuilder) SaveState() *ContentBuilder {
	cb.stream.AddOperation(OpSaveState)
	return cb
}

// RestoreState restores the graphics state (Q).
func (cb *ContentBuilder) RestoreState() *ContentBuilder {
	cb.stream.AddOperation(OpRestoreState)
	return cb
}

// MoveTo begins a new subpath (m).
func (cb *ContentBuilder) MoveTo(x, y float64) *ContentBuilder {
	cb.stream.AddOperation(OpMoveTo, x, y)
	return cb
}

// LineTo appends a straight line segment (l).
func (cb *ContentBuilder) LineTo(x, y float64) *ContentBuilder {
	cb.stream.AddOperation(OpLineTo, x, y)
	return cb
}

// Rectangle appends a rectangle (re).
func (cb *ContentBuilder) Rectangle(x, y, width, height float64) *ContentBuilder {
	cb.stream.AddOperation(OpRectangle, x, y, width, height)
	return cb
}

// Stroke strokes the path (S).
func (cb *ContentBuilder) Stroke() *ContentBuilder {
	cb.stream.AddOperation(OpStroke)
	return cb
}

// Fill fills the path (f).
func (cb *ContentBuilder) Fill() *ContentBuilder {
	cb.stream.AddOperation(OpFill)
	return cb
}

// SetLineWidth sets the line width (w).
func (cb *ContentBuilder) SetLineWidth(width float64) *ContentBuilder {
	cb.stream.AddOperation(OpSetLineWidth, width)
	return cb
}

// SetStrokeColor sets the RGB stroke color (RG).
func (cb *ContentBuilder) SetStrokeColor(r, g, b float64) *ContentBuilder {
	cb.stream.AddOperation(OpSetStrokeRGB, r, g, b)
	return cb
}

// SetFillColor sets the RGB fill color (rg).
func (cb *ContentBuilder) SetFillColor(r, g, b float64) *ContentBuilder {
	cb.stream.AddOperation(OpSetFillRGB, r, g, b)
	return cb
}

// BeginText begins a text object (BT).
func (cb *ContentBuilder) BeginText() *ContentBuilder {
	cb.stream.AddOperation(OpBeginText)
	return cb
}

// EndText ends a text object (ET).
func (cb *ContentBuilder) EndText() *ContentBuilder {
	cb.stream.AddOperation(OpEndText)
	return cb
}

// SetFont selects a font resource and size (Tf).
func (cb *ContentBuilder) SetFont(font string, size float64) *ContentBuilder {
	cb.stream.AddOperation(OpSetFont, generic.NameObject(font), size)
	return cb
}

// TextPosition moves to the start of the next line (Td).
func (cb *ContentBuilder) TextPosition(x, y float64) *ContentBuilder {
	cb.stream.AddOperation(OpTextMove, x, y)
	return cb
}

// ShowHex shows hex-encoded glyph codes (Tj).
func (cb *ContentBuilder) ShowHex(codes string) *ContentBuilder {
	cb.stream.AddOperation(OpShowText, HexString(codes))
	return cb
}

// Build returns the content stream.
func (cb *ContentBuilder) Build() *ContentStream {
	return cb.stream
}

// Render renders the content stream to bytes.
func (cb *ContentBuilder) Render() []byte {
	return cb.stream.Render()
}

// ErrUnterminated reports a string operand that runs off the end of the
// stream.
var ErrUnterminated = errors.New("unterminated string in content stream")

// Parse splits a content stream back into operations. Numbers become int64
// or float64, names generic.NameObject, hex strings HexString; everything
// else is kept as its source text. Arrays and dictionaries are not
// supported.
func Parse(data []byte) (*ContentStream, error) {
	p := &parser{data: data}
	cs := NewContentStream()

	var operands []any
	for {
		token, err := p.nextToken()
		if err != nil {
			return nil, err
		}
		if token == "" {
			break
		}
		if isOperator(token) {
			cs.AddOperation(Operator(token), operands...)
			operands = nil
			continue
		}
		operands = append(operands, parseOperand(token))
	}
	return cs, nil
}

type parser struct {
	data []byte
	pos  int
}

// nextToken reads the next token from the content stream.
func (p *parser) nextToken() (string, error) {
	for p.pos < len(p.data) && isWhitespace(p.data[p.pos]) {
		p.pos++
	}
	if p.pos >= len(p.data) {
		return "", nil
	}

	start := p.pos
	switch p.data[p.pos] {
	case '[', ']', '{', '}', ')', '>':
		p.pos++
		return string(p.data[start:p.pos]), nil
	case '(':
		return p.readString()
	case '<':
		end := bytes.IndexByte(p.data[p.pos:], '>')
		if end < 0 {
			return "", ErrUnterminated
		}
		p.pos += end + 1
		return string(p.data[start:p.pos]), nil
	case '/':
		p.pos++
	case '%':
		for p.pos < len(p.data) && p.data[p.pos] != '\n' && p.data[p.pos] != '\r' {
			p.pos++
		}
		return p.nextToken()
	}

	for p.pos < len(p.data) && !isWhitespace(p.data[p.pos]) && !isDelimiter(p.data[p.pos]) {
		p.pos++
	}
	return string(p.data[start:p.pos]), nil
}

// readString reads a literal string, balancing nested parentheses.
func (p *parser) readString() (string, error) {
	start := p.pos
	p.pos++ // Skip opening (

	depth := 1
	for p.pos < len(p.data) && depth > 0 {
		switch p.data[p.pos] {
		case '(':
			depth++
		case ')':
			depth--
		case '\\':
			p.pos++
		}
		p.pos++
	}
	if depth > 0 {
		return "", ErrUnterminated
	}
	return string(p.data[start:p.pos]), nil
}

// parseOperand parses a token as an operand.
func parseOperand(token string) any {
	if i, err := strconv.ParseInt(token, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return f
	}
	if name, ok := strings.CutPrefix(token, "/"); ok {
		return generic.NameObject(name)
	}
	if strings.HasPrefix(token, "<") {
		return HexString(strings.Trim(token, "<>"))
	}
	return token
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\x00' || b == '\x0c'
}

func isDelimiter(b byte) bool {
	return b == '(' || b == ')' || b == '<' || b == '>' ||
		b == '[' || b == ']' || b == '{' || b == '}' ||
		b == '/' || b == '%'
}

var operatorPattern = regexp.MustCompile(`^[A-Za-z*'"]+$`)

func isOperator(token string) bool {
	switch token {
	case "true", "false", "null":
		return false
	}
	return operatorPattern.MatchString(token)
}
