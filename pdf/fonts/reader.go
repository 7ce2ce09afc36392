package fonts

import "encoding/binary"

// reader is a big-endian cursor over an immutable byte slice. Reads past the
// end return zero and set a sticky error, so table parsers can read a run of
// fields and check err once.
type reader struct {
	data []byte
	pos  int
	err  error
}

func newReader(data []byte, pos int) *reader {
	r := &reader{data: data}
	r.seek(pos)
	return r
}

func (r *reader) seek(pos int) {
	if pos < 0 || pos > len(r.data) {
		r.fail()
		return
	}
	r.pos = pos
}

func (r *reader) skip(n int) {
	r.seek(r.pos + n)
}

func (r *reader) fail() {
	if r.err == nil {
		r.err = ErrInvalidFont
	}
	r.pos = len(r.data)
}

func (r *reader) take(n int) []byte {
	if r.err != nil || n < 0 || r.pos+n > len(r.data) {
		r.fail()
		return nil
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b
}

func (r *reader) u16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

func (r *reader) i16() int16 {
	return int16(r.u16())
}

func (r *reader) u32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

func (r *reader) i32() int32 {
	return int32(r.u32())
}

func (r *reader) tag() string {
	b := r.take(4)
	if b == nil {
		return ""
	}
	return string(b)
}

func (r *reader) bytes(n int) []byte {
	return r.take(n)
}
