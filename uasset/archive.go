package uasset

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf16"
)

/* reader is a cursor over one serialized region. The first failure sticks, so
 * callers check err once after a group of reads. */
type reader struct {
	buf   []byte
	pos   int
	names *NameMap
	err   error
}

func newReader(buf []byte, names *NameMap) *reader {
	return &reader{buf: buf, names: names}
}

func (r *reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *reader) remaining() int {
	return len(r.buf) - r.pos
}

func (r *reader) bytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || n > r.remaining() {
		r.fail(fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrorTruncated, n, r.pos, r.remaining()))
		return nil
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b
}

func (r *reader) u8() uint8 {
	b := r.bytes(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *reader) u16() uint16 {
	b := r.bytes(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (r *reader) u32() uint32 {
	b := r.bytes(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (r *reader) i32() int32 {
	return int32(r.u32())
}

func (r *reader) i64() int64 {
	b := r.bytes(8)
	if b == nil {
		return 0
	}
	return int64(binary.LittleEndian.Uint64(b))
}

func (r *reader) f32() float32 {
	return math.Float32frombits(r.u32())
}

func (r *reader) guid() [16]byte {
	var g [16]byte
	copy(g[:], r.bytes(16))
	return g
}

/* fstring returns nil for the zero length "None" string. Positive lengths are
 * Latin-1, negative lengths UTF-16LE; both include the terminator. */
func (r *reader) fstring() *string {
	n := r.i32()
	if r.err != nil || n == 0 {
		return nil
	}

	var s string
	if n > 0 {
		b := r.bytes(int(n))
		if b == nil {
			return nil
		}
		if b[len(b)-1] != 0 {
			r.fail(fmt.Errorf("%w: missing terminator", ErrorBadString))
			return nil
		}
		runes := make([]rune, len(b)-1)
		for i, c := range b[:len(b)-1] {
			runes[i] = rune(c)
		}
		s = string(runes)
	} else {
		if n == math.MinInt32 {
			r.fail(fmt.Errorf("%w: length %d", ErrorBadString, n))
			return nil
		}
		b := r.bytes(int(-n) * 2)
		if b == nil {
			return nil
		}
		units := make([]uint16, -n)
		for i := range units {
			units[i] = binary.LittleEndian.Uint16(b[2*i:])
		}
		if units[len(units)-1] != 0 {
			r.fail(fmt.Errorf("%w: missing terminator", ErrorBadString))
			return nil
		}
		s = string(utf16.Decode(units[:len(units)-1]))
	}
	return &s
}

func (r *reader) fname() FName {
	i := r.i32()
	number := r.i32()
	if r.err != nil {
		return FName{}
	}
	value, err := r.names.Get(i)
	if err != nil {
		r.fail(err)
		return FName{}
	}
	return FName{Value: value, Number: number}
}

func (r *reader) index() PackageIndex {
	return PackageIndex(r.i32())
}

type writer struct {
	buf   bytes.Buffer
	names *NameMap
}

func newWriter(names *NameMap) *writer {
	return &writer{names: names}
}

func (w *writer) Bytes() []byte {
	return w.buf.Bytes()
}

func (w *writer) Len() int {
	return w.buf.Len()
}

func (w *writer) raw(b []byte) {
	w.buf.Write(b)
}

func (w *writer) u8(v uint8) {
	w.buf.WriteByte(v)
}

func (w *writer) u16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.buf.Write(b[:])
}

func (w *writer) u32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

func (w *writer) i32(v int32) {
	w.u32(uint32(v))
}

func (w *writer) i64(v int64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	w.buf.Write(b[:])
}

func (w *writer) f32(v float32) {
	w.u32(math.Float32bits(v))
}

func (w *writer) guid(g [16]byte) {
	w.buf.Write(g[:])
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

func (w *writer) fstring(s *string) {
	if s == nil {
		w.i32(0)
		return
	}

	if isASCII(*s) {
		w.i32(int32(len(*s) + 1))
		w.buf.WriteString(*s)
		w.u8(0)
		return
	}

	units := utf16.Encode([]rune(*s))
	w.i32(-int32(len(units) + 1))
	for _, u := range units {
		w.u16(u)
	}
	w.u16(0)
}

func (w *writer) fname(n FName) {
	w.i32(w.names.Add(n.Value))
	w.i32(n.Number)
}

func (w *writer) index(i PackageIndex) {
	w.i32(int32(i))
}
