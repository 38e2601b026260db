package jclass

import (
	"encoding/binary"
	"io"
)

func ensureCapacity(buf []byte, minCap int) []byte {
	c := cap(buf)
	if minCap > c {
		if c < 16 {
			c = 16
		}
		for minCap > c {
			c <<= 1
		}
		old := buf
		buf = make([]byte, len(old), c)
		copy(buf, old)
	}
	return buf
}

func grow(buf []byte, n int) (int, []byte) {
	off := len(buf)
	newLen := off + n
	buf = ensureCapacity(buf, newLen)
	return off, buf[:newLen]
}

func appendRaw(buf []byte, chunk []byte) []byte {
	n := len(chunk)
	off, buf := grow(buf, n)
	copy(buf[off:], chunk)
	return buf
}

// Encoder appends big-endian class-file data to Buf.
type Encoder struct {
	Buf []byte
}

var _ io.Writer = (*Encoder)(nil)

func NewEncoder(buf []byte) *Encoder {
	return &Encoder{buf}
}

func (e *Encoder) Len() int {
	return len(e.Buf)
}

func (e *Encoder) Bytes() []byte {
	return e.Buf
}

func (e *Encoder) Reset() {
	e.Buf = e.Buf[:0]
}

func (e *Encoder) EnsureExtra(n int) {
	e.Buf = ensureCapacity(e.Buf, len(e.Buf)+n)
}

func (e *Encoder) Grow(n int) (off int) {
	off, e.Buf = grow(e.Buf, n)
	return
}

func (e *Encoder) Write(b []byte) (int, error) {
	e.Buf = appendRaw(e.Buf, b)
	return len(b), nil
}

func (e *Encoder) WriteByte(v byte) error {
	e.U1(v)
	return nil
}

func (e *Encoder) U1(v uint8) {
	off := e.Grow(1)
	e.Buf[off] = v
}

func (e *Encoder) U2(v uint16) {
	off := e.Grow(2)
	binary.BigEndian.PutUint16(e.Buf[off:], v)
}

func (e *Encoder) U4(v uint32) {
	off := e.Grow(4)
	binary.BigEndian.PutUint32(e.Buf[off:], v)
}

func (e *Encoder) I4(v int32) {
	e.U4(uint32(v))
}

func (e *Encoder) Raw(b []byte) {
	e.Buf = appendRaw(e.Buf, b)
}

func (e *Encoder) putU2At(off int, v uint16) {
	binary.BigEndian.PutUint16(e.Buf[off:], v)
}
