package jclass

import "encoding/binary"

// Cursor is a forward-only big-endian reader over a contiguous region.
// Values returned by Raw alias the underlying buffer. A read that fails
// leaves the position unchanged.
//
// A Cursor is mutable positional state; use one per goroutine.
type Cursor struct {
	Orig []byte
	Buf  []byte
}

func NewCursor(buf []byte) Cursor {
	return Cursor{buf, buf}
}

func (c *Cursor) Off() int {
	return len(c.Orig) - len(c.Buf)
}

func (c *Cursor) Remaining() int {
	return len(c.Buf)
}

func (c *Cursor) need(n int, what string) error {
	if len(c.Buf) < n {
		return truncatedErrf(c.Orig, c.Off(), "%s: %d bytes remaining, %d wanted", what, len(c.Buf), n)
	}
	return nil
}

func (c *Cursor) Uint8() (uint8, error) {
	if err := c.need(1, "u1"); err != nil {
		return 0, err
	}
	v := c.Buf[0]
	c.Buf = c.Buf[1:]
	return v, nil
}

func (c *Cursor) Uint16() (uint16, error) {
	if err := c.need(2, "u2"); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(c.Buf)
	c.Buf = c.Buf[2:]
	return v, nil
}

func (c *Cursor) Uint32() (uint32, error) {
	if err := c.need(4, "u4"); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(c.Buf)
	c.Buf = c.Buf[4:]
	return v, nil
}

func (c *Cursor) Int32() (int32, error) {
	v, err := c.Uint32()
	return int32(v), err
}

func (c *Cursor) Skip(n int) error {
	if n < 0 {
		panic("negative skip")
	}
	if err := c.need(n, "skip"); err != nil {
		return err
	}
	c.Buf = c.Buf[n:]
	return nil
}

func (c *Cursor) Raw(n int) ([]byte, error) {
	if n < 0 {
		panic("negative length")
	}
	if err := c.need(n, "raw"); err != nil {
		return nil, err
	}
	v := c.Buf[:n:n]
	c.Buf = c.Buf[n:]
	return v, nil
}

// Sub returns a cursor bounded to the next n bytes and advances c past them.
func (c *Cursor) Sub(n int) (Cursor, error) {
	raw, err := c.Raw(n)
	if err != nil {
		return Cursor{}, err
	}
	return NewCursor(raw), nil
}

// readHandle reads a u2 ordinal as a handle of type H.
func readHandle[H Handle](c *Cursor) (H, error) {
	v, err := c.Uint16()
	return H(v), err
}
