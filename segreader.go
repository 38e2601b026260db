package jclass

import "encoding/binary"

// SegmentedReader reads big-endian values from a logically contiguous
// sequence stored in several chunks, e.g. a code array spread over
// non-adjacent buffers. Reads may straddle chunk boundaries. A failed read
// does not move the position.
type SegmentedReader struct {
	chunks [][]byte
	chunk  int // index of the current chunk
	off    int // offset within chunks[chunk]
	pos    int // logical position
	total  int
}

func NewSegmentedReader(chunks ...[]byte) *SegmentedReader {
	r := &SegmentedReader{}
	r.Reset(chunks...)
	return r
}

func (r *SegmentedReader) Reset(chunks ...[]byte) {
	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	*r = SegmentedReader{chunks: chunks, total: total}
	r.normalize()
}

// Pos returns the logical offset from the start of the first chunk.
func (r *SegmentedReader) Pos() int {
	return r.pos
}

func (r *SegmentedReader) Remaining() int {
	return r.total - r.pos
}

// normalize skips exhausted and empty chunks.
func (r *SegmentedReader) normalize() {
	for r.chunk < len(r.chunks) && r.off >= len(r.chunks[r.chunk]) {
		r.chunk++
		r.off = 0
	}
}

func (r *SegmentedReader) need(n int, what string) error {
	if r.Remaining() < n {
		return truncatedErrf(nil, r.pos, "%s: %d bytes remaining, %d wanted", what, r.Remaining(), n)
	}
	return nil
}

// read fills dst, which must not exceed Remaining().
func (r *SegmentedReader) read(dst []byte) {
	for len(dst) > 0 {
		cur := r.chunks[r.chunk][r.off:]
		n := copy(dst, cur)
		dst = dst[n:]
		r.off += n
		r.pos += n
		r.normalize()
	}
}

// take returns n contiguous bytes, copying into scratch only when the read
// spans chunks.
func (r *SegmentedReader) take(n int, scratch []byte) []byte {
	cur := r.chunks[r.chunk][r.off:]
	if len(cur) >= n {
		r.off += n
		r.pos += n
		r.normalize()
		return cur[:n]
	}
	r.read(scratch[:n])
	return scratch[:n]
}

func (r *SegmentedReader) Uint8() (uint8, error) {
	if err := r.need(1, "u1"); err != nil {
		return 0, err
	}
	v := r.chunks[r.chunk][r.off]
	r.off++
	r.pos++
	r.normalize()
	return v, nil
}

func (r *SegmentedReader) Int8() (int8, error) {
	v, err := r.Uint8()
	return int8(v), err
}

func (r *SegmentedReader) Uint16() (uint16, error) {
	if err := r.need(2, "u2"); err != nil {
		return 0, err
	}
	var scratch [2]byte
	return binary.BigEndian.Uint16(r.take(2, scratch[:])), nil
}

func (r *SegmentedReader) Int16() (int16, error) {
	v, err := r.Uint16()
	return int16(v), err
}

func (r *SegmentedReader) Uint32() (uint32, error) {
	if err := r.need(4, "u4"); err != nil {
		return 0, err
	}
	var scratch [4]byte
	return binary.BigEndian.Uint32(r.take(4, scratch[:])), nil
}

func (r *SegmentedReader) Int32() (int32, error) {
	v, err := r.Uint32()
	return int32(v), err
}

func (r *SegmentedReader) Skip(n int) error {
	if n < 0 {
		panic("negative skip")
	}
	if err := r.need(n, "skip"); err != nil {
		return err
	}
	for n > 0 {
		cur := len(r.chunks[r.chunk]) - r.off
		if cur > n {
			cur = n
		}
		r.off += cur
		r.pos += cur
		n -= cur
		r.normalize()
	}
	return nil
}

// SkipPadding skips 0-3 bytes so that the position becomes a multiple of 4
// relative to codeStart, as required before tableswitch and lookupswitch
// operands.
func (r *SegmentedReader) SkipPadding(codeStart int) error {
	pad := (4 - (r.pos-codeStart)%4) % 4
	return r.Skip(pad)
}
