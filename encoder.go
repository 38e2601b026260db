package jclass

import (
	"fmt"
	"math"
)

// TableEncoder writes a count-prefixed table of entries. The count slot is
// reserved when the table begins and filled in by Finish, so entries can be
// appended without knowing how many there will be.
type TableEncoder struct {
	enc      *Encoder
	countOff int
	count    int
	short    bool // u1 count instead of u2
	finished bool
}

// BeginTable starts a table with a u2 count.
func (e *Encoder) BeginTable() TableEncoder {
	off := e.Grow(2)
	return TableEncoder{enc: e, countOff: off}
}

// BeginShortTable starts a table with a u1 count, as used by
// MethodParameters.
func (e *Encoder) BeginShortTable() TableEncoder {
	off := e.Grow(1)
	return TableEncoder{enc: e, countOff: off, short: true}
}

// Next registers one more entry and returns the encoder to write it to.
func (t *TableEncoder) Next() *Encoder {
	if t.finished {
		panic("TableEncoder finalized")
	}
	t.count++
	return t.enc
}

func (t *TableEncoder) Count() int {
	return t.count
}

func (t *TableEncoder) Finish() {
	if t.finished {
		panic("TableEncoder finalized")
	}
	t.finished = true
	if t.short {
		if t.count > math.MaxUint8 {
			panic(fmt.Sprintf("table has %d entries, max %d", t.count, math.MaxUint8))
		}
		t.enc.Buf[t.countOff] = uint8(t.count)
	} else {
		if t.count > math.MaxUint16 {
			panic(fmt.Sprintf("table has %d entries, max %d", t.count, math.MaxUint16))
		}
		t.enc.putU2At(t.countOff, uint16(t.count))
	}
}

// AttributeTable writes a u2-counted sequence of attributes. Each attribute
// header carries the body size measured up front; the table panics if the
// body actually written differs from it, since that means an attribute's
// Size and Encode disagree.
type AttributeTable struct {
	tab       TableEncoder
	bodyStart int
	bodySize  int
	open      bool
}

func (e *Encoder) BeginAttributes() AttributeTable {
	return AttributeTable{tab: e.BeginTable()}
}

// Begin writes the header of an attribute with a body of size bytes and
// returns the encoder to write the body to.
func (t *AttributeTable) Begin(name Utf8Ref, size int) *Encoder {
	t.closeBody()
	if size < 0 || int64(size) > math.MaxUint32 {
		panic(fmt.Sprintf("invalid attribute size %d", size))
	}
	enc := t.tab.Next()
	enc.U2(uint16(name))
	enc.U4(uint32(size))
	t.bodyStart, t.bodySize, t.open = enc.Len(), size, true
	return enc
}

func (t *AttributeTable) closeBody() {
	if !t.open {
		return
	}
	t.open = false
	if actual := t.tab.enc.Len() - t.bodyStart; actual != t.bodySize {
		panic(fmt.Sprintf("attribute body is %d bytes, declared %d", actual, t.bodySize))
	}
}

func (t *AttributeTable) Count() int {
	return t.tab.Count()
}

func (t *AttributeTable) Finish() {
	t.closeBody()
	t.tab.Finish()
}
