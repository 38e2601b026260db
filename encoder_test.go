package jclass

import (
	"bytes"
	"testing"
)

func TestEncoder_Basics(t *testing.T) {
	enc := NewEncoder(nil)
	enc.EnsureExtra(128)
	if cap(enc.Buf) < 128 {
		t.Fatalf("cap(enc.Buf) = %d, wanted >= 128", cap(enc.Buf))
	}

	enc.U1(0xCA)
	enc.U2(0xFEBA)
	enc.U4(0xBE000000)
	enc.I4(-1)
	enc.Raw([]byte{1, 2})
	_, _ = enc.Write([]byte{3})
	_ = enc.WriteByte(4)
	off := enc.Grow(2)
	copy(enc.Buf[off:], []byte{5, 6})

	want := unhex("ca feba be000000 ffffffff 0102 03 04 0506")
	if !bytes.Equal(enc.Bytes(), want) {
		t.Fatalf("enc.Bytes() = %x, wanted %x", enc.Bytes(), want)
	}
	if enc.Len() != len(want) {
		t.Fatalf("enc.Len() = %d, wanted %d", enc.Len(), len(want))
	}

	enc.Reset()
	if enc.Len() != 0 {
		t.Fatalf("after Reset: enc.Len() = %d, wanted 0", enc.Len())
	}
}

func TestEncoder_AppendsToExistingBuffer(t *testing.T) {
	enc := NewEncoder([]byte{0xAA})
	enc.U2(1)
	if !bytes.Equal(enc.Bytes(), unhex("aa 0001")) {
		t.Fatalf("enc.Bytes() = %x, wanted aa0001", enc.Bytes())
	}
}

func TestTableEncoder(t *testing.T) {
	enc := NewEncoder(nil)
	tab := enc.BeginTable()
	tab.Next().U2(7)
	tab.Next().U2(9)
	if tab.Count() != 2 {
		t.Fatalf("Count = %d, wanted 2", tab.Count())
	}
	tab.Finish()
	if want := unhex("0002 0007 0009"); !bytes.Equal(enc.Bytes(), want) {
		t.Fatalf("enc.Bytes() = %x, wanted %x", enc.Bytes(), want)
	}

	enc.Reset()
	short := enc.BeginShortTable()
	short.Next().U1(5)
	short.Finish()
	if want := unhex("01 05"); !bytes.Equal(enc.Bytes(), want) {
		t.Fatalf("short table = %x, wanted %x", enc.Bytes(), want)
	}

	enc.Reset()
	empty := enc.BeginTable()
	empty.Finish()
	if want := unhex("0000"); !bytes.Equal(enc.Bytes(), want) {
		t.Fatalf("empty table = %x, wanted %x", enc.Bytes(), want)
	}
}

func TestTableEncoder_Misuse(t *testing.T) {
	enc := NewEncoder(nil)
	tab := enc.BeginTable()
	tab.Finish()
	expectPanic(t, "second Finish", func() { tab.Finish() })
	expectPanic(t, "Next after Finish", func() { tab.Next() })

	short := enc.BeginShortTable()
	for i := 0; i < 256; i++ {
		short.Next().U1(0)
	}
	expectPanic(t, "Finish with 256 short entries", func() { short.Finish() })
}

func TestAttributeTable(t *testing.T) {
	enc := NewEncoder(nil)
	tab := enc.BeginAttributes()
	tab.Begin(5, 2).U2(0x0102)
	tab.Begin(6, 0)
	tab.Finish()
	if tab.Count() != 2 {
		t.Fatalf("Count = %d, wanted 2", tab.Count())
	}
	want := unhex("0002 0005 00000002 0102 0006 00000000")
	if !bytes.Equal(enc.Bytes(), want) {
		t.Fatalf("enc.Bytes() = %x, wanted %x", enc.Bytes(), want)
	}
}

func TestAttributeTable_SizeMismatchPanics(t *testing.T) {
	enc := NewEncoder(nil)
	tab := enc.BeginAttributes()
	tab.Begin(1, 2).U1(0)
	expectPanic(t, "Finish after short body", func() { tab.Finish() })

	enc = NewEncoder(nil)
	tab = enc.BeginAttributes()
	tab.Begin(1, 0).U1(0)
	expectPanic(t, "Begin after long body", func() { tab.Begin(2, 0) })

	expectPanic(t, "Begin with negative size", func() {
		tab := NewEncoder(nil).BeginAttributes()
		tab.Begin(1, -1)
	})
}
