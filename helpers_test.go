package jclass

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"reflect"
	"strings"
	"testing"
)

// testPool is a minimal slice-backed Pool.
type testPool struct {
	entries []Constant
}

func newTestPool(entries ...Constant) *testPool {
	return &testPool{entries: entries}
}

func (p *testPool) Constant(kind ConstKind, idx uint16) (Constant, bool) {
	if idx == 0 || int(idx) > len(p.entries) {
		return Constant{}, false
	}
	c := p.entries[idx-1]
	if c.Kind != kind {
		return Constant{}, false
	}
	return c, true
}

func (p *testPool) Intern(c Constant) (uint16, error) {
	for i, e := range p.entries {
		if e == c {
			return uint16(i + 1), nil
		}
	}
	p.entries = append(p.entries, c)
	return uint16(len(p.entries)), nil
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func deepEqual[T any](t testing.TB, a, e T) {
	if !reflect.DeepEqual(a, e) {
		t.Helper()
		t.Errorf("** got %v, wanted %v", a, e)
	}
}

func same[T comparable](a, b T) bool {
	return a == b
}

// unhex decodes a hex string, ignoring spaces.
func unhex(s string) []byte {
	return must(hex.DecodeString(strings.ReplaceAll(s, " ", "")))
}

func expectPanic(t testing.TB, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	f()
}

func encodeEntry(t testing.TB, v TableEntry, m Mapper) []byte {
	t.Helper()
	enc := NewEncoder(nil)
	tab := enc.BeginTable()
	if err := v.Encode(&tab, m); err != nil {
		t.Fatalf("Encode(%v): %v", v, err)
	}
	tab.Finish()
	return enc.Bytes()[2:]
}

// encodeAttr returns the attribute with its header, without the table count.
func encodeAttr(t testing.TB, a Attribute, p Pool, m Mapper) []byte {
	t.Helper()
	enc := NewEncoder(nil)
	tab := enc.BeginAttributes()
	if err := a.Encode(&tab, p, m); err != nil {
		t.Fatalf("Encode(%v): %v", a, err)
	}
	tab.Finish()
	return enc.Bytes()[2:]
}

// checkEntry verifies the encoding of v, decoding it back, and that every
// truncated prefix fails without moving the cursor.
func checkEntry[T TableEntry](t *testing.T, v T, wire string, dec func(*Cursor) (T, error), eq func(a, b T) bool) {
	t.Helper()
	want := unhex(wire)
	raw := encodeEntry(t, v, Identity)
	if !bytes.Equal(raw, want) {
		t.Fatalf("Encode(%v) = %x, wanted %x", v, raw, want)
	}
	if v.Size() != len(raw) {
		t.Errorf("Size(%v) = %d, wanted %d", v, v.Size(), len(raw))
	}

	c := NewCursor(append(raw, 0xEE))
	got, err := dec(&c)
	if err != nil {
		t.Fatalf("decode %x: %v", raw, err)
	}
	if !eq(got, v) {
		t.Errorf("decode %x = %v, wanted %v", raw, got, v)
	}
	if got.IsNil() {
		t.Errorf("decode %x returned nil", raw)
	}
	if c.Remaining() != 1 {
		t.Errorf("decode %x left %d bytes, wanted 1", raw, c.Remaining())
	}

	for n := 0; n < len(raw); n++ {
		c := NewCursor(raw[:n])
		got, err := dec(&c)
		if !IsTruncated(err) {
			t.Errorf("decode %x: err = %v, wanted truncated", raw[:n], err)
		}
		if !got.IsNil() {
			t.Errorf("decode %x = %v, wanted nil", raw[:n], got)
		}
		if c.Off() != 0 {
			t.Errorf("decode %x moved cursor to %d", raw[:n], c.Off())
		}
	}
}

// checkAttribute verifies the body encoding of a, dispatch through
// DecodeAttribute, identity re-encoding, and truncation handling.
func checkAttribute[T Attribute](t *testing.T, a T, body string, dec func(*Cursor) (T, error), eq func(a, b T) bool) {
	t.Helper()
	p := newTestPool()
	raw := encodeAttr(t, a, p, Identity)
	want := unhex(body)

	name := Utf8Ref(binary.BigEndian.Uint16(raw))
	if text, _ := Utf8Text(p, name); text != a.AttributeName() {
		t.Errorf("attribute name = %q, wanted %q", text, a.AttributeName())
	}
	if length := binary.BigEndian.Uint32(raw[2:]); int(length) != a.Size() {
		t.Errorf("declared length = %d, wanted Size() = %d", length, a.Size())
	}
	if !bytes.Equal(raw[6:], want) {
		t.Fatalf("body = %x, wanted %x", raw[6:], want)
	}

	c := NewCursor(raw[6:])
	got, err := dec(&c)
	if err != nil {
		t.Fatalf("decode %x: %v", want, err)
	}
	if !eq(got, a) || got.IsNil() {
		t.Errorf("decode %x = %v, wanted %v", want, got, a)
	}
	if c.Remaining() != 0 {
		t.Errorf("decode %x left %d bytes", want, c.Remaining())
	}

	c = NewCursor(raw)
	decoded, err := DecodeAttribute(&c, p)
	if err != nil {
		t.Fatalf("DecodeAttribute(%x): %v", raw, err)
	}
	if v, ok := decoded.(T); !ok || !eq(v, a) {
		t.Errorf("DecodeAttribute(%x) = %#v, wanted %v", raw, decoded, a)
	}

	again := encodeAttr(t, got, p, Identity)
	if !bytes.Equal(again, raw) {
		t.Errorf("re-encoded = %x, wanted %x", again, raw)
	}

	for n := 0; n < len(want); n++ {
		c := NewCursor(want[:n])
		got, err := dec(&c)
		if !IsTruncated(err) || !got.IsNil() || c.Off() != 0 {
			t.Errorf("decode %x = (%v, %v) at %d, wanted nil truncation at 0", want[:n], got, err, c.Off())
		}
	}
	for n := 0; n < len(raw); n++ {
		c := NewCursor(raw[:n])
		got, err := DecodeAttribute(&c, p)
		if !IsTruncated(err) || got != nil || c.Off() != 0 {
			t.Errorf("DecodeAttribute(%x) = (%v, %v) at %d, wanted truncation at 0", raw[:n], got, err, c.Off())
		}
	}
}
