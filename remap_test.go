package jclass

import (
	"bytes"
	"testing"
)

func TestIdentityAndOffset(t *testing.T) {
	if v := must(Remap(Identity, ClassRef(42))); v != 42 {
		t.Fatalf("Identity = %v, wanted #42", v)
	}
	if v := must(Remap(OffsetMapper(-1), Utf8Ref(5))); v != 4 {
		t.Fatalf("OffsetMapper(-1) = %v, wanted #4", v)
	}
	if _, err := Remap(OffsetMapper(-1), Utf8Ref(0)); err == nil {
		t.Fatalf("OffsetMapper(-1) on #0: err = nil, wanted error")
	}
	if _, err := Remap(OffsetMapper(1), ModuleRef(0xFFFF)); err == nil {
		t.Fatalf("OffsetMapper(1) on #65535: err = nil, wanted error")
	}

	var kinds []ConstKind
	m := MapperFunc(func(kind ConstKind, idx uint16) (uint16, error) {
		kinds = append(kinds, kind)
		return idx, nil
	})
	_, _ = Remap(m, PackageRef(1))
	_, _ = Remap(m, StringRef(1))
	deepEqual(t, kinds, []ConstKind{ConstPackage, ConstString})
}

func TestCopyMapper(t *testing.T) {
	src := newTestPool(
		Utf8("java/lang/Runnable"),
		Constant{Kind: ConstClass, Name: 1},
		Utf8("Foo.java"),
	)
	dst := newTestPool(Utf8("Foo.java"))
	m := NewCopyMapper(src, dst)

	if v := must(Remap(m, ClassRef(2))); v != 3 {
		t.Fatalf("Remap(#2) = %v, wanted #3", v)
	}
	if v := must(Remap(m, Utf8Ref(3))); v != 1 {
		t.Fatalf("Remap(#3) = %v, wanted #1", v)
	}
	if v := must(Remap(m, ClassRef(2))); v != 3 {
		t.Fatalf("second Remap(#2) = %v, wanted #3", v)
	}
	deepEqual(t, dst.entries, []Constant{
		Utf8("Foo.java"),
		Utf8("java/lang/Runnable"),
		{Kind: ConstClass, Name: 2},
	})
	if m.Len() != 3 {
		t.Fatalf("Len = %d, wanted 3", m.Len())
	}

	if _, err := Remap(m, ClassRef(9)); err == nil {
		t.Fatalf("Remap(#9) err = nil, wanted error")
	}
	if _, err := Remap(m, ClassRef(1)); err == nil {
		t.Fatalf("Remap of a Utf8 entry as Class: err = nil, wanted error")
	}
}

func TestCopyMapper_Records(t *testing.T) {
	src := newTestPool(
		Utf8("java/lang/Runnable"),
		Constant{Kind: ConstClass, Name: 1},
		Utf8("Foo.java"),
	)
	dst := newTestPool()
	m := NewCopyMapper(src, dst)

	enc := NewEncoder(nil)
	if err := EncodeInterfaces(enc, []InterfaceInfo{NewInterfaceInfo(2)}, m); err != nil {
		t.Fatal(err)
	}
	if err := EncodeAttributes(enc, []Attribute{NewSourceFileAttribute(3)}, dst, m); err != nil {
		t.Fatal(err)
	}
	// Handles are remapped before the attribute name is interned.
	want := unhex("0001 0002" + "0001 0004 00000002 0003")
	if !bytes.Equal(enc.Bytes(), want) {
		t.Fatalf("encoded = %x, wanted %x", enc.Bytes(), want)
	}

	c := NewCursor(want[4:])
	attrs := must(DecodeAttributes(&c, dst))
	deepEqual(t, attrs, []Attribute{NewSourceFileAttribute(3)})
	if text, _ := Utf8Text(dst, 3); text != "Foo.java" {
		t.Fatalf("Utf8Text(#3) = %q", text)
	}
}
