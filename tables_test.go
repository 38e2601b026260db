package jclass

import (
	"bytes"
	"testing"
)

func TestInterfaceInfo(t *testing.T) {
	checkEntry(t, NewInterfaceInfo(0x1234), "1234", DecodeInterfaceInfo, same[InterfaceInfo])
	checkEntry(t, NewInterfaceInfo(0), "0000", DecodeInterfaceInfo, same[InterfaceInfo])
	checkEntry(t, NewInterfaceInfo(0xFFFF), "ffff", DecodeInterfaceInfo, same[InterfaceInfo])
}

func TestMethodParameter(t *testing.T) {
	checkEntry(t, NewMethodParameter(0, 0), "0000 0000", DecodeMethodParameter, same[MethodParameter])
	checkEntry(t, NewMethodParameter(5, 0x8010), "0005 8010", DecodeMethodParameter, same[MethodParameter])
	checkEntry(t, NewMethodParameter(0xFFFF, 0xFFFF), "ffff ffff", DecodeMethodParameter, same[MethodParameter])
}

func TestLineNumberInfo(t *testing.T) {
	checkEntry(t, NewLineNumberInfo(0, 0), "0000 0000", DecodeLineNumberInfo, same[LineNumberInfo])
	checkEntry(t, NewLineNumberInfo(0xFFFF, 1), "ffff 0001", DecodeLineNumberInfo, same[LineNumberInfo])

	if s := NewLineNumberInfo(3, 42).String(); s != "pc 3 => line 42" {
		t.Errorf("String = %q", s)
	}
}

func TestNilIsDistinctFromZero(t *testing.T) {
	var zero LineNumberInfo
	if !zero.IsNil() {
		t.Errorf("zero LineNumberInfo is not nil")
	}
	v := NewLineNumberInfo(0, 0)
	if v.IsNil() {
		t.Errorf("NewLineNumberInfo(0, 0) is nil")
	}
	if v == zero {
		t.Errorf("NewLineNumberInfo(0, 0) == nil value")
	}

	c := NewCursor(unhex("00000000"))
	decoded := must(DecodeLineNumberInfo(&c))
	if decoded != v {
		t.Errorf("decoded = %#v, wanted %#v", decoded, v)
	}

	var (
		iface InterfaceInfo
		param MethodParameter
		req   ModuleRequireInfo
		open  ModuleOpenInfo
		exp   ModuleExportInfo
		prov  ModuleProvideInfo
	)
	for _, e := range []TableEntry{iface, param, req, open, exp, prov} {
		if !e.IsNil() {
			t.Errorf("zero %T is not nil", e)
		}
	}
}

func TestInterfaces(t *testing.T) {
	items := []InterfaceInfo{NewInterfaceInfo(3), NewInterfaceInfo(0x0102)}
	enc := NewEncoder(nil)
	if err := EncodeInterfaces(enc, items, Identity); err != nil {
		t.Fatal(err)
	}
	want := unhex("0002 0003 0102")
	if !bytes.Equal(enc.Bytes(), want) {
		t.Fatalf("EncodeInterfaces = %x, wanted %x", enc.Bytes(), want)
	}
	if n := tableSize(false, items); n != len(want) {
		t.Errorf("tableSize = %d, wanted %d", n, len(want))
	}

	c := NewCursor(want)
	deepEqual(t, must(DecodeInterfaces(&c)), items)

	c = NewCursor(unhex("0002 0003 01"))
	if v, err := DecodeInterfaces(&c); !IsTruncated(err) || v != nil || c.Off() != 0 {
		t.Fatalf("DecodeInterfaces(truncated) = (%v, %v) at %d", v, err, c.Off())
	}
}

func TestEntryRemap(t *testing.T) {
	m := OffsetMapper(0x100)
	tests := []struct {
		v    TableEntry
		want string
	}{
		{NewInterfaceInfo(3), "0103"},
		{NewMethodParameter(5, 0x0010), "0105 0010"},
		{NewMethodParameter(0, 0x0010), "0000 0010"},
		{NewLineNumberInfo(5, 6), "0005 0006"},
		{NewModuleRequireInfo(3, 0x0020, 7), "0103 0020 0107"},
		{NewModuleRequireInfo(3, 0x0020, 0), "0103 0020 0000"},
		{NewModuleOpenInfo(4, 0x1000, 1, 2), "0104 1000 0002 0101 0102"},
		{NewModuleExportInfo(4, 0, 1), "0104 0000 0001 0101"},
		{NewModuleProvideInfo(9, 10), "0109 0001 010a"},
	}
	for _, tt := range tests {
		got := encodeEntry(t, tt.v, m)
		if want := unhex(tt.want); !bytes.Equal(got, want) {
			t.Errorf("Encode(%v) with offset = %x, wanted %x", tt.v, got, want)
		}
		if plain := encodeEntry(t, tt.v, Identity); len(plain) != len(got) {
			t.Errorf("remapping changed the size of %v", tt.v)
		}
	}
}

func TestEntryRemapFailure(t *testing.T) {
	enc := NewEncoder(nil)
	tab := enc.BeginTable()
	err := NewInterfaceInfo(0xFFFF).Encode(&tab, OffsetMapper(1))
	if err == nil {
		t.Fatalf("Encode err = nil, wanted out of range error")
	}
	if tab.Count() != 0 {
		t.Errorf("Count = %d after failed Encode, wanted 0", tab.Count())
	}
}
