package jclass

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMapFile(t *testing.T) {
	p := newTestPool()
	attrs := []Attribute{Synthetic, NewSignatureAttribute(7), NewLineNumberTableAttribute(NewLineNumberInfo(0, 3))}
	enc := NewEncoder(nil)
	if err := EncodeAttributes(enc, attrs, p, Identity); err != nil {
		t.Fatal(err)
	}

	fn := filepath.Join(t.TempDir(), "attrs.bin")
	if err := os.WriteFile(fn, enc.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	mf, err := MapFile(fn)
	if err != nil {
		t.Fatalf("MapFile: %v", err)
	}
	if len(mf.Bytes()) != enc.Len() {
		t.Fatalf("len(Bytes) = %d, wanted %d", len(mf.Bytes()), enc.Len())
	}
	c := mf.Cursor()
	decoded := must(DecodeAttributes(&c, p))
	if len(decoded) != 3 || decoded[0] != Synthetic || decoded[1] != NewSignatureAttribute(7) {
		t.Fatalf("decoded = %v", decoded)
	}
	if line, _ := decoded[2].(LineNumberTableAttribute).LineAt(1); line != 3 {
		t.Fatalf("LineAt(1) = %d, wanted 3", line)
	}
	if err := mf.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestMapFile_Empty(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "empty.class")
	if err := os.WriteFile(fn, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	mf := must(MapFile(fn))
	c := mf.Cursor()
	if _, err := DecodeAttributes(&c, nil); !IsTruncated(err) {
		t.Fatalf("DecodeAttributes err = %v, wanted truncated", err)
	}
	if err := mf.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestMapFile_Missing(t *testing.T) {
	if _, err := MapFile(filepath.Join(t.TempDir(), "missing.class")); !os.IsNotExist(err) {
		t.Fatalf("MapFile err = %v, wanted not exist", err)
	}
}
