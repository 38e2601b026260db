package jclass

import (
	"bytes"
	"testing"
)

func TestFrameKindOf(t *testing.T) {
	tests := []struct {
		tag  uint8
		kind FrameKind
	}{
		{0, FrameSame},
		{63, FrameSame},
		{64, FrameSameLocals1StackItem},
		{127, FrameSameLocals1StackItem},
		{128, FrameReserved},
		{246, FrameReserved},
		{247, FrameSameLocals1StackItemExtended},
		{248, FrameChop},
		{250, FrameChop},
		{251, FrameSameExtended},
		{252, FrameAppend},
		{254, FrameAppend},
		{255, FrameFull},
	}
	for _, tt := range tests {
		if k := FrameKindOf(tt.tag); k != tt.kind {
			t.Errorf("FrameKindOf(%d) = %v, wanted %v", tt.tag, k, tt.kind)
		}
	}
	if s := FrameSame.String(); s != "same_frame" {
		t.Errorf("FrameSame.String() = %q", s)
	}
	if s := FrameKind(42).String(); s != "FrameKind(42)" {
		t.Errorf("FrameKind(42).String() = %q", s)
	}
}

func TestSameFrame(t *testing.T) {
	for _, tag := range []uint8{0, 17, 63} {
		f := NewSameFrame(tag)
		enc := NewEncoder(nil)
		f.Encode(enc)
		if !bytes.Equal(enc.Bytes(), []byte{tag}) || f.Size() != 1 {
			t.Fatalf("Encode(%d) = %x, Size %d", tag, enc.Bytes(), f.Size())
		}

		c := NewCursor(enc.Bytes())
		got := must(c.Uint8())
		if FrameKindOf(got) != FrameSame {
			t.Fatalf("FrameKindOf(%d) = %v", got, FrameKindOf(got))
		}
		decoded := must(DecodeSameFrame(got, &c))
		if decoded != f || decoded.IsNil() || decoded.Kind() != FrameSame || decoded.OffsetDelta() != uint16(tag) {
			t.Fatalf("decoded = %+v, wanted %+v", decoded, f)
		}
		if n := must(MeasureSameFrame(got, c)); n != 0 {
			t.Fatalf("MeasureSameFrame = %d, wanted 0", n)
		}
	}

	c := NewCursor(nil)
	if f, err := DecodeSameFrame(5, &c); err != nil || f.IsNil() || c.Off() != 0 {
		t.Fatalf("DecodeSameFrame on empty input = (%v, %v)", f, err)
	}

	var zero SameFrame
	if !zero.IsNil() || zero == NewSameFrame(0) {
		t.Errorf("zero SameFrame is not nil")
	}
	expectPanic(t, "NewSameFrame(64)", func() { NewSameFrame(64) })
}
