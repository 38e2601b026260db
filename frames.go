package jclass

import "fmt"

// FrameKind classifies a StackMapTable frame by its frame_type byte.
type FrameKind uint8

const (
	FrameReserved FrameKind = iota
	FrameSame
	FrameSameLocals1StackItem
	FrameSameLocals1StackItemExtended
	FrameChop
	FrameSameExtended
	FrameAppend
	FrameFull
)

var frameKindNames = [...]string{
	FrameReserved:                     "reserved",
	FrameSame:                         "same_frame",
	FrameSameLocals1StackItem:         "same_locals_1_stack_item_frame",
	FrameSameLocals1StackItemExtended: "same_locals_1_stack_item_frame_extended",
	FrameChop:                         "chop_frame",
	FrameSameExtended:                 "same_frame_extended",
	FrameAppend:                       "append_frame",
	FrameFull:                         "full_frame",
}

func (k FrameKind) String() string {
	if int(k) < len(frameKindNames) {
		return frameKindNames[k]
	}
	return fmt.Sprintf("FrameKind(%d)", uint8(k))
}

func FrameKindOf(frameType uint8) FrameKind {
	switch {
	case frameType <= maxSameFrameType:
		return FrameSame
	case frameType <= 127:
		return FrameSameLocals1StackItem
	case frameType < 247:
		return FrameReserved
	case frameType == 247:
		return FrameSameLocals1StackItemExtended
	case frameType <= 250:
		return FrameChop
	case frameType == 251:
		return FrameSameExtended
	case frameType <= 254:
		return FrameAppend
	default:
		return FrameFull
	}
}

const maxSameFrameType = 63

// SameFrame is a stack map frame with the same locals as the previous frame
// and an empty stack. The frame type doubles as the offset delta.
type SameFrame struct {
	FrameType uint8
	ok        bool
}

func NewSameFrame(offsetDelta uint8) SameFrame {
	if offsetDelta > maxSameFrameType {
		panic(fmt.Sprintf("same_frame offset delta %d out of range", offsetDelta))
	}
	return SameFrame{offsetDelta, true}
}

// DecodeSameFrame builds the frame for a frame_type the caller has already
// read from c and dispatched on. A same_frame has nothing after its tag, so
// decoding never fails.
func DecodeSameFrame(frameType uint8, c *Cursor) (SameFrame, error) {
	return NewSameFrame(frameType), nil
}

// MeasureSameFrame returns the number of bytes following the tag.
func MeasureSameFrame(frameType uint8, c Cursor) (int, error) {
	return 0, nil
}

func (f SameFrame) IsNil() bool         { return !f.ok }
func (f SameFrame) Kind() FrameKind     { return FrameSame }
func (f SameFrame) OffsetDelta() uint16 { return uint16(f.FrameType) }

// Size includes the frame_type byte.
func (f SameFrame) Size() int { return 1 }

func (f SameFrame) Encode(enc *Encoder) {
	enc.U1(f.FrameType)
}
