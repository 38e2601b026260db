package jclass

import (
	"fmt"
	"math"
)

// TableEntry is a fixed or variable-length element of a counted table.
type TableEntry interface {
	IsNil() bool
	Size() int
	Encode(t *TableEncoder, m Mapper) error
}

const (
	interfaceInfoSize   = 2
	methodParameterSize = 4
	lineNumberInfoSize  = 4
)

// InterfaceInfo is an entry of a class's interfaces table.
type InterfaceInfo struct {
	Class ClassRef
	ok    bool
}

// MethodParameter is an entry of the MethodParameters attribute. A zero Name
// means the parameter is unnamed.
type MethodParameter struct {
	Name        Utf8Ref
	AccessFlags uint16
	ok          bool
}

// LineNumberInfo maps a code offset to a source line.
type LineNumberInfo struct {
	StartPC    uint16
	LineNumber uint16
	ok         bool
}

func NewInterfaceInfo(class ClassRef) InterfaceInfo {
	return InterfaceInfo{class, true}
}

func NewMethodParameter(name Utf8Ref, flags uint16) MethodParameter {
	return MethodParameter{name, flags, true}
}

func NewLineNumberInfo(startPC, line uint16) LineNumberInfo {
	return LineNumberInfo{startPC, line, true}
}

func DecodeInterfaceInfo(c *Cursor) (InterfaceInfo, error) {
	h, err := readHandle[ClassRef](c)
	if err != nil {
		return InterfaceInfo{}, err
	}
	return InterfaceInfo{h, true}, nil
}

func DecodeMethodParameter(c *Cursor) (MethodParameter, error) {
	r, err := c.Sub(methodParameterSize)
	if err != nil {
		return MethodParameter{}, err
	}
	name, _ := readHandle[Utf8Ref](&r)
	flags, _ := r.Uint16()
	return MethodParameter{name, flags, true}, nil
}

func DecodeLineNumberInfo(c *Cursor) (LineNumberInfo, error) {
	r, err := c.Sub(lineNumberInfoSize)
	if err != nil {
		return LineNumberInfo{}, err
	}
	pc, _ := r.Uint16()
	line, _ := r.Uint16()
	return LineNumberInfo{pc, line, true}, nil
}

func (v InterfaceInfo) IsNil() bool   { return !v.ok }
func (v MethodParameter) IsNil() bool { return !v.ok }
func (v LineNumberInfo) IsNil() bool  { return !v.ok }

func (v InterfaceInfo) Size() int   { return interfaceInfoSize }
func (v MethodParameter) Size() int { return methodParameterSize }
func (v LineNumberInfo) Size() int  { return lineNumberInfoSize }

func (v InterfaceInfo) Encode(t *TableEncoder, m Mapper) error {
	class, err := Remap(m, v.Class)
	if err != nil {
		return err
	}
	t.Next().U2(uint16(class))
	return nil
}

func (v MethodParameter) Encode(t *TableEncoder, m Mapper) error {
	name, err := remapOptional(m, v.Name)
	if err != nil {
		return err
	}
	enc := t.Next()
	enc.U2(uint16(name))
	enc.U2(v.AccessFlags)
	return nil
}

func (v LineNumberInfo) Encode(t *TableEncoder, m Mapper) error {
	enc := t.Next()
	enc.U2(v.StartPC)
	enc.U2(v.LineNumber)
	return nil
}

func (v LineNumberInfo) String() string {
	return fmt.Sprintf("pc %d => line %d", v.StartPC, v.LineNumber)
}

// remapOptional maps h unless it is 0, which several structures use to mean
// "absent".
func remapOptional[H Handle](m Mapper, h H) (H, error) {
	if h == 0 {
		return 0, nil
	}
	return Remap(m, h)
}

// DecodeInterfaces reads a class's u2-counted interfaces table.
func DecodeInterfaces(c *Cursor) ([]InterfaceInfo, error) {
	return decodeTable(c, false, DecodeInterfaceInfo)
}

func EncodeInterfaces(enc *Encoder, items []InterfaceInfo, m Mapper) error {
	return encodeTable(enc, false, items, m)
}

func decodeTable[T any](c *Cursor, short bool, dec func(*Cursor) (T, error)) ([]T, error) {
	start := *c
	var n int
	if short {
		v, err := c.Uint8()
		if err != nil {
			return nil, err
		}
		n = int(v)
	} else {
		v, err := c.Uint16()
		if err != nil {
			return nil, err
		}
		n = int(v)
	}
	items := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := dec(c)
		if err != nil {
			*c = start
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

func encodeTable[T TableEntry](enc *Encoder, short bool, items []T, m Mapper) error {
	var t TableEncoder
	if short {
		t = enc.BeginShortTable()
	} else {
		t = enc.BeginTable()
	}
	for _, v := range items {
		if err := v.Encode(&t, m); err != nil {
			return err
		}
	}
	t.Finish()
	return nil
}

func tableSize[T TableEntry](short bool, items []T) int {
	n := 2
	if short {
		n = 1
	}
	for _, v := range items {
		n += v.Size()
	}
	return n
}

// measureHandleList skips a u2 count followed by that many u2 ordinals.
func measureHandleList(c *Cursor) (int, error) {
	n, err := c.Uint16()
	if err != nil {
		return 0, err
	}
	if err := c.Skip(2 * int(n)); err != nil {
		return 0, err
	}
	return 2 + 2*int(n), nil
}

func decodeHandleList[H Handle](c *Cursor) ([]H, error) {
	start := *c
	n, err := c.Uint16()
	if err != nil {
		return nil, err
	}
	r, err := c.Sub(2 * int(n))
	if err != nil {
		*c = start
		return nil, err
	}
	items := make([]H, n)
	for i := range items {
		items[i], _ = readHandle[H](&r)
	}
	return items, nil
}

func encodeHandleList[H Handle](enc *Encoder, items []H, m Mapper) error {
	if len(items) > math.MaxUint16 {
		panic(fmt.Sprintf("handle list has %d entries, max %d", len(items), math.MaxUint16))
	}
	enc.U2(uint16(len(items)))
	for _, h := range items {
		v, err := Remap(m, h)
		if err != nil {
			return err
		}
		enc.U2(uint16(v))
	}
	return nil
}
