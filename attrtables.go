package jclass

import "slices"

type LineNumberTableAttribute struct {
	Entries []LineNumberInfo
	ok      bool
}

type MethodParametersAttribute struct {
	Parameters []MethodParameter
	ok         bool
}

func NewLineNumberTableAttribute(entries ...LineNumberInfo) LineNumberTableAttribute {
	return LineNumberTableAttribute{entries, true}
}

func NewMethodParametersAttribute(params ...MethodParameter) MethodParametersAttribute {
	return MethodParametersAttribute{params, true}
}

func DecodeLineNumberTableAttribute(c *Cursor) (LineNumberTableAttribute, error) {
	entries, err := decodeTable(c, false, DecodeLineNumberInfo)
	if err != nil {
		return LineNumberTableAttribute{}, err
	}
	return LineNumberTableAttribute{entries, true}, nil
}

// DecodeMethodParametersAttribute reads the body; note its count is a u1.
func DecodeMethodParametersAttribute(c *Cursor) (MethodParametersAttribute, error) {
	params, err := decodeTable(c, true, DecodeMethodParameter)
	if err != nil {
		return MethodParametersAttribute{}, err
	}
	return MethodParametersAttribute{params, true}, nil
}

func (a LineNumberTableAttribute) AttributeName() string  { return AttrLineNumberTable }
func (a MethodParametersAttribute) AttributeName() string { return AttrMethodParameters }

func (a LineNumberTableAttribute) IsNil() bool  { return !a.ok }
func (a MethodParametersAttribute) IsNil() bool { return !a.ok }

func (a LineNumberTableAttribute) Size() int  { return tableSize(false, a.Entries) }
func (a MethodParametersAttribute) Size() int { return tableSize(true, a.Parameters) }

func (a LineNumberTableAttribute) Equal(b LineNumberTableAttribute) bool {
	return a.ok == b.ok && slices.Equal(a.Entries, b.Entries)
}

func (a MethodParametersAttribute) Equal(b MethodParametersAttribute) bool {
	return a.ok == b.ok && slices.Equal(a.Parameters, b.Parameters)
}

// LineAt returns the source line of the entry with the greatest StartPC not
// exceeding pc.
func (a LineNumberTableAttribute) LineAt(pc uint16) (uint16, bool) {
	var best LineNumberInfo
	for _, e := range a.Entries {
		if e.StartPC <= pc && (best.IsNil() || e.StartPC >= best.StartPC) {
			best = e
		}
	}
	return best.LineNumber, !best.IsNil()
}

func (a LineNumberTableAttribute) Encode(t *AttributeTable, p Pool, m Mapper) error {
	enc, err := beginNamed(t, p, AttrLineNumberTable, a.Size())
	if err != nil {
		return err
	}
	return encodeTable(enc, false, a.Entries, m)
}

func (a MethodParametersAttribute) Encode(t *AttributeTable, p Pool, m Mapper) error {
	enc, err := beginNamed(t, p, AttrMethodParameters, a.Size())
	if err != nil {
		return err
	}
	return encodeTable(enc, true, a.Parameters, m)
}
