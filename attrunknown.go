package jclass

import "bytes"

// UnknownAttribute keeps an attribute this package does not interpret.
// Data aliases the decoded buffer. The body is written back unchanged on
// encode; only the name is remapped.
type UnknownAttribute struct {
	Name Utf8Ref
	Data []byte
	ok   bool
}

func NewUnknownAttribute(name Utf8Ref, data []byte) UnknownAttribute {
	return UnknownAttribute{name, data, true}
}

// DecodeUnknownAttribute consumes exactly length bytes from c, failing if
// fewer remain.
func DecodeUnknownAttribute(c *Cursor, name Utf8Ref, length uint32) (UnknownAttribute, error) {
	if uint64(length) > uint64(c.Remaining()) {
		return UnknownAttribute{}, truncatedErrf(c.Orig, c.Off(), "attribute body: %d bytes remaining, %d declared", c.Remaining(), length)
	}
	data, _ := c.Raw(int(length))
	return UnknownAttribute{name, data, true}, nil
}

// MeasureUnknownAttribute returns the body size, checking it is present.
func MeasureUnknownAttribute(c Cursor, length uint32) (int, error) {
	if uint64(length) > uint64(c.Remaining()) {
		return 0, truncatedErrf(c.Orig, c.Off(), "attribute body: %d bytes remaining, %d declared", c.Remaining(), length)
	}
	return int(length), nil
}

func (a UnknownAttribute) AttributeName() string { return "" }
func (a UnknownAttribute) IsNil() bool           { return !a.ok }
func (a UnknownAttribute) Size() int             { return len(a.Data) }

func (a UnknownAttribute) Equal(b UnknownAttribute) bool {
	return a.ok == b.ok && a.Name == b.Name && bytes.Equal(a.Data, b.Data)
}

// Encode remaps the name through m; p is not used since the name already
// exists in the source pool.
func (a UnknownAttribute) Encode(t *AttributeTable, p Pool, m Mapper) error {
	name, err := Remap(m, a.Name)
	if err != nil {
		return err
	}
	t.Begin(name, len(a.Data)).Raw(a.Data)
	return nil
}
