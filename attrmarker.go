package jclass

// DeprecatedAttribute marks a class, field or method as deprecated. It has no
// body; the zero value is the nil attribute.
type DeprecatedAttribute struct {
	ok bool
}

// SyntheticAttribute marks a member that does not appear in source code.
type SyntheticAttribute struct {
	ok bool
}

var (
	Deprecated = DeprecatedAttribute{ok: true}
	Synthetic  = SyntheticAttribute{ok: true}
)

func DecodeDeprecatedAttribute(c *Cursor) (DeprecatedAttribute, error) {
	return Deprecated, nil
}

func DecodeSyntheticAttribute(c *Cursor) (SyntheticAttribute, error) {
	return Synthetic, nil
}

func (a DeprecatedAttribute) AttributeName() string { return AttrDeprecated }
func (a DeprecatedAttribute) IsNil() bool           { return !a.ok }
func (a DeprecatedAttribute) Size() int             { return 0 }

func (a DeprecatedAttribute) Encode(t *AttributeTable, p Pool, m Mapper) error {
	_, err := beginNamed(t, p, AttrDeprecated, 0)
	return err
}

func (a SyntheticAttribute) AttributeName() string { return AttrSynthetic }
func (a SyntheticAttribute) IsNil() bool           { return !a.ok }
func (a SyntheticAttribute) Size() int             { return 0 }

func (a SyntheticAttribute) Encode(t *AttributeTable, p Pool, m Mapper) error {
	_, err := beginNamed(t, p, AttrSynthetic, 0)
	return err
}
