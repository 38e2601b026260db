package jclass

const (
	AttrDeprecated       = "Deprecated"
	AttrSynthetic        = "Synthetic"
	AttrSignature        = "Signature"
	AttrSourceFile       = "SourceFile"
	AttrNestHost         = "NestHost"
	AttrModuleMainClass  = "ModuleMainClass"
	AttrLineNumberTable  = "LineNumberTable"
	AttrMethodParameters = "MethodParameters"
	AttrModule           = "Module"
)

// Attribute is a decoded attribute body.
//
// Size returns the body length in bytes, excluding the 6-byte header. Encode
// appends the attribute, header included, to t: it interns the attribute
// name into p and translates every handle in the body through m, so the
// result is valid against the pool p belongs to.
type Attribute interface {
	AttributeName() string
	IsNil() bool
	Size() int
	Encode(t *AttributeTable, p Pool, m Mapper) error
}

type attributeDecoder func(c *Cursor) (Attribute, error)

var attributeDecoders = map[string]attributeDecoder{
	AttrDeprecated:       func(c *Cursor) (Attribute, error) { return DecodeDeprecatedAttribute(c) },
	AttrSynthetic:        func(c *Cursor) (Attribute, error) { return DecodeSyntheticAttribute(c) },
	AttrSignature:        func(c *Cursor) (Attribute, error) { return DecodeSignatureAttribute(c) },
	AttrSourceFile:       func(c *Cursor) (Attribute, error) { return DecodeSourceFileAttribute(c) },
	AttrNestHost:         func(c *Cursor) (Attribute, error) { return DecodeNestHostAttribute(c) },
	AttrModuleMainClass:  func(c *Cursor) (Attribute, error) { return DecodeModuleMainClassAttribute(c) },
	AttrLineNumberTable:  func(c *Cursor) (Attribute, error) { return DecodeLineNumberTableAttribute(c) },
	AttrMethodParameters: func(c *Cursor) (Attribute, error) { return DecodeMethodParametersAttribute(c) },
	AttrModule:           func(c *Cursor) (Attribute, error) { return DecodeModuleAttribute(c) },
}

// IsKnownAttribute reports whether DecodeAttribute interprets attributes
// with the given name.
func IsKnownAttribute(name string) bool {
	return attributeDecoders[name] != nil
}

// DecodeAttribute reads one attribute (header and body). The name is
// resolved through v; attributes with unknown names, unresolvable names, or
// a body that does not span exactly the declared length are returned as
// UnknownAttribute values holding the raw body. Fails only on truncation,
// in which case c is left untouched.
func DecodeAttribute(c *Cursor, v View) (Attribute, error) {
	start := *c
	name, err := readHandle[Utf8Ref](c)
	if err != nil {
		return nil, err
	}
	length, err := c.Uint32()
	if err != nil {
		*c = start
		return nil, err
	}
	body := *c
	u, err := DecodeUnknownAttribute(c, name, length)
	if err != nil {
		*c = start
		return nil, err
	}

	if text, ok := Utf8Text(v, name); ok {
		if dec := attributeDecoders[text]; dec != nil {
			bc, _ := body.Sub(int(length))
			if a, err := dec(&bc); err == nil && bc.Remaining() == 0 {
				return a, nil
			}
		}
	}
	return u, nil
}

// DecodeAttributes reads a u2 count followed by that many attributes.
func DecodeAttributes(c *Cursor, v View) ([]Attribute, error) {
	start := *c
	n, err := c.Uint16()
	if err != nil {
		return nil, err
	}
	attrs := make([]Attribute, 0, n)
	for i := 0; i < int(n); i++ {
		a, err := DecodeAttribute(c, v)
		if err != nil {
			*c = start
			return nil, err
		}
		attrs = append(attrs, a)
	}
	return attrs, nil
}

// MeasureAttributes returns the encoded size of a u2-counted attribute table
// starting at c without decoding any bodies.
func MeasureAttributes(c Cursor) (int, error) {
	start := c.Off()
	n, err := c.Uint16()
	if err != nil {
		return 0, err
	}
	for i := 0; i < int(n); i++ {
		if err := c.Skip(2); err != nil {
			return 0, err
		}
		length, err := c.Uint32()
		if err != nil {
			return 0, err
		}
		if uint64(length) > uint64(c.Remaining()) {
			return 0, truncatedErrf(c.Orig, c.Off(), "attribute body: %d bytes remaining, %d declared", c.Remaining(), length)
		}
		_ = c.Skip(int(length))
	}
	return c.Off() - start, nil
}

// AttributesSize returns the encoded size of attrs as a u2-counted table.
func AttributesSize(attrs []Attribute) int {
	n := 2
	for _, a := range attrs {
		n += 6 + a.Size()
	}
	return n
}

// EncodeAttributes writes attrs as a u2-counted table.
func EncodeAttributes(enc *Encoder, attrs []Attribute, p Pool, m Mapper) error {
	t := enc.BeginAttributes()
	for _, a := range attrs {
		if err := a.Encode(&t, p, m); err != nil {
			return err
		}
	}
	t.Finish()
	return nil
}

// beginNamed interns name into p and starts an attribute of the given body
// size.
func beginNamed(t *AttributeTable, p Pool, name string, size int) (*Encoder, error) {
	idx, err := InternUtf8(p, name)
	if err != nil {
		return nil, err
	}
	return t.Begin(idx, size), nil
}
