package jclass

// Attributes whose body is a single constant-pool reference.

type SignatureAttribute struct {
	Signature Utf8Ref
	ok        bool
}

type SourceFileAttribute struct {
	SourceFile Utf8Ref
	ok         bool
}

type NestHostAttribute struct {
	HostClass ClassRef
	ok        bool
}

type ModuleMainClassAttribute struct {
	MainClass ClassRef
	ok        bool
}

func NewSignatureAttribute(sig Utf8Ref) SignatureAttribute {
	return SignatureAttribute{sig, true}
}

func NewSourceFileAttribute(file Utf8Ref) SourceFileAttribute {
	return SourceFileAttribute{file, true}
}

func NewNestHostAttribute(host ClassRef) NestHostAttribute {
	return NestHostAttribute{host, true}
}

func NewModuleMainClassAttribute(main ClassRef) ModuleMainClassAttribute {
	return ModuleMainClassAttribute{main, true}
}

func DecodeSignatureAttribute(c *Cursor) (SignatureAttribute, error) {
	h, err := readHandle[Utf8Ref](c)
	if err != nil {
		return SignatureAttribute{}, err
	}
	return SignatureAttribute{h, true}, nil
}

func DecodeSourceFileAttribute(c *Cursor) (SourceFileAttribute, error) {
	h, err := readHandle[Utf8Ref](c)
	if err != nil {
		return SourceFileAttribute{}, err
	}
	return SourceFileAttribute{h, true}, nil
}

func DecodeNestHostAttribute(c *Cursor) (NestHostAttribute, error) {
	h, err := readHandle[ClassRef](c)
	if err != nil {
		return NestHostAttribute{}, err
	}
	return NestHostAttribute{h, true}, nil
}

func DecodeModuleMainClassAttribute(c *Cursor) (ModuleMainClassAttribute, error) {
	h, err := readHandle[ClassRef](c)
	if err != nil {
		return ModuleMainClassAttribute{}, err
	}
	return ModuleMainClassAttribute{h, true}, nil
}

func (a SignatureAttribute) AttributeName() string       { return AttrSignature }
func (a SourceFileAttribute) AttributeName() string      { return AttrSourceFile }
func (a NestHostAttribute) AttributeName() string        { return AttrNestHost }
func (a ModuleMainClassAttribute) AttributeName() string { return AttrModuleMainClass }

func (a SignatureAttribute) IsNil() bool       { return !a.ok }
func (a SourceFileAttribute) IsNil() bool      { return !a.ok }
func (a NestHostAttribute) IsNil() bool        { return !a.ok }
func (a ModuleMainClassAttribute) IsNil() bool { return !a.ok }

func (a SignatureAttribute) Size() int       { return 2 }
func (a SourceFileAttribute) Size() int      { return 2 }
func (a NestHostAttribute) Size() int        { return 2 }
func (a ModuleMainClassAttribute) Size() int { return 2 }

func (a SignatureAttribute) Encode(t *AttributeTable, p Pool, m Mapper) error {
	return encodeRefAttribute(t, p, m, AttrSignature, a.Signature)
}

func (a SourceFileAttribute) Encode(t *AttributeTable, p Pool, m Mapper) error {
	return encodeRefAttribute(t, p, m, AttrSourceFile, a.SourceFile)
}

func (a NestHostAttribute) Encode(t *AttributeTable, p Pool, m Mapper) error {
	return encodeRefAttribute(t, p, m, AttrNestHost, a.HostClass)
}

func (a ModuleMainClassAttribute) Encode(t *AttributeTable, p Pool, m Mapper) error {
	return encodeRefAttribute(t, p, m, AttrModuleMainClass, a.MainClass)
}

func encodeRefAttribute[H Handle](t *AttributeTable, p Pool, m Mapper, name string, h H) error {
	v, err := Remap(m, h)
	if err != nil {
		return err
	}
	enc, err := beginNamed(t, p, name, 2)
	if err != nil {
		return err
	}
	enc.U2(uint16(v))
	return nil
}
