package jclass

import "slices"

// Flags used by the Module attribute and its tables.
const (
	ModuleOpen         uint16 = 0x0020
	RequiresTransitive uint16 = 0x0020
	RequiresStatic     uint16 = 0x0040
	FlagSynthetic      uint16 = 0x1000
	FlagMandated       uint16 = 0x8000
)

const moduleRequireInfoSize = 6

// ModuleRequireInfo is an entry of the Module attribute's requires table.
// A zero Version means no version was recorded.
type ModuleRequireInfo struct {
	Module  ModuleRef
	Flags   uint16
	Version Utf8Ref
	ok      bool
}

// ModuleOpenInfo is an entry of the opens table. An empty To list opens the
// package to all modules.
type ModuleOpenInfo struct {
	Package PackageRef
	Flags   uint16
	To      []ModuleRef
	ok      bool
}

// ModuleExportInfo is an entry of the exports table; same layout as opens.
type ModuleExportInfo struct {
	Package PackageRef
	Flags   uint16
	To      []ModuleRef
	ok      bool
}

// ModuleProvideInfo is an entry of the provides table: a service interface
// and its implementations.
type ModuleProvideInfo struct {
	Service ClassRef
	With    []ClassRef
	ok      bool
}

func NewModuleRequireInfo(module ModuleRef, flags uint16, version Utf8Ref) ModuleRequireInfo {
	return ModuleRequireInfo{module, flags, version, true}
}

func NewModuleOpenInfo(pkg PackageRef, flags uint16, to ...ModuleRef) ModuleOpenInfo {
	return ModuleOpenInfo{pkg, flags, to, true}
}

func NewModuleExportInfo(pkg PackageRef, flags uint16, to ...ModuleRef) ModuleExportInfo {
	return ModuleExportInfo{pkg, flags, to, true}
}

func NewModuleProvideInfo(service ClassRef, with ...ClassRef) ModuleProvideInfo {
	return ModuleProvideInfo{service, with, true}
}

func DecodeModuleRequireInfo(c *Cursor) (ModuleRequireInfo, error) {
	r, err := c.Sub(moduleRequireInfoSize)
	if err != nil {
		return ModuleRequireInfo{}, err
	}
	module, _ := readHandle[ModuleRef](&r)
	flags, _ := r.Uint16()
	version, _ := readHandle[Utf8Ref](&r)
	return ModuleRequireInfo{module, flags, version, true}, nil
}

func DecodeModuleOpenInfo(c *Cursor) (ModuleOpenInfo, error) {
	pkg, flags, to, err := decodePackageTargets(c)
	if err != nil {
		return ModuleOpenInfo{}, err
	}
	return ModuleOpenInfo{pkg, flags, to, true}, nil
}

func DecodeModuleExportInfo(c *Cursor) (ModuleExportInfo, error) {
	pkg, flags, to, err := decodePackageTargets(c)
	if err != nil {
		return ModuleExportInfo{}, err
	}
	return ModuleExportInfo{pkg, flags, to, true}, nil
}

func DecodeModuleProvideInfo(c *Cursor) (ModuleProvideInfo, error) {
	start := *c
	service, err := readHandle[ClassRef](c)
	if err != nil {
		return ModuleProvideInfo{}, err
	}
	with, err := decodeHandleList[ClassRef](c)
	if err != nil {
		*c = start
		return ModuleProvideInfo{}, err
	}
	return ModuleProvideInfo{service, with, true}, nil
}

func decodePackageTargets(c *Cursor) (PackageRef, uint16, []ModuleRef, error) {
	start := *c
	r, err := c.Sub(4)
	if err != nil {
		return 0, 0, nil, err
	}
	pkg, _ := readHandle[PackageRef](&r)
	flags, _ := r.Uint16()
	to, err := decodeHandleList[ModuleRef](c)
	if err != nil {
		*c = start
		return 0, 0, nil, err
	}
	return pkg, flags, to, nil
}

// MeasureModuleOpenInfo returns the encoded size of the opens entry at c
// without decoding it.
func MeasureModuleOpenInfo(c Cursor) (int, error) {
	return measurePackageTargets(c)
}

func MeasureModuleExportInfo(c Cursor) (int, error) {
	return measurePackageTargets(c)
}

func MeasureModuleProvideInfo(c Cursor) (int, error) {
	if err := c.Skip(2); err != nil {
		return 0, err
	}
	n, err := measureHandleList(&c)
	if err != nil {
		return 0, err
	}
	return 2 + n, nil
}

func measurePackageTargets(c Cursor) (int, error) {
	if err := c.Skip(4); err != nil {
		return 0, err
	}
	n, err := measureHandleList(&c)
	if err != nil {
		return 0, err
	}
	return 4 + n, nil
}

func (v ModuleRequireInfo) IsNil() bool { return !v.ok }
func (v ModuleOpenInfo) IsNil() bool    { return !v.ok }
func (v ModuleExportInfo) IsNil() bool  { return !v.ok }
func (v ModuleProvideInfo) IsNil() bool { return !v.ok }

func (v ModuleRequireInfo) Size() int { return moduleRequireInfoSize }
func (v ModuleOpenInfo) Size() int    { return 6 + 2*len(v.To) }
func (v ModuleExportInfo) Size() int  { return 6 + 2*len(v.To) }
func (v ModuleProvideInfo) Size() int { return 4 + 2*len(v.With) }

func (v ModuleOpenInfo) Equal(o ModuleOpenInfo) bool {
	return v.ok == o.ok && v.Package == o.Package && v.Flags == o.Flags && slices.Equal(v.To, o.To)
}

func (v ModuleExportInfo) Equal(o ModuleExportInfo) bool {
	return v.ok == o.ok && v.Package == o.Package && v.Flags == o.Flags && slices.Equal(v.To, o.To)
}

func (v ModuleProvideInfo) Equal(o ModuleProvideInfo) bool {
	return v.ok == o.ok && v.Service == o.Service && slices.Equal(v.With, o.With)
}

func (v ModuleRequireInfo) Encode(t *TableEncoder, m Mapper) error {
	module, err := Remap(m, v.Module)
	if err != nil {
		return err
	}
	version, err := remapOptional(m, v.Version)
	if err != nil {
		return err
	}
	enc := t.Next()
	enc.U2(uint16(module))
	enc.U2(v.Flags)
	enc.U2(uint16(version))
	return nil
}

func (v ModuleOpenInfo) Encode(t *TableEncoder, m Mapper) error {
	return encodePackageTargets(t, m, v.Package, v.Flags, v.To)
}

func (v ModuleExportInfo) Encode(t *TableEncoder, m Mapper) error {
	return encodePackageTargets(t, m, v.Package, v.Flags, v.To)
}

func (v ModuleProvideInfo) Encode(t *TableEncoder, m Mapper) error {
	service, err := Remap(m, v.Service)
	if err != nil {
		return err
	}
	enc := t.Next()
	enc.U2(uint16(service))
	return encodeHandleList(enc, v.With, m)
}

func encodePackageTargets(t *TableEncoder, m Mapper, pkg PackageRef, flags uint16, to []ModuleRef) error {
	pkg, err := Remap(m, pkg)
	if err != nil {
		return err
	}
	enc := t.Next()
	enc.U2(uint16(pkg))
	enc.U2(flags)
	return encodeHandleList(enc, to, m)
}

// ModuleAttribute describes a module: its identity and the requires,
// exports, opens, uses and provides tables.
type ModuleAttribute struct {
	Name     ModuleRef
	Flags    uint16
	Version  Utf8Ref
	Requires []ModuleRequireInfo
	Exports  []ModuleExportInfo
	Opens    []ModuleOpenInfo
	Uses     []ClassRef
	Provides []ModuleProvideInfo
	ok       bool
}

// NewModuleAttribute returns a non-nil module attribute with empty tables;
// fill them in before encoding.
func NewModuleAttribute(name ModuleRef, flags uint16, version Utf8Ref) ModuleAttribute {
	return ModuleAttribute{Name: name, Flags: flags, Version: version, ok: true}
}

func DecodeModuleAttribute(c *Cursor) (ModuleAttribute, error) {
	start := *c
	a, err := decodeModuleAttribute(c)
	if err != nil {
		*c = start
		return ModuleAttribute{}, err
	}
	return a, nil
}

func decodeModuleAttribute(c *Cursor) (a ModuleAttribute, err error) {
	r, err := c.Sub(6)
	if err != nil {
		return a, err
	}
	a.Name, _ = readHandle[ModuleRef](&r)
	a.Flags, _ = r.Uint16()
	a.Version, _ = readHandle[Utf8Ref](&r)

	if a.Requires, err = decodeTable(c, false, DecodeModuleRequireInfo); err != nil {
		return a, err
	}
	if a.Exports, err = decodeTable(c, false, DecodeModuleExportInfo); err != nil {
		return a, err
	}
	if a.Opens, err = decodeTable(c, false, DecodeModuleOpenInfo); err != nil {
		return a, err
	}
	if a.Uses, err = decodeHandleList[ClassRef](c); err != nil {
		return a, err
	}
	if a.Provides, err = decodeTable(c, false, DecodeModuleProvideInfo); err != nil {
		return a, err
	}
	a.ok = true
	return a, nil
}

// MeasureModuleAttribute returns the size of the Module attribute body at c
// by walking its tables without materializing them.
func MeasureModuleAttribute(c Cursor) (int, error) {
	start := c.Off()
	if err := c.Skip(6); err != nil {
		return 0, err
	}
	n, err := c.Uint16()
	if err != nil {
		return 0, err
	}
	if err := c.Skip(moduleRequireInfoSize * int(n)); err != nil {
		return 0, err
	}
	for _, measure := range []func(Cursor) (int, error){MeasureModuleExportInfo, MeasureModuleOpenInfo} {
		if err := skipMeasured(&c, measure); err != nil {
			return 0, err
		}
	}
	if _, err := measureHandleList(&c); err != nil {
		return 0, err
	}
	if err := skipMeasured(&c, MeasureModuleProvideInfo); err != nil {
		return 0, err
	}
	return c.Off() - start, nil
}

// skipMeasured advances c over a u2-counted table whose entries are sized by
// measure.
func skipMeasured(c *Cursor, measure func(Cursor) (int, error)) error {
	n, err := c.Uint16()
	if err != nil {
		return err
	}
	for i := 0; i < int(n); i++ {
		size, err := measure(*c)
		if err != nil {
			return err
		}
		_ = c.Skip(size)
	}
	return nil
}

func (a ModuleAttribute) AttributeName() string { return AttrModule }
func (a ModuleAttribute) IsNil() bool           { return !a.ok }

func (a ModuleAttribute) Size() int {
	return 6 +
		tableSize(false, a.Requires) +
		tableSize(false, a.Exports) +
		tableSize(false, a.Opens) +
		2 + 2*len(a.Uses) +
		tableSize(false, a.Provides)
}

func (a ModuleAttribute) Equal(b ModuleAttribute) bool {
	return a.ok == b.ok && a.Name == b.Name && a.Flags == b.Flags && a.Version == b.Version &&
		slices.Equal(a.Requires, b.Requires) &&
		slices.EqualFunc(a.Exports, b.Exports, ModuleExportInfo.Equal) &&
		slices.EqualFunc(a.Opens, b.Opens, ModuleOpenInfo.Equal) &&
		slices.Equal(a.Uses, b.Uses) &&
		slices.EqualFunc(a.Provides, b.Provides, ModuleProvideInfo.Equal)
}

func (a ModuleAttribute) Encode(t *AttributeTable, p Pool, m Mapper) error {
	name, err := Remap(m, a.Name)
	if err != nil {
		return err
	}
	version, err := remapOptional(m, a.Version)
	if err != nil {
		return err
	}
	enc, err := beginNamed(t, p, AttrModule, a.Size())
	if err != nil {
		return err
	}
	enc.U2(uint16(name))
	enc.U2(a.Flags)
	enc.U2(uint16(version))
	if err := encodeTable(enc, false, a.Requires, m); err != nil {
		return err
	}
	if err := encodeTable(enc, false, a.Exports, m); err != nil {
		return err
	}
	if err := encodeTable(enc, false, a.Opens, m); err != nil {
		return err
	}
	if err := encodeHandleList(enc, a.Uses, m); err != nil {
		return err
	}
	return encodeTable(enc, false, a.Provides, m)
}
