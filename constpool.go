package jclass

import (
	"fmt"
	"strconv"
)

type ConstKind uint8

const (
	ConstUtf8               ConstKind = 1
	ConstInteger            ConstKind = 3
	ConstFloat              ConstKind = 4
	ConstLong               ConstKind = 5
	ConstDouble             ConstKind = 6
	ConstClass              ConstKind = 7
	ConstString             ConstKind = 8
	ConstFieldref           ConstKind = 9
	ConstMethodref          ConstKind = 10
	ConstInterfaceMethodref ConstKind = 11
	ConstNameAndType        ConstKind = 12
	ConstMethodHandle       ConstKind = 15
	ConstMethodType         ConstKind = 16
	ConstDynamic            ConstKind = 17
	ConstInvokeDynamic      ConstKind = 18
	ConstModule             ConstKind = 19
	ConstPackage            ConstKind = 20
)

var constKindNames = [...]string{
	ConstUtf8:               "Utf8",
	ConstInteger:            "Integer",
	ConstFloat:              "Float",
	ConstLong:               "Long",
	ConstDouble:             "Double",
	ConstClass:              "Class",
	ConstString:             "String",
	ConstFieldref:           "Fieldref",
	ConstMethodref:          "Methodref",
	ConstInterfaceMethodref: "InterfaceMethodref",
	ConstNameAndType:        "NameAndType",
	ConstMethodHandle:       "MethodHandle",
	ConstMethodType:         "MethodType",
	ConstDynamic:            "Dynamic",
	ConstInvokeDynamic:      "InvokeDynamic",
	ConstModule:             "Module",
	ConstPackage:            "Package",
}

func (k ConstKind) String() string {
	if int(k) < len(constKindNames) && constKindNames[k] != "" {
		return constKindNames[k]
	}
	return "ConstKind(" + strconv.Itoa(int(k)) + ")"
}

// Handle is a typed constant-pool ordinal. The ordinal is only meaningful
// relative to the pool it was read from.
type Handle interface {
	~uint16
	Kind() ConstKind
}

type (
	Utf8Ref    uint16
	ClassRef   uint16
	ModuleRef  uint16
	PackageRef uint16
	StringRef  uint16
)

func (Utf8Ref) Kind() ConstKind    { return ConstUtf8 }
func (ClassRef) Kind() ConstKind   { return ConstClass }
func (ModuleRef) Kind() ConstKind  { return ConstModule }
func (PackageRef) Kind() ConstKind { return ConstPackage }
func (StringRef) Kind() ConstKind  { return ConstString }

func (h Utf8Ref) String() string    { return "#" + strconv.Itoa(int(h)) }
func (h ClassRef) String() string   { return "#" + strconv.Itoa(int(h)) }
func (h ModuleRef) String() string  { return "#" + strconv.Itoa(int(h)) }
func (h PackageRef) String() string { return "#" + strconv.Itoa(int(h)) }
func (h StringRef) String() string  { return "#" + strconv.Itoa(int(h)) }

// Constant is the subset of constant-pool entries that records reference.
// Utf8 entries carry Text; Class, Module, Package and String entries carry
// Name, the ordinal of their Utf8 entry.
type Constant struct {
	Kind ConstKind
	Text string
	Name Utf8Ref
}

func Utf8(s string) Constant { return Constant{Kind: ConstUtf8, Text: s} }

func (c Constant) String() string {
	switch c.Kind {
	case ConstUtf8:
		return fmt.Sprintf("Utf8 %q", c.Text)
	default:
		return fmt.Sprintf("%v %v", c.Kind, c.Name)
	}
}

// References reports whether the constant points at a Utf8 entry via Name.
func (c Constant) References() bool {
	switch c.Kind {
	case ConstClass, ConstModule, ConstPackage, ConstString:
		return true
	default:
		return false
	}
}

// View resolves ordinals into constants. Implementations decide how to treat
// out-of-range or wrong-kind ordinals; this package never checks them.
type View interface {
	Constant(kind ConstKind, idx uint16) (Constant, bool)
}

// Pool is a View that can allocate new entries. Intern returns the ordinal of
// an equal existing entry when there is one.
type Pool interface {
	View
	Intern(c Constant) (uint16, error)
}

// Mapper translates an ordinal of the given kind into another ordinal,
// usually one valid in a different pool.
type Mapper interface {
	MapConst(kind ConstKind, idx uint16) (uint16, error)
}

type MapperFunc func(kind ConstKind, idx uint16) (uint16, error)

func (f MapperFunc) MapConst(kind ConstKind, idx uint16) (uint16, error) {
	return f(kind, idx)
}

// Remap translates h through m, preserving its handle type.
func Remap[H Handle](m Mapper, h H) (H, error) {
	v, err := m.MapConst(h.Kind(), uint16(h))
	if err != nil {
		return 0, err
	}
	return H(v), nil
}

// Resolve looks h up in v.
func Resolve[H Handle](v View, h H) (Constant, bool) {
	return v.Constant(h.Kind(), uint16(h))
}

// Utf8Text returns the text of a Utf8 entry.
func Utf8Text(v View, h Utf8Ref) (string, bool) {
	c, ok := Resolve(v, h)
	if !ok || c.Kind != ConstUtf8 {
		return "", false
	}
	return c.Text, true
}

func InternUtf8(p Pool, s string) (Utf8Ref, error) {
	idx, err := p.Intern(Utf8(s))
	return Utf8Ref(idx), err
}
