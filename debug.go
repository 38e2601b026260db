package jclass

import (
	"fmt"
	"strings"
)

const indentStep = "  "

// DumpAttributes returns a human-readable listing of attrs, resolving
// names and references through v when possible.
func DumpAttributes(attrs []Attribute, v View) string {
	var buf strings.Builder
	for i, a := range attrs {
		dumpAttribute(&buf, "", i, a, v)
	}
	return buf.String()
}

func dumpAttribute(w *strings.Builder, prefix string, pos int, a Attribute, v View) {
	name := a.AttributeName()
	if u, ok := a.(UnknownAttribute); ok {
		name = refString(v, u.Name)
	}
	fmt.Fprintf(w, "%s%d: %s (%d bytes)\n", prefix, pos, name, a.Size())
	prefix += indentStep

	switch a := a.(type) {
	case SignatureAttribute:
		fmt.Fprintf(w, "%s%s\n", prefix, refString(v, a.Signature))
	case SourceFileAttribute:
		fmt.Fprintf(w, "%s%s\n", prefix, refString(v, a.SourceFile))
	case NestHostAttribute:
		fmt.Fprintf(w, "%s%s\n", prefix, refString(v, a.HostClass))
	case ModuleMainClassAttribute:
		fmt.Fprintf(w, "%s%s\n", prefix, refString(v, a.MainClass))
	case LineNumberTableAttribute:
		for _, e := range a.Entries {
			fmt.Fprintf(w, "%s%v\n", prefix, e)
		}
	case MethodParametersAttribute:
		for _, e := range a.Parameters {
			fmt.Fprintf(w, "%s%s flags=0x%04x\n", prefix, refString(v, e.Name), e.AccessFlags)
		}
	case ModuleAttribute:
		fmt.Fprintf(w, "%smodule %s flags=0x%04x version=%s\n", prefix, refString(v, a.Name), a.Flags, refString(v, a.Version))
		for _, e := range a.Requires {
			fmt.Fprintf(w, "%srequires %s flags=0x%04x version=%s\n", prefix, refString(v, e.Module), e.Flags, refString(v, e.Version))
		}
		for _, e := range a.Exports {
			fmt.Fprintf(w, "%sexports %s flags=0x%04x to %s\n", prefix, refString(v, e.Package), e.Flags, refsString(v, e.To))
		}
		for _, e := range a.Opens {
			fmt.Fprintf(w, "%sopens %s flags=0x%04x to %s\n", prefix, refString(v, e.Package), e.Flags, refsString(v, e.To))
		}
		for _, e := range a.Uses {
			fmt.Fprintf(w, "%suses %s\n", prefix, refString(v, e))
		}
		for _, e := range a.Provides {
			fmt.Fprintf(w, "%sprovides %s with %s\n", prefix, refString(v, e.Service), refsString(v, e.With))
		}
	case UnknownAttribute:
		fmt.Fprintf(w, "%s%x\n", prefix, a.Data)
	}
}

// refString renders h as its ordinal plus, when resolvable, its text. Class,
// Module and Package entries are shown by their names.
func refString[H interface {
	Handle
	fmt.Stringer
}](v View, h H) string {
	if h == 0 {
		return "-"
	}
	if v == nil {
		return h.String()
	}
	c, ok := Resolve(v, h)
	if !ok {
		return h.String() + "?"
	}
	if c.References() {
		if text, ok := Utf8Text(v, c.Name); ok {
			return fmt.Sprintf("%v(%s)", h, text)
		}
		return h.String()
	}
	return fmt.Sprintf("%v(%q)", h, c.Text)
}

func refsString[H interface {
	Handle
	fmt.Stringer
}](v View, hs []H) string {
	if len(hs) == 0 {
		return "*"
	}
	parts := make([]string, len(hs))
	for i, h := range hs {
		parts[i] = refString(v, h)
	}
	return strings.Join(parts, ", ")
}
