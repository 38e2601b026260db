package jclass

import "fmt"

// Identity maps every ordinal onto itself.
var Identity Mapper = MapperFunc(func(_ ConstKind, idx uint16) (uint16, error) {
	return idx, nil
})

// OffsetMapper relocates every ordinal by delta, e.g. when appending one pool
// after another. It fails if the result leaves the u2 range.
func OffsetMapper(delta int) Mapper {
	return MapperFunc(func(kind ConstKind, idx uint16) (uint16, error) {
		v := int(idx) + delta
		if v < 0 || v > 0xFFFF {
			return 0, fmt.Errorf("%v #%d relocated by %d is out of range", kind, idx, delta)
		}
		return uint16(v), nil
	})
}

type mapKey struct {
	kind ConstKind
	idx  uint16
}

// CopyMapper copies constants from one pool into another on demand.
// Mapping a handle resolves it in From, first maps any Utf8 entry it refers
// to, then interns the result into To. Results are memoized, so a CopyMapper
// is tied to one From/To pair and is not safe for concurrent use.
type CopyMapper struct {
	From View
	To   Pool

	memo map[mapKey]uint16
}

func NewCopyMapper(from View, to Pool) *CopyMapper {
	return &CopyMapper{From: from, To: to}
}

func (m *CopyMapper) MapConst(kind ConstKind, idx uint16) (uint16, error) {
	key := mapKey{kind, idx}
	if v, ok := m.memo[key]; ok {
		return v, nil
	}

	c, ok := m.From.Constant(kind, idx)
	if !ok {
		return 0, fmt.Errorf("cannot copy %v #%d: not found in source pool", kind, idx)
	}
	if c.Kind != kind {
		return 0, fmt.Errorf("cannot copy %v #%d: source entry is %v", kind, idx, c.Kind)
	}
	if c.References() {
		name, err := Remap(m, c.Name)
		if err != nil {
			return 0, fmt.Errorf("cannot copy %v #%d: %w", kind, idx, err)
		}
		c.Name = name
	}

	v, err := m.To.Intern(c)
	if err != nil {
		return 0, fmt.Errorf("cannot copy %v #%d: %w", kind, idx, err)
	}
	if m.memo == nil {
		m.memo = make(map[mapKey]uint16)
	}
	m.memo[key] = v
	return v, nil
}

// Len returns the number of distinct handles mapped so far.
func (m *CopyMapper) Len() int {
	return len(m.memo)
}
