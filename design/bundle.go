package design

// Member is anything a Bundle may hold: a *Signal, a nested Bundle, or
// (in bundles built by AddMemoryPort) a *Memory.
type Member any

// Bundle is an ordered, named tree of signals and sub-bundles.
type Bundle struct {
	order   []string
	members map[string]Member
}

// NewBundle returns an empty Bundle.
func NewBundle() Bundle {
	return Bundle{members: make(map[string]Member)}
}

// Add inserts or overwrites member under name, appending name to the
// iteration order on first insertion.
func (b *Bundle) Add(name string, member Member) {
	if _, exists := b.members[name]; !exists {
		b.order = append(b.order, name)
	}
	b.members[name] = member
}

// Get returns the member stored under name, or nil if absent.
func (b Bundle) Get(name string) Member {
	return b.members[name]
}

// Keys returns the bundle's member names in insertion order.
func (b Bundle) Keys() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Len returns the number of members in the bundle.
func (b Bundle) Len() int { return len(b.order) }

// Regs recursively filters the bundle to members that are registers
// (register Signals, or sub-bundles of registers).
func (b Bundle) Regs() Bundle {
	out := NewBundle()
	for _, name := range b.order {
		switch m := b.members[name].(type) {
		case Bundle:
			out.Add(name, m.Regs())
		case *Signal:
			if m.register {
				out.Add(name, m)
			}
		}
	}
	return out
}

// NonRegs recursively filters the bundle to members that are not
// registers.
func (b Bundle) NonRegs() Bundle {
	out := NewBundle()
	for _, name := range b.order {
		switch m := b.members[name].(type) {
		case Bundle:
			out.Add(name, m.NonRegs())
		case *Signal:
			if !m.register {
				out.Add(name, m)
			}
		}
	}
	return out
}

// Index broadcasts an index/slice operation over every member of the
// bundle, returning a new Bundle of the per-member results. indexFn is
// typically a closure over (*Design).Bit, .Slice, or .IndexedRange.
func (b Bundle) Index(indexFn func(Member) (Member, error)) (Bundle, error) {
	out := NewBundle()
	for _, name := range b.order {
		switch m := b.members[name].(type) {
		case Bundle:
			sub, err := m.Index(indexFn)
			if err != nil {
				return Bundle{}, err
			}
			out.Add(name, sub)
		default:
			res, err := indexFn(m)
			if err != nil {
				return Bundle{}, err
			}
			out.Add(name, res)
		}
	}
	return out, nil
}

// ZipEntry is one column of a Zip: the member name and the per-bundle
// values collected under it.
type ZipEntry struct {
	Name   string
	Values []Member
}

// Zip transposes a list of same-shaped bundles into, for each member
// name, the list of that member's value across every input bundle. It
// requires every bundle to share the same set of member names.
func Zip(bundles []Bundle) ([]ZipEntry, error) {
	if len(bundles) == 0 {
		return nil, nil
	}
	first := bundles[0]
	for _, b := range bundles[1:] {
		if len(b.order) != len(first.order) {
			return nil, errStructural("Zip: bundles have different shapes")
		}
		for _, name := range first.order {
			if _, ok := b.members[name]; !ok {
				return nil, errStructural("Zip: bundle missing member %q", name)
			}
		}
	}
	out := make([]ZipEntry, 0, len(first.order))
	for _, name := range first.order {
		values := make([]Member, len(bundles))
		for i, b := range bundles {
			values[i] = b.members[name]
		}
		out = append(out, ZipEntry{Name: name, Values: values})
	}
	return out, nil
}
