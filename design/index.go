package design

import "fmt"

// selfRef returns the rvalue text and fresh dependency set a derived
// indexing expression should start from: the signal's own name/self-dep
// for a plain signal, or its underlying memory-access rvalue text plus its
// existing dependencies (the address expression, not itself) for a
// memory-access signal.
func (s *Signal) selfRef() (string, map[string]*Signal) {
	if s.memory == nil {
		return s.name, map[string]*Signal{s.name: s}
	}
	deps := make(map[string]*Signal, len(s.deps))
	for k, v := range s.deps {
		deps[k] = v
	}
	return s.rvalueText(), deps
}

// Slice returns base[hi:lo], inclusive, MSB first or in either order (the
// larger is the MSB). Width is hi-lo+1, unsigned. If base has an lvalue,
// the slice carries a derived lvalue using identical index text, so a
// slice of a register can be partially assigned.
func (d *Design) Slice(base *Signal, hi, lo int) (*Signal, error) {
	if hi < lo {
		hi, lo = lo, hi
	}
	selfName, selfDeps := base.selfRef()
	sig := newAnonSignal(d, base.module)
	sig.memory = base.memory
	sig.width = hi - lo + 1
	for k, v := range selfDeps {
		sig.deps[k] = v
	}
	rv := fmt.Sprintf("%s[%d:%d]", selfName, hi, lo)
	sig.vlogRvalue = &rv
	if base.vlogLvalue != nil {
		lv := fmt.Sprintf("%s[%d:%d]", *base.vlogLvalue, hi, lo)
		sig.vlogLvalue = &lv
	}
	return sig, nil
}

// IndexedRange returns base[idx +: width] or base[idx -: width] depending
// on the sign of width (negative means "-:"); the emitted width is
// abs(width). idx may be a *Signal (materialized as a side effect) or an
// int; any other type is a TypeError.
func (d *Design) IndexedRange(base *Signal, idx Coercible, width int) (*Signal, error) {
	if _, isSlice := idx.(sliceMarker); isSlice {
		return nil, errType("trying to index signal %s with a tuple containing a slice", base.name)
	}
	updown := '+'
	if width < 0 {
		updown = '-'
	}
	w := absInt(width)

	selfName, selfDeps := base.selfRef()
	sig := newAnonSignal(d, base.module)
	sig.memory = base.memory
	sig.width = w
	for k, v := range selfDeps {
		sig.deps[k] = v
	}

	idxText, err := d.indexText(idx)
	if err != nil {
		return nil, err
	}

	rv := fmt.Sprintf("%s[%s %c: %d]", selfName, idxText, updown, w)
	sig.vlogRvalue = &rv
	if base.vlogLvalue != nil {
		lv := fmt.Sprintf("%s[%s %c: %d]", *base.vlogLvalue, idxText, updown, w)
		sig.vlogLvalue = &lv
	}
	return sig, nil
}

// sliceMarker is a sentinel type a caller can pass as the idx argument of
// IndexedRange to trigger a "slice inside an indexed-range tuple"
// TypeError; ordinary callers never construct one.
type sliceMarker struct{}

// Bit returns base[idx], a single bit, unsigned.
func (d *Design) Bit(base *Signal, idx Coercible) (*Signal, error) {
	selfName, selfDeps := base.selfRef()
	sig := newAnonSignal(d, base.module)
	sig.memory = base.memory
	sig.width = 1
	for k, v := range selfDeps {
		sig.deps[k] = v
	}

	idxText, err := d.indexText(idx)
	if err != nil {
		return nil, err
	}

	rv := fmt.Sprintf("%s[%s]", selfName, idxText)
	sig.vlogRvalue = &rv
	if base.vlogLvalue != nil {
		lv := fmt.Sprintf("%s[%s]", *base.vlogLvalue, idxText)
		sig.vlogLvalue = &lv
	}
	return sig, nil
}

// indexText renders idx as Verilog index text, materializing it if it is a
// *Signal.
func (d *Design) indexText(idx Coercible) (string, error) {
	switch v := idx.(type) {
	case *Signal:
		v.setMaterialize()
		return v.Name(), nil
	case int:
		return fmt.Sprintf("%d", v), nil
	default:
		return "", errType("trying to index signal with object of type %T", idx)
	}
}
