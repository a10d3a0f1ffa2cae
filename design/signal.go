package design

import "fmt"

// Signal is a node in the expression graph: an immutable bit-vector value
// that may also be an lvalue.
type Signal struct {
	name    string
	module  *Module // nil for constant literals
	codeloc string

	width  int
	signed bool

	register bool
	regassoc bool // non-nil regaction attached (AddFF/AddAsync already run)
	inport   bool
	outport  bool

	vlogRvalue *string // nil when the signal's own name is its rvalue (ports)
	vlogLvalue *string // nil when not assignable
	vlogReg    bool    // declared "reg" in Verilog

	memory *Memory // non-nil if this signal is a memory access expression

	materialize bool
	gotAssign   bool

	portalias *string

	deps map[string]*Signal // immediate operands, by name
}

// Coercible is anything Sig can turn into a *Signal: a *Signal itself, a
// []Coercible (concatenated MSB-first), a string name (looked up in the
// current open context's module), or an int (a 32-bit signed literal by
// default).
type Coercible any

func newSignal(module *Module, name string) *Signal {
	return &Signal{
		name:    name,
		module:  module,
		codeloc: codeLoc(),
		width:   1,
		deps:    make(map[string]*Signal),
	}
}

// newAnonSignal creates a signal with an auto-generated name in module.
// module may be nil (e.g. when every operand is a module-less literal), in
// which case the signal is not registered in any module (constants never
// go through this path).
func newAnonSignal(d *Design, module *Module) *Signal {
	name := d.autoName()
	sig := newSignal(module, name)
	if module != nil {
		module.signals[name] = sig
		module.signalOrder = append(module.signalOrder, name)
	}
	return sig
}

// Name returns the signal's Verilog rvalue name (which, for an anonymous
// expression node, is its auto-generated name — not its rvalue text).
func (s *Signal) Name() string { return s.name }

// Width returns the signal's bit width.
func (s *Signal) Width() int { return s.width }

// Signed reports the signal's signedness.
func (s *Signal) Signed() bool { return s.signed }

// Module returns the signal's owning module, or nil for a constant literal.
func (s *Signal) Module() *Module { return s.module }

// IsRegister reports whether the signal is flagged as a register: set by
// AddReg and by AddOutput (with or without an edge/async option), and
// cleared when Connect drives the signal as a slave.
func (s *Signal) IsRegister() bool { return s.register }

func (s *Signal) getDeps() map[string]*Signal {
	out := map[string]*Signal{s.name: s}
	for _, dep := range s.deps {
		for k, v := range dep.getDeps() {
			out[k] = v
		}
	}
	return out
}

// setMaterialize marks the signal (and transitively its deps) to be
// declared as a wire/reg/port in the emitted Verilog. Monotonic: once set,
// never cleared.
func (s *Signal) setMaterialize() {
	if s.materialize {
		return
	}
	s.materialize = true
	for _, dep := range s.deps {
		dep.setMaterialize()
	}
}

// rvalueText is the textual right-hand-side Verilog expression for this
// signal: its own name for ports/registers/plain signals, or its recorded
// expression text for derived expression nodes.
func (s *Signal) rvalueText() string {
	if s.vlogRvalue != nil {
		return *s.vlogRvalue
	}
	return s.name
}

func sameModule(sigs ...*Signal) (*Module, error) {
	var mod *Module
	for _, s := range sigs {
		if s == nil || s.module == nil {
			continue
		}
		if mod == nil {
			mod = s.module
		} else if mod != s.module {
			return nil, errStructural("operands from different modules: %s (module %s) vs module %s", s.name, s.module.name, mod.name)
		}
	}
	return mod, nil
}

// Sig coerces arg into a *Signal: an existing *Signal (optionally
// re-wrapped to a forced width/signedness via the variadic width
// parameter), a []Coercible (treated as a Concat, MSB-first), a string
// name, or an int (a literal whose width and signedness come from the
// EmitterConfig's DefaultLiteralWidth/DefaultLiteralSigned, 32-bit signed
// by default, unless width is given).
//
// A string name is looked up in the module of whichever context is
// currently open on d — not necessarily the module that actually owns
// the signal. Calling Sig("name") from inside the wrong module's context
// silently resolves to that module's same-named signal, or fails to find
// it at all. Callers building cross-module logic should prefer holding
// onto the *Signal value directly rather than re-resolving it by name.
func (d *Design) Sig(arg Coercible, width ...int) (*Signal, error) {
	switch v := arg.(type) {
	case *Signal:
		if len(width) == 0 {
			return v, nil
		}
		w := width[0]
		mod, err := sameModule(v)
		if err != nil {
			return nil, err
		}
		sig := newAnonSignal(d, mod)
		sig.signed = w < 0
		sig.width = absInt(w)
		rv := v.name
		sig.vlogRvalue = &rv
		sig.deps[v.name] = v
		return sig, nil

	case []Coercible:
		if len(width) != 0 {
			return nil, errType("when constructing Sig from a slice, width must not be given")
		}
		return d.Concat(v)

	case string:
		if len(width) != 0 {
			return nil, errType("when constructing Sig from a name, width must not be given")
		}
		if d.current == nil {
			return nil, errContext("Sig", codeLoc())
		}
		sig, ok := d.current.module.signals[v]
		if !ok {
			return nil, errNaming("signal", v)
		}
		return sig, nil

	case int:
		w := d.config.DefaultLiteralWidth
		if d.config.DefaultLiteralSigned {
			w = -w
		}
		if len(width) != 0 {
			w = width[0]
		}
		signed := w < 0
		aw := absInt(w)
		name := fmt.Sprintf("%d'%sd%d", aw, sOrEmpty(signed), v)
		sig := newSignal(nil, name)
		sig.signed = signed
		sig.width = aw
		return sig, nil
	}
	return nil, errType("cannot construct Sig from value of type %T", arg)
}

func sOrEmpty(signed bool) string {
	if signed {
		return "s"
	}
	return ""
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// --- unary / binary / comparison op builders ---

func (d *Design) unaryOp(vlogop string, a Coercible, signprop, logicout bool) (*Signal, error) {
	as, err := d.Sig(a)
	if err != nil {
		return nil, err
	}
	mod, err := sameModule(as)
	if err != nil {
		return nil, err
	}
	sig := newAnonSignal(d, mod)
	sig.signed = as.signed && signprop
	if !logicout {
		sig.width = as.width
	}
	rv := fmt.Sprintf("%s %s", vlogop, as.name)
	sig.vlogRvalue = &rv
	sig.deps[as.name] = as
	return sig, nil
}

func (d *Design) binaryOp(vlogop string, a, b Coercible, signprop, leftwidth bool) (*Signal, error) {
	as, err := d.Sig(a)
	if err != nil {
		return nil, err
	}
	bs, err := d.Sig(b)
	if err != nil {
		return nil, err
	}
	mod, err := sameModule(as, bs)
	if err != nil {
		return nil, err
	}
	sig := newAnonSignal(d, mod)
	if leftwidth {
		sig.width = as.width
		sig.signed = as.signed && signprop
	} else {
		sig.width = maxInt(as.width, bs.width)
		sig.signed = as.signed && bs.signed && signprop
	}
	rv := fmt.Sprintf("%s %s %s", as.name, vlogop, bs.name)
	sig.vlogRvalue = &rv
	sig.deps[as.name] = as
	sig.deps[bs.name] = bs
	return sig, nil
}

func (d *Design) cmpOp(vlogop string, a, b Coercible) (*Signal, error) {
	as, err := d.Sig(a)
	if err != nil {
		return nil, err
	}
	bs, err := d.Sig(b)
	if err != nil {
		return nil, err
	}
	mod, err := sameModule(as, bs)
	if err != nil {
		return nil, err
	}
	sig := newAnonSignal(d, mod)
	rv := fmt.Sprintf("%s %s %s", as.name, vlogop, bs.name)
	sig.vlogRvalue = &rv
	sig.deps[as.name] = as
	sig.deps[bs.name] = bs
	return sig, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Neg is two's-complement negation: unary "-".
func (d *Design) Neg(a Coercible) (*Signal, error) { return d.unaryOp("-", a, true, false) }

// Not is bitwise complement: unary "~".
func (d *Design) Not(a Coercible) (*Signal, error) { return d.unaryOp("~", a, true, false) }

// ReduceAnd is the unary reduction "&": width 1, unsigned.
func (d *Design) ReduceAnd(a Coercible) (*Signal, error) { return d.unaryOp("&", a, false, true) }

// ReduceOr is the unary reduction "|": width 1, unsigned.
func (d *Design) ReduceOr(a Coercible) (*Signal, error) { return d.unaryOp("|", a, false, true) }

// ReduceXor is the unary reduction "^": width 1, unsigned.
func (d *Design) ReduceXor(a Coercible) (*Signal, error) { return d.unaryOp("^", a, false, true) }

// Logic coerces a to a single-bit logical value ("|" reduction).
func (d *Design) Logic(a Coercible) (*Signal, error) { return d.unaryOp("|", a, false, true) }

// Add, Sub, Mul, Div, Mod, Pow: binary arithmetic/bitwise ops. Width is
// max(a.width, b.width); signed iff both operands are signed.
func (d *Design) Add(a, b Coercible) (*Signal, error) { return d.binaryOp("+", a, b, true, false) }
func (d *Design) Sub(a, b Coercible) (*Signal, error) { return d.binaryOp("-", a, b, true, false) }
func (d *Design) Mul(a, b Coercible) (*Signal, error) { return d.binaryOp("*", a, b, true, false) }
func (d *Design) Div(a, b Coercible) (*Signal, error) { return d.binaryOp("/", a, b, true, false) }
func (d *Design) Mod(a, b Coercible) (*Signal, error) { return d.binaryOp("%", a, b, true, false) }
func (d *Design) Pow(a, b Coercible) (*Signal, error) { return d.binaryOp("**", a, b, true, false) }
func (d *Design) And(a, b Coercible) (*Signal, error) { return d.binaryOp("&", a, b, true, false) }
func (d *Design) Or(a, b Coercible) (*Signal, error)  { return d.binaryOp("|", a, b, true, false) }
func (d *Design) Xor(a, b Coercible) (*Signal, error) { return d.binaryOp("^", a, b, true, false) }

// Shl, Shr: shifts. Width and signedness follow the left operand only.
func (d *Design) Shl(a, b Coercible) (*Signal, error) { return d.binaryOp("<<<", a, b, true, true) }
func (d *Design) Shr(a, b Coercible) (*Signal, error) { return d.binaryOp(">>>", a, b, true, true) }

// Lt, Le, Eq, Ne, Gt, Ge: comparisons, width 1, unsigned.
func (d *Design) Lt(a, b Coercible) (*Signal, error) { return d.cmpOp("<", a, b) }
func (d *Design) Le(a, b Coercible) (*Signal, error) { return d.cmpOp("<=", a, b) }
func (d *Design) Eq(a, b Coercible) (*Signal, error) { return d.cmpOp("==", a, b) }
func (d *Design) Ne(a, b Coercible) (*Signal, error) { return d.cmpOp("!=", a, b) }
func (d *Design) Gt(a, b Coercible) (*Signal, error) { return d.cmpOp(">", a, b) }
func (d *Design) Ge(a, b Coercible) (*Signal, error) { return d.cmpOp(">=", a, b) }

// Cond is a ternary select: cond ? ifVal : elseVal. Width is
// max(ifVal.width, elseVal.width); signed iff both branches are signed.
func (d *Design) Cond(cond, ifVal, elseVal Coercible) (*Signal, error) {
	cs, err := d.Sig(cond)
	if err != nil {
		return nil, err
	}
	is, err := d.Sig(ifVal)
	if err != nil {
		return nil, err
	}
	es, err := d.Sig(elseVal)
	if err != nil {
		return nil, err
	}
	mod, err := sameModule(cs, is, es)
	if err != nil {
		return nil, err
	}
	sig := newAnonSignal(d, mod)
	sig.signed = is.signed && es.signed
	sig.width = maxInt(is.width, es.width)
	rv := fmt.Sprintf("%s ? %s : %s", cs.name, is.name, es.name)
	sig.vlogRvalue = &rv
	sig.deps[cs.name] = cs
	sig.deps[is.name] = is
	sig.deps[es.name] = es
	return sig, nil
}
