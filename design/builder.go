package design

import "fmt"

// RegOpts carries the optional synchronization arguments shared by
// AddReg/AddOutput/AddPort: exactly one of Posedge/Negedge selects an
// edge-triggered flop, NoDefault selects that flop's 'bx default
// next-value instead of the hold value, and Async selects combinational
// feedback instead of an edge (always 'bx-initialized; NoDefault has no
// effect on an Async register).
type RegOpts struct {
	Posedge   *Signal
	Negedge   *Signal
	NoDefault bool
	Async     bool
}

func (o RegOpts) hasEdge() bool { return o.Posedge != nil || o.Negedge != nil }

// AddInput declares a plain input port of the given width (negative width
// means signed) in the currently open module context.
func (d *Design) AddInput(name string, width int) (*Signal, error) {
	if err := raiseOutsideContext(d, "AddInput"); err != nil {
		return nil, err
	}
	module := d.current.module
	if _, exists := module.signals[name]; exists {
		return nil, errNaming("signal", name)
	}
	sig := newSignal(module, name)
	sig.width = absInt(width)
	sig.signed = width < 0
	sig.inport = true
	module.signals[name] = sig
	module.signalOrder = append(module.signalOrder, name)
	sig.setMaterialize()
	return sig, nil
}

// AddOutput declares an output port. With no edge/async option it is an
// output wire meant to be driven structurally (see Connect); with an edge
// or Async option it is AddReg wearing the outport flag.
func (d *Design) AddOutput(name string, width int, opts RegOpts) (*Signal, error) {
	if err := raiseOutsideContext(d, "AddOutput"); err != nil {
		return nil, err
	}
	module := d.current.module
	if _, exists := module.signals[name]; exists {
		return nil, errNaming("signal", name)
	}
	sig := newSignal(module, name)
	sig.width = absInt(width)
	sig.signed = width < 0
	sig.outport = true
	sig.register = true
	lv := "__next__" + name
	sig.vlogLvalue = &lv
	module.signals[name] = sig
	module.signalOrder = append(module.signalOrder, name)
	sig.setMaterialize()

	if opts.hasEdge() {
		if err := d.AddFF(sig, opts.Posedge, opts.Negedge, opts.NoDefault); err != nil {
			return nil, err
		}
	}
	if opts.Async {
		if err := d.AddAsync(sig); err != nil {
			return nil, err
		}
	}
	return sig, nil
}

// AddReg declares a register: a signal whose rvalue is its current value
// and whose lvalue is the shadow "__next__<name>" next-value, synthesized
// by AddFF (edge-triggered) or AddAsync (combinational feedback) if
// opts carries Posedge/Negedge/Async.
func (d *Design) AddReg(name string, width int, opts RegOpts) (*Signal, error) {
	if err := raiseOutsideContext(d, "AddReg"); err != nil {
		return nil, err
	}
	module := d.current.module
	if _, exists := module.signals[name]; exists {
		return nil, errNaming("signal", name)
	}
	sig := newSignal(module, name)
	sig.width = absInt(width)
	sig.signed = width < 0
	sig.register = true
	lv := "__next__" + name
	sig.vlogLvalue = &lv
	module.signals[name] = sig
	module.signalOrder = append(module.signalOrder, name)
	sig.setMaterialize()

	if opts.hasEdge() {
		if err := d.AddFF(sig, opts.Posedge, opts.Negedge, opts.NoDefault); err != nil {
			return nil, err
		}
	}
	if opts.Async {
		if err := d.AddAsync(sig); err != nil {
			return nil, err
		}
	}
	return sig, nil
}

// AddFF synthesizes an edge-triggered flip-flop for signal: an init
// snippet holding the default next-value (the hold value, or 'bx if
// NoDefault), and a module-level "always @(posedge/negedge clk) q <=
// __next__q;" regaction line. Exactly one of posedge/negedge must be
// given. The negedge line names the negedge clock signal itself, not the
// posedge clock.
func (d *Design) AddFF(signal *Signal, posedge, negedge *Signal, noDefault bool) error {
	if !signal.register {
		return errStructural("AddFF called on non-register signal %s", signal.name)
	}
	if signal.regassoc {
		return errStructural("AddFF called on register %s with regaction already set", signal.name)
	}
	if (posedge == nil) == (negedge == nil) {
		return errStructural("AddFF %s: exactly one of posedge/negedge must be given", signal.name)
	}

	snippet := newSnippet(d.config.IndentUnit)
	loc := codeLoc()
	if noDefault {
		snippet.textLines = append(snippet.textLines, fmt.Sprintf("%s%s = %d'bx; // %s", snippet.indentStr, *signal.vlogLvalue, signal.width, loc))
	} else {
		snippet.textLines = append(snippet.textLines, fmt.Sprintf("%s%s = %s; // %s", snippet.indentStr, *signal.vlogLvalue, signal.name, loc))
	}
	snippet.lvalueSignals[signal.name] = signal
	signal.module.initSnippets = append(signal.module.initSnippets, snippet)

	if posedge != nil {
		signal.module.regactions = append(signal.module.regactions,
			fmt.Sprintf("  always @(posedge %s) %s <= %s; // %s", posedge.name, signal.name, *signal.vlogLvalue, loc))
	} else {
		signal.module.regactions = append(signal.module.regactions,
			fmt.Sprintf("  always @(negedge %s) %s <= %s; // %s", negedge.name, signal.name, *signal.vlogLvalue, loc))
	}
	signal.vlogReg = true
	signal.regassoc = true
	return nil
}

// AddAsync synthesizes combinational feedback for signal: an init
// snippet holding an 'bx default next-value, and a module-level
// "assign q = __next__q;" regaction line.
func (d *Design) AddAsync(signal *Signal) error {
	if !signal.register {
		return errStructural("AddAsync called on non-register signal %s", signal.name)
	}
	if signal.regassoc {
		return errStructural("AddAsync called on register %s with regaction already set", signal.name)
	}

	snippet := newSnippet(d.config.IndentUnit)
	loc := codeLoc()
	snippet.textLines = append(snippet.textLines, fmt.Sprintf("%s%s = %d'bx; // %s", snippet.indentStr, *signal.vlogLvalue, signal.width, loc))
	snippet.lvalueSignals[signal.name] = signal
	signal.module.initSnippets = append(signal.module.initSnippets, snippet)

	signal.module.regactions = append(signal.module.regactions,
		fmt.Sprintf("  assign %s = %s; // %s", signal.name, *signal.vlogLvalue, loc))
	signal.regassoc = true
	return nil
}

// AddInst instantiates a submodule: materializes its ports as local
// signals via the submodule's own Interface (role "parent"), clears their
// inport/outport flags since they are local signals in the parent's
// scope, and records the instance for emission.
func (d *Design) AddInst(name string, submodule *Module) (Bundle, error) {
	if err := raiseOutsideContext(d, "AddInst"); err != nil {
		return Bundle{}, err
	}
	module := d.current.module

	bundle, err := d.AddPort(name, submodule.Interface(""), "parent", RegOpts{})
	if err != nil {
		return Bundle{}, err
	}
	clearPortFlags(bundle)

	module.instances = append(module.instances, instance{
		name:     name,
		typeName: submodule.name,
		ports:    bundle,
		codeloc:  codeLoc(),
	})
	return bundle, nil
}

func clearPortFlags(b Bundle) {
	for _, name := range b.Keys() {
		switch m := b.Get(name).(type) {
		case *Signal:
			m.inport = false
			m.outport = false
		case Bundle:
			clearPortFlags(m)
		}
	}
}

// Concat returns the MSB-first concatenation of sigs: width is the sum of
// operand widths, unsigned. The owning module is inferred from the
// operands, falling back to the current open context's module if none of
// the operands has one (e.g. all are literals).
func (d *Design) Concat(sigs []Coercible) (*Signal, error) {
	var module *Module

	width := 0
	rvalues := make([]string, 0, len(sigs))
	lvalues := make([]string, 0, len(sigs))
	lvaluesOK := true
	deps := make(map[string]*Signal)

	for _, raw := range sigs {
		sig, err := d.Sig(raw)
		if err != nil {
			return nil, err
		}
		if module == nil {
			module = sig.module
		} else if sig.module != nil && sig.module != module {
			return nil, errStructural("Concat: %s is in module %s, not module %s", sig.name, sig.module.name, module.name)
		}
		if sig.vlogLvalue == nil {
			lvaluesOK = false
		} else if lvaluesOK {
			lvalues = append(lvalues, *sig.vlogLvalue)
		}
		width += sig.width
		rvalues = append(rvalues, sig.name)
		deps[sig.name] = sig
	}

	if module == nil && d.current != nil {
		module = d.current.module
	}
	if module == nil {
		return nil, errStructural("cannot infer module in Concat: call from within a module context or concatenate at least one signal that has one")
	}

	sig := newAnonSignal(d, module)
	sig.width = width
	rv := "{" + joinComma(rvalues) + "}"
	sig.vlogRvalue = &rv
	if lvaluesOK && len(lvalues) > 0 {
		lv := "{" + joinComma(lvalues) + "}"
		sig.vlogLvalue = &lv
	}
	for k, v := range deps {
		sig.deps[k] = v
	}
	return sig, nil
}

// Repeat returns the num-fold replication of sig: width num*sig.width,
// unsigned.
func (d *Design) Repeat(num int, sig Coercible) (*Signal, error) {
	s, err := d.Sig(sig)
	if err != nil {
		return nil, err
	}
	var module *Module
	if d.current != nil {
		module = d.current.module
	} else {
		module = s.module
	}
	out := newAnonSignal(d, module)
	out.width = num * s.width
	rv := fmt.Sprintf("{%d{%s}}", num, s.name)
	out.vlogRvalue = &rv
	out.deps[s.name] = s
	return out, nil
}

func joinComma(ss []string) string {
	out := ""
	for i, s := range ss {
		if i > 0 {
			out += ","
		}
		out += s
	}
	return out
}
