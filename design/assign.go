package design

import "fmt"

// Assign records a procedural assignment lhs = rhs inside the currently
// open context, or (lhs, rhs both Bundle) recurses member-by-member. A
// memory-indexed lhs is routed to the memory's write-enable/regaction
// machinery instead of a plain procedural line.
func (d *Design) Assign(lhs, rhs any) error {
	if lb, ok := lhs.(Bundle); ok {
		rb, ok := rhs.(Bundle)
		if !ok {
			return errStructural("Assign: lhs is a Bundle, rhs must be a Bundle too")
		}
		for _, name := range lb.Keys() {
			rm := rb.Get(name)
			if rm == nil {
				return errStructural("Assign: rhs bundle missing member %q", name)
			}
			if err := d.Assign(lb.Get(name), rm); err != nil {
				return err
			}
		}
		return nil
	}
	if _, ok := rhs.(Bundle); ok {
		return errStructural("Assign: rhs is a Bundle, lhs must be a Bundle too")
	}

	lsig, err := d.Sig(lhs)
	if err != nil {
		return err
	}
	rsig, err := d.Sig(rhs)
	if err != nil {
		return err
	}
	rsig.setMaterialize()

	if lsig.memory != nil {
		module := lsig.module
		wen := newAnonSignal(d, module)
		wen.vlogReg = true
		wen.gotAssign = true
		wen.setMaterialize()

		loc := codeLoc()
		snippet := newSnippet(d.config.IndentUnit)
		snippet.textLines = append(snippet.textLines, snippet.indentStr+fmt.Sprintf("%s = 1'b0; // %s", wen.name, loc))
		snippet.lvalueSignals[wen.name] = wen
		module.initSnippets = append(module.initSnippets, snippet)

		ctx := newContext(nil)
		if err := ctx.pushctx(d); err != nil {
			return err
		}
		if err := ctx.addLine(fmt.Sprintf("%s = 1'b1; // %s", wen.name, codeLoc()), wen.getDeps()); err != nil {
			ctx.popctx()
			return err
		}
		ctx.popctx()

		lsig.memory.regactions = append(lsig.memory.regactions,
			fmt.Sprintf("if (%s) %s <= %s; // %s", wen.name, lsig.rvalueText(), rsig.name, loc))
		return nil
	}

	ctx := newContext(nil)
	if err := ctx.pushctx(d); err != nil {
		return err
	}
	defer ctx.popctx()

	if lsig.vlogLvalue == nil {
		return errType("Assign: %s has no lvalue", lsig.name)
	}
	lhsDeps := lsig.getDeps()
	for _, dep := range lhsDeps {
		dep.gotAssign = true
	}
	return ctx.addLine(fmt.Sprintf("%s = %s; // %s", *lsig.vlogLvalue, rsig.name, codeLoc()), lhsDeps)
}

// Connect structurally wires together a group of signals or same-shaped
// bundles: the one signal that is a candidate master (not a register, or
// a register already driven by AddFF/AddAsync/Assign) drives every other
// (slave) signal via a module-level "assign slave = master;" line. It is
// a StructuralError if zero or more than one candidate master is found.
func (d *Design) Connect(sigs ...any) error {
	if err := raiseOutsideContext(d, "Connect"); err != nil {
		return err
	}
	if len(sigs) < 2 {
		return errStructural("Connect requires at least two signals")
	}

	if _, ok := sigs[0].(Bundle); ok {
		bundles := make([]Bundle, len(sigs))
		for i, s := range sigs {
			b, ok := s.(Bundle)
			if !ok {
				return errStructural("Connect: can only connect bundles with other bundles")
			}
			bundles[i] = b
		}
		for _, name := range bundles[0].Keys() {
			members := make([]any, len(bundles))
			for i, b := range bundles {
				m := b.Get(name)
				if m == nil {
					return errStructural("Connect: bundle missing member %q", name)
				}
				members[i] = m
			}
			if err := d.Connect(members...); err != nil {
				return err
			}
		}
		return nil
	}

	signals := make([]*Signal, len(sigs))
	for i, s := range sigs {
		if _, isBundle := s.(Bundle); isBundle {
			return errStructural("Connect: can only connect bundles with other bundles")
		}
		sig, ok := s.(*Signal)
		if !ok {
			return errType("Connect: expected *Signal or Bundle, got %T", s)
		}
		signals[i] = sig
	}

	isCandidateMaster := func(s *Signal) bool { return !s.register || s.regassoc || s.gotAssign }

	var masters []*Signal
	var slaves []*Signal
	for _, s := range signals {
		if isCandidateMaster(s) {
			masters = append(masters, s)
		} else {
			slaves = append(slaves, s)
		}
	}
	if len(masters) == 0 {
		return errStructural("Connect: could not identify a master signal")
	}
	if len(masters) > 1 {
		names := ""
		for i, m := range masters {
			if i > 0 {
				names += ","
			}
			names += m.name
		}
		return errStructural("Connect: multiple possible masters: %s", names)
	}
	master := masters[0]
	module := d.current.module

	for _, slave := range slaves {
		module.regactions = append(module.regactions,
			fmt.Sprintf("  assign %s = %s; // %s", slave.name, master.name, codeLoc()))
		alias := master.name
		slave.portalias = &alias
		slave.register = false
		slave.regassoc = false
		slave.gotAssign = false
		slave.vlogReg = false
		slave.vlogLvalue = nil
	}
	return nil
}
