package design

import "fmt"

// If opens an "if (cond) begin ... end" block, running body with the
// block's context current. On success, the block's Context becomes the
// pending else target for a following ElseIf/Else.
func (d *Design) If(cond Coercible, body func() error) error {
	d.pendingElse = nil
	c, err := d.Sig(cond)
	if err != nil {
		return err
	}
	c.setMaterialize()
	ctx, err := d.block(nil, fmt.Sprintf("if (%s) begin // %s", c.name, codeLoc()), "end", body)
	if err != nil {
		return err
	}
	d.pendingElse = ctx
	return nil
}

// ElseIf extends the most recently opened If/ElseIf with an
// "else if (cond) begin ... end" clause, reusing that block's Context (and
// therefore its snippet) so the whole chain coalesces into one always
// block. It is a ContextError if no If/ElseIf is pending.
func (d *Design) ElseIf(cond Coercible, body func() error) error {
	prev := d.pendingElse
	d.pendingElse = nil
	if prev == nil {
		return errContext("ElseIf (no matching If/ElseIf)", codeLoc())
	}
	c, err := d.Sig(cond)
	if err != nil {
		return err
	}
	c.setMaterialize()
	if err := blockOn(d, prev, fmt.Sprintf("else if (%s) begin // %s", c.name, codeLoc()), "end", body); err != nil {
		return err
	}
	d.pendingElse = prev
	return nil
}

// Else closes the most recently opened If/ElseIf chain with a final
// "else begin ... end" clause, reusing that chain's Context. It is a
// ContextError if no If/ElseIf is pending.
func (d *Design) Else(body func() error) error {
	prev := d.pendingElse
	d.pendingElse = nil
	if prev == nil {
		return errContext("Else (no matching If/ElseIf)", codeLoc())
	}
	err := blockOn(d, prev, fmt.Sprintf("else begin // %s", codeLoc()), "end", body)
	d.pendingElse = nil
	return err
}

// Switch opens a "case (expr) ... endcase" block. parallel/full emit the
// corresponding synthesis pragma as the first line inside the block. A
// pragma is emitted when the caller passes true, or when the caller passes
// false but the Design's EmitterConfig defaults that pragma on
// (SwitchParallelCase/SwitchFullCase) — the config value is a fallback,
// not an override, so an explicit true is never suppressed by it. body is
// expected to call Case/Default one or more times.
func (d *Design) Switch(expr Coercible, parallel, full bool, body func() error) error {
	d.pendingElse = nil
	e, err := d.Sig(expr)
	if err != nil {
		return err
	}
	e.setMaterialize()
	parallel = parallel || d.config.SwitchParallelCase
	full = full || d.config.SwitchFullCase
	begin := fmt.Sprintf("case (%s) // %s", e.name, codeLoc())
	_, err = d.block(nil, begin, "endcase", func() error {
		if parallel {
			if err := d.current.addLine("(* parallel_case *)", nil); err != nil {
				return err
			}
		}
		if full {
			if err := d.current.addLine("(* full_case *)", nil); err != nil {
				return err
			}
		}
		if err := body(); err != nil {
			return err
		}
		d.pendingElse = nil
		return nil
	})
	return err
}

// Case opens one "expr: begin ... end" arm of an enclosing Switch.
func (d *Design) Case(expr Coercible, body func() error) error {
	e, err := d.Sig(expr)
	if err != nil {
		return err
	}
	e.setMaterialize()
	d.pendingElse = nil
	_, err = d.block(nil, fmt.Sprintf("%s: begin // %s", e.name, codeLoc()), "end", body)
	d.pendingElse = nil
	return err
}

// Default opens the "default: begin ... end" arm of an enclosing Switch.
func (d *Design) Default(body func() error) error {
	d.pendingElse = nil
	_, err := d.block(nil, fmt.Sprintf("default: begin // %s", codeLoc()), "end", body)
	d.pendingElse = nil
	return err
}
