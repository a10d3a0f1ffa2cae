package design

// Context is a node on the open-context stack, representing an open
// procedural scope (If/Else/Switch/Case/...). A Context either inherits
// its parent's snippet (so If/ElseIf/Else share one snippet and coalesce
// into a single always block) or, if it is the first context to emit a
// line, creates a new Snippet and appends it to its module's code
// snippets.
type Context struct {
	design  *Design
	module  *Module
	snippet *Snippet
	parent  *Context
	open    bool
}

func newContext(module *Module) *Context {
	return &Context{module: module}
}

func (c *Context) addLine(line string, lvalues map[string]*Signal) error {
	if !c.open {
		return errStructural("trying to add a line to a closed context")
	}
	if c.snippet == nil {
		c.snippet = newSnippet(c.design.config.IndentUnit)
		c.module.codeSnippets = append(c.module.codeSnippets, c.snippet)
	}
	for name, sig := range lvalues {
		c.snippet.lvalueSignals[name] = sig
	}
	c.snippet.textLines = append(c.snippet.textLines, c.snippet.indentStr+line)
	return nil
}

func (c *Context) addIndent() error {
	if !c.open {
		return errStructural("trying to indent a closed context")
	}
	c.snippet.indentStr += c.design.config.IndentUnit
	return nil
}

func (c *Context) removeIndent() error {
	if !c.open {
		return errStructural("trying to dedent a closed context")
	}
	unit := len(c.design.config.IndentUnit)
	if len(c.snippet.indentStr) >= unit {
		c.snippet.indentStr = c.snippet.indentStr[unit:]
	}
	return nil
}

// pushctx opens c on d's context stack. Re-pushing an already-open context
// is a ContextError. A Context with module==nil inherits its parent's
// module/snippet when pushed — this is how a block's body (e.g. an Assign
// inside an If) writes into the enclosing block's snippet.
func (c *Context) pushctx(d *Design) error {
	if c.open {
		return errContext("pushctx (already open)", codeLoc())
	}
	c.design = d
	c.parent = d.current
	if c.module == nil {
		if c.parent == nil {
			return errContext("pushctx (no enclosing module)", codeLoc())
		}
		c.module = c.parent.module
		c.snippet = c.parent.snippet
	}
	c.open = true
	d.current = c
	log.WithField("module", c.module.name).Trace("context pushed")
	return nil
}

func (c *Context) popctx() {
	c.design.current = c.parent
	c.parent = nil
	c.open = false
	log.Trace("context popped")
}

// blockOn runs body between an emitted begin-line and end-line on an
// existing (possibly previously pushed-and-popped) ctx, pushing,
// indenting, running body, then dedenting and closing. Reusing the same
// ctx object across calls is what lets If/ElseIf/Else share one snippet:
// a Context with a non-nil module keeps its snippet on re-push instead of
// inheriting a fresh one from its new parent.
func blockOn(d *Design, ctx *Context, begin, end string, body func() error) error {
	if err := ctx.pushctx(d); err != nil {
		return err
	}
	if err := ctx.addLine(begin, nil); err != nil {
		return err
	}
	if err := ctx.addIndent(); err != nil {
		return err
	}
	bodyErr := body()
	if err := ctx.removeIndent(); err != nil {
		return err
	}
	if err := ctx.addLine(end, nil); err != nil {
		return err
	}
	ctx.popctx()
	return bodyErr
}

// block runs body in a freshly created Context, used by If, Switch, Case
// and Default (ElseIf/Else instead reuse the If's Context via blockOn, to
// share a snippet across the chain).
func (d *Design) block(module *Module, begin, end string, body func() error) (*Context, error) {
	ctx := newContext(module)
	err := blockOn(d, ctx, begin, end, body)
	return ctx, err
}

// raiseOutsideContext returns a ContextError if d has no open context.
func raiseOutsideContext(d *Design, op string) error {
	if d.current == nil {
		return errContext(op, codeLoc())
	}
	return nil
}
