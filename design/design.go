// Package design implements chipgo's RTL-building core: an expression
// graph over bit-vector signals, a procedural-block IR, a driver-set
// union-find, register/memory synthesis, bundles/interfaces, and a
// Verilog emitter.
package design

import "fmt"

// Design is an explicit handle for one RTL-building session: the module
// registry, the open-context stack, the pending-else slot, the auto-name
// counter, and the emitter configuration. Two *Design values never share
// state; a host program that wants independent designs on independent
// goroutines simply uses one *Design per goroutine.
type Design struct {
	modules     map[string]*Module
	moduleOrder []string

	current     *Context
	pendingElse *Context

	idCounter int

	config EmitterConfig
}

// New returns a fresh, empty Design using the default EmitterConfig.
func New() *Design {
	return &Design{
		modules: make(map[string]*Module),
		config:  defaultEmitterConfig(),
	}
}

// Config returns the Design's current emitter configuration.
func (d *Design) Config() EmitterConfig { return d.config }

// SetConfig replaces the Design's emitter configuration.
func (d *Design) SetConfig(cfg EmitterConfig) { d.config = cfg }

// autoName returns a strictly increasing, session-unique anonymous name of
// the form "__<n>".
func (d *Design) autoName() string {
	d.idCounter++
	return fmt.Sprintf("__%d", d.idCounter)
}

// Reset clears the module registry, pending-else slot, and auto-name
// counter. It is a ContextError to call Reset while any context is open.
func (d *Design) Reset() error {
	if d.current != nil {
		return errContext("Reset (context open)", codeLoc())
	}
	d.modules = make(map[string]*Module)
	d.moduleOrder = nil
	d.pendingElse = nil
	d.idCounter = 0
	return nil
}

// Module looks up an existing module by name, returning nil if none
// exists. If name is empty and a context is currently open, it returns
// the current context's module, used to recover "the module I'm
// currently building" from inside a callback.
func (d *Design) Module(name string) *Module {
	if name == "" {
		if d.current == nil {
			return nil
		}
		return d.current.module
	}
	return d.modules[name]
}

// AddModule creates and registers a new module. Module names are globally
// unique within one Design.
func (d *Design) AddModule(name string) (*Module, error) {
	if _, exists := d.modules[name]; exists {
		return nil, errNaming("module", name)
	}
	m := &Module{
		name:     name,
		design:   d,
		codeloc:  codeLoc(),
		signals:  make(map[string]*Signal),
		memories: make(map[string]*Memory),
	}
	d.modules[name] = m
	d.moduleOrder = append(d.moduleOrder, name)
	return m, nil
}

// WithModule opens m as the current context for the duration of body.
// Builder methods such as AddInput require an open module context;
// WithModule is how callers provide one.
func (d *Design) WithModule(m *Module, body func() error) error {
	ctx := newContext(m)
	if err := ctx.pushctx(d); err != nil {
		return err
	}
	err := body()
	ctx.popctx()
	return err
}

// Modules returns every module registered on d, in the order they were
// created.
func (d *Design) Modules() []*Module {
	out := make([]*Module, 0, len(d.moduleOrder))
	for _, name := range d.moduleOrder {
		out = append(out, d.modules[name])
	}
	return out
}
