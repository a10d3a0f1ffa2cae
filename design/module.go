package design

import "sort"

// instance records one submodule instantiation: its local name, the type
// (submodule) name, the bundle of local signals standing in for its
// ports, and the source location of the AddInst call.
type instance struct {
	name     string
	typeName string
	ports    Bundle
	codeloc  string
}

// Module is a container of signals, memories, instances, and procedural
// code, identified by a name unique within its owning Design.
type Module struct {
	name    string
	design  *Design
	codeloc string

	signals     map[string]*Signal
	signalOrder []string

	memories    map[string]*Memory
	memoryOrder []string

	instances []instance

	regactions []string // raw synchronous-update / Connect-generated assign lines

	initSnippets []*Snippet
	codeSnippets []*Snippet
}

// Name returns the module's Verilog module name.
func (m *Module) Name() string { return m.name }

// Design returns the Design that owns this module.
func (m *Module) Design() *Design { return m.design }

// Signal looks up a signal by name within this module.
func (m *Module) Signal(name string) (*Signal, bool) {
	s, ok := m.signals[name]
	return s, ok
}

// sortedSignalNames returns the module's signal names in sorted order,
// the order used for wire/reg declaration emission.
func (m *Module) sortedSignalNames() []string {
	names := make([]string, 0, len(m.signals))
	for n := range m.signals {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (m *Module) sortedMemoryNames() []string {
	names := make([]string, 0, len(m.memories))
	for n := range m.memories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Interface returns an Interface callback that re-exposes this module's
// own input/output ports (filtered by the optional name prefix), useful
// for treating an already-built module as a reusable port shape.
func (m *Module) Interface(prefix string) Interface {
	return func(addport AddPortFunc, role string) error {
		for _, signame := range m.sortedSignalNames() {
			signal := m.signals[signame]
			if !(signal.inport || signal.outport) {
				continue
			}
			if len(signame) < len(prefix) || signame[:len(prefix)] != prefix {
				continue
			}
			output := (signal.inport && role == "parent") || (signal.outport && role == "child")
			width := signal.width
			if signal.signed {
				width = -width
			}
			if err := addport(signame[len(prefix):], width, PortOpts{Output: output}); err != nil {
				return err
			}
		}
		return nil
	}
}

// AsBundle returns a Bundle of this module's own signals (filtered by the
// optional name prefix).
func (m *Module) AsBundle(prefix string) Bundle {
	b := NewBundle()
	for _, signame := range m.sortedSignalNames() {
		if len(signame) < len(prefix) || signame[:len(prefix)] != prefix {
			continue
		}
		b.Add(signame[len(prefix):], m.signals[signame])
	}
	return b
}
