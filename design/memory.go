package design

import "fmt"

// Memory is an addressable block-memory array: a Verilog "reg [w-1:0]
// mem[0:depth-1]" with an attached clock edge for its writes.
type Memory struct {
	name    string
	module  *Module
	codeloc string

	width  int
	depth  int
	signed bool

	posedge *Signal // exactly one of posedge/negedge is set
	negedge *Signal

	regactions []string // "if (wen) mem[idx] <= val;" lines, one per Assign
}

// Name returns the memory's Verilog identifier.
func (m *Memory) Name() string { return m.name }

// Width returns the memory's word width in bits.
func (m *Memory) Width() int { return m.width }

// Depth returns the memory's number of addressable words.
func (m *Memory) Depth() int { return m.depth }

// AddMemory declares a depth-entry memory of the given width (negative
// width means signed) in the currently open module context, clocked on
// exactly one of posedge or negedge (never neither, never both).
func (d *Design) AddMemory(name string, width, depth int, posedge, negedge *Signal) (*Memory, error) {
	if err := raiseOutsideContext(d, "AddMemory"); err != nil {
		return nil, err
	}
	if (posedge == nil) == (negedge == nil) {
		return nil, errStructural("AddMemory %s: exactly one of posedge/negedge must be given", name)
	}
	module := d.current.module
	if _, exists := module.memories[name]; exists {
		return nil, errNaming("memory", name)
	}

	mem := &Memory{
		name:    name,
		module:  module,
		codeloc: codeLoc(),
		width:   absInt(width),
		depth:   depth,
		signed:  width < 0,
		posedge: posedge,
		negedge: negedge,
	}
	module.memories[name] = mem
	module.memoryOrder = append(module.memoryOrder, name)
	return mem, nil
}

// Index returns a *Signal representing mem[addr], an rvalue-only
// expression node (memory accesses become lvalues only through Assign,
// which routes them to the memory's write-enable/regaction machinery
// instead of a plain vlogLvalue).
func (d *Design) Index(mem *Memory, addr Coercible) (*Signal, error) {
	idx, err := d.Sig(addr)
	if err != nil {
		return nil, err
	}
	sig := newAnonSignal(d, mem.module)
	sig.width = mem.width
	sig.signed = mem.signed
	sig.memory = mem
	rv := fmt.Sprintf("%s[%s]", mem.name, idx.name)
	sig.vlogRvalue = &rv
	for k, v := range idx.deps {
		sig.deps[k] = v
	}
	sig.deps[idx.name] = idx
	return sig, nil
}

func (mem *Memory) clockEdge() (edgeKeyword string, clock *Signal) {
	if mem.posedge != nil {
		return "posedge", mem.posedge
	}
	return "negedge", mem.negedge
}
