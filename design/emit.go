package design

import (
	"fmt"
	"io"
	"strings"
)

// WriteVerilog emits every module registered on d, in the order the
// modules were created, preceded by a generated-file banner.
func (d *Design) WriteVerilog(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "// Generated using chipgo"); err != nil {
		return err
	}
	for _, m := range d.Modules() {
		if err := m.WriteVerilog(w); err != nil {
			return err
		}
	}
	return nil
}

// WriteVerilog emits m as a single Verilog module: ports, wire/reg
// declarations, continuous assigns, one "always @*" block per
// driver-set equivalence class, register/async regactions, submodule
// instances, and per-memory clocked write blocks. It returns a
// CompletenessError when a register is missing its assignment or its
// synchronization element.
func (m *Module) WriteVerilog(w io.Writer) error {
	var portlist, wirelist, assignlist, instanceLines []string

	for _, memname := range m.sortedMemoryNames() {
		mem := m.memories[memname]
		signedStr := ""
		if mem.signed {
			signedStr = "signed "
		}
		wirelist = append(wirelist, fmt.Sprintf("  %sreg [%d:0] %s [0:%d]; // %s", signedStr, mem.width-1, mem.name, mem.depth-1, mem.codeloc))
	}

	for _, signame := range m.sortedSignalNames() {
		signal := m.signals[signame]
		if !signal.materialize {
			continue
		}
		if signal.inport || signal.outport {
			portType := "inout"
			if !signal.inport {
				portType = "output"
			}
			if !signal.outport {
				portType = "input"
			}
			if signal.signed {
				portType = "signed " + portType
			}
			if signal.vlogReg {
				portType = portType + " reg"
			}
			if signal.width > 1 {
				portlist = append(portlist, fmt.Sprintf("  %s [%d:0] %s /* %s */", portType, signal.width-1, signal.name, signal.codeloc))
			} else {
				portlist = append(portlist, fmt.Sprintf("  %s %s /* %s */", portType, signal.name, signal.codeloc))
			}
		} else {
			wireType := "wire"
			if signal.vlogReg {
				wireType = "reg"
			}
			if signal.width > 1 {
				wirelist = append(wirelist, fmt.Sprintf("  %s [%d:0] %s; // %s", wireType, signal.width-1, signal.name, signal.codeloc))
			} else {
				wirelist = append(wirelist, fmt.Sprintf("  %s %s; // %s", wireType, signal.name, signal.codeloc))
			}
			if signal.vlogRvalue != nil {
				assignlist = append(assignlist, fmt.Sprintf("  assign %s = %s; // %s", signal.name, *signal.vlogRvalue, signal.codeloc))
			}
		}
		if signal.register {
			if !signal.gotAssign {
				return errCompleteness(m.name, signal.name, "register without assignment")
			}
			if !signal.regassoc {
				return errCompleteness(m.name, signal.name, "register without synchronization element")
			}
			if signal.width > 1 {
				wirelist = append(wirelist, fmt.Sprintf("  reg [%d:0] %s; // %s", signal.width-1, *signal.vlogLvalue, signal.codeloc))
			} else {
				wirelist = append(wirelist, fmt.Sprintf("  reg %s; // %s", *signal.vlogLvalue, signal.codeloc))
			}
		}
	}

	for _, inst := range m.instances {
		instanceLines = append(instanceLines, fmt.Sprintf("  %s %s ( // %s", inst.typeName, inst.name, inst.codeloc))
		for _, memberName := range inst.ports.Keys() {
			memberSig, ok := inst.ports.Get(memberName).(*Signal)
			if !ok {
				return errType("instance %s: port member %q is not a leaf signal", inst.name, memberName)
			}
			expr := memberSig.name
			if memberSig.portalias != nil {
				expr = *memberSig.portalias
			}
			instanceLines = append(instanceLines, fmt.Sprintf("    .%s(%s),", memberName, expr))
		}
		if n := len(instanceLines); n > 0 {
			instanceLines[n-1] = strings.TrimSuffix(instanceLines[n-1], ",")
		}
		instanceLines = append(instanceLines, "  );")
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "module %s (\n", m.name)
	fmt.Fprintln(w, strings.Join(portlist, ",\n"))
	fmt.Fprintln(w, ");")

	for _, line := range wirelist {
		fmt.Fprintln(w, line)
	}
	for _, line := range assignlist {
		fmt.Fprintln(w, line)
	}

	for _, group := range groupSnippets(append(append([]*Snippet{}, m.initSnippets...), m.codeSnippets...)) {
		fmt.Fprintln(w, "  always @* begin")
		for _, snippet := range group {
			for _, line := range snippet.textLines {
				fmt.Fprintln(w, line)
			}
		}
		fmt.Fprintln(w, "  end")
	}

	for _, line := range m.regactions {
		fmt.Fprintln(w, line)
	}
	for _, line := range instanceLines {
		fmt.Fprintln(w, line)
	}

	for _, memname := range m.memoryOrder {
		mem := m.memories[memname]
		edge, clock := mem.clockEdge()
		fmt.Fprintf(w, "  always @(%s %s) begin\n", edge, clock.name)
		for _, line := range mem.regactions {
			fmt.Fprintln(w, "    "+line)
		}
		fmt.Fprintln(w, "  end")
	}

	fmt.Fprintln(w, "endmodule")
	return nil
}
