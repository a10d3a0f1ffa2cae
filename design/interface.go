package design

// PortOpts carries the optional role/output hints an Interface callback
// passes to AddPortFunc for one port.
type PortOpts struct {
	Role   string // "", "input", or "output"
	Output bool
}

// AddPortFunc is the callback an Interface invokes once per port it
// describes. portType is either an int width (negative means signed) or a
// nested Interface.
type AddPortFunc func(portName string, portType any, opts PortOpts) error

// Interface is a role-parameterized port-adder: it calls addport once per
// port it describes, for the given role ("parent", "child", "input",
// "output", "register", "master", "slave", ...).
type Interface func(addport AddPortFunc, role string) error

// AddPort dispatches iface's ports according to role, recursing into
// nested Interfaces (prefixing each level's names with "<outer>__"),
// terminating at int-typed leaves by calling AddInput/AddOutput/AddReg.
func (d *Design) AddPort(name string, iface Interface, role string, opts RegOpts) (Bundle, error) {
	bundle := NewBundle()

	prefix := ""
	if name != "" {
		prefix = name + "__"
	}

	addport := func(portName string, portType any, popts PortOpts) error {
		portRole := popts.Role
		if role == "input" || role == "output" || role == "register" {
			portRole = role
		}
		output := popts.Output
		if portRole == "input" || portRole == "output" {
			output = portRole == "output"
		}
		if portRole == "" {
			if output {
				portRole = "output"
			} else {
				portRole = "input"
			}
		}

		switch pt := portType.(type) {
		case int:
			switch role {
			case "register":
				sig, err := d.AddReg(prefix+portName, pt, opts)
				if err != nil {
					return err
				}
				bundle.Add(portName, sig)
			default:
				if output {
					sig, err := d.AddOutput(prefix+portName, pt, opts)
					if err != nil {
						return err
					}
					bundle.Add(portName, sig)
				} else {
					sig, err := d.AddInput(prefix+portName, pt)
					if err != nil {
						return err
					}
					bundle.Add(portName, sig)
				}
			}
		case Interface:
			sub, err := d.AddPort(prefix+portName, pt, portRole, opts)
			if err != nil {
				return err
			}
			bundle.Add(portName, sub)
		default:
			return errType("AddPort: unsupported port type %T", portType)
		}
		return nil
	}

	if err := iface(addport, role); err != nil {
		return Bundle{}, err
	}
	return bundle, nil
}

// AddInputPort is AddPort specialized to role "input".
func (d *Design) AddInputPort(name string, iface Interface) (Bundle, error) {
	return d.AddPort(name, iface, "input", RegOpts{})
}

// AddOutputPort is AddPort specialized to role "output".
func (d *Design) AddOutputPort(name string, iface Interface, opts RegOpts) (Bundle, error) {
	return d.AddPort(name, iface, "output", opts)
}

// AddRegPort is AddPort specialized to role "register".
func (d *Design) AddRegPort(name string, iface Interface, opts RegOpts) (Bundle, error) {
	return d.AddPort(name, iface, "register", opts)
}

// AddMemoryPort builds a Bundle of *Memory values from a nested
// Interface whose leaves are int widths, one Memory per leaf, all sharing
// depth and clock edge.
func (d *Design) AddMemoryPort(name string, iface Interface, depth int, posedge, negedge *Signal) (Bundle, error) {
	bundle := NewBundle()
	prefix := ""
	if name != "" {
		prefix = name + "__"
	}
	addport := func(portName string, portType any, _ PortOpts) error {
		switch pt := portType.(type) {
		case int:
			mem, err := d.AddMemory(prefix+portName, pt, depth, posedge, negedge)
			if err != nil {
				return err
			}
			bundle.Add(portName, mem)
		case Interface:
			sub, err := d.AddMemoryPort(prefix+portName, pt, depth, posedge, negedge)
			if err != nil {
				return err
			}
			bundle.Add(portName, sub)
		default:
			return errType("AddMemoryPort: unsupported port type %T", portType)
		}
		return nil
	}
	if err := iface(addport, "memory"); err != nil {
		return Bundle{}, err
	}
	return bundle, nil
}

// Stream returns the canonical ready/valid handshake Interface: "valid"
// and "data" (and optionally "last"/"dest") flow from master to slave,
// "ready" flows from slave to master. It corresponds to Stream in the
// original.
func Stream(dataWidth int, last bool, destbits int) Interface {
	return func(addport AddPortFunc, role string) error {
		if err := addport("valid", 1, PortOpts{Output: role == "master"}); err != nil {
			return err
		}
		if err := addport("ready", 1, PortOpts{Output: role == "slave"}); err != nil {
			return err
		}
		if err := addport("data", dataWidth, PortOpts{Output: role == "master"}); err != nil {
			return err
		}
		if last {
			if err := addport("last", 1, PortOpts{Output: role == "master"}); err != nil {
				return err
			}
		}
		if destbits != 0 {
			if err := addport("dest", destbits, PortOpts{Output: role == "master"}); err != nil {
				return err
			}
		}
		return nil
	}
}
