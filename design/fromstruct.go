package design

import (
	"reflect"
	"strconv"
)

// InterfaceFromStruct builds an Interface by walking the (possibly
// nested) struct pointed to or valued by x with reflect: each exported
// integer field becomes a leaf port, each exported struct field becomes
// a nested Interface, recursively. It is grounded on ExtractRegs in the
// original register-map generator, adapted from emitting Verilog text
// fragments for one fixed hardware register layout to building a
// reusable Interface for AddPort.
//
// Per-field behavior is driven by a `chipgo:"name,role"` struct tag: name
// overrides the port name (default: the field name), and role is passed to
// AddPort as the port's role. AddPort's own role takes precedence over the
// tag when it is "input", "output" or "register". Under any other
// enclosing role, a leaf field tagged "output" becomes an output port and
// any other leaf field an input port; a leaf becomes a register only when
// the enclosing role is "register". For a nested struct field, the
// resulting role (the enclosing forcing role, else the tag's role, else
// "input") is the role of the nested AddPort call, so a nested struct
// tagged "register" yields register leaves. A field tagged `chipgo:"-"` is
// skipped. A `chipgo_width:"N"` tag overrides the port
// width inferred from the field's integer type (8/16/32/64 bits,
// negative for a signed Go type); this is for fields that represent a
// narrower bus than their Go storage type.
func InterfaceFromStruct(x interface{}) Interface {
	return func(addport AddPortFunc, role string) error {
		return extractStructPorts(reflect.TypeOf(x), "", addport, role)
	}
}

func extractStructPorts(t reflect.Type, prefix string, addport AddPortFunc, role string) error {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return errType("InterfaceFromStruct: %s is not a struct or pointer to struct", t.Kind())
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}

		name, fieldRole, skip := parseChipgoTag(f)
		if skip {
			continue
		}
		if name == "" {
			name = f.Name
		}

		switch f.Type.Kind() {
		case reflect.Struct:
			nested := f.Type
			if err := addport(name, Interface(func(ap AddPortFunc, r string) error {
				return extractStructPorts(nested, "", ap, r)
			}), PortOpts{Role: fieldRole}); err != nil {
				return err
			}
		case reflect.Ptr:
			if f.Type.Elem().Kind() == reflect.Struct {
				nested := f.Type.Elem()
				if err := addport(name, Interface(func(ap AddPortFunc, r string) error {
					return extractStructPorts(nested, "", ap, r)
				}), PortOpts{Role: fieldRole}); err != nil {
					return err
				}
			}
		case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
			width := fieldWidth(f, 8*int(f.Type.Size()))
			if err := addport(name, -width, PortOpts{Role: fieldRole, Output: fieldRole == "output"}); err != nil {
				return err
			}
		case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
			width := fieldWidth(f, 8*int(f.Type.Size()))
			if err := addport(name, width, PortOpts{Role: fieldRole, Output: fieldRole == "output"}); err != nil {
				return err
			}
		case reflect.Bool:
			if err := addport(name, 1, PortOpts{Role: fieldRole, Output: fieldRole == "output"}); err != nil {
				return err
			}
		}
	}
	return nil
}

func parseChipgoTag(f reflect.StructField) (name, role string, skip bool) {
	tag, ok := f.Tag.Lookup("chipgo")
	if !ok {
		return "", "", false
	}
	if tag == "-" {
		return "", "", true
	}
	parts := splitComma(tag)
	if len(parts) > 0 {
		name = parts[0]
	}
	if len(parts) > 1 {
		role = parts[1]
	}
	return name, role, false
}

func fieldWidth(f reflect.StructField, def int) int {
	if w, ok := f.Tag.Lookup("chipgo_width"); ok {
		if n, err := strconv.Atoi(w); err == nil {
			return n
		}
	}
	return def
}

func splitComma(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}
