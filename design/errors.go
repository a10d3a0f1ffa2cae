package design

import "fmt"

// ContextError reports misuse of the open-context stack: a builder called
// outside any module context, Reset called while a context is open,
// an Else/ElseIf with no matching If, or re-entering an already-open
// context.
type ContextError struct {
	Op      string
	Codeloc string
}

func (e *ContextError) Error() string {
	return fmt.Sprintf("chipgo: context error in %s (%s)", e.Op, e.Codeloc)
}

// NamingError reports a duplicate or missing name: a module, signal, or
// memory name already in use, or an unknown signal name passed to Sig.
type NamingError struct {
	Kind string // "module", "signal", "memory"
	Name string
}

func (e *NamingError) Error() string {
	return fmt.Sprintf("chipgo: %s name %q already in use, or not found", e.Kind, e.Name)
}

// StructuralError reports an inconsistency in the expression or connection
// graph: operands from different modules, a bundle/non-bundle mismatch, or
// zero/multiple masters in a Connect.
type StructuralError struct {
	Msg string
}

func (e *StructuralError) Error() string {
	return "chipgo: " + e.Msg
}

// CompletenessError reports a register missing its assignment or its
// synchronization element at emission time.
type CompletenessError struct {
	Module string
	Signal string
	Reason string
}

func (e *CompletenessError) Error() string {
	return fmt.Sprintf("chipgo: register %s.%s %s", e.Module, e.Signal, e.Reason)
}

// TypeError reports an unsupported value passed to Sig, an indexing
// operation, or a tuple containing a slice inside an indexed range.
type TypeError struct {
	Msg string
}

func (e *TypeError) Error() string {
	return "chipgo: " + e.Msg
}

func errContext(op, codeloc string) error {
	err := &ContextError{Op: op, Codeloc: codeloc}
	log.WithField("op", op).WithField("codeloc", codeloc).Error(err)
	return err
}

func errNaming(kind, name string) error {
	err := &NamingError{Kind: kind, Name: name}
	log.WithField("kind", kind).WithField("name", name).Error(err)
	return err
}

func errStructural(format string, args ...any) error {
	err := &StructuralError{Msg: fmt.Sprintf(format, args...)}
	log.Error(err)
	return err
}

func errCompleteness(module, signal, reason string) error {
	err := &CompletenessError{Module: module, Signal: signal, Reason: reason}
	log.WithField("module", module).WithField("signal", signal).Error(err)
	return err
}

func errType(format string, args ...any) error {
	err := &TypeError{Msg: fmt.Sprintf(format, args...)}
	log.Error(err)
	return err
}
