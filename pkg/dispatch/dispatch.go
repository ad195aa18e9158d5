// Package dispatch implements a runtime multiple-dispatch registry.
//
// A [Dispatcher] groups several implementations of one logical operation,
// keyed by the types of the arguments they accept. Callers resolve an
// implementation with [Dispatcher.Dispatch]; the documentation generator
// consumes only the read-side [Registry] capability.
package dispatch

import (
	"reflect"

	"github.com/pkg/errors"
)

// Registry is the capability surface recognized by the documentation
// generator. Any value implementing it is documented as a multi-dispatch
// group, one entry per registration.
type Registry interface {
	// RegistryName returns the dispatch group's public name.
	RegistryName() string
	// Registrations returns a snapshot of all registered signature to
	// implementation pairs, in registration order.
	Registrations() []Registration
}

// Registration is a single (argument types, implementation) pair.
type Registration struct {
	Args []reflect.Type
	Impl any
}

// Dispatcher is the default Registry implementation.
type Dispatcher struct {
	name string
	regs []Registration
}

// New returns an empty dispatcher with the given public name.
func New(name string) *Dispatcher {
	return &Dispatcher{name: name}
}

// RegistryName implements Registry.
func (d *Dispatcher) RegistryName() string { return d.name }

// Register adds impl as the implementation for the given argument types.
// impl must be a func value. Registration order is preserved and determines
// both documentation order and dispatch precedence.
func (d *Dispatcher) Register(impl any, args ...reflect.Type) error {
	if impl == nil || reflect.ValueOf(impl).Kind() != reflect.Func {
		return errors.Errorf("dispatcher %s: implementation must be a func, got %T", d.name, impl)
	}
	d.regs = append(d.regs, Registration{Args: args, Impl: impl})
	return nil
}

// MustRegister is Register, panicking on error. Intended for package-level
// registry construction where a bad registration is a programming error.
func (d *Dispatcher) MustRegister(impl any, args ...reflect.Type) {
	if err := d.Register(impl, args...); err != nil {
		panic(err)
	}
}

// Registrations implements Registry. The returned slice is a copy.
func (d *Dispatcher) Registrations() []Registration {
	regs := make([]Registration, len(d.regs))
	copy(regs, d.regs)
	return regs
}

// Dispatch resolves the implementation registered for the runtime types of
// args and invokes it. The first registration whose signature matches wins;
// a registered argument type matches when the runtime type equals it or is
// assignable to it. Returns false when no registration matches.
func (d *Dispatcher) Dispatch(args ...any) ([]any, bool) {
	for _, reg := range d.regs {
		if !matches(reg.Args, args) {
			continue
		}
		in := make([]reflect.Value, len(args))
		for i, a := range args {
			in[i] = reflect.ValueOf(a)
		}
		out := reflect.ValueOf(reg.Impl).Call(in)
		results := make([]any, len(out))
		for i, v := range out {
			results[i] = v.Interface()
		}
		return results, true
	}
	return nil, false
}

func matches(want []reflect.Type, args []any) bool {
	if len(want) != len(args) {
		return false
	}
	for i, a := range args {
		at := reflect.TypeOf(a)
		if at == nil {
			return false
		}
		if at != want[i] && !at.AssignableTo(want[i]) {
			return false
		}
	}
	return true
}
