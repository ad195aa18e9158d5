// Package object models the runtime namespace of a documented library.
//
// A namespace is a tree of [Module] containers whose attributes hold the
// library's public surface: nested modules, functions (plain func values),
// classes (represented by their [reflect.Type]) and multiple-dispatch
// registries. The same value may be reachable under several attribute names;
// [IdentityOf] yields the comparable key used to recognize such aliases.
package object

import (
	"reflect"
	"sort"
	"strings"
)

// privatePrefix marks attribute names that are implementation details
// and must never be listed by PublicAttrs.
const privatePrefix = "_"

// Module is a named container of attributes. The name is the module's fully
// qualified dotted path from the library root (e.g. "testlib.kernels") and is
// fixed at construction; attaching a module under another module does not
// rename it, which is what makes alias detection possible.
type Module struct {
	name  string
	attrs map[string]any
}

// NewModule returns an empty module with the given fully qualified name.
func NewModule(name string) *Module {
	return &Module{name: name, attrs: make(map[string]any)}
}

// Name returns the module's fully qualified dotted name.
func (m *Module) Name() string { return m.name }

// Set binds value under the given attribute name, replacing any previous
// binding.
func (m *Module) Set(name string, value any) *Module {
	m.attrs[name] = value
	return m
}

// Attr returns the value bound under name.
func (m *Module) Attr(name string) (any, bool) {
	v, ok := m.attrs[name]
	return v, ok
}

// PublicAttrs returns the values of all public attributes in lexicographic
// attribute-name order. Names starting with the private prefix are omitted.
// The deterministic order is what keeps repeated generation runs
// byte-identical.
func (m *Module) PublicAttrs() []any {
	names := make([]string, 0, len(m.attrs))
	for name := range m.attrs {
		if strings.HasPrefix(name, privatePrefix) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	values := make([]any, 0, len(names))
	for _, name := range names {
		values = append(values, m.attrs[name])
	}
	return values
}

// IdentityOf returns a comparable key identifying v across aliases, and
// whether such a key exists. Two attributes alias the same object exactly
// when their identities are equal:
//
//   - modules and classes (reflect.Type values) compare as interface values,
//   - funcs compare by code pointer, since func values themselves are not
//     comparable,
//   - other pointer-shaped values compare as interface values,
//   - values with no usable identity (nil, slices, maps) report ok=false.
//
// Values without identity are never documentable, so the traversal can
// safely treat them as never visited.
func IdentityOf(v any) (any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case *Module:
		return t, true
	case reflect.Type:
		return t, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func:
		return rv.Pointer(), true
	case reflect.Slice, reflect.Map, reflect.Chan:
		return nil, false
	default:
		if rv.Comparable() {
			return v, true
		}
		return nil, false
	}
}
