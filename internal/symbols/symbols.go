// Package symbols resolves the defining symbol of reflected namespace
// components at runtime.
package symbols

import (
	"reflect"
	"runtime"
	"strings"
)

// Mapping translates Go import paths into the documented namespace's dotted
// module names. The library rooted at ImportPath is addressed as Namespace;
// subpackages become dot-separated submodule names.
type Mapping struct {
	// ImportPath is the Go import path of the documented library's root
	// package, e.g. "github.com/acme/mlkit".
	ImportPath string
	// Namespace is the dotted name of the library root, e.g. "mlkit".
	Namespace string
}

// ModuleName maps a Go package import path onto the namespace's dotted
// module name. Paths outside the mapped library are returned unchanged.
func (m Mapping) ModuleName(pkgPath string) string {
	switch {
	case pkgPath == m.ImportPath:
		return m.Namespace
	case strings.HasPrefix(pkgPath, m.ImportPath+"/"):
		rest := strings.TrimPrefix(pkgPath, m.ImportPath+"/")
		return m.Namespace + "." + strings.ReplaceAll(rest, "/", ".")
	default:
		return pkgPath
	}
}

// Info identifies the symbol defining a component.
type Info struct {
	// Name is the bare symbol name, e.g. "Matern52".
	Name string
	// Module is the dotted name of the defining module, e.g.
	// "mlkit.kernels.stationaries".
	Module string
	// PkgPath is the Go import path of the defining package.
	PkgPath string
}

// Qualified returns the symbol's fully qualified dotted name.
func (i Info) Qualified() string {
	if i.Module == "" {
		return i.Name
	}
	return i.Module + "." + i.Name
}

// Get resolves the defining symbol of v under the given mapping. Two shapes
// are supported: classes, represented by their [reflect.Type], and plain
// func values, resolved through the runtime symbol table. Unnamed types,
// nil funcs, closures, methods and instantiated generics have no usable
// defining symbol and report ok=false.
func Get(v any, m Mapping) (Info, bool) {
	if t, ok := v.(reflect.Type); ok {
		if t.Name() == "" || t.PkgPath() == "" {
			return Info{}, false
		}
		return Info{Name: t.Name(), Module: m.ModuleName(t.PkgPath()), PkgPath: t.PkgPath()}, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return Info{}, false
	}
	fn := runtime.FuncForPC(rv.Pointer())
	if fn == nil {
		return Info{}, false
	}
	pkgPath, name, ok := splitFuncName(fn.Name())
	if !ok {
		return Info{}, false
	}
	return Info{Name: name, Module: m.ModuleName(pkgPath), PkgPath: pkgPath}, true
}

// splitFuncName splits a runtime symbol name like
// "github.com/acme/mlkit/kernels.RBF" into import path and bare name.
// The import path may itself contain dots, so the split point is the first
// dot after the last slash.
func splitFuncName(full string) (pkgPath, name string, ok bool) {
	slash := strings.LastIndex(full, "/")
	dot := strings.Index(full[slash+1:], ".")
	if dot < 0 {
		return "", "", false
	}
	dot += slash + 1
	pkgPath, name = full[:dot], full[dot+1:]
	// Methods, closures and instantiated generics carry extra segments
	// ("T.Method", "f.func1", "F[...]"); none of these are namespace
	// components.
	if name == "" || strings.ContainsAny(name, ".[") || strings.HasSuffix(name, "-fm") {
		return "", "", false
	}
	return pkgPath, name, true
}
