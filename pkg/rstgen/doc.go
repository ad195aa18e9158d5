// Package rstgen generates reStructuredText documentation for a library's
// runtime namespace.
//
// The namespace is an object graph built with [object.Module] containers
// whose attributes hold the library's public surface: nested modules,
// functions, classes (their [reflect.Type]) and multiple-dispatch registries
// implementing [dispatch.Registry]. Generate walks the graph breadth-first
// from a single root and writes one document per documentable module.
//
// # Basic Usage
//
// Build a namespace and generate its documentation:
//
//	root := object.NewModule("mlkit")
//	kernels := object.NewModule("mlkit.kernels").
//		Set("RBF", reflect.TypeOf(stationaries.RBF{}))
//	root.Set("kernels", kernels)
//
//	summary, err := rstgen.Generate(root, rstgen.Config{
//		OutputRoot: "docs/source",
//		IndexFile:  "index.rst",
//		Namespace:  "mlkit",
//		ImportPath: "github.com/acme/mlkit",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Every documented module becomes a directory mirroring its dotted name
// ("mlkit.kernels" writes docs/source/mlkit/kernels/index.rst) containing a
// title, a generation-date comment and one rendered entry per member.
//
// # Deduplication
//
// Libraries commonly re-export a class defined in a deep module under a
// shallower name. Breadth-first order guarantees the first time an object's
// identity is seen is via its shortest path from the root, so the shallow
// alias wins and the deep defining module does not list the object again.
// Modules whose public surface only re-exports content documented elsewhere
// produce no output at all.
//
// # Configuration Options
//
// Use GenerateOption functions to customize behavior:
//
//	summary, err := rstgen.Generate(root, conf,
//		rstgen.WithTimestamp(buildTime),
//		rstgen.WithDocComments(),
//	)
//
// WithTimestamp pins the embedded generation date so repeated runs are
// byte-identical. WithDocComments resolves Go doc comments from the
// documented library's source and appends them after the autodoc
// directives.
package rstgen
