package rstgen

import (
	"strings"

	"github.com/nieomylnieja/rstgen/internal/symbols"
	"github.com/nieomylnieja/rstgen/pkg/dispatch"
	"github.com/nieomylnieja/rstgen/pkg/object"
)

// classifier implements the documentability predicates over reflected
// namespace objects. All predicates are pure.
type classifier struct {
	namespace string
	exclude   map[string]struct{}
	mapping   symbols.Mapping
}

func newClassifier(conf Config) *classifier {
	exclude := make(map[string]struct{}, len(conf.Exclude))
	for _, name := range conf.Exclude {
		exclude[name] = struct{}{}
	}
	return &classifier{
		namespace: conf.Namespace,
		exclude:   exclude,
		mapping:   conf.mapping(),
	}
}

// isDocumentableModule reports whether v is a module belonging to the
// documented namespace and not excluded.
func (c *classifier) isDocumentableModule(v any) bool {
	m, ok := v.(*object.Module)
	return ok && strings.Contains(m.Name(), c.namespace) && !c.excluded(m.Name())
}

// isDocumentableComponent reports whether v is a function or class defined
// inside the documented namespace, or a multiple-dispatch registry.
// Registries are recognized through the [dispatch.Registry] capability
// rather than their concrete type.
func (c *classifier) isDocumentableComponent(v any) bool {
	if _, ok := v.(dispatch.Registry); ok {
		return true
	}
	info, ok := symbols.Get(v, c.mapping)
	return ok && strings.Contains(info.Module, c.namespace) && !c.excluded(info.Module)
}

// isDocumentable reports whether v is a documentable component or module.
func (c *classifier) isDocumentable(v any) bool {
	return c.isDocumentableComponent(v) || c.isDocumentableModule(v)
}

func (c *classifier) excluded(name string) bool {
	_, ok := c.exclude[name]
	return ok
}
