package rstgen

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/nieomylnieja/rstgen/internal/godoc"
	"github.com/nieomylnieja/rstgen/internal/symbols"
	"github.com/nieomylnieja/rstgen/pkg/dispatch"
	"github.com/nieomylnieja/rstgen/pkg/object"
)

type queueEntry struct {
	module *object.Module
	level  int
}

// traversal owns the state of one generation run: the FIFO queue, the
// visited-identity set and the collected summary. It is not safe for
// concurrent use and is discarded after run returns.
type traversal struct {
	conf     Config
	classify *classifier
	render   *renderer
	// docs resolves Go doc comments when WithDocComments is set, nil
	// otherwise.
	docs    *godoc.Parser
	visited map[any]struct{}
	date    string
	summary *Summary
}

// run walks the namespace breadth-first starting at root. Breadth-first
// order is load-bearing: when the same object is reachable under several
// names, the first path by which its identity is seen is the shortest one
// from the root, so aliased objects always document under their shallowest
// name.
func (t *traversal) run(root *object.Module) error {
	if id, ok := object.IdentityOf(root); ok {
		t.visited[id] = struct{}{}
	}
	queue := []queueEntry{{module: root, level: 0}}
	for len(queue) > 0 {
		entry := queue[0]
		queue = queue[1:]
		node := entry.module

		if node.Name() == "" {
			continue
		}
		if !t.classify.isDocumentableModule(node) {
			continue
		}

		var components, modules []string
		for _, child := range node.PublicAttrs() {
			id, identified := object.IdentityOf(child)
			if identified {
				if _, seen := t.visited[id]; seen {
					continue
				}
			}
			switch {
			case t.classify.isDocumentableComponent(child):
				fragment, err := t.renderComponent(node, child, entry.level)
				if err != nil {
					return err
				}
				if fragment == "" {
					continue
				}
				components = append(components, fragment)
				if identified {
					t.visited[id] = struct{}{}
				}
				t.summary.Components++
			case t.classify.isDocumentableModule(child):
				childModule := child.(*object.Module)
				if !t.doVisitModule(childModule) {
					continue
				}
				fragment, err := t.render.moduleLink(childModule, entry.level)
				if err != nil {
					return err
				}
				modules = append(modules, fragment)
				queue = append(queue, queueEntry{module: childModule, level: entry.level + 1})
				if identified {
					t.visited[id] = struct{}{}
				}
			}
		}

		content := strings.Join(append(components, modules...), "\n")
		if content == "" {
			continue
		}
		if err := t.write(node.Name(), content); err != nil {
			return err
		}
	}
	return nil
}

// doVisitModule reports whether child has original content worth a document
// of its own: an unvisited documentable module, or an unvisited documentable
// component defined in the library root or in child itself. Modules whose
// public surface only re-exports content documented elsewhere fail this test
// and are neither linked nor enqueued.
func (t *traversal) doVisitModule(child *object.Module) bool {
	for _, attr := range child.PublicAttrs() {
		if id, ok := object.IdentityOf(attr); ok {
			if _, seen := t.visited[id]; seen {
				continue
			}
		}
		if t.classify.isDocumentableModule(attr) {
			return true
		}
		if !t.classify.isDocumentableComponent(attr) {
			continue
		}
		info, ok := symbols.Get(attr, t.classify.mapping)
		if !ok {
			continue
		}
		if info.Module == t.conf.Namespace || strings.Contains(info.Module, child.Name()) {
			return true
		}
	}
	return false
}

// renderComponent renders the fragment for one component, resolving its doc
// comment first when doc resolution is enabled. Dispatch registries have no
// single defining symbol and never carry a doc comment.
func (t *traversal) renderComponent(mod *object.Module, v any, level int) (string, error) {
	var doc string
	if t.docs != nil {
		if _, isRegistry := v.(dispatch.Registry); !isRegistry {
			if info, ok := symbols.Get(v, t.classify.mapping); ok {
				resolved, err := t.docs.Lookup(info.PkgPath, info.Name)
				if err != nil {
					return "", errors.Wrapf(err, "failed to resolve doc comment for %s", info.Qualified())
				}
				doc = strings.TrimSpace(resolved)
			}
		}
	}
	return t.render.component(mod, v, level, doc)
}

// write renders the document frame and writes it under the output root,
// replacing namespace separators with path separators. I/O errors abort the
// run; the operation is idempotent and meant to be re-run from scratch.
func (t *traversal) write(name, content string) error {
	doc, err := t.render.file(name, t.date, content)
	if err != nil {
		return err
	}
	dir := filepath.Join(t.conf.OutputRoot, filepath.FromSlash(strings.ReplaceAll(name, ".", "/")))
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create output directory %s", dir)
	}
	path := filepath.Join(dir, t.conf.IndexFile)
	if err = os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	t.summary.Files = append(t.summary.Files, path)
	return nil
}
