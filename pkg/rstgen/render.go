package rstgen

import (
	"embed"
	"path/filepath"
	"reflect"
	"strings"
	"text/template"

	"github.com/pkg/errors"

	"github.com/nieomylnieja/rstgen/internal/symbols"
	"github.com/nieomylnieja/rstgen/pkg/dispatch"
	"github.com/nieomylnieja/rstgen/pkg/object"
)

// templateFS stores the built-in reStructuredText fragment templates.
//
//go:embed templates/*.rst.gotmpl
var templateFS embed.FS

// levelSymbols are the heading underline characters, indexed by traversal
// depth. Depths past the end of the list reuse the last symbol.
var levelSymbols = []string{"=", "-", "~", `"`, "'", "^"}

const underlineWidth = 6

func levelUnderline(level int) string {
	if level >= len(levelSymbols) {
		level = len(levelSymbols) - 1
	}
	return strings.Repeat(levelSymbols[level], underlineWidth)
}

// renderer turns classified namespace objects into reStructuredText
// fragments.
type renderer struct {
	tmpl    *template.Template
	mapping symbols.Mapping
	// indexName is the IndexFile name without extension, used as the
	// document reference in toctree entries.
	indexName string
}

func newRenderer(conf Config) (*renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.rst.gotmpl")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse built-in templates")
	}
	return &renderer{
		tmpl:      tmpl,
		mapping:   conf.mapping(),
		indexName: strings.TrimSuffix(conf.IndexFile, filepath.Ext(conf.IndexFile)),
	}, nil
}

func (r *renderer) execute(name string, data any) (string, error) {
	var out strings.Builder
	if err := r.tmpl.ExecuteTemplate(&out, name, data); err != nil {
		return "", errors.Wrapf(err, "failed to execute template %s", name)
	}
	return out.String(), nil
}

// componentData feeds the class and function templates.
type componentData struct {
	ObjectName string
	Underline  string
	Doc        string
}

// component renders the fragment for a class, function or dispatch group
// exported by mod. The rendered name is the containing module's name joined
// with the component's defining symbol name, so aliases document under the
// module they were reached through. Components without a resolvable symbol
// render as the empty string and are skipped by the caller.
func (r *renderer) component(mod *object.Module, v any, level int, doc string) (string, error) {
	if reg, ok := v.(dispatch.Registry); ok {
		return r.dispatchGroup(mod, reg, level)
	}
	info, ok := symbols.Get(v, r.mapping)
	if !ok {
		return "", nil
	}
	data := componentData{
		ObjectName: mod.Name() + "." + info.Name,
		Underline:  levelUnderline(level),
		Doc:        doc,
	}
	if _, isClass := v.(reflect.Type); isClass {
		return r.execute("class.rst.gotmpl", data)
	}
	return r.execute("function.rst.gotmpl", data)
}

type dispatchData struct {
	ObjectName string
	Underline  string
	Content    string
}

type dispatchComponentData struct {
	DispatchName string
	Args         string
	TrueName     string
}

// dispatchGroup renders one block per registered (argument types,
// implementation) pair, in registration order. Implementations without a
// resolvable symbol are skipped silently.
func (r *renderer) dispatchGroup(mod *object.Module, reg dispatch.Registry, level int) (string, error) {
	name := mod.Name() + "." + reg.RegistryName()
	registrations := reg.Registrations()
	blocks := make([]string, 0, len(registrations))
	for _, rg := range registrations {
		impl, ok := symbols.Get(rg.Impl, r.mapping)
		if !ok {
			continue
		}
		args := make([]string, 0, len(rg.Args))
		for _, arg := range rg.Args {
			args = append(args, arg.Name())
		}
		block, err := r.execute("dispatch_component.rst.gotmpl", dispatchComponentData{
			DispatchName: name,
			Args:         strings.Join(args, ", "),
			TrueName:     impl.Qualified(),
		})
		if err != nil {
			return "", err
		}
		blocks = append(blocks, block)
	}
	return r.execute("dispatch.rst.gotmpl", dispatchData{
		ObjectName: name,
		Underline:  levelUnderline(level),
		Content:    strings.Join(blocks, "\n"),
	})
}

type moduleData struct {
	Name      string
	Underline string
	Ref       string
}

// moduleLink renders the toctree entry pointing at child's own document.
func (r *renderer) moduleLink(child *object.Module, level int) (string, error) {
	name := child.Name()
	dir := name[strings.LastIndex(name, ".")+1:]
	return r.execute("module.rst.gotmpl", moduleData{
		Name:      name,
		Underline: levelUnderline(level),
		Ref:       dir + "/" + r.indexName,
	})
}

type fileData struct {
	Title          string
	TitleUnderline string
	Date           string
	Content        string
}

// file renders the full document for one module.
func (r *renderer) file(title, date, content string) (string, error) {
	return r.execute("file.rst.gotmpl", fileData{
		Title:          title,
		TitleUnderline: strings.Repeat("=", len(title)),
		Date:           date,
		Content:        content,
	})
}
