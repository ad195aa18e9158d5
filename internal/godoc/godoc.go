// Package godoc extracts doc comments for package-level symbols of the
// enclosing Go module.
package godoc

import (
	"go/ast"
	"go/doc/comment"
	"go/types"
	"maps"
	"slices"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"

	"github.com/nieomylnieja/rstgen/internal/pathutils"
)

// NewParser loads every package under the enclosing module root, with
// type-annotated syntax. Loading happens once; Lookup calls are cheap
// afterwards.
func NewParser() (*Parser, error) {
	root, err := pathutils.FindModuleRoot("")
	if err != nil {
		return nil, err
	}
	conf := &packages.Config{
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedCompiledGoFiles |
			packages.NeedImports |
			packages.NeedDeps |
			packages.NeedTypes |
			packages.NeedSyntax |
			packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(conf, root+"/...")
	if err != nil {
		return nil, errors.Wrap(err, "failed to load packages")
	}
	if err = checkForPackageErrors(pkgs); err != nil {
		return nil, err
	}

	parser := &Parser{pkgs: make(map[string]*goPackage, len(pkgs))}
	parser.collectAllPackages(pkgs)
	return parser, nil
}

type Parser struct {
	pkgs map[string]*goPackage
}

type goPackage struct {
	pkg           *packages.Package
	commentParser *comment.Parser
}

// Lookup returns the doc comment of the package-level symbol name declared
// in the package at pkgPath, rendered as markdown. Both func and type
// declarations are supported. A declared symbol without documentation
// yields the empty string; an unknown package or symbol is an error.
func (p *Parser) Lookup(pkgPath, name string) (string, error) {
	pkg, ok := p.pkgs[pkgPath]
	if !ok {
		return "", errors.Errorf("package %s is not part of the loaded module", pkgPath)
	}
	if pkg.commentParser == nil {
		pkg.commentParser = p.newCommentParserForPackage(pkg.pkg)
	}
	text, err := p.findDocText(pkg, name)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", nil
	}
	return p.docCommentToMarkdown(pkg.commentParser, pkg.pkg.PkgPath, text), nil
}

// findDocText locates the declaration of the named symbol and returns its
// raw doc comment text.
func (p *Parser) findDocText(pkg *goPackage, name string) (string, error) {
	obj := pkg.pkg.Types.Scope().Lookup(name)
	if obj == nil {
		return "", errors.Errorf("%s.%s not found", pkg.pkg.Types.Path(), name)
	}
	pos := obj.Pos()
	for _, file := range pkg.pkg.Syntax {
		if file.FileStart > pos || pos >= file.FileEnd {
			continue // not in this file
		}
		path, _ := astutil.PathEnclosingInterval(file, pos, pos)
		for _, n := range path {
			switch decl := n.(type) {
			case *ast.FuncDecl:
				return decl.Doc.Text(), nil
			case *ast.GenDecl:
				return decl.Doc.Text(), nil
			}
		}
	}
	return "", errors.Errorf("could not find %s.%s declaration", pkg.pkg.Name, name)
}

const docLinkBaseURL = "https://pkg.go.dev"

func (p *Parser) docCommentToMarkdown(parser *comment.Parser, pkg, text string) string {
	parsed := parser.Parse(text)
	printer := comment.Printer{
		DocLinkURL: func(link *comment.DocLink) string {
			if link.ImportPath == "" {
				link.ImportPath = pkg
			}
			return link.DefaultURL(docLinkBaseURL)
		},
	}
	return string(printer.Markdown(parsed))
}

func (p *Parser) newCommentParserForPackage(currentPackage *packages.Package) *comment.Parser {
	return &comment.Parser{
		LookupPackage: func(name string) (importPath string, ok bool) {
			for _, pkg := range p.pkgs {
				if pkg.pkg.Name == name {
					return pkg.pkg.PkgPath, true
				}
			}
			return "", false
		},
		LookupSym: func(recv, name string) (ok bool) {
			if recv == "" {
				return currentPackage.Types.Scope().Lookup(name) != nil
			}
			obj := currentPackage.Types.Scope().Lookup(recv)
			if obj == nil {
				return false
			}
			switch u := obj.Type().Underlying().(type) {
			case *types.Struct:
				for field := range u.Fields() {
					if field.Name() == name {
						return true
					}
				}
				return false
			default:
				return false
			}
		},
	}
}

// collectAllPackages recursively adds all packages and their imports to the
// parser's map.
func (p *Parser) collectAllPackages(pkgs []*packages.Package) {
	for _, pkg := range pkgs {
		if _, exists := p.pkgs[pkg.PkgPath]; exists {
			continue
		}
		p.pkgs[pkg.PkgPath] = &goPackage{pkg: pkg}
		if len(pkg.Imports) > 0 {
			p.collectAllPackages(slices.Collect(maps.Values(pkg.Imports)))
		}
	}
}

func checkForPackageErrors(pkgs []*packages.Package) (err error) {
	packages.Visit(pkgs, func(pkg *packages.Package) bool {
		for _, err = range pkg.Errors {
			err = errors.Wrapf(err, "package %s has reported an error", pkg.PkgPath)
			return false
		}
		mod := pkg.Module
		if mod != nil && mod.Error != nil {
			err = errors.New(mod.Error.Err)
			return false
		}
		return true
	}, nil)
	return err
}
