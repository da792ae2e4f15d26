// Package astwalk loads Go packages and walks their syntax trees.
//
// It is the harness side of the fib fixture: packages are resolved by the
// go command, the way a compilation database resolves translation units,
// then each loaded package is exposed as a Unit whose function
// declarations and node tree can be reported.
package astwalk

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/packages"
)

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedSyntax

// Config controls how packages are resolved by Load.
type Config struct {
	Dir  string   // directory the go command runs in, current directory if empty
	Env  []string // environment of the go command, os.Environ() if nil
	Logf func(format string, args ...interface{})
}

// Unit is one loaded package.
type Unit struct {
	Name    string // package name
	PkgPath string // import path, empty for a single parsed file
	Fset    *token.FileSet
	Files   []*ast.File

	insp *inspector.Inspector
}

func newUnit(name, pkgPath string, fset *token.FileSet, files []*ast.File) *Unit {
	return &Unit{
		Name:    name,
		PkgPath: pkgPath,
		Fset:    fset,
		Files:   files,
		insp:    inspector.New(files),
	}
}

// Load resolves patterns with the go command and parses every matched
// package. With no patterns, the package in cfg.Dir is loaded.
// It fails if any matched package reports an error.
func Load(ctx context.Context, cfg Config, patterns ...string) ([]*Unit, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	fset := token.NewFileSet()
	pcfg := &packages.Config{
		Context: ctx,
		Mode:    loadMode,
		Dir:     cfg.Dir,
		Env:     cfg.Env,
		Logf:    cfg.Logf,
		Fset:    fset,
	}

	pkgs, err := packages.Load(pcfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", strings.Join(patterns, " "), err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("load %s: %w", strings.Join(patterns, " "), errors.Join(errs...))
	}

	units := make([]*Unit, 0, len(pkgs))
	for _, pkg := range pkgs {
		units = append(units, newUnit(pkg.Name, pkg.PkgPath, fset, pkg.Syntax))
	}
	return units, nil
}

// ParseFile parses a single Go source file without invoking the go command.
// If src is nil the file is read from filename, otherwise src is used as
// described by parser.ParseFile.
func ParseFile(filename string, src interface{}) (*Unit, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, err
	}
	return newUnit(f.Name.Name, "", fset, []*ast.File{f}), nil
}
