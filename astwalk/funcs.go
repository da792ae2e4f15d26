package astwalk

import (
	"fmt"
	"go/ast"
	"go/token"
	"path/filepath"
)

// Position is a source location. Line and Column are 1-based.
type Position struct {
	File   string `yaml:"file"`
	Line   int    `yaml:"line"`
	Column int    `yaml:"column"`
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", filepath.Base(p.File), p.Line, p.Column)
}

// Func is a function or method declaration and its extent, from the func
// keyword to the closing brace.
type Func struct {
	Name  string   `yaml:"name"`
	Start Position `yaml:"start"`
	End   Position `yaml:"end"`
}

func (f Func) String() string {
	return fmt.Sprintf("%s: %v - %v", f.Name, f.Start, f.End)
}

// Funcs returns the function and method declarations of u in source order.
// If file is not empty, only declarations from the file with that base
// name are returned.
func (u *Unit) Funcs(file string) []Func {
	var funcs []Func
	u.insp.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(n ast.Node) {
		decl := n.(*ast.FuncDecl)
		start := u.Fset.Position(decl.Pos())
		if file != "" && filepath.Base(start.Filename) != file {
			return
		}
		funcs = append(funcs, Func{
			Name:  funcName(decl),
			Start: position(start),
			End:   position(u.Fset.Position(decl.End())),
		})
	})
	return funcs
}

func position(p token.Position) Position {
	return Position{File: p.Filename, Line: p.Line, Column: p.Column}
}

// funcName returns the declared name, qualified by the receiver type
// for methods: T.M or (*T).M.
func funcName(decl *ast.FuncDecl) string {
	if decl.Recv == nil || len(decl.Recv.List) == 0 {
		return decl.Name.Name
	}
	typ := decl.Recv.List[0].Type
	star := false
	if s, ok := typ.(*ast.StarExpr); ok {
		star = true
		typ = s.X
	}
	// Drop type parameters of generic receivers.
	switch t := typ.(type) {
	case *ast.IndexExpr:
		typ = t.X
	case *ast.IndexListExpr:
		typ = t.X
	}
	recv := "?"
	if id, ok := typ.(*ast.Ident); ok {
		recv = id.Name
	}
	if star {
		return "(*" + recv + ")." + decl.Name.Name
	}
	return recv + "." + decl.Name.Name
}
