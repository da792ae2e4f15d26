package astwalk

import (
	"bufio"
	"fmt"
	"go/ast"
	"io"
	"strings"
)

// Dump writes the syntax tree of u in preorder, one node per line: as many
// dashes as the node depth, the node kind, and its spelling in parentheses.
//
//	 File (main)
//	- Ident (main)
//	- FuncDecl (f)
//	-- Ident (f)
func (u *Unit) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	depth := 0
	u.insp.Nodes(nil, func(n ast.Node, push bool) bool {
		if !push {
			depth--
			return true
		}
		fmt.Fprintf(bw, "%s %s (%s)\n", strings.Repeat("-", depth), kind(n), spelling(n))
		depth++
		return true
	})
	return bw.Flush()
}

func kind(n ast.Node) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast.")
}

func spelling(n ast.Node) string {
	switch n := n.(type) {
	case *ast.File:
		return n.Name.Name
	case *ast.Ident:
		return n.Name
	case *ast.FuncDecl:
		return funcName(n)
	case *ast.TypeSpec:
		return n.Name.Name
	case *ast.ImportSpec:
		return n.Path.Value
	case *ast.BasicLit:
		return n.Value
	case *ast.Comment:
		return n.Text
	}
	return ""
}
