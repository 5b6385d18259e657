package lints

import (
	"go/ast"
	"go/token"

	"github.com/gnoswap-labs/nestcond/internal/cond"
	tt "github.com/gnoswap-labs/nestcond/internal/types"
)

// RuleIfInIfCondition is the rule name used in issues and nolint comments.
const RuleIfInIfCondition = "if-in-if-condition"

// DetectIfInIfCondition detects if statements used, directly or through
// any intervening expression, inside the condition of another if
// statement. In Go that means an if buried in the condition behind a
// function literal, possibly as just one operand of it:
//
//	if func() int {
//		if a {
//			return 1
//		}
//		return 0
//	}() > 5 { ... }
//
// Such conditions are hard to read; the inner result should be assigned
// to a variable first.
func DetectIfInIfCondition(filename string, node *ast.File, fset *token.FileSet) ([]tt.Issue, error) {
	var issues []tt.Issue
	for _, decl := range node.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Body == nil {
			continue
		}
		// skip generated functions outright, as with their contents
		if (goNode{n: fn, fset: fset}).FromExpansion() {
			continue
		}

		for _, f := range cond.Walk(goNode{n: fn.Body, fset: fset}) {
			issues = append(issues, tt.Issue{
				Rule:     RuleIfInIfCondition,
				Category: "style",
				Filename: filename,
				Message:  f.Message,
				Note:     f.Help,
				Start:    f.Span.Start,
				End:      f.Span.End,
			})
		}
	}

	return issues, nil
}

// goNode adapts one go/ast node to the walker's view of the tree.
// An *ast.IfStmt is the conditional; everything else is walked
// generically. The Init clause of an if is a statement position, not
// part of the condition slot: assigning the inner result there is
// exactly what the rule suggests.
type goNode struct {
	n    ast.Node
	fset *token.FileSet
}

func (g goNode) wrap(n ast.Node) cond.Node {
	return goNode{n: n, fset: g.fset}
}

func (g goNode) Class() cond.Class {
	if _, ok := g.n.(*ast.IfStmt); ok {
		return cond.Conditional
	}
	return cond.Other
}

func (g goNode) Init() cond.Node {
	init := g.n.(*ast.IfStmt).Init
	if init == nil {
		return nil
	}
	return g.wrap(init)
}

func (g goNode) Cond() cond.Node {
	return g.wrap(g.n.(*ast.IfStmt).Cond)
}

func (g goNode) Then() cond.Node {
	return g.wrap(g.n.(*ast.IfStmt).Body)
}

func (g goNode) Else() cond.Node {
	els := g.n.(*ast.IfStmt).Else
	if els == nil {
		return nil
	}
	return g.wrap(els)
}

func (g goNode) Children() []cond.Node {
	var kids []cond.Node
	root := true
	ast.Inspect(g.n, func(n ast.Node) bool {
		if n == nil {
			return false
		}
		if root {
			root = false
			return true
		}
		kids = append(kids, g.wrap(n))
		return false
	})
	return kids
}

// FromExpansion reports whether the node's position was remapped by a
// //line directive, which marks generator or cgo output rather than
// code the user wrote.
func (g goNode) FromExpansion() bool {
	pos := g.n.Pos()
	if !pos.IsValid() {
		return false
	}
	adjusted := g.fset.Position(pos)
	raw := g.fset.PositionFor(pos, false)
	return adjusted.Filename != raw.Filename || adjusted.Line != raw.Line
}

func (g goNode) Span() cond.Span {
	return cond.Span{
		Start: g.fset.Position(g.n.Pos()),
		End:   g.fset.Position(g.n.End()),
	}
}
