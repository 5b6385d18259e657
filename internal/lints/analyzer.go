package lints

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/gnoswap-labs/nestcond/internal/cond"
)

const analyzerDoc = `nestcond reports if statements nested inside the condition of another if statement`

// Analyzer exposes the if-in-if-condition rule to go/analysis drivers.
var Analyzer = &analysis.Analyzer{
	Name:     "nestcond",
	Doc:      analyzerDoc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      runAnalyzer,
}

func runAnalyzer(pass *analysis.Pass) (any, error) {
	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.FuncDecl)(nil),
	}

	pector.Preorder(nodeFilter, func(node ast.Node) {
		fn := node.(*ast.FuncDecl)
		if fn.Body == nil {
			return
		}
		if (goNode{n: fn, fset: pass.Fset}).FromExpansion() {
			return
		}

		file := pass.Fset.File(fn.Pos())
		for _, f := range cond.Walk(goNode{n: fn.Body, fset: pass.Fset}) {
			pass.Report(analysis.Diagnostic{
				Pos:      file.Pos(f.Span.Start.Offset),
				End:      file.Pos(f.Span.End.Offset),
				Category: "style",
				Message:  f.Message,
			})
		}
	})

	return nil, nil
}
