package types

import (
	"go/ast"
	"go/parser"
	"go/token"

	"golang.org/x/tools/go/analysis"
)

// RunAnalyzer runs the analyzer over the given source and collects its
// diagnostics as issues. Intended for driving analysis.Analyzer-based
// rules from tests.
func RunAnalyzer(code string, analyzer *analysis.Analyzer) ([]Issue, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "test.go", code, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	var issues []Issue
	pass := &analysis.Pass{
		Fset:     fset,
		Files:    []*ast.File{file},
		ResultOf: make(map[*analysis.Analyzer]interface{}),
		Report: func(d analysis.Diagnostic) {
			pos := fset.Position(d.Pos)
			end := fset.Position(d.End)

			issues = append(issues, Issue{
				Rule:     analyzer.Name,
				Message:  d.Message,
				Category: d.Category,
				Start:    pos,
				End:      end,
			})
		},
	}

	// resolve direct requirements (e.g. the inspect analyzer)
	for _, req := range analyzer.Requires {
		result, err := req.Run(pass)
		if err != nil {
			return nil, err
		}
		pass.ResultOf[req] = result
	}

	_, err = analyzer.Run(pass)
	if err != nil {
		return nil, err
	}

	return issues, nil
}
