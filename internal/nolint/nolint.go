package nolint

import (
	"go/ast"
	"go/token"
	"strings"
)

const prefix = "//nolint"

// Manager holds the //nolint scopes of one parsed file and answers
// whether a reported position is suppressed.
type Manager struct {
	scopes map[string][]scope
}

// scope is a line range a nolint comment applies to. An empty rule set
// means every rule is suppressed.
type scope struct {
	rules map[string]struct{}
	start token.Position
	end   token.Position
}

// ParseComments collects the nolint comments of f.
//
// An inline comment suppresses the statement it trails; a standalone
// comment suppresses the statement or function declaration starting on
// the next line; anything else suppresses its own line only.
func ParseComments(f *ast.File, fset *token.FileSet) *Manager {
	m := &Manager{scopes: make(map[string][]scope, len(f.Comments))}
	stmts := indexStatementsByLine(f, fset)

	for _, cg := range f.Comments {
		for _, comment := range cg.List {
			s, ok := parseComment(comment, f, fset, stmts)
			if !ok {
				continue
			}
			m.scopes[s.start.Filename] = append(m.scopes[s.start.Filename], s)
		}
	}
	return m
}

// IsNolint reports whether the rule is suppressed at pos.
func (m *Manager) IsNolint(pos token.Position, rule string) bool {
	for _, s := range m.scopes[pos.Filename] {
		if pos.Line < s.start.Line || pos.Line > s.end.Line {
			continue
		}
		if len(s.rules) == 0 {
			return true
		}
		if _, ok := s.rules[rule]; ok {
			return true
		}
	}
	return false
}

func parseComment(comment *ast.Comment, f *ast.File, fset *token.FileSet, stmts map[int]ast.Stmt) (scope, bool) {
	var s scope
	text := comment.Text

	if !strings.HasPrefix(text, prefix) {
		return s, false
	}
	rest := text[len(prefix):]
	if rest != "" && rest[0] != ':' {
		// some other //nolintfoo comment
		return s, false
	}
	s.rules = parseRuleNames(strings.TrimPrefix(rest, ":"))

	pos := fset.Position(comment.Slash)
	s.start = pos
	s.end = pos

	// trailing comment: cover the statement it sits on
	if stmt, ok := stmts[pos.Line]; ok && fset.Position(stmt.Pos()).Offset < pos.Offset {
		s.start = fset.Position(stmt.Pos())
		s.end = fset.Position(stmt.End())
		return s, true
	}

	// standalone comment: cover the statement on the next line
	if stmt, ok := stmts[pos.Line+1]; ok {
		s.end = fset.Position(stmt.End())
		return s, true
	}

	// or the function declared on the next line
	for _, decl := range f.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		if fset.Position(fn.Pos()).Line == pos.Line+1 {
			s.end = fset.Position(fn.End())
			return s, true
		}
	}

	return s, true
}

func parseRuleNames(text string) map[string]struct{} {
	rules := make(map[string]struct{})
	for _, rule := range strings.Split(text, ",") {
		rule = strings.TrimSpace(rule)
		if rule != "" {
			rules[rule] = struct{}{}
		}
	}
	return rules
}

// indexStatementsByLine maps each line to the first statement starting
// on it.
func indexStatementsByLine(f *ast.File, fset *token.FileSet) map[int]ast.Stmt {
	stmts := make(map[int]ast.Stmt)
	ast.Inspect(f, func(n ast.Node) bool {
		if stmt, ok := n.(ast.Stmt); ok {
			line := fset.Position(stmt.Pos()).Line
			if _, exists := stmts[line]; !exists {
				stmts[line] = stmt
			}
		}
		return true
	})
	return stmts
}
