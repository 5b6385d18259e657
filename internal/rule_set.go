package internal

import (
	"go/ast"
	"go/token"

	"github.com/gnoswap-labs/nestcond/internal/lints"
	tt "github.com/gnoswap-labs/nestcond/internal/types"
)

// LintRule defines the interface for all lint rules.
type LintRule interface {
	// Check runs the lint rule on the given file and returns a slice of Issues.
	Check(filename string, node *ast.File, fset *token.FileSet) ([]tt.Issue, error)

	// Name returns the name of the lint rule.
	Name() string

	// Severity returns the level the rule reports at.
	Severity() tt.Severity

	// SetSeverity overrides the level the rule reports at.
	SetSeverity(tt.Severity)
}

type ruleConstructor func() LintRule

type ruleMap map[string]ruleConstructor

var allRuleConstructors = ruleMap{
	lints.RuleIfInIfCondition: NewIfInIfConditionRule,
}

// IfInIfConditionRule flags if statements nested, through a function
// literal, inside the condition of another if statement.
type IfInIfConditionRule struct {
	severity tt.Severity
}

func NewIfInIfConditionRule() LintRule {
	return &IfInIfConditionRule{severity: tt.SeverityWarning}
}

func (r *IfInIfConditionRule) Check(filename string, node *ast.File, fset *token.FileSet) ([]tt.Issue, error) {
	issues, err := lints.DetectIfInIfCondition(filename, node, fset)
	if err != nil {
		return nil, err
	}
	for i := range issues {
		issues[i].Severity = r.severity
	}
	return issues, nil
}

func (r *IfInIfConditionRule) Name() string {
	return lints.RuleIfInIfCondition
}

func (r *IfInIfConditionRule) Severity() tt.Severity {
	return r.severity
}

func (r *IfInIfConditionRule) SetSeverity(severity tt.Severity) {
	r.severity = severity
}
