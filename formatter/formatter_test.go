package formatter

import (
	"go/token"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/gnoswap-labs/nestcond/internal"
	"github.com/gnoswap-labs/nestcond/internal/cond"
	"github.com/gnoswap-labs/nestcond/internal/lints"
	tt "github.com/gnoswap-labs/nestcond/internal/types"
)

func init() {
	color.NoColor = true
}

func TestGenerateFormattedIssueGeneral(t *testing.T) {
	code := &internal.SourceCode{
		Lines: []string{
			"package main",
			"",
			"func main() {",
			"    x := 1",
			"}",
		},
	}

	issues := []tt.Issue{
		{
			Rule:     "some-rule",
			Filename: "test.go",
			Severity: tt.SeverityError,
			Start:    token.Position{Line: 4, Column: 5},
			End:      token.Position{Line: 4, Column: 6},
			Message:  "x declared but not used",
		},
	}

	expected := `error: some-rule
 --> test.go:4:5
  |
4 | x := 1
  | ~~
  = x declared but not used

`

	assert.Equal(t, expected, GenerateFormattedIssue(issues, code))
}

func TestGenerateFormattedIssueIfInIfCondition(t *testing.T) {
	code := &internal.SourceCode{
		Lines: []string{
			"package main",
			"",
			"func example(a bool) bool {",
			"\tif func() int {",
			"\t\tif a {",
			"\t\t\treturn 1",
			"\t\t}",
			"\t\treturn 0",
			"\t}() > 5 {",
			"\t\treturn true",
			"\t}",
			"\treturn false",
			"}",
		},
	}

	issues := []tt.Issue{
		{
			Rule:     lints.RuleIfInIfCondition,
			Filename: "test.go",
			Severity: tt.SeverityWarning,
			Start:    token.Position{Line: 5, Column: 3},
			End:      token.Position{Line: 7, Column: 4},
			Message:  cond.Message,
			Note:     cond.Help,
		},
	}

	expected := `warning: if-in-if-condition
 --> test.go:5:3
  |
5 | if a {
6 | 	return 1
7 | }
  | ~~~~~~~
  = conditional expression in conditional condition
  = help: assign the result of the inner conditional to a variable and use the variable in the condition instead

`

	assert.Equal(t, expected, GenerateFormattedIssue(issues, code))
}

func TestFindCommonIndent(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected string
	}{
		{
			name:     "tabs",
			lines:    []string{"\t\tif a {", "\t\t\treturn 1", "\t\t}"},
			expected: "\t\t",
		},
		{
			name:     "spaces",
			lines:    []string{"    a", "      b", "    c"},
			expected: "    ",
		},
		{
			name:     "no common indent",
			lines:    []string{"a", "  b"},
			expected: "",
		},
		{
			name:     "empty lines are skipped",
			lines:    []string{"\ta", "", "\tb"},
			expected: "\t",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, findCommonIndent(tc.lines))
		})
	}
}

func TestCalculateVisualColumn(t *testing.T) {
	assert.Equal(t, 0, calculateVisualColumn("abc", 1))
	assert.Equal(t, 2, calculateVisualColumn("abc", 3))
	assert.Equal(t, tabWidth, calculateVisualColumn("\tabc", 2))
	assert.Equal(t, 0, calculateVisualColumn("abc", -1))
}
