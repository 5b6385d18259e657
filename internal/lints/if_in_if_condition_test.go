package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/nestcond/internal/cond"
)

func TestDetectIfInIfCondition(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		code     string
		expected int
	}{
		{
			name: "no nested conditionals",
			code: `
package main

func example(a bool) bool {
	if a {
		return true
	}
	return false
}`,
			expected: 0,
		},
		{
			name: "if in condition through function literal",
			code: `
package main

func example(a bool) bool {
	if func() int {
		if a {
			return 1
		}
		return 0
	}() > 5 {
		return true
	}
	return false
}`,
			expected: 1,
		},
		{
			name: "if in then branch is fine",
			code: `
package main

func example(a, b bool) bool {
	if a {
		if b {
			return true
		}
	}
	return false
}`,
			expected: 0,
		},
		{
			name: "if in else-if condition",
			code: `
package main

func example(a, b bool) int {
	if a {
		return 1
	} else if func() int {
		if b {
			return 1
		}
		return 0
	}() > 0 {
		return 2
	}
	return 3
}`,
			expected: 1,
		},
		{
			name: "if as one operand of a boolean condition",
			code: `
package main

func example(x, y bool) bool {
	if x && func() int {
		if y {
			return 1
		}
		return 0
	}() > 0 {
		return true
	}
	return false
}`,
			expected: 1,
		},
		{
			name: "long else-if chain flags only the nested conditional",
			code: `
package main

func example(a, b, c bool) int {
	if a {
		return 1
	} else if b {
		return 2
	} else if func() int {
		if c {
			return 1
		}
		return 0
	}() > 0 {
		return 3
	}
	return 4
}`,
			expected: 1,
		},
		{
			name: "two violations in one function",
			code: `
package main

func example(a, b bool) int {
	if func() int {
		if a {
			return 1
		}
		return 0
	}() > 0 {
		return 1
	}
	if func() int {
		if b {
			return 1
		}
		return 0
	}() > 0 {
		return 2
	}
	return 3
}`,
			expected: 2,
		},
		{
			name: "assignment in init clause is the suggested fix",
			code: `
package main

func example(a bool) bool {
	if n := func() int {
		if a {
			return 1
		}
		return 0
	}(); n > 5 {
		return true
	}
	return false
}`,
			expected: 0,
		},
		{
			name: "violation nested inside an init clause",
			code: `
package main

func example(a bool) bool {
	if n := func() int {
		if func() int {
			if a {
				return 1
			}
			return 0
		}() > 0 {
			return 1
		}
		return 0
	}(); n > 5 {
		return true
	}
	return false
}`,
			expected: 1,
		},
		{
			name: "generated function is suppressed",
			code: `
package main

//line gen.go:100
func example(a bool) bool {
	if func() int {
		if a {
			return 1
		}
		return 0
	}() > 5 {
		return true
	}
	return false
}`,
			expected: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			node, fset, err := ParseFile("test.go", []byte(tc.code))
			require.NoError(t, err)

			issues, err := DetectIfInIfCondition("test.go", node, fset)
			require.NoError(t, err)

			assert.Len(t, issues, tc.expected)
			for _, issue := range issues {
				assert.Equal(t, RuleIfInIfCondition, issue.Rule)
				assert.Equal(t, cond.Message, issue.Message)
				assert.Equal(t, cond.Help, issue.Note)
			}
		})
	}
}

func TestDetectIfInIfConditionSpansInnerIf(t *testing.T) {
	t.Parallel()
	code := `package main

func example(a bool) bool {
	if func() int {
		if a {
			return 1
		}
		return 0
	}() > 5 {
		return true
	}
	return false
}`

	node, fset, err := ParseFile("test.go", []byte(code))
	require.NoError(t, err)

	issues, err := DetectIfInIfCondition("test.go", node, fset)
	require.NoError(t, err)
	require.Len(t, issues, 1)

	// the finding spans the inner if, not the outer one
	assert.Equal(t, 5, issues[0].Start.Line)
	assert.Equal(t, 7, issues[0].End.Line)
}

func TestDetectIfInIfConditionIdempotent(t *testing.T) {
	t.Parallel()
	code := `package main

func example(a bool) bool {
	if func() int {
		if a {
			return 1
		}
		return 0
	}() > 5 {
		return true
	}
	return false
}`

	node, fset, err := ParseFile("test.go", []byte(code))
	require.NoError(t, err)

	first, err := DetectIfInIfCondition("test.go", node, fset)
	require.NoError(t, err)
	second, err := DetectIfInIfCondition("test.go", node, fset)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
