package codemod

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompiledRuleApply(t *testing.T) {
	tests := []struct {
		name     string
		rule     Rule
		input    string
		expected string
		matches  int
	}{
		{
			name:     "no match leaves input untouched",
			rule:     Rule{Pattern: `displayDocuments: function\(\)`, Replacement: "displayDocuments: async function()"},
			input:    "var x = 1;\n",
			expected: "var x = 1;\n",
			matches:  0,
		},
		{
			name:     "single occurrence",
			rule:     Rule{Pattern: `displayDocuments: function\(\)`, Replacement: "displayDocuments: async function()"},
			input:    "a\ndisplayDocuments: function() {\nb\n",
			expected: "a\ndisplayDocuments: async function() {\nb\n",
			matches:  1,
		},
		{
			name:     "all non-overlapping occurrences",
			rule:     Rule{Pattern: `this\.load\(\);`, Replacement: "await this.load();"},
			input:    "this.load();\nfoo();\nthis.load();",
			expected: "await this.load();\nfoo();\nawait this.load();",
			matches:  2,
		},
		{
			name:     "capture group substitution",
			rule:     Rule{Pattern: `(\w+): function\(\)`, Replacement: "$1: async function()"},
			input:    "init: function() {}",
			expected: "init: async function() {}",
			matches:  1,
		},
		{
			name:     "negative lookbehind skips migrated calls",
			rule:     Rule{Pattern: `(?<!await )this\.load\(\);`, Replacement: "await this.load();"},
			input:    "await this.load();\nthis.load();",
			expected: "await this.load();\nawait this.load();",
			matches:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compiled, err := CompileRule(tt.rule)
			require.NoError(t, err)

			out, n, err := compiled.Apply(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
			assert.Equal(t, tt.matches, n)
		})
	}
}

func TestCompileRuleErrors(t *testing.T) {
	_, err := CompileRule(Rule{Name: "empty"})
	require.Error(t, err)

	_, err = CompileRule(Rule{Name: "broken", Pattern: `foo(`})
	require.Error(t, err)

	var ruleErr *RuleError
	require.True(t, errors.As(err, &ruleErr))
	assert.Equal(t, "broken", ruleErr.Rule)
}

func TestCompiledRuleName(t *testing.T) {
	named, err := CompileRule(Rule{Name: "named", Pattern: "x"})
	require.NoError(t, err)
	assert.Equal(t, "named", named.Name())

	anonymous, err := CompileRule(Rule{Pattern: "x+"})
	require.NoError(t, err)
	assert.Equal(t, "x+", anonymous.Name())
}
