package codemod

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

// DefaultMatchTimeout 单条规则的匹配超时，防止灾难性回溯
const DefaultMatchTimeout = 2 * time.Second

// RuleError 规则编译或执行错误
type RuleError struct {
	Rule string
	Err  error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("rule %q: %v", e.Rule, e.Err)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

// CompiledRule 编译后的规则
type CompiledRule struct {
	rule Rule
	re   *regexp2.Regexp
}

// CompileRule 编译规则
func CompileRule(rule Rule) (*CompiledRule, error) {
	if rule.Pattern == "" {
		return nil, &RuleError{Rule: rule.displayName(), Err: fmt.Errorf("empty pattern")}
	}

	re, err := regexp2.Compile(rule.Pattern, regexp2.None)
	if err != nil {
		return nil, &RuleError{Rule: rule.displayName(), Err: err}
	}
	re.MatchTimeout = DefaultMatchTimeout

	return &CompiledRule{rule: rule, re: re}, nil
}

// Name 返回规则名称，没有名称时使用正则本身
func (c *CompiledRule) Name() string {
	return c.rule.displayName()
}

// Count 统计不重叠的匹配数
func (c *CompiledRule) Count(text string) (int, error) {
	n := 0
	m, err := c.re.FindStringMatch(text)
	for m != nil && err == nil {
		n++
		m, err = c.re.FindNextMatch(m)
	}
	if err != nil {
		return 0, &RuleError{Rule: c.Name(), Err: err}
	}
	return n, nil
}

// Apply 替换所有不重叠的匹配，返回新文本和替换次数。
// 没有匹配时原样返回输入。
func (c *CompiledRule) Apply(text string) (string, int, error) {
	n, err := c.Count(text)
	if err != nil || n == 0 {
		return text, 0, err
	}

	out, err := c.re.Replace(text, c.rule.Replacement, -1, -1)
	if err != nil {
		return text, 0, &RuleError{Rule: c.Name(), Err: err}
	}
	return out, n, nil
}

// Step 把规则包装为流水线步骤
func (c *CompiledRule) Step() Step {
	return func(text string) (string, StepResult, error) {
		out, n, err := c.Apply(text)
		return out, StepResult{Rule: c.Name(), Matches: n}, err
	}
}

func (r Rule) displayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Pattern
}
