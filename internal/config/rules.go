package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// RuleSpec 一条正则改写规则
type RuleSpec struct {
	Name        string `toml:"name"`
	Pattern     string `toml:"pattern"`
	Replacement string `toml:"replacement"`
}

// ManualSpec 无法用正则表达的结构性修改
type ManualSpec struct {
	Summary string   `toml:"summary"`
	Hints   []string `toml:"hints"`
}

// PlanSpec 一个目标文件的修改计划
type PlanSpec struct {
	Path        string       `toml:"path"`
	Description string       `toml:"description"`
	Rules       []RuleSpec   `toml:"rule"`
	Manual      []ManualSpec `toml:"manual"`
}

// RuleSet 规则文件的内容
type RuleSet struct {
	Plans []PlanSpec `toml:"plan"`
}

// LoadRuleSet 加载 TOML 规则文件
//
//	[[plan]]
//	path = "src/modules/documents.js"
//	  [[plan.rule]]
//	  pattern = 'displayDocuments: function\(\)'
//	  replacement = 'displayDocuments: async function()'
func LoadRuleSet(path string) (*RuleSet, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("rule file not found: %s", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file: %w", err)
	}

	rules := &RuleSet{}
	if _, err := toml.Decode(string(content), rules); err != nil {
		return nil, fmt.Errorf("failed to decode rule file %s: %w", path, err)
	}

	for i, plan := range rules.Plans {
		if plan.Path == "" {
			return nil, fmt.Errorf("rule file %s: plan %d is missing path", path, i)
		}
		if len(plan.Rules) == 0 && len(plan.Manual) == 0 {
			return nil, fmt.Errorf("rule file %s: plan %q has no rule or manual entry", path, plan.Path)
		}
		for j, rule := range plan.Rules {
			if rule.Pattern == "" {
				return nil, fmt.Errorf("rule file %s: plan %q rule %d has empty pattern", path, plan.Path, j)
			}
		}
	}

	return rules, nil
}
