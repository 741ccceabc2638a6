package codemod

import (
	"github.com/Moustapha-Cheikh07/Mission/internal/config"
)

// DefaultPlans 返回 localStorage -> 数据库迁移所需的内置修改计划。
// 给调用加 await 的规则带有 (?<!await ) 反向预查，重复运行不会产生 "await await"。
func DefaultPlans() []Plan {
	return []Plan{
		{
			Path:        "src/modules/documents.js",
			Description: "documents module: DataManager calls become async",
			Edits: []Edit{
				Mechanical("async displayDocuments",
					`displayDocuments: function\(\)`,
					`displayDocuments: async function()`),
				Mechanical("await getDocumentsByMachine",
					`const documents = DataManager\.getDocumentsByMachine\(`,
					`const documents = await DataManager.getDocumentsByMachine(`),
				Mechanical("await displayDocuments",
					`(?<!await )this\.displayDocuments\(\);`,
					`await this.displayDocuments();`),
				Mechanical("await addQualityDocument",
					`const saved = DataManager\.addQualityDocument\(`,
					`const saved = await DataManager.addQualityDocument(`),
				Mechanical("await deleteQualityDocument",
					`const deleted = DataManager\.deleteQualityDocument\(`,
					`const deleted = await DataManager.deleteQualityDocument(`),
			},
		},
		{
			Path:        "src/modules/training.js",
			Description: "training module: DataManager calls become async",
			Edits: []Edit{
				Mechanical("async init",
					`init: function\(\)`,
					`init: async function()`),
				Mechanical("async loadTrainingDocuments",
					`loadTrainingDocuments: function\(\)`,
					`loadTrainingDocuments: async function()`),
				Mechanical("await getTrainingDocuments",
					`const documents = DataManager\.getTrainingDocuments\(\)`,
					`const documents = await DataManager.getTrainingDocuments()`),
				Mechanical("await loadTrainingDocuments",
					`(?<!await )this\.loadTrainingDocuments\(\);`,
					`await this.loadTrainingDocuments();`),
				Mechanical("await addTrainingDocument",
					`const saved = DataManager\.addTrainingDocument\(`,
					`const saved = await DataManager.addTrainingDocument(`),
				Mechanical("await deleteTrainingDocument",
					`const deleted = DataManager\.deleteTrainingDocument\(`,
					`const deleted = await DataManager.deleteTrainingDocument(`),
			},
		},
		{
			Path:        "src/modules/fiche-etoile.js",
			Description: "fiche étoile module: storage moves to the server API",
			Edits: []Edit{
				Structural("replace localStorage access with ServerSync calls",
					"ServerSync.getFichesEtoile()",
					"ServerSync.addFicheEtoile()",
					"ServerSync.deleteFicheEtoile()"),
			},
		},
	}
}

// PlansFromRuleSet 把 TOML 规则文件转换为修改计划
func PlansFromRuleSet(rs *config.RuleSet) []Plan {
	plans := make([]Plan, 0, len(rs.Plans))
	for _, spec := range rs.Plans {
		plan := Plan{Path: spec.Path, Description: spec.Description}
		for _, r := range spec.Rules {
			plan.Edits = append(plan.Edits, Mechanical(r.Name, r.Pattern, r.Replacement))
		}
		for _, m := range spec.Manual {
			plan.Edits = append(plan.Edits, Structural(m.Summary, m.Hints...))
		}
		plans = append(plans, plan)
	}
	return plans
}

// LoadPlans 汇总内置计划和规则文件中的计划
func LoadPlans(builtin bool, ruleFiles []string) ([]Plan, error) {
	var plans []Plan
	if builtin {
		plans = append(plans, DefaultPlans()...)
	}
	for _, path := range ruleFiles {
		rs, err := config.LoadRuleSet(path)
		if err != nil {
			return nil, err
		}
		plans = append(plans, PlansFromRuleSet(rs)...)
	}
	return plans, nil
}
