package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// SaveConfig 将配置保存到文件
func SaveConfig(config *Config, path string) error {
	if path == "" {
		path = ".migrate.yaml"
	}

	v := viper.New()
	v.SetConfigType("yaml")

	v.Set("debug", config.Debug)
	v.Set("verbose", config.Verbose)

	v.Set("patch.root", config.Patch.Root)
	v.Set("patch.rule_files", config.Patch.RuleFiles)
	v.Set("patch.todo_file", config.Patch.TodoFile)
	v.Set("patch.builtin", config.Patch.Builtin)

	v.Set("split.source", config.Split.Source)
	v.Set("split.output_dir", config.Split.OutputDir)
	v.Set("split.nav_class", config.Split.NavClass)
	v.Set("split.section_class", config.Split.SectionClass)
	v.Set("split.active_class", config.Split.ActiveClass)
	v.Set("split.verify", config.Split.Verify)
	v.Set("split.pages", pagesToMaps(config.Split.Pages))

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return v.WriteConfigAs(path)
}

// pagesToMaps 转换为 viper 可以按 mapstructure 键写出的结构
func pagesToMaps(pages []PageConfig) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(pages))
	for _, p := range pages {
		m := map[string]interface{}{
			"id":     p.ID,
			"target": p.Target,
			"icon":   p.Icon,
			"label":  p.Label,
		}
		if p.Lines != nil {
			m["lines"] = p.Lines
		}
		out = append(out, m)
	}
	return out
}
