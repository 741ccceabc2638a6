package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// PatchConfig 保存 Text Patcher 的配置
type PatchConfig struct {
	Root      string   `mapstructure:"root"`       // 目标文件相对路径的根目录
	RuleFiles []string `mapstructure:"rule_files"` // 额外的 TOML 规则文件
	TodoFile  string   `mapstructure:"todo_file"`  // 手动修改清单输出路径（.md 或 .html）
	Builtin   bool     `mapstructure:"builtin"`    // 是否包含内置迁移计划
	DryRun    bool     `mapstructure:"dry_run"`
}

// PageConfig 描述一个输出页面及其导航条目
type PageConfig struct {
	ID     string `mapstructure:"id"`
	Target string `mapstructure:"target"` // 为空时由 ID 生成
	Icon   string `mapstructure:"icon"`
	Label  string `mapstructure:"label"`
	Lines  []int  `mapstructure:"lines"` // 可选的固定行范围 [start, end)，会与结构标记校验
}

// SplitConfig 保存 Page Splitter 的配置
type SplitConfig struct {
	Source       string       `mapstructure:"source"`
	OutputDir    string       `mapstructure:"output_dir"`
	NavClass     string       `mapstructure:"nav_class"`     // 侧边栏 <nav> 的 class
	SectionClass string       `mapstructure:"section_class"` // 内容 <section> 的基础 class
	ActiveClass  string       `mapstructure:"active_class"`
	Verify       bool         `mapstructure:"verify"` // 写入前校验生成的页面
	DryRun       bool         `mapstructure:"dry_run"`
	Pages        []PageConfig `mapstructure:"pages"`
}

// Config 保存迁移工具的所有配置
type Config struct {
	Debug   bool        `mapstructure:"debug"`
	Verbose bool        `mapstructure:"verbose"`
	Patch   PatchConfig `mapstructure:"patch"`
	Split   SplitConfig `mapstructure:"split"`
}

// LoadConfig 从文件加载配置，找不到配置文件时使用默认值
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		v.AddConfigPath(".")
		v.AddConfigPath(home)
		v.SetConfigName(".migrate")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("MIGRATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if len(config.Split.Pages) == 0 {
		config.Split.Pages = DefaultPages()
	}

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults 设置默认值
func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("verbose", false)

	v.SetDefault("patch.root", ".")
	v.SetDefault("patch.builtin", true)
	v.SetDefault("patch.dry_run", false)

	v.SetDefault("split.source", "index_old.html")
	v.SetDefault("split.output_dir", ".")
	v.SetDefault("split.nav_class", "sidebar-nav")
	v.SetDefault("split.section_class", "content-section")
	v.SetDefault("split.active_class", "active")
	v.SetDefault("split.verify", true)
	v.SetDefault("split.dry_run", false)
}

// DefaultPages 返回默认的四个页面
func DefaultPages() []PageConfig {
	return []PageConfig{
		{ID: "dashboard", Target: "dashboard.html", Icon: "speedometer2", Label: "Tableau de bord"},
		{ID: "documents", Target: "documents.html", Icon: "folder2-open", Label: "Dossiers Qualité"},
		{ID: "forms", Target: "forms.html", Icon: "file-earmark-text", Label: "Formulaires"},
		{ID: "training", Target: "training.html", Icon: "mortarboard", Label: "Formation"},
	}
}

// NewDefaultConfig 创建一个新的默认配置
func NewDefaultConfig() *Config {
	return &Config{
		Patch: PatchConfig{
			Root:    ".",
			Builtin: true,
		},
		Split: SplitConfig{
			Source:       "index_old.html",
			OutputDir:    ".",
			NavClass:     "sidebar-nav",
			SectionClass: "content-section",
			ActiveClass:  "active",
			Verify:       true,
			Pages:        DefaultPages(),
		},
	}
}

// Validate 验证配置
func Validate(config *Config) error {
	split := config.Split
	if split.NavClass == "" {
		return fmt.Errorf("split.nav_class must be specified")
	}
	if split.SectionClass == "" {
		return fmt.Errorf("split.section_class must be specified")
	}
	if split.ActiveClass == "" {
		return fmt.Errorf("split.active_class must be specified")
	}

	seen := make(map[string]bool, len(split.Pages))
	for i, page := range split.Pages {
		if page.ID == "" {
			return fmt.Errorf("split.pages[%d]: id must be specified", i)
		}
		if seen[page.ID] {
			return fmt.Errorf("split.pages[%d]: duplicate id %q", i, page.ID)
		}
		seen[page.ID] = true

		if page.Lines != nil {
			if len(page.Lines) != 2 {
				return fmt.Errorf("split.pages[%d]: lines must be [start, end]", i)
			}
			if page.Lines[0] < 0 || page.Lines[0] >= page.Lines[1] {
				return fmt.Errorf("split.pages[%d]: invalid line range %v", i, page.Lines)
			}
		}
	}

	return nil
}
