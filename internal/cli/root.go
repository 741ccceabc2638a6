package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Moustapha-Cheikh07/Mission/internal/config"
	"github.com/Moustapha-Cheikh07/Mission/internal/logger"
)

// rootOptions 所有子命令共享的标志
type rootOptions struct {
	cfgFile string
	debug   bool
	verbose bool
}

// NewRootCommand 创建根命令
func NewRootCommand(version, commit, buildDate string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "把质量文档应用从 localStorage 迁移到数据库 API 的一次性工具",
		Long: `migrate 包含两个迁移工具：

  patch  按顺序对 JavaScript 模块应用正则改写规则，把 localStorage 调用改为 API 调用；
         无法用正则完成的结构性修改会列为手动待办。
  split  把单页 index.html 拆分为 dashboard、documents、forms、training 四个页面，
         每个页面有自己的侧边栏导航和唯一的 active 内容区。

配置文件默认读取 ./.migrate.yaml 或 ~/.migrate.yaml，可以用 migrate config init 生成。`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "配置文件路径")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "启用调试日志")
	rootCmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "显示详细输出")

	rootCmd.AddCommand(
		newPatchCommand(opts),
		newSplitCommand(opts),
		newRulesCommand(opts),
		newConfigCommand(opts),
	)

	return rootCmd
}

// load 加载配置并创建带 run_id 的日志
func (o *rootOptions) load(command string) (*config.Config, *zap.Logger, string, error) {
	cfg, err := config.LoadConfig(o.cfgFile)
	if err != nil {
		return nil, nil, "", fmt.Errorf("加载配置失败: %w", err)
	}

	cfg.Debug = cfg.Debug || o.debug
	cfg.Verbose = cfg.Verbose || o.verbose

	log, runID := logger.WithRun(logger.NewCLILogger(cfg.Debug, cfg.Verbose), command)
	log.Debug("config loaded", zap.String("config", o.cfgFile))
	return cfg, log, runID, nil
}
