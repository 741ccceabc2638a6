package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Moustapha-Cheikh07/Mission/internal/codemod"
)

type patchOptions struct {
	root      string
	ruleFiles []string
	todoFile  string
	dryRun    bool
	noBuiltin bool
}

func newPatchCommand(root *rootOptions) *cobra.Command {
	opts := &patchOptions{}

	cmd := &cobra.Command{
		Use:   "patch",
		Short: "对 JavaScript 模块应用 localStorage -> API 改写规则",
		Long: `按顺序对每个目标文件应用改写规则并原地写回。

  - 目标文件不存在时跳过并继续处理其他文件；
  - 规则没有匹配不算错误，内容未变化的文件不会被写入；
  - 结构性修改不会自动执行，只输出提示，可以用 --todo 写入待办清单。

Examples:
  # 使用内置迁移计划
  migrate patch

  # 只查看将要修改的内容
  migrate patch --dry-run --verbose

  # 追加 TOML 规则文件并生成待办清单
  migrate patch --rules extra.toml --todo MIGRATION_TODO.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, runID, err := root.load("patch")
			if err != nil {
				return err
			}
			defer func() {
				_ = log.Sync()
			}()

			patchCfg := &cfg.Patch
			if cmd.Flags().Changed("root") {
				patchCfg.Root = opts.root
			}
			if cmd.Flags().Changed("todo") {
				patchCfg.TodoFile = opts.todoFile
			}
			if opts.dryRun {
				patchCfg.DryRun = true
			}
			if opts.noBuiltin {
				patchCfg.Builtin = false
			}
			patchCfg.RuleFiles = append(patchCfg.RuleFiles, opts.ruleFiles...)

			plans, err := codemod.LoadPlans(patchCfg.Builtin, patchCfg.RuleFiles)
			if err != nil {
				return err
			}

			reporter := codemod.NewConsoleReporter(cmd.OutOrStdout(), cfg.Verbose)
			patcher := codemod.NewPatcher(codemod.Options{
				Root:   patchCfg.Root,
				DryRun: patchCfg.DryRun,
				RunID:  runID,
			}, log, reporter)

			report, runErr := patcher.Run(cmd.Context(), plans)

			if patchCfg.TodoFile != "" && len(report.ManualEdits()) > 0 {
				if err := codemod.WriteTodo(report, patchCfg.TodoFile); err != nil {
					log.Error("write to-do list failed", zap.String("path", patchCfg.TodoFile), zap.Error(err))
					return err
				}
				log.Info("to-do list written", zap.String("path", patchCfg.TodoFile))
			}

			return runErr
		},
	}

	cmd.Flags().StringVar(&opts.root, "root", ".", "目标文件相对路径的根目录")
	cmd.Flags().StringSliceVar(&opts.ruleFiles, "rules", nil, "额外的 TOML 规则文件，可重复指定")
	cmd.Flags().StringVar(&opts.todoFile, "todo", "", "手动修改清单输出路径 (.md 或 .html)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "只报告，不写入文件")
	cmd.Flags().BoolVar(&opts.noBuiltin, "no-builtin", false, "不使用内置迁移计划")

	return cmd
}
