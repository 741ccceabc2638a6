package cli

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Moustapha-Cheikh07/Mission/internal/codemod"
)

func newRulesCommand(root *rootOptions) *cobra.Command {
	var ruleFiles []string
	var noBuiltin bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "列出 patch 将要使用的迁移计划和规则",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, _, err := root.load("rules")
			if err != nil {
				return err
			}
			defer func() {
				_ = log.Sync()
			}()

			builtin := cfg.Patch.Builtin && !noBuiltin
			plans, err := codemod.LoadPlans(builtin, append(cfg.Patch.RuleFiles, ruleFiles...))
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"#", "File", "Kind", "Rule", "Pattern"})
			for _, plan := range plans {
				for i, edit := range plan.Edits {
					switch edit.Kind {
					case codemod.KindMechanical:
						t.AppendRow(table.Row{i + 1, plan.Path, edit.Kind, edit.Rule.Name, edit.Rule.Pattern})
					case codemod.KindStructural:
						t.AppendRow(table.Row{i + 1, plan.Path, edit.Kind, edit.Structural.Summary,
							strings.Join(edit.Structural.Hints, ", ")})
					}
				}
				t.AppendSeparator()
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			fmt.Fprintf(cmd.OutOrStdout(), "%d plan(s)\n", len(plans))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&ruleFiles, "rules", nil, "额外的 TOML 规则文件")
	cmd.Flags().BoolVar(&noBuiltin, "no-builtin", false, "不包含内置迁移计划")

	return cmd
}
