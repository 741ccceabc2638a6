package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Moustapha-Cheikh07/Mission/internal/config"
	"github.com/Moustapha-Cheikh07/Mission/internal/pagesplit"
)

type splitOptions struct {
	source   string
	outDir   string
	pages    []string
	dryRun   bool
	noVerify bool
}

func newSplitCommand(root *rootOptions) *cobra.Command {
	opts := &splitOptions{}

	cmd := &cobra.Command{
		Use:   "split",
		Short: "把 index.html 拆分为独立页面",
		Long: `根据文档中的 <nav>、<main> 和 <section id=...> 标记拆分源文件。

每个页面包含共享的头部和尾部、重新生成的侧边栏导航（只有当前页面为 active），
以及带 active class 的内容区。已存在的同名文件会被覆盖。
结构标记与配置不一致时不会写入任何文件。

Examples:
  migrate split
  migrate split --source index_old.html --out public
  migrate split --page forms --page training --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, _, err := root.load("split")
			if err != nil {
				return err
			}
			defer func() {
				_ = log.Sync()
			}()

			splitCfg := &cfg.Split
			if cmd.Flags().Changed("source") {
				splitCfg.Source = opts.source
			}
			if cmd.Flags().Changed("out") {
				splitCfg.OutputDir = opts.outDir
			}
			if opts.dryRun {
				splitCfg.DryRun = true
			}
			if opts.noVerify {
				splitCfg.Verify = false
			}

			if err := checkPageIDs(opts.pages, splitCfg.Pages); err != nil {
				return err
			}

			splitter := pagesplit.NewSplitter(*splitCfg, log)
			pages, err := splitter.SplitFile(cmd.Context(), splitCfg.Source)
			if err != nil {
				log.Error("split failed", zap.String("source", splitCfg.Source), zap.Error(err))
				return err
			}
			if pages, err = pagesplit.Filter(pages, opts.pages); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if splitCfg.DryRun {
				printPageTable(out, pages)
				color.New(color.FgYellow).Fprintln(out, "Dry run: no file was written.")
				return nil
			}

			written, err := splitter.WritePages(cmd.Context(), pages, splitCfg.OutputDir)
			for i, path := range written {
				color.New(color.FgGreen).Fprintf(out, "✅ %s created (%s)\n", path, pages[i].Entry.Label)
			}
			if err != nil {
				return err
			}

			color.New(color.FgGreen, color.Bold).Fprintf(out, "\n%d page(s) created\n", len(written))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.source, "source", "index_old.html", "源 HTML 文件")
	cmd.Flags().StringVar(&opts.outDir, "out", ".", "输出目录")
	cmd.Flags().StringSliceVar(&opts.pages, "page", nil, "只生成指定 id 的页面，可重复指定")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "只显示将要生成的页面，不写入文件")
	cmd.Flags().BoolVar(&opts.noVerify, "no-verify", false, "跳过生成页面的校验")

	return cmd
}

// checkPageIDs 检查 --page 指定的 id，未知 id 给出最接近的建议
func checkPageIDs(ids []string, pages []config.PageConfig) error {
	known := make([]string, 0, len(pages))
	for _, p := range pages {
		known = append(known, p.ID)
	}

	for _, id := range ids {
		if contains(known, id) {
			continue
		}
		if s := suggest(id, known); s != "" {
			return fmt.Errorf("%w: %q, did you mean %q?", pagesplit.ErrUnknownPage, id, s)
		}
		return fmt.Errorf("%w: %q (known: %s)", pagesplit.ErrUnknownPage, id, strings.Join(known, ", "))
	}
	return nil
}

// suggest 先按子序列匹配排序，没有结果时退回编辑距离
func suggest(id string, known []string) string {
	ranks := fuzzy.RankFindFold(id, known)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	best, bestDist := "", 4
	for _, k := range known {
		if d := fuzzy.LevenshteinDistance(strings.ToLower(id), strings.ToLower(k)); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}

func printPageTable(out io.Writer, pages []pagesplit.Page) {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Page", "Target", "Source lines", "Bytes"})
	for _, p := range pages {
		lines := fmt.Sprintf("%d-%d", p.Range.Start+1, p.Range.End)
		t.AppendRow(table.Row{p.Entry.ID, p.Entry.Target, lines, len(p.Content)})
	}
	fmt.Fprintln(out, t.Render())
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
