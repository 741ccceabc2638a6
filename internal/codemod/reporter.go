package codemod

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pterm/pterm"
)

var (
	_ Reporter = (*ConsoleReporter)(nil)
	_ Reporter = SilentReporter{}
	_ Reporter = (*RecordingReporter)(nil)
)

// ConsoleReporter 控制台输出
type ConsoleReporter struct {
	out       io.Writer
	verbose   bool
	nextSteps []string
}

// NewConsoleReporter 创建控制台报告器，out 为空时输出到标准输出
func NewConsoleReporter(out io.Writer, verbose bool) *ConsoleReporter {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleReporter{
		out:     out,
		verbose: verbose,
		nextSteps: []string{
			"Review the modified files",
			"Restart the server: cd server && node server.js",
			"Test document upload",
			"Check that data persists after a page reload",
		},
	}
}

// WithNextSteps 替换结束时显示的后续步骤
func (cr *ConsoleReporter) WithNextSteps(steps ...string) *ConsoleReporter {
	cr.nextSteps = steps
	return cr
}

// Start 显示标题
func (cr *ConsoleReporter) Start(runID string, plans []Plan) {
	banner := pterm.DefaultBox.WithTitle("MIGRATION").Sprintf(
		"localStorage -> database\n%d file(s) planned\nrun %s", len(plans), runID)
	fmt.Fprintln(cr.out, banner)
	fmt.Fprintln(cr.out)
}

// FileDone 显示单个文件的结果
func (cr *ConsoleReporter) FileDone(result *FileResult) {
	switch result.Status {
	case StatusPatched:
		color.New(color.FgGreen).Fprintf(cr.out, "✅ %s patched (%d substitution(s))\n",
			result.Path, result.Substitutions())
	case StatusUnchanged:
		color.New(color.FgBlue).Fprintf(cr.out, "• %s unchanged, no rule matched\n", result.Path)
	case StatusMissing:
		color.New(color.FgRed).Fprintf(cr.out, "❌ %s not found, skipped\n", result.Path)
	case StatusFailed:
		color.New(color.FgRed, color.Bold).Fprintf(cr.out, "❌ %s failed: %v\n", result.Path, result.Err)
	case StatusManual:
		color.New(color.FgYellow).Fprintf(cr.out, "⚠️  %s requires manual changes\n", result.Path)
	}

	for _, edit := range result.Manual {
		fmt.Fprintf(cr.out, "   %s\n", edit.Summary)
		if len(edit.Hints) > 0 {
			fmt.Fprintf(cr.out, "   Use %s\n", strings.Join(edit.Hints, ", "))
		}
	}

	if cr.verbose {
		for _, step := range result.Steps {
			fmt.Fprintf(cr.out, "   - %-40s %d\n", step.Rule, step.Matches)
		}
	}
}

// Finish 显示汇总表和后续步骤
func (cr *ConsoleReporter) Finish(report *Report) {
	fmt.Fprintln(cr.out)

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"File", "Status", "Substitutions", "Manual edits"})
	for _, f := range report.Files {
		t.AppendRow(table.Row{f.Path, f.Status.String(), f.Substitutions(), len(f.Manual)})
	}
	t.AppendFooter(table.Row{"", "", "patched", report.Count(StatusPatched)})
	fmt.Fprintln(cr.out, t.Render())

	if report.DryRun {
		color.New(color.FgYellow).Fprintln(cr.out, "Dry run: no file was written.")
	}

	title := color.New(color.FgGreen, color.Bold)
	title.Fprintln(cr.out, "MIGRATION COMPLETE")

	if len(cr.nextSteps) == 0 {
		return
	}

	items := make([]pterm.BulletListItem, 0, len(cr.nextSteps))
	for i, step := range cr.nextSteps {
		items = append(items, pterm.BulletListItem{Level: 0, Text: step, Bullet: fmt.Sprintf("%d.", i+1)})
	}
	list, err := pterm.DefaultBulletList.WithItems(items).Srender()
	if err != nil {
		return
	}
	fmt.Fprintln(cr.out, "Next steps:")
	fmt.Fprint(cr.out, list)
}

// SilentReporter 不输出任何内容
type SilentReporter struct{}

// NewSilentReporter 创建静默报告器
func NewSilentReporter() *SilentReporter {
	return &SilentReporter{}
}

func (SilentReporter) Start(string, []Plan)  {}
func (SilentReporter) FileDone(*FileResult) {}
func (SilentReporter) Finish(*Report)       {}

// RecordingReporter 记录回调，供测试使用
type RecordingReporter struct {
	RunID   string
	Planned int
	Results []*FileResult
	Final   *Report
}

func (rr *RecordingReporter) Start(runID string, plans []Plan) {
	rr.RunID = runID
	rr.Planned = len(plans)
}

func (rr *RecordingReporter) FileDone(result *FileResult) {
	rr.Results = append(rr.Results, result)
}

func (rr *RecordingReporter) Finish(report *Report) {
	rr.Final = report
}
