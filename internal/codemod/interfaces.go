package codemod

import (
	"context"
)

// Rule 一条正则改写规则：按顺序替换所有不重叠的匹配
type Rule struct {
	Name        string
	Pattern     string // regexp2 语法，支持反向预查
	Replacement string // 支持 $1 / ${name} 引用
}

// EditKind 修改类型
type EditKind int

const (
	KindMechanical EditKind = iota // 可以通过正则自动应用
	KindStructural                 // 需要人工修改
)

func (k EditKind) String() string {
	switch k {
	case KindMechanical:
		return "mechanical"
	case KindStructural:
		return "structural"
	default:
		return "unknown"
	}
}

// StructuralEdit 无法用正则表达的修改，只会被报告，不会被应用
type StructuralEdit struct {
	Summary string
	Hints   []string
}

// Edit 修改项，Kind 决定 Rule 和 Structural 哪个字段有效
type Edit struct {
	Kind       EditKind
	Rule       Rule
	Structural StructuralEdit
}

// Mechanical 创建一个正则修改项
func Mechanical(name, pattern, replacement string) Edit {
	return Edit{
		Kind: KindMechanical,
		Rule: Rule{Name: name, Pattern: pattern, Replacement: replacement},
	}
}

// Structural 创建一个需要人工处理的修改项
func Structural(summary string, hints ...string) Edit {
	return Edit{
		Kind:       KindStructural,
		Structural: StructuralEdit{Summary: summary, Hints: hints},
	}
}

// Plan 一个目标文件的修改计划
type Plan struct {
	Path        string
	Description string
	Edits       []Edit
}

// Status 文件处理结果
type Status int

const (
	StatusPatched   Status = iota // 已写回文件
	StatusUnchanged               // 没有任何匹配，文件未改动
	StatusMissing                 // 文件不存在，已跳过
	StatusManual                  // 只有结构性修改，需要人工处理
	StatusFailed                  // 读写或规则错误
)

func (s Status) String() string {
	switch s {
	case StatusPatched:
		return "patched"
	case StatusUnchanged:
		return "unchanged"
	case StatusMissing:
		return "missing"
	case StatusManual:
		return "manual"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StepResult 单条规则的执行结果
type StepResult struct {
	Rule    string
	Matches int
}

// FileResult 单个文件的处理结果
type FileResult struct {
	Path    string
	Status  Status
	Steps   []StepResult
	Manual  []StructuralEdit
	Written bool
	Err     error
}

// Substitutions 返回所有规则的替换总数
func (r *FileResult) Substitutions() int {
	total := 0
	for _, s := range r.Steps {
		total += s.Matches
	}
	return total
}

// Report 一次运行的汇总
type Report struct {
	RunID  string
	DryRun bool
	Files  []*FileResult
}

// Count 统计指定状态的文件数
func (r *Report) Count(status Status) int {
	n := 0
	for _, f := range r.Files {
		if f.Status == status {
			n++
		}
	}
	return n
}

// ManualEdits 按文件返回所有待人工处理的修改
func (r *Report) ManualEdits() map[string][]StructuralEdit {
	out := make(map[string][]StructuralEdit)
	for _, f := range r.Files {
		if len(f.Manual) > 0 {
			out[f.Path] = f.Manual
		}
	}
	return out
}

// Reporter 输出处理进度和结果
type Reporter interface {
	// Start 在处理第一个文件之前调用
	Start(runID string, plans []Plan)

	// FileDone 每个文件处理完成后调用
	FileDone(result *FileResult)

	// Finish 所有文件处理完成后调用
	Finish(report *Report)
}

// FilePatcher 对文件应用修改计划
type FilePatcher interface {
	PatchFile(ctx context.Context, plan Plan) (*FileResult, error)
	Run(ctx context.Context, plans []Plan) (*Report, error)
}
