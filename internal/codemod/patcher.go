package codemod

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var _ FilePatcher = (*Patcher)(nil)

// Options Patcher 选项
type Options struct {
	Root   string // 计划中相对路径的根目录
	DryRun bool   // 只计算，不写回
	RunID  string
}

// Patcher 在文件上原地执行修改计划
type Patcher struct {
	opts     Options
	logger   *zap.Logger
	reporter Reporter
}

// NewPatcher 创建 Patcher
func NewPatcher(opts Options, logger *zap.Logger, reporter Reporter) *Patcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if reporter == nil {
		reporter = NewSilentReporter()
	}
	return &Patcher{
		opts:     opts,
		logger:   logger,
		reporter: reporter,
	}
}

func (p *Patcher) resolve(path string) string {
	if p.opts.Root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.opts.Root, path)
}

// PatchFile 对单个文件执行计划。
// 文件不存在不算错误：返回 StatusMissing 且不写任何文件。
func (p *Patcher) PatchFile(ctx context.Context, plan Plan) (*FileResult, error) {
	result := &FileResult{Path: plan.Path}
	if err := ctx.Err(); err != nil {
		return p.fail(result, err)
	}

	pipeline, err := NewPipeline(plan.Edits)
	if err != nil {
		return p.fail(result, err)
	}

	path := p.resolve(plan.Path)
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		result.Status = StatusMissing
		p.logger.Warn("file not found, skipping", zap.String("path", path))
		return result, nil
	}
	if err != nil {
		return p.fail(result, err)
	}
	result.Manual = pipeline.Manual()

	// 只有结构性修改：提示人工处理，不做自动修改
	if pipeline.Len() == 0 {
		result.Status = StatusManual
		p.logger.Warn("manual intervention required",
			zap.String("path", path),
			zap.Int("edits", len(result.Manual)))
		return result, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return p.fail(result, err)
	}

	original := string(content)
	patched, steps, err := pipeline.Run(original)
	result.Steps = steps
	if err != nil {
		return p.fail(result, err)
	}

	for _, step := range steps {
		p.logger.Debug("rule applied",
			zap.String("path", path),
			zap.String("rule", step.Rule),
			zap.Int("matches", step.Matches))
	}

	if patched == original {
		result.Status = StatusUnchanged
		p.logger.Info("no rule matched", zap.String("path", path))
		return result, nil
	}

	result.Status = StatusPatched
	if p.opts.DryRun {
		p.logger.Info("dry run, not writing",
			zap.String("path", path),
			zap.Int("substitutions", result.Substitutions()))
		return result, nil
	}

	if err := os.WriteFile(path, []byte(patched), info.Mode().Perm()); err != nil {
		return p.fail(result, err)
	}
	result.Written = true

	p.logger.Info("file patched",
		zap.String("path", path),
		zap.Int("substitutions", result.Substitutions()))

	return result, nil
}

func (p *Patcher) fail(result *FileResult, err error) (*FileResult, error) {
	result.Status = StatusFailed
	result.Err = fmt.Errorf("%s: %w", result.Path, err)
	p.logger.Error("patch failed", zap.String("path", result.Path), zap.Error(err))
	return result, result.Err
}

// Run 依次处理所有计划。单个文件失败不会中止后续文件，所有错误合并返回。
func (p *Patcher) Run(ctx context.Context, plans []Plan) (*Report, error) {
	report := &Report{RunID: p.opts.RunID, DryRun: p.opts.DryRun}
	p.reporter.Start(p.opts.RunID, plans)

	var errs error
	for _, plan := range plans {
		result, err := p.PatchFile(ctx, plan)
		errs = multierr.Append(errs, err)
		report.Files = append(report.Files, result)
		p.reporter.FileDone(result)

		if ctx.Err() != nil {
			break
		}
	}

	p.reporter.Finish(report)
	return report, errs
}
