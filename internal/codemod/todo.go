package codemod

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Kunde21/markdownfmt/v3"
	"github.com/yuin/goldmark"
)

// RenderTodo 把需要人工处理的修改渲染为 Markdown 清单
func RenderTodo(report *Report) ([]byte, error) {
	manual := report.ManualEdits()

	paths := make([]string, 0, len(manual))
	for path := range manual {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var b strings.Builder
	b.WriteString("# Migration to-do\n\n")
	if report.RunID != "" {
		fmt.Fprintf(&b, "Run `%s` left %d file(s) that need manual changes.\n\n", report.RunID, len(paths))
	} else {
		fmt.Fprintf(&b, "%d file(s) need manual changes.\n\n", len(paths))
	}

	for _, path := range paths {
		fmt.Fprintf(&b, "## %s\n\n", path)
		for _, edit := range manual[path] {
			fmt.Fprintf(&b, "- %s\n", edit.Summary)
			for _, hint := range edit.Hints {
				fmt.Fprintf(&b, "  - `%s`\n", hint)
			}
		}
		b.WriteString("\n")
	}

	formatted, err := markdownfmt.Process("", []byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("format to-do report: %w", err)
	}
	return formatted, nil
}

// WriteTodo 写出清单，.html/.htm 后缀时转换为 HTML
func WriteTodo(report *Report, path string) error {
	content, err := RenderTodo(report)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		var buf bytes.Buffer
		if err := goldmark.Convert(content, &buf); err != nil {
			return fmt.Errorf("render to-do report: %w", err)
		}
		content = buf.Bytes()
	}

	return os.WriteFile(path, content, 0o644)
}
