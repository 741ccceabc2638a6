package pagesplit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// WritePages 把页面写入 outDir，覆盖同名文件。返回写入的路径。
func (s *Splitter) WritePages(ctx context.Context, pages []Page, outDir string) ([]string, error) {
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}

	written := make([]string, 0, len(pages))
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		path := filepath.Join(outDir, page.Entry.Target)
		if err := writeAtomic(path, []byte(page.Content)); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
		s.logger.Info("page written", zap.String("path", path), zap.Int("bytes", len(page.Content)))
	}
	return written, nil
}

// writeAtomic 先写临时文件再重命名，目标文件只会是旧内容或完整的新内容
func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
