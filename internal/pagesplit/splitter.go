package pagesplit

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Moustapha-Cheikh07/Mission/internal/config"
)

// Page 一个输出页面
type Page struct {
	Entry   NavEntry
	Range   Range    // 源文档中的内容范围
	Body    []string // 内容行，已加上 active 标记
	Content string   // header + 内容 + </main> + footer
}

// Splitter 把一个 HTML 文档拆分为多个页面
type Splitter struct {
	cfg     config.SplitConfig
	entries []NavEntry
	logger  *zap.Logger
}

// NewSplitter 创建 Splitter
func NewSplitter(cfg config.SplitConfig, logger *zap.Logger) *Splitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Splitter{
		cfg:     cfg,
		entries: EntriesFromConfig(cfg.Pages),
		logger:  logger,
	}
}

// Entries 返回导航条目
func (s *Splitter) Entries() []NavEntry {
	return s.entries
}

// Split 为每个导航条目生成一个页面
func (s *Splitter) Split(ctx context.Context, doc *Document) ([]Page, error) {
	st, err := Scan(doc, s.cfg.NavClass)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(s.entries))
	overrides := make(map[string]Range)
	for i, e := range s.entries {
		ids = append(ids, e.ID)
		if lines := s.cfg.Pages[i].Lines; len(lines) == 2 {
			overrides[e.ID] = Range{Start: lines[0], End: lines[1]}
		}
	}

	layout, err := BuildLayout(doc, st, ids, overrides)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("document layout",
		zap.Stringer("header", layout.Header),
		zap.Stringer("nav", layout.Nav.lines),
		zap.Stringer("closing", layout.Closing),
		zap.Stringer("footer", layout.Footer))

	header := doc.Slice(layout.Header)
	closing := doc.Slice(layout.Closing)
	footer := doc.Slice(layout.Footer)
	newline := doc.Newline()

	pages := make([]Page, 0, len(s.entries))
	for _, entry := range s.entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sec, _ := layout.Section(entry.ID)
		r := sec.Range
		body, ok := MarkActive(doc.Slice(r), sec.Open, s.cfg.SectionClass, s.cfg.ActiveClass)
		if !ok {
			return nil, fmt.Errorf("%w: %q has no %q class at line %d", ErrSectionClass, entry.ID, s.cfg.SectionClass, r.Start+1)
		}

		nav := layout.Nav.render(s.entries, entry.ID, s.cfg.ActiveClass, newline)
		pageHeader := SpliceNav(header, layout.Nav.lines, nav)

		var b strings.Builder
		for _, part := range [][]string{pageHeader, body, closing, footer} {
			for _, line := range part {
				b.WriteString(line)
			}
		}

		page := Page{Entry: entry, Range: r, Body: body, Content: b.String()}
		if s.cfg.Verify {
			if err := Verify(page, s.cfg.NavClass, s.cfg.SectionClass, s.cfg.ActiveClass); err != nil {
				return nil, err
			}
		}

		s.logger.Info("page built",
			zap.String("page", entry.ID),
			zap.String("target", entry.Target),
			zap.Stringer("range", r))
		pages = append(pages, page)
	}

	return pages, nil
}

// SplitFile 读取源文件并拆分
func (s *Splitter) SplitFile(ctx context.Context, path string) ([]Page, error) {
	doc, err := ReadDocument(path)
	if err != nil {
		return nil, err
	}
	return s.Split(ctx, doc)
}

// Filter 只保留指定 id 的页面，未知 id 返回 ErrUnknownPage
func Filter(pages []Page, ids []string) ([]Page, error) {
	if len(ids) == 0 {
		return pages, nil
	}

	byID := make(map[string]Page, len(pages))
	for _, p := range pages {
		byID[p.Entry.ID] = p
	}

	out := make([]Page, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPage, id)
		}
		out = append(out, p)
	}
	return out, nil
}
