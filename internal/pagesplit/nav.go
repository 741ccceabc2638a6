package pagesplit

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"golang.org/x/net/html"

	"github.com/Moustapha-Cheikh07/Mission/internal/config"
)

// NavItemClass 侧边栏链接的 class
const NavItemClass = "nav-item"

// NavEntry 侧边栏中的一个链接
type NavEntry struct {
	ID     string
	Target string
	Icon   string
	Label  string
}

// EntriesFromConfig 把页面配置转换为导航条目，未设置 Target 时由 ID 生成文件名
func EntriesFromConfig(pages []config.PageConfig) []NavEntry {
	entries := make([]NavEntry, 0, len(pages))
	for _, p := range pages {
		target := p.Target
		if target == "" {
			target = slug.Make(p.ID) + ".html"
		}
		entries = append(entries, NavEntry{ID: p.ID, Target: target, Icon: p.Icon, Label: p.Label})
	}
	return entries
}

// RenderNav 生成导航链接行，ID 等于 activeID 的条目带 active 标记
func RenderNav(entries []NavEntry, activeID, activeClass, indent, newline string) []string {
	lines := make([]string, 0, len(entries)*4)
	for _, e := range entries {
		class := NavItemClass
		if e.ID == activeID {
			class += " " + activeClass
		}
		lines = append(lines,
			fmt.Sprintf(`%s<a href="%s" class="%s">%s`, indent, html.EscapeString(e.Target), class, newline),
			fmt.Sprintf(`%s    <i class="bi bi-%s"></i>%s`, indent, html.EscapeString(e.Icon), newline),
			fmt.Sprintf(`%s    <span>%s</span>%s`, indent, html.EscapeString(e.Label), newline),
			fmt.Sprintf(`%s</a>%s`, indent, newline),
		)
	}
	return lines
}

// navBlock 导航块的行范围和重建所需的原始片段
type navBlock struct {
	lines   Range
	openTag string // 原始开始标签
	indent  string
}

// locateNav 检查导航块独占若干整行，返回重建所需的信息
func locateNav(doc *Document, nav *Element) (*navBlock, error) {
	if nav == nil {
		return nil, ErrNavNotFound
	}
	if !nav.Closed() {
		return nil, fmt.Errorf("%w: <nav> at line %d is never closed", ErrBoundaryMismatch, nav.OpenLine+1)
	}

	text := doc.Text()
	prefix := text[doc.LineStart(nav.OpenLine):nav.OpenStart]
	if strings.TrimSpace(prefix) != "" {
		return nil, fmt.Errorf("%w: <nav> at line %d shares its line with other content", ErrBoundaryMismatch, nav.OpenLine+1)
	}
	suffix := text[nav.CloseEnd:doc.LineStart(nav.CloseLine+1)]
	if strings.TrimSpace(suffix) != "" {
		return nil, fmt.Errorf("%w: </nav> at line %d shares its line with other content", ErrBoundaryMismatch, nav.CloseLine+1)
	}

	return &navBlock{
		lines:   Range{Start: nav.OpenLine, End: nav.CloseLine + 1},
		openTag: text[nav.OpenStart:nav.OpenEnd],
		indent:  prefix,
	}, nil
}

// render 生成整个导航块
func (b *navBlock) render(entries []NavEntry, activeID, activeClass, newline string) []string {
	out := []string{b.indent + b.openTag + newline}
	out = append(out, RenderNav(entries, activeID, activeClass, b.indent+"    ", newline)...)
	out = append(out, b.indent+"</nav>"+newline)
	return out
}

// SpliceNav 用新的导航块替换 header 中 block 范围内的行
func SpliceNav(header []string, block Range, nav []string) []string {
	out := make([]string, 0, len(header)-block.Len()+len(nav))
	out = append(out, header[:block.Start]...)
	out = append(out, nav...)
	out = append(out, header[block.End:]...)
	return out
}
