package pagesplit

import (
	"fmt"
	"sort"
	"strings"
)

// SectionRange 一个页面的内容范围
type SectionRange struct {
	ID    string
	Range Range
	Open  TagSpan // section 开始标签在 Range 内的位置
}

// Layout 文档划分：header、每个页面的内容、</main> 所在行和 footer
type Layout struct {
	Header   Range
	Nav      *navBlock
	Sections []SectionRange
	Closing  Range // </main> 所在的行，每个页面的内容后都会追加
	Footer   Range
}

// Section 按 id 查找内容范围
func (l *Layout) Section(id string) (SectionRange, bool) {
	for _, s := range l.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return SectionRange{}, false
}

// BuildLayout 根据结构标记计算各部分的行范围。
// overrides 中的固定范围必须与结构标记一致，否则返回 ErrBoundaryMismatch。
func BuildLayout(doc *Document, st *Structure, ids []string, overrides map[string]Range) (*Layout, error) {
	if st.Main == nil {
		return nil, ErrMainNotFound
	}
	main := st.Main
	if !main.Closed() {
		return nil, fmt.Errorf("%w: <main> at line %d is never closed", ErrBoundaryMismatch, main.OpenLine+1)
	}

	// 页面对应的 section 必须是 <main> 的直接子元素
	for _, id := range ids {
		if st.Section(id) != nil {
			continue
		}
		if sec := st.nested(id); sec != nil {
			return nil, fmt.Errorf("%w: section %q at line %d is inside <%s>, not directly inside <main>",
				ErrBoundaryMismatch, id, sec.OpenLine+1, sec.Parent)
		}
	}
	if len(st.Sections) == 0 {
		return nil, fmt.Errorf("%w: no <section> inside <main>", ErrSectionNotFound)
	}

	first := st.Sections[0]
	if first.OpenLine <= main.OpenEndLine {
		return nil, fmt.Errorf("%w: first section at line %d shares its line with <main>", ErrBoundaryMismatch, first.OpenLine+1)
	}

	text := doc.Text()
	closePrefix := text[doc.LineStart(main.CloseLine):main.CloseStart]
	if strings.TrimSpace(closePrefix) != "" {
		return nil, fmt.Errorf("%w: </main> at line %d shares its line with other content", ErrBoundaryMismatch, main.CloseLine+1)
	}

	nav, err := locateNav(doc, st.Nav)
	if err != nil {
		return nil, err
	}
	if nav.lines.End > first.OpenLine {
		return nil, fmt.Errorf("%w: navigation block must precede the first section", ErrBoundaryMismatch)
	}

	layout := &Layout{
		Header:  Range{Start: 0, End: first.OpenLine},
		Nav:     nav,
		Closing: Range{Start: main.CloseLine, End: main.CloseLine + 1},
		Footer:  Range{Start: main.CloseLine + 1, End: doc.Len()},
	}

	for _, id := range ids {
		sec := st.Section(id)
		if sec == nil {
			return nil, fmt.Errorf("%w: %q", ErrSectionNotFound, id)
		}
		if !sec.Closed() {
			return nil, fmt.Errorf("%w: section %q at line %d is never closed", ErrBoundaryMismatch, id, sec.OpenLine+1)
		}

		r := Range{Start: sec.OpenLine, End: sec.CloseLine + 1}
		if o, ok := overrides[id]; ok {
			if err := validateOverride(st, sec, o); err != nil {
				return nil, err
			}
			r = o
		}
		if r.End > main.CloseLine {
			return nil, fmt.Errorf("%w: section %q ends on the </main> line", ErrBoundaryMismatch, id)
		}
		layout.Sections = append(layout.Sections, SectionRange{ID: id, Range: r, Open: openSpan(doc, sec, r)})
	}

	if err := checkOverlap(layout.Sections); err != nil {
		return nil, err
	}

	return layout, nil
}

// validateOverride 固定范围必须从 section 开始行开始，覆盖到其结束行，且不进入下一个 section
func validateOverride(st *Structure, sec *Element, o Range) error {
	if o.Start != sec.OpenLine {
		return fmt.Errorf("%w: section %q starts at line %d, configured range %v",
			ErrBoundaryMismatch, sec.ID, sec.OpenLine, o)
	}
	if o.End < sec.CloseLine+1 {
		return fmt.Errorf("%w: section %q ends at line %d, configured range %v cuts it short",
			ErrBoundaryMismatch, sec.ID, sec.CloseLine, o)
	}

	limit := st.Main.CloseLine
	for _, other := range st.Sections {
		if other.OpenLine > sec.OpenLine && other.OpenLine < limit {
			limit = other.OpenLine
		}
	}
	if o.End > limit {
		return fmt.Errorf("%w: configured range %v for section %q runs past line %d",
			ErrBoundaryMismatch, o, sec.ID, limit)
	}
	return nil
}

// openSpan 返回 section 开始标签相对于内容范围的位置
func openSpan(doc *Document, sec *Element, r Range) TagSpan {
	return TagSpan{
		StartLine: sec.OpenLine - r.Start,
		StartCol:  sec.OpenStart - doc.LineStart(sec.OpenLine),
		EndLine:   sec.OpenEndLine - r.Start,
		EndCol:    sec.OpenEnd - doc.LineStart(sec.OpenEndLine),
	}
}

func checkOverlap(sections []SectionRange) error {
	sorted := make([]SectionRange, len(sections))
	copy(sorted, sections)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Range.Start < sorted[j].Range.Start })

	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Range.Overlaps(sorted[i].Range) {
			return fmt.Errorf("%w: %q %v and %q %v", ErrOverlap,
				sorted[i-1].ID, sorted[i-1].Range, sorted[i].ID, sorted[i].Range)
		}
	}
	return nil
}
