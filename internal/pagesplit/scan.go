package pagesplit

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element 源文档中一个元素的位置。偏移为字节偏移，行号从 0 开始。
type Element struct {
	Tag    string
	ID     string
	Class  string
	Parent string // 直接父元素的标签名

	OpenStart  int // "<" 的偏移
	OpenEnd    int // 开始标签 ">" 之后的偏移
	CloseStart int // 结束标签 "<" 的偏移，未闭合时为 -1
	CloseEnd   int

	OpenLine    int
	OpenEndLine int // 开始标签最后一个字符所在的行
	CloseLine   int // 未闭合时为 -1
}

// Closed 是否找到匹配的结束标签
func (e *Element) Closed() bool {
	return e.CloseStart >= 0
}

// HasClass 判断 class 属性是否包含指定类名
func (e *Element) HasClass(name string) bool {
	return hasClass(e.Class, name)
}

// Structure 文档中与拆分有关的结构标记
type Structure struct {
	Nav      *Element   // 第一个带导航 class 的 <nav>
	Main     *Element   // 第一个 <main>
	Sections []*Element // <main> 的直接子元素 <section>
	Nested   []*Element // 位于 <main> 中但被其他元素包裹的 <section>
}

// Section 按 id 查找顶层 section
func (s *Structure) Section(id string) *Element {
	for _, sec := range s.Sections {
		if sec.ID == id {
			return sec
		}
	}
	return nil
}

// nested 按 id 查找被包裹的 section
func (s *Structure) nested(id string) *Element {
	for _, sec := range s.Nested {
		if sec.ID == id {
			return sec
		}
	}
	return nil
}

// voidElements 没有结束标签的元素
var voidElements = map[atom.Atom]bool{
	atom.Area: true, atom.Base: true, atom.Br: true, atom.Col: true,
	atom.Embed: true, atom.Hr: true, atom.Img: true, atom.Input: true,
	atom.Link: true, atom.Meta: true, atom.Source: true, atom.Track: true,
	atom.Wbr: true,
}

type openElement struct {
	name string
	elem *Element // 只记录关心的元素
}

// Scan 使用 HTML 词法分析器定位导航、main 和 section 的位置
func Scan(doc *Document, navClass string) (*Structure, error) {
	z := html.NewTokenizer(strings.NewReader(doc.Text()))
	st := &Structure{}

	var stack []openElement
	offset := 0

	for {
		tt := z.Next()
		start := offset
		offset += len(z.Raw())

		switch tt {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return st, nil
			}
			return nil, fmt.Errorf("tokenize: %w", z.Err())

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if voidElements[tok.DataAtom] || tt == html.SelfClosingTagToken {
				continue
			}

			var tracked *Element
			switch tok.DataAtom {
			case atom.Nav:
				if st.Nav == nil && hasClass(attr(tok, "class"), navClass) {
					tracked = newElement(doc, tok, start, offset)
					st.Nav = tracked
				}
			case atom.Main:
				if st.Main == nil {
					tracked = newElement(doc, tok, start, offset)
					st.Main = tracked
				}
			case atom.Section:
				if inside(stack, st.Main) && !insideTag(stack, "section") {
					tracked = newElement(doc, tok, start, offset)
					tracked.Parent = stack[len(stack)-1].name
					if stack[len(stack)-1].elem == st.Main {
						st.Sections = append(st.Sections, tracked)
					} else {
						st.Nested = append(st.Nested, tracked)
					}
				}
			}
			stack = append(stack, openElement{name: tok.Data, elem: tracked})

		case html.EndTagToken:
			tok := z.Token()
			// 向上找到同名元素，中间未闭合的元素视为隐式闭合
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i].name != tok.Data {
					continue
				}
				if e := stack[i].elem; e != nil {
					e.CloseStart = start
					e.CloseEnd = offset
					e.CloseLine = doc.LineAt(start)
				}
				stack = stack[:i]
				break
			}
		}
	}
}

func newElement(doc *Document, tok html.Token, start, end int) *Element {
	return &Element{
		Tag:         tok.Data,
		ID:          attr(tok, "id"),
		Class:       attr(tok, "class"),
		OpenStart:   start,
		OpenEnd:     end,
		CloseStart:  -1,
		CloseEnd:    -1,
		OpenLine:    doc.LineAt(start),
		OpenEndLine: doc.LineAt(end - 1),
		CloseLine:   -1,
	}
}

func inside(stack []openElement, e *Element) bool {
	if e == nil {
		return false
	}
	for _, open := range stack {
		if open.elem == e {
			return true
		}
	}
	return false
}

func insideTag(stack []openElement, name string) bool {
	for _, open := range stack {
		if open.name == name {
			return true
		}
	}
	return false
}

func attr(tok html.Token, key string) string {
	for _, a := range tok.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(classAttr, name string) bool {
	for _, c := range strings.Fields(classAttr) {
		if c == name {
			return true
		}
	}
	return false
}
