package pagesplit

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Range 行范围，Start 包含，End 不包含（从 0 开始）
type Range struct {
	Start int
	End   int
}

// Len 返回行数
func (r Range) Len() int {
	return r.End - r.Start
}

// Overlaps 判断两个范围是否重叠
func (r Range) Overlaps(o Range) bool {
	return r.Start < o.End && o.Start < r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Document 按行保存的源文档，每行保留行结束符
type Document struct {
	Path    string
	Lines   []string
	text    string
	offsets []int // offsets[i] 为第 i 行首字节的偏移
}

// ReadDocument 读取并解析文件
func ReadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

// ParseDocument 解码为 UTF-8（识别 UTF-8/UTF-16 BOM）并按行切分
func ParseDocument(data []byte) (*Document, error) {
	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return newDocument(string(decoded)), nil
}

func newDocument(text string) *Document {
	lines := strings.SplitAfter(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	offsets := make([]int, len(lines))
	pos := 0
	for i, line := range lines {
		offsets[i] = pos
		pos += len(line)
	}

	return &Document{Lines: lines, text: text, offsets: offsets}
}

// Text 返回完整文本
func (d *Document) Text() string {
	return d.text
}

// Len 返回行数
func (d *Document) Len() int {
	return len(d.Lines)
}

// LineAt 返回字节偏移所在的行号
func (d *Document) LineAt(offset int) int {
	i := sort.Search(len(d.offsets), func(i int) bool { return d.offsets[i] > offset })
	if i == 0 {
		return 0
	}
	return i - 1
}

// LineStart 返回行首偏移
func (d *Document) LineStart(line int) int {
	if line >= len(d.offsets) {
		return len(d.text)
	}
	return d.offsets[line]
}

// Slice 返回范围内各行的副本
func (d *Document) Slice(r Range) []string {
	out := make([]string, r.Len())
	copy(out, d.Lines[r.Start:r.End])
	return out
}

// Newline 返回文档使用的换行符
func (d *Document) Newline() string {
	for _, line := range d.Lines {
		if strings.HasSuffix(line, "\r\n") {
			return "\r\n"
		}
		if strings.HasSuffix(line, "\n") {
			return "\n"
		}
	}
	return "\n"
}
