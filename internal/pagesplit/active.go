package pagesplit

import (
	"strings"
)

// TagSpan 开始标签在内容行中的位置。行号相对于内容范围，列为字节偏移，EndCol 为 ">" 之后的列。
type TagSpan struct {
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// MarkActive 在 span 指定的开始标签内找到 class 属性，把其中的 base 改为 "base active"。
// class 已包含 active 时不做修改。返回开始标签的 class 是否包含 base。
func MarkActive(lines []string, span TagSpan, base, active string) ([]string, bool) {
	out := make([]string, len(lines))
	copy(out, lines)

	if span.StartLine < 0 || span.EndLine >= len(out) || span.StartLine > span.EndLine {
		return out, false
	}

	for i := span.StartLine; i <= span.EndLine; i++ {
		line := out[i]
		from, to := 0, len(line)
		if i == span.StartLine {
			from = span.StartCol
		}
		if i == span.EndLine {
			to = span.EndCol
		}
		if from < 0 || to > len(line) || from > to {
			return out, false
		}

		// 一个开始标签只有一个 class 属性
		rewritten, attr, ok := addClass(line[from:to], base, active)
		if attr {
			out[i] = line[:from] + rewritten + line[to:]
			return out, ok
		}
	}
	return out, false
}

// addClass 在标签片段中找到 class 属性，若包含 base 则在其后插入 active。
// attr 表示片段中是否有 class 属性，ok 表示 class 是否包含 base。
func addClass(tag, base, active string) (out string, attr, ok bool) {
	idx := indexClassAttr(tag)
	if idx < 0 {
		return tag, false, false
	}

	valueStart := idx + len("class=")
	quote := tag[valueStart]
	end := strings.IndexByte(tag[valueStart+1:], quote)
	if end < 0 {
		return tag, true, false
	}
	value := tag[valueStart+1 : valueStart+1+end]

	classes := strings.Fields(value)
	if !contains(classes, base) {
		return tag, true, false
	}
	if contains(classes, active) {
		return tag, true, true
	}

	rebuilt := make([]string, 0, len(classes)+1)
	for _, c := range classes {
		rebuilt = append(rebuilt, c)
		if c == base {
			rebuilt = append(rebuilt, active)
		}
	}

	return tag[:valueStart+1] + strings.Join(rebuilt, " ") + tag[valueStart+1+end:], true, true
}

// indexClassAttr 返回带引号的 class= 属性的位置，不匹配 data-class= 之类的属性
func indexClassAttr(line string) int {
	from := 0
	for {
		i := strings.Index(line[from:], "class=")
		if i < 0 {
			return -1
		}
		i += from
		valueStart := i + len("class=")
		boundary := i == 0 || line[i-1] == ' ' || line[i-1] == '\t' || line[i-1] == '\n' || line[i-1] == '<'
		if boundary && valueStart < len(line) && (line[valueStart] == '"' || line[valueStart] == '\'') {
			return i
		}
		from = i + 1
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
