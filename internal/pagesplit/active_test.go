package pagesplit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// spanOf 开始标签从 first 行的第一个 "<" 到 last 行的第一个 ">"
func spanOf(lines []string, first, last int) TagSpan {
	return TagSpan{
		StartLine: first,
		StartCol:  strings.Index(lines[first], "<"),
		EndLine:   last,
		EndCol:    strings.Index(lines[last], ">") + 1,
	}
}

func TestMarkActive(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		span  func([]string) TagSpan
		want  []string
		ok    bool
	}{
		{
			name:  "adds active after base class",
			lines: []string{"<section id=\"forms\" class=\"content-section\">\n", "</section>\n"},
			want:  []string{"<section id=\"forms\" class=\"content-section active\">\n", "</section>\n"},
			ok:    true,
		},
		{
			name:  "already active is unchanged",
			lines: []string{"<section id=\"forms\" class=\"content-section active\">\n"},
			want:  []string{"<section id=\"forms\" class=\"content-section active\">\n"},
			ok:    true,
		},
		{
			name:  "keeps other classes in place",
			lines: []string{"<section class='wide content-section dark' id='forms'>\n"},
			want:  []string{"<section class='wide content-section active dark' id='forms'>\n"},
			ok:    true,
		},
		{
			name:  "class on following line",
			lines: []string{"<section id=\"forms\"\n", "  data-class=\"x\" class=\"content-section\">\n"},
			span:  func(l []string) TagSpan { return spanOf(l, 0, 1) },
			want:  []string{"<section id=\"forms\"\n", "  data-class=\"x\" class=\"content-section active\">\n"},
			ok:    true,
		},
		{
			name:  "class before id on an earlier line",
			lines: []string{"<section class=\"content-section\"\n", "    id=\"forms\">\n", "</section>\n"},
			span:  func(l []string) TagSpan { return spanOf(l, 0, 1) },
			want:  []string{"<section class=\"content-section active\"\n", "    id=\"forms\">\n", "</section>\n"},
			ok:    true,
		},
		{
			name:  "class outside the tag is ignored",
			lines: []string{"<!-- class=\"content-section\" --><section id=\"forms\" class=\"content-section\">\n"},
			span: func(l []string) TagSpan {
				return TagSpan{StartCol: strings.Index(l[0], "<section"), EndCol: len(l[0]) - 1}
			},
			want: []string{"<!-- class=\"content-section\" --><section id=\"forms\" class=\"content-section active\">\n"},
			ok:   true,
		},
		{
			name:  "class of a child element is ignored",
			lines: []string{"<section id=\"forms\">\n", "  <div class=\"content-section\"></div>\n"},
			want:  []string{"<section id=\"forms\">\n", "  <div class=\"content-section\"></div>\n"},
			ok:    false,
		},
		{
			name:  "no base class",
			lines: []string{"<section id=\"forms\" class=\"panel\">\n"},
			want:  []string{"<section id=\"forms\" class=\"panel\">\n"},
			ok:    false,
		},
		{
			name:  "span outside the lines",
			lines: []string{"<section id=\"forms\" class=\"content-section\">\n"},
			span:  func([]string) TagSpan { return TagSpan{StartLine: 0, EndLine: 3} },
			want:  []string{"<section id=\"forms\" class=\"content-section\">\n"},
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := append([]string(nil), tt.lines...)
			span := spanOf(tt.lines, 0, 0)
			if tt.span != nil {
				span = tt.span(tt.lines)
			}

			got, ok := MarkActive(tt.lines, span, "content-section", "active")
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, original, tt.lines, "input must not be modified")
		})
	}
}

func TestIndexClassAttr(t *testing.T) {
	assert.Equal(t, -1, indexClassAttr(`<div data-class="x">`))
	assert.Equal(t, 5, indexClassAttr(`<div class="x">`))
	assert.Equal(t, 20, indexClassAttr(`<div data-class="x" class="y">`))
	assert.Equal(t, -1, indexClassAttr(`<div class=x>`))
}
