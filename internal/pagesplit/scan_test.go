package pagesplit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanFindsStructure(t *testing.T) {
	doc := mustParse(t, indexHTML)

	st, err := Scan(doc, "sidebar-nav")
	require.NoError(t, err)

	require.NotNil(t, st.Nav)
	assert.Equal(t, lineOf(t, doc, "<nav "), st.Nav.OpenLine)
	assert.Equal(t, lineOf(t, doc, "</nav>"), st.Nav.CloseLine)
	assert.True(t, st.Nav.HasClass("px-3"))

	require.NotNil(t, st.Main)
	assert.Equal(t, lineOf(t, doc, "<main"), st.Main.OpenLine)
	assert.Equal(t, lineOf(t, doc, "</main>"), st.Main.CloseLine)

	ids := make([]string, 0, len(st.Sections))
	for _, s := range st.Sections {
		ids = append(ids, s.ID)
	}
	// 嵌套的 section 和 <script> 中的 "</section>" 都不影响结果
	assert.Equal(t, []string{"dashboard", "production", "documents", "forms", "training"}, ids)

	docs := st.Section("documents")
	require.NotNil(t, docs)
	assert.Equal(t, lineOf(t, doc, `id="documents"`), docs.OpenLine)
	assert.Equal(t, lineOf(t, doc, `class="inner"`)+1, docs.CloseLine)
	assert.Equal(t, "content-section", docs.Class)
	assert.Nil(t, st.Section("toast"))
}

func TestScanOffsetsMatchText(t *testing.T) {
	doc := mustParse(t, indexHTML)

	st, err := Scan(doc, "sidebar-nav")
	require.NoError(t, err)

	text := doc.Text()
	sec := st.Section("forms")
	require.NotNil(t, sec)
	assert.Equal(t, `<section id="forms" class="content-section">`, text[sec.OpenStart:sec.OpenEnd])
	assert.Equal(t, "</section>", text[sec.CloseStart:sec.CloseEnd])
}

func TestScanNavRequiresClass(t *testing.T) {
	doc := mustParse(t, "<nav class=\"top\">\n</nav>\n<nav class=\"sidebar-nav\">\n</nav>\n")

	st, err := Scan(doc, "sidebar-nav")
	require.NoError(t, err)
	require.NotNil(t, st.Nav)
	assert.Equal(t, 2, st.Nav.OpenLine)

	st, err = Scan(doc, "missing")
	require.NoError(t, err)
	assert.Nil(t, st.Nav)
}

func TestScanMultiLineOpenTag(t *testing.T) {
	doc := mustParse(t, "<main>\n  <section id=\"a\"\n    class=\"content-section\">\n  </section>\n</main>\n")

	st, err := Scan(doc, "sidebar-nav")
	require.NoError(t, err)
	require.Len(t, st.Sections, 1)

	sec := st.Sections[0]
	assert.Equal(t, 1, sec.OpenLine)
	assert.Equal(t, 2, sec.OpenEndLine)
	assert.Equal(t, 3, sec.CloseLine)
}

func TestScanSeparatesWrappedSections(t *testing.T) {
	doc := mustParse(t, "<main>\n  <section id=\"a\">\n  </section>\n  <div class=\"card\">\n"+
		"    <section id=\"b\">\n    </section>\n  </div>\n</main>\n")

	st, err := Scan(doc, "sidebar-nav")
	require.NoError(t, err)

	require.Len(t, st.Sections, 1)
	assert.Equal(t, "a", st.Sections[0].ID)
	assert.Equal(t, "main", st.Sections[0].Parent)

	require.Len(t, st.Nested, 1)
	assert.Equal(t, "b", st.Nested[0].ID)
	assert.Equal(t, "div", st.Nested[0].Parent)
	assert.Nil(t, st.Section("b"))
}

func TestScanUnclosedSection(t *testing.T) {
	doc := mustParse(t, "<main>\n  <section id=\"a\">\n  <p>x</p>\n")

	st, err := Scan(doc, "sidebar-nav")
	require.NoError(t, err)
	require.Len(t, st.Sections, 1)
	assert.False(t, st.Sections[0].Closed())
	assert.False(t, st.Main.Closed())
}
