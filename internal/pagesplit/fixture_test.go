package pagesplit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Moustapha-Cheikh07/Mission/internal/config"
)

const indexHTML = `<!DOCTYPE html>
<html lang="fr">
<head>
    <meta charset="UTF-8">
    <title>Qualité</title>
</head>
<body>
    <aside class="sidebar">
        <nav class="sidebar-nav px-3" aria-label="Menu principal">
            <a href="#dashboard" class="nav-item active" data-section="dashboard">
                <i class="bi bi-speedometer2"></i>
                <span>Tableau de bord</span>
            </a>
            <a href="#documents" class="nav-item" data-section="documents">
                <i class="bi bi-folder2-open"></i>
                <span>Dossiers Qualité</span>
            </a>
        </nav>
    </aside>
    <main class="main-content">
        <section id="dashboard" class="content-section active">
            <h1>Tableau de bord</h1>
            <div class="stats"><p>42</p></div>
        </section>

        <section id="production" class="content-section">
            <p>Production</p>
        </section>
        <section id="documents" class="content-section">
            <h1>Dossiers Qualité</h1>
            <section class="inner"><p>nested</p></section>
        </section>
        <section id="forms" class="content-section">
            <form><input type="text" name="q"><br></form>
        </section>
        <section id="training" class="content-section">
            <ul><li>one<li>two</ul>
        </section>
    </main>
    <div id="toast"></div>
    <script src="app.js"></script>
    <script>if (a < b) { console.log("</section>"); }</script>
</body>
</html>
`

const expectedDashboardNav = `        <nav class="sidebar-nav px-3" aria-label="Menu principal">
            <a href="dashboard.html" class="nav-item active">
                <i class="bi bi-speedometer2"></i>
                <span>Tableau de bord</span>
            </a>
            <a href="documents.html" class="nav-item">
                <i class="bi bi-folder2-open"></i>
                <span>Dossiers Qualité</span>
            </a>
            <a href="forms.html" class="nav-item">
                <i class="bi bi-file-earmark-text"></i>
                <span>Formulaires</span>
            </a>
            <a href="training.html" class="nav-item">
                <i class="bi bi-mortarboard"></i>
                <span>Formation</span>
            </a>
        </nav>
`

func mustParse(t *testing.T, text string) *Document {
	t.Helper()
	doc, err := ParseDocument([]byte(text))
	require.NoError(t, err)
	return doc
}

// lineOf 返回第一行包含 substr 的行号
func lineOf(t *testing.T, doc *Document, substr string) int {
	t.Helper()
	for i, line := range doc.Lines {
		if strings.Contains(line, substr) {
			return i
		}
	}
	t.Fatalf("no line contains %q", substr)
	return -1
}

func defaultSplitConfig() config.SplitConfig {
	return config.NewDefaultConfig().Split
}
