// Package guide renders the user guide: an embedded markdown document plus a
// reference section generated from the style and icon tables.
package guide

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/easylandingweb/easylanding/internal/page"
	"github.com/easylandingweb/easylanding/internal/style"
)

//go:embed guide.md
var guideMarkdown string

var pageTmpl = template.Must(template.New("guide").Parse(pageTemplate))

// pageData holds the data passed to the HTML template.
type pageData struct {
	Title   string
	Content template.HTML
}

// Markdown returns the full guide source, reference tables included.
func Markdown() string {
	return guideMarkdown + "\n" + Reference()
}

// Reference builds the markdown tables listing templates, color groups, mood
// rules and social networks.
func Reference() string {
	var b strings.Builder
	b.WriteString("## Référence\n\n### Modèles\n\n| Id | Nom | Description |\n|---|---|---|\n")
	for _, t := range style.Templates() {
		fmt.Fprintf(&b, "| `%s` | %s | %s |\n", t.ID, t.Name, t.Description)
	}

	b.WriteString("\n### Couleurs (la première reconnue gagne)\n\n| Groupe | Mots-clés |\n|---|---|\n")
	for _, r := range style.PaletteKeywords() {
		fmt.Fprintf(&b, "| %s | %s |\n", r.Name, keywordList(r.Keywords))
	}

	b.WriteString("\n### Ambiances (cumulables, dans cet ordre)\n\n| Groupe | Mots-clés |\n|---|---|\n")
	for _, r := range style.Rules() {
		fmt.Fprintf(&b, "| %s | %s |\n", r.Name, keywordList(r.Keywords))
	}

	b.WriteString("\n### Réseaux sociaux\n\nNoms reconnus pour l'icône : ")
	names := make([]string, 0, len(page.SocialPlatforms))
	for _, n := range page.SocialPlatforms {
		names = append(names, "`"+n+"`")
	}
	b.WriteString(strings.Join(names, ", "))
	fmt.Fprintf(&b, ". Tout autre nom reçoit l'icône `%s`.\n", page.FallbackIcon)
	return b.String()
}

func keywordList(kw []string) string {
	quoted := make([]string, 0, len(kw))
	for _, k := range kw {
		quoted = append(quoted, "`"+k+"`")
	}
	return strings.Join(quoted, ", ")
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
}

// HTML renders the guide as a standalone page.
func HTML() (string, error) {
	src := Markdown()

	var body bytes.Buffer
	if err := newMarkdown().Convert([]byte(src), &body); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}

	var out bytes.Buffer
	err := pageTmpl.Execute(&out, pageData{
		Title:   extractTitle(src),
		Content: template.HTML(body.String()),
	})
	if err != nil {
		return "", fmt.Errorf("rendering guide page: %w", err)
	}
	return out.String(), nil
}

// Write renders the guide to dir/index.html and returns the path written.
func Write(dir string) (string, error) {
	doc, err := HTML()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

func extractTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimPrefix(line, "# ")
		}
	}
	return "EasyLanding"
}
