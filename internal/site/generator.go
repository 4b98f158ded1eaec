// Package site renders fetched portfolio content into a static HTML page.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/django-nerd/folio/internal/content"
)

// Generator writes a single-page HTML rendition of the portfolio.
type Generator struct {
	OutputDir string
	Title     string
}

// NewGenerator creates a Generator targeting the given output directory.
func NewGenerator(outputDir, title string) *Generator {
	return &Generator{OutputDir: outputDir, Title: title}
}

// Data is everything the page renders: the five bootstrap collections plus
// the filtered results grouped by their selection value.
type Data struct {
	Collections *content.Collections
	Projects    map[string][]content.Item // tech name -> projects
	Gallery     map[string][]content.Item // focus name -> gallery entries
}

// section is one rendered block of the page.
type section struct {
	Title   string
	Entries []entry
}

type entry struct {
	Label string
	Meta  string
	Body  template.HTML
}

type pageData struct {
	Title    string
	Sections []section
}

// Generate writes index.html plus the stylesheet. Returns the number of
// sections rendered.
func (g *Generator) Generate(data Data) (int, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	page := pageData{Title: g.Title}

	if data.Collections != nil {
		page.Sections = append(page.Sections,
			g.plainSection(md, "Reviews", data.Collections.Reviews),
			g.plainSection(md, "Contact", data.Collections.Contacts),
		)
	}
	for _, tech := range sortedKeys(data.Projects) {
		page.Sections = append(page.Sections, g.plainSection(md, "Projects: "+tech, data.Projects[tech]))
	}
	for _, focus := range sortedKeys(data.Gallery) {
		page.Sections = append(page.Sections, g.plainSection(md, "Gallery: "+focus, data.Gallery[focus]))
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return 0, fmt.Errorf("parsing page template: %w", err)
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, page); err != nil {
		return 0, fmt.Errorf("rendering page: %w", err)
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "index.html"), buf.Bytes(), 0o644); err != nil {
		return 0, err
	}

	return len(page.Sections), nil
}

// plainSection turns a collection into a rendered section, passing the
// item's long-form field through goldmark.
func (g *Generator) plainSection(md goldmark.Markdown, title string, items []content.Item) section {
	sec := section{Title: title}
	for _, item := range items {
		e := entry{Label: item.Label()}
		if v := item["tech"]; v != "" {
			e.Meta = v
		} else if v := item["author"]; v != "" {
			e.Meta = v
		} else if v := item["kind"]; v != "" {
			e.Meta = v
		}
		if body := longForm(item); body != "" {
			var buf bytes.Buffer
			if err := md.Convert([]byte(body), &buf); err == nil {
				e.Body = template.HTML(buf.String())
			}
		}
		sec.Entries = append(sec.Entries, e)
	}
	return sec
}

func sortedKeys(m map[string][]content.Item) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// longForm picks the item field worth rendering as markdown.
func longForm(item content.Item) string {
	for _, k := range []string{"body", "description", "summary", "text", "value"} {
		if v := item[k]; v != "" {
			return v
		}
	}
	return ""
}
