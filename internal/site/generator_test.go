package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/django-nerd/folio/internal/content"
)

func TestGenerateWritesPage(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(dir, "My Work")

	data := Data{
		Collections: &content.Collections{
			Reviews:  []content.Item{{"author": "ada", "text": "Really **solid** work."}},
			Contacts: []content.Item{{"kind": "email", "value": "hi@example.com"}},
		},
		Projects: map[string][]content.Item{
			"React": {{"title": "X", "summary": "A `useful` thing."}},
		},
	}

	n, err := g.Generate(data)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n != 3 {
		t.Errorf("sections: got %d, want 3", n)
	}

	html, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatalf("reading index.html: %v", err)
	}
	page := string(html)

	if !strings.Contains(page, "<title>My Work</title>") {
		t.Error("page title missing")
	}
	if !strings.Contains(page, "Projects: React") {
		t.Error("projects section missing")
	}
	if !strings.Contains(page, "<strong>solid</strong>") {
		t.Error("markdown body not rendered")
	}
	if !strings.Contains(page, "<code>useful</code>") {
		t.Error("inline code not rendered")
	}

	if _, err := os.Stat(filepath.Join(dir, "style.css")); err != nil {
		t.Errorf("stylesheet not written: %v", err)
	}
}

func TestGenerateEmptyData(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(dir, "Portfolio")

	n, err := g.Generate(Data{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n != 0 {
		t.Errorf("sections: got %d, want 0", n)
	}
	if _, err := os.Stat(filepath.Join(dir, "index.html")); err != nil {
		t.Errorf("index.html should exist even with no sections: %v", err)
	}
}
