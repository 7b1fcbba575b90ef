package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/storyflow/techguide/internal/progress"
	"github.com/storyflow/techguide/internal/registry"
	"github.com/storyflow/techguide/internal/viewer"
)

// SiteGenerator writes every section of a registry as a static HTML site.
type SiteGenerator struct {
	Registry  *registry.Registry
	Renderer  *Renderer
	OutputDir string
	Reporter  progress.Reporter
}

// NewSiteGenerator creates a SiteGenerator. A nil reporter is silent.
func NewSiteGenerator(reg *registry.Registry, r *Renderer, outputDir string, rep progress.Reporter) *SiteGenerator {
	if rep == nil {
		rep = progress.Discard{}
	}
	return &SiteGenerator{
		Registry:  reg,
		Renderer:  r,
		OutputDir: outputDir,
		Reporter:  rep,
	}
}

// Generate builds index.html, one page per section, the stylesheet, the
// search script, and the search index. Returns the number of pages written.
func (g *SiteGenerator) Generate() (int, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}

	assets := map[string]string{
		"style.css": cssContent,
		"script.js": jsContent,
	}
	for name, body := range assets {
		if err := os.WriteFile(filepath.Join(g.OutputDir, name), []byte(body), 0o644); err != nil {
			return 0, fmt.Errorf("writing %s: %w", name, err)
		}
	}

	entries := BuildSearchIndex(g.Registry, StaticLinks)
	if err := WriteSearchIndex(entries, filepath.Join(g.OutputDir, "search-index.json")); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}

	descs := g.Registry.List()
	g.Reporter.Start(len(descs) + 1)
	defer g.Reporter.Finish()

	shell := viewer.New(g.Registry)
	if err := g.renderPage(shell, "index.html"); err != nil {
		return 0, err
	}
	g.Reporter.Update(1, "index.html")
	pages := 1

	for i, d := range descs {
		if err := shell.Select(d.ID); err != nil {
			return pages, err
		}
		name := StaticLinks.Section(d.Slug())
		if err := g.renderPage(shell, name); err != nil {
			return pages, err
		}
		pages++
		g.Reporter.Update(i+2, name)
	}

	return pages, nil
}

// renderPage writes the shell's current section to name under OutputDir.
func (g *SiteGenerator) renderPage(shell *viewer.Shell, name string) error {
	var buf bytes.Buffer
	if err := g.Renderer.Page(&buf, shell, StaticLinks); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, name), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
