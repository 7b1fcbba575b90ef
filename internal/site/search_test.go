package site

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/storyflow/techguide/internal/guide"
	"github.com/storyflow/techguide/internal/registry"
)

func TestBuildSearchIndex(t *testing.T) {
	entries := BuildSearchIndex(testRegistry(t), ServerLinks)
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}

	prd := entries[0]
	if prd.Path != "/sections/product-requirements" || prd.Slug != "product-requirements" {
		t.Errorf("prd path/slug = %q/%q", prd.Path, prd.Slug)
	}
	if prd.Summary != "The tool turns scripts into videos." {
		t.Errorf("prd summary = %q", prd.Summary)
	}
	if prd.Title != "Product Requirements" {
		t.Errorf("prd title = %q", prd.Title)
	}
}

func TestSearch(t *testing.T) {
	entries := BuildSearchIndex(testRegistry(t), StaticLinks)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query", "  ", nil},
		{"body match", "videos", []string{"product-requirements"}},
		{"case insensitive", "FOUR PHASES", []string{"roadmap"}},
		{"all terms required", "four videos", nil},
		{"no match", "kubernetes", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(entries, tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("Search(%q) = %d hits, want %d", tt.query, len(got), len(tt.want))
			}
			for i, slug := range tt.want {
				if got[i].Slug != slug {
					t.Errorf("hit %d = %q, want %q", i, got[i].Slug, slug)
				}
			}
		})
	}
}

func TestSearchRanksTitleHitsFirst(t *testing.T) {
	entries := []SearchEntry{
		{Slug: "a", Title: "Costs", Content: "mentions roadmap once"},
		{Slug: "b", Title: "Roadmap", Content: "phases"},
	}
	got := Search(entries, "roadmap")
	if len(got) != 2 || got[0].Slug != "b" {
		t.Errorf("title hit should rank first: %+v", got)
	}
}

func TestWriteSearchIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search-index.json")
	if err := WriteSearchIndex([]SearchEntry{{Path: "x.html", Title: "X"}}, path); err != nil {
		t.Fatal(err)
	}
}

func TestSearchSkipsDiagramSource(t *testing.T) {
	entry := parseMarkdownForSearch(registry.Block{
		Title:    "Architecture",
		Markdown: "## Architecture\n\n```mermaid\nflowchart TD\n    Queue --> Worker\n```\n\nWorkers pull jobs.\n\n```sql\nSELECT queue;\n```\n",
	}, "architecture", "/sections/architecture")

	if strings.Contains(entry.Content, "flowchart") {
		t.Errorf("diagram source indexed: %q", entry.Content)
	}
	if !strings.Contains(entry.Content, "SELECT queue;") {
		t.Errorf("code samples should stay searchable: %q", entry.Content)
	}
	if entry.Summary != "Workers pull jobs." {
		t.Errorf("summary = %q", entry.Summary)
	}
}

func TestSearchFindsTermsDeepInLongSections(t *testing.T) {
	entries := BuildSearchIndex(guide.New(), ServerLinks)

	tests := []struct {
		query string
		slug  string
	}{
		{"Sentry", "roadmap"},
		{"LogTail", "roadmap"},
		{"dnd-kit", "code-samples"},
		{"arrayMove", "code-samples"},
		{"Enterprise", "product-requirements"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			found := false
			for _, e := range Search(entries, tt.query) {
				if e.Slug == tt.slug {
					found = true
				}
			}
			if !found {
				t.Errorf("Search(%q) did not return %s", tt.query, tt.slug)
			}
		})
	}
}

func TestIndexKeepsFullContent(t *testing.T) {
	body := strings.Repeat("filler words for a long section ", 200) + "closingterm"
	entry := parseMarkdownForSearch(registry.Block{
		Title:    "Long",
		Markdown: "## Long\n\n" + strings.Repeat("intro ", 60) + "\n\n" + body + "\n",
	}, "long", "/sections/long")

	if !strings.Contains(entry.Content, "closingterm") {
		t.Error("content should include the end of the section")
	}
	if len(entry.Summary) > maxSummary+3 {
		t.Errorf("summary is %d bytes, want at most %d", len(entry.Summary), maxSummary+3)
	}
	if !strings.HasSuffix(entry.Summary, "intro...") {
		t.Errorf("summary should end on a whole word: %q", entry.Summary)
	}
}
