package site

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/storyflow/techguide/internal/registry"
)

// maxSummary caps the summary shown with a search result. Content is
// indexed in full.
const maxSummary = 200

// SearchEntry represents a single searchable section of the guide.
type SearchEntry struct {
	Path    string `json:"path"`
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

// BuildSearchIndex renders every section once and extracts its searchable
// text. Paths follow links.
func BuildSearchIndex(reg *registry.Registry, links Links) []SearchEntry {
	descs := reg.List()
	entries := make([]SearchEntry, 0, len(descs))
	for _, d := range descs {
		block := reg.Render(d.ID)
		entries = append(entries, parseMarkdownForSearch(block, d.Slug(), links.Section(d.Slug())))
	}
	return entries
}

// parseMarkdownForSearch extracts title, summary, and content from a block.
func parseMarkdownForSearch(block registry.Block, slug, path string) SearchEntry {
	entry := SearchEntry{
		Path:  path,
		Slug:  slug,
		Title: block.Title,
	}

	var cleanLines []string
	inFence, inDiagram := false, false
	for _, line := range strings.Split(block.Markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			inDiagram = inFence && strings.TrimPrefix(trimmed, "```") == "mermaid"
			continue
		}
		// Diagram source duplicates the prose around it.
		if trimmed == "" || inDiagram {
			continue
		}
		if !inFence && entry.Summary == "" && !strings.HasPrefix(trimmed, "#") && !strings.HasPrefix(trimmed, "|") {
			entry.Summary = stripInline(trimmed)
		}
		cleanLines = append(cleanLines, stripInline(strings.TrimLeft(trimmed, "#>-*| ")))
	}

	entry.Content = strings.Join(cleanLines, " ")
	if len(entry.Summary) > maxSummary {
		cut := strings.LastIndex(entry.Summary[:maxSummary], " ")
		if cut <= 0 {
			cut = maxSummary
		}
		entry.Summary = entry.Summary[:cut] + "..."
	}

	if entry.Title == "" {
		entry.Title = slug
	}
	return entry
}

// stripInline removes markdown emphasis and code markers.
func stripInline(s string) string {
	return strings.NewReplacer("**", "", "`", "", "*", "").Replace(s)
}

// Search returns the entries matching every whitespace-separated term of q,
// case-insensitively, best matches first. Title hits outrank body hits; ties
// keep registry order.
func Search(entries []SearchEntry, q string) []SearchEntry {
	terms := strings.Fields(strings.ToLower(q))
	if len(terms) == 0 {
		return nil
	}

	type scored struct {
		entry SearchEntry
		score int
	}
	var hits []scored
	for _, e := range entries {
		title := strings.ToLower(e.Title)
		body := strings.ToLower(e.Content)
		score := 0
		for _, term := range terms {
			inTitle := strings.Contains(title, term)
			n := strings.Count(body, term)
			if !inTitle && n == 0 {
				score = 0
				break
			}
			if inTitle {
				score += 10
			}
			score += n
		}
		if score > 0 {
			hits = append(hits, scored{e, score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	out := make([]SearchEntry, len(hits))
	for i, h := range hits {
		out[i] = h.entry
	}
	return out
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
