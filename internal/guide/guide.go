// Package guide holds the content of the Story Flow script-to-video
// technical guide: one canonical version of each section, in navigation
// order.
package guide

import (
	"embed"
	"strings"

	"github.com/storyflow/techguide/internal/icons"
	"github.com/storyflow/techguide/internal/registry"
)

// Default header text.
const (
	Title    = "Story Flow Script to Video Technical Guide"
	Subtitle = "An expert implementation plan powered by Gemini"
)

// Section identifiers in navigation order.
const (
	Prd              registry.SectionID = "Product Requirements"
	Roadmap          registry.SectionID = "Roadmap"
	Architecture     registry.SectionID = "Architecture"
	APIStrategy      registry.SectionID = "API Strategy"
	DatabaseSchema   registry.SectionID = "Database Schema"
	CostOptimization registry.SectionID = "Cost Optimization"
	RiskMitigation   registry.SectionID = "Risk Mitigation"
	CodeSamples      registry.SectionID = "Code Samples"
)

//go:embed content/*.md
var contentFS embed.FS

// Sections returns the descriptor table of the guide.
func Sections() []registry.Descriptor {
	return []registry.Descriptor{
		{ID: Prd, Label: "PRD", Icon: icons.DocumentText, Render: markdownFile("product-requirements.md")},
		{ID: Roadmap, Label: "Roadmap", Icon: icons.Flag, Render: renderRoadmap},
		{ID: Architecture, Label: "Architecture", Icon: icons.Sitemap, Render: renderArchitecture},
		{ID: APIStrategy, Label: "API Strategy", Icon: icons.Wand, Render: markdownFile("api-strategy.md")},
		{ID: DatabaseSchema, Label: "Database Schema", Icon: icons.Database, Render: markdownFile("database-schema.md")},
		{ID: CostOptimization, Label: "Cost Optimization", Icon: icons.Dollar, Render: renderCostOptimization},
		{ID: RiskMitigation, Label: "Risk Mitigation", Icon: icons.Shield, Render: renderRiskMitigation},
		{ID: CodeSamples, Label: "Code Samples", Icon: icons.Code, Render: markdownFile("code-samples.md")},
	}
}

// New returns the guide's content registry.
func New() *registry.Registry {
	return registry.MustNew(Sections()...)
}

// markdownFile returns a renderer for an embedded markdown document. The file
// is read once; a missing file is a build defect and panics.
func markdownFile(name string) registry.Renderer {
	data, err := contentFS.ReadFile("content/" + name)
	if err != nil {
		panic("guide: missing embedded content " + name)
	}
	b := registry.Block{
		Title:    headingTitle(string(data)),
		Markdown: string(data),
	}
	return func() registry.Block { return b }
}

// headingTitle returns the text of the first H1 or H2 heading.
func headingTitle(md string) string {
	for _, line := range strings.Split(md, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") || strings.HasPrefix(line, "## ") {
			return strings.TrimSpace(strings.TrimLeft(line, "#"))
		}
	}
	return ""
}
