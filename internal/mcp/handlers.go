package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/storyflow/techguide/internal/registry"
	"github.com/storyflow/techguide/internal/site"
)

// handleListSections returns one line per section.
func (s *Server) handleListSections(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	descs := s.reg.List()
	sb.WriteString(fmt.Sprintf("%d section(s):\n", len(descs)))
	for i, d := range descs {
		sb.WriteString(fmt.Sprintf("%d. %s (slug: %s, id: %s)\n", i+1, d.Label, d.Slug(), d.ID))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetSection returns a section's markdown, resolved by slug or identifier.
func (s *Server) handleGetSection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("section")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: section"), nil
	}

	d, ok := s.resolve(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf(
			"No section named %q. Call list_sections for the available slugs.", name,
		)), nil
	}

	return mcp.NewToolResultText(s.reg.Render(d.ID).Markdown), nil
}

// handleSearchGuide runs a keyword search over the section index.
func (s *Server) handleSearchGuide(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("limit", 5)
	if limit <= 0 {
		limit = 5
	}

	results := site.Search(s.search, query)
	if len(results) == 0 {
		return mcp.NewToolResultText("No sections match that query."), nil
	}
	if len(results) > limit {
		results = results[:limit]
	}

	return mcp.NewToolResultText(formatSearchResults(results)), nil
}

// resolve accepts a slug or an identifier in any casing or spacing.
func (s *Server) resolve(name string) (registry.Descriptor, bool) {
	return s.reg.BySlug(registry.SectionID(name).Slug())
}

// formatSearchResults converts search results into a text format suited
// to agent consumption.
func formatSearchResults(results []site.SearchEntry) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d section(s):\n", len(results)))

	for i, r := range results {
		sb.WriteString(fmt.Sprintf("\n--- Result %d ---\n", i+1))
		sb.WriteString(fmt.Sprintf("Section: %s\n", r.Title))
		sb.WriteString(fmt.Sprintf("Slug: %s\n", r.Slug))
		if r.Summary != "" {
			sb.WriteString("\n")
			sb.WriteString(r.Summary)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
