package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listSectionsTool defines the list_sections MCP tool.
var listSectionsTool = mcp.NewTool("list_sections",
	mcp.WithDescription("List the sections of the technical guide in reading order, with their slugs and labels."),
)

// getSectionTool defines the get_section MCP tool.
var getSectionTool = mcp.NewTool("get_section",
	mcp.WithDescription("Get the full markdown content of one guide section."),
	mcp.WithString("section",
		mcp.Required(),
		mcp.Description("Section slug (e.g. \"risk-mitigation\") or identifier (e.g. \"Risk Mitigation\")"),
	),
)

// searchGuideTool defines the search_guide MCP tool.
var searchGuideTool = mcp.NewTool("search_guide",
	mcp.WithDescription("Search the guide for sections mentioning every term of the query."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Search terms"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of sections to return (default 5)"),
	),
)
