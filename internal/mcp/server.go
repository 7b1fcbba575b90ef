package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/storyflow/techguide/internal/registry"
	"github.com/storyflow/techguide/internal/site"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the guide's sections as tools.
type Server struct {
	reg    *registry.Registry
	search []site.SearchEntry
	mcp    *server.MCPServer
}

// NewServer creates a new MCP server for reg.
func NewServer(reg *registry.Registry) *Server {
	s := &Server{
		reg:    reg,
		search: site.BuildSearchIndex(reg, site.ServerLinks),
	}

	s.mcp = server.NewMCPServer(
		"techguide",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listSectionsTool, s.handleListSections)
	s.mcp.AddTool(getSectionTool, s.handleGetSection)
	s.mcp.AddTool(searchGuideTool, s.handleSearchGuide)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
