package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/storyflow/techguide/internal/guide"
	mcpserver "github.com/storyflow/techguide/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing tools to list, read and search the guide's sections.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := guide.New()

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		// Stdout carries the protocol.
		fmt.Fprintf(os.Stderr, "techguide MCP server started on stdio (sections=%d)\n", reg.Len())

		return mcpserver.NewServer(reg).Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
