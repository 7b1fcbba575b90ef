package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/storyflow/techguide/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "techguide",
	Short: "Story Flow technical guide viewer",
	Long: `techguide presents the Story Flow "Script to Video" technical guide:
product requirements, roadmap, architecture, API strategy, database schema,
cost optimization, risk mitigation and code samples. Read it in the
terminal, serve it over HTTP, export it as a static site, or expose it to
AI agents over MCP.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
