package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/storyflow/techguide/internal/guide"
	"github.com/storyflow/techguide/internal/progress"
	"github.com/storyflow/techguide/internal/site"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Export the guide as a static website",
	Long:  `Writes a self-contained static HTML site with one page per section, sidebar navigation and client-side search.`,
	RunE:  runSite,
}

func init() {
	siteCmd.Flags().Bool("serve", false, "start a local HTTP server after exporting")
	siteCmd.Flags().Int("port", 0, "port for the local server (defaults to server.port)")
	siteCmd.Flags().Bool("open", false, "open browser automatically when serving")
	siteCmd.Flags().String("output", "", "override output directory (defaults to site.output_dir)")
	rootCmd.AddCommand(siteCmd)
}

func runSite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.Site.OutputDir
	}

	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	generator := site.NewSiteGenerator(guide.New(), renderer, outputDir, progress.NewReporter())
	pageCount, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d pages)\n", outputDir, pageCount)

	serve, _ := cmd.Flags().GetBool("serve")
	if !serve {
		return nil
	}

	port, _ := cmd.Flags().GetInt("port")
	if port <= 0 {
		port = cfg.Server.Port
	}
	openBrowser, _ := cmd.Flags().GetBool("open")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving at http://localhost:%d, press Ctrl+C to stop\n", port)
	if err := site.Serve(ctx, outputDir, port, openBrowser, log); err != nil {
		return fmt.Errorf("serving site: %w", err)
	}
	return nil
}
