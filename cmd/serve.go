package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/storyflow/techguide/internal/guide"
	"github.com/storyflow/techguide/internal/server"
	"github.com/storyflow/techguide/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the guide over HTTP",
	Long:  `Starts the web viewer: a page per section with sidebar navigation, plus a JSON API under /api for sections and search.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides server.port)")
	serveCmd.Flags().Bool("open", false, "open the viewer in a browser")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Server.Port = port
	}
	if open, _ := cmd.Flags().GetBool("open"); open {
		cfg.Server.OpenBrowser = true
	}

	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:     cfg.Server.Port,
		AllowAll: cfg.Server.AllowAllOrigins,
	}, guide.New(), renderer, log)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown failed", "error", err)
		}
	}()

	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	fmt.Fprintf(os.Stderr, "techguide %s serving %q at %s\n", Version, cfg.Title, url)
	if cfg.Server.OpenBrowser {
		go site.OpenBrowser(url)
	}

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}
