package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/storyflow/techguide/internal/guide"
	"github.com/storyflow/techguide/internal/tui"
)

var tuiStyle string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Read the guide in the terminal",
	Long:  `Opens a full-screen terminal viewer with the section list on the left and the selected section on the right.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		exitOnError(err)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		exitOnError(tui.Run(ctx, guide.New(), tui.Options{
			Title:    cfg.Title,
			Subtitle: cfg.Subtitle,
			Style:    tuiStyle,
		}))
	},
}

func init() {
	tuiCmd.Flags().StringVar(&tuiStyle, "style", "auto", "glamour style: auto, dark, light, dracula, notty")
	rootCmd.AddCommand(tuiCmd)
}
