package cmd

import (
	"github.com/spf13/cobra"

	"github.com/storyflow/techguide/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a techguide configuration with an interactive wizard",
	Long:  `Runs an interactive wizard for the viewer's title, port, highlight style and export directory, and writes the answers to the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
