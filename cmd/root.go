package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "webvideo",
	Short: "Video catalog data access tool",
	Long: `webvideo manages the video catalog database: schema migrations,
test fixtures and video records.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("project-root", "", "Project root used to locate sql/data fixtures and migrations")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
}

var errMissingConfirmation = errors.New("refusing to continue without --yes")
