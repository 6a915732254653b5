package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/webvideo/internal/cli"
	"github.com/Taichi-iskw/webvideo/internal/migrations"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
	Long:  `Apply or revert the schema migrations found in the migrations directory.`,
}

// migrateUpCmd represents the migrate up command
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := cli.LoadConfig(cmd)
		if err != nil {
			return err
		}

		dir := cfg.ResolveMigrationsDir()
		log.Info().Str("dir", dir).Msg("applying migrations")
		if err := migrations.Up(cfg.DatabaseURL, dir); err != nil {
			return err
		}

		cmd.Println("Migrations applied")
		return nil
	},
}

// migrateDownCmd represents the migrate down command
var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert every applied migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			return errMissingConfirmation
		}

		cfg, log, err := cli.LoadConfig(cmd)
		if err != nil {
			return err
		}

		dir := cfg.ResolveMigrationsDir()
		log.Warn().Str("dir", dir).Msg("reverting migrations")
		if err := migrations.Down(cfg.DatabaseURL, dir); err != nil {
			return err
		}

		cmd.Println("Migrations reverted")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)

	migrateDownCmd.Flags().Bool("yes", false, "Confirm dropping the schema")
}
