package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Taichi-iskw/webvideo/internal/cli"
	"github.com/Taichi-iskw/webvideo/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Create or inspect ~/.webvideo/config.yaml",
}

var configInitCmd = &cobra.Command{
	Use:   "init [DATABASE_URL]",
	Short: "Write a starter configuration file",
	Long: `Write ~/.webvideo/config.yaml pointing at DATABASE_URL, or at a local
webvideo database when no URL is given. An existing file is left alone.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var databaseURL string
		if len(args) > 0 {
			databaseURL = args[0]
		}

		path, err := config.InitConfig(databaseURL)
		if err != nil {
			return err
		}

		cmd.Printf("Wrote %s\n", path)
		cmd.Println("Next: webvideo migrate up && webvideo fixture reset")
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration after applying .env, environment variables and
command line flags. Fixture and migration dirs are resolved; the database
password is masked.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := cli.LoadConfig(cmd)
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(cfg.Effective())
		if err != nil {
			return err
		}

		if path, err := config.GetConfigPath(); err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", path)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
