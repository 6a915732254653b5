package cli

import (
	"context"
	"fmt"

	"github.com/Taichi-iskw/webvideo/internal/config"
	"github.com/Taichi-iskw/webvideo/internal/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Env bundles what a command needs to reach the database
type Env struct {
	Config *config.Config
	Logger zerolog.Logger
	Pool   *pgxpool.Pool
}

// LoadConfig loads the configuration and applies --project-root and --log-level
func LoadConfig(cmd *cobra.Command) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("failed to load configuration: %w", err)
	}

	ApplyFlags(cmd, cfg)

	return cfg, logger.NewConsole(cfg.LogLevel), nil
}

// ApplyFlags overrides cfg with the persistent flags set on the command line
func ApplyFlags(cmd *cobra.Command, cfg *config.Config) {
	if root, _ := cmd.Flags().GetString("project-root"); root != "" {
		cfg.ProjectRoot = root
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
}

// Open loads the configuration and connects to the database.
// The returned cleanup closes the pool.
func Open(ctx context.Context, cmd *cobra.Command) (*Env, func(), error) {
	cfg, log, err := LoadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	pool, err := config.NewDatabasePool(ctx, cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	cleanup := func() {
		config.CloseDatabasePool(pool)
	}

	return &Env{Config: cfg, Logger: log, Pool: pool}, cleanup, nil
}
