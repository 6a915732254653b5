package fixture

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Taichi-iskw/webvideo/internal/cli"
	"github.com/Taichi-iskw/webvideo/internal/fixture"
	"github.com/spf13/cobra"
)

const connectTimeout = 30 * time.Second

// Runner is the part of *fixture.Loader the commands drive
type Runner interface {
	Reset(ctx context.Context) error
	ClearAllTables(ctx context.Context) error
	StandardData(ctx context.Context) error
	Run(ctx context.Context, f fixture.Fixture) error
}

// NewFixtureCommand creates the main fixture command.
// A nil runner makes each subcommand build a loader on the configured database.
func NewFixtureCommand(runner Runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixture",
		Short: "Load test fixtures",
		Long: `Replay the canned SQL scripts under the fixtures directory.
Fixtures do not chain: clear the tables before loading standard data.`,
	}

	cmd.AddCommand(NewResetCommand(runner))
	cmd.AddCommand(NewClearCommand(runner))
	cmd.AddCommand(NewLoadCommand(runner))

	return cmd
}

// NewResetCommand creates the reset command
func NewResetCommand(runner Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear every table and load the standard data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, cleanup, err := resolveRunner(cmd, runner)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := r.Reset(context.Background()); err != nil {
				return fmt.Errorf("failed to reset fixtures: %w", err)
			}

			cmd.Println("Fixtures reset")
			return nil
		},
	}
}

// NewClearCommand creates the clear command
func NewClearCommand(runner Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every row from the fixture tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, cleanup, err := resolveRunner(cmd, runner)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := r.ClearAllTables(context.Background()); err != nil {
				return fmt.Errorf("failed to clear tables: %w", err)
			}

			cmd.Println("Tables cleared")
			return nil
		},
	}
}

// NewLoadCommand creates the load command
func NewLoadCommand(runner Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "load [NAME...]",
		Short: "Load standard fixtures without clearing",
		Long: fmt.Sprintf(`Load the named fixtures in the order given, or the whole standard sequence when none are named.
Available fixtures: %s`, strings.Join(fixture.Names(), ", ")),
		RunE: func(cmd *cobra.Command, args []string) error {
			fixtures := make([]fixture.Fixture, 0, len(args))
			for _, name := range args {
				f, ok := fixture.ByName(name)
				if !ok {
					return fmt.Errorf("unknown fixture %q (available: %s)", name, strings.Join(fixture.Names(), ", "))
				}
				fixtures = append(fixtures, f)
			}

			r, cleanup, err := resolveRunner(cmd, runner)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx := context.Background()
			if len(fixtures) == 0 {
				if err := r.StandardData(ctx); err != nil {
					return fmt.Errorf("failed to load standard data: %w", err)
				}
				cmd.Println("Standard data loaded")
				return nil
			}

			for _, f := range fixtures {
				if err := r.Run(ctx, f); err != nil {
					return fmt.Errorf("failed to load fixture: %w", err)
				}
				cmd.Printf("Loaded %s\n", f)
			}
			return nil
		},
	}
}

func resolveRunner(cmd *cobra.Command, runner Runner) (Runner, func(), error) {
	if runner != nil {
		return runner, func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	env, cleanup, err := cli.Open(ctx, cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create fixture loader: %w", err)
	}

	return fixture.NewDirLoader(env.Pool, env.Config.ResolveFixturesDir(), env.Logger), cleanup, nil
}
