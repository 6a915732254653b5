package video

import (
	"context"
	"fmt"
	"strconv"
	"time"

	videoRepo "github.com/Taichi-iskw/webvideo/internal/repository/video"
	"github.com/spf13/cobra"
)

const connectTimeout = 30 * time.Second

// NewVideoCommand creates the main video command.
// A nil repo makes each subcommand connect through the configured database.
func NewVideoCommand(repo videoRepo.Repository) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "video",
		Short: "Query and manage video records",
		Long:  `Get, find, list, and delete rows of the video table`,
	}

	cmd.AddCommand(NewGetCommand(repo))
	cmd.AddCommand(NewFindCommand(repo))
	cmd.AddCommand(NewListCommand(repo))
	cmd.AddCommand(NewDeleteCommand(repo))
	cmd.AddCommand(NewDeleteAllCommand(repo))

	return cmd
}

// resolveRepository returns repo when set, otherwise one backed by a new pool
func resolveRepository(cmd *cobra.Command, repo videoRepo.Repository) (videoRepo.Repository, func(), error) {
	if repo != nil {
		return repo, func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	r, cleanup, err := NewRepositoryFactory().CreateRepository(ctx, cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create video repository: %w", err)
	}
	return r, cleanup, nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid video id %q: %w", arg, err)
	}
	return id, nil
}
