package video

import (
	"context"

	"github.com/Taichi-iskw/webvideo/internal/cli"
	videoRepo "github.com/Taichi-iskw/webvideo/internal/repository/video"
	"github.com/spf13/cobra"
)

// RepositoryFactory creates video repository instances
type RepositoryFactory struct{}

// NewRepositoryFactory creates a new repository factory
func NewRepositoryFactory() *RepositoryFactory {
	return &RepositoryFactory{}
}

// CreateRepository connects to the configured database and returns a video repository
func (f *RepositoryFactory) CreateRepository(ctx context.Context, cmd *cobra.Command) (videoRepo.Repository, func(), error) {
	env, cleanup, err := cli.Open(ctx, cmd)
	if err != nil {
		return nil, nil, err
	}

	return videoRepo.NewRepository(env.Pool, env.Logger), cleanup, nil
}
