package video

import (
	"context"
	"fmt"

	videoRepo "github.com/Taichi-iskw/webvideo/internal/repository/video"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list videos command
func NewListCommand(repo videoRepo.Repository) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one video per distinct name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")

			r, cleanup, err := resolveRepository(cmd, repo)
			if err != nil {
				return err
			}
			defer cleanup()

			videos, err := r.ListAll(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list videos: %w", err)
			}

			if format != "json" && len(videos) == 0 {
				cmd.Println("No videos found.")
				return nil
			}

			return writeVideos(cmd, videos, format)
		},
	}

	cmd.Flags().String("format", "text", "Output format (text, json)")

	return cmd
}
