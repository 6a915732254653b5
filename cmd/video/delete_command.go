package video

import (
	"context"
	"fmt"

	"github.com/Taichi-iskw/webvideo/internal/model"
	videoRepo "github.com/Taichi-iskw/webvideo/internal/repository/video"
	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the delete video command
func NewDeleteCommand(repo videoRepo.Repository) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [VIDEO_ID...]",
		Short: "Delete videos by id",
		Long:  `Delete one or more videos. Rows are removed one at a time; a failure stops the run and earlier deletes stay.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			videos := make([]*model.Video, 0, len(args))
			for _, arg := range args {
				id, err := parseID(arg)
				if err != nil {
					return err
				}
				videos = append(videos, &model.Video{ID: id})
			}

			r, cleanup, err := resolveRepository(cmd, repo)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx := context.Background()
			if len(videos) == 1 {
				err = r.Delete(ctx, videos[0].ID)
			} else {
				err = r.DeleteBatch(ctx, videos)
			}
			if err != nil {
				return fmt.Errorf("failed to delete videos: %w", err)
			}

			cmd.Printf("Deleted %d video(s)\n", len(videos))
			return nil
		},
	}
}

// NewDeleteAllCommand creates the delete-all command
func NewDeleteAllCommand(repo videoRepo.Repository) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-all",
		Short: "Delete every video row",
		Long:  `Delete every row of the video table. Failures are logged, not returned.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			confirmed, _ := cmd.Flags().GetBool("yes")
			if !confirmed {
				return fmt.Errorf("refusing to delete all videos without --yes")
			}

			r, cleanup, err := resolveRepository(cmd, repo)
			if err != nil {
				return err
			}
			defer cleanup()

			r.DeleteAll(context.Background())
			cmd.Println("Delete-all issued")
			return nil
		},
	}

	cmd.Flags().Bool("yes", false, "Confirm deleting every video")

	return cmd
}
