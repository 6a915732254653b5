package video

import (
	"context"
	"fmt"

	apperrors "github.com/Taichi-iskw/webvideo/internal/errors"
	videoRepo "github.com/Taichi-iskw/webvideo/internal/repository/video"
	"github.com/spf13/cobra"
)

// NewGetCommand creates the get video command
func NewGetCommand(repo videoRepo.Repository) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [VIDEO_ID]",
		Short: "Get a video by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")

			r, cleanup, err := resolveRepository(cmd, repo)
			if err != nil {
				return err
			}
			defer cleanup()

			v, err := r.GetByID(context.Background(), id)
			if err != nil {
				if apperrors.IsCode(err, apperrors.CodeNotFound) {
					return fmt.Errorf("video %d not found", id)
				}
				return fmt.Errorf("failed to get video: %w", err)
			}

			return writeVideo(cmd, v, format)
		},
	}

	cmd.Flags().String("format", "text", "Output format (text, json)")

	return cmd
}

// NewFindCommand creates the find video command
func NewFindCommand(repo videoRepo.Repository) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find [NAME] [HASH]",
		Short: "Find a video by name and content hash",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")

			r, cleanup, err := resolveRepository(cmd, repo)
			if err != nil {
				return err
			}
			defer cleanup()

			v, err := r.GetByNameAndHash(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to find video: %w", err)
			}
			if v == nil {
				cmd.Printf("No video named %q with hash %s\n", args[0], args[1])
				return nil
			}

			return writeVideo(cmd, v, format)
		},
	}

	cmd.Flags().String("format", "text", "Output format (text, json)")

	return cmd
}
