package video

import (
	"encoding/json"
	"fmt"

	"github.com/Taichi-iskw/webvideo/internal/model"
	"github.com/spf13/cobra"
)

func writeVideo(cmd *cobra.Command, v *model.Video, format string) error {
	if format == "json" {
		return writeJSON(cmd, v)
	}
	fmt.Fprint(cmd.OutOrStdout(), formatText(v))
	return nil
}

func writeVideos(cmd *cobra.Command, videos []*model.Video, format string) error {
	if format == "json" {
		return writeJSON(cmd, videos)
	}
	for _, v := range videos {
		fmt.Fprint(cmd.OutOrStdout(), formatText(v))
		fmt.Fprintln(cmd.OutOrStdout(), "---")
	}
	return nil
}

func writeJSON(cmd *cobra.Command, value any) error {
	output, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format as JSON: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}

func formatText(v *model.Video) string {
	s := fmt.Sprintf("ID: %d\nFolder: %d\nName: %s\nType: %s\nURL: %s\nFile: %s\nHash: %s\nImage ID: %d\n",
		v.ID, v.FolderID, v.Name, v.Type, v.URL, v.File, v.Hash, v.VideoImageID)
	if v.ImageURL != "" {
		s += fmt.Sprintf("Image URL: %s\n", v.ImageURL)
	}
	return s
}
