package cmd

import (
	"github.com/Taichi-iskw/webvideo/cmd/video"
)

func init() {
	rootCmd.AddCommand(video.NewVideoCommand(nil))
}
