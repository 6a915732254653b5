package cmd

import (
	"github.com/Taichi-iskw/webvideo/cmd/fixture"
)

func init() {
	rootCmd.AddCommand(fixture.NewFixtureCommand(nil))
}
