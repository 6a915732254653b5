package main

import (
	"os"

	"github.com/Taichi-iskw/webvideo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
