package main

import (
	"os"

	"github.com/storyflow/techguide/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
