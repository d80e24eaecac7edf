package main

import (
	"os"

	"github.com/msto63/clipdash/cmd/clipdash/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
