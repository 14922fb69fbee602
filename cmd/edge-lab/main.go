package main

import (
	"os"

	"github.com/x88a9/edge-lab/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
