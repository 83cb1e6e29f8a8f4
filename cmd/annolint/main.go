package main

import (
	"os"

	"github.com/abramin/annolint/cmd/annolint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
