package main

import (
	"os"

	"djs/cmd/djs/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
