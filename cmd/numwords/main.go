package main

import (
	"os"

	"github.com/az-ai-labs/numwords/cmd/numwords/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
