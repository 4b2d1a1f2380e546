package main

import (
	"os"

	"github.com/axon-labs/axon/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
