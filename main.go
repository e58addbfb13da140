package main

import (
	"os"

	"github.com/minigame-tools/confpatch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
