package main

import (
	"os"

	"github.com/spigell/careerise/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
