package main

import (
	"os"

	"github.com/budget-tracker-dev/budget-tracker/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
