package main

import (
	"os"

	"github.com/cosmichound/multitimer/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
