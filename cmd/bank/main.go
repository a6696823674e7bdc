package main

import (
	"os"

	"github.com/Pramod-Kumar79/Banking-Management-System/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
