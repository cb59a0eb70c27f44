package main

// Main entry point of the pchart CLI
// Executes Cobra commands and reports failures on stderr

import (
	"fmt"
	"os"

	"pchart/cmd/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
