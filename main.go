package main

import (
	"log"
	"os"

	"github.com/masarhq/masar/cmd"
	"github.com/masarhq/masar/internal/logging"
)

func main() {
	// Initialize logging to file before anything else
	if err := logging.Init(); err != nil {
		log.Printf("Failed to initialize logging: %v", err)
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
