package cli

import (
	"fmt"

	"github.com/masarhq/masar/internal/app"
	"github.com/masarhq/masar/internal/config"
	"github.com/masarhq/masar/internal/storage"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App
	Config *config.Config
}

// NewCLI initializes the CLI: config, blob store, and application container
func NewCLI() (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database path: %w", err)
	}

	blobs, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	application, err := app.New(blobs)
	if err != nil {
		blobs.Close()
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}

	return &CLI{
		App:    application,
		Config: cfg,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}
