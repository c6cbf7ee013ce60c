package app

import (
	"github.com/masarhq/masar/internal/services/roster"
	"github.com/masarhq/masar/internal/services/session"
	"github.com/masarhq/masar/internal/storage"
	"github.com/masarhq/masar/internal/store"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Blob store backing the data store
	blobs storage.BlobStore

	// Data store (entity collections, analytics, persistence)
	Store *store.Store

	// Service layer (business logic)
	RosterService  roster.Service
	SessionService session.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(blobs storage.BlobStore, opts ...Option) (*App, error) {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	storeOpts := []store.Option{}
	if cfg.clock != nil {
		storeOpts = append(storeOpts, store.WithClock(cfg.clock))
	}

	st, err := store.New(blobs, storeOpts...)
	if err != nil {
		return nil, err
	}

	return &App{
		blobs:          blobs,
		Store:          st,
		RosterService:  roster.NewService(st),
		SessionService: session.NewService(st),
	}, nil
}

// Close releases the blob store
func (a *App) Close() error {
	return a.blobs.Close()
}
