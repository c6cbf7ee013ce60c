package app

import (
	"testing"

	"github.com/masarhq/masar/internal/storage"
)

func TestNew(t *testing.T) {
	app, err := New(storage.NewMemoryStore())
	if err != nil {
		t.Fatalf("Expected app to be created, got error: %v", err)
	}

	if app.Store == nil {
		t.Error("Expected Store to be initialized")
	}

	if app.RosterService == nil {
		t.Error("Expected RosterService to be initialized")
	}

	if app.SessionService == nil {
		t.Error("Expected SessionService to be initialized")
	}
}

func TestClose(t *testing.T) {
	app, err := New(storage.NewMemoryStore())
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}

	if err := app.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got error: %v", err)
	}
}
