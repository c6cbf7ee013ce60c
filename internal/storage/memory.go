package storage

import (
	"encoding/json"
	"fmt"
)

// MemoryStore is an in-memory BlobStore used by tests. Values go through the
// same JSON round-trip as the SQLite store so serialization bugs surface in
// unit tests too.
type MemoryStore struct {
	blobs map[string][]byte
}

// NewMemoryStore returns an empty in-memory blob store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (s *MemoryStore) Load(key string, out any) (bool, error) {
	raw, ok := s.blobs[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("failed to decode blob %q: %w", key, err)
	}
	return true, nil
}

func (s *MemoryStore) Save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode blob %q: %w", key, err)
	}
	s.blobs[key] = raw
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	delete(s.blobs, key)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

var _ BlobStore = (*MemoryStore)(nil)
