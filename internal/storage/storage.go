// Package storage provides the blob persistence layer: a generic
// load/save-by-key store of JSON-serializable values. The data store writes
// every collection as one blob after each mutation, so an implementation only
// needs whole-value reads and writes.
package storage

// BlobStore is a key to JSON-blob store.
type BlobStore interface {
	// Load reads the value stored under key into out. It returns false
	// (and leaves out untouched) when the key has never been written.
	Load(key string, out any) (bool, error)

	// Save serializes value and writes it under key, replacing any
	// previous value.
	Save(key string, value any) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error

	// Close releases any underlying resources.
	Close() error
}
