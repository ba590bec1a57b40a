package kv

import "fmt"

// Store defines the interface for the key-value store owned by the Store Service.
// Callers never see the underlying container; every access goes through these methods.
type Store interface {
	// Insert stores a key-value pair, overwriting any previous value for the key.
	// Empty keys and values are accepted at this layer.
	Insert(key, value string) error

	// Get retrieves the value associated with the given key.
	// Returns the value and true if the key exists, or empty string and false if not.
	Get(key string) (string, bool)
}

// Entry is a single key-value pair.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// NotFoundMessage is the diagnostic carried by a failed lookup.
func NotFoundMessage(key string) string {
	return fmt.Sprintf("Value for key: %s not found.", key)
}
