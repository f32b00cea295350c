// Package storage provides the key-value persistence layer under the
// ledger store. Each key holds one JSON document.
package storage

// KV is the minimal store the ledger persists through.
type KV interface {
	// Get returns the bytes stored under key. found is false when the
	// key has never been written; that is not an error.
	Get(key string) (data []byte, found bool, err error)
	// Set overwrites the value stored under key.
	Set(key string, data []byte) error
}
