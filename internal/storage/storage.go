// Package storage provides the key-value persistence used for the cart
// snapshot, standing in for the browser's local storage.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrKeyRequired   = errors.New("storage key is required")
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// KV is a minimal key-value store
type KV interface {
	// Get returns the value stored under key and whether it exists
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Put stores value under key, replacing any previous value
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes key; deleting an absent key is not an error
	Delete(ctx context.Context, key string) error
}

// Driver names accepted by Open
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Opener opens a store for a driver that lives in its own package
type Opener func(path string) (KV, error)

var openers = map[string]Opener{
	DriverMemory: func(string) (KV, error) { return NewMemory(), nil },
	DriverFile:   func(path string) (KV, error) { return OpenFile(path) },
}

// Register makes an additional driver available to Open
func Register(driver string, open Opener) {
	openers[strings.ToLower(driver)] = open
}

// Open opens the store for driver at path
func Open(driver, path string) (KV, error) {
	open, ok := openers[strings.ToLower(strings.TrimSpace(driver))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}
	return open(path)
}

// Close closes kv if it holds resources
func Close(kv KV) error {
	if c, ok := kv.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

func validateKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrKeyRequired
	}
	return key, nil
}
