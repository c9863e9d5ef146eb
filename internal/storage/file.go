package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// File is a KV store kept in a single JSON document on disk, mapping keys
// to string values the way browser local storage does.
// Every write rewrites the whole document through a temp file and rename.
type File struct {
	path   string
	mu     sync.Mutex
	values map[string]string
}

// OpenFile opens the store at path, creating parent directories as needed.
// A missing file is an empty store; so is an unreadable document, which is
// renamed aside with a .corrupt-<timestamp> suffix.
func OpenFile(path string) (*File, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	path = filepath.Clean(path)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	f := &File{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return f, nil
		}
		return nil, fmt.Errorf("read storage file: %w", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &f.values); err != nil {
			f.values = make(map[string]string)
			aside, moveErr := f.quarantine()
			slog.Warn("discarding unreadable storage file",
				"path", path,
				"moved_to", aside,
				"error", err,
				"move_error", moveErr,
			)
			return f, nil
		}
		if f.values == nil {
			f.values = make(map[string]string)
		}
	}
	return f, nil
}

// quarantine renames the current document out of the way so the next flush
// starts fresh and the bad content stays available for inspection
func (f *File) quarantine() (string, error) {
	aside := fmt.Sprintf("%s.corrupt-%d", f.path, time.Now().UTC().UnixNano())
	if err := os.Rename(f.path, aside); err != nil {
		return "", fmt.Errorf("move corrupt storage file: %w", err)
	}
	return aside, nil
}

// Get returns the raw value stored under key
func (f *File) Get(ctx context.Context, key string) ([]byte, bool, error) {
	key, err := validateKey(key)
	if err != nil {
		return nil, false, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	value, ok := f.values[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(value), true, nil
}

// Put stores value under key and flushes the document
func (f *File) Put(ctx context.Context, key string, value []byte) error {
	key, err := validateKey(key)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	previous, existed := f.values[key]
	f.values[key] = string(value)
	if err := f.flush(); err != nil {
		if existed {
			f.values[key] = previous
		} else {
			delete(f.values, key)
		}
		return err
	}
	return nil
}

// Delete removes key and flushes the document
func (f *File) Delete(ctx context.Context, key string) error {
	key, err := validateKey(key)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	previous, existed := f.values[key]
	if !existed {
		return nil
	}
	delete(f.values, key)
	if err := f.flush(); err != nil {
		f.values[key] = previous
		return err
	}
	return nil
}

// flush writes the document atomically; callers hold f.mu
func (f *File) flush() error {
	data, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace storage file: %w", err)
	}
	return nil
}
