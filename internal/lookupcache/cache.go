package lookupcache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"cineload/internal/logging"
	"cineload/internal/omdb"
)

// Entry pairs a cache key with its stored payload. A nil Payload is the
// explicit not-found marker, distinct from a key that was never queried.
type Entry struct {
	Key     string
	Payload *omdb.Payload
}

// Cache provides thread-safe access to the durable lookup cache. The on-disk
// form is a single JSON object mapping "title" or "title::year" keys to the
// raw OMDb payload, or null for titles the service does not know.
type Cache struct {
	path    string
	logger  *slog.Logger
	mu      sync.RWMutex
	entries map[string]*omdb.Payload
}

// New creates a cache instance backed by the given file. A missing or
// malformed file is never fatal: the cache logs a warning and starts empty
// so a corrupt cache can only cost re-fetches, not the run.
func New(path string, logger *slog.Logger) *Cache {
	logger = logging.NewComponentLogger(logger, "lookupcache")

	c := &Cache{
		path:    path,
		logger:  logger,
		entries: make(map[string]*omdb.Payload),
	}

	if path == "" {
		return c
	}

	if err := c.load(); err != nil {
		logger.Warn("failed to load lookup cache; starting empty",
			logging.Error(err),
			logging.String("path", path))
		c.entries = make(map[string]*omdb.Payload)
	}

	return c
}

// Lookup returns the cached payload for the key. The boolean reports whether
// the key has ever been stored; a true result with a nil payload is a cached
// not-found marker.
func (c *Cache) Lookup(key string) (*omdb.Payload, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	payload, found := c.entries[key]
	return payload, found
}

// Store records the payload (or the not-found marker when payload is nil)
// and persists the cache before returning, so a crash mid-run loses at most
// the in-flight request.
func (c *Cache) Store(key string, payload *omdb.Payload) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("cache key cannot be empty")
	}
	if c.path == "" {
		return nil // no-op when path not configured
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = payload

	if err := c.save(); err != nil {
		return fmt.Errorf("persist cache: %w", err)
	}

	c.logger.Debug("cached lookup result",
		logging.String("key", key),
		logging.Bool("found", payload != nil))

	return nil
}

// Remove deletes an entry by key and persists the change.
func (c *Cache) Remove(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("cache key cannot be empty")
	}
	if c.path == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		return fmt.Errorf("key %q not found in cache", key)
	}

	delete(c.entries, key)

	if err := c.save(); err != nil {
		return fmt.Errorf("persist cache: %w", err)
	}

	c.logger.Debug("removed lookup cache entry", logging.String("key", key))
	return nil
}

// List returns all entries sorted by key.
func (c *Cache) List() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entries := make([]Entry, 0, len(c.entries))
	for key, payload := range c.entries {
		entries = append(entries, Entry{Key: key, Payload: payload})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})

	return entries
}

// Clear removes all entries and persists the empty cache.
func (c *Cache) Clear() error {
	if c.path == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*omdb.Payload)

	if err := c.save(); err != nil {
		return fmt.Errorf("persist cache: %w", err)
	}

	c.logger.Debug("cleared lookup cache")
	return nil
}

// Count returns the number of entries in the cache.
func (c *Cache) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// load reads the cache from disk into memory.
func (c *Cache) load() error {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil // fresh start
		}
		return fmt.Errorf("read cache file: %w", err)
	}

	if len(data) == 0 {
		return nil
	}

	entries := make(map[string]*omdb.Payload)
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parse cache file: %w", err)
	}

	c.entries = entries

	c.logger.Debug("loaded lookup cache",
		logging.Int("entry_count", len(c.entries)),
		logging.String("path", c.path))

	return nil
}

// save writes the cache to disk atomically.
func (c *Cache) save() error {
	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cache: %w", err)
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	// Write atomically via temp file
	tmpPath := c.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, c.path); err != nil {
		os.Remove(tmpPath) // cleanup on failure
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
