package compiler

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/syssam/structarith/compiler/gen"
)

// CacheFile is the default name of the cache file, written next to the
// generated files.
const CacheFile = ".structarith.cache"

// cacheVersion invalidates every entry when the generated code changes shape.
const cacheVersion = 1

// Cache maps generated file paths to the fingerprint of the record and
// configuration they were generated from. Records whose fingerprint matches
// and whose file still exists are not regenerated.
type Cache struct {
	mu      sync.Mutex
	path    string
	entries map[string]string
	dirty   bool
}

// cacheFile is the on-disk layout of the cache.
type cacheFile struct {
	Version int               `msgpack:"version"`
	Entries map[string]string `msgpack:"entries"`
}

// OpenCache opens the cache stored at path. A missing, unreadable or stale
// cache file yields an empty cache.
func OpenCache(path string) (*Cache, error) {
	c := &Cache{path: path, entries: make(map[string]string)}
	buf, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return c, nil
	case err != nil:
		return nil, fmt.Errorf("compiler: open cache: %w", err)
	}
	var file cacheFile
	if err := msgpack.Unmarshal(buf, &file); err != nil || file.Version != cacheVersion {
		c.dirty = true
		return c, nil
	}
	if file.Entries != nil {
		c.entries = file.Entries
	}
	return c, nil
}

// Path returns the path of the cache file.
func (c *Cache) Path() string {
	return c.path
}

// Get returns the fingerprint recorded for the key.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sum, ok := c.entries[key]
	return sum, ok
}

// Set records the fingerprint of the key.
func (c *Cache) Set(key, sum string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries[key] != sum {
		c.entries[key] = sum
		c.dirty = true
	}
}

// Delete removes the key.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; ok {
		delete(c.entries, key)
		c.dirty = true
	}
}

// DeletePrefix removes all keys with the given prefix.
func (c *Cache) DeletePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
			c.dirty = true
		}
	}
}

// Len returns the number of entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Fresh reports if the file at key was generated from the fingerprint sum
// and still exists. A recorded file that was removed is forgotten.
func (c *Cache) Fresh(key, sum string) bool {
	prev, ok := c.Get(key)
	if !ok || prev != sum {
		return false
	}
	if _, err := os.Stat(key); err != nil {
		c.Delete(key)
		return false
	}
	return true
}

// Save writes the cache file if any entry changed since it was opened.
func (c *Cache) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.dirty {
		return nil
	}
	buf, err := msgpack.Marshal(&cacheFile{Version: cacheVersion, Entries: c.entries})
	if err != nil {
		return fmt.Errorf("compiler: encode cache: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("compiler: save cache: %w", err)
	}
	if err := os.WriteFile(c.path, buf, 0o644); err != nil {
		return fmt.Errorf("compiler: save cache: %w", err)
	}
	c.dirty = false
	return nil
}

// fingerprint is everything the output of a record depends on.
type fingerprint struct {
	Version    int                `msgpack:"v"`
	Runtime    string             `msgpack:"runtime"`
	Header     string             `msgpack:"header"`
	Package    string             `msgpack:"package"`
	Operations uint16             `msgpack:"ops"`
	Record     string             `msgpack:"record"`
	Declared   bool               `msgpack:"declared"`
	Fields     []fingerprintField `msgpack:"fields"`
}

type fingerprintField struct {
	Name    string `msgpack:"name"`
	Type    string `msgpack:"type"`
	Comment string `msgpack:"comment,omitempty"`
}

// Fingerprint returns the hex digest identifying the generated output of
// the record.
func Fingerprint(r *gen.Record) (string, error) {
	fp := fingerprint{
		Version:    cacheVersion,
		Runtime:    r.Runtime,
		Header:     r.Header,
		Package:    r.PackageName(),
		Operations: uint16(r.EnabledOperations()),
		Record:     r.Name,
		Declared:   r.Declared,
	}
	for _, f := range r.AllFields() {
		fp.Fields = append(fp.Fields, fingerprintField{Name: f.Name, Type: f.TypeString(), Comment: f.Comment})
	}
	buf, err := msgpack.Marshal(&fp)
	if err != nil {
		return "", fmt.Errorf("compiler: fingerprint %s: %w", r.Name, err)
	}
	sum := sha256.Sum256(buf)
	return hex.EncodeToString(sum[:]), nil
}
