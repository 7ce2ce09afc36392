package fonts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Loader returns the raw bytes of the font file called name.
type Loader func(name string) ([]byte, error)

// Cache parses each font file once and keeps the result for its lifetime.
// Parse failures are not cached. A Cache is safe for concurrent use.
type Cache struct {
	load  Loader
	mu    sync.Mutex
	fonts map[string]*ParsedFont
}

// NewCache creates a cache that reads font files through load.
func NewCache(load Loader) *Cache {
	if load == nil {
		load = EmbeddedLoader
	}
	return &Cache{
		load:  load,
		fonts: make(map[string]*ParsedFont),
	}
}

var defaultCache = NewCache(EmbeddedLoader)

// DefaultCache returns the process-wide cache backed by the embedded fonts.
func DefaultCache() *Cache {
	return defaultCache
}

// Get returns the parsed font for name, reading and parsing it on first use.
func (c *Cache) Get(name string) (*ParsedFont, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if f, ok := c.fonts[name]; ok {
		return f, nil
	}

	data, err := c.load(name)
	if err != nil {
		return nil, fmt.Errorf("load font %s: %w", name, err)
	}
	f, err := ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", name, err)
	}
	c.fonts[name] = f
	return f, nil
}

// Len returns the number of cached fonts.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.fonts)
}

// DirLoader reads font files from dir, falling back to the embedded fonts
// for names that do not exist there.
func DirLoader(dir string) Loader {
	return func(name string) ([]byte, error) {
		data, err := os.ReadFile(filepath.Join(dir, filepath.Base(name)))
		if errors.Is(err, fs.ErrNotExist) {
			return EmbeddedLoader(name)
		}
		return data, err
	}
}

// FSLoader reads font files from fsys.
func FSLoader(fsys fs.FS) Loader {
	return func(name string) ([]byte, error) {
		data, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrFontNotFound
		}
		return data, err
	}
}
