package cssvars

import (
	"os"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of files kept by NewDeclarationCache(0)
const DefaultCacheSize = 1024

// cacheEntry is valid while the file's size and modification time match
type cacheEntry struct {
	modTime      time.Time
	size         int64
	declarations []Declaration
}

// DeclarationCache keeps parsed declarations between lint runs so that
// unchanged stylesheets are not parsed again. Safe for concurrent use.
type DeclarationCache struct {
	entries *lru.Cache[string, cacheEntry]
}

// NewDeclarationCache creates a cache holding up to size files
func NewDeclarationCache(size int) (*DeclarationCache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}

	entries, err := lru.New[string, cacheEntry](size)
	if err != nil {
		return nil, err
	}
	return &DeclarationCache{entries: entries}, nil
}

// Len returns the number of cached files
func (c *DeclarationCache) Len() int {
	return c.entries.Len()
}

// lookup returns the cached declarations when the file is unchanged
func (c *DeclarationCache) lookup(path string, info os.FileInfo) ([]Declaration, bool) {
	entry, ok := c.entries.Get(path)
	if !ok {
		return nil, false
	}
	if entry.size != info.Size() || !entry.modTime.Equal(info.ModTime()) {
		c.entries.Remove(path)
		return nil, false
	}
	return entry.declarations, true
}

func (c *DeclarationCache) store(path string, info os.FileInfo, decls []Declaration) {
	c.entries.Add(path, cacheEntry{
		modTime:      info.ModTime(),
		size:         info.Size(),
		declarations: decls,
	})
}

// loadDeclarations parses path, going through cache when it is not nil.
// The bool result reports a cache hit.
func loadDeclarations(path string, cache *DeclarationCache) ([]Declaration, bool, error) {
	if cache == nil {
		decls, err := parseFile(path)
		return decls, false, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, false, err
	}
	if decls, ok := cache.lookup(path, info); ok {
		return decls, true, nil
	}

	decls, err := parseFile(path)
	if err != nil {
		return nil, false, err
	}
	cache.store(path, info, decls)
	return decls, false, nil
}
