// Package assetcache keeps versioned copies of static assets and serves
// them cache-first.
package assetcache

import (
	"net/http"
	"sort"
	"sync"
)

// Asset is a cached response.
type Asset struct {
	Path   string
	Status int
	Header http.Header
	Body   []byte
}

// Cache is one named set of assets keyed by request path.
type Cache struct {
	name string

	mu     sync.RWMutex
	assets map[string]Asset
}

func (c *Cache) Name() string { return c.name }

func (c *Cache) Put(a Asset) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.assets[a.Path] = a
}

func (c *Cache) Match(path string) (Asset, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.assets[path]
	return a, ok
}

// Paths returns the cached paths sorted.
func (c *Cache) Paths() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	paths := make([]string, 0, len(c.assets))
	for p := range c.assets {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Registry holds every named cache.
type Registry struct {
	mu     sync.RWMutex
	caches map[string]*Cache
}

func NewRegistry() *Registry {
	return &Registry{caches: map[string]*Cache{}}
}

// Open returns the cache called name, creating it when missing.
func (r *Registry) Open(name string) *Cache {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.caches[name]; ok {
		return c
	}
	c := &Cache{name: name, assets: map[string]Asset{}}
	r.caches[name] = c
	return c
}

func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.caches[name]
	return ok
}

// Keys returns the cache names sorted.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.caches))
	for n := range r.caches {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Delete(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.caches[name]; !ok {
		return false
	}
	delete(r.caches, name)
	return true
}

// Match looks path up in every cache, in name order.
func (r *Registry) Match(path string) (Asset, bool) {
	for _, name := range r.Keys() {
		r.mu.RLock()
		c := r.caches[name]
		r.mu.RUnlock()
		if c == nil {
			continue
		}
		if a, ok := c.Match(path); ok {
			return a, true
		}
	}
	return Asset{}, false
}
