// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package material

import (
	"slices"
	"sync"

	"github.com/bureau-foundation/nscolor/lib/hct"
)

// Cache maps namespaces to their resolved colors. It is safe for
// concurrent use. Entries live until removed; nothing expires.
//
// Entries come from two writers. [Cache.Memoize] records a derived
// color only if the namespace has no entry, so a racing derivation can
// never replace an override. [Cache.Override] always replaces.
type Cache struct {
	mu        sync.RWMutex
	entries   map[string]hct.Color
	overrides map[string]struct{}
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		entries:   make(map[string]hct.Color),
		overrides: make(map[string]struct{}),
	}
}

// Get returns the entry for namespace.
func (c *Cache) Get(namespace string) (hct.Color, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	color, ok := c.entries[namespace]
	return color, ok
}

// Memoize stores color for namespace unless an entry already exists,
// and returns whichever color the cache now holds.
func (c *Cache) Memoize(namespace string, color hct.Color) hct.Color {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[namespace]; ok {
		return existing
	}
	c.entries[namespace] = color
	return color
}

// Override stores color for namespace, replacing any entry. The new
// color is visible to every Get that starts after Override returns.
func (c *Cache) Override(namespace string, color hct.Color) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[namespace] = color
	c.overrides[namespace] = struct{}{}
}

// IsOverride reports whether namespace's entry came from Override.
func (c *Cache) IsOverride(namespace string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.overrides[namespace]
	return ok
}

// Delete removes namespace's entry, override or not.
func (c *Cache) Delete(namespace string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, namespace)
	delete(c.overrides, namespace)
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	clear(c.overrides)
}

// Len returns the number of entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Namespaces returns the cached namespaces in sorted order.
func (c *Cache) Namespaces() []string {
	c.mu.RLock()
	namespaces := make([]string, 0, len(c.entries))
	for namespace := range c.entries {
		namespaces = append(namespaces, namespace)
	}
	c.mu.RUnlock()
	slices.Sort(namespaces)
	return namespaces
}
