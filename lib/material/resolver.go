// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package material

import (
	"log/slog"

	"github.com/bureau-foundation/nscolor/lib/hct"
)

// Resolver turns namespaces into colors through a shared [Cache].
// A Resolver is safe for concurrent use. Concurrent misses on the same
// namespace may both derive it; derivation is deterministic, so the
// duplicate only wastes work.
type Resolver struct {
	cache    *Cache
	useCache bool
	logger   *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for Debug-level derivation events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// WithoutMemoization makes materials built by the resolver skip writing
// derived colors to the cache. Overrides are still honored.
func WithoutMemoization() Option {
	return func(r *Resolver) {
		r.useCache = false
	}
}

// NewResolver returns a resolver backed by cache. A nil cache gets a
// fresh private one.
func NewResolver(cache *Cache, options ...Option) *Resolver {
	if cache == nil {
		cache = NewCache()
	}
	resolver := &Resolver{
		cache:    cache,
		useCache: true,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(resolver)
	}
	return resolver
}

// Cache returns the resolver's cache.
func (r *Resolver) Cache() *Cache {
	return r.cache
}

// Memoizes reports whether materials built by the resolver write derived
// colors to the cache; see [WithoutMemoization].
func (r *Resolver) Memoizes() bool {
	return r.useCache
}

// Resolve returns the color for namespace.
//
// The cache is always consulted first, so overrides apply regardless of
// useCache. On a miss the color is derived from the namespace's hash;
// useCache controls whether the derived color is written back.
func (r *Resolver) Resolve(namespace string, useCache bool) hct.Color {
	if color, ok := r.cache.Get(namespace); ok {
		r.logger.Debug("namespace color from cache", "namespace", namespace, "color", color.Hex())
		return color
	}

	color := Derive(namespace)
	r.logger.Debug("derived namespace color",
		"namespace", namespace,
		"color", color.Hex(),
		"hue", color.Hue(),
		"chroma", color.Chroma(),
		"tone", color.Tone(),
	)
	if useCache {
		color = r.cache.Memoize(namespace, color)
	}
	return color
}

// Override forces namespace to resolve to color from now on, replacing
// any cached or previously overridden value. Use [Match] first to bring
// an arbitrary brand color into the vivid band.
func (r *Resolver) Override(namespace string, color hct.Color) {
	r.cache.Override(namespace, color)
	r.logger.Debug("namespace color overridden", "namespace", namespace, "color", color.Hex())
}
