// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package material

import "github.com/bureau-foundation/nscolor/lib/hct"

// Material is a resolved namespace color bound to the resolver that
// produced it, so sub-namespaces compose under it.
type Material struct {
	color    hct.Color
	resolver *Resolver
	useCache bool
}

// Material resolves path with the resolver's default caching.
func (r *Resolver) Material(path Path) Material {
	return Material{color: r.Compose(path, r.useCache), resolver: r, useCache: r.useCache}
}

// Namespace resolves a dotted namespace string; see [ParsePath].
func (r *Resolver) Namespace(namespace string) Material {
	return r.Material(ParsePath(namespace))
}

// Wrap binds an existing color to the resolver, for example a matched
// brand color that should act as the root of sub-materials.
func (r *Resolver) Wrap(color hct.Color) Material {
	return Material{color: color, resolver: r, useCache: r.useCache}
}

// Color returns the material's color.
func (m Material) Color() hct.Color {
	return m.color
}

// Sub returns the material of child composed under this one.
func (m Material) Sub(child string) Material {
	return Material{
		color:    m.resolver.SubMaterial(m.color, child, m.useCache),
		resolver: m.resolver,
		useCache: m.useCache,
	}
}
