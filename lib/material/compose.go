// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package material

import "github.com/bureau-foundation/nscolor/lib/hct"

// Compose returns the composite color of a hierarchical namespace.
//
// Each level's own color is resolved independently (an explicit root is
// used as-is). Starting from the leaf's color, the running color is
// harmonized toward each ancestor in turn, from the leaf's parent up to
// the root. Harmonizing keeps the running chroma and tone and only moves
// hue, so the leaf decides vividness while ancestors pull the hue toward
// their family. The root is applied last and so has the strongest pull.
//
// A single named segment composes to exactly Resolve(segment, useCache).
// Only the leaf-level colors go through the cache; composites are not
// cached.
func (r *Resolver) Compose(path Path, useCache bool) hct.Color {
	if path.root == nil && len(path.names) == 1 {
		return r.Resolve(path.names[0], useCache)
	}

	levels := make([]uint32, 0, path.Len())
	if path.root != nil {
		levels = append(levels, path.root.ARGB())
	}
	for _, name := range path.names {
		levels = append(levels, r.Resolve(name, useCache).ARGB())
	}

	composite := levels[len(levels)-1]
	for i := len(levels) - 2; i >= 0; i-- {
		composite = hct.Harmonize(composite, levels[i])
	}
	return hct.FromARGB(composite)
}

// SubMaterial composes child under an explicit parent color. It equals
// Compose(Names(p, child)) whenever parent is p's resolved color.
func (r *Resolver) SubMaterial(parent hct.Color, child string, useCache bool) hct.Color {
	return r.Compose(Rooted(parent, child), useCache)
}
