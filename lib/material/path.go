// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package material

import (
	"strings"

	"github.com/bureau-foundation/nscolor/lib/hct"
)

// Separator joins the segments of a hierarchical namespace.
const Separator = "."

// Path is a hierarchical namespace, ordered root to leaf. A path either
// names every segment, or replaces the root with an explicit color
// followed by one named child.
type Path struct {
	root  *hct.Color
	names []string
}

// Names returns the path of the given segments. A path with no
// segments is the single empty namespace.
func Names(names ...string) Path {
	if len(names) == 0 {
		names = []string{""}
	}
	return Path{names: copyNames(names)}
}

// Rooted returns the two-level path whose root color is given directly
// rather than derived.
func Rooted(root hct.Color, child string) Path {
	return Path{root: &root, names: []string{child}}
}

// ParsePath splits a dotted namespace such as "http.server" into its
// segments. Empty segments are kept: "a..b" has three.
func ParsePath(namespace string) Path {
	return Names(strings.Split(namespace, Separator)...)
}

// Segments returns the named segments, root to leaf. A rooted path
// returns only its child.
func (p Path) Segments() []string {
	return copyNames(p.names)
}

// Root returns the explicit root color of a rooted path.
func (p Path) Root() (hct.Color, bool) {
	if p.root == nil {
		return hct.Color{}, false
	}
	return *p.root, true
}

// Len is the number of levels, counting an explicit root.
func (p Path) Len() int {
	if p.root != nil {
		return len(p.names) + 1
	}
	return len(p.names)
}

// String joins the segments with Separator. An explicit root is shown
// as its hex value.
func (p Path) String() string {
	if p.root != nil {
		return p.root.Hex() + Separator + strings.Join(p.names, Separator)
	}
	return strings.Join(p.names, Separator)
}

// copyNames copies names so a Path never aliases caller memory.
func copyNames(names []string) []string {
	return append([]string(nil), names...)
}
