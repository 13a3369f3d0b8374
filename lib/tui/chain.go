// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/nscolor/lib/hct"
	"github.com/bureau-foundation/nscolor/lib/material"
)

// ChainRenderer prints messages prefixed by their namespace path.
//
// A single namespace renders as the inverted name, a colon, and the
// message, both styled in the namespace's color. A longer path renders each
// segment in its own color, with the first and last segments inverted,
// and joins neighbors with a "-" colored by the child composed under
// its parent. The message takes the composite color of the whole path.
type ChainRenderer struct {
	resolver *material.Resolver
	renderer *lipgloss.Renderer
	useCache bool
}

// NewChainRenderer returns a renderer that resolves colors with
// resolver and styles them with renderer. A nil renderer uses
// lipgloss's default. Derived colors are memoized when the resolver
// memoizes by default.
func NewChainRenderer(resolver *material.Resolver, renderer *lipgloss.Renderer) *ChainRenderer {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	return &ChainRenderer{resolver: resolver, renderer: renderer, useCache: resolver.Memoizes()}
}

// chainLevel is one segment of a rendered path.
type chainLevel struct {
	label string
	color hct.Color
}

// Render returns message prefixed by path.
func (c *ChainRenderer) Render(path material.Path, message string) string {
	levels := c.levels(path)
	full := c.style(c.resolver.Compose(path, c.useCache))

	if len(levels) == 1 {
		return full.Reverse(true).Render(levels[0].label) + ": " + full.Render(message)
	}

	var header strings.Builder
	for i, level := range levels {
		style := c.style(level.color)
		if i == 0 || i == len(levels)-1 {
			style = style.Reverse(true)
		}
		header.WriteString(style.Render(level.label))
		if i+1 < len(levels) {
			mix := c.resolver.SubMaterial(level.color, levels[i+1].label, c.useCache)
			header.WriteString(c.style(mix).Render("-"))
		}
	}
	return header.String() + ": " + full.Render(message)
}

// RenderNamespace renders under a dotted namespace; see
// [material.ParsePath].
func (c *ChainRenderer) RenderNamespace(namespace, message string) string {
	return c.Render(material.ParsePath(namespace), message)
}

func (c *ChainRenderer) levels(path material.Path) []chainLevel {
	levels := make([]chainLevel, 0, path.Len())
	if root, ok := path.Root(); ok {
		levels = append(levels, chainLevel{label: root.Hex(), color: root})
	}
	for _, name := range path.Segments() {
		levels = append(levels, chainLevel{label: name, color: c.resolver.Resolve(name, c.useCache)})
	}
	return levels
}

func (c *ChainRenderer) style(color hct.Color) lipgloss.Style {
	return material.Style(c.renderer)(color)
}
