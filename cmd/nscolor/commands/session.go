// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"log/slog"

	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/nscolor/cmd/nscolor/cli"
	"github.com/bureau-foundation/nscolor/lib/config"
	"github.com/bureau-foundation/nscolor/lib/material"
	"github.com/bureau-foundation/nscolor/lib/tui"
)

// session is the state shared by a single command invocation.
type session struct {
	config   *config.Config
	logger   *slog.Logger
	resolver *material.Resolver
	renderer *lipgloss.Renderer
	chain    *tui.ChainRenderer
}

// openSession loads the configuration and wires the resolver, the
// stdout renderer, and the stderr logger.
func openSession(env Environment, global GlobalParams) (*session, error) {
	cfg, err := loadConfig(global.Config)
	if err != nil {
		return nil, err
	}

	renderer, err := tui.NewRenderer(env.Stdout, cfg.ColorProfile)
	if err != nil {
		return nil, cli.Validation("%w", err)
	}

	// The log handler colors namespaces with its own resolver so that
	// rendering a record never logs another record.
	logResolver := material.NewResolver(material.NewCache(), cfg.ResolverOptions()...)
	if err := cfg.ApplyBrands(logResolver); err != nil {
		return nil, cli.Validation("%w", err)
	}
	logRenderer, err := tui.NewRenderer(env.Stderr, cfg.ColorProfile)
	if err != nil {
		return nil, cli.Validation("%w", err)
	}
	logger := cli.NewCommandLogger(env.Stderr, global.Verbose, tui.NewChainRenderer(logResolver, logRenderer))

	options := append(cfg.ResolverOptions(), material.WithLogger(logger))
	resolver := material.NewResolver(material.NewCache(), options...)
	if err := cfg.ApplyBrands(resolver); err != nil {
		return nil, cli.Validation("%w", err)
	}

	logger.Debug("session opened",
		"color_profile", cfg.ColorProfile,
		"cache", cfg.Cache,
		"brands", len(cfg.Brands),
	)

	return &session{
		config:   cfg,
		logger:   logger,
		resolver: resolver,
		renderer: renderer,
		chain:    tui.NewChainRenderer(resolver, renderer),
	}, nil
}

// loadConfig reads path if set, then NSCOLOR_CONFIG, and falls back
// to the defaults when neither names a file.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		cfg, err := config.LoadFile(path)
		if err != nil {
			return nil, cli.Validation("%w", err)
		}
		return cfg, nil
	}

	cfg, err := config.Load()
	if errors.Is(err, config.ErrConfigNotSet) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, cli.Validation("%w", err)
	}
	return cfg, nil
}

// style returns the lipgloss style for m on the session's renderer.
func (s *session) style(m material.Material) lipgloss.Style {
	return material.Format(m, material.Style(s.renderer))
}
