// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

// NamespaceKey is the attribute that names a record's namespace.
const NamespaceKey = "namespace"

// LogHandler is a slog.Handler for terminals. Each record prints as one
// line: the level, then the message rendered by a [ChainRenderer] under
// the record's namespace, then the remaining attributes as key=value.
//
// The namespace is taken from the last top-level [NamespaceKey]
// attribute, from either the record or [LogHandler.WithAttrs]. Records
// without one print the plain message.
//
// All handlers derived via WithAttrs/WithGroup share one output lock.
type LogHandler struct {
	output io.Writer
	mu     *sync.Mutex
	chain  *ChainRenderer
	level  slog.Leveler

	attrs        []string
	groupPrefix  string
	namespace    string
	hasNamespace bool
}

// NewLogHandler returns a handler writing to output. A nil options uses
// Info level.
func NewLogHandler(output io.Writer, chain *ChainRenderer, options *slog.HandlerOptions) *LogHandler {
	var level slog.Leveler = slog.LevelInfo
	if options != nil && options.Level != nil {
		level = options.Level
	}
	return &LogHandler{
		output: output,
		mu:     &sync.Mutex{},
		chain:  chain,
		level:  level,
	}
}

// Enabled reports whether the handler is interested in records at the
// given level.
func (handler *LogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= handler.level.Level()
}

// Handle formats the record and writes it as one line.
func (handler *LogHandler) Handle(_ context.Context, record slog.Record) error {
	namespace, hasNamespace := handler.namespace, handler.hasNamespace
	attrs := append([]string(nil), handler.attrs...)
	record.Attrs(func(attr slog.Attr) bool {
		if handler.groupPrefix == "" && attr.Key == NamespaceKey {
			namespace, hasNamespace = attr.Value.Resolve().String(), true
			return true
		}
		attrs = appendAttr(attrs, handler.groupPrefix, attr)
		return true
	})

	var line strings.Builder
	fmt.Fprintf(&line, "%-5s ", record.Level.String())
	if hasNamespace {
		line.WriteString(handler.chain.RenderNamespace(namespace, record.Message))
	} else {
		line.WriteString(record.Message)
	}
	for _, attr := range attrs {
		line.WriteByte(' ')
		line.WriteString(attr)
	}
	line.WriteByte('\n')

	handler.mu.Lock()
	defer handler.mu.Unlock()
	_, err := io.WriteString(handler.output, line.String())
	return err
}

// WithAttrs returns a new handler with the given attributes appended.
// A top-level namespace attribute becomes the handler's namespace.
func (handler *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := handler.clone()
	for _, attr := range attrs {
		if handler.groupPrefix == "" && attr.Key == NamespaceKey {
			derived.namespace, derived.hasNamespace = attr.Value.Resolve().String(), true
			continue
		}
		derived.attrs = appendAttr(derived.attrs, handler.groupPrefix, attr)
	}
	return derived
}

// WithGroup returns a new handler that qualifies later attribute keys
// with name.
func (handler *LogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return handler
	}
	derived := handler.clone()
	derived.groupPrefix = handler.groupPrefix + name + "."
	return derived
}

func (handler *LogHandler) clone() *LogHandler {
	derived := *handler
	derived.attrs = append([]string(nil), handler.attrs...)
	return &derived
}

// appendAttr formats attr as key=value, flattening groups into dotted
// keys. Empty attributes are dropped.
func appendAttr(formatted []string, prefix string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return formatted
	}
	if attr.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if attr.Key != "" {
			groupPrefix += attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			formatted = appendAttr(formatted, groupPrefix, member)
		}
		return formatted
	}
	return append(formatted, prefix+attr.Key+"="+quoteValue(attr.Value.String()))
}

func quoteValue(value string) string {
	if value == "" || strings.ContainsAny(value, " =\"\t\n") {
		return strconv.Quote(value)
	}
	return value
}
