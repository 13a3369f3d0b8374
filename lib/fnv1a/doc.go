// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package fnv1a computes FNV-1a hashes of namespace strings.
//
// Namespace colors are seeded from the 32-bit FNV-1a hash of the
// namespace's UTF-8 bytes. The hash starts from the FNV offset basis
// and, for each byte, XORs the byte into the accumulator and multiplies
// by the FNV prime with wraparound at the configured width.
//
// Only 32-bit hashes feed color derivation. [Sum] also accepts 64 for
// callers that want a wider digest of the same input; any other width
// fails with [ErrUnsupportedSize].
//
// [SumStringBuffered] streams a string through a caller-owned scratch
// buffer so hot paths can hash without allocating. An empty buffer is
// rejected with [ErrEmptyBuffer].
//
// This package depends on no other nscolor packages.
package fnv1a
