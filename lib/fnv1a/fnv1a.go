// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package fnv1a

import (
	"errors"
	"fmt"
	"hash"
	"hash/fnv"
)

// Size32 and Size64 are the supported hash widths in bits.
const (
	Size32 = 32
	Size64 = 64
)

var (
	// ErrUnsupportedSize is returned when a hash width other than
	// Size32 or Size64 is requested.
	ErrUnsupportedSize = errors.New("fnv1a: unsupported hash size")

	// ErrEmptyBuffer is returned by SumStringBuffered when the scratch
	// buffer has zero length.
	ErrEmptyBuffer = errors.New("fnv1a: scratch buffer must have a length greater than zero")
)

// String32 returns the 32-bit FNV-1a hash of the UTF-8 bytes of s.
// This is the seed derivation used for namespace colors.
func String32(s string) uint32 {
	hasher := fnv.New32a()
	hasher.Write([]byte(s))
	return hasher.Sum32()
}

// Sum returns the FNV-1a hash of data at the given width. The result is
// returned as a uint64; 32-bit hashes occupy the low 32 bits.
func Sum(data []byte, size int) (uint64, error) {
	hasher, err := newHash(size)
	if err != nil {
		return 0, err
	}
	hasher.Write(data)
	return sumOf(hasher), nil
}

// SumStringBuffered hashes s by copying it through buffer in chunks.
// FNV-1a is byte-at-a-time, so the result equals Sum([]byte(s), size)
// for any buffer length.
func SumStringBuffered(s string, size int, buffer []byte) (uint64, error) {
	if len(buffer) == 0 {
		return 0, ErrEmptyBuffer
	}
	hasher, err := newHash(size)
	if err != nil {
		return 0, err
	}
	for remaining := s; len(remaining) > 0; {
		written := copy(buffer, remaining)
		hasher.Write(buffer[:written])
		remaining = remaining[written:]
	}
	return sumOf(hasher), nil
}

func newHash(size int) (hash.Hash, error) {
	switch size {
	case Size32:
		return fnv.New32a(), nil
	case Size64:
		return fnv.New64a(), nil
	default:
		return nil, fmt.Errorf("%w: %d (supported: %d, %d)", ErrUnsupportedSize, size, Size32, Size64)
	}
}

func sumOf(hasher hash.Hash) uint64 {
	switch typed := hasher.(type) {
	case hash.Hash32:
		return uint64(typed.Sum32())
	case hash.Hash64:
		return typed.Sum64()
	}
	panic(fmt.Sprintf("fnv1a: unexpected hash type %T", hasher))
}
