// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package entropy

import "math"

// PoolBits is the number of bits of entropy in one Pool.
const PoolBits = 32

// maxWidth caps the mask width so the mask fits in a uint64.
const maxWidth = 63

// Pool is a consumable source of bits seeded from one 32-bit value.
type Pool struct {
	remaining uint32
	consumed  int
}

// NewPool returns a Pool holding all 32 bits of seed.
func NewPool(seed uint32) *Pool {
	return &Pool{remaining: seed}
}

// Consume draws a value in [0, limit) using Width(limit, precision)
// bits of the pool and discards those bits.
//
// The raw draw is remaining mod (2^width - 1), rescaled by
// raw*limit/mask. The multiplication happens before the division so the
// integer part of the draw is exact.
//
// A non-positive limit, or a width that rounds to zero bits, returns 0
// without consuming anything.
func (p *Pool) Consume(limit float64, precision int) float64 {
	width := Width(limit, precision)
	if width <= 0 {
		return 0
	}

	maskWidth := min(width, maxWidth)
	mask := uint64(1)<<maskWidth - 1
	raw := uint64(p.remaining) % mask
	result := float64(raw) * limit / float64(mask)

	// Shifting a uint32 by 32 or more yields zero, which is exactly
	// the overspent state.
	p.remaining >>= uint(width)
	p.consumed += width
	return result
}

// Consumed returns the total width of all draws taken so far.
func (p *Pool) Consumed() int {
	return p.consumed
}

// Remaining returns the unconsumed part of the seed.
func (p *Pool) Remaining() uint32 {
	return p.remaining
}

// Overspent reports whether the draws so far exceeded PoolBits.
func (p *Pool) Overspent() bool {
	return p.consumed > PoolBits
}

// Width returns the number of bits a Consume(limit, precision) call
// takes: ceil(log2(limit)) for the integer part plus precision. Limits
// below 1 have a negative integer part, which shortens the draw. A
// non-positive limit has width 0.
func Width(limit float64, precision int) int {
	if !(limit > 0) || math.IsInf(limit, 1) {
		return 0
	}
	return int(math.Ceil(math.Log2(limit))) + precision
}
