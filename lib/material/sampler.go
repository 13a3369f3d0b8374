// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package material

import (
	"github.com/bureau-foundation/nscolor/lib/entropy"
	"github.com/bureau-foundation/nscolor/lib/fnv1a"
	"github.com/bureau-foundation/nscolor/lib/hct"
)

// The vivid band. Every hue reaches chroma MinChroma somewhere in
// [ToneMin, ToneMax], so sampling inside the band never needs a retry.
const (
	ToneMin   = 68.0
	ToneMax   = 70.0
	MinChroma = 48.0
)

// PrecisionBits is the number of fractional bits each draw takes beyond
// its integer range.
const PrecisionBits = 5

const (
	hueRangeBits    = 9 // 360 hues
	toneRangeBits   = 1 // ToneMax - ToneMin = 2
	chromaRangeBits = 6 // the gamut boundary in the band stays under MinChroma+64

	budgetBits = hueRangeBits + toneRangeBits + chromaRangeBits + 3*PrecisionBits
)

// Compile-time check: the draw plan fits the pool.
const _ uint = entropy.PoolBits - budgetBits

// BudgetStep is one draw in the sampling plan.
type BudgetStep struct {
	Name          string
	RangeBits     int
	PrecisionBits int
}

// Bits is the total width of the draw.
func (s BudgetStep) Bits() int {
	return s.RangeBits + s.PrecisionBits
}

// SamplingBudget lists the draws [Sample] takes, in order, with the
// most bits each can cost. The chroma entry is an upper bound; the
// actual range depends on the hue and tone drawn before it.
var SamplingBudget = [...]BudgetStep{
	{Name: "hue", RangeBits: hueRangeBits, PrecisionBits: PrecisionBits},
	{Name: "tone", RangeBits: toneRangeBits, PrecisionBits: PrecisionBits},
	{Name: "chroma", RangeBits: chromaRangeBits, PrecisionBits: PrecisionBits},
}

// BudgetBits is the sum of SamplingBudget.
const BudgetBits = budgetBits

// Sample derives a color from a 32-bit seed.
//
// The returned color reports the sampled coordinates exactly: chroma is
// at least MinChroma and tone lies in [ToneMin, ToneMax] for every seed.
// Its packed value is the nearest sRGB color. Identical seeds always
// yield identical colors.
func Sample(seed uint32) hct.Color {
	pool := entropy.NewPool(seed)
	return sampleFrom(pool)
}

func sampleFrom(pool *entropy.Pool) hct.Color {
	hue := pool.Consume(360, PrecisionBits)
	tone := ToneMin + pool.Consume(ToneMax-ToneMin, PrecisionBits)

	// Probe the gamut boundary at this hue and tone, then draw a
	// chroma between the floor and the boundary.
	maxChroma := hct.MaxChroma(hue, tone)
	chroma := MinChroma + pool.Consume(maxChroma-MinChroma, PrecisionBits)

	return hct.From(hue, chroma, tone)
}

// Seed returns the sampling seed for a namespace.
func Seed(namespace string) uint32 {
	return fnv1a.String32(namespace)
}

// Derive samples the color of a namespace without any caching or
// overrides.
func Derive(namespace string) hct.Color {
	return Sample(Seed(namespace))
}
