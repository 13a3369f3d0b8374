// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package entropy extracts bounded pseudo-random draws from a single
// 32-bit seed.
//
// A [Pool] wraps the unconsumed remainder of one seed. Each
// [Pool.Consume] call takes ceil(log2(limit)) bits for the integer part
// of the draw plus a caller-chosen number of precision bits for the
// fractional part, rescales them into [0, limit), and shifts them out of
// the remainder permanently.
//
// The pool holds exactly [PoolBits] bits. Callers plan their draws so
// the total width stays within that budget; [Pool.Consumed] reports the
// bits spent so far. Overspending is not an error: once the remainder is
// shifted to zero every further draw returns 0, which degrades the
// distribution rather than failing.
//
// A Pool is not safe for concurrent use. Each derivation owns its own.
//
// This package depends on no other nscolor packages.
package entropy
