// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hct

import "math"

func signum(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x == 0:
		return 0
	default:
		return 1
	}
}

func lerp(start, stop, amount float64) float64 {
	return (1-amount)*start + amount*stop
}

func clampInt(low, high, value int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

// SanitizeDegrees maps any angle in degrees into [0, 360).
func SanitizeDegrees(degrees float64) float64 {
	degrees = math.Mod(degrees, 360)
	if degrees < 0 {
		degrees += 360
	}
	return degrees
}

// DifferenceDegrees is the shortest distance between two angles, in
// [0, 180].
func DifferenceDegrees(a, b float64) float64 {
	return 180 - math.Abs(math.Abs(a-b)-180)
}

// rotationDirection is +1 when the shortest rotation from from to to is
// counterclockwise (increasing), -1 otherwise.
func rotationDirection(from, to float64) float64 {
	if SanitizeDegrees(to-from) <= 180 {
		return 1
	}
	return -1
}

type vec3 [3]float64

type mat3 [3][3]float64

func (m *mat3) multiply(row vec3) vec3 {
	return vec3{
		row[0]*m[0][0] + row[1]*m[0][1] + row[2]*m[0][2],
		row[0]*m[1][0] + row[1]*m[1][1] + row[2]*m[1][2],
		row[0]*m[2][0] + row[1]*m[2][1] + row[2]*m[2][2],
	}
}
