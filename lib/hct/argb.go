// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hct

import "math"

var srgbToXYZ = mat3{
	{0.41233895, 0.35762064, 0.18051042},
	{0.2126, 0.7152, 0.0722},
	{0.01932141, 0.11916382, 0.95034478},
}

// whitePointD65 is the D65 standard illuminant in XYZ, Y normalized to 100.
var whitePointD65 = vec3{95.047, 100.0, 108.883}

// ARGBFromRGB packs opaque 8-bit channels into an ARGB integer.
func ARGBFromRGB(red, green, blue uint8) uint32 {
	return 0xFF<<24 | uint32(red)<<16 | uint32(green)<<8 | uint32(blue)
}

// Red, Green, Blue and Alpha unpack channels of an ARGB integer.
func Red(argb uint32) uint8   { return uint8(argb >> 16) }
func Green(argb uint32) uint8 { return uint8(argb >> 8) }
func Blue(argb uint32) uint8  { return uint8(argb) }
func Alpha(argb uint32) uint8 { return uint8(argb >> 24) }

// linearized converts an 8-bit sRGB channel into linear RGB on [0, 100].
func linearized(component uint8) float64 {
	normalized := float64(component) / 255
	if normalized <= 0.040449936 {
		return normalized / 12.92 * 100
	}
	return math.Pow((normalized+0.055)/1.055, 2.4) * 100
}

// linearizedFloat is linearized for fractional channel values; it places
// the sRGB quantization boundaries for the solver.
func linearizedFloat(component float64) float64 {
	normalized := component / 255
	if normalized <= 0.040449936 {
		return normalized / 12.92 * 100
	}
	return math.Pow((normalized+0.055)/1.055, 2.4) * 100
}

// delinearized converts linear RGB on [0, 100] to an 8-bit sRGB channel.
func delinearized(component float64) uint8 {
	normalized := component / 100
	var value float64
	if normalized <= 0.0031308 {
		value = normalized * 12.92
	} else {
		value = 1.055*math.Pow(normalized, 1/2.4) - 0.055
	}
	return uint8(clampInt(0, 255, int(math.Round(value*255))))
}

func argbFromLinRGB(linear vec3) uint32 {
	return ARGBFromRGB(delinearized(linear[0]), delinearized(linear[1]), delinearized(linear[2]))
}

func linRGBFromARGB(argb uint32) vec3 {
	return vec3{linearized(Red(argb)), linearized(Green(argb)), linearized(Blue(argb))}
}

func xyzFromARGB(argb uint32) vec3 {
	return srgbToXYZ.multiply(linRGBFromARGB(argb))
}

func labF(t float64) float64 {
	const epsilon = 216.0 / 24389.0
	const kappa = 24389.0 / 27.0
	if t > epsilon {
		return math.Pow(t, 1.0/3.0)
	}
	return (kappa*t + 16) / 116
}

func labInvF(ft float64) float64 {
	const epsilon = 216.0 / 24389.0
	const kappa = 24389.0 / 27.0
	ft3 := ft * ft * ft
	if ft3 > epsilon {
		return ft3
	}
	return (116*ft - 16) / kappa
}

// YFromLstar converts L* (tone) to relative luminance Y on [0, 100].
func YFromLstar(lstar float64) float64 {
	return 100 * labInvF((lstar+16)/116)
}

// LstarFromY converts relative luminance Y on [0, 100] to L*.
func LstarFromY(y float64) float64 {
	return labF(y/100)*116 - 16
}

// LstarFromARGB returns the L* (tone) of a packed color.
func LstarFromARGB(argb uint32) float64 {
	return LstarFromY(xyzFromARGB(argb)[1])
}

// ARGBFromLstar returns the gray with the given L*.
func ARGBFromLstar(lstar float64) uint32 {
	component := delinearized(YFromLstar(lstar))
	return ARGBFromRGB(component, component, component)
}
