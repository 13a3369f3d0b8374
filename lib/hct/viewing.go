// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hct

import "math"

// viewingConditions holds the CAM16 parameters that depend only on the
// environment a color is viewed in.
type viewingConditions struct {
	n      float64
	aw     float64
	nbb    float64
	ncb    float64
	c      float64
	nc     float64
	rgbD   vec3
	fl     float64
	flRoot float64
	z      float64
}

// defaultViewing is sRGB viewed on a mid-gray (L* 50) background in an
// average surround, with the adapting luminance of a typical display.
var defaultViewing = newViewingConditions(
	whitePointD65,
	200/math.Pi*YFromLstar(50)/100,
	50,
	2,
	false,
)

func newViewingConditions(whitePoint vec3, adaptingLuminance, backgroundLstar, surround float64, discountingIlluminant bool) viewingConditions {
	backgroundLstar = math.Max(0.1, backgroundLstar)

	xyz := whitePoint
	rW := xyz[0]*0.401288 + xyz[1]*0.650173 + xyz[2]*-0.051461
	gW := xyz[0]*-0.250268 + xyz[1]*1.204414 + xyz[2]*0.045854
	bW := xyz[0]*-0.002079 + xyz[1]*0.048952 + xyz[2]*0.953127

	f := 0.8 + surround/10
	var c float64
	if f >= 0.9 {
		c = lerp(0.59, 0.69, (f-0.9)*10)
	} else {
		c = lerp(0.525, 0.59, (f-0.8)*10)
	}

	d := 1.0
	if !discountingIlluminant {
		d = f * (1 - (1/3.6)*math.Exp((-adaptingLuminance-42)/92))
	}
	d = math.Min(1, math.Max(0, d))

	rgbD := vec3{
		d*(100/rW) + 1 - d,
		d*(100/gW) + 1 - d,
		d*(100/bW) + 1 - d,
	}

	k := 1 / (5*adaptingLuminance + 1)
	k4 := k * k * k * k
	k4F := 1 - k4
	fl := k4*adaptingLuminance + 0.1*k4F*k4F*math.Cbrt(5*adaptingLuminance)

	n := YFromLstar(backgroundLstar) / whitePoint[1]
	z := 1.48 + math.Sqrt(n)
	nbb := 0.725 / math.Pow(n, 0.2)

	factors := vec3{
		math.Pow(fl*rgbD[0]*rW/100, 0.42),
		math.Pow(fl*rgbD[1]*gW/100, 0.42),
		math.Pow(fl*rgbD[2]*bW/100, 0.42),
	}
	var rgbA vec3
	for i, factor := range factors {
		rgbA[i] = 400 * factor / (factor + 27.13)
	}
	aw := (2*rgbA[0] + rgbA[1] + 0.05*rgbA[2]) * nbb

	return viewingConditions{
		n:      n,
		aw:     aw,
		nbb:    nbb,
		ncb:    nbb,
		c:      c,
		nc:     f,
		rgbD:   rgbD,
		fl:     fl,
		flRoot: math.Pow(fl, 0.25),
		z:      z,
	}
}
