// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hct

import "math"

// cam16 holds the CAM16 appearance correlates HCT needs.
type cam16 struct {
	hue    float64
	chroma float64
	j      float64
}

// cam16FromARGB measures a packed color under the default viewing
// conditions.
func cam16FromARGB(argb uint32) cam16 {
	viewing := &defaultViewing
	xyz := xyzFromARGB(argb)
	x, y, z := xyz[0], xyz[1], xyz[2]

	rC := 0.401288*x + 0.650173*y - 0.051461*z
	gC := -0.250268*x + 1.204414*y + 0.045854*z
	bC := -0.002079*x + 0.048952*y + 0.953127*z

	rD := viewing.rgbD[0] * rC
	gD := viewing.rgbD[1] * gC
	bD := viewing.rgbD[2] * bC

	rAF := math.Pow(viewing.fl*math.Abs(rD)/100, 0.42)
	gAF := math.Pow(viewing.fl*math.Abs(gD)/100, 0.42)
	bAF := math.Pow(viewing.fl*math.Abs(bD)/100, 0.42)
	rA := signum(rD) * 400 * rAF / (rAF + 27.13)
	gA := signum(gD) * 400 * gAF / (gAF + 27.13)
	bA := signum(bD) * 400 * bAF / (bAF + 27.13)

	// Opponent dimensions: redness-greenness and yellowness-blueness.
	a := (11*rA + -12*gA + bA) / 11
	b := (rA + gA - 2*bA) / 9
	u := (20*rA + 20*gA + 21*bA) / 20
	p2 := (40*rA + 20*gA + bA) / 20

	hue := math.Atan2(b, a) * 180 / math.Pi
	if hue < 0 {
		hue += 360
	} else if hue >= 360 {
		hue -= 360
	}

	ac := p2 * viewing.nbb
	j := 100 * math.Pow(ac/viewing.aw, viewing.c*viewing.z)

	huePrime := hue
	if hue < 20.14 {
		huePrime = hue + 360
	}
	eHue := 0.25 * (math.Cos(huePrime*math.Pi/180+2) + 3.8)
	p1 := 50000.0 / 13.0 * eHue * viewing.nc * viewing.ncb
	t := p1 * math.Sqrt(a*a+b*b) / (u + 0.305)
	alpha := math.Pow(t, 0.9) * math.Pow(1.64-math.Pow(0.29, viewing.n), 0.73)
	chroma := alpha * math.Sqrt(j/100)

	return cam16{hue: hue, chroma: chroma, j: j}
}
