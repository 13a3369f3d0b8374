// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hct

import "math"

// The solver inverts CAM16 under the default viewing conditions. The
// matrices fold the viewing conditions' chromatic adaptation into the
// linear-RGB transform so hue can be evaluated directly from linear RGB.

var scaledDiscountFromLinRGB = mat3{
	{0.001200833568784504, 0.002389694492170889, 0.0002795742885861124},
	{0.0005891086651375999, 0.0029785502573438758, 0.0003270666104008398},
	{0.00010146692491640572, 0.0005364214359186694, 0.0032979401770712076},
}

var linRGBFromScaledDiscount = mat3{
	{1373.2198709594231, -1100.4251190754821, -7.278681089101213},
	{-271.815969077903, 559.6580465940733, -32.46047482791194},
	{1.9622899599665666, -57.173814538844006, 308.7233197812385},
}

var yFromLinRGB = vec3{0.2126, 0.7152, 0.0722}

// criticalPlanes[i] is the linear value at which an 8-bit sRGB channel
// rounds from i to i+1.
var criticalPlanes = func() [255]float64 {
	var planes [255]float64
	for i := range planes {
		planes[i] = linearizedFloat(float64(i) + 0.5)
	}
	return planes
}()

// Solve returns the packed sRGB color closest to the requested HCT
// coordinates. When the requested chroma is outside the sRGB gamut at
// that hue and tone, the result keeps hue and tone and takes the most
// chromatic color available.
func Solve(hue, chroma, tone float64) uint32 {
	if chroma < 0.0001 || tone < 0.0001 || tone > 99.9999 {
		return ARGBFromLstar(tone)
	}
	hue = SanitizeDegrees(hue)
	hueRadians := hue / 180 * math.Pi
	y := YFromLstar(tone)
	if exact, ok := findResultByJ(hueRadians, chroma, y); ok {
		return exact
	}
	return argbFromLinRGB(bisectToLimit(y, hueRadians))
}

func sanitizeRadians(angle float64) float64 {
	return math.Mod(angle+math.Pi*8, math.Pi*2)
}

// trueDelinearized is delinearized without rounding or clamping, on
// [0, 255].
func trueDelinearized(component float64) float64 {
	normalized := component / 100
	var value float64
	if normalized <= 0.0031308 {
		value = normalized * 12.92
	} else {
		value = 1.055*math.Pow(normalized, 1/2.4) - 0.055
	}
	return value * 255
}

func chromaticAdaptation(component float64) float64 {
	af := math.Pow(math.Abs(component), 0.42)
	return signum(component) * 400 * af / (af + 27.13)
}

func inverseChromaticAdaptation(adapted float64) float64 {
	adaptedAbs := math.Abs(adapted)
	base := math.Max(0, 27.13*adaptedAbs/(400-adaptedAbs))
	return signum(adapted) * math.Pow(base, 1/0.42)
}

// hueOf returns the CAM16 hue, in radians, of a linear RGB color.
func hueOf(linear vec3) float64 {
	scaled := scaledDiscountFromLinRGB.multiply(linear)
	rA := chromaticAdaptation(scaled[0])
	gA := chromaticAdaptation(scaled[1])
	bA := chromaticAdaptation(scaled[2])
	a := (11*rA + -12*gA + bA) / 11
	b := (rA + gA - 2*bA) / 9
	return math.Atan2(b, a)
}

func areInCyclicOrder(a, b, c float64) bool {
	return sanitizeRadians(b-a) < sanitizeRadians(c-a)
}

// setCoordinate returns the point on segment source-target whose axis
// coordinate equals coordinate.
func setCoordinate(source vec3, coordinate float64, target vec3, axis int) vec3 {
	t := (coordinate - source[axis]) / (target[axis] - source[axis])
	return vec3{
		source[0] + (target[0]-source[0])*t,
		source[1] + (target[1]-source[1])*t,
		source[2] + (target[2]-source[2])*t,
	}
}

func isBounded(x float64) bool {
	return 0 <= x && x <= 100
}

// nthVertex returns the nth of the 12 edge intersections of the RGB cube
// with the plane of constant luminance y, or false when that edge does
// not cross the plane.
func nthVertex(y float64, n int) (vec3, bool) {
	kR, kG, kB := yFromLinRGB[0], yFromLinRGB[1], yFromLinRGB[2]
	coordA := 100.0
	if n%4 <= 1 {
		coordA = 0
	}
	coordB := 100.0
	if n%2 == 0 {
		coordB = 0
	}
	switch {
	case n < 4:
		g, b := coordA, coordB
		r := (y - g*kG - b*kB) / kR
		return vec3{r, g, b}, isBounded(r)
	case n < 8:
		b, r := coordA, coordB
		g := (y - r*kR - b*kB) / kG
		return vec3{r, g, b}, isBounded(g)
	default:
		r, g := coordA, coordB
		b := (y - r*kR - g*kG) / kB
		return vec3{r, g, b}, isBounded(b)
	}
}

// bisectToSegment finds the two vertices of the constant-luminance
// polygon whose hues bracket targetHue.
func bisectToSegment(y, targetHue float64) (vec3, vec3) {
	left := vec3{-1, -1, -1}
	right := left
	var leftHue, rightHue float64
	initialized := false
	uncut := true
	for n := 0; n < 12; n++ {
		mid, ok := nthVertex(y, n)
		if !ok {
			continue
		}
		midHue := hueOf(mid)
		if !initialized {
			left, right = mid, mid
			leftHue, rightHue = midHue, midHue
			initialized = true
			continue
		}
		if uncut || areInCyclicOrder(leftHue, midHue, rightHue) {
			uncut = false
			if areInCyclicOrder(leftHue, targetHue, midHue) {
				right = mid
				rightHue = midHue
			} else {
				left = mid
				leftHue = midHue
			}
		}
	}
	return left, right
}

func criticalPlaneBelow(x float64) int {
	return int(math.Floor(x - 0.5))
}

func criticalPlaneAbove(x float64) int {
	return int(math.Ceil(x - 0.5))
}

// bisectToLimit narrows the bracketing segment along each axis, stepping
// between sRGB quantization planes, to the gamut-boundary color with
// the target hue.
func bisectToLimit(y, targetHue float64) vec3 {
	left, right := bisectToSegment(y, targetHue)
	leftHue := hueOf(left)
	for axis := 0; axis < 3; axis++ {
		if left[axis] == right[axis] {
			continue
		}
		var lPlane, rPlane int
		if left[axis] < right[axis] {
			lPlane = criticalPlaneBelow(trueDelinearized(left[axis]))
			rPlane = criticalPlaneAbove(trueDelinearized(right[axis]))
		} else {
			lPlane = criticalPlaneAbove(trueDelinearized(left[axis]))
			rPlane = criticalPlaneBelow(trueDelinearized(right[axis]))
		}
		for i := 0; i < 8; i++ {
			if abs(rPlane-lPlane) <= 1 {
				break
			}
			mPlane := int(math.Floor(float64(lPlane+rPlane) / 2))
			mid := setCoordinate(left, criticalPlanes[mPlane], right, axis)
			midHue := hueOf(mid)
			if areInCyclicOrder(leftHue, targetHue, midHue) {
				right = mid
				rPlane = mPlane
			} else {
				left = mid
				leftHue = midHue
				lPlane = mPlane
			}
		}
	}
	return vec3{
		(left[0] + right[0]) / 2,
		(left[1] + right[1]) / 2,
		(left[2] + right[2]) / 2,
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// findResultByJ solves for the color directly with Newton iteration on
// CAM16 lightness J. It fails (returns false) when the requested chroma
// is out of gamut.
func findResultByJ(hueRadians, chroma, y float64) (uint32, bool) {
	viewing := &defaultViewing
	j := math.Sqrt(y) * 11

	tInnerCoeff := 1 / math.Pow(1.64-math.Pow(0.29, viewing.n), 0.73)
	eHue := 0.25 * (math.Cos(hueRadians+2) + 3.8)
	p1 := eHue * (50000.0 / 13.0) * viewing.nc * viewing.ncb
	hSin := math.Sin(hueRadians)
	hCos := math.Cos(hueRadians)

	for round := 0; round < 5; round++ {
		jNormalized := j / 100
		alpha := 0.0
		if chroma != 0 && j != 0 {
			alpha = chroma / math.Sqrt(jNormalized)
		}
		t := math.Pow(alpha*tInnerCoeff, 1/0.9)
		ac := viewing.aw * math.Pow(jNormalized, 1/viewing.c/viewing.z)
		p2 := ac / viewing.nbb
		gamma := 23 * (p2 + 0.305) * t / (23*p1 + 11*t*hCos + 108*t*hSin)
		a := gamma * hCos
		b := gamma * hSin
		rA := (460*p2 + 451*a + 288*b) / 1403
		gA := (460*p2 - 891*a - 261*b) / 1403
		bA := (460*p2 - 220*a - 6300*b) / 1403

		linear := linRGBFromScaledDiscount.multiply(vec3{
			inverseChromaticAdaptation(rA),
			inverseChromaticAdaptation(gA),
			inverseChromaticAdaptation(bA),
		})
		if linear[0] < 0 || linear[1] < 0 || linear[2] < 0 {
			return 0, false
		}
		fnj := yFromLinRGB[0]*linear[0] + yFromLinRGB[1]*linear[1] + yFromLinRGB[2]*linear[2]
		if fnj <= 0 {
			return 0, false
		}
		if round == 4 || math.Abs(fnj-y) < 0.002 {
			if linear[0] > 100.01 || linear[1] > 100.01 || linear[2] > 100.01 {
				return 0, false
			}
			return argbFromLinRGB(linear), true
		}
		// Newton step, approximating fn'(j) by 2*fn(j)/j.
		j = j - (fnj-y)*j/(2*fnj)
	}
	return 0, false
}
