// Package uihelpers holds the pure geometry helpers behind the viewer:
// chart sizing rules and the data↔pixel projections used by the
// tap-to-read chart overlay. Kept UI-free so they stay testable.
package uihelpers

import "math"

// ComputeChartDimensions applies the width/height clamp rules used for the
// rendered chart image. Input: desired raw width (e.g. ~95% of the window).
// Returns clamped width & height with a ~3:1 aspect ratio.
func ComputeChartDimensions(rawW int) (int, int) {
	w := rawW
	if w < 800 {
		w = 800
	}
	h := int(float32(w) * 0.33)
	if h < 280 {
		h = 280
	}
	if h > 520 {
		h = 520
	}
	return w, h
}

// ContainRect computes the rectangle an imgW×imgH image occupies inside a
// viewW×viewH area under contain-fit scaling, plus the scale factor.
func ContainRect(imgW, imgH, viewW, viewH float32) (x, y, w, h, scale float32) {
	if imgW <= 0 || imgH <= 0 || viewW <= 0 || viewH <= 0 {
		return 0, 0, viewW, viewH, 1
	}
	sx := viewW / imgW
	sy := viewH / imgH
	scale = sx
	if sy < sx {
		scale = sy
	}
	w = imgW * scale
	h = imgH * scale
	x = (viewW - w) / 2
	y = (viewH - h) / 2
	return x, y, w, h, scale
}

// DataToPixel linearly maps v from [dMin,dMax] to [pxLo,pxHi]. The pixel
// interval may be inverted (pxLo > pxHi) for the Y axis, where data-up maps
// to screen-up.
func DataToPixel(v, dMin, dMax, pxLo, pxHi float64) float64 {
	if dMax <= dMin {
		return pxLo
	}
	t := (v - dMin) / (dMax - dMin)
	return pxLo + t*(pxHi-pxLo)
}

// PixelToData is the inverse of DataToPixel.
func PixelToData(px, pxLo, pxHi, dMin, dMax float64) float64 {
	if pxHi == pxLo {
		return dMin
	}
	t := (px - pxLo) / (pxHi - pxLo)
	return dMin + t*(dMax-dMin)
}

// NearestIndex returns the index of the sample closest to x, or -1 for an
// empty slice. Ties resolve to the earlier sample.
func NearestIndex(xs []float64, x float64) int {
	if len(xs) == 0 {
		return -1
	}
	best := 0
	bestD := math.Abs(x - xs[0])
	for i := 1; i < len(xs); i++ {
		if d := math.Abs(x - xs[i]); d < bestD {
			bestD = d
			best = i
		}
	}
	return best
}
