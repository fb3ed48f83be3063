// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package grayskull

import "rescribe.xyz/grayskull/integralimg"

// Histogram returns the 256 bin intensity histogram of the image.
func Histogram(img Image) [256]int {
	check(img.Valid(), "Histogram: invalid image")
	var hist [256]int
	for _, p := range img.Data {
		hist[p]++
	}
	return hist
}

// Threshold binarizes the image in place: pixels strictly greater
// than t become 255, all others 0.
func Threshold(img Image, t uint8) {
	check(img.Valid(), "Threshold: invalid image")
	for i, p := range img.Data {
		if p > t {
			img.Data[i] = 255
		} else {
			img.Data[i] = 0
		}
	}
}

// OtsuThreshold returns the global threshold maximizing the between
// class variance of the image histogram. Ties keep the lowest
// threshold found, and a uniform image yields 0.
func OtsuThreshold(img Image) uint8 {
	check(img.Valid(), "OtsuThreshold: invalid image")
	hist := Histogram(img)
	total := img.W * img.H
	var sum float64
	for i, n := range hist {
		sum += float64(i) * float64(n)
	}
	var sumB float64
	wb, threshold := 0, 0
	varMax := -1.0
	for t := 0; t < 256; t++ {
		wb += hist[t]
		if wb == 0 {
			continue
		}
		wf := total - wb
		if wf == 0 {
			break
		}
		sumB += float64(t) * float64(hist[t])
		mB := sumB / float64(wb)
		mF := (sum - sumB) / float64(wf)
		varBetween := float64(wb) * float64(wf) * (mB - mF) * (mB - mF)
		if varBetween > varMax {
			varMax = varBetween
			threshold = t
		}
	}
	return uint8(threshold)
}

// AdaptiveThreshold binarizes src into dst against the local mean of
// a (2*radius+1) square window around each pixel, less the constant
// c. Windows are clipped at the image border, so border pixels are
// averaged over fewer samples; the mean uses integer truncation. A
// pixel strictly greater than its local threshold becomes 255.
func AdaptiveThreshold(dst, src Image, radius, c int) {
	check(dst.Valid() && src.Valid(), "AdaptiveThreshold: invalid image")
	check(dst.W == src.W && dst.H == src.H, "AdaptiveThreshold: size mismatch")
	check(radius >= 1, "AdaptiveThreshold: radius must be >= 1")
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			sum, count := 0, 0
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					sy, sx := y+dy, x+dx
					if sy >= 0 && sy < src.H && sx >= 0 && sx < src.W {
						sum += int(src.Data[sy*src.W+sx])
						count++
					}
				}
			}
			t := sum/count - c
			if int(src.Data[y*src.W+x]) > t {
				dst.Data[y*dst.W+x] = 255
			} else {
				dst.Data[y*dst.W+x] = 0
			}
		}
	}
}

// IntegralAdaptiveThreshold is AdaptiveThreshold computed via an
// integral image, which is much faster for large radii. buf is
// caller supplied scratch of at least src.W*src.H entries. The
// output is identical to AdaptiveThreshold, as clipped border
// windows are summed exactly.
func IntegralAdaptiveThreshold(dst, src Image, radius, c int, buf []uint64) {
	check(dst.Valid() && src.Valid(), "IntegralAdaptiveThreshold: invalid image")
	check(dst.W == src.W && dst.H == src.H, "IntegralAdaptiveThreshold: size mismatch")
	check(radius >= 1, "IntegralAdaptiveThreshold: radius must be >= 1")
	ii := integralimg.New(buf, src.Data, src.W, src.H)
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			x0, y0 := max(x-radius, 0), max(y-radius, 0)
			x1, y1 := min(x+radius, src.W-1), min(y+radius, src.H-1)
			sum := ii.Rect(x0, y0, x1, y1)
			count := uint64((x1 - x0 + 1) * (y1 - y0 + 1))
			t := int(sum/count) - c
			if int(src.Data[y*src.W+x]) > t {
				dst.Data[y*dst.W+x] = 255
			} else {
				dst.Data[y*dst.W+x] = 0
			}
		}
	}
}
