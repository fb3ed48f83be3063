// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package grayskull

// Resize scales src into dst using bilinear interpolation. Sample
// positions are pixel centered, so resizing to the same dimensions
// reproduces the source exactly.
func Resize(dst, src Image) {
	check(dst.Valid() && src.Valid(), "Resize: invalid image")
	for y := 0; y < dst.H; y++ {
		for x := 0; x < dst.W; x++ {
			sx := (float64(x)+0.5)*float64(src.W)/float64(dst.W) - 0.5
			sy := (float64(y)+0.5)*float64(src.H)/float64(dst.H) - 0.5
			sx = clampf(sx, 0, float64(src.W)-1)
			sy = clampf(sy, 0, float64(src.H)-1)
			dst.Data[y*dst.W+x] = bilinear(src, sx, sy)
		}
	}
}

// ResizeNearest scales src into dst using nearest neighbour
// sampling.
func ResizeNearest(dst, src Image) {
	check(dst.Valid() && src.Valid(), "ResizeNearest: invalid image")
	for y := 0; y < dst.H; y++ {
		sy := y * src.H / dst.H
		for x := 0; x < dst.W; x++ {
			sx := x * src.W / dst.W
			dst.Data[y*dst.W+x] = src.Data[sy*src.W+sx]
		}
	}
}

// Downsample halves src into dst by averaging each 2x2 block. dst
// must be exactly half the size of src in each dimension, rounded
// down.
func Downsample(dst, src Image) {
	check(dst.Valid() && src.Valid(), "Downsample: invalid image")
	check(dst.W == src.W/2 && dst.H == src.H/2, "Downsample: dst must be half of src")
	for y := 0; y < dst.H; y++ {
		for x := 0; x < dst.W; x++ {
			sx, sy := x*2, y*2
			sum := int(src.Get(sx, sy)) + int(src.Get(sx+1, sy)) +
				int(src.Get(sx, sy+1)) + int(src.Get(sx+1, sy+1))
			dst.Data[y*dst.W+x] = uint8(sum / 4)
		}
	}
}

// bilinear samples src at a fractional coordinate which must already
// be clamped to the image bounds. The interpolated value is
// truncated, not rounded.
func bilinear(src Image, sx, sy float64) uint8 {
	xi, yi := int(sx), int(sy)
	x1, y1 := min(xi+1, src.W-1), min(yi+1, src.H-1)
	dx, dy := sx-float64(xi), sy-float64(yi)
	c00 := float64(src.Data[yi*src.W+xi])
	c01 := float64(src.Data[yi*src.W+x1])
	c10 := float64(src.Data[y1*src.W+xi])
	c11 := float64(src.Data[y1*src.W+x1])
	return uint8(c00*(1-dx)*(1-dy) + c01*dx*(1-dy) + c10*(1-dx)*dy + c11*dx*dy)
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
