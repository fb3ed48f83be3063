// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package grayskull

import "math"

// PerspectiveCorrect resamples the quadrilateral region q of src
// onto the whole of dst. For each destination pixel its (u, v)
// position is interpolated bilinearly between the four corners of q
// to find a source coordinate, which is clamped to the source bounds
// and sampled bilinearly. This is a direct quad interpolation, not a
// projective transform: exact for affine quads, an approximation
// otherwise.
func PerspectiveCorrect(dst, src Image, q Quad) {
	check(dst.Valid() && src.Valid(), "PerspectiveCorrect: invalid image")
	w, h := float64(dst.W)-1, float64(dst.H)-1
	for y := 0; y < dst.H; y++ {
		for x := 0; x < dst.W; x++ {
			u, v := float64(x)/w, float64(y)/h
			topX := float64(q[0].X)*(1-u) + float64(q[1].X)*u
			topY := float64(q[0].Y)*(1-u) + float64(q[1].Y)*u
			botX := float64(q[3].X)*(1-u) + float64(q[2].X)*u
			botY := float64(q[3].Y)*(1-u) + float64(q[2].Y)*u
			sx := topX*(1-v) + botX*v
			sy := topY*(1-v) + botY*v
			sx = clampf(sx, 0, float64(src.W)-1)
			sy = clampf(sy, 0, float64(src.H)-1)
			dst.Data[y*dst.W+x] = bilinear(src, sx, sy)
		}
	}
}

// RectToQuad returns the degenerate quad whose corners are the
// corner pixels of an axis aligned rectangle, for use as a
// rectification fallback when no better quad is known.
func RectToQuad(r Rect) Quad {
	return Quad{
		{r.X, r.Y},
		{r.X + r.W - 1, r.Y},
		{r.X + r.W - 1, r.Y + r.H - 1},
		{r.X, r.Y + r.H - 1},
	}
}

// BlobCorners estimates the four corners of a labelled blob as the
// member pixels with extreme x+y and x-y, a cheap stand in for a
// rotated bounding quad. labels must be the raster filled by Blobs
// for the same image. Pixels outside the blob's label are ignored;
// if the blob has no pixels all corners degenerate to the centroid.
func BlobCorners(img Image, labels []Label, b *Blob) Quad {
	check(img.Valid() && b != nil, "BlobCorners: invalid argument")
	check(len(labels) == img.W*img.H, "BlobCorners: labels must hold one entry per pixel")
	tl, tr, br, bl := b.Centroid, b.Centroid, b.Centroid, b.Centroid
	minSum, maxSum := math.MaxInt, math.MinInt
	minDiff, maxDiff := math.MaxInt, math.MinInt
	for y := b.Box.Y; y < b.Box.Y+b.Box.H; y++ {
		for x := b.Box.X; x < b.Box.X+b.Box.W; x++ {
			if img.Data[y*img.W+x] < 128 || labels[y*img.W+x] != b.Label {
				continue
			}
			sum, diff := x+y, x-y
			if sum < minSum {
				minSum = sum
				tl = Point{x, y}
			}
			if sum > maxSum {
				maxSum = sum
				br = Point{x, y}
			}
			if diff < minDiff {
				minDiff = diff
				bl = Point{x, y}
			}
			if diff > maxDiff {
				maxDiff = diff
				tr = Point{x, y}
			}
		}
	}
	return Quad{tl, tr, br, bl}
}
