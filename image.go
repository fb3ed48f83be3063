// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package grayskull

import "image"

// Image is a non owning view over a rectangular grid of 8 bit
// grayscale pixels, stored row major with no padding between rows.
// The pixel buffer belongs to the caller; Data must hold exactly W*H
// samples whenever the image is passed to any operation.
type Image struct {
	W, H int
	Data []uint8
}

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Rect is an axis aligned rectangle in image coordinates.
type Rect struct {
	X, Y, W, H int
}

// Quad is four corners ordered top-left, top-right, bottom-right,
// bottom-left. Unlike Rect it need not be axis aligned; it is the
// source region for PerspectiveCorrect.
type Quad [4]Point

// Valid reports whether the image has positive dimensions and a
// pixel buffer of matching size.
func (img Image) Valid() bool {
	return img.W > 0 && img.H > 0 && len(img.Data) == img.W*img.H
}

// check panics for precondition violations. These are programming
// errors, not runtime conditions, so no error value is returned:
// the contract is that an operation never silently produces wrong
// output.
func check(cond bool, msg string) {
	if !cond {
		panic("grayskull: " + msg)
	}
}

// Get returns the pixel at (x, y), or 0 if the coordinate lies
// outside the image.
func (img Image) Get(x, y int) uint8 {
	if x < 0 || y < 0 || x >= img.W || y >= img.H {
		return 0
	}
	return img.Data[y*img.W+x]
}

// Set sets the pixel at (x, y), doing nothing if the coordinate lies
// outside the image.
func (img Image) Set(x, y int, v uint8) {
	if x < 0 || y < 0 || x >= img.W || y >= img.H {
		return
	}
	img.Data[y*img.W+x] = v
}

// Crop copies the region of interest roi from src into dst, whose
// dimensions must equal those of roi.
func Crop(dst, src Image, roi Rect) {
	check(dst.Valid() && src.Valid(), "Crop: invalid image")
	check(roi.X+roi.W <= src.W && roi.Y+roi.H <= src.H, "Crop: roi outside source")
	check(dst.W == roi.W && dst.H == roi.H, "Crop: dst size does not match roi")
	for y := 0; y < roi.H; y++ {
		for x := 0; x < roi.W; x++ {
			dst.Data[y*dst.W+x] = src.Data[(roi.Y+y)*src.W+(roi.X+x)]
		}
	}
}

// Copy copies src into dst, which must have the same dimensions.
func Copy(dst, src Image) {
	Crop(dst, src, Rect{0, 0, src.W, src.H})
}

// FromGray wraps or copies a stdlib grayscale image into an Image.
// When the stride equals the width the pixel buffer is shared, not
// copied.
func FromGray(g *image.Gray) Image {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	if g.Stride == w && b.Min.X == 0 && b.Min.Y == 0 {
		return Image{w, h, g.Pix[:w*h]}
	}
	img := Image{w, h, make([]uint8, w*h)}
	for y := 0; y < h; y++ {
		row := g.PixOffset(b.Min.X, b.Min.Y+y)
		copy(img.Data[y*w:(y+1)*w], g.Pix[row:row+w])
	}
	return img
}

// Gray wraps the image as a stdlib *image.Gray sharing the same
// pixel buffer.
func (img Image) Gray() *image.Gray {
	return &image.Gray{Pix: img.Data, Stride: img.W, Rect: image.Rect(0, 0, img.W, img.H)}
}
