// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package grayskull

// Blur applies a box filter of the given radius to src, writing the
// result to dst. The averaging window shrinks at the image border
// rather than reflecting or extending the image, and the mean uses
// integer truncation; downstream stages depend on this exact border
// policy.
func Blur(dst, src Image, radius int) {
	check(dst.Valid() && src.Valid(), "Blur: invalid image")
	check(dst.W == src.W && dst.H == src.H, "Blur: size mismatch")
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
			dst.Data[y*dst.W+x] = uint8(sum / count)
		}
	}
}

// Sobel writes the gradient magnitude of src to dst, computed with
// the standard 3x3 kernels as (|Gx|+|Gy|)/2 clamped to [0,255]. Only
// interior pixels are defined; the one pixel border of dst is left
// untouched.
func Sobel(dst, src Image) {
	check(dst.Valid() && src.Valid(), "Sobel: invalid image")
	check(dst.W == src.W && dst.H == src.H, "Sobel: size mismatch")
	w := src.W
	for y := 1; y < src.H-1; y++ {
		for x := 1; x < w-1; x++ {
			gx := -int(src.Data[(y-1)*w+(x-1)]) + int(src.Data[(y-1)*w+(x+1)]) -
				2*int(src.Data[y*w+(x-1)]) + 2*int(src.Data[y*w+(x+1)]) -
				int(src.Data[(y+1)*w+(x-1)]) + int(src.Data[(y+1)*w+(x+1)])
			gy := -int(src.Data[(y-1)*w+(x-1)]) - 2*int(src.Data[(y-1)*w+x]) -
				int(src.Data[(y-1)*w+(x+1)]) + int(src.Data[(y+1)*w+(x-1)]) +
				2*int(src.Data[(y+1)*w+x]) + int(src.Data[(y+1)*w+(x+1)])
			if gx < 0 {
				gx = -gx
			}
			if gy < 0 {
				gy = -gy
			}
			m := (gx + gy) / 2
			if m > 255 {
				m = 255
			}
			dst.Data[y*w+x] = uint8(m)
		}
	}
}
