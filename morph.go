// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package grayskull

const (
	opErode = iota
	opDilate
)

// morph applies a 3x3 min or max filter. Neighbours outside the
// image are absent from the window, not treated as zero.
func morph(dst, src Image, op int) {
	check(dst.Valid() && src.Valid(), "morph: invalid image")
	check(dst.W == src.W && dst.H == src.H, "morph: size mismatch")
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			val := uint8(0)
			if op == opErode {
				val = 255
			}
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					sy, sx := y+dy, x+dx
					if sy < 0 || sy >= src.H || sx < 0 || sx >= src.W {
						continue
					}
					p := src.Data[sy*src.W+sx]
					if op == opDilate && p > val {
						val = p
					}
					if op == opErode && p < val {
						val = p
					}
				}
			}
			dst.Data[y*dst.W+x] = val
		}
	}
}

// Erode replaces each pixel of src with the minimum over its 3x3
// neighbourhood, writing to dst.
func Erode(dst, src Image) { morph(dst, src, opErode) }

// Dilate replaces each pixel of src with the maximum over its 3x3
// neighbourhood, writing to dst.
func Dilate(dst, src Image) { morph(dst, src, opDilate) }

// morphIter applies n passes of a morphological operation,
// ping-ponging between dst and tmp so that the final result always
// lands in dst whatever the parity of n. With n == 0 src is simply
// copied to dst.
func morphIter(dst, src, tmp Image, n, op int) {
	check(dst.Valid() && src.Valid() && tmp.Valid(), "morphIter: invalid image")
	check(dst.W == src.W && dst.H == src.H && tmp.W == src.W && tmp.H == src.H,
		"morphIter: size mismatch")
	if n == 0 {
		Copy(dst, src)
		return
	}
	a, b := dst, tmp
	if n%2 == 0 {
		a, b = tmp, dst
	}
	morph(a, src, op)
	for i := 1; i < n; i++ {
		morph(b, a, op)
		a, b = b, a
	}
}

// ErodeIter erodes src n times into dst, using tmp as scratch.
func ErodeIter(dst, src, tmp Image, n int) { morphIter(dst, src, tmp, n, opErode) }

// DilateIter dilates src n times into dst, using tmp as scratch.
func DilateIter(dst, src, tmp Image, n int) { morphIter(dst, src, tmp, n, opDilate) }
