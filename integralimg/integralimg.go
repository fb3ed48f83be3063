package integralimg

// I is an Integral Image: a running two dimensional sum of pixel
// values, stored flat in row major order, so that the sum over any
// rectangle can be read in four lookups. The row and column of
// zeros above and left of the image are implicit, not stored.
type I struct {
	W, H int
	Sums []uint64
}

// New builds an integral image of the w*h pixel buffer pix into the
// caller supplied buf, which must hold at least w*h entries.
func New(buf []uint64, pix []uint8, w, h int) I {
	if len(pix) < w*h || len(buf) < w*h {
		panic("integralimg: buffer too small")
	}
	for y := 0; y < h; y++ {
		var rowsum uint64
		for x := 0; x < w; x++ {
			rowsum += uint64(pix[y*w+x])
			if y > 0 {
				buf[y*w+x] = buf[(y-1)*w+x] + rowsum
			} else {
				buf[y*w+x] = rowsum
			}
		}
	}
	return I{w, h, buf[:w*h]}
}

// Rect returns the sum of the pixels in the rectangle with inclusive
// corners (x0, y0) and (x1, y1).
func (i I) Rect(x0, y0, x1, y1 int) uint64 {
	s := i.Sums[y1*i.W+x1]
	if x0 > 0 {
		s -= i.Sums[y1*i.W+x0-1]
	}
	if y0 > 0 {
		s -= i.Sums[(y0-1)*i.W+x1]
	}
	if x0 > 0 && y0 > 0 {
		s += i.Sums[(y0-1)*i.W+x0-1]
	}
	return s
}

// Window returns the sum and pixel count of the square window of the
// given size centred on (x, y), clipped to the image bounds.
func (i I) Window(x, y, size int) (sum uint64, count int) {
	step := size / 2
	x0, y0 := x-step, y-step
	x1, y1 := x+step, y+step
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > i.W-1 {
		x1 = i.W - 1
	}
	if y1 > i.H-1 {
		y1 = i.H - 1
	}
	return i.Rect(x0, y0, x1, y1), (x1 - x0 + 1) * (y1 - y0 + 1)
}

// MeanWindow calculates the mean value of a section of an Integral
// Image
func (i I) MeanWindow(x, y, size int) float64 {
	sum, count := i.Window(x, y, size)
	return float64(sum) / float64(count)
}
