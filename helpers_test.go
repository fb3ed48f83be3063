package grayskull

import "testing"

// mk builds an image over the given pixels, failing the test when
// the buffer does not match the dimensions rather than panicking
// somewhere less obvious later.
func mk(t *testing.T, w, h int, pix []uint8) Image {
	t.Helper()
	if len(pix) != w*h {
		t.Fatalf("bad test image: %dx%d with %d pixels", w, h, len(pix))
	}
	return Image{W: w, H: h, Data: pix}
}

// blank returns a zeroed image of the given size.
func blank(w, h int) Image {
	return Image{W: w, H: h, Data: make([]uint8, w*h)}
}

func pixelsEqual(t *testing.T, got, want Image) {
	t.Helper()
	if got.W != want.W || got.H != want.H {
		t.Fatalf("size mismatch: got %dx%d, want %dx%d", got.W, got.H, want.W, want.H)
	}
	for y := 0; y < got.H; y++ {
		for x := 0; x < got.W; x++ {
			if got.Data[y*got.W+x] != want.Data[y*want.W+x] {
				t.Fatalf("pixel (%d,%d): got %d, want %d", x, y, got.Data[y*got.W+x], want.Data[y*want.W+x])
			}
		}
	}
}

// area counts foreground pixels, ie those of at least half
// intensity.
func area(img Image) int {
	n := 0
	for _, p := range img.Data {
		if p >= 128 {
			n++
		}
	}
	return n
}

// noise fills an image with a fixed pseudo random pattern so tests
// are reproducible without golden files.
func noise(w, h int, seed uint32) Image {
	img := blank(w, h)
	s := seed
	for i := range img.Data {
		s = s*1664525 + 1013904223
		img.Data[i] = uint8(s >> 24)
	}
	return img
}
