// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package grayskull

import "testing"

func TestHistogram(t *testing.T) {
	img := mk(t, 3, 3, []uint8{
		0, 50, 100,
		50, 100, 150,
		100, 150, 200,
	})
	hist := Histogram(img)
	want := map[int]int{0: 1, 50: 2, 100: 3, 150: 2, 200: 1}
	total := 0
	for i, n := range hist {
		total += n
		if w, ok := want[i]; ok {
			if n != w {
				t.Errorf("hist[%d]: got %d, want %d", i, n, w)
			}
		} else if n != 0 {
			t.Errorf("hist[%d]: got %d, want 0", i, n)
		}
	}
	if total != 9 {
		t.Errorf("histogram total: got %d, want 9", total)
	}
}

func TestThreshold(t *testing.T) {
	img := mk(t, 2, 2, []uint8{50, 150, 75, 200})
	Threshold(img, 100)
	pixelsEqual(t, img, mk(t, 2, 2, []uint8{0, 255, 0, 255}))

	// a pixel equal to the threshold is background
	img2 := mk(t, 2, 1, []uint8{100, 101})
	Threshold(img2, 100)
	pixelsEqual(t, img2, mk(t, 2, 1, []uint8{0, 255}))
}

func TestOtsuThreshold(t *testing.T) {
	cases := []struct {
		name   string
		w, h   int
		pix    []uint8
		want   uint8
	}{
		{
			name: "bimodal",
			w:    3, h: 3,
			pix: []uint8{
				40, 50, 60,
				45, 55, 50,
				190, 200, 210,
			},
			want: 60,
		},
		{
			name: "spread",
			w:    2, h: 2,
			pix:  []uint8{0, 85, 170, 255},
			want: 85,
		},
		{
			name: "uniform",
			w:    2, h: 2,
			pix:  []uint8{128, 128, 128, 128},
			want: 0,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := OtsuThreshold(mk(t, c.w, c.h, c.pix))
			if got != c.want {
				t.Errorf("got %d, want %d", got, c.want)
			}
		})
	}
}

var adaptiveSrc = []uint8{
	50, 50, 200, 50, 50,
	50, 50, 200, 50, 50,
	50, 50, 200, 50, 50,
	200, 200, 100, 200, 200,
	200, 200, 100, 200, 200,
}

func TestAdaptiveThreshold(t *testing.T) {
	src := mk(t, 5, 5, adaptiveSrc)
	dst := blank(5, 5)

	AdaptiveThreshold(dst, src, 1, 0)
	pixelsEqual(t, dst, mk(t, 5, 5, []uint8{
		0, 0, 255, 0, 0,
		0, 0, 255, 0, 0,
		0, 0, 255, 0, 0,
		255, 255, 0, 255, 255,
		0, 255, 0, 255, 0,
	}))

	AdaptiveThreshold(dst, src, 1, 5)
	pixelsEqual(t, dst, mk(t, 5, 5, []uint8{
		255, 0, 255, 0, 255,
		255, 0, 255, 0, 255,
		0, 0, 255, 0, 0,
		255, 255, 0, 255, 255,
		255, 255, 0, 255, 255,
	}))
}

func TestIntegralAdaptiveThreshold(t *testing.T) {
	src := mk(t, 5, 5, adaptiveSrc)
	dst := blank(5, 5)
	buf := make([]uint64, 5*5)

	IntegralAdaptiveThreshold(dst, src, 1, 0, buf)
	pixelsEqual(t, dst, mk(t, 5, 5, []uint8{
		0, 0, 255, 0, 0,
		0, 0, 255, 0, 0,
		0, 0, 255, 0, 0,
		255, 255, 0, 255, 255,
		0, 255, 0, 255, 0,
	}))
}

// The integral image variant must agree with the direct one
// everywhere, including the clipped windows along the border.
func TestIntegralAdaptiveThresholdAgrees(t *testing.T) {
	src := noise(17, 13, 42)
	direct := blank(17, 13)
	integral := blank(17, 13)
	buf := make([]uint64, 17*13)
	for _, radius := range []int{1, 3, 8} {
		AdaptiveThreshold(direct, src, radius, 7)
		IntegralAdaptiveThreshold(integral, src, radius, 7, buf)
		pixelsEqual(t, integral, direct)
	}
}
