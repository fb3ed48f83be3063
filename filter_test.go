// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package grayskull

import "testing"

func TestBlur(t *testing.T) {
	src := mk(t, 3, 3, []uint8{
		0, 0, 0,
		0, 255, 0,
		0, 0, 0,
	})
	dst := blank(3, 3)
	Blur(dst, src, 1)
	// full 3x3 window: 255/9, truncated
	if got := dst.Get(1, 1); got != 28 {
		t.Errorf("center: got %d, want 28", got)
	}
	// corner window is clipped to 2x2: 255/4, truncated
	if got := dst.Get(0, 0); got != 63 {
		t.Errorf("corner: got %d, want 63", got)
	}
}

func TestSobel(t *testing.T) {
	t.Run("vertical", func(t *testing.T) {
		src := mk(t, 5, 5, []uint8{
			0, 0, 255, 255, 255,
			0, 0, 255, 255, 255,
			0, 0, 255, 255, 255,
			0, 0, 255, 255, 255,
			0, 0, 255, 255, 255,
		})
		dst := blank(5, 5)
		Sobel(dst, src)
		if dst.Get(2, 2) <= 100 || dst.Get(2, 3) <= 100 {
			t.Errorf("no strong response on the edge at column 2: %d %d", dst.Get(2, 2), dst.Get(2, 3))
		}
		if got := dst.Get(0, 2); got != 0 {
			t.Errorf("border pixel: got %d, want 0", got)
		}
	})
	t.Run("horizontal", func(t *testing.T) {
		src := mk(t, 5, 5, []uint8{
			0, 0, 0, 0, 0,
			0, 0, 0, 0, 0,
			255, 255, 255, 255, 255,
			255, 255, 255, 255, 255,
			255, 255, 255, 255, 255,
		})
		dst := blank(5, 5)
		Sobel(dst, src)
		if dst.Get(2, 2) <= 100 || dst.Get(3, 2) <= 100 {
			t.Errorf("no strong response on the edge at row 2: %d %d", dst.Get(2, 2), dst.Get(3, 2))
		}
		if got := dst.Get(2, 0); got != 0 {
			t.Errorf("border pixel: got %d, want 0", got)
		}
	})
}
