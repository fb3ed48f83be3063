// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package grayskull

import "testing"

func TestTraceContour(t *testing.T) {
	img := mk(t, 5, 5, []uint8{
		0, 255, 255, 255, 0,
		0, 255, 255, 255, 0,
		0, 255, 0, 255, 255,
		0, 255, 255, 255, 0,
		0, 0, 255, 0, 255,
	})
	visited := blank(5, 5)
	c := TraceContour(img, visited, Point{1, 0})
	if c.Length != 10 {
		t.Errorf("length: got %d, want 10", c.Length)
	}
	if want := (Rect{1, 0, 4, 5}); c.Box != want {
		t.Errorf("box: got %v, want %v", c.Box, want)
	}
	// only the boundary walk is marked, not the hole or the
	// pixels the walk never reaches
	pixelsEqual(t, visited, mk(t, 5, 5, []uint8{
		0, 255, 255, 255, 0,
		0, 255, 0, 255, 0,
		0, 255, 0, 0, 255,
		0, 255, 0, 255, 0,
		0, 0, 255, 0, 0,
	}))
}

func TestTraceContourIsolated(t *testing.T) {
	img := blank(3, 3)
	img.Set(1, 1, 255)
	visited := blank(3, 3)
	c := TraceContour(img, visited, Point{1, 1})
	if c.Length != 1 {
		t.Errorf("length: got %d, want 1", c.Length)
	}
	if want := (Rect{1, 1, 1, 1}); c.Box != want {
		t.Errorf("box: got %v, want %v", c.Box, want)
	}
	if visited.Get(1, 1) != 255 {
		t.Errorf("start pixel not marked visited")
	}
}
