// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package grayskull

import "testing"

func TestFASTDot(t *testing.T) {
	img := blank(21, 21)
	img.Set(10, 10, 255)
	scoremap := blank(21, 21)
	kps := make([]Keypoint, 8)
	n := FAST(img, scoremap, kps, 20)
	if n != 1 {
		t.Fatalf("got %d keypoints, want 1", n)
	}
	if kps[0].Pt != (Point{10, 10}) || kps[0].Response != 255 {
		t.Errorf("got %v response %d, want {10 10} response 255", kps[0].Pt, kps[0].Response)
	}

	// the scoremap is zeroed on every call, so stale scores from
	// the run above must not leak into a blank image
	n = FAST(blank(21, 21), scoremap, kps, 20)
	if n != 0 {
		t.Errorf("blank image: got %d keypoints, want 0", n)
	}
	for i, s := range scoremap.Data {
		if s != 0 {
			t.Fatalf("stale score %d at index %d", s, i)
		}
	}
}

// Non-maximum suppression drops a corner next to a stronger one, and
// the stronger one survives.
func TestFASTSuppression(t *testing.T) {
	img := blank(21, 21)
	img.Set(10, 10, 255)
	img.Set(11, 10, 200)
	scoremap := blank(21, 21)
	kps := make([]Keypoint, 8)
	n := FAST(img, scoremap, kps, 20)
	if n != 1 {
		t.Fatalf("got %d keypoints, want 1", n)
	}
	if kps[0].Pt != (Point{10, 10}) {
		t.Errorf("got %v, want {10 10}", kps[0].Pt)
	}
}

// The corners of a solid square sit on the ring of their own edge
// pixels, so every candidate there has a zero score and none are
// reported.
func TestFASTSolidSquare(t *testing.T) {
	img := blank(21, 21)
	for y := 8; y <= 12; y++ {
		for x := 8; x <= 12; x++ {
			img.Set(x, y, 255)
		}
	}
	scoremap := blank(21, 21)
	kps := make([]Keypoint, 8)
	if n := FAST(img, scoremap, kps, 20); n != 0 {
		t.Errorf("got %d keypoints, want 0", n)
	}
}

func TestFASTCapacity(t *testing.T) {
	img := blank(21, 21)
	img.Set(6, 6, 255)
	img.Set(14, 14, 255)
	scoremap := blank(21, 21)
	kps := make([]Keypoint, 1)
	n := FAST(img, scoremap, kps, 20)
	if n != 1 {
		t.Fatalf("got %d keypoints, want 1", n)
	}
	// scan order, so the first corner wins
	if kps[0].Pt != (Point{6, 6}) {
		t.Errorf("got %v, want {6 6}", kps[0].Pt)
	}
}
