// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package grayskull

import "testing"

var blobImg = []uint8{
	255, 255, 0, 0, 255, 0,
	255, 0, 0, 255, 255, 0,
	0, 0, 255, 255, 0, 0,
	255, 255, 255, 0, 0, 255,
	0, 255, 0, 0, 0, 255,
}

func TestBlobs(t *testing.T) {
	img := mk(t, 6, 5, blobImg)
	labels := make([]Label, 6*5)
	blobs := make([]Blob, 10)
	parents := make([]Label, 11)
	n := Blobs(img, labels, blobs, parents)
	if n != 3 {
		t.Fatalf("got %d blobs, want 3", n)
	}
	want := []Blob{
		{Component: Component{Label: 1, Area: 3, Box: Rect{0, 0, 2, 2}}, Centroid: Point{0, 0}},
		{Component: Component{Label: 2, Area: 9, Box: Rect{0, 0, 5, 5}}, Centroid: Point{2, 2}},
		{Component: Component{Label: 3, Area: 2, Box: Rect{5, 3, 1, 2}}, Centroid: Point{5, 3}},
	}
	for i, w := range want {
		b := blobs[i]
		if b.Label != w.Label || b.Area != w.Area || b.Box != w.Box || b.Centroid != w.Centroid {
			t.Errorf("blob %d: got {%d %d %v %v}, want {%d %d %v %v}",
				i, b.Label, b.Area, b.Box, b.Centroid, w.Label, w.Area, w.Box, w.Centroid)
		}
	}
	// the raster holds the renumbered labels, not provisional ones
	wantLabels := []Label{
		1, 1, 0, 0, 2, 0,
		1, 0, 0, 2, 2, 0,
		0, 0, 2, 2, 0, 0,
		2, 2, 2, 0, 0, 3,
		0, 2, 0, 0, 0, 3,
	}
	for i, l := range labels {
		if l != wantLabels[i] {
			t.Errorf("label at (%d,%d): got %d, want %d", i%6, i/6, l, wantLabels[i])
		}
	}
}

// When the label budget runs out extra regions are left unlabelled
// rather than mislabelled.
func TestBlobsBudget(t *testing.T) {
	img := blank(13, 1)
	for x := 0; x < 13; x += 2 {
		img.Set(x, 0, 255)
	}
	labels := make([]Label, 13)
	blobs := make([]Blob, 3)
	parents := make([]Label, 4)
	n := Blobs(img, labels, blobs, parents)
	if n != 3 {
		t.Fatalf("got %d blobs, want 3", n)
	}
	for i := 0; i < 3; i++ {
		if blobs[i].Label != Label(i+1) || blobs[i].Area != 1 {
			t.Errorf("blob %d: got label %d area %d, want label %d area 1", i, blobs[i].Label, blobs[i].Area, i+1)
		}
	}
	wantLabels := []Label{1, 0, 2, 0, 3, 0, 0, 0, 0, 0, 0, 0, 0}
	for i, l := range labels {
		if l != wantLabels[i] {
			t.Errorf("label at x=%d: got %d, want %d", i, l, wantLabels[i])
		}
	}
}

func TestConnectedComponents(t *testing.T) {
	t.Run("diag4", func(t *testing.T) {
		img := mk(t, 2, 2, []uint8{255, 0, 0, 255})
		labels := make([]Label, 4)
		comps := make([]Component, 4)
		parents := make([]Label, 5)
		n := ConnectedComponents(img, labels, comps, parents, Conn4)
		if n != 2 {
			t.Fatalf("got %d components, want 2", n)
		}
		for i := 0; i < 2; i++ {
			if comps[i].Area != 1 {
				t.Errorf("component %d: got area %d, want 1", i, comps[i].Area)
			}
		}
	})
	t.Run("diag8", func(t *testing.T) {
		img := mk(t, 2, 2, []uint8{255, 0, 0, 255})
		labels := make([]Label, 4)
		comps := make([]Component, 4)
		parents := make([]Label, 5)
		n := ConnectedComponents(img, labels, comps, parents, Conn8)
		if n != 1 {
			t.Fatalf("got %d components, want 1", n)
		}
		want := Component{Label: 1, Area: 2, Box: Rect{0, 0, 2, 2}}
		if comps[0] != want {
			t.Errorf("got %+v, want %+v", comps[0], want)
		}
	})
	t.Run("grid8", func(t *testing.T) {
		// no two regions of this image touch diagonally, so 8
		// connectivity finds the same components as Blobs
		img := mk(t, 6, 5, blobImg)
		labels := make([]Label, 6*5)
		comps := make([]Component, 10)
		parents := make([]Label, 11)
		n := ConnectedComponents(img, labels, comps, parents, Conn8)
		if n != 3 {
			t.Fatalf("got %d components, want 3", n)
		}
		wantAreas := []int{3, 9, 2}
		for i, w := range wantAreas {
			if comps[i].Area != w {
				t.Errorf("component %d: got area %d, want %d", i, comps[i].Area, w)
			}
		}
	})
}
