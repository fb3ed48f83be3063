// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package grayskull

// Contour is the result of a Moore neighbour boundary trace: the
// starting point, the bounding box of the walk, and the number of
// distinct pixels visited (a pixel count, not a Euclidean length).
type Contour struct {
	Start  Point
	Box    Rect
	Length int
}

// Moore neighbourhood, clockwise from east.
var mooreDx = [8]int{1, 1, 0, -1, -1, -1, 0, 1}
var mooreDy = [8]int{0, 1, 1, 1, 0, -1, -1, -1}

// TraceContour walks the boundary of the foreground region starting
// at start, marking walked pixels in visited, which must match the
// dimensions of img and is not cleared first, so one visited mask
// can accumulate several traces. At each step the neighbours are
// searched starting just counter-clockwise of the reverse of the
// incoming direction, and the walk advances to the first foreground
// neighbour found. The trace ends when the start point is reached a
// second time, or immediately when no foreground neighbour exists.
// Length counts each pixel the first time it is marked, so revisits
// within the same trace are not double counted.
func TraceContour(img, visited Image, start Point) Contour {
	check(img.Valid() && visited.Valid(), "TraceContour: invalid image")
	check(img.W == visited.W && img.H == visited.H, "TraceContour: size mismatch")
	c := Contour{Start: start, Box: Rect{start.X, start.Y, 1, 1}}
	p := start
	dir := 7
	seenstart := false
	for {
		if visited.Data[p.Y*visited.W+p.X] == 0 {
			c.Length++
		}
		visited.Data[p.Y*visited.W+p.X] = 255
		ndir := (dir + 1) % 8
		found := false
		for i := 0; i < 8; i++ {
			d := (ndir + i) % 8
			nx, ny := p.X+mooreDx[d], p.Y+mooreDy[d]
			if nx >= 0 && nx < img.W && ny >= 0 && ny < img.H && img.Data[ny*img.W+nx] > 128 {
				p = Point{nx, ny}
				dir = (d + 6) % 8
				found = true
				break
			}
		}
		if !found {
			break // open contour
		}
		c.Box.X = min(c.Box.X, p.X)
		c.Box.Y = min(c.Box.Y, p.Y)
		c.Box.W = max(c.Box.W, p.X-c.Box.X+1)
		c.Box.H = max(c.Box.H, p.Y-c.Box.Y+1)
		if p == c.Start {
			if seenstart {
				break
			}
			seenstart = true
		}
	}
	return c
}
