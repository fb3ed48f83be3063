// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package grayskull

// Label identifies a connected component in a label raster. Label 0
// is reserved for background and unlabelled pixels.
type Label uint16

// Connectivity selects which neighbours join pixels into one
// component.
type Connectivity int

const (
	Conn4 Connectivity = 4
	Conn8 Connectivity = 8
)

// Component is a labelled connected region of foreground pixels.
type Component struct {
	Label Label
	Area  int
	Box   Rect
}

// Blob is a component with a centroid, the integer truncated mean
// coordinate of its member pixels.
type Blob struct {
	Component
	Centroid Point

	// running coordinate sums, folded into Centroid once all
	// provisional labels have been merged
	cx, cy int
}

// root finds the representative label of x, compressing the path as
// it goes.
func root(x Label, parents []Label) Label {
	for parents[x] != x {
		parents[x] = parents[parents[x]]
		x = parents[x]
	}
	return x
}

// Blobs labels 4-connected regions of foreground pixels (value >=
// 128) and fills blobs with their area, bounding box and centroid.
// It returns the number of blobs found. labels must hold img.W*img.H
// entries and receives the final label of every pixel; parents is
// union-find scratch and must hold at least len(blobs)+1 entries.
//
// At most len(blobs) provisional labels are allocated; foreground
// pixels beyond that budget are left unlabelled. Surviving blobs are
// renumbered contiguously from 1, in both the returned records and
// the label raster.
func Blobs(img Image, labels []Label, blobs []Blob, parents []Label) int {
	check(img.Valid(), "Blobs: invalid image")
	check(len(labels) == img.W*img.H, "Blobs: labels must hold one entry per pixel")
	check(len(blobs) > 0, "Blobs: no room for blobs")
	check(len(parents) > len(blobs), "Blobs: parents must hold len(blobs)+1 entries")
	w := img.W
	nblobs := len(blobs)
	for i := range labels {
		labels[i] = 0
	}
	for i := range parents {
		parents[i] = Label(i)
	}

	// first pass: provisional labels, unioning across left/top
	next := Label(1)
	for y := 0; y < img.H; y++ {
		for x := 0; x < w; x++ {
			if img.Data[y*w+x] < 128 {
				continue
			}
			var left, top Label
			if x > 0 {
				left = labels[y*w+(x-1)]
			}
			if y > 0 {
				top = labels[(y-1)*w+x]
			}
			n := left
			if n == 0 || (top != 0 && top < n) {
				n = top
			}
			if n == 0 {
				if int(next) > nblobs {
					continue // out of labels
				}
				blobs[next-1] = Blob{Component{next, 1, Rect{x, y, x, y}}, Point{x, y}, x, y}
				labels[y*w+x] = next
				next++
				continue
			}
			labels[y*w+x] = n
			b := &blobs[n-1]
			b.Area++
			b.cx += x
			b.cy += y
			b.Box.X = min(b.Box.X, x)
			b.Box.Y = min(b.Box.Y, y)
			// Box.W/H hold the bottom right corner until
			// compaction converts them to a width and height
			b.Box.W = max(b.Box.W, x)
			b.Box.H = max(b.Box.H, y)
			if left != 0 && top != 0 && left != top {
				r1, r2 := root(left, parents), root(top, parents)
				if r1 != r2 {
					parents[max(int(r1), int(r2))] = Label(min(int(r1), int(r2)))
				}
			}
		}
	}

	// merge provisional blobs into their roots
	for i := 0; i < int(next)-1; i++ {
		r := root(blobs[i].Label, parents)
		if r == blobs[i].Label {
			continue
		}
		br := &blobs[r-1]
		br.Area += blobs[i].Area
		br.cx += blobs[i].cx
		br.cy += blobs[i].cy
		br.Box.X = min(br.Box.X, blobs[i].Box.X)
		br.Box.Y = min(br.Box.Y, blobs[i].Box.Y)
		br.Box.W = max(br.Box.W, blobs[i].Box.W)
		br.Box.H = max(br.Box.H, blobs[i].Box.H)
		blobs[i].Area = 0
	}

	// resolve every pixel to its root label
	for i, l := range labels {
		if l != 0 {
			labels[i] = root(l, parents)
		}
	}

	// compact: drop empty records and renumber from 1, reusing
	// parents to map old roots to compact labels
	m := 0
	for i := 0; i < int(next)-1; i++ {
		if blobs[i].Area == 0 {
			continue
		}
		b := blobs[i]
		b.Box.W = b.Box.W - b.Box.X + 1
		b.Box.H = b.Box.H - b.Box.Y + 1
		b.Centroid = Point{b.cx / b.Area, b.cy / b.Area}
		parents[b.Label] = Label(m + 1)
		b.Label = Label(m + 1)
		blobs[m] = b
		m++
	}
	for i, l := range labels {
		if l != 0 {
			labels[i] = parents[l]
		}
	}
	return m
}

// ConnectedComponents labels connected regions of foreground pixels
// (value >= 128) with the given connectivity, filling comps with
// area and bounding box per component. The contract matches Blobs:
// labels holds one entry per pixel, parents is union-find scratch of
// at least len(comps)+1 entries, the label budget is len(comps), and
// surviving components are renumbered contiguously from 1.
func ConnectedComponents(img Image, labels []Label, comps []Component, parents []Label, conn Connectivity) int {
	check(img.Valid(), "ConnectedComponents: invalid image")
	check(len(labels) == img.W*img.H, "ConnectedComponents: labels must hold one entry per pixel")
	check(len(comps) > 0, "ConnectedComponents: no room for components")
	check(len(parents) > len(comps), "ConnectedComponents: parents must hold len(comps)+1 entries")
	check(conn == Conn4 || conn == Conn8, "ConnectedComponents: connectivity must be 4 or 8")
	w := img.W
	ncomps := len(comps)
	for i := range labels {
		labels[i] = 0
	}
	for i := range parents {
		parents[i] = Label(i)
	}

	next := Label(1)
	for y := 0; y < img.H; y++ {
		for x := 0; x < w; x++ {
			if img.Data[y*w+x] < 128 {
				continue
			}
			var neigh [4]Label
			nn := 0
			if x > 0 {
				if l := labels[y*w+(x-1)]; l != 0 {
					neigh[nn] = l
					nn++
				}
			}
			if y > 0 {
				if l := labels[(y-1)*w+x]; l != 0 {
					neigh[nn] = l
					nn++
				}
				if conn == Conn8 {
					if x > 0 {
						if l := labels[(y-1)*w+(x-1)]; l != 0 {
							neigh[nn] = l
							nn++
						}
					}
					if x < w-1 {
						if l := labels[(y-1)*w+(x+1)]; l != 0 {
							neigh[nn] = l
							nn++
						}
					}
				}
			}
			if nn == 0 {
				if int(next) > ncomps {
					continue // out of labels
				}
				comps[next-1] = Component{next, 1, Rect{x, y, x, y}}
				labels[y*w+x] = next
				next++
				continue
			}
			n := neigh[0]
			for i := 1; i < nn; i++ {
				if neigh[i] < n {
					n = neigh[i]
				}
			}
			labels[y*w+x] = n
			c := &comps[n-1]
			c.Area++
			c.Box.X = min(c.Box.X, x)
			c.Box.Y = min(c.Box.Y, y)
			c.Box.W = max(c.Box.W, x)
			c.Box.H = max(c.Box.H, y)
			for i := 0; i < nn; i++ {
				if neigh[i] == n {
					continue
				}
				r1, r2 := root(n, parents), root(neigh[i], parents)
				if r1 != r2 {
					parents[max(int(r1), int(r2))] = Label(min(int(r1), int(r2)))
				}
			}
		}
	}

	for i := 0; i < int(next)-1; i++ {
		r := root(comps[i].Label, parents)
		if r == comps[i].Label {
			continue
		}
		cr := &comps[r-1]
		cr.Area += comps[i].Area
		cr.Box.X = min(cr.Box.X, comps[i].Box.X)
		cr.Box.Y = min(cr.Box.Y, comps[i].Box.Y)
		cr.Box.W = max(cr.Box.W, comps[i].Box.W)
		cr.Box.H = max(cr.Box.H, comps[i].Box.H)
		comps[i].Area = 0
	}

	for i, l := range labels {
		if l != 0 {
			labels[i] = root(l, parents)
		}
	}

	m := 0
	for i := 0; i < int(next)-1; i++ {
		if comps[i].Area == 0 {
			continue
		}
		c := comps[i]
		c.Box.W = c.Box.W - c.Box.X + 1
		c.Box.H = c.Box.H - c.Box.Y + 1
		parents[c.Label] = Label(m + 1)
		c.Label = Label(m + 1)
		comps[m] = c
		m++
	}
	for i, l := range labels {
		if l != 0 {
			labels[i] = parents[l]
		}
	}
	return m
}
