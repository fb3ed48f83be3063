// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package grayskull

import (
	"math"
	"math/bits"
	"sort"
)

// orbRadius is the margin needed around a keypoint for orientation
// and descriptor sampling.
const orbRadius = 15

// Match pairs a keypoint index from each of two sets with the
// Hamming distance between their descriptors.
type Match struct {
	Idx1, Idx2 int
	Distance   int
}

// ComputeOrientation returns the intensity centroid angle of the
// disk of radius r around (x, y): atan2 of the first image moments.
// The disk must lie entirely within the image.
func ComputeOrientation(img Image, x, y, r int) float32 {
	check(img.Valid(), "ComputeOrientation: invalid image")
	check(x >= r && y >= r && x < img.W-r && y < img.H-r, "ComputeOrientation: disk outside image")
	var m01, m10 float64
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				v := float64(img.Data[(y+dy)*img.W+(x+dx)])
				m01 += float64(dy) * v
				m10 += float64(dx) * v
			}
		}
	}
	return float32(math.Atan2(m01, m10))
}

// BRIEFDescriptor fills in the descriptor of kp by comparing the 256
// fixed sample pairs of briefPattern, each rotated by the keypoint
// angle. A bit is set when the first sample of its pair is strictly
// brighter than the second; samples outside the image read as 0.
func BRIEFDescriptor(img Image, kp *Keypoint) {
	check(img.Valid() && kp != nil, "BRIEFDescriptor: invalid argument")
	sin, cos := math.Sincos(float64(kp.Angle))
	x, y := kp.Pt.X, kp.Pt.Y
	kp.Descriptor = [8]uint32{}
	for i, p := range briefPattern {
		dx1 := float64(p[0])*cos - float64(p[1])*sin
		dy1 := float64(p[0])*sin + float64(p[1])*cos
		dx2 := float64(p[2])*cos - float64(p[3])*sin
		dy2 := float64(p[2])*sin + float64(p[3])*cos
		i1 := img.Get(x+int(dx1), y+int(dy1))
		i2 := img.Get(x+int(dx2), y+int(dy2))
		if i1 > i2 {
			kp.Descriptor[i/32] |= 1 << (i % 32)
		}
	}
}

// ORB extracts up to len(kps) oriented keypoints with rotated BRIEF
// descriptors. candidates is caller supplied scratch for the
// underlying FAST pass and should hold at least four times as many
// entries as kps to oversample enough corners; scoremap must match
// the dimensions of img. Candidates are taken in order of descending
// response, skipping any too close to a border for descriptor
// sampling, until kps is full or the candidates run out.
func ORB(img, scoremap Image, kps, candidates []Keypoint, threshold int) int {
	check(img.Valid(), "ORB: invalid image")
	check(len(kps) > 0, "ORB: no room for keypoints")
	check(len(candidates) > 0, "ORB: no candidate scratch")
	nfast := FAST(img, scoremap, candidates, threshold)
	cands := candidates[:nfast]
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].Response > cands[j].Response })
	n := 0
	for i := 0; i < nfast && n < len(kps); i++ {
		x, y := cands[i].Pt.X, cands[i].Pt.Y
		if x < orbRadius || y < orbRadius || x >= img.W-orbRadius || y >= img.H-orbRadius {
			continue
		}
		kps[n] = cands[i]
		kps[n].Angle = ComputeOrientation(img, x, y, orbRadius)
		BRIEFDescriptor(img, &kps[n])
		n++
	}
	return n
}

// HammingDistance counts the bits differing between two packed
// descriptors.
func HammingDistance(a, b [8]uint32) int {
	d := 0
	for i := range a {
		d += bits.OnesCount32(a[i] ^ b[i])
	}
	return d
}

// MatchORB matches each keypoint of kps1 against kps2 by brute
// force: the nearest neighbour by Hamming distance is accepted only
// if it is within maxDistance and less than 0.8 times the second
// nearest, the usual ambiguity rejection ratio test. Matches beyond
// len(matches) are dropped; the number stored is returned.
func MatchORB(kps1, kps2 []Keypoint, matches []Match, maxDistance float64) int {
	check(len(matches) > 0, "MatchORB: no room for matches")
	n := 0
	for i := range kps1 {
		if n >= len(matches) {
			break
		}
		best, second := maxDistance+1, maxDistance+1
		bestIdx := 0
		for j := range kps2 {
			d := float64(HammingDistance(kps1[i].Descriptor, kps2[j].Descriptor))
			if d < best {
				second = best
				best = d
				bestIdx = j
			} else if d < second {
				second = d
			}
		}
		if best <= maxDistance && best < 0.8*second {
			matches[n] = Match{i, bestIdx, int(best)}
			n++
		}
	}
	return n
}
