// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package grayskull

// Keypoint is a corner detected by FAST, with the response score
// from detection, the intensity centroid orientation set during ORB
// extraction, and a 256 bit binary descriptor packed into eight 32
// bit words.
type Keypoint struct {
	Pt         Point
	Response   int
	Angle      float32
	Descriptor [8]uint32
}

// Bresenham circle of radius 3, clockwise from north.
var circleDx = [16]int{0, 1, 2, 3, 3, 3, 2, 1, 0, -1, -2, -3, -3, -3, -2, -1}
var circleDy = [16]int{-3, -3, -2, -1, 0, 1, 2, 3, 3, 3, 2, 1, 0, -1, -2, -3}

// FAST detects corners: pixels whose 16 sample Bresenham circle has
// a contiguous run of at least 9 samples all brighter than
// center+threshold or all darker than center-threshold. A corner's
// score is the minimum absolute difference from the center over all
// 16 ring samples. scoremap must match the dimensions of img; it is
// zeroed and then filled with the score of every pixel, and a 3x3
// non-maximum suppression pass (strict, so equal scores do not
// suppress each other) emits the surviving corners into kps in scan
// order. Corners beyond len(kps) are dropped; the number stored is
// returned.
func FAST(img, scoremap Image, kps []Keypoint, threshold int) int {
	check(img.Valid() && scoremap.Valid(), "FAST: invalid image")
	check(scoremap.W == img.W && scoremap.H == img.H, "FAST: scoremap size mismatch")
	check(len(kps) > 0, "FAST: no room for keypoints")
	w := img.W
	for i := range scoremap.Data {
		scoremap.Data[i] = 0
	}
	for y := 3; y < img.H-3; y++ {
		for x := 3; x < w-3; x++ {
			p := int(img.Data[y*w+x])
			run, score := 0, 0
			// 16+9 iterations so runs wrapping the seam are found
			for i := 0; i < 16+9; i++ {
				idx := i % 16
				v := int(img.Data[(y+circleDy[idx])*w+(x+circleDx[idx])])
				switch {
				case v > p+threshold:
					if run > 0 {
						run++
					} else {
						run = 1
					}
				case v < p-threshold:
					if run < 0 {
						run--
					} else {
						run = -1
					}
				default:
					run = 0
				}
				if run >= 9 || run <= -9 {
					score = 255
					for j := 0; j < 16; j++ {
						d := int(img.Get(x+circleDx[j], y+circleDy[j])) - p
						if d < 0 {
							d = -d
						}
						if d < score {
							score = d
						}
					}
					break
				}
			}
			scoremap.Data[y*w+x] = uint8(score)
		}
	}
	n := 0
	for y := 3; y < img.H-3; y++ {
		for x := 3; x < w-3; x++ {
			s := scoremap.Data[y*w+x]
			if s == 0 {
				continue
			}
			isMax := true
		nms:
			for yy := -1; yy <= 1; yy++ {
				for xx := -1; xx <= 1; xx++ {
					if xx == 0 && yy == 0 {
						continue
					}
					if scoremap.Data[(y+yy)*w+(x+xx)] > s {
						isMax = false
						break nms
					}
				}
			}
			if isMax && n < len(kps) {
				kps[n] = Keypoint{Pt: Point{x, y}, Response: int(s)}
				n++
			}
		}
	}
	return n
}
