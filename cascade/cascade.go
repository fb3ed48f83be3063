// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

/*
Package cascade evaluates attentional cascades of rectangle contrast
weak classifiers over an integral image, in the style of LBP/Haar
face detectors. The cascade data itself is opaque trained
configuration supplied by the caller (for example compiled from a
trained classifier); this package only interprets it and never
constructs or mutates it.
*/
package cascade

import (
	"rescribe.xyz/grayskull"
	"rescribe.xyz/grayskull/integralimg"
)

// Classifier is a weak classifier: a local contrast feature
// comparing the mean intensity of two rectangles, both given
// relative to the base detection window. When the contrast falls
// below Threshold the classifier votes Left, otherwise Right.
type Classifier struct {
	Bright, Dark grayskull.Rect
	Threshold    float64
	Left, Right  float64
}

// Stage is one stage of the cascade. A window is rejected as soon as
// the sum of its classifier votes falls below the stage threshold.
type Stage struct {
	Threshold   float64
	Classifiers []Classifier
}

// Cascade is a read-only multi stage classifier trained for a base
// window of W x H pixels.
type Cascade struct {
	W, H   int
	Stages []Stage
}

// Options control the sliding window search of Detect. The zero
// value of a field selects its default.
type Options struct {
	MinScale     float64 // smallest window scale, default 1
	MaxScale     float64 // largest window scale, default the largest that fits
	ScaleFactor  float64 // geometric step between scales, default 1.2
	Step         int     // pixel stride between windows, default 2
	MinNeighbors int     // raw detections required to confirm one, default 1
}

// evalWindow runs the cascade stages over the window at (x, y)
// scaled by scale, rejecting early as soon as a stage fails.
func (c *Cascade) evalWindow(ii integralimg.I, x, y int, scale float64) bool {
	for _, stage := range c.Stages {
		score := 0.0
		for _, clf := range stage.Classifiers {
			f := meanRect(ii, clf.Bright, x, y, scale) - meanRect(ii, clf.Dark, x, y, scale)
			if f < clf.Threshold {
				score += clf.Left
			} else {
				score += clf.Right
			}
		}
		if score < stage.Threshold {
			return false
		}
	}
	return true
}

// meanRect returns the mean intensity of a feature rectangle scaled
// and translated into image space, clipped to the image bounds.
func meanRect(ii integralimg.I, r grayskull.Rect, x, y int, scale float64) float64 {
	x0 := x + int(float64(r.X)*scale)
	y0 := y + int(float64(r.Y)*scale)
	w := int(float64(r.W) * scale)
	h := int(float64(r.H) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	x1, y1 := x0+w-1, y0+h-1
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > ii.W-1 {
		x1 = ii.W - 1
	}
	if y1 > ii.H-1 {
		y1 = ii.H - 1
	}
	if x1 < x0 || y1 < y0 {
		return 0
	}
	area := (x1 - x0 + 1) * (y1 - y0 + 1)
	return float64(ii.Rect(x0, y0, x1, y1)) / float64(area)
}

// Detect slides the cascade window over the integral image at every
// scale from MinScale to MaxScale and collects windows that pass all
// stages into raw, then confirms each raw detection that has at
// least MinNeighbors raw detections (itself included) whose centres
// fall within its rectangle, writing the confirmed rectangles to
// dets. Both raw and dets are caller supplied; detections beyond
// their capacity are silently dropped. The number of confirmed
// detections is returned.
func (c *Cascade) Detect(ii integralimg.I, raw, dets []grayskull.Rect, o Options) int {
	if c.W <= 0 || c.H <= 0 || len(c.Stages) == 0 {
		panic("cascade: empty cascade")
	}
	if len(raw) == 0 || len(dets) == 0 {
		panic("cascade: no room for detections")
	}
	if o.MinScale == 0 {
		o.MinScale = 1
	}
	if o.MaxScale == 0 {
		mw := float64(ii.W) / float64(c.W)
		mh := float64(ii.H) / float64(c.H)
		o.MaxScale = mw
		if mh < mw {
			o.MaxScale = mh
		}
	}
	if o.ScaleFactor == 0 {
		o.ScaleFactor = 1.2
	}
	if o.ScaleFactor <= 1 {
		panic("cascade: scale factor must be greater than 1")
	}
	if o.Step == 0 {
		o.Step = 2
	}
	if o.MinNeighbors == 0 {
		o.MinNeighbors = 1
	}

	nraw := 0
	for scale := o.MinScale; scale <= o.MaxScale; scale *= o.ScaleFactor {
		w := int(float64(c.W) * scale)
		h := int(float64(c.H) * scale)
		if w > ii.W || h > ii.H {
			break
		}
		for y := 0; y+h <= ii.H; y += o.Step {
			for x := 0; x+w <= ii.W; x += o.Step {
				if nraw >= len(raw) {
					break
				}
				if c.evalWindow(ii, x, y, scale) {
					raw[nraw] = grayskull.Rect{X: x, Y: y, W: w, H: h}
					nraw++
				}
			}
		}
	}

	n := 0
	for i := 0; i < nraw && n < len(dets); i++ {
		neighbors := 0
		for j := 0; j < nraw; j++ {
			cx := raw[j].X + raw[j].W/2
			cy := raw[j].Y + raw[j].H/2
			if cx >= raw[i].X && cx < raw[i].X+raw[i].W &&
				cy >= raw[i].Y && cy < raw[i].Y+raw[i].H {
				neighbors++
			}
		}
		if neighbors >= o.MinNeighbors {
			dets[n] = raw[i]
			n++
		}
	}
	return n
}
