// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"rescribe.xyz/grayskull"
	"rescribe.xyz/grayskull/cascade"
)

// parseCascade reads a plain text cascade description. The format is
// line based; blank lines and lines starting with '#' are ignored:
//
//	cascade <width> <height>
//	stage <threshold>
//	clf <bx> <by> <bw> <bh> <dx> <dy> <dw> <dh> <threshold> <left> <right>
//	...
//
// Each stage line starts a new stage collecting the clf lines that
// follow it. Rectangles are relative to the base window.
func parseCascade(r io.Reader) (*cascade.Cascade, error) {
	var c cascade.Cascade
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "cascade":
			if _, err := fmt.Sscanf(line, "cascade %d %d", &c.W, &c.H); err != nil {
				return nil, fmt.Errorf("line %d: bad cascade line: %v", lineno, err)
			}
		case "stage":
			var s cascade.Stage
			if _, err := fmt.Sscanf(line, "stage %f", &s.Threshold); err != nil {
				return nil, fmt.Errorf("line %d: bad stage line: %v", lineno, err)
			}
			c.Stages = append(c.Stages, s)
		case "clf":
			if len(c.Stages) == 0 {
				return nil, fmt.Errorf("line %d: clf before any stage", lineno)
			}
			var clf cascade.Classifier
			var b, d grayskull.Rect
			_, err := fmt.Sscanf(line, "clf %d %d %d %d %d %d %d %d %f %f %f",
				&b.X, &b.Y, &b.W, &b.H, &d.X, &d.Y, &d.W, &d.H,
				&clf.Threshold, &clf.Left, &clf.Right)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad clf line: %v", lineno, err)
			}
			clf.Bright, clf.Dark = b, d
			s := &c.Stages[len(c.Stages)-1]
			s.Classifiers = append(s.Classifiers, clf)
		default:
			return nil, fmt.Errorf("line %d: unknown directive %q", lineno, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if c.W <= 0 || c.H <= 0 {
		return nil, fmt.Errorf("missing or bad cascade header")
	}
	if len(c.Stages) == 0 {
		return nil, fmt.Errorf("cascade has no stages")
	}
	return &c, nil
}
