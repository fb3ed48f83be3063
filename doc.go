// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

/*
The grayskull package is a small grayscale image processing and
feature extraction library aimed at constrained targets. It covers
filtering, thresholding, morphology, connected component and blob
analysis, contour tracing, FAST/ORB feature detection and matching,
cascade based object detection (in the cascade subpackage), and
perspective rectification.

All operations work on the Image type, a plain non owning view over a
row major 8 bit pixel buffer. The library never allocates: every
destination, label array and scratch buffer is supplied and sized by
the caller, and results that do not fit are silently dropped, with
the returned count reflecting what did fit. Passing wrongly sized
buffers is a programming error and panics; see the notes on each
operation.

The cmd directory contains tools built on the library, such as
nanomagick for basic image manipulation, scandoc for document
scanning and rectification, and facedetect for cascade detection.
*/
package grayskull
