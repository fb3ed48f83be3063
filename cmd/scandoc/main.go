// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// scandoc finds the dominant bright region of a photographed
// document, estimates its corners and rectifies it onto a flat
// output image, optionally wrapped in a single page PDF.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"rescribe.xyz/grayskull"
	"rescribe.xyz/grayskull/internal/pgm"
)

const (
	blurRadius      = 2
	adaptiveRadius  = 21
	adaptiveOffset  = 15
	morphIterations = 2
	maxBlobs        = 256
)

func newImage(w, h int) grayskull.Image {
	return grayskull.Image{W: w, H: h, Data: make([]uint8, w*h)}
}

func readImage(path string) (grayskull.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return grayskull.Image{}, err
	}
	defer f.Close()
	if strings.ToLower(filepath.Ext(path)) == ".pgm" {
		return pgm.Decode(f)
	}
	img, _, err := image.Decode(f)
	if err != nil {
		return grayskull.Image{}, err
	}
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	return grayskull.FromGray(gray), nil
}

// findDocument segments the document from the background and
// returns the quad of its estimated corners, falling back to the
// whole image when no sufficiently large region is found.
func findDocument(img grayskull.Image, debug bool) grayskull.Quad {
	w, h := img.W, img.H
	blurred := newImage(w, h)
	grayskull.Blur(blurred, img, blurRadius)

	binary := newImage(w, h)
	buf := make([]uint64, w*h)
	grayskull.IntegralAdaptiveThreshold(binary, blurred, adaptiveRadius, adaptiveOffset, buf)
	if debug {
		writeDebug("debug_01_binary.pgm", binary)
	}

	// close holes so the page surface labels as one region
	tmp := newImage(w, h)
	dilated := newImage(w, h)
	grayskull.DilateIter(dilated, binary, tmp, morphIterations)
	closed := binary
	grayskull.ErodeIter(closed, dilated, tmp, morphIterations)
	if debug {
		writeDebug("debug_02_closed.pgm", closed)
	}

	labels := make([]grayskull.Label, w*h)
	blobs := make([]grayskull.Blob, maxBlobs)
	parents := make([]grayskull.Label, maxBlobs+1)
	n := grayskull.Blobs(closed, labels, blobs, parents)

	best := -1
	for i := 0; i < n; i++ {
		if best < 0 || blobs[i].Area > blobs[best].Area {
			best = i
		}
	}
	// require the document region to cover at least 10% of the image
	if best < 0 || blobs[best].Area < w*h/10 {
		log.Printf("No document region found, using the whole image\n")
		return grayskull.RectToQuad(grayskull.Rect{X: 0, Y: 0, W: w, H: h})
	}
	b := blobs[best]
	log.Printf("Found document region: %dx%d at (%d,%d)\n", b.Box.W, b.Box.H, b.Box.X, b.Box.Y)
	return grayskull.BlobCorners(closed, labels, &b)
}

func writeDebug(path string, img grayskull.Image) {
	f, err := os.Create(path)
	if err != nil {
		log.Printf("Could not write %s: %v\n", path, err)
		return
	}
	defer f.Close()
	pgm.Encode(f, img)
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: scandoc [-width n] [-height n] [-debug] inimg out[.pdf|.png|.pgm]\n")
		flag.PrintDefaults()
	}
	width := flag.Int("width", 850, "Width of the rectified output.")
	height := flag.Int("height", 1100, "Height of the rectified output.")
	debug := flag.Bool("debug", false, "Write intermediate images for each stage.")
	flag.Parse()
	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(1)
	}

	img, err := readImage(flag.Arg(0))
	if err != nil {
		log.Fatalf("Could not read image %s: %v\n", flag.Arg(0), err)
	}

	quad := findDocument(img, *debug)

	out := newImage(*width, *height)
	grayskull.PerspectiveCorrect(out, img, quad)

	outpath := flag.Arg(1)
	f, err := os.Create(outpath)
	if err != nil {
		log.Fatalf("Could not create file %s: %v\n", outpath, err)
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(outpath)) {
	case ".pdf":
		f.Close()
		var p Fpdf
		if err := p.Setup(); err != nil {
			log.Fatalf("Could not set up PDF: %v\n", err)
		}
		if err := p.AddPage(out); err != nil {
			log.Fatalf("Could not add page to PDF: %v\n", err)
		}
		if err := p.Save(outpath); err != nil {
			log.Fatalf("Could not save PDF %s: %v\n", outpath, err)
		}
	case ".pgm":
		if err := pgm.Encode(f, out); err != nil {
			log.Fatalf("Could not encode image: %v\n", err)
		}
	default:
		if err := png.Encode(f, out.Gray()); err != nil {
			log.Fatalf("Could not encode image: %v\n", err)
		}
	}
}
