// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// facedetect runs a cascade classifier over an image and prints the
// rectangles of any detections, optionally drawing them into an
// output image. The cascade itself is loaded from a plain text
// description; see parseCascade for the format.
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
	"rescribe.xyz/grayskull/cascade"
	"rescribe.xyz/grayskull/integralimg"
	"rescribe.xyz/grayskull/internal/pgm"
)

const maxDetections = 256

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

func drawRect(img grayskull.Image, r grayskull.Rect) {
	for x := r.X; x < r.X+r.W; x++ {
		img.Set(x, r.Y, 255)
		img.Set(x, r.Y+r.H-1, 255)
	}
	for y := r.Y; y < r.Y+r.H; y++ {
		img.Set(r.X, y, 255)
		img.Set(r.X+r.W-1, y, 255)
	}
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: facedetect -cascade file [flags] inimg [outimg]\n")
		flag.PrintDefaults()
	}
	cascadefile := flag.String("cascade", "", "Cascade description file (required).")
	minscale := flag.Float64("min", 1, "Minimum window scale.")
	maxscale := flag.Float64("max", 0, "Maximum window scale (0 for as large as fits).")
	factor := flag.Float64("factor", 1.2, "Geometric step between scales.")
	step := flag.Int("step", 2, "Pixel stride between windows.")
	neighbors := flag.Int("neighbors", 3, "Raw detections needed to confirm a detection.")
	flag.Parse()
	if *cascadefile == "" || flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	f, err := os.Open(*cascadefile)
	if err != nil {
		log.Fatalf("Could not open cascade %s: %v\n", *cascadefile, err)
	}
	c, err := parseCascade(f)
	f.Close()
	if err != nil {
		log.Fatalf("Could not parse cascade %s: %v\n", *cascadefile, err)
	}

	img, err := readImage(flag.Arg(0))
	if err != nil {
		log.Fatalf("Could not read image %s: %v\n", flag.Arg(0), err)
	}

	buf := make([]uint64, img.W*img.H)
	ii := integralimg.New(buf, img.Data, img.W, img.H)
	raw := make([]grayskull.Rect, maxDetections)
	dets := make([]grayskull.Rect, maxDetections)
	n := c.Detect(ii, raw, dets, cascade.Options{
		MinScale:     *minscale,
		MaxScale:     *maxscale,
		ScaleFactor:  *factor,
		Step:         *step,
		MinNeighbors: *neighbors,
	})

	for i := 0; i < n; i++ {
		fmt.Printf("%d %d %d %d\n", dets[i].X, dets[i].Y, dets[i].W, dets[i].H)
	}
	log.Printf("%d detections\n", n)

	if flag.NArg() > 1 {
		for i := 0; i < n; i++ {
			drawRect(img, dets[i])
		}
		out, err := os.Create(flag.Arg(1))
		if err != nil {
			log.Fatalf("Could not create file %s: %v\n", flag.Arg(1), err)
		}
		defer out.Close()
		if strings.ToLower(filepath.Ext(flag.Arg(1))) == ".pgm" {
			err = pgm.Encode(out, img)
		} else {
			err = png.Encode(out, img.Gray())
		}
		if err != nil {
			log.Fatalf("Could not encode image: %v\n", err)
		}
	}
}
