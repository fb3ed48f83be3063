// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// grayhist renders the intensity histogram of an image as a PNG
// chart, marking the Otsu threshold, which is handy when tuning
// binarization parameters.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"rescribe.xyz/grayskull"
	"rescribe.xyz/grayskull/graph"
	"rescribe.xyz/grayskull/internal/pgm"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: grayhist [-notsu] inimg outpng\n")
		flag.PrintDefaults()
	}
	notsu := flag.Bool("notsu", false, "Do not mark the Otsu threshold on the chart.")
	flag.Parse()
	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(1)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("Could not open file %s: %v\n", flag.Arg(0), err)
	}
	defer f.Close()
	var img grayskull.Image
	if strings.ToLower(filepath.Ext(flag.Arg(0))) == ".pgm" {
		img, err = pgm.Decode(f)
	} else {
		var raw image.Image
		raw, _, err = image.Decode(f)
		if err == nil {
			b := raw.Bounds()
			gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
			draw.Draw(gray, gray.Bounds(), raw, b.Min, draw.Src)
			img = grayskull.FromGray(gray)
		}
	}
	if err != nil {
		log.Fatalf("Could not decode image: %v\n", err)
	}

	threshold := -1
	if !*notsu {
		threshold = int(grayskull.OtsuThreshold(img))
		log.Printf("Otsu threshold: %d\n", threshold)
	}

	out, err := os.Create(flag.Arg(1))
	if err != nil {
		log.Fatalf("Could not create file %s: %v\n", flag.Arg(1), err)
	}
	defer out.Close()
	hist := grayskull.Histogram(img)
	err = graph.Histogram(hist, threshold, filepath.Base(flag.Arg(0)), out)
	if err != nil {
		log.Fatalf("Could not render histogram: %v\n", err)
	}
}
