// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// nanomagick is a small command line tool for basic grayscale image
// manipulation, converting between PGM, PNG, JPEG, GIF, BMP and TIFF
// on the way.
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

	"golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"rescribe.xyz/grayskull"
	"rescribe.xyz/grayskull/internal/pgm"
)

const usage = `Usage: nanomagick [flags] <command> inimg [outimg]

Commands:
  identify     show image information
  view         display image as ascii art
  resize       resize to -w x -h (bilinear, or nearest with -nearest)
  crop         crop the -x -y -w -h region
  blur         box blur with radius -r
  threshold    binarize at threshold -t
  otsu         binarize at an automatically chosen threshold
  adaptive     adaptive threshold with radius -r and offset -c
  erode        erode -n times
  dilate       dilate -n times
  sobel        gradient magnitude
  downsample   halve the image size
`

// ascii block characters for 5 gray levels
var blocks = []string{" ", "░", "▒", "▓", "█"}

func view(img grayskull.Image, width int) {
	height := img.H * width / (img.W * 2) // chars are roughly 2x taller than wide
	if height < 1 {
		height = 1
	}
	small := grayskull.Image{W: width, H: height, Data: make([]uint8, width*height)}
	grayskull.ResizeNearest(small, img)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := int(small.Data[y*width+x]) * 4 / 255
			fmt.Print(blocks[i])
		}
		fmt.Println()
	}
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

func writeImage(path string, img grayskull.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pgm":
		return pgm.Encode(f, img)
	case ".bmp":
		return bmp.Encode(f, img.Gray())
	default:
		return png.Encode(f, img.Gray())
	}
}

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	width := flag.Int("w", 0, "Width for resize and crop.")
	height := flag.Int("h", 0, "Height for resize and crop.")
	x := flag.Int("x", 0, "Left edge for crop.")
	y := flag.Int("y", 0, "Top edge for crop.")
	radius := flag.Int("r", 2, "Radius for blur and adaptive threshold.")
	thresh := flag.Int("t", 128, "Threshold for the threshold command.")
	c := flag.Int("c", 5, "Offset below the local mean for adaptive threshold.")
	n := flag.Int("n", 1, "Iterations for erode and dilate.")
	nearest := flag.Bool("nearest", false, "Use nearest neighbour resampling for resize.")
	cols := flag.Int("cols", 78, "Width in characters for view.")
	flag.Parse()
	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(1)
	}
	cmd := flag.Arg(0)

	img, err := readImage(flag.Arg(1))
	if err != nil {
		log.Fatalf("Could not read image %s: %v\n", flag.Arg(1), err)
	}

	var out grayskull.Image
	switch cmd {
	case "identify":
		hist := grayskull.Histogram(img)
		lo, hi := 255, 0
		for v, n := range hist {
			if n == 0 {
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		fmt.Printf("%s: %dx%d grayscale, intensity range %d-%d, otsu threshold %d\n",
			flag.Arg(1), img.W, img.H, lo, hi, grayskull.OtsuThreshold(img))
		return
	case "view":
		view(img, *cols)
		return
	case "resize":
		if *width <= 0 || *height <= 0 {
			log.Fatal("resize needs -w and -h\n")
		}
		out = grayskull.Image{W: *width, H: *height, Data: make([]uint8, *width**height)}
		if *nearest {
			grayskull.ResizeNearest(out, img)
		} else {
			grayskull.Resize(out, img)
		}
	case "crop":
		if *width <= 0 || *height <= 0 {
			log.Fatal("crop needs -w and -h\n")
		}
		if *x+*width > img.W || *y+*height > img.H {
			log.Fatal("crop region outside image\n")
		}
		out = grayskull.Image{W: *width, H: *height, Data: make([]uint8, *width**height)}
		grayskull.Crop(out, img, grayskull.Rect{X: *x, Y: *y, W: *width, H: *height})
	case "blur":
		out = grayskull.Image{W: img.W, H: img.H, Data: make([]uint8, img.W*img.H)}
		grayskull.Blur(out, img, *radius)
	case "threshold":
		grayskull.Threshold(img, uint8(*thresh))
		out = img
	case "otsu":
		t := grayskull.OtsuThreshold(img)
		log.Printf("Using threshold %d\n", t)
		grayskull.Threshold(img, t)
		out = img
	case "adaptive":
		out = grayskull.Image{W: img.W, H: img.H, Data: make([]uint8, img.W*img.H)}
		buf := make([]uint64, img.W*img.H)
		grayskull.IntegralAdaptiveThreshold(out, img, *radius, *c, buf)
	case "erode", "dilate":
		out = grayskull.Image{W: img.W, H: img.H, Data: make([]uint8, img.W*img.H)}
		tmp := grayskull.Image{W: img.W, H: img.H, Data: make([]uint8, img.W*img.H)}
		if cmd == "erode" {
			grayskull.ErodeIter(out, img, tmp, *n)
		} else {
			grayskull.DilateIter(out, img, tmp, *n)
		}
	case "sobel":
		out = grayskull.Image{W: img.W, H: img.H, Data: make([]uint8, img.W*img.H)}
		grayskull.Sobel(out, img)
	case "downsample":
		w2, h2 := img.W/2, img.H/2
		out = grayskull.Image{W: w2, H: h2, Data: make([]uint8, w2*h2)}
		grayskull.Downsample(out, img)
	default:
		flag.Usage()
		os.Exit(1)
	}

	if flag.NArg() < 3 {
		log.Fatalf("No output file given for %s\n", cmd)
	}
	if err := writeImage(flag.Arg(2), out); err != nil {
		log.Fatalf("Could not write image %s: %v\n", flag.Arg(2), err)
	}
}
