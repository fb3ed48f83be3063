// Package pgm reads and writes binary (P5) PGM files, the simple
// grayscale format the command line tools use alongside the stdlib
// image formats.
package pgm

import (
	"bufio"
	"fmt"
	"io"

	"rescribe.xyz/grayskull"
)

// Decode reads a P5 PGM image with a maximum value of 255.
func Decode(r io.Reader) (grayskull.Image, error) {
	br := bufio.NewReader(r)
	magic, err := token(br)
	if err != nil {
		return grayskull.Image{}, err
	}
	if magic != "P5" {
		return grayskull.Image{}, fmt.Errorf("pgm: bad magic %q", magic)
	}
	var w, h, maxval int
	for _, v := range []*int{&w, &h, &maxval} {
		t, err := token(br)
		if err != nil {
			return grayskull.Image{}, err
		}
		if _, err := fmt.Sscanf(t, "%d", v); err != nil {
			return grayskull.Image{}, fmt.Errorf("pgm: bad header field %q", t)
		}
	}
	if w <= 0 || h <= 0 {
		return grayskull.Image{}, fmt.Errorf("pgm: bad dimensions %dx%d", w, h)
	}
	if maxval != 255 {
		return grayskull.Image{}, fmt.Errorf("pgm: unsupported maxval %d", maxval)
	}
	img := grayskull.Image{W: w, H: h, Data: make([]uint8, w*h)}
	if _, err := io.ReadFull(br, img.Data); err != nil {
		return grayskull.Image{}, fmt.Errorf("pgm: short pixel data: %v", err)
	}
	return img, nil
}

// Encode writes img as a P5 PGM image.
func Encode(w io.Writer, img grayskull.Image) error {
	if !img.Valid() {
		return fmt.Errorf("pgm: invalid image")
	}
	if _, err := fmt.Fprintf(w, "P5\n%d %d\n255\n", img.W, img.H); err != nil {
		return err
	}
	_, err := w.Write(img.Data)
	return err
}

// token returns the next whitespace delimited header token, skipping
// '#' comments, and consumes the single whitespace byte after it.
func token(br *bufio.Reader) (string, error) {
	var t []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			return "", err
		}
		switch {
		case b == '#' && len(t) == 0:
			if _, err := br.ReadString('\n'); err != nil {
				return "", err
			}
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			if len(t) > 0 {
				return string(t), nil
			}
		default:
			t = append(t, b)
		}
	}
}
