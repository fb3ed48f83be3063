// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image/png"

	"github.com/jung-kurt/gofpdf"

	"rescribe.xyz/grayskull"
)

const pageWidth = 5 // pageWidth in inches

// pxToPt converts a pixel value into a pt value (72 pts per inch)
// This uses pageWidth to determine the appropriate value
func pxToPt(i int) float64 {
	return float64(i) / pageWidth
}

type Fpdf struct {
	fpdf *gofpdf.Fpdf
}

// Setup creates a new PDF with appropriate settings
func (p *Fpdf) Setup() error {
	p.fpdf = gofpdf.New("P", "pt", "A4", "")
	p.fpdf.SetAutoPageBreak(false, float64(0))
	return p.fpdf.Error()
}

// AddPage adds a page to the pdf containing the rectified image,
// sized to match it.
func (p *Fpdf) AddPage(img grayskull.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img.Gray()); err != nil {
		return err
	}
	p.fpdf.AddPageFormat("P", gofpdf.SizeType{Wd: pxToPt(img.W), Ht: pxToPt(img.H)})
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.fpdf.RegisterImageOptionsReader("scan", opts, &buf)
	p.fpdf.ImageOptions("scan", 0, 0, pxToPt(img.W), pxToPt(img.H), false, opts, 0, "")
	return p.fpdf.Error()
}

// Save saves the PDF to the file at path
func (p *Fpdf) Save(path string) error {
	return p.fpdf.OutputFileAndClose(path)
}
