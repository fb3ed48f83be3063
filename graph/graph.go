// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// Package graph renders intensity histograms as PNG charts, a debug
// aid for tuning threshold parameters.
package graph

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const xticknum = 16

// createLine creates a vertical line with a particular x value to
// mark a threshold on a histogram
func createLine(x float64, height float64, c drawing.Color) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		XValues: []float64{x, x},
		YValues: []float64{0, height},
		Style: chart.Style{
			StrokeColor: c,
		},
	}
}

// Histogram creates a graph of an intensity histogram, with an
// optional vertical marker line (pass a negative threshold to omit
// it, for example when no binarization threshold applies).
func Histogram(hist [256]int, threshold int, title string, w io.Writer) error {
	var xvalues, yvalues []float64
	var ticks []chart.Tick
	peak := 0
	for i, n := range hist {
		xvalues = append(xvalues, float64(i))
		yvalues = append(yvalues, float64(n))
		if n > peak {
			peak = n
		}
		if i%xticknum == 0 || i == 255 {
			ticks = append(ticks, chart.Tick{Value: float64(i), Label: fmt.Sprintf("%d", i)})
		}
	}

	mainSeries := chart.ContinuousSeries{
		Style: chart.Style{
			StrokeColor: chart.ColorBlue,
			FillColor:   chart.ColorAlternateBlue,
		},
		XValues: xvalues,
		YValues: yvalues,
	}

	graph := chart.Chart{
		Title:  title,
		Width:  1280,
		Height: 720,
		XAxis: chart.XAxis{
			Name: "Intensity",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: 255.0,
			},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: "Pixels",
		},
		Series: []chart.Series{
			mainSeries,
		},
	}
	if threshold >= 0 {
		graph.Series = append(graph.Series,
			createLine(float64(threshold), float64(peak), chart.ColorRed))
	}
	return graph.Render(chart.PNG, w)
}
