//
// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package figure describes the six charts of the illustration independently
// of the library that draws them.
package figure

import (
	"fmt"
	"image/color"

	"github.com/google/adaptive-sample-size/comparison"
	"github.com/google/adaptive-sample-size/series"
	"github.com/google/adaptive-sample-size/stopping"
)

// File names of the six charts, in drawing order.
const (
	InitialVariabilityFile = "plot1_initial_variability.png"
	VarianceThresholdFile  = "plot2_variance_threshold.png"
	StoppingPointFile      = "plot3_stopping_point.png"
	SamplesSavedFile       = "plot4_samples_saved.png"
	SampleComparisonFile   = "plot5_sample_comparison.png"
	EfficiencyFile         = "plot6_efficiency.png"
)

// Palette shared by all charts.
var (
	VarianceColor   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	ThresholdColor  = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	StopColor       = color.RGBA{R: 44, G: 160, B: 44, A: 255}
	FixedColor      = color.RGBA{R: 127, G: 127, B: 127, A: 255}
	AdaptiveColor   = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	EfficiencyColor = color.RGBA{R: 148, G: 103, B: 189, A: 255}
	TextColor       = color.RGBA{R: 51, G: 51, B: 51, A: 255}
)

const (
	lineWidth      = 2.0
	referenceWidth = 1.5
)

// Line is a polyline through (X[i], Y[i]).
type Line struct {
	Label   string // Legend entry.
	X, Y    []float64
	Color   color.RGBA
	Width   float64 // In points.
	Dashed  bool
	Markers bool
}

// Annotation is a text callout anchored at a data coordinate.
type Annotation struct {
	X, Y  float64
	Text  string
	Color color.RGBA
}

// Figure is a single chart to be written to the file Name.
type Figure struct {
	Name        string
	Title       string
	XLabel      string
	YLabel      string
	Lines       []Line
	Annotations []Annotation
}

// Build returns the six figures for the given checkpoints, stopping point,
// threshold and comparison series, in drawing order. The variance charts and
// the comparison charts share only the checkpoint sample sizes on the x axis.
func Build(cps []series.Checkpoint, stop stopping.Point, threshold float64, cmp *comparison.Series) ([]*Figure, error) {
	if len(cps) == 0 {
		return nil, fmt.Errorf("couldn't build figures: no checkpoints")
	}
	if stop.Index < 0 || stop.Index >= len(cps) {
		return nil, fmt.Errorf("couldn't build figures: stopping index %d out of range [0, %d)", stop.Index, len(cps))
	}
	if cmp == nil || len(cmp.Fixed) != len(cps) || len(cmp.Adaptive) != len(cps) || len(cmp.SavingsPercent) != len(cps) {
		return nil, fmt.Errorf("couldn't build figures: comparison series must have one value per checkpoint")
	}

	xs := series.SampleSizesOf(cps)
	return []*Figure{
		initialVariability(cps, xs),
		varianceThreshold(cps, xs, threshold),
		stoppingPoint(cps, xs, stop, threshold),
		samplesSaved(cps, xs, stop, threshold),
		sampleComparison(xs, cmp),
		efficiency(xs, cmp),
	}, nil
}

func varianceLine(cps []series.Checkpoint, xs []float64) Line {
	return Line{
		Label:   "Variance",
		X:       xs,
		Y:       series.VariancesOf(cps),
		Color:   VarianceColor,
		Width:   lineWidth,
		Markers: true,
	}
}

func horizontal(label string, xs []float64, y float64, c color.RGBA) Line {
	return Line{
		Label:  label,
		X:      []float64{xs[0], xs[len(xs)-1]},
		Y:      []float64{y, y},
		Color:  c,
		Width:  referenceWidth,
		Dashed: true,
	}
}

func vertical(label string, x, y0, y1 float64, c color.RGBA) Line {
	return Line{
		Label:  label,
		X:      []float64{x, x},
		Y:      []float64{y0, y1},
		Color:  c,
		Width:  referenceWidth,
		Dashed: true,
	}
}

// varianceSpan returns the smallest and largest of the variances and the
// threshold, so reference lines cover the whole curve.
func varianceSpan(cps []series.Checkpoint, threshold float64) (lo, hi float64) {
	lo, hi = threshold, threshold
	for _, cp := range cps {
		if cp.Variance < lo {
			lo = cp.Variance
		}
		if cp.Variance > hi {
			hi = cp.Variance
		}
	}
	return lo, hi
}

func initialVariability(cps []series.Checkpoint, xs []float64) *Figure {
	first := cps[0]
	return &Figure{
		Name:   InitialVariabilityFile,
		Title:  "Variance Across Sample Sizes",
		XLabel: "Sample Size",
		YLabel: "Variance",
		Lines:  []Line{varianceLine(cps, xs)},
		Annotations: []Annotation{{
			X:     float64(first.SampleSize),
			Y:     first.Variance,
			Text:  fmt.Sprintf("High initial variance (%.2f)", first.Variance),
			Color: TextColor,
		}},
	}
}

func varianceThreshold(cps []series.Checkpoint, xs []float64, threshold float64) *Figure {
	return &Figure{
		Name:   VarianceThresholdFile,
		Title:  "Variance Reduction Toward the Threshold",
		XLabel: "Sample Size",
		YLabel: "Variance",
		Lines: []Line{
			varianceLine(cps, xs),
			horizontal(fmt.Sprintf("Threshold (%g)", threshold), xs, threshold, ThresholdColor),
		},
		Annotations: []Annotation{{
			X:     xs[len(xs)-1],
			Y:     threshold,
			Text:  fmt.Sprintf("Threshold = %g", threshold),
			Color: ThresholdColor,
		}},
	}
}

func stoppingPoint(cps []series.Checkpoint, xs []float64, stop stopping.Point, threshold float64) *Figure {
	lo, hi := varianceSpan(cps, threshold)
	x := float64(stop.SampleSize)
	text := fmt.Sprintf("Stop at n=%d (variance %.2f)", stop.SampleSize, stop.Variance)
	if !stop.Crossed {
		text = fmt.Sprintf("Threshold not reached, stop at n=%d", stop.SampleSize)
	}
	return &Figure{
		Name:   StoppingPointFile,
		Title:  "Adaptive Stopping Point",
		XLabel: "Sample Size",
		YLabel: "Variance",
		Lines: []Line{
			varianceLine(cps, xs),
			horizontal(fmt.Sprintf("Threshold (%g)", threshold), xs, threshold, ThresholdColor),
			vertical("Stopping point", x, lo, hi, StopColor),
			{
				Label:   "Stopping variance",
				X:       []float64{x},
				Y:       []float64{stop.Variance},
				Color:   StopColor,
				Width:   lineWidth,
				Markers: true,
			},
		},
		Annotations: []Annotation{{
			X:     x,
			Y:     stop.Variance,
			Text:  text,
			Color: StopColor,
		}},
	}
}

func samplesSaved(cps []series.Checkpoint, xs []float64, stop stopping.Point, threshold float64) *Figure {
	lo, hi := varianceSpan(cps, threshold)
	last := cps[len(cps)-1]
	saved := stopping.SamplesSaved(cps, stop)
	return &Figure{
		Name:   SamplesSavedFile,
		Title:  "Samples Saved by Stopping Early",
		XLabel: "Sample Size",
		YLabel: "Variance",
		Lines: []Line{
			varianceLine(cps, xs),
			vertical(fmt.Sprintf("Adaptive stop (n=%d)", stop.SampleSize), float64(stop.SampleSize), lo, hi, StopColor),
			vertical(fmt.Sprintf("Fixed plan (n=%d)", last.SampleSize), float64(last.SampleSize), lo, hi, FixedColor),
		},
		Annotations: []Annotation{{
			X:     float64(stop.SampleSize),
			Y:     hi,
			Text:  fmt.Sprintf("Samples saved: %d", saved),
			Color: TextColor,
		}},
	}
}

func toFloats(v []int64) []float64 {
	f := make([]float64, len(v))
	for i, x := range v {
		f[i] = float64(x)
	}
	return f
}

func sampleComparison(xs []float64, cmp *comparison.Series) *Figure {
	last := len(xs) - 1
	return &Figure{
		Name:   SampleComparisonFile,
		Title:  "Adaptive vs Fixed Sample Size",
		XLabel: "Checkpoint (Sample Size)",
		YLabel: "Sample Size Used",
		Lines: []Line{
			{
				Label:   "Fixed",
				X:       xs,
				Y:       toFloats(cmp.Fixed),
				Color:   FixedColor,
				Width:   lineWidth,
				Dashed:  true,
				Markers: true,
			},
			{
				Label:   "Adaptive",
				X:       xs,
				Y:       toFloats(cmp.Adaptive),
				Color:   AdaptiveColor,
				Width:   lineWidth,
				Markers: true,
			},
		},
		Annotations: []Annotation{
			{
				X:     xs[last],
				Y:     float64(cmp.Fixed[last]),
				Text:  fmt.Sprintf("Fixed: %d", cmp.Fixed[last]),
				Color: FixedColor,
			},
			{
				X:     xs[last],
				Y:     float64(cmp.Adaptive[last]),
				Text:  fmt.Sprintf("Adaptive: %d", cmp.Adaptive[last]),
				Color: AdaptiveColor,
			},
		},
	}
}

func efficiency(xs []float64, cmp *comparison.Series) *Figure {
	mean := comparison.MeanSavings(cmp.SavingsPercent)
	return &Figure{
		Name:   EfficiencyFile,
		Title:  "Efficiency of Adaptive Sampling",
		XLabel: "Checkpoint (Sample Size)",
		YLabel: "Samples Saved (%)",
		Lines: []Line{
			{
				Label:   "Savings",
				X:       xs,
				Y:       cmp.SavingsPercent,
				Color:   EfficiencyColor,
				Width:   lineWidth,
				Markers: true,
			},
			horizontal(fmt.Sprintf("Mean (%.1f%%)", mean), xs, mean, TextColor),
		},
		Annotations: []Annotation{{
			X:     xs[0],
			Y:     mean,
			Text:  fmt.Sprintf("Mean savings %.1f%%", mean),
			Color: TextColor,
		}},
	}
}
