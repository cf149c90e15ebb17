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

// This is a command line utility which draws the adaptive sample size charts.
// Usage example:
// (From the repository root)
// go run ./main
// go run ./main --output_dir=/tmp/charts --renderer=gochart --threshold=4
// Without flags, six PNG files are written to the current directory for sample
// sizes 30 to 160 in steps of 15 and a variance threshold of 5.
package main

import (
	"flag"
	"fmt"
	"strings"

	log "github.com/golang/glog"
	samplesize "github.com/google/adaptive-sample-size"
	"github.com/google/adaptive-sample-size/checks"
	"github.com/google/adaptive-sample-size/render"
	"github.com/google/adaptive-sample-size/series"
	"github.com/google/adaptive-sample-size/stopping"
)

var (
	outputDir = flag.String("output_dir", ".", "Directory the PNG charts are written to.")
	renderer  = flag.String("renderer", render.Gonum, "Chart library:\n"+
		render.Gonum+" - gonum.org/v1/plot.\n"+
		render.GoChart+" - github.com/wcharczuk/go-chart.")
	width     = flag.Int("width", render.DefaultWidth, "Image width in pixels.")
	height    = flag.Int("height", render.DefaultHeight, "Image height in pixels.")
	dpi       = flag.Int("dpi", render.DefaultDPI, "Image resolution used to size text and lines.")
	start     = flag.Int64("start", series.DefaultStart, "Smallest sample size checked. Must be strictly positive.")
	end       = flag.Int64("end", series.DefaultEnd, "Planned maximum sample size. Must not be smaller than start.")
	step      = flag.Int64("step", series.DefaultStep, "Distance between two checkpoints. Must be strictly positive.")
	threshold = flag.Float64("threshold", stopping.DefaultThreshold, "Variance at or below which sampling stops.")
)

func main() {
	flag.Parse()

	log.Infof("The charts are drawn with arguments: renderer = %q, outputDir = %q,"+
		" start = %d, end = %d, step = %d, threshold = %g",
		*renderer,
		*outputDir,
		*start,
		*end,
		*step,
		*threshold,
	)

	if *outputDir == "" {
		log.Exit("No output directory was chosen")
	}

	r, err := render.New(*renderer, &render.Options{Width: *width, Height: *height, DPI: *dpi})
	if err != nil {
		log.Exitf("Couldn't create renderer, err = %v", err)
	}

	opt, err := seriesOptions(*start, *end, *step)
	if err != nil {
		log.Exitf("Invalid sample size range, err = %v", err)
	}
	cfg := &samplesize.Config{
		Series:    opt,
		Threshold: threshold,
		OutputDir: *outputDir,
	}
	res, err := samplesize.Run(cfg, r)
	if err != nil {
		log.Exitf("Couldn't draw the charts, err = %v", err)
	}

	fmt.Printf("Saved %d charts: %s\n", len(res.Files), strings.Join(res.Files, ", "))
}

// seriesOptions validates the range flags. series.Options treats zero fields
// as unset, so a zero flag value has to be rejected here.
func seriesOptions(start, end, step int64) (series.Options, error) {
	if err := checks.CheckSampleSizeRange(start, end, step); err != nil {
		return series.Options{}, err
	}
	return series.Options{Start: start, End: end, Step: step}, nil
}
