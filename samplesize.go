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

// Package samplesize draws six charts illustrating how stopping once a
// variance curve falls below a threshold could need fewer samples than a
// fixed-size plan.
//
// All numbers are synthetic: the variance curve is a closed-form formula and
// the adaptive schedule is a fixed capped running sum. Nothing is simulated
// or estimated.
package samplesize

import (
	"fmt"

	log "github.com/golang/glog"
	"github.com/google/adaptive-sample-size/comparison"
	"github.com/google/adaptive-sample-size/figure"
	"github.com/google/adaptive-sample-size/render"
	"github.com/google/adaptive-sample-size/series"
	"github.com/google/adaptive-sample-size/stopping"
)

// Config contains the parameters of a run. The zero value reproduces the
// default illustration: sample sizes 30 to 160 in steps of 15, threshold 5,
// images written to the current directory.
type Config struct {
	Series     series.Options
	Comparison comparison.Options
	// Threshold is the variance at or below which sampling stops. Nil means
	// stopping.DefaultThreshold; a pointer allows a threshold of 0.
	Threshold *float64
	OutputDir string // Defaults to ".".
}

// Result holds everything a run computed and the files it wrote.
type Result struct {
	Checkpoints []series.Checkpoint
	Stop        stopping.Point
	Comparison  *comparison.Series
	Files       []string
}

func (cfg *Config) threshold() float64 {
	if cfg.Threshold == nil {
		return stopping.DefaultThreshold
	}
	return *cfg.Threshold
}

// Run generates the checkpoints, locates the stopping point, builds the
// comparison series and writes the six charts with r.
func Run(cfg *Config, r render.Renderer) (*Result, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if r == nil {
		return nil, fmt.Errorf("no renderer given")
	}
	threshold := cfg.threshold()

	cps, err := series.Generate(&cfg.Series)
	if err != nil {
		return nil, err
	}
	stop, err := stopping.Locate(cps, threshold)
	if err != nil {
		return nil, fmt.Errorf("couldn't locate stopping point: %w", err)
	}
	if stop.Crossed {
		log.Infof("Variance %.2f at sample size %d is at or below threshold %g", stop.Variance, stop.SampleSize, threshold)
	} else {
		log.Warningf("No checkpoint reached threshold %g, stopping at the last checkpoint (sample size %d)", threshold, stop.SampleSize)
	}

	cmp, err := comparison.Build(&cfg.Comparison, len(cps))
	if err != nil {
		return nil, fmt.Errorf("couldn't build comparison series: %w", err)
	}
	log.Infof("Adaptive schedule saves %.1f%% of samples on average", comparison.MeanSavings(cmp.SavingsPercent))

	figs, err := figure.Build(cps, stop, threshold, cmp)
	if err != nil {
		return nil, err
	}
	dir := cfg.OutputDir
	if dir == "" {
		dir = "."
	}
	files, err := render.SaveAll(r, dir, figs)
	if err != nil {
		return nil, err
	}
	return &Result{Checkpoints: cps, Stop: stop, Comparison: cmp, Files: files}, nil
}
