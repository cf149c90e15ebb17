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

// Package series generates the checkpoint sequence of sample sizes and the
// synthetic variance curve drawn over it.
//
// The variance curve is a closed-form illustration, not an estimate: at
// sample size n with a planned maximum of N it is 8 − 6·√n/√N, so it starts
// near 8 for tiny samples and reaches exactly 2 at n = N.
package series

import (
	"fmt"
	"math"

	"github.com/google/adaptive-sample-size/checks"
	"gonum.org/v1/gonum/floats"
)

const (
	// DefaultStart is the smallest sample size checked.
	DefaultStart = 30
	// DefaultEnd is the planned maximum sample size.
	DefaultEnd = 160
	// DefaultStep is the distance between two consecutive checkpoints.
	DefaultStep = 15

	varianceIntercept = 8.0
	varianceSlope     = 6.0
)

// Checkpoint is a single (sample size, variance) observation point.
type Checkpoint struct {
	SampleSize int64
	Variance   float64
}

// Options contains the options necessary to generate a checkpoint sequence.
// A zero field means the default is used, so zero can't be requested
// explicitly; negative values are rejected.
type Options struct {
	Start int64 // Smallest sample size. Defaults to DefaultStart.
	End   int64 // Largest sample size, also used as the planned maximum. Defaults to DefaultEnd.
	Step  int64 // Spacing between checkpoints. Defaults to DefaultStep.
}

func (opt *Options) withDefaults() Options {
	o := Options{Start: DefaultStart, End: DefaultEnd, Step: DefaultStep}
	if opt == nil {
		return o
	}
	if opt.Start != 0 {
		o.Start = opt.Start
	}
	if opt.End != 0 {
		o.End = opt.End
	}
	if opt.Step != 0 {
		o.Step = opt.Step
	}
	return o
}

// SampleSizes returns start, start+step, start+2·step, … up to end. end is
// included only when it lies on the grid; no value larger than end is ever
// returned.
func SampleSizes(start, end, step int64) ([]int64, error) {
	if err := checks.CheckSampleSizeRange(start, end, step); err != nil {
		return nil, err
	}
	sizes := make([]int64, (end-start)/step+1)
	for i := range sizes {
		sizes[i] = start + int64(i)*step
	}
	return sizes, nil
}

// Variance returns 8 − 6·√sampleSize/√maxSampleSize.
func Variance(sampleSize, maxSampleSize int64) float64 {
	return varianceIntercept - varianceSlope*(math.Sqrt(float64(sampleSize))/math.Sqrt(float64(maxSampleSize)))
}

// Variances applies Variance to every element of sizes.
func Variances(sizes []int64, maxSampleSize int64) []float64 {
	v := make([]float64, len(sizes))
	sqrtMax := math.Sqrt(float64(maxSampleSize))
	for i, n := range sizes {
		v[i] = math.Sqrt(float64(n)) / sqrtMax
	}
	floats.Scale(-varianceSlope, v)
	floats.AddConst(varianceIntercept, v)
	return v
}

// Generate returns the checkpoint sequence described by opt, ordered by
// increasing sample size. A nil opt yields the default 30/160/15 sequence.
func Generate(opt *Options) ([]Checkpoint, error) {
	o := opt.withDefaults()
	sizes, err := SampleSizes(o.Start, o.End, o.Step)
	if err != nil {
		return nil, fmt.Errorf("couldn't generate sample sizes: %w", err)
	}
	variances := Variances(sizes, o.End)
	cps := make([]Checkpoint, len(sizes))
	for i := range sizes {
		cps[i] = Checkpoint{SampleSize: sizes[i], Variance: variances[i]}
	}
	return cps, nil
}

// SampleSizesOf returns the sample sizes of cps as float64s, for plotting.
func SampleSizesOf(cps []Checkpoint) []float64 {
	xs := make([]float64, len(cps))
	for i, cp := range cps {
		xs[i] = float64(cp.SampleSize)
	}
	return xs
}

// VariancesOf returns the variances of cps.
func VariancesOf(cps []Checkpoint) []float64 {
	ys := make([]float64, len(cps))
	for i, cp := range cps {
		ys[i] = cp.Variance
	}
	return ys
}
