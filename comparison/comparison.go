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

// Package comparison builds the illustrative "fixed" and "adaptive" sample
// size schedules drawn side by side.
//
// Both schedules are fabricated. They share the checkpoint positions of the
// variance curve but are not derived from it.
package comparison

import (
	"fmt"

	"github.com/google/adaptive-sample-size/checks"
	"gonum.org/v1/gonum/stat"
)

const (
	// DefaultFixed is the sample size of the fixed plan.
	DefaultFixed = 160
	// DefaultCeiling caps the adaptive schedule.
	DefaultCeiling = 130
)

// DefaultIncrements returns the per-checkpoint additions of the adaptive
// schedule: 30, 50, 70, 85, 100, 110, 120, 125 and 130 once accumulated.
func DefaultIncrements() []int64 {
	return []int64{30, 20, 20, 15, 15, 10, 10, 5, 5}
}

// Series holds the two schedules and the per-checkpoint saving of the
// adaptive one, all aligned by index.
type Series struct {
	Fixed          []int64
	Adaptive       []int64
	SavingsPercent []float64
}

// Options contains the options necessary to build a Series.
type Options struct {
	Fixed      int64   // Sample size of the fixed plan. Defaults to DefaultFixed.
	Increments []int64 // Additions of the adaptive schedule. Defaults to DefaultIncrements().
	Ceiling    int64   // Cap of the adaptive schedule. Defaults to DefaultCeiling.
}

// Fixed returns n copies of value.
func Fixed(n int, value int64) []int64 {
	s := make([]int64, n)
	for i := range s {
		s[i] = value
	}
	return s
}

// Adaptive returns the running sum of increments, saturating at ceiling. increments is truncated to n elements, or padded by repeating its
// last element. With non-negative increments the result is non-decreasing.
func Adaptive(increments []int64, n int, ceiling int64) ([]int64, error) {
	if err := checks.CheckIncrements(increments); err != nil {
		return nil, err
	}
	if err := checks.CheckCeiling(ceiling); err != nil {
		return nil, err
	}
	s := make([]int64, n)
	var sum int64
	for i := range s {
		inc := increments[len(increments)-1]
		if i < len(increments) {
			inc = increments[i]
		}
		sum = addCapped(sum, inc, ceiling)
		s[i] = sum
	}
	return s, nil
}

// Savings returns, for every index, the share of the fixed sample size that
// the adaptive schedule does not use, in percent.
func Savings(fixed, adaptive []int64) ([]float64, error) {
	if len(fixed) != len(adaptive) {
		return nil, fmt.Errorf("fixed and adaptive schedules must have the same length, got %d and %d", len(fixed), len(adaptive))
	}
	pct := make([]float64, len(fixed))
	for i := range fixed {
		if fixed[i] <= 0 {
			return nil, fmt.Errorf("fixed sample size at index %d is %d, must be strictly positive", i, fixed[i])
		}
		pct[i] = 100 * float64(fixed[i]-adaptive[i]) / float64(fixed[i])
	}
	return pct, nil
}

// MeanSavings returns the average of savings, or 0 if it is empty.
func MeanSavings(savings []float64) float64 {
	if len(savings) == 0 {
		return 0
	}
	return stat.Mean(savings, nil)
}

// Build returns the comparison series for n checkpoints.
func Build(opt *Options, n int) (*Series, error) {
	if opt == nil {
		opt = &Options{}
	}
	fixed := opt.Fixed
	if fixed == 0 {
		fixed = DefaultFixed
	}
	increments := opt.Increments
	if increments == nil {
		increments = DefaultIncrements()
	}
	ceiling := opt.Ceiling
	if ceiling == 0 {
		ceiling = DefaultCeiling
	}
	if ceiling > fixed {
		return nil, fmt.Errorf("ceiling (%d) must not exceed the fixed sample size (%d)", ceiling, fixed)
	}

	f := Fixed(n, fixed)
	a, err := Adaptive(increments, n, ceiling)
	if err != nil {
		return nil, fmt.Errorf("couldn't build adaptive schedule: %w", err)
	}
	pct, err := Savings(f, a)
	if err != nil {
		return nil, fmt.Errorf("couldn't compute savings: %w", err)
	}
	return &Series{Fixed: f, Adaptive: a, SavingsPercent: pct}, nil
}

// addCapped returns sum+inc, or ceiling if the addition would go past it.
// sum must not exceed ceiling and inc must be non-negative, so the result
// never overflows.
func addCapped(sum, inc, ceiling int64) int64 {
	if inc > ceiling-sum {
		return ceiling
	}
	return sum + inc
}
