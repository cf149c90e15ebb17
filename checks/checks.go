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

// Package checks contains parameter checks for the sample-size illustration.
package checks

import (
	"fmt"
	"math"

	log "github.com/golang/glog"
)

const (
	thresholdName = "Threshold"
	ceilingName   = "Ceiling"
)

// MaxCheckpoints is the largest number of checkpoints a sample-size range may
// produce.
const MaxCheckpoints = 10000

// nameOr returns the single optional name, or def if none was passed.
func nameOr(def string, names []string) (string, error) {
	if len(names) > 1 {
		return "", fmt.Errorf("at most one name can be given, got %d", len(names))
	}
	if len(names) == 1 {
		return names[0], nil
	}
	return def, nil
}

// CheckSampleSizeRange returns an error if start or step is nonpositive, if
// end is smaller than start or if the range holds more than MaxCheckpoints
// checkpoints.
func CheckSampleSizeRange(start, end, step int64) error {
	if start <= 0 {
		return fmt.Errorf("Start is %d, must be strictly positive", start)
	}
	if step <= 0 {
		return fmt.Errorf("Step is %d, must be strictly positive", step)
	}
	if end < start {
		return fmt.Errorf("End (%d) must be larger than or equal to start (%d)", end, start)
	}
	if count := (end-start)/step + 1; count > MaxCheckpoints {
		return fmt.Errorf("Range %d to %d with step %d has %d checkpoints, must have at most %d", start, end, step, count, MaxCheckpoints)
	}
	if end == start {
		log.Warningf("Start is equal to end: only a single checkpoint at %d will be generated", start)
	}
	return nil
}

// CheckThreshold returns an error if threshold is NaN or ±∞.
func CheckThreshold(threshold float64, name ...string) error {
	thrName, err := nameOr(thresholdName, name)
	if err != nil {
		return err
	}
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return fmt.Errorf("%s is %f, must be finite", thrName, threshold)
	}
	return nil
}

// CheckCeiling returns an error if ceiling is nonpositive.
func CheckCeiling(ceiling int64, name ...string) error {
	ceilName, err := nameOr(ceilingName, name)
	if err != nil {
		return err
	}
	if ceiling <= 0 {
		return fmt.Errorf("%s is %d, must be strictly positive", ceilName, ceiling)
	}
	return nil
}

// CheckIncrements returns an error if increments is empty or contains a
// negative value.
func CheckIncrements(increments []int64) error {
	if len(increments) == 0 {
		return fmt.Errorf("Increments must contain at least one value")
	}
	for i, inc := range increments {
		if inc < 0 {
			return fmt.Errorf("Increment %d is %d, cannot be negative", i, inc)
		}
	}
	return nil
}

// CheckImageSize returns an error if width, height or dpi is nonpositive.
func CheckImageSize(width, height, dpi int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("Image size is %dx%d, both dimensions must be strictly positive", width, height)
	}
	if dpi <= 0 {
		return fmt.Errorf("DPI is %d, must be strictly positive", dpi)
	}
	return nil
}
