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

// Package stopping locates the checkpoint at which the variance-monitoring
// rule would halt data collection.
package stopping

import (
	"fmt"

	"github.com/google/adaptive-sample-size/checks"
	"github.com/google/adaptive-sample-size/series"
)

// DefaultThreshold is the variance at or below which sampling stops.
const DefaultThreshold = 5.0

// Point is the checkpoint selected by the threshold rule.
type Point struct {
	Index int
	series.Checkpoint
	// Crossed is false when no checkpoint reached the threshold and the
	// last checkpoint was chosen instead.
	Crossed bool
}

// Index returns the index of the first element of variances that is less
// than or equal to threshold. If there is none, it returns the last index.
// It returns -1 only if variances is empty.
func Index(variances []float64, threshold float64) int {
	for i, v := range variances {
		if v <= threshold {
			return i
		}
	}
	return len(variances) - 1
}

// Locate returns the stopping point of cps for threshold.
func Locate(cps []series.Checkpoint, threshold float64) (Point, error) {
	if err := checks.CheckThreshold(threshold); err != nil {
		return Point{}, err
	}
	if len(cps) == 0 {
		return Point{}, fmt.Errorf("no checkpoints to scan")
	}
	i := Index(series.VariancesOf(cps), threshold)
	return Point{
		Index:      i,
		Checkpoint: cps[i],
		Crossed:    cps[i].Variance <= threshold,
	}, nil
}

// SamplesSaved returns how many samples stopping at p saves compared to
// running until the last checkpoint of cps.
func SamplesSaved(cps []series.Checkpoint, p Point) int64 {
	if len(cps) == 0 {
		return 0
	}
	return cps[len(cps)-1].SampleSize - p.SampleSize
}
