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

package main

import (
	"testing"

	"github.com/google/adaptive-sample-size/series"
)

func TestSeriesOptions(t *testing.T) {
	for _, tc := range []struct {
		desc             string
		start, end, step int64
		want             series.Options
		wantErr          bool
	}{
		{desc: "default flags", start: 30, end: 160, step: 15, want: series.Options{Start: 30, End: 160, Step: 15}},
		{desc: "single checkpoint", start: 50, end: 50, step: 10, want: series.Options{Start: 50, End: 50, Step: 10}},
		{desc: "zero start", start: 0, end: 160, step: 15, wantErr: true},
		{desc: "zero end", start: 30, end: 0, step: 15, wantErr: true},
		{desc: "zero step", start: 30, end: 160, step: 0, wantErr: true},
		{desc: "negative step", start: 30, end: 160, step: -15, wantErr: true},
		{desc: "too many checkpoints", start: 1, end: 1 << 62, step: 1, wantErr: true},
	} {
		got, err := seriesOptions(tc.start, tc.end, tc.step)
		if (err != nil) != tc.wantErr {
			t.Errorf("seriesOptions: when %s for err got %v, want %t", tc.desc, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("seriesOptions: when %s got %+v, want %+v", tc.desc, got, tc.want)
		}
	}
}
