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

package series

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const tolerance = 1e-9

func TestSampleSizes(t *testing.T) {
	for _, tc := range []struct {
		desc             string
		start, end, step int64
		want             []int64
		wantErr          bool
	}{
		{
			desc: "default parameters stop before an off-grid end",
			start: 30, end: 160, step: 15,
			want: []int64{30, 45, 60, 75, 90, 105, 120, 135, 150},
		},
		{
			desc: "end on the grid is included",
			start: 30, end: 150, step: 15,
			want: []int64{30, 45, 60, 75, 90, 105, 120, 135, 150},
		},
		{
			desc: "start equal to end",
			start: 50, end: 50, step: 10,
			want: []int64{50},
		},
		{
			desc: "step larger than the range",
			start: 10, end: 20, step: 100,
			want: []int64{10},
		},
		{
			desc: "zero step",
			start: 10, end: 20, step: 0,
			wantErr: true,
		},
		{
			desc: "end smaller than start",
			start: 20, end: 10, step: 1,
			wantErr: true,
		},
		{
			desc: "range ending at the int64 limit",
			start: math.MaxInt64 - 1, end: math.MaxInt64, step: 5,
			want: []int64{math.MaxInt64 - 1},
		},
		{
			desc: "last grid value is the int64 limit",
			start: math.MaxInt64 - 20, end: math.MaxInt64, step: 10,
			want: []int64{math.MaxInt64 - 20, math.MaxInt64 - 10, math.MaxInt64},
		},
		{
			desc: "too many checkpoints",
			start: 1, end: 1 << 62, step: 1,
			wantErr: true,
		},
	} {
		got, err := SampleSizes(tc.start, tc.end, tc.step)
		if (err != nil) != tc.wantErr {
			t.Errorf("SampleSizes: when %s for err got %v, want %t", tc.desc, err, tc.wantErr)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("SampleSizes: when %s got diff (-want +got):\n%s", tc.desc, diff)
		}
	}
}

func TestSampleSizesNeverExceedEnd(t *testing.T) {
	for start := int64(1); start <= 20; start++ {
		for step := int64(1); step <= 20; step++ {
			end := start + 37
			sizes, err := SampleSizes(start, end, step)
			if err != nil {
				t.Fatalf("SampleSizes(%d, %d, %d) returned err %v", start, end, step, err)
			}
			last := sizes[len(sizes)-1]
			if last > end || last+step <= end {
				t.Errorf("SampleSizes(%d, %d, %d): last element is %d, want the largest grid value not above %d", start, end, step, last, end)
			}
		}
	}
}

func TestVariance(t *testing.T) {
	if got := Variance(160, 160); got != 2 {
		t.Errorf("Variance(160, 160) = %v, want exactly 2", got)
	}
	want := 8 - 6*math.Sqrt(30)/math.Sqrt(160)
	if got := Variance(30, 160); math.Abs(got-want) > tolerance {
		t.Errorf("Variance(30, 160) = %v, want %v", got, want)
	}
	if got := Variance(30, 160); math.Abs(got-5.40) > 0.01 {
		t.Errorf("Variance(30, 160) = %v, want ≈5.40", got)
	}
}

func TestVarianceIsDecreasing(t *testing.T) {
	prev := math.Inf(1)
	for n := int64(1); n <= 500; n++ {
		v := Variance(n, 500)
		if v >= prev {
			t.Errorf("Variance(%d, 500) = %v, want strictly less than Variance(%d, 500) = %v", n, v, n-1, prev)
		}
		prev = v
	}
}

func TestVariancesMatchesVariance(t *testing.T) {
	sizes := []int64{30, 45, 60, 75, 90, 105, 120, 135, 150, 160}
	got := Variances(sizes, 160)
	want := make([]float64, len(sizes))
	for i, n := range sizes {
		want[i] = Variance(n, 160)
	}
	if !cmp.Equal(got, want) {
		t.Errorf("Variances(%v, 160) = %v, want %v", sizes, got, want)
	}
}

func TestGenerate(t *testing.T) {
	got, err := Generate(nil)
	if err != nil {
		t.Fatalf("Generate(nil) returned err %v", err)
	}
	want := []Checkpoint{
		{30, 5.401923788646684},
		{45, 4.818019484660536},
		{60, 4.325765385825234},
		{75, 3.8920808187112543},
		{90, 3.5},
		{105, 3.1394444761941056},
		{120, 2.803847577293368},
		{135, 2.4886480787378495},
		{150, 2.190524980688875},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, tolerance)); diff != "" {
		t.Errorf("Generate(nil) got diff (-want +got):\n%s", diff)
	}
}

func TestGenerateDefaults(t *testing.T) {
	for _, tc := range []struct {
		desc      string
		opt       *Options
		wantFirst int64
		wantLast  int64
		wantLen   int
	}{
		{"nil options", nil, 30, 150, 9},
		{"empty options", &Options{}, 30, 150, 9},
		{"only step set", &Options{Step: 10}, 30, 160, 14},
		{"all fields set", &Options{Start: 10, End: 100, Step: 30}, 10, 100, 4},
	} {
		cps, err := Generate(tc.opt)
		if err != nil {
			t.Errorf("Generate: when %s got err %v", tc.desc, err)
			continue
		}
		if len(cps) != tc.wantLen {
			t.Errorf("Generate: when %s got %d checkpoints, want %d", tc.desc, len(cps), tc.wantLen)
			continue
		}
		if cps[0].SampleSize != tc.wantFirst || cps[len(cps)-1].SampleSize != tc.wantLast {
			t.Errorf("Generate: when %s got range [%d, %d], want [%d, %d]", tc.desc, cps[0].SampleSize, cps[len(cps)-1].SampleSize, tc.wantFirst, tc.wantLast)
		}
	}
}

func TestGenerateMaximumUsesEnd(t *testing.T) {
	cps, err := Generate(&Options{Start: 40, End: 160, Step: 40})
	if err != nil {
		t.Fatalf("Generate returned err %v", err)
	}
	last := cps[len(cps)-1]
	if last.SampleSize != 160 || last.Variance != 2 {
		t.Errorf("Generate: last checkpoint is %+v, want {SampleSize:160 Variance:2}", last)
	}
}

func TestGenerateInvalidOptions(t *testing.T) {
	if _, err := Generate(&Options{Start: -1}); err == nil {
		t.Errorf("Generate with negative start got nil error, want error")
	}
	if _, err := Generate(&Options{Start: 200}); err == nil {
		t.Errorf("Generate with start beyond the default end got nil error, want error")
	}
}

func TestSampleSizesOfAndVariancesOf(t *testing.T) {
	cps := []Checkpoint{{10, 1.5}, {20, 0.5}}
	if diff := cmp.Diff([]float64{10, 20}, SampleSizesOf(cps)); diff != "" {
		t.Errorf("SampleSizesOf got diff (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{1.5, 0.5}, VariancesOf(cps)); diff != "" {
		t.Errorf("VariancesOf got diff (-want +got):\n%s", diff)
	}
}
