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

package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/google/adaptive-sample-size/figure"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type goChartRenderer struct {
	opt Options
}

func toDrawing(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// lineStyle returns the go-chart style of l. Lines without markers draw no
// dots; dashed lines use a 6-on 4-off pattern like the gonum backend.
func lineStyle(l figure.Line) chart.Style {
	st := chart.Style{
		StrokeColor: toDrawing(l.Color),
		StrokeWidth: l.Width,
	}
	if l.Dashed {
		st.StrokeDashArray = []float64{6, 4}
	}
	if l.Markers {
		st.DotColor = toDrawing(l.Color)
		st.DotWidth = 4
	}
	return st
}

func (r *goChartRenderer) Render(f *figure.Figure, w io.Writer) error {
	series := make([]chart.Series, 0, len(f.Lines)+1)
	for _, l := range f.Lines {
		xs, ys := l.X, l.Y
		// go-chart needs at least two points to draw a series.
		if len(xs) == 1 {
			xs = []float64{xs[0], xs[0]}
			ys = []float64{ys[0], ys[0]}
		}
		series = append(series, chart.ContinuousSeries{
			Name:    l.Label,
			XValues: xs,
			YValues: ys,
			Style:   lineStyle(l),
		})
	}
	if len(f.Annotations) > 0 {
		values := make([]chart.Value2, len(f.Annotations))
		for i, a := range f.Annotations {
			values[i] = chart.Value2{
				XValue: a.X,
				YValue: a.Y,
				Label:  a.Text,
				Style: chart.Style{
					FontColor:   toDrawing(a.Color),
					StrokeColor: toDrawing(a.Color),
					FillColor:   drawing.ColorWhite,
				},
			}
		}
		series = append(series, chart.AnnotationSeries{Annotations: values})
	}

	c := chart.Chart{
		Title:  f.Title,
		Width:  r.opt.Width,
		Height: r.opt.Height,
		DPI:    float64(r.opt.DPI),
		Background: chart.Style{
			FillColor:   drawing.ColorTransparent,
			StrokeColor: drawing.ColorTransparent,
			Padding:     chart.Box{Top: 50, Left: 20, Right: 40, Bottom: 20},
		},
		Canvas: chart.Style{
			FillColor:   drawing.ColorTransparent,
			StrokeColor: drawing.ColorTransparent,
		},
		XAxis:  chart.XAxis{Name: f.XLabel},
		YAxis:  chart.YAxis{Name: f.YLabel},
		Series: series,
	}
	c.Elements = []chart.Renderable{chart.Legend(&c)}

	if err := c.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("could not render chart %q: %v", f.Title, err)
	}
	return nil
}
