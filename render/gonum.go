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
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var dashes = []vg.Length{vg.Points(6), vg.Points(4)}

type gonumRenderer struct {
	opt Options
}

func (r *gonumRenderer) Render(f *figure.Figure, w io.Writer) error {
	p := plot.New()
	p.BackgroundColor = color.Transparent
	p.Title.Text = f.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = f.XLabel
	p.Y.Label.Text = f.YLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for i, l := range f.Lines {
		xys := make(plotter.XYs, len(l.X))
		for j := range l.X {
			xys[j].X, xys[j].Y = l.X[j], l.Y[j]
		}

		var line *plotter.Line
		var points *plotter.Scatter
		var err error
		if l.Markers {
			line, points, err = plotter.NewLinePoints(xys)
		} else {
			line, err = plotter.NewLine(xys)
		}
		if err != nil {
			return fmt.Errorf("could not create line %d from points %v: %v", i, xys, err)
		}
		line.Color = l.Color
		line.Width = vg.Points(l.Width)
		if l.Dashed {
			line.Dashes = dashes
		}
		p.Add(line)

		thumbs := []plot.Thumbnailer{line}
		if points != nil {
			points.Shape = draw.CircleGlyph{}
			points.Color = l.Color
			points.Radius = vg.Points(3)
			p.Add(points)
			thumbs = append(thumbs, points)
		}
		if l.Label != "" {
			p.Legend.Add(l.Label, thumbs...)
		}
	}

	if len(f.Annotations) > 0 {
		xyl := plotter.XYLabels{
			XYs:    make(plotter.XYs, len(f.Annotations)),
			Labels: make([]string, len(f.Annotations)),
		}
		for i, a := range f.Annotations {
			xyl.XYs[i].X, xyl.XYs[i].Y = a.X, a.Y
			xyl.Labels[i] = a.Text
		}
		labels, err := plotter.NewLabels(xyl)
		if err != nil {
			return fmt.Errorf("could not create annotations: %v", err)
		}
		for i, a := range f.Annotations {
			labels.TextStyle[i].Color = a.Color
		}
		labels.Offset = vg.Point{X: vg.Points(6), Y: vg.Points(6)}
		p.Add(labels)
	}

	width := vg.Length(r.opt.Width) * vg.Inch / vg.Length(r.opt.DPI)
	height := vg.Length(r.opt.Height) * vg.Inch / vg.Length(r.opt.DPI)
	c := vgimg.NewWith(
		vgimg.UseWH(width, height),
		vgimg.UseDPI(r.opt.DPI),
		vgimg.UseBackgroundColor(color.Transparent),
	)
	p.Draw(draw.New(c))

	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("could not write png: %v", err)
	}
	return nil
}
