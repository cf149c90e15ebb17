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

// Package render draws figures as PNG images with a transparent background
// and a fixed pixel size.
package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/golang/glog"
	"github.com/google/adaptive-sample-size/checks"
	"github.com/google/adaptive-sample-size/figure"
)

// Backend names accepted by New.
const (
	Gonum   = "gonum"
	GoChart = "gochart"
)

const (
	// DefaultWidth is the image width in pixels.
	DefaultWidth = 1000
	// DefaultHeight is the image height in pixels.
	DefaultHeight = 600
	// DefaultDPI is the resolution used to size fonts and lines.
	DefaultDPI = 100
)

// Renderer draws a figure as a PNG image.
type Renderer interface {
	Render(f *figure.Figure, w io.Writer) error
}

// Options contains the options necessary to initialize a Renderer.
type Options struct {
	Width  int // Image width in pixels. Defaults to DefaultWidth.
	Height int // Image height in pixels. Defaults to DefaultHeight.
	DPI    int // Defaults to DefaultDPI.
}

func (opt *Options) withDefaults() Options {
	o := Options{Width: DefaultWidth, Height: DefaultHeight, DPI: DefaultDPI}
	if opt == nil {
		return o
	}
	if opt.Width != 0 {
		o.Width = opt.Width
	}
	if opt.Height != 0 {
		o.Height = opt.Height
	}
	if opt.DPI != 0 {
		o.DPI = opt.DPI
	}
	return o
}

// New returns the Renderer for backend, one of Gonum or GoChart.
func New(backend string, opt *Options) (Renderer, error) {
	o := opt.withDefaults()
	if err := checks.CheckImageSize(o.Width, o.Height, o.DPI); err != nil {
		return nil, err
	}
	switch backend {
	case Gonum:
		return &gonumRenderer{opt: o}, nil
	case GoChart:
		return &goChartRenderer{opt: o}, nil
	default:
		return nil, fmt.Errorf("unknown renderer %q specified, please use one of '%s', '%s'", backend, Gonum, GoChart)
	}
}

// SaveAll renders every figure into dir, under the figure's name, and returns
// the paths written. It stops at the first error.
func SaveAll(r Renderer, dir string, figs []*figure.Figure) ([]string, error) {
	paths := make([]string, 0, len(figs))
	for _, f := range figs {
		path := filepath.Join(dir, f.Name)
		if err := save(r, path, f); err != nil {
			return paths, err
		}
		log.Infof("Wrote %s", path)
		paths = append(paths, path)
	}
	return paths, nil
}

func save(r Renderer, path string, f *figure.Figure) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("couldn't create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("couldn't close %s: %w", path, cerr)
		}
	}()
	if err := r.Render(f, file); err != nil {
		return fmt.Errorf("couldn't render %s: %w", f.Name, err)
	}
	return nil
}
