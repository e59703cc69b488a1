// Copyright 2025 The NoSQLBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart renders comparison rankings as bar chart images.
package chart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ensa-lab/nosqlbench/benchstat"
	"github.com/ensa-lab/nosqlbench/benchunit"
	"github.com/ensa-lab/nosqlbench/report"
)

func blue(alpha uint8) color.Color   { return color.RGBA{B: 0xcc, R: 0x33, G: 0x66, A: alpha} }
func border(alpha uint8) color.Color { return color.RGBA{A: alpha} }

// Render draws one ranking as a bar chart and writes it to path as a
// PNG. Bars appear in rank order, best first.
func Render(rk *benchstat.Ranking, title, path string) error {
	pl := plot.New()
	pl.Title.Text = title
	pl.Y.Label.Text = axisLabel(rk.Kind)

	values := make(plotter.Values, len(rk.Entries))
	var names []string
	for i, e := range rk.Entries {
		values[i] = e.Value
		names = append(names, e.Database)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return err
	}
	bars.Color = blue(0xb0)
	bars.LineStyle.Color = border(0xff)
	bars.LineStyle.Width = vg.Points(0.5)

	pl.Add(bars)
	pl.NominalX(names...)
	pl.X.Tick.Label.Font.Size = 12
	pl.Y.Tick.Label.Font.Size = 12

	return pl.Save(6*vg.Inch, 4*vg.Inch, path)
}

func axisLabel(k benchunit.Kind) string {
	switch k {
	case benchunit.Duration:
		return "seconds"
	case benchunit.LatencyMs:
		return "milliseconds"
	case benchunit.ThroughputOps:
		return "ops/sec"
	case benchunit.Percentage:
		return "percent"
	}
	return ""
}

// RenderAll draws one chart per default comparison that produced a
// ranking and returns the written file paths, in comparison order.
func RenderAll(a *report.Analysis, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	var paths []string
	for _, c := range report.DefaultComparisons {
		rk := a.Ranking(c)
		if rk == nil {
			continue
		}
		path := filepath.Join(dir, fileName(c))
		if err := Render(rk, c.Title, path); err != nil {
			return paths, fmt.Errorf("render %s: %w", c.Title, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func fileName(c report.Comparison) string {
	name := c.Scenario + "_" + c.Field
	if c.Operation != "" {
		name += "_" + c.Operation
	}
	return strings.ToLower(name) + ".png"
}
