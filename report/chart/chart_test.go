// Copyright 2025 The NoSQLBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ensa-lab/nosqlbench/benchfmt"
	"github.com/ensa-lab/nosqlbench/benchstat"
	"github.com/ensa-lab/nosqlbench/report"
	"github.com/ensa-lab/nosqlbench/scenario"
)

func TestRender(t *testing.T) {
	records := []*benchfmt.Record{
		{Database: "Redis", Values: map[string]float64{"throughput_ops": 1500}},
		{Database: "MongoDB", Values: map[string]float64{"throughput_ops": 500}},
	}
	rk := benchstat.Compare(records, "throughput_ops", benchstat.CompareOptions{})

	path := filepath.Join(t.TempDir(), "ranking.png")
	if err := Render(rk, "Throughput", path); err != nil {
		t.Fatalf("Render: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("chart file not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("chart file is empty")
	}
}

func TestRenderAll(t *testing.T) {
	a := report.NewAnalysis([]string{"MongoDB", "Redis"})
	for _, spec := range scenario.Default().Scenarios() {
		var records []*benchfmt.Record
		if spec.ID == "scenario2_iot" {
			records = []*benchfmt.Record{
				{Database: "Redis", Values: map[string]float64{"insert_throughput": 1500}},
				{Database: "MongoDB", Values: map[string]float64{"insert_throughput": 500}},
			}
		}
		a.Add(spec, records)
	}

	dir := t.TempDir()
	paths, err := RenderAll(a, dir)
	if err != nil {
		t.Fatalf("RenderAll: %v", err)
	}
	// Only the IoT comparison has data.
	if len(paths) != 1 {
		t.Fatalf("got %d charts, want 1: %v", len(paths), paths)
	}
	want := filepath.Join(dir, "scenario2_iot_insert_throughput.png")
	if paths[0] != want {
		t.Errorf("path = %q, want %q", paths[0], want)
	}
	if _, err := os.Stat(paths[0]); err != nil {
		t.Errorf("chart file not written: %v", err)
	}
}
