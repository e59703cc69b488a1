// Copyright 2025 The NoSQLBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"testing"

	"github.com/ensa-lab/nosqlbench/benchfmt"
	"github.com/ensa-lab/nosqlbench/benchproc"
	"github.com/ensa-lab/nosqlbench/scenario"
)

func TestTablesPerOperation(t *testing.T) {
	records := []*benchfmt.Record{
		rec("Redis", "insert", map[string]float64{"latency_ms": 1.0, "cpu_percent": 10.0}),
		rec("MongoDB", "insert", map[string]float64{"latency_ms": 2.0}),
		rec("Redis", "read", map[string]float64{"latency_ms": 0.5}),
	}
	aggs := Aggregate(benchproc.Group(records, crudSpec), crudSpec)
	tables := Tables(aggs, crudSpec, []string{"MongoDB", "Redis"}, false)

	if len(tables) != 2 {
		t.Fatalf("got %d tables, want 2 (insert, read)", len(tables))
	}

	ins := tables[0]
	if ins.Operation != "insert" {
		t.Errorf("first table operation = %q, want insert", ins.Operation)
	}
	if len(ins.Header) != 3 || ins.Header[0] != "database" || ins.Header[1] != "latency_ms" {
		t.Errorf("header = %v", ins.Header)
	}
	if len(ins.Rows) != 2 {
		t.Fatalf("insert table has %d rows, want 2", len(ins.Rows))
	}
	// Canonical database order, not aggregation order.
	if ins.Rows[0].Database != "MongoDB" || ins.Rows[1].Database != "Redis" {
		t.Errorf("row order = %q, %q", ins.Rows[0].Database, ins.Rows[1].Database)
	}
	// MongoDB never carried cpu_percent: N/A, not zero.
	if ins.Rows[0].Cells[1] != "N/A" {
		t.Errorf("missing field cell = %q, want N/A", ins.Rows[0].Cells[1])
	}
	if ins.Rows[1].Cells[0] != "1.0000ms" {
		t.Errorf("latency cell = %q, want 1.0000ms", ins.Rows[1].Cells[0])
	}
	if ins.Rows[1].Cells[1] != "10.00%" {
		t.Errorf("cpu cell = %q, want 10.00%%", ins.Rows[1].Cells[1])
	}
}

func TestTablesWithoutOperations(t *testing.T) {
	spec := scenario.Spec{
		ID:     "scenario2_iot",
		Fields: []string{"insert_time", "insert_throughput"},
	}
	records := []*benchfmt.Record{
		rec("Redis", "", map[string]float64{"insert_time": 0.0023, "insert_throughput": 1500}),
	}
	aggs := Aggregate(benchproc.Group(records, spec), spec)
	tables := Tables(aggs, spec, []string{"Redis"}, true)

	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}
	row := tables[0].Rows[0]
	if row.Cells[0] != "2.300 ms" {
		t.Errorf("compact duration cell = %q, want 2.300 ms", row.Cells[0])
	}
	if row.Cells[1] != "1.5K" {
		t.Errorf("compact throughput cell = %q, want 1.5K", row.Cells[1])
	}
}

func TestTablesUnknownOperationBucket(t *testing.T) {
	records := []*benchfmt.Record{
		rec("Redis", "insert", map[string]float64{"latency_ms": 1.0}),
		rec("Redis", "", map[string]float64{"latency_ms": 2.0}),
	}
	aggs := Aggregate(benchproc.Group(records, crudSpec), crudSpec)
	tables := Tables(aggs, crudSpec, []string{"Redis"}, false)

	last := tables[len(tables)-1]
	if last.Operation != benchproc.UnknownOperation {
		t.Errorf("last table operation = %q, want %q", last.Operation, benchproc.UnknownOperation)
	}
}

func TestTablesStragglerDatabase(t *testing.T) {
	records := []*benchfmt.Record{
		rec("", "insert", map[string]float64{"latency_ms": 1.0}),
	}
	aggs := Aggregate(benchproc.Group(records, crudSpec), crudSpec)
	tables := Tables(aggs, crudSpec, []string{"MongoDB", "Redis"}, false)

	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}
	if tables[0].Rows[0].Database != benchproc.UnknownDatabase {
		t.Errorf("row database = %q, want %q", tables[0].Rows[0].Database, benchproc.UnknownDatabase)
	}
}
