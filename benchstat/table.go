// Copyright 2025 The NoSQLBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"github.com/ensa-lab/nosqlbench/benchproc"
	"github.com/ensa-lab/nosqlbench/benchunit"
	"github.com/ensa-lab/nosqlbench/scenario"
)

// A Table is one display table of aggregated results: one row per
// database, one column per field, with values already formatted in
// the field's unit. The presentation surfaces (text, PDF, web) render
// Tables without re-deriving classification or formatting.
type Table struct {
	Scenario  scenario.Spec
	Operation string // "" for scenarios without operations
	Header    []string
	Rows      []Row
}

// A Row is one database's formatted values in a Table.
type Row struct {
	Database string
	Cells    []string // parallel to Table.Header[1:]
}

// Tables builds display tables from aggregated records: one table per
// declared operation (in spec order, with a trailing table for the
// "unknown" bucket if it occurred), or a single table for scenarios
// without operations.
//
// Rows appear in the order of databases, followed by any database in
// aggs that is not listed (including the "Unknown" bucket), in
// aggregation order. Databases with no aggregate for the operation
// are omitted. Absent fields render as benchunit.Missing.
func Tables(aggs []*AggregatedRecord, spec scenario.Spec, databases []string, compact bool) []*Table {
	ops := []string{""}
	if spec.HasOperations() {
		ops = append([]string(nil), spec.Operations...)
		for _, agg := range aggs {
			if agg.Operation == benchproc.UnknownOperation {
				ops = append(ops, benchproc.UnknownOperation)
				break
			}
		}
	}

	var out []*Table
	for _, op := range ops {
		t := &Table{
			Scenario:  spec,
			Operation: op,
			Header:    append([]string{"database"}, spec.Fields...),
		}
		for _, agg := range orderAggregates(aggs, op, databases) {
			row := Row{Database: agg.Database}
			for _, field := range spec.Fields {
				sum, ok := agg.Fields[field]
				if !ok {
					row.Cells = append(row.Cells, benchunit.Missing)
					continue
				}
				kind := benchunit.KindOf(field)
				if compact {
					row.Cells = append(row.Cells, benchunit.FormatCompact(sum.Mean, kind))
				} else {
					row.Cells = append(row.Cells, benchunit.Format(sum.Mean, kind))
				}
			}
			t.Rows = append(t.Rows, row)
		}
		if len(t.Rows) > 0 {
			out = append(out, t)
		}
	}
	return out
}

// orderAggregates returns the aggregates for one operation, canonical
// databases first, then stragglers in aggregation order.
func orderAggregates(aggs []*AggregatedRecord, op string, databases []string) []*AggregatedRecord {
	var out []*AggregatedRecord
	seen := make(map[string]bool)
	for _, db := range databases {
		for _, agg := range aggs {
			if agg.Operation == op && agg.Database == db {
				out = append(out, agg)
				seen[db] = true
				break
			}
		}
	}
	for _, agg := range aggs {
		if agg.Operation == op && !seen[agg.Database] {
			out = append(out, agg)
			seen[agg.Database] = true
		}
	}
	return out
}
