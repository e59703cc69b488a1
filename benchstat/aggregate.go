// Copyright 2025 The NoSQLBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchstat reduces grouped benchmark records into summary
// statistics and cross-database rankings.
//
// This is the single aggregation engine behind the text report, the
// PDF report, and the web dashboard; the surfaces consume its
// structured output and never re-derive grouping, statistics, or
// field classification themselves.
package benchstat

import (
	"github.com/ensa-lab/nosqlbench/benchmath"
	"github.com/ensa-lab/nosqlbench/benchproc"
	"github.com/ensa-lab/nosqlbench/scenario"
)

// An AggregatedRecord holds the per-field summary statistics of one
// (database, operation) group. It is constructed once per group per
// Aggregate call and not mutated afterward.
type AggregatedRecord struct {
	Database  string
	Operation string // "" for scenarios without operations

	// Fields maps field name to its summary. A field carried by no
	// record in the group is absent from the map, not zero.
	Fields map[string]benchmath.Summary
}

// Aggregate reduces each group of g into an AggregatedRecord,
// computing mean, min, max, and sample standard deviation for every
// declared field of spec, over the records that actually carry the
// field. The output preserves the grouping order of g.
func Aggregate(g *benchproc.Grouping, spec scenario.Spec) []*AggregatedRecord {
	var out []*AggregatedRecord
	for _, key := range g.Keys {
		records := g.Groups[key]
		if len(records) == 0 {
			continue
		}
		agg := &AggregatedRecord{
			Database:  key.Database,
			Operation: key.Operation,
			Fields:    make(map[string]benchmath.Summary),
		}
		for _, field := range spec.Fields {
			var values []float64
			for _, r := range records {
				if v, ok := r.Value(field); ok {
					values = append(values, v)
				}
			}
			if len(values) == 0 {
				continue
			}
			agg.Fields[field] = benchmath.NewSample(values).Summary()
		}
		out = append(out, agg)
	}
	return out
}
