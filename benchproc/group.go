// Copyright 2025 The NoSQLBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchproc groups raw measurement records for aggregation.
//
// Grouping is keyed by (database, operation). For a scenario without
// operations the operation component is always empty and all records
// for a database form one group. Grouping preserves both the input
// order of records within a group and the first-seen order of groups,
// and it never drops a record: samples with a missing database tag go
// to an explicit "Unknown" database, and samples missing an operation
// in a scenario that declares operations go to an "unknown" operation
// bucket rather than silently merging with a named one.
package benchproc

import (
	"github.com/ensa-lab/nosqlbench/benchfmt"
	"github.com/ensa-lab/nosqlbench/scenario"
)

// UnknownDatabase is the bucket for records without a database tag.
const UnknownDatabase = "Unknown"

// UnknownOperation is the bucket for records without an operation tag
// in a scenario that declares operations.
const UnknownOperation = "unknown"

// A Key identifies one group of records: a database and, for
// scenarios with operations, an operation. Keys compare == and are
// usable as map keys.
type Key struct {
	Database  string
	Operation string // "" for scenarios without operations
}

// A Grouping holds records partitioned by Key.
type Grouping struct {
	// Keys lists the group keys in first-seen order.
	Keys []Key

	// Groups maps each key to its records, in input order.
	Groups map[Key][]*benchfmt.Record
}

// Len returns the total number of records across all groups. This
// always equals the length of the input to Group.
func (g *Grouping) Len() int {
	n := 0
	for _, recs := range g.Groups {
		n += len(recs)
	}
	return n
}

// Group partitions records by (database, operation) according to
// spec. If spec declares no operations, the operation attribute of
// the records is ignored and each database forms a single group.
func Group(records []*benchfmt.Record, spec scenario.Spec) *Grouping {
	g := &Grouping{Groups: make(map[Key][]*benchfmt.Record)}
	for _, r := range records {
		key := Key{Database: r.Database}
		if key.Database == "" {
			key.Database = UnknownDatabase
		}
		if spec.HasOperations() {
			key.Operation = r.Operation
			if key.Operation == "" {
				key.Operation = UnknownOperation
			}
		}
		if _, ok := g.Groups[key]; !ok {
			g.Keys = append(g.Keys, key)
		}
		g.Groups[key] = append(g.Groups[key], r)
	}
	return g
}

// Filter returns the records whose operation matches op, preserving
// input order. Records without an operation attribute never match a
// named operation.
func Filter(records []*benchfmt.Record, op string) []*benchfmt.Record {
	var out []*benchfmt.Record
	for _, r := range records {
		if r.Operation == op {
			out = append(out, r)
		}
	}
	return out
}
