// Copyright 2025 The NoSQLBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchfmt defines the raw measurement record model shared by
// the query layer, the archive store, and the aggregation engine.
//
// Records arrive from a time-series query already pivoted into flat
// rows: one row per sample, one column per measured field. A record
// may be partial; a crashed run or a database that does not support
// an operation is the common case, not an error.
package benchfmt

import "time"

// A Record is a single benchmark sample: the measured field values of
// one run of one scenario against one database.
//
// Records are treated as immutable once produced by the query layer.
// Consumers that need a private copy use Clone.
type Record struct {
	// Database is the database the sample was measured against.
	// Empty means the sample arrived without a database tag; the
	// grouper buckets such samples under "Unknown" rather than
	// dropping them.
	Database string `json:"database"`

	// Operation is the operation the sample measures, for scenarios
	// subdivided into operations. Empty otherwise.
	Operation string `json:"operation,omitempty"`

	// Time is the sample timestamp from the time-series store, or
	// the zero time if not known.
	Time time.Time `json:"time"`

	// Values maps field name to measured value. Fields the run did
	// not produce are simply absent.
	Values map[string]float64 `json:"values"`
}

// Value returns the measurement of the named field and whether the
// record carries it.
func (r *Record) Value(field string) (float64, bool) {
	v, ok := r.Values[field]
	return v, ok
}

// Has reports whether the record carries the named field.
func (r *Record) Has(field string) bool {
	_, ok := r.Values[field]
	return ok
}

// Clone returns a copy of r that shares no state with r.
func (r *Record) Clone() *Record {
	r2 := *r
	r2.Values = make(map[string]float64, len(r.Values))
	for k, v := range r.Values {
		r2.Values[k] = v
	}
	return &r2
}
