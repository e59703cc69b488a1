// Copyright 2025 The NoSQLBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"sort"

	"github.com/ensa-lab/nosqlbench/benchfmt"
	"github.com/ensa-lab/nosqlbench/benchmath"
	"github.com/ensa-lab/nosqlbench/benchproc"
	"github.com/ensa-lab/nosqlbench/benchunit"
)

// A RankEntry is one database's position in a Ranking.
type RankEntry struct {
	Database string
	Value    float64
	Rank     int // 1-based
}

// A Ranking orders databases by their value of one field, best
// first. Best means lowest for Duration and LatencyMs fields, highest
// for ThroughputOps fields, and caller's choice (default lowest) for
// Percentage and PlainNumber fields, whose direction is inherently
// ambiguous.
type Ranking struct {
	Field     string
	Operation string // "" if the ranking was not filtered by operation
	Kind      benchunit.Kind

	// Descending reports whether higher values rank first.
	Descending bool

	Entries []RankEntry
}

// A Direction overrides the sort direction of a ranking. It only
// takes effect for field kinds whose direction is ambiguous
// (Percentage, PlainNumber); Duration, LatencyMs, and ThroughputOps
// fields always rank by their inherent direction.
type Direction int

const (
	// DefaultDirection ranks ambiguous kinds ascending.
	DefaultDirection Direction = iota
	// Ascending ranks lower values first.
	Ascending
	// Descending ranks higher values first.
	Descending
)

// CompareOptions configures Compare and CompareAggregates.
type CompareOptions struct {
	// Operation filters raw records to one operation before
	// ranking. Empty means no filter.
	Operation string

	// Direction overrides the sort direction for ambiguous field
	// kinds.
	Direction Direction
}

// Compare ranks databases by the named field over raw records.
// When a database carries several samples of the field, its ranking
// value is their mean. Databases with no sample of the field are
// excluded, never given a worst-rank placeholder. Ties keep the
// first-seen order of the input.
func Compare(records []*benchfmt.Record, field string, opts CompareOptions) *Ranking {
	type acc struct {
		database string
		values   []float64
	}
	if opts.Operation != "" {
		records = benchproc.Filter(records, opts.Operation)
	}
	var order []string
	byDB := make(map[string]*acc)
	for _, r := range records {
		v, ok := r.Value(field)
		if !ok {
			continue
		}
		db := r.Database
		if db == "" {
			db = benchproc.UnknownDatabase
		}
		a := byDB[db]
		if a == nil {
			a = &acc{database: db}
			byDB[db] = a
			order = append(order, db)
		}
		a.values = append(a.values, v)
	}

	rk := newRanking(field, opts)
	rk.Operation = opts.Operation
	for _, db := range order {
		a := byDB[db]
		rk.Entries = append(rk.Entries, RankEntry{
			Database: db,
			Value:    benchmath.NewSample(a.values).Summary().Mean,
		})
	}
	rk.sort()
	return rk
}

// CompareAggregates ranks databases by the mean of the named field
// over already-aggregated records. The operation filter matches the
// AggregatedRecord.Operation attribute.
func CompareAggregates(aggs []*AggregatedRecord, field string, opts CompareOptions) *Ranking {
	rk := newRanking(field, opts)
	rk.Operation = opts.Operation
	for _, agg := range aggs {
		if opts.Operation != "" && agg.Operation != opts.Operation {
			continue
		}
		sum, ok := agg.Fields[field]
		if !ok {
			continue
		}
		rk.Entries = append(rk.Entries, RankEntry{
			Database: agg.Database,
			Value:    sum.Mean,
		})
	}
	rk.sort()
	return rk
}

func newRanking(field string, opts CompareOptions) *Ranking {
	kind := benchunit.KindOf(field)
	desc := false
	switch benchunit.Better(kind) {
	case 1:
		desc = true
	case -1:
		desc = false
	default:
		desc = opts.Direction == Descending
	}
	return &Ranking{Field: field, Kind: kind, Descending: desc}
}

// sort orders the entries by value in the ranking's direction and
// assigns ranks. The sort is stable, so ties keep insertion order.
func (rk *Ranking) sort() {
	sort.SliceStable(rk.Entries, func(i, j int) bool {
		if rk.Descending {
			return rk.Entries[i].Value > rk.Entries[j].Value
		}
		return rk.Entries[i].Value < rk.Entries[j].Value
	})
	for i := range rk.Entries {
		rk.Entries[i].Rank = i + 1
	}
}
