// Copyright 2025 The NoSQLBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders aggregated benchmark results as console
// text, chart images, and a PDF document.
package report

import (
	"github.com/ensa-lab/nosqlbench/benchfmt"
	"github.com/ensa-lab/nosqlbench/benchproc"
	"github.com/ensa-lab/nosqlbench/benchstat"
	"github.com/ensa-lab/nosqlbench/scenario"
)

// A ScenarioResult holds one scenario's fetched records and the
// statistics derived from them.
type ScenarioResult struct {
	Spec       scenario.Spec
	Records    []*benchfmt.Record
	Aggregates []*benchstat.AggregatedRecord
	Tables     []*benchstat.Table
}

// An Analysis collects the results of every scenario that produced
// data, in catalog order. All rendering surfaces consume an Analysis;
// none of them re-derive statistics.
type Analysis struct {
	Databases []string
	Scenarios []*ScenarioResult

	// Source describes where the records came from, for the
	// report's summary section.
	Source string
}

// NewAnalysis returns an empty analysis for the given canonical
// database order.
func NewAnalysis(databases []string) *Analysis {
	return &Analysis{Databases: databases}
}

// Add aggregates records for one scenario and appends the result.
// Scenarios without records are recorded too, so the summary can
// report them as missing.
func (a *Analysis) Add(spec scenario.Spec, records []*benchfmt.Record) *ScenarioResult {
	sr := &ScenarioResult{Spec: spec, Records: records}
	if len(records) > 0 {
		aggs := benchstat.Aggregate(benchproc.Group(records, spec), spec)
		sr.Aggregates = aggs
		sr.Tables = benchstat.Tables(aggs, spec, a.Databases, false)
	}
	a.Scenarios = append(a.Scenarios, sr)
	return sr
}

// Scenario returns the result for the named scenario, or nil.
func (a *Analysis) Scenario(id string) *ScenarioResult {
	for _, sr := range a.Scenarios {
		if sr.Spec.ID == id {
			return sr
		}
	}
	return nil
}

// A Comparison names one cross-database ranking to include in the
// comparison section of a report.
type Comparison struct {
	Scenario  string
	Field     string
	Operation string // "" for scenarios without operations
	Title     string
}

// DefaultComparisons is the standard comparison section: the headline
// metrics readers ask about first.
var DefaultComparisons = []Comparison{
	{"scenario1_crud", "latency_ms", "insert", "CRUD Insert Latency"},
	{"scenario1_crud", "latency_ms", "read", "CRUD Read Latency"},
	{"scenario2_iot", "insert_throughput", "", "IoT Insert Throughput"},
	{"scenario4_keyvalue", "get_latency_ms", "", "Key-Value GET Latency"},
}

// Ranking evaluates one comparison against the analysis. It returns
// nil when the scenario produced no data or no database carried the
// field.
func (a *Analysis) Ranking(c Comparison) *benchstat.Ranking {
	sr := a.Scenario(c.Scenario)
	if sr == nil || len(sr.Records) == 0 {
		return nil
	}
	rk := benchstat.Compare(sr.Records, c.Field, benchstat.CompareOptions{Operation: c.Operation})
	if len(rk.Entries) == 0 {
		return nil
	}
	return rk
}
