// Copyright 2025 The NoSQLBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit classifies measurement fields and formats numbers
// in the units implied by their classification.
package benchunit

import (
	"fmt"
	"strings"
)

// A Kind is the semantic classification of a measured field. It
// drives the unit and precision used to display values of the field
// and the sort direction used to rank databases on it.
type Kind int

const (
	// PlainNumber is a dimensionless quantity with no implied unit.
	PlainNumber Kind = iota
	// Duration is a time span measured in seconds.
	Duration
	// LatencyMs is a per-operation latency measured in milliseconds.
	LatencyMs
	// ThroughputOps is a rate measured in operations per second.
	ThroughputOps
	// Percentage is a resource utilization in percent.
	Percentage
)

func (k Kind) String() string {
	switch k {
	case PlainNumber:
		return "PlainNumber"
	case Duration:
		return "Duration"
	case LatencyMs:
		return "LatencyMs"
	case ThroughputOps:
		return "ThroughputOps"
	case Percentage:
		return "Percentage"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindOf returns the Kind of the named field.
//
// Field names are free-form per scenario ("insert_time",
// "get_latency_ms", "cpu_percent"), so classification is by substring
// rather than an explicit per-field table. The rules are checked in
// order and the first match wins; the order is load-bearing, since a
// name can match more than one rule ("insert_cpu_time" is a Duration,
// not a Percentage).
func KindOf(field string) Kind {
	switch {
	case strings.Contains(field, "throughput"):
		return ThroughputOps
	case strings.Contains(field, "latency"):
		return LatencyMs
	case strings.Contains(field, "time"):
		return Duration
	case strings.Contains(field, "percent"),
		strings.Contains(field, "cpu"),
		strings.Contains(field, "mem"):
		return Percentage
	}
	return PlainNumber
}

// Better returns whether higher or lower values of kind indicate
// better performance. It returns +1 if higher values are better, -1
// if lower values are better, or 0 if neither direction is inherently
// better (a caller must decide; CPU percentage is usually "lower is
// better" but not universally).
func Better(k Kind) int {
	switch k {
	case Duration, LatencyMs:
		return -1
	case ThroughputOps:
		return 1
	}
	return 0
}
