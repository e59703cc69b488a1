// Copyright 2025 The NoSQLBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"fmt"
	"math"
)

// Missing is the sentinel rendered for an absent measurement. A field
// a record never carried must read "N/A", not zero.
const Missing = "N/A"

// Format renders val in the precise display form for kind:
//
//	Duration       0.0023s
//	LatencyMs      1.2345ms
//	ThroughputOps  1500 ops/sec
//	Percentage     42.50%
//	PlainNumber    42.50
//
// NaN values (an undefined statistic, such as the standard deviation
// of a single sample) render as Missing.
func Format(val float64, k Kind) string {
	if math.IsNaN(val) {
		return Missing
	}
	switch k {
	case Duration:
		return fmt.Sprintf("%.4fs", val)
	case LatencyMs:
		return fmt.Sprintf("%.4fms", val)
	case ThroughputOps:
		return fmt.Sprintf("%.0f ops/sec", val)
	case Percentage:
		return fmt.Sprintf("%.2f%%", val)
	}
	return fmt.Sprintf("%.2f", val)
}

// FormatCompact renders val in a compact display form for kind.
// Sub-second durations are expressed in milliseconds, and large
// throughputs are abbreviated with K and M suffixes. Other kinds
// format as in Format.
func FormatCompact(val float64, k Kind) string {
	if math.IsNaN(val) {
		return Missing
	}
	switch k {
	case Duration:
		if val >= 1 {
			return fmt.Sprintf("%.2f s", val)
		}
		return fmt.Sprintf("%.3f ms", val*1000)
	case ThroughputOps:
		switch {
		case val >= 1e6:
			return fmt.Sprintf("%.2fM", val/1e6)
		case val >= 1e3:
			return fmt.Sprintf("%.1fK", val/1e3)
		}
		return fmt.Sprintf("%.0f", val)
	}
	return Format(val, k)
}
