// Copyright 2025 The NoSQLBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmath computes summary statistics over repeated
// benchmark measurements.
//
// The statistics are deliberately modest: mean, min, max, and sample
// standard deviation. Partial data is the expected common case, so
// an undefined statistic is reported as NaN rather than an error.
package benchmath

import (
	"encoding/json"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// A Sample is a set of repeated measurements of one field within one
// group.
type Sample struct {
	// Values are the measured values, in ascending order.
	Values []float64
}

// NewSample constructs a Sample from a set of measurements. The input
// slice is not retained; values are copied and sorted for fast order
// statistics.
func NewSample(values []float64) *Sample {
	vs := append([]float64(nil), values...)
	sort.Float64s(vs)
	return &Sample{Values: vs}
}

// A Summary summarizes a Sample.
type Summary struct {
	Mean float64
	Min  float64
	Max  float64

	// Std is the Bessel-corrected sample standard deviation. It is
	// NaN when N < 2, since a single sample has no spread to
	// estimate; callers render it as "N/A", never as zero.
	Std float64

	// N is the number of measurements summarized.
	N int
}

// StdDefined reports whether Std holds a defined value.
func (s Summary) StdDefined() bool {
	return s.N >= 2
}

// summaryJSON mirrors Summary with a nullable Std, since NaN is not
// representable in JSON.
type summaryJSON struct {
	Mean float64  `json:"mean"`
	Min  float64  `json:"min"`
	Max  float64  `json:"max"`
	Std  *float64 `json:"std"`
	N    int      `json:"n"`
}

func (s Summary) MarshalJSON() ([]byte, error) {
	j := summaryJSON{Mean: s.Mean, Min: s.Min, Max: s.Max, N: s.N}
	if !math.IsNaN(s.Std) {
		std := s.Std
		j.Std = &std
	}
	return json.Marshal(j)
}

func (s *Summary) UnmarshalJSON(data []byte) error {
	var j summaryJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	s.Mean, s.Min, s.Max, s.N = j.Mean, j.Min, j.Max, j.N
	s.Std = math.NaN()
	if j.Std != nil {
		s.Std = *j.Std
	}
	return nil
}

// Summary computes the summary statistics of s. An empty sample
// yields a zero Summary with N == 0.
func (s *Sample) Summary() Summary {
	n := len(s.Values)
	if n == 0 {
		return Summary{Std: math.NaN()}
	}
	min, max := stats.Bounds(s.Values)
	sum := Summary{
		Mean: stats.Mean(s.Values),
		Min:  min,
		Max:  max,
		Std:  math.NaN(),
		N:    n,
	}
	if n >= 2 {
		sum.Std = stats.StdDev(s.Values)
	}
	return sum
}
