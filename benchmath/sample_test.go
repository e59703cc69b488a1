// Copyright 2025 The NoSQLBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"encoding/json"
	"math"
	"testing"
)

func TestSummary(t *testing.T) {
	s := NewSample([]float64{1.0, 3.0})
	sum := s.Summary()

	if sum.N != 2 {
		t.Errorf("N = %d, want 2", sum.N)
	}
	if sum.Mean != 2.0 {
		t.Errorf("Mean = %v, want 2.0", sum.Mean)
	}
	if sum.Min != 1.0 || sum.Max != 3.0 {
		t.Errorf("Min, Max = %v, %v, want 1.0, 3.0", sum.Min, sum.Max)
	}
	if want := math.Sqrt2; math.Abs(sum.Std-want) > 1e-12 {
		t.Errorf("Std = %v, want %v", sum.Std, want)
	}
	if !sum.StdDefined() {
		t.Error("StdDefined() = false, want true")
	}
}

func TestSummarySingleSample(t *testing.T) {
	sum := NewSample([]float64{5.0}).Summary()
	if sum.N != 1 {
		t.Errorf("N = %d, want 1", sum.N)
	}
	if sum.Mean != 5.0 || sum.Min != 5.0 || sum.Max != 5.0 {
		t.Errorf("Mean, Min, Max = %v, %v, %v, want all 5.0", sum.Mean, sum.Min, sum.Max)
	}
	if !math.IsNaN(sum.Std) {
		t.Errorf("Std = %v, want NaN", sum.Std)
	}
	if sum.StdDefined() {
		t.Error("StdDefined() = true, want false")
	}
}

func TestSummaryEmpty(t *testing.T) {
	sum := NewSample(nil).Summary()
	if sum.N != 0 {
		t.Errorf("N = %d, want 0", sum.N)
	}
	if !math.IsNaN(sum.Std) {
		t.Errorf("Std = %v, want NaN", sum.Std)
	}
}

func TestSummaryBounds(t *testing.T) {
	// min <= mean <= max whenever N >= 1.
	for _, values := range [][]float64{
		{1},
		{3, 1, 2},
		{-5, 10, 0.5, 0.5},
		{0, 0, 0},
	} {
		sum := NewSample(values).Summary()
		if !(sum.Min <= sum.Mean && sum.Mean <= sum.Max) {
			t.Errorf("values %v: want Min <= Mean <= Max, got %v, %v, %v",
				values, sum.Min, sum.Mean, sum.Max)
		}
	}
}

func TestSummaryIdempotent(t *testing.T) {
	s := NewSample([]float64{2.5, 1.5, 9.25, 4})
	first := s.Summary()
	for i := 0; i < 3; i++ {
		if got := s.Summary(); got != first {
			t.Fatalf("run %d: Summary() = %+v, want %+v", i, got, first)
		}
	}
}

func TestSummaryJSONUndefinedStd(t *testing.T) {
	// NaN has no JSON representation; an undefined Std must encode
	// as null and survive a round trip.
	sum := NewSample([]float64{5.0}).Summary()
	data, err := json.Marshal(sum)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got Summary
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Mean != 5.0 || got.N != 1 {
		t.Errorf("round trip = %+v", got)
	}
	if !math.IsNaN(got.Std) {
		t.Errorf("Std = %v, want NaN", got.Std)
	}
}

func TestNewSampleDoesNotAliasInput(t *testing.T) {
	in := []float64{3, 1, 2}
	s := NewSample(in)
	if in[0] != 3 {
		t.Errorf("NewSample sorted the caller's slice: %v", in)
	}
	in[0] = 100
	if s.Values[2] != 3 {
		t.Errorf("sample aliases caller's slice: %v", s.Values)
	}
}
