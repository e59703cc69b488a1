// Copyright 2025 The NoSQLBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenario describes the benchmark scenarios and the
// measurement fields each one produces.
//
// A Catalog is an explicitly constructed, immutable registry of
// scenarios. Its insertion order is significant: it drives the
// section order of every report surface.
package scenario

import "fmt"

// A Spec describes one benchmark scenario.
type Spec struct {
	// ID is the unique scenario key, which is also the measurement
	// name under which the scenario's records are stored in the
	// time-series database (e.g. "scenario1_crud").
	ID string

	// Name is the human-readable scenario name.
	Name string

	// Description is a short description for report surfaces.
	Description string

	// Fields is the ordered list of measured field names.
	Fields []string

	// Operations is the ordered list of operation names that
	// subdivide the scenario, or nil for scenarios measured as a
	// whole. When Operations is non-nil every record is expected to
	// carry an operation attribute; records without one are grouped
	// under an explicit "unknown" operation, never dropped.
	Operations []string
}

// HasOperations reports whether the scenario is subdivided into
// named operations.
func (s Spec) HasOperations() bool {
	return len(s.Operations) > 0
}

// An UnknownScenarioError is returned when a scenario id is looked up
// explicitly but is not in the catalog.
type UnknownScenarioError struct {
	ID string
}

func (e *UnknownScenarioError) Error() string {
	return fmt.Sprintf("unknown scenario %q", e.ID)
}

// A Catalog is an ordered, immutable set of scenario Specs.
type Catalog struct {
	specs []Spec
	byID  map[string]int
}

// New returns a Catalog holding specs in the given order. Later specs
// with a duplicate ID replace earlier ones in lookups but keep the
// original position.
func New(specs ...Spec) *Catalog {
	c := &Catalog{
		specs: append([]Spec(nil), specs...),
		byID:  make(map[string]int, len(specs)),
	}
	for i, s := range c.specs {
		c.byID[s.ID] = i
	}
	return c
}

// Scenarios returns the specs in catalog order. The returned slice is
// a copy; mutating it does not affect the catalog.
func (c *Catalog) Scenarios() []Spec {
	return append([]Spec(nil), c.specs...)
}

// Lookup returns the spec for id, or an *UnknownScenarioError if the
// catalog does not contain it.
func (c *Catalog) Lookup(id string) (Spec, error) {
	i, ok := c.byID[id]
	if !ok {
		return Spec{}, &UnknownScenarioError{ID: id}
	}
	return c.specs[i], nil
}

// Fields returns the declared field names for id, or nil if the
// scenario is unknown. Bulk iteration uses this form; callers that
// need the distinction between "unknown scenario" and "no fields"
// use Lookup.
func (c *Catalog) Fields(id string) []string {
	if i, ok := c.byID[id]; ok {
		return c.specs[i].Fields
	}
	return nil
}

// Operations returns the declared operation names for id, or nil if
// the scenario is unknown or has no operations.
func (c *Catalog) Operations(id string) []string {
	if i, ok := c.byID[id]; ok {
		return c.specs[i].Operations
	}
	return nil
}

// Len returns the number of scenarios in the catalog.
func (c *Catalog) Len() int {
	return len(c.specs)
}
