// Copyright 2025 The NoSQLBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenario

import (
	"errors"
	"testing"
)

func TestCatalogOrder(t *testing.T) {
	c := New(
		Spec{ID: "b", Name: "B"},
		Spec{ID: "a", Name: "A"},
		Spec{ID: "c", Name: "C"},
	)
	var got []string
	for _, s := range c.Scenarios() {
		got = append(got, s.ID)
	}
	want := []string{"b", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %d scenarios, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("scenario %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCatalogLookup(t *testing.T) {
	c := New(Spec{ID: "s1", Fields: []string{"f1", "f2"}, Operations: []string{"op"}})

	s, err := c.Lookup("s1")
	if err != nil {
		t.Fatalf("Lookup(s1): %v", err)
	}
	if s.ID != "s1" || len(s.Fields) != 2 {
		t.Errorf("Lookup(s1) = %+v", s)
	}

	_, err = c.Lookup("nope")
	var unknown *UnknownScenarioError
	if !errors.As(err, &unknown) {
		t.Fatalf("Lookup(nope) error = %v, want *UnknownScenarioError", err)
	}
	if unknown.ID != "nope" {
		t.Errorf("error ID = %q, want %q", unknown.ID, "nope")
	}
}

func TestCatalogFieldsUnknown(t *testing.T) {
	c := New(Spec{ID: "s1", Fields: []string{"f"}})
	if got := c.Fields("absent"); got != nil {
		t.Errorf("Fields(absent) = %v, want nil", got)
	}
	if got := c.Operations("absent"); got != nil {
		t.Errorf("Operations(absent) = %v, want nil", got)
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	if c.Len() != 6 {
		t.Fatalf("Default catalog has %d scenarios, want 6", c.Len())
	}

	crud, err := c.Lookup("scenario1_crud")
	if err != nil {
		t.Fatalf("Lookup(scenario1_crud): %v", err)
	}
	if !crud.HasOperations() {
		t.Error("scenario1_crud should have operations")
	}
	if len(crud.Operations) != 4 || crud.Operations[0] != "insert" {
		t.Errorf("scenario1_crud operations = %v", crud.Operations)
	}

	iot, err := c.Lookup("scenario2_iot")
	if err != nil {
		t.Fatalf("Lookup(scenario2_iot): %v", err)
	}
	if iot.HasOperations() {
		t.Error("scenario2_iot should not have operations")
	}
}

func TestScenariosCopy(t *testing.T) {
	c := New(Spec{ID: "s1"}, Spec{ID: "s2"})
	specs := c.Scenarios()
	specs[0] = Spec{ID: "mutated"}
	if _, err := c.Lookup("s1"); err != nil {
		t.Error("mutating the returned slice changed the catalog")
	}
}
