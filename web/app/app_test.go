// Copyright 2025 The NoSQLBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ensa-lab/nosqlbench/benchfmt"
	"github.com/ensa-lab/nosqlbench/benchstat"
	"github.com/ensa-lab/nosqlbench/scenario"
)

// fakeLoader serves canned records per scenario and fails for
// scenarios listed in broken.
type fakeLoader struct {
	records map[string][]*benchfmt.Record
	broken  map[string]bool
}

func (l *fakeLoader) Scenario(ctx context.Context, id, timeRange string) ([]*benchfmt.Record, error) {
	if l.broken[id] {
		return nil, errors.New("influx unavailable")
	}
	return l.records[id], nil
}

func testApp(loader Loader) *App {
	return &App{
		Catalog:   scenario.Default(),
		Databases: []string{"MongoDB", "Redis"},
		Loader:    loader,
		TimeRange: "-7d",
		Log:       zerolog.Nop(),
	}
}

func testServer(t *testing.T, loader Loader) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	testApp(loader).RegisterOnMux(mux)
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func crudRecords() map[string][]*benchfmt.Record {
	return map[string][]*benchfmt.Record{
		"scenario1_crud": {
			{Database: "Redis", Operation: "insert", Values: map[string]float64{"latency_ms": 1.0}},
			{Database: "Redis", Operation: "insert", Values: map[string]float64{"latency_ms": 3.0}},
			{Database: "MongoDB", Operation: "insert", Values: map[string]float64{"latency_ms": 5.0}},
		},
	}
}

func TestDashboard(t *testing.T) {
	ts := testServer(t, &fakeLoader{records: crudRecords()})

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	body := string(raw)
	for _, want := range []string{"CRUD Operations", "Redis", "no data for this scenario"} {
		if !strings.Contains(body, want) {
			t.Errorf("dashboard does not contain %q", want)
		}
	}
}

func TestAggregatesEndpoint(t *testing.T) {
	ts := testServer(t, &fakeLoader{records: crudRecords()})

	resp, err := http.Get(ts.URL + "/api/aggregates?scenario=scenario1_crud")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var aggs []*benchstat.AggregatedRecord
	if err := json.NewDecoder(resp.Body).Decode(&aggs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(aggs) != 2 {
		t.Fatalf("got %d aggregates, want 2", len(aggs))
	}
	if aggs[0].Database != "Redis" || aggs[0].Fields["latency_ms"].Mean != 2.0 {
		t.Errorf("first aggregate = %+v", aggs[0])
	}
}

func TestRankingEndpoint(t *testing.T) {
	ts := testServer(t, &fakeLoader{records: crudRecords()})

	resp, err := http.Get(ts.URL + "/api/ranking?scenario=scenario1_crud&field=latency_ms&operation=insert")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var rk benchstat.Ranking
	if err := json.NewDecoder(resp.Body).Decode(&rk); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rk.Entries) != 2 || rk.Entries[0].Database != "Redis" || rk.Entries[0].Rank != 1 {
		t.Errorf("ranking = %+v", rk)
	}
}

func TestUnknownScenario(t *testing.T) {
	ts := testServer(t, &fakeLoader{})

	resp, err := http.Get(ts.URL + "/api/aggregates?scenario=nope")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestRankingMissingField(t *testing.T) {
	ts := testServer(t, &fakeLoader{})

	resp, err := http.Get(ts.URL + "/api/ranking?scenario=scenario1_crud")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestLoaderFailure(t *testing.T) {
	ts := testServer(t, &fakeLoader{broken: map[string]bool{"scenario1_crud": true}})

	resp, err := http.Get(ts.URL + "/api/aggregates?scenario=scenario1_crud")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
}
