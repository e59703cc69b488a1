// Copyright 2025 The NoSQLBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app implements the benchmark results dashboard. Combine an
// App with a record loader and call RegisterOnMux to connect it with
// an HTTP server.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/ensa-lab/nosqlbench/benchfmt"
	"github.com/ensa-lab/nosqlbench/benchproc"
	"github.com/ensa-lab/nosqlbench/benchstat"
	"github.com/ensa-lab/nosqlbench/scenario"
)

// A Loader fetches the records of one scenario. It is implemented by
// the influx client and by archive-backed adapters.
type Loader interface {
	Scenario(ctx context.Context, scenarioID, timeRange string) ([]*benchfmt.Record, error)
}

// App manages the dashboard logic. Construct an App instance using a
// literal and call RegisterOnMux to connect it with an HTTP server.
type App struct {
	Catalog   *scenario.Catalog
	Databases []string
	Loader    Loader

	// TimeRange is the Flux duration queried by every page and API
	// call, e.g. "-7d".
	TimeRange string

	Log zerolog.Logger
}

// RegisterOnMux registers the app's URLs on mux.
func (a *App) RegisterOnMux(mux *http.ServeMux) {
	mux.HandleFunc("/", a.dashboard)
	mux.HandleFunc("/api/scenarios", a.scenarios)
	mux.HandleFunc("/api/aggregates", a.aggregates)
	mux.HandleFunc("/api/ranking", a.ranking)
}

// lookup resolves the scenario named in the request's "scenario"
// parameter. On failure it writes the error response and returns
// false.
func (a *App) lookup(w http.ResponseWriter, r *http.Request) (scenario.Spec, bool) {
	spec, err := a.Catalog.Lookup(r.FormValue("scenario"))
	if err != nil {
		var unknown *scenario.UnknownScenarioError
		if errors.As(err, &unknown) {
			http.Error(w, err.Error(), http.StatusNotFound)
		} else {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
		return scenario.Spec{}, false
	}
	return spec, true
}

func (a *App) load(w http.ResponseWriter, r *http.Request, spec scenario.Spec) ([]*benchfmt.Record, bool) {
	records, err := a.Loader.Scenario(r.Context(), spec.ID, a.TimeRange)
	if err != nil {
		a.Log.Error().Err(err).Str("scenario", spec.ID).Msg("loading records failed")
		http.Error(w, "loading records failed", http.StatusInternalServerError)
		return nil, false
	}
	return records, true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// scenarios serves the catalog as JSON.
func (a *App) scenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, a.Catalog.Scenarios())
}

// aggregates serves one scenario's aggregated records as JSON.
func (a *App) aggregates(w http.ResponseWriter, r *http.Request) {
	spec, ok := a.lookup(w, r)
	if !ok {
		return
	}
	records, ok := a.load(w, r, spec)
	if !ok {
		return
	}
	aggs := benchstat.Aggregate(benchproc.Group(records, spec), spec)
	writeJSON(w, aggs)
}

// ranking serves one cross-database ranking as JSON. Parameters:
// scenario, field, operation (optional), direction (optional "asc" or
// "desc", only honored for ambiguous field kinds).
func (a *App) ranking(w http.ResponseWriter, r *http.Request) {
	spec, ok := a.lookup(w, r)
	if !ok {
		return
	}
	field := r.FormValue("field")
	if field == "" {
		http.Error(w, "missing field parameter", http.StatusBadRequest)
		return
	}
	records, ok := a.load(w, r, spec)
	if !ok {
		return
	}
	opts := benchstat.CompareOptions{Operation: r.FormValue("operation")}
	switch r.FormValue("direction") {
	case "":
	case "asc":
		opts.Direction = benchstat.Ascending
	case "desc":
		opts.Direction = benchstat.Descending
	default:
		http.Error(w, "direction must be asc or desc", http.StatusBadRequest)
		return
	}
	writeJSON(w, benchstat.Compare(records, field, opts))
}
