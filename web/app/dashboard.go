// Copyright 2025 The NoSQLBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"net/http"

	"github.com/google/safehtml/template"

	"github.com/ensa-lab/nosqlbench/benchproc"
	"github.com/ensa-lab/nosqlbench/benchstat"
	"github.com/ensa-lab/nosqlbench/scenario"
)

var dashboardTmpl = template.Must(template.New("dashboard").ParseFromTrustedTemplate(template.MakeTrustedTemplate(`<!DOCTYPE html>
<html>
<head>
<title>NoSQL Benchmark Dashboard</title>
<style>
body { font-family: sans-serif; margin: 2em; }
h2 { border-bottom: 1px solid #ccc; padding-bottom: 0.2em; }
table { border-collapse: collapse; margin: 0.5em 0 1.5em; }
th, td { border: 1px solid #ccc; padding: 0.3em 0.8em; }
th { background: #2c3e50; color: #fff; }
td.num { text-align: right; }
.missing { color: #888; font-style: italic; }
</style>
</head>
<body>
<h1>NoSQL Benchmark Dashboard</h1>
{{range .Sections}}
<h2>{{.Spec.Name}} <small>({{.Spec.ID}})</small></h2>
{{if .Err}}<p class="missing">loading records failed</p>
{{else if not .Tables}}<p class="missing">no data for this scenario</p>
{{else}}{{range .Tables}}
{{if .Operation}}<h3>{{.Operation}}</h3>{{end}}
<table>
<tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr><td>{{.Database}}</td>{{range .Cells}}<td class="num">{{.}}</td>{{end}}</tr>{{end}}
</table>
{{end}}{{end}}
{{end}}
</body>
</html>
`)))

type dashboardSection struct {
	Spec   scenario.Spec
	Tables []*benchstat.Table
	Err    error
}

// dashboard serves an HTML overview of every scenario with compact
// per-operation tables.
func (a *App) dashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	var data struct {
		Sections []dashboardSection
	}
	for _, spec := range a.Catalog.Scenarios() {
		sec := dashboardSection{Spec: spec}
		records, err := a.Loader.Scenario(r.Context(), spec.ID, a.TimeRange)
		if err != nil {
			a.Log.Error().Err(err).Str("scenario", spec.ID).Msg("loading records failed")
			sec.Err = err
		} else if len(records) > 0 {
			aggs := benchstat.Aggregate(benchproc.Group(records, spec), spec)
			sec.Tables = benchstat.Tables(aggs, spec, a.Databases, true)
		}
		data.Sections = append(data.Sections, sec)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(w, data); err != nil {
		a.Log.Error().Err(err).Msg("rendering dashboard failed")
	}
}
