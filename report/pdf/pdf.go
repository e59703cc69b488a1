// Copyright 2025 The NoSQLBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pdf writes an analysis as a PDF document: a cover page, one
// section per scenario with its result tables, the comparison
// rankings, and the chart images when available.
package pdf

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/ensa-lab/nosqlbench/benchstat"
	"github.com/ensa-lab/nosqlbench/benchunit"
	"github.com/ensa-lab/nosqlbench/report"
)

const (
	pageWidth  = 210.0 // A4, mm
	marginLR   = 15.0
	usableW    = pageWidth - 2*marginLR
	rowHeight  = 7.0
	chartWidth = 160.0
)

// Write renders the analysis to a PDF file at path. chartPaths names
// PNG files to embed in the comparison section; missing or empty is
// allowed.
func Write(a *report.Analysis, chartPaths []string, path string) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(marginLR, 20, marginLR)
	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Helvetica", "I", 8)
		doc.CellFormat(0, 10, fmt.Sprintf("Page %d", doc.PageNo()), "", 0, "C", false, 0, "")
	})

	cover(doc, a)
	for _, sr := range a.Scenarios {
		scenarioSection(doc, sr)
	}
	comparisonSection(doc, a, chartPaths)

	return doc.OutputFileAndClose(path)
}

func cover(doc *fpdf.Fpdf, a *report.Analysis) {
	doc.AddPage()
	doc.SetY(80)
	doc.SetFont("Helvetica", "B", 24)
	doc.CellFormat(0, 12, "NoSQL Benchmark Report", "", 1, "C", false, 0, "")
	doc.Ln(4)
	doc.SetFont("Helvetica", "", 12)
	doc.CellFormat(0, 8, time.Now().Format("2 January 2006"), "", 1, "C", false, 0, "")
	doc.Ln(8)
	doc.CellFormat(0, 8, "Databases: "+strings.Join(a.Databases, ", "), "", 1, "C", false, 0, "")

	var withData int
	for _, sr := range a.Scenarios {
		if len(sr.Records) > 0 {
			withData++
		}
	}
	doc.CellFormat(0, 8, fmt.Sprintf("Scenarios with data: %d of %d", withData, len(a.Scenarios)), "", 1, "C", false, 0, "")
	if a.Source != "" {
		doc.CellFormat(0, 8, "Source: "+a.Source, "", 1, "C", false, 0, "")
	}
}

func scenarioSection(doc *fpdf.Fpdf, sr *report.ScenarioResult) {
	doc.AddPage()
	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, sr.Spec.Name, "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(90, 90, 90)
	doc.CellFormat(0, 6, sr.Spec.ID, "", 1, "L", false, 0, "")
	if sr.Spec.Description != "" {
		doc.MultiCell(0, 5, sr.Spec.Description, "", "L", false)
	}
	doc.SetTextColor(0, 0, 0)
	doc.Ln(4)

	if len(sr.Records) == 0 {
		doc.SetFont("Helvetica", "I", 11)
		doc.CellFormat(0, 8, "No data recorded for this scenario.", "", 1, "L", false, 0, "")
		return
	}

	for _, t := range sr.Tables {
		if t.Operation != "" {
			doc.SetFont("Helvetica", "B", 11)
			doc.CellFormat(0, 8, strings.ToUpper(t.Operation), "", 1, "L", false, 0, "")
		}
		table(doc, t)
		doc.Ln(4)
	}
}

func table(doc *fpdf.Fpdf, t *benchstat.Table) {
	colW := usableW / float64(len(t.Header))

	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(44, 62, 80)
	doc.SetTextColor(255, 255, 255)
	for _, h := range t.Header {
		doc.CellFormat(colW, rowHeight, h, "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(0, 0, 0)
	for i, row := range t.Rows {
		fill := i%2 == 1
		doc.SetFillColor(236, 240, 241)
		doc.CellFormat(colW, rowHeight, row.Database, "1", 0, "L", fill, 0, "")
		for _, cell := range row.Cells {
			doc.CellFormat(colW, rowHeight, cell, "1", 0, "R", fill, 0, "")
		}
		doc.Ln(-1)
	}
}

func comparisonSection(doc *fpdf.Fpdf, a *report.Analysis, chartPaths []string) {
	doc.AddPage()
	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, "Database Performance Comparison", "", 1, "L", false, 0, "")
	doc.Ln(2)

	chart := 0
	for _, c := range report.DefaultComparisons {
		rk := a.Ranking(c)
		if rk == nil {
			continue
		}
		note := "lower is better"
		if rk.Descending {
			note = "higher is better"
		}
		doc.SetFont("Helvetica", "B", 12)
		doc.CellFormat(0, 8, fmt.Sprintf("%s (%s)", c.Title, note), "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 10)
		for _, e := range rk.Entries {
			doc.CellFormat(0, 6, fmt.Sprintf("%d. %s: %s", e.Rank, e.Database, benchunit.Format(e.Value, rk.Kind)), "", 1, "L", false, 0, "")
		}
		if chart < len(chartPaths) {
			doc.Ln(2)
			doc.ImageOptions(chartPaths[chart], (pageWidth-chartWidth)/2, -1, chartWidth, 0, true, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
			chart++
		}
		doc.Ln(6)
	}
}
