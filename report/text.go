// Copyright 2025 The NoSQLBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ensa-lab/nosqlbench/benchstat"
	"github.com/ensa-lab/nosqlbench/benchunit"
)

const ruleWidth = 80

// FormatText appends a fixed-width text rendering of the analysis to
// buf: a banner, one section per scenario, the comparison rankings,
// and a summary.
func FormatText(buf *bytes.Buffer, a *Analysis) {
	banner(buf, "NOSQL BENCHMARK ANALYSIS")

	for _, sr := range a.Scenarios {
		header(buf, fmt.Sprintf("%s (%s)", sr.Spec.Name, sr.Spec.ID))
		if len(sr.Records) == 0 {
			fmt.Fprintf(buf, "\nno data found for this scenario\n")
			continue
		}
		fmt.Fprintf(buf, "\nfound %d measurement(s)\n", len(sr.Records))
		for _, t := range sr.Tables {
			if t.Operation != "" {
				fmt.Fprintf(buf, "\n%s:\n", strings.ToUpper(t.Operation))
			} else {
				fmt.Fprintf(buf, "\n")
			}
			formatTable(buf, t)
		}
	}

	header(buf, "DATABASE PERFORMANCE COMPARISON")
	for _, c := range DefaultComparisons {
		rk := a.Ranking(c)
		if rk == nil {
			continue
		}
		fmt.Fprintf(buf, "\n%s - %s\n", c.Title, directionNote(rk))
		fmt.Fprintf(buf, "%s\n", strings.Repeat("-", ruleWidth))
		for _, e := range rk.Entries {
			fmt.Fprintf(buf, "  %d. %-12s : %12s\n", e.Rank, e.Database, benchunit.Format(e.Value, rk.Kind))
		}
	}

	header(buf, "BENCHMARK SUMMARY")
	var withData, measurements int
	for _, sr := range a.Scenarios {
		if len(sr.Records) > 0 {
			withData++
			measurements += len(sr.Records)
		}
	}
	fmt.Fprintf(buf, "\n  scenarios with data: %d/%d\n", withData, len(a.Scenarios))
	fmt.Fprintf(buf, "  total measurements:  %d\n", measurements)
	fmt.Fprintf(buf, "  databases tested:    %s\n", strings.Join(a.Databases, ", "))
	if a.Source != "" {
		fmt.Fprintf(buf, "  source:              %s\n", a.Source)
	}
	for _, sr := range a.Scenarios {
		if len(sr.Records) == 0 {
			fmt.Fprintf(buf, "  missing:             %s (%s)\n", sr.Spec.Name, sr.Spec.ID)
		}
	}
}

func directionNote(rk *benchstat.Ranking) string {
	if rk.Descending {
		return "higher is better"
	}
	return "lower is better"
}

func banner(buf *bytes.Buffer, title string) {
	line := strings.Repeat("#", ruleWidth)
	pad := ruleWidth - 2 - len(title)
	fmt.Fprintf(buf, "%s\n#%s#\n#%s%s%s#\n#%s#\n%s\n",
		line,
		strings.Repeat(" ", ruleWidth-2),
		strings.Repeat(" ", pad/2), title, strings.Repeat(" ", pad-pad/2),
		strings.Repeat(" ", ruleWidth-2),
		line)
}

func header(buf *bytes.Buffer, title string) {
	fmt.Fprintf(buf, "\n%s\n  %s\n%s\n", strings.Repeat("=", ruleWidth), title, strings.Repeat("=", ruleWidth))
}

// formatTable writes one table with measured column widths: the first
// column left-aligned, values right-aligned.
func formatTable(buf *bytes.Buffer, t *benchstat.Table) {
	rows := [][]string{t.Header}
	for _, r := range t.Rows {
		rows = append(rows, append([]string{r.Database}, r.Cells...))
	}

	var max []int
	for _, row := range rows {
		for len(max) < len(row) {
			max = append(max, 0)
		}
		for i, s := range row {
			if n := utf8.RuneCountInString(s); max[i] < n {
				max[i] = n
			}
		}
	}

	for ri, row := range rows {
		for i, s := range row {
			switch {
			case i == 0:
				fmt.Fprintf(buf, "%-*s", max[i], s)
			case ri == 0:
				fmt.Fprintf(buf, "  %-*s", max[i], s)
			default:
				fmt.Fprintf(buf, "  %*s", max[i], s)
			}
		}
		fmt.Fprintf(buf, "\n")
	}
}
