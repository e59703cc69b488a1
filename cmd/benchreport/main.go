// Copyright 2025 The NoSQLBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchreport analyzes NoSQL benchmark results and produces reports.
//
// Usage:
//
//	benchreport [-config file] [-range duration] [-no-pdf] [-upload]
//
// Benchreport fetches every scenario's samples from InfluxDB, prints
// the analysis to standard output, and writes chart images and a PDF
// report to the configured output directory. With -upload the output
// directory is also copied to the configured GCS bucket.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/ensa-lab/nosqlbench/cnf"
	"github.com/ensa-lab/nosqlbench/report"
	"github.com/ensa-lab/nosqlbench/report/chart"
	"github.com/ensa-lab/nosqlbench/report/pdf"
	"github.com/ensa-lab/nosqlbench/scenario"
	"github.com/ensa-lab/nosqlbench/storage/influx"
)

var (
	configPath = flag.String("config", "conf.yml", "read configuration from `file`")
	timeRange  = flag.String("range", "", "override the configured time range (a Flux duration, e.g. -24h)")
	noPDF      = flag.Bool("no-pdf", false, "skip PDF generation")
	upload     = flag.Bool("upload", false, "upload the output directory to the configured GCS bucket")
	keyPath    = flag.String("key", "", "GCS service account key `file` (with -upload)")
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage of benchreport:
	benchreport [flags]
`)
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	conf := cnf.LoadConfig(*configPath)
	cnf.ValidateAndDefaults(conf)
	if *timeRange != "" {
		conf.TimeRange = *timeRange
	}

	ctx := context.Background()
	client := influx.NewClient(conf.Influx, log)
	defer client.Close()

	catalog := scenario.Default()
	a := report.NewAnalysis(conf.Databases)
	a.Source = fmt.Sprintf("influx bucket %s (%s)", conf.Influx.Bucket, conf.TimeRange)
	for _, spec := range catalog.Scenarios() {
		records, err := client.Scenario(ctx, spec.ID, conf.TimeRange)
		if err != nil {
			log.Error().Err(err).Str("scenario", spec.ID).Msg("query failed")
			records = nil
		}
		a.Add(spec, records)
	}

	var buf bytes.Buffer
	report.FormatText(&buf, a)
	os.Stdout.Write(buf.Bytes())

	var chartPaths []string
	if !conf.Report.NoCharts {
		var err error
		chartPaths, err = chart.RenderAll(a, conf.Report.OutputDir)
		if err != nil {
			log.Fatal().Err(err).Msg("rendering charts failed")
		}
	}

	if !*noPDF {
		if err := os.MkdirAll(conf.Report.OutputDir, 0o755); err != nil {
			log.Fatal().Err(err).Msg("creating output directory failed")
		}
		path := filepath.Join(conf.Report.OutputDir, "nosql_benchmark_report.pdf")
		if err := pdf.Write(a, chartPaths, path); err != nil {
			log.Fatal().Err(err).Msg("writing PDF failed")
		}
		log.Info().Str("path", path).Msg("PDF report written")
	}

	if *upload {
		if conf.Report.UploadBucket == "" {
			log.Fatal().Msg("report.uploadBucket not configured")
		}
		up, err := report.NewUploader(ctx, conf.Report.UploadBucket, os.Getenv("GCS_ACCESS_TOKEN"), *keyPath, log)
		if err != nil {
			log.Fatal().Err(err).Msg("connecting to GCS failed")
		}
		defer up.Close()
		prefix := time.Now().Format("20060102-150405")
		if err := up.UploadDir(ctx, conf.Report.OutputDir, prefix); err != nil {
			log.Fatal().Err(err).Msg("uploading reports failed")
		}
	}
}
