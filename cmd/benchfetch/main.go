// Copyright 2025 The NoSQLBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchfetch copies benchmark samples from InfluxDB into the SQL
// archive, so reports can later be rebuilt without the time-series
// backend.
//
// Usage:
//
//	benchfetch [-config file] [-range duration]
//
// Each run stores the fetched records under a fresh upload ID.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"

	"github.com/ensa-lab/nosqlbench/cnf"
	"github.com/ensa-lab/nosqlbench/scenario"
	"github.com/ensa-lab/nosqlbench/storage/db"
	_ "github.com/ensa-lab/nosqlbench/storage/db/sqlite3"
	"github.com/ensa-lab/nosqlbench/storage/influx"
)

var (
	configPath = flag.String("config", "conf.yml", "read configuration from `file`")
	timeRange  = flag.String("range", "", "override the configured time range (a Flux duration, e.g. -24h)")
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage of benchfetch:
	benchfetch [flags]
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

	archive, err := db.OpenSQL(conf.Archive.Driver, conf.Archive.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("opening archive failed")
	}
	defer archive.Close()

	u, err := archive.NewUpload(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("creating upload failed")
	}

	var total int
	for _, spec := range scenario.Default().Scenarios() {
		records, err := client.Scenario(ctx, spec.ID, conf.TimeRange)
		if err != nil {
			log.Fatal().Err(err).Str("scenario", spec.ID).Msg("query failed")
		}
		for _, r := range records {
			if err := u.InsertRecord(spec.ID, r); err != nil {
				log.Fatal().Err(err).Str("scenario", spec.ID).Msg("archiving record failed")
			}
		}
		log.Info().Str("scenario", spec.ID).Int("records", len(records)).Msg("archived")
		total += len(records)
	}
	log.Info().Str("upload", u.ID).Int("records", total).Msg("fetch complete")
}
