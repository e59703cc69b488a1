// Copyright 2025 The NoSQLBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchweb serves the benchmark results dashboard.
//
// Usage:
//
//	benchweb [-config file] [-addr address] [-archive]
//
// By default records are loaded live from InfluxDB. With -archive the
// dashboard reads from the SQL archive written by benchfetch instead.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"

	"github.com/ensa-lab/nosqlbench/benchfmt"
	"github.com/ensa-lab/nosqlbench/cnf"
	"github.com/ensa-lab/nosqlbench/scenario"
	"github.com/ensa-lab/nosqlbench/storage/db"
	_ "github.com/ensa-lab/nosqlbench/storage/db/sqlite3"
	"github.com/ensa-lab/nosqlbench/storage/influx"
	"github.com/ensa-lab/nosqlbench/web/app"
)

var (
	configPath  = flag.String("config", "conf.yml", "read configuration from `file`")
	addr        = flag.String("addr", "", "listen on `address` instead of the configured one")
	fromArchive = flag.Bool("archive", false, "serve records from the SQL archive instead of InfluxDB")
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage of benchweb:
	benchweb [flags]
`)
	flag.PrintDefaults()
	os.Exit(2)
}

// archiveLoader adapts the SQL archive to the dashboard's loader
// interface. The time range is ignored; the archive serves everything
// it holds.
type archiveLoader struct {
	db *db.DB
}

func (l archiveLoader) Scenario(ctx context.Context, id, timeRange string) ([]*benchfmt.Record, error) {
	return l.db.Scenario(ctx, id)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	conf := cnf.LoadConfig(*configPath)
	cnf.ValidateAndDefaults(conf)
	if *addr != "" {
		conf.ListenAddress = *addr
	}

	var loader app.Loader
	if *fromArchive {
		archive, err := db.OpenSQL(conf.Archive.Driver, conf.Archive.DSN)
		if err != nil {
			log.Fatal().Err(err).Msg("opening archive failed")
		}
		defer archive.Close()
		loader = archiveLoader{db: archive}
	} else {
		client := influx.NewClient(conf.Influx, log)
		defer client.Close()
		loader = client
	}

	a := &app.App{
		Catalog:   scenario.Default(),
		Databases: conf.Databases,
		Loader:    loader,
		TimeRange: conf.TimeRange,
		Log:       log,
	}
	mux := http.NewServeMux()
	a.RegisterOnMux(mux)

	log.Info().Str("addr", conf.ListenAddress).Msg("serving dashboard")
	if err := http.ListenAndServe(conf.ListenAddress, mux); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
