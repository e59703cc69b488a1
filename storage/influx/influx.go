// Copyright 2025 The NoSQLBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package influx fetches benchmark samples from the InfluxDB bucket
// the benchmark harness writes to.
package influx

import (
	"context"
	"fmt"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/rs/zerolog"

	"github.com/ensa-lab/nosqlbench/benchfmt"
)

// Config holds the connection parameters for an InfluxDB server.
type Config struct {
	URL    string `yaml:"url"`
	Token  string `yaml:"token"`
	Org    string `yaml:"org"`
	Bucket string `yaml:"bucket"`
}

// A Client fetches benchmark records from InfluxDB. It is safe for
// concurrent use by multiple goroutines.
type Client struct {
	client influxdb2.Client
	query  api.QueryAPI
	bucket string
	log    zerolog.Logger
}

// NewClient connects to the InfluxDB server described by cfg. Close
// must be called when the client is no longer needed.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	client := influxdb2.NewClient(cfg.URL, cfg.Token)
	return &Client{
		client: client,
		query:  client.QueryAPI(cfg.Org),
		bucket: cfg.Bucket,
		log:    log,
	}
}

// Close shuts down the underlying HTTP client.
func (c *Client) Close() {
	c.client.Close()
}

// Scenario fetches every sample recorded for the named scenario
// within timeRange (a Flux duration such as "-7d"). Each row of the
// pivoted result becomes one Record; rows carrying no numeric field
// are dropped.
func (c *Client) Scenario(ctx context.Context, scenarioID, timeRange string) ([]*benchfmt.Record, error) {
	query := fmt.Sprintf(`
		from(bucket: "%s")
		  |> range(start: %s)
		  |> filter(fn: (r) => r._measurement == "%s")
		  |> pivot(rowKey:["_time"], columnKey: ["_field"], valueColumn: "_value")
		  |> sort(columns: ["_time"], desc: false)
	`, c.bucket, timeRange, scenarioID)

	c.log.Debug().Str("scenario", scenarioID).Str("range", timeRange).Msg("querying influx")

	result, err := c.query.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("influx query failed: %w", err)
	}

	var records []*benchfmt.Record
	for result != nil && result.Next() {
		r := recordFromRow(result.Record().Values(), result.Record().Time())
		if r != nil {
			records = append(records, r)
		}
	}
	if result != nil && result.Err() != nil {
		return nil, fmt.Errorf("error reading influx results: %w", result.Err())
	}

	c.log.Debug().Str("scenario", scenarioID).Int("records", len(records)).Msg("fetched records")
	return records, nil
}

// Flux result columns that describe the row rather than carry a
// benchmark value.
var metaKeys = map[string]bool{
	"result":       true,
	"table":        true,
	"_start":       true,
	"_stop":        true,
	"_time":        true,
	"_measurement": true,
	"database":     true,
	"operation":    true,
}

// recordFromRow converts one pivoted Flux row into a Record. The
// database and operation tags become the record's attributes; every
// remaining float64 column becomes a field value. Rows with no float64
// column yield nil.
func recordFromRow(row map[string]interface{}, ts time.Time) *benchfmt.Record {
	r := &benchfmt.Record{Time: ts}
	if db, ok := row["database"].(string); ok {
		r.Database = db
	}
	if op, ok := row["operation"].(string); ok {
		r.Operation = op
	}
	for k, v := range row {
		if metaKeys[k] {
			continue
		}
		f, ok := v.(float64)
		if !ok {
			continue
		}
		if r.Values == nil {
			r.Values = make(map[string]float64)
		}
		r.Values[k] = f
	}
	if len(r.Values) == 0 {
		return nil
	}
	return r
}
