// Copyright 2025 The NoSQLBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cnf loads and validates the shared configuration of the
// reporting commands.
package cnf

import (
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/ensa-lab/nosqlbench/scenario"
	"github.com/ensa-lab/nosqlbench/storage/influx"
)

const (
	dfltTimeRange     = "-7d"
	dfltArchiveDriver = "sqlite3"
	dfltArchiveDSN    = "benchmarks.db"
	dfltOutputDir     = "results"
	dfltListenAddress = "localhost:8080"
)

// ArchiveConf configures the SQL archive of fetched records.
type ArchiveConf struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// ReportConf configures report generation.
type ReportConf struct {
	// OutputDir receives the generated PDF and chart images.
	OutputDir string `yaml:"outputDir"`
	// NoCharts skips chart rendering.
	NoCharts bool `yaml:"noCharts"`
	// UploadBucket is an optional GCS bucket to copy finished
	// reports to. Empty disables uploading.
	UploadBucket string `yaml:"uploadBucket"`
}

type Conf struct {
	srcPath       string
	Influx        influx.Config `yaml:"influx"`
	Databases     []string      `yaml:"databases"`
	TimeRange     string        `yaml:"timeRange"`
	Archive       ArchiveConf   `yaml:"archive"`
	Report        ReportConf    `yaml:"report"`
	ListenAddress string        `yaml:"listenAddress"`
}

// GetSourcePath returns the path the configuration was loaded from.
func (conf *Conf) GetSourcePath() string {
	return conf.srcPath
}

func LoadConfig(path string) *Conf {
	if path == "" {
		log.Fatal().Msg("Cannot load config - path not specified")
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	var conf Conf
	conf.srcPath = path
	err = yaml.Unmarshal(rawData, &conf)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	ApplyEnviron(&conf)
	return &conf
}

// ApplyEnviron overrides the InfluxDB connection parameters from the
// environment, so that tokens need not live in the config file.
func ApplyEnviron(conf *Conf) {
	if v := os.Getenv("INFLUX_URL"); v != "" {
		conf.Influx.URL = v
	}
	if v := os.Getenv("INFLUX_TOKEN"); v != "" {
		conf.Influx.Token = v
	}
	if v := os.Getenv("INFLUX_ORG"); v != "" {
		conf.Influx.Org = v
	}
	if v := os.Getenv("INFLUX_BUCKET"); v != "" {
		conf.Influx.Bucket = v
	}
}

func ValidateAndDefaults(conf *Conf) {
	if conf.Influx.URL == "" {
		log.Fatal().Msg("influx.url not specified")
	}
	if len(conf.Databases) == 0 {
		conf.Databases = append([]string(nil), scenario.DefaultDatabases...)
		log.Warn().Strs("databases", conf.Databases).Msg("databases not specified, using defaults")
	}
	if conf.TimeRange == "" {
		conf.TimeRange = dfltTimeRange
		log.Warn().Msgf("timeRange not specified, using default: %s", dfltTimeRange)
	}
	if conf.Archive.Driver == "" {
		conf.Archive.Driver = dfltArchiveDriver
		conf.Archive.DSN = dfltArchiveDSN
		log.Warn().Msgf("archive not specified, using %s %s", dfltArchiveDriver, dfltArchiveDSN)
	}
	if conf.Report.OutputDir == "" {
		conf.Report.OutputDir = dfltOutputDir
	}
	if conf.ListenAddress == "" {
		conf.ListenAddress = dfltListenAddress
	}
}
