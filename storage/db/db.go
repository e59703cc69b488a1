// Copyright 2025 The NoSQLBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db archives benchmark records in a SQL database so that
// reports can be rebuilt without re-querying the time-series backend.
package db

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/ensa-lab/nosqlbench/benchfmt"
)

// DB is a high-level interface to the archive database. It's safe for
// concurrent use by multiple goroutines.
type DB struct {
	sql *sql.DB // underlying database connection
	// prepared statements
	insertUpload *sql.Stmt
	insertRecord *sql.Stmt
}

// OpenSQL creates a DB backed by a SQL database. The parameters are
// the same as the parameters for sql.Open. Only mysql and sqlite3 are
// explicitly supported; other database engines will receive MySQL
// query syntax which may or may not be compatible.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if hook := openHooks[driverName]; hook != nil {
		if err := hook(db); err != nil {
			return nil, err
		}
	}
	d := &DB{sql: db}
	if err := d.createTables(driverName); err != nil {
		return nil, err
	}
	if err := d.prepareStatements(driverName); err != nil {
		return nil, err
	}
	return d, nil
}

var openHooks = make(map[string]func(*sql.DB) error)

// RegisterOpenHook registers a hook to be called after opening a connection to driverName.
// This is used by the sqlite3 package to register a ConnectHook.
// It must be called from an init function.
func RegisterOpenHook(driverName string, hook func(*sql.DB) error) {
	openHooks[driverName] = hook
}

// createTmpl is the template used to prepare the CREATE statements
// for the database. It is evaluated with . as a map containing one
// entry whose key is the driver name.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS Uploads (
	UploadID {{if .sqlite3}}INTEGER PRIMARY KEY AUTOINCREMENT{{else}}SERIAL PRIMARY KEY AUTO_INCREMENT{{end}}
);
CREATE TABLE IF NOT EXISTS Records (
	UploadID BIGINT UNSIGNED,
	RecordID BIGINT UNSIGNED,
	Scenario VARCHAR(255),
	DbName VARCHAR(255),
	Operation VARCHAR(255),
	SampleTime BIGINT,
	Fields BLOB,
	PRIMARY KEY (UploadID, RecordID),
{{if not .sqlite3}}
	Index (Scenario(100), DbName(100)),
{{end}}
	FOREIGN KEY (UploadID) REFERENCES Uploads(UploadID) ON UPDATE CASCADE ON DELETE CASCADE
);
{{if .sqlite3}}
CREATE INDEX IF NOT EXISTS RecordsScenarioDbName ON Records(Scenario, DbName);
{{end}}
`))

// createTables creates any missing tables on the connection in
// db.sql. driverName is the same driver name passed to sql.Open and
// is used to select the correct syntax.
func (db *DB) createTables(driverName string) error {
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]bool{driverName: true}); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %v", err)
		}
	}
	return nil
}

// prepareStatements calls db.sql.Prepare on reusable SQL statements.
func (db *DB) prepareStatements(driverName string) error {
	var err error
	q := "INSERT INTO Uploads() VALUES ()"
	if driverName == "sqlite3" {
		q = "INSERT INTO Uploads DEFAULT VALUES"
	}
	db.insertUpload, err = db.sql.Prepare(q)
	if err != nil {
		return err
	}
	db.insertRecord, err = db.sql.Prepare("INSERT INTO Records(UploadID, RecordID, Scenario, DbName, Operation, SampleTime, Fields) VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	return nil
}

// An Upload is a batch of records fetched together and sharing an
// upload ID.
type Upload struct {
	// ID is the upload's identity in the public API. The underlying
	// table uses an integer key; the int64 is cached here to avoid
	// repeated calls to strconv.
	ID string

	id int64
	// recordid is the index of the next record to insert.
	recordid int64
	// db is the underlying database that this upload is going to.
	db *DB
}

// NewUpload returns an upload for storing a new batch of records.
// All records written to the Upload will have the same upload ID.
func (db *DB) NewUpload(ctx context.Context) (*Upload, error) {
	res, err := db.insertUpload.ExecContext(ctx)
	if err != nil {
		return nil, err
	}
	i, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &Upload{
		ID: fmt.Sprint(i),
		id: i,
		db: db,
	}, nil
}

// InsertRecord inserts a single record in an existing upload,
// attributed to the named scenario.
func (u *Upload) InsertRecord(scenarioID string, r *benchfmt.Record) (err error) {
	tx, err := u.db.sql.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()
	fields, err := json.Marshal(r.Values)
	if err != nil {
		return err
	}
	var sampleTime int64
	if !r.Time.IsZero() {
		sampleTime = r.Time.UnixNano()
	}
	if _, err = tx.Stmt(u.db.insertRecord).Exec(u.id, u.recordid, scenarioID, r.Database, r.Operation, sampleTime, fields); err != nil {
		return err
	}
	u.recordid++
	return nil
}

// Scenario returns every archived record for the named scenario, in
// insertion order.
func (db *DB) Scenario(ctx context.Context, scenarioID string) ([]*benchfmt.Record, error) {
	return db.ScenarioSince(ctx, scenarioID, time.Time{})
}

// ScenarioSince returns the archived records for the named scenario
// whose sample time is not before since. A zero since returns every
// record. Records are returned in insertion order.
func (db *DB) ScenarioSince(ctx context.Context, scenarioID string, since time.Time) ([]*benchfmt.Record, error) {
	q := "SELECT DbName, Operation, SampleTime, Fields FROM Records WHERE Scenario = ? ORDER BY UploadID, RecordID"
	args := []interface{}{scenarioID}
	if !since.IsZero() {
		q = "SELECT DbName, Operation, SampleTime, Fields FROM Records WHERE Scenario = ? AND SampleTime >= ? ORDER BY UploadID, RecordID"
		args = append(args, since.UnixNano())
	}
	rows, err := db.sql.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*benchfmt.Record
	for rows.Next() {
		var (
			dbName, op string
			sampleTime int64
			fields     []byte
		)
		if err := rows.Scan(&dbName, &op, &sampleTime, &fields); err != nil {
			return nil, err
		}
		r := &benchfmt.Record{Database: dbName, Operation: op}
		if sampleTime != 0 {
			r.Time = time.Unix(0, sampleTime).UTC()
		}
		if err := json.Unmarshal(fields, &r.Values); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// CountUploads returns the number of uploads in the database.
func (db *DB) CountUploads() (int, error) {
	var uploads int
	err := db.sql.QueryRow("SELECT COUNT(*) FROM Uploads").Scan(&uploads)
	return uploads, err
}

// Close closes the database connections, releasing any open resources.
func (db *DB) Close() error {
	if err := db.insertUpload.Close(); err != nil {
		return err
	}
	if err := db.insertRecord.Close(); err != nil {
		return err
	}
	return db.sql.Close()
}
