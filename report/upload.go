// Copyright 2025 The NoSQLBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"cloud.google.com/go/storage"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"
)

// An Uploader copies finished report files to a GCS bucket so they
// can be shared outside the benchmark host.
type Uploader struct {
	client *storage.Client
	bucket string
	log    zerolog.Logger
}

// NewUploader connects to GCS. When accessToken is non-empty it is
// used as a static bearer token; otherwise keyPath must name a
// service account key file.
func NewUploader(ctx context.Context, bucket, accessToken, keyPath string, log zerolog.Logger) (*Uploader, error) {
	var opt option.ClientOption
	switch {
	case accessToken != "":
		opt = option.WithTokenSource(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}))
	case keyPath != "":
		if _, err := os.Stat(keyPath); err != nil {
			return nil, fmt.Errorf("service account key not readable: %w", err)
		}
		opt = option.WithCredentialsFile(keyPath)
	default:
		opt = option.WithScopes(storage.ScopeReadWrite)
	}
	client, err := storage.NewClient(ctx, opt)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &Uploader{client: client, bucket: bucket, log: log}, nil
}

// Close releases the underlying client.
func (u *Uploader) Close() error {
	return u.client.Close()
}

// UploadFile copies one local file to the bucket under objectPath.
func (u *Uploader) UploadFile(ctx context.Context, localPath, objectPath string) error {
	f, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", localPath, err)
	}
	defer f.Close()

	w := u.client.Bucket(u.bucket).Object(objectPath).NewWriter(ctx)
	if ct := mime.TypeByExtension(filepath.Ext(localPath)); ct != "" {
		w.ContentType = ct
	}
	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("copy %s to gs://%s/%s: %w", localPath, u.bucket, objectPath, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close gs://%s/%s: %w", u.bucket, objectPath, err)
	}
	u.log.Info().Str("file", localPath).Str("object", "gs://"+u.bucket+"/"+objectPath).Msg("uploaded report file")
	return nil
}

// UploadDir copies every regular file under localDir to the bucket
// under prefix.
func (u *Uploader) UploadDir(ctx context.Context, localDir, prefix string) error {
	return filepath.Walk(localDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		return u.UploadFile(ctx, path, filepath.Join(prefix, info.Name()))
	})
}
