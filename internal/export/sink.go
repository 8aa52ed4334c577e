// Package export delivers assembled report documents to a write-only sink:
// a local directory, an S3-compatible bucket or a GCS bucket. Nothing here
// reads documents back.
package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/normscope/normscope/pkg/report"
	"github.com/normscope/normscope/pkg/surface"
)

// Sink abstracts blob storage for exported documents.
type Sink interface {
	Put(ctx context.Context, name, contentType string, data []byte) error
	// Location returns a human-readable address for name.
	Location(name string) string
}

// LocalSink implements Sink using the local filesystem.
type LocalSink struct {
	BaseDir string
}

// NewLocalSink creates a LocalSink rooted at the given directory.
func NewLocalSink(baseDir string) *LocalSink {
	return &LocalSink{BaseDir: baseDir}
}

func (s *LocalSink) Put(ctx context.Context, name, contentType string, data []byte) error {
	path := filepath.Join(s.BaseDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *LocalSink) Location(name string) string {
	return filepath.Join(s.BaseDir, name)
}

// Open selects a sink from a destination string: s3://bucket/prefix,
// gs://bucket/prefix, or a local directory path.
func Open(ctx context.Context, dest string, s3cfg S3Config) (Sink, error) {
	switch {
	case strings.HasPrefix(dest, "s3://"):
		bucket, prefix, err := splitBucket(strings.TrimPrefix(dest, "s3://"))
		if err != nil {
			return nil, fmt.Errorf("export destination %q: %w", dest, err)
		}
		s3cfg.Bucket = bucket
		s3cfg.Prefix = prefix
		return NewS3Sink(ctx, s3cfg)
	case strings.HasPrefix(dest, "gs://"):
		bucket, prefix, err := splitBucket(strings.TrimPrefix(dest, "gs://"))
		if err != nil {
			return nil, fmt.Errorf("export destination %q: %w", dest, err)
		}
		return NewGCSSink(ctx, bucket, prefix)
	case dest == "":
		return nil, fmt.Errorf("export destination is empty")
	default:
		return NewLocalSink(dest), nil
	}
}

func splitBucket(s string) (bucket, prefix string, err error) {
	bucket, prefix, _ = strings.Cut(s, "/")
	if bucket == "" {
		return "", "", fmt.Errorf("missing bucket name")
	}
	return bucket, strings.Trim(prefix, "/"), nil
}

func objectKey(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

// Export writes doc as <id>.json and <id>.md and returns their locations.
func Export(ctx context.Context, sink Sink, doc *report.Document) ([]string, error) {
	if doc == nil || doc.ID == "" {
		return nil, fmt.Errorf("export: document has no id")
	}

	var jsonBuf, mdBuf bytes.Buffer
	if err := (&surface.JSONRenderer{}).Render(&jsonBuf, doc); err != nil {
		return nil, fmt.Errorf("render json: %w", err)
	}
	if err := (&surface.MarkdownRenderer{}).Render(&mdBuf, doc); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}

	artifacts := []struct {
		name        string
		contentType string
		data        []byte
	}{
		{doc.ID + ".json", "application/json", jsonBuf.Bytes()},
		{doc.ID + ".md", "text/markdown", mdBuf.Bytes()},
	}

	locations := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		if err := sink.Put(ctx, a.name, a.contentType, a.data); err != nil {
			return locations, fmt.Errorf("export %s: %w", a.name, err)
		}
		locations = append(locations, sink.Location(a.name))
	}
	return locations, nil
}

