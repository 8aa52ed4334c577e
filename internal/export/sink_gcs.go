package export

import (
	"context"
	"fmt"

	gcs "cloud.google.com/go/storage"
)

// GCSSink implements Sink using Google Cloud Storage.
type GCSSink struct {
	client *gcs.Client
	bucket string
	prefix string
}

// NewGCSSink creates a GCS-backed Sink.
// It uses Application Default Credentials (works with Workload Identity, SA keys, gcloud auth).
func NewGCSSink(ctx context.Context, bucket, prefix string) (*GCSSink, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	return &GCSSink{client: client, bucket: bucket, prefix: prefix}, nil
}

func (s *GCSSink) Put(ctx context.Context, name, contentType string, data []byte) error {
	key := objectKey(s.prefix, name)
	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("gcs write %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("gcs close %s: %w", key, err)
	}
	return nil
}

func (s *GCSSink) Location(name string) string {
	return "gs://" + s.bucket + "/" + objectKey(s.prefix, name)
}
