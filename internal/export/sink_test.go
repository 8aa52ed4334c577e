package export

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/normscope/normscope/pkg/norms"
	"github.com/normscope/normscope/pkg/report"
	"github.com/normscope/normscope/pkg/scoring"
)

func testDocument(t *testing.T) *report.Document {
	t.Helper()
	in := scoring.Input{
		Examinee: scoring.Examinee{
			Name:           "Lucia Ferrer",
			BirthDate:      time.Date(2020, 10, 1, 0, 0, 0, 0, time.UTC),
			AssessmentDate: time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC),
			Examiner:       "Dr. Ortega",
		},
		Raw: scoring.RawScores{norms.BlockDesign: 20},
	}
	a := report.Assembler{NewID: func() string { return "doc-42" }}
	doc, err := a.Build(scoring.NewEngine(nil), in)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return doc
}

func TestLocalSinkPut(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalSink(filepath.Join(dir, "nested"))

	if err := s.Put(context.Background(), "a.json", "application/json", []byte(`{}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "nested", "a.json"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "{}" {
		t.Errorf("file content = %q, want {}", got)
	}
	if loc := s.Location("a.json"); loc != filepath.Join(dir, "nested", "a.json") {
		t.Errorf("Location = %q", loc)
	}
}

func TestExportLocal(t *testing.T) {
	dir := t.TempDir()
	doc := testDocument(t)

	locs, err := Export(context.Background(), NewLocalSink(dir), doc)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(locs) != 2 {
		t.Fatalf("expected 2 locations, got %v", locs)
	}

	data, err := os.ReadFile(filepath.Join(dir, "doc-42.json"))
	if err != nil {
		t.Fatalf("json artifact: %v", err)
	}
	var decoded report.Document
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode json artifact: %v", err)
	}
	if decoded.ID != "doc-42" {
		t.Errorf("decoded id = %q", decoded.ID)
	}
	if decoded.Result == nil || decoded.Result.FullScale.Composite != 50 {
		t.Errorf("unexpected decoded result %+v", decoded.Result)
	}

	md, err := os.ReadFile(filepath.Join(dir, "doc-42.md"))
	if err != nil {
		t.Fatalf("markdown artifact: %v", err)
	}
	if !strings.Contains(string(md), "# Score report doc-42") {
		t.Errorf("unexpected markdown:\n%s", md)
	}
}

func TestExportRequiresID(t *testing.T) {
	_, err := Export(context.Background(), NewLocalSink(t.TempDir()), &report.Document{})
	if err == nil {
		t.Error("expected error for document without id")
	}
}

type failingSink struct{ calls int }

func (f *failingSink) Put(ctx context.Context, name, contentType string, data []byte) error {
	f.calls++
	return errors.New("bucket unavailable")
}

func (f *failingSink) Location(name string) string { return name }

func TestExportSinkFailure(t *testing.T) {
	sink := &failingSink{}
	_, err := Export(context.Background(), sink, testDocument(t))
	if err == nil || !strings.Contains(err.Error(), "bucket unavailable") {
		t.Fatalf("expected sink error, got %v", err)
	}
	if sink.calls != 1 {
		t.Errorf("expected export to stop after first failure, got %d calls", sink.calls)
	}
}

func TestOpenLocal(t *testing.T) {
	dir := t.TempDir()
	sink, err := Open(context.Background(), dir, S3Config{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, ok := sink.(*LocalSink); !ok {
		t.Errorf("expected *LocalSink, got %T", sink)
	}
}

func TestOpenErrors(t *testing.T) {
	for _, dest := range []string{"", "s3://", "gs:///prefix"} {
		if _, err := Open(context.Background(), dest, S3Config{}); err == nil {
			t.Errorf("Open(%q) expected error", dest)
		}
	}
}

func TestSplitBucket(t *testing.T) {
	tests := []struct {
		in, bucket, prefix string
	}{
		{"reports", "reports", ""},
		{"reports/clinic-a", "reports", "clinic-a"},
		{"reports/clinic-a/2025/", "reports", "clinic-a/2025"},
	}
	for _, tt := range tests {
		bucket, prefix, err := splitBucket(tt.in)
		if err != nil {
			t.Fatalf("splitBucket(%q): %v", tt.in, err)
		}
		if bucket != tt.bucket || prefix != tt.prefix {
			t.Errorf("splitBucket(%q) = %q, %q", tt.in, bucket, prefix)
		}
	}
	if objectKey("", "a.json") != "a.json" || objectKey("p", "a.json") != "p/a.json" {
		t.Error("objectKey mismatch")
	}
}

func TestS3SinkLocation(t *testing.T) {
	s := &S3Sink{bucket: "reports", prefix: "clinic-a"}
	if got := s.Location("doc.json"); got != "s3://reports/clinic-a/doc.json" {
		t.Errorf("Location = %q", got)
	}
	g := &GCSSink{bucket: "reports"}
	if got := g.Location("doc.md"); got != "gs://reports/doc.md" {
		t.Errorf("Location = %q", got)
	}
}
