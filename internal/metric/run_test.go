package metric

import (
	"strings"
	"testing"

	"github.com/jnelson16/quantgov/internal/corpus"
)

// sliceStreamer streams a fixed set of documents.
type sliceStreamer struct {
	labels []string
	docs   []corpus.Document
}

func (s *sliceStreamer) IndexLabels() ([]string, error) {
	return s.labels, nil
}

func (s *sliceStreamer) Stream(fn func(corpus.Document) error) error {
	for _, doc := range s.docs {
		if err := fn(doc); err != nil {
			return err
		}
	}
	return nil
}

// brokenMetric emits a row that violates the descriptor contract.
type brokenMetric struct{}

func (brokenMetric) Name() string                      { return "broken" }
func (brokenMetric) Help() string                      { return "broken" }
func (brokenMetric) Options() []Option                 { return nil }
func (brokenMetric) Columns(Values) ([]string, error)  { return []string{"a", "b"}, nil }
func (brokenMetric) Process(doc corpus.Document, vals Values) ([]any, error) {
	return append(Row(doc, 1), 1), nil
}

func TestRun_HeaderAndRows(t *testing.T) {
	src := &sliceStreamer{
		labels: []string{"path"},
		docs: []corpus.Document{
			corpus.NewDocument([]string{"a/one"}, "x"),
			corpus.NewDocument([]string{"b/two"}, "y"),
		},
	}

	result, err := Run(&stubMetric{name: "stub"}, nil, src)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	wantHeader := []string{"path", "value"}
	if len(result.Header) != len(wantHeader) {
		t.Fatalf("header = %v, want %v", result.Header, wantHeader)
	}
	for i := range wantHeader {
		if result.Header[i] != wantHeader[i] {
			t.Fatalf("header = %v, want %v", result.Header, wantHeader)
		}
	}

	if len(result.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(result.Rows))
	}
	if result.Rows[0][0] != "a/one" {
		t.Errorf("row 0 index = %v, want a/one", result.Rows[0][0])
	}
	// Every row is index fields plus declared columns.
	for i, row := range result.Rows {
		if len(row) != len(src.docs[i].Index)+1 {
			t.Errorf("row %d has %d fields, want %d", i, len(row), len(src.docs[i].Index)+1)
		}
	}
}

func TestRun_EnforcesRowShape(t *testing.T) {
	src := &sliceStreamer{
		labels: []string{"path"},
		docs:   []corpus.Document{corpus.NewDocument([]string{"doc"}, "x")},
	}

	_, err := Run(brokenMetric{}, nil, src)
	if err == nil {
		t.Fatal("expected row-shape violation error")
	}
	if !strings.Contains(err.Error(), "columns") {
		t.Fatalf("error = %q, expected shape message", err)
	}
}
