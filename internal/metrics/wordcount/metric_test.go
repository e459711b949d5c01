package wordcount

import (
	"testing"

	"github.com/jnelson16/quantgov/internal/corpus"
	"github.com/jnelson16/quantgov/internal/metric"
)

func process(t *testing.T, text string, raw map[string]string) []any {
	t.Helper()
	m := &Metric{}
	vals, err := metric.Resolve(m.Options(), raw)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	row, err := m.Process(corpus.NewDocument([]string{"doc"}, text), vals)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	return row
}

func TestProcess_DefaultPattern(t *testing.T) {
	// The default pattern splits on the hyphen, so c-d is two words.
	row := process(t, "a b, c-d e", nil)
	if got := row[1]; got != 5 {
		t.Errorf("words = %v, want 5", got)
	}
}

func TestProcess_CustomPattern(t *testing.T) {
	row := process(t, "one two three", map[string]string{"word_pattern": `o\w+`})
	if got := row[1]; got != 1 {
		t.Errorf("words = %v, want 1", got)
	}
}

func TestProcess_EmptyDocument(t *testing.T) {
	row := process(t, "", nil)
	if got := row[1]; got != 0 {
		t.Errorf("words = %v, want 0", got)
	}
}

func TestRowShape(t *testing.T) {
	m := &Metric{}
	vals, err := metric.Resolve(m.Options(), nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	cols, err := m.Columns(vals)
	if err != nil {
		t.Fatalf("Columns: %v", err)
	}

	doc := corpus.NewDocument([]string{"a", "b"}, "some text")
	row, err := m.Process(doc, vals)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(row) != len(doc.Index)+len(cols) {
		t.Fatalf("row has %d fields, want %d", len(row), len(doc.Index)+len(cols))
	}
	if row[0] != "a" || row[1] != "b" {
		t.Errorf("index fields = %v, %v, want a, b", row[0], row[1])
	}
}
