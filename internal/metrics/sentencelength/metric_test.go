package sentencelength

import (
	"errors"
	"testing"

	"github.com/jnelson16/quantgov/internal/corpus"
	"github.com/jnelson16/quantgov/internal/metric"
	"github.com/jnelson16/quantgov/internal/nlp"
)

// fixedSplitter returns a predefined segmentation.
type fixedSplitter struct {
	sentences []nlp.Sentence
}

func (s fixedSplitter) SplitSentences(text string) ([]nlp.Sentence, error) {
	return s.sentences, nil
}

func process(t *testing.T, m *Metric, raw map[string]string) []any {
	t.Helper()
	vals, err := metric.Resolve(m.Options(), raw)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	row, err := m.Process(corpus.NewDocument([]string{"doc"}, "text"), vals)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	return row
}

func TestProcess_SingleSentence(t *testing.T) {
	m := &Metric{Sentences: fixedSplitter{sentences: []nlp.Sentence{{Words: 5}}}}
	row := process(t, m, nil)
	if got := row[1]; got != 5.0 {
		t.Errorf("sentence_length = %v, want 5.0", got)
	}
}

func TestProcess_MeanIsRounded(t *testing.T) {
	m := &Metric{Sentences: fixedSplitter{
		sentences: []nlp.Sentence{{Words: 5}, {Words: 4}, {Words: 1}},
	}}
	row := process(t, m, map[string]string{"precision": "2"})
	if got := row[1]; got != 3.33 {
		t.Errorf("sentence_length = %v, want 3.33", got)
	}
}

func TestProcess_ZeroPrecisionLeavesRatio(t *testing.T) {
	m := &Metric{Sentences: fixedSplitter{
		sentences: []nlp.Sentence{{Words: 1}, {Words: 2}},
	}}
	row := process(t, m, map[string]string{"precision": "0"})
	if got := row[1]; got != 1.5 {
		t.Errorf("sentence_length = %v, want unrounded 1.5", got)
	}
}

func TestProcess_ZeroSentences(t *testing.T) {
	m := &Metric{Sentences: fixedSplitter{}}
	row := process(t, m, nil)
	if got := row[1]; got != 0.0 {
		t.Errorf("sentence_length = %v, want 0.0 for empty segmentation", got)
	}
}

func TestProcess_MissingBackend(t *testing.T) {
	m := &Metric{}
	vals, err := metric.Resolve(m.Options(), nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	_, err = m.Process(corpus.NewDocument([]string{"doc"}, "text"), vals)
	var missing *metric.MissingBackendError
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, want MissingBackendError", err)
	}
}
