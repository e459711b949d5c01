// Package sentencelength computes mean words per sentence.
package sentencelength

import (
	"github.com/jnelson16/quantgov/internal/corpus"
	"github.com/jnelson16/quantgov/internal/metric"
	"github.com/jnelson16/quantgov/internal/nlp"
)

func init() {
	metric.Register(&Metric{Sentences: nlp.Default().Sentences})
}

// Metric reports the mean words-per-sentence ratio. A document that
// segments into zero sentences reports 0 rather than failing: empty
// documents are a corpus-quality problem, which the sanity check
// reports separately.
type Metric struct {
	// Sentences is the required sentence-splitting backend.
	Sentences nlp.SentenceSplitter
}

// Name implements metric.Descriptor.
func (m *Metric) Name() string { return "sentence_length" }

// Help implements metric.Descriptor.
func (m *Metric) Help() string { return "Mean sentence length in words" }

// Options implements metric.Descriptor.
func (m *Metric) Options() []metric.Option {
	return []metric.Option{
		{
			Name:    "precision",
			Help:    "decimal places to round; 0 disables rounding",
			Kind:    metric.KindInt,
			Default: 2,
		},
	}
}

// Columns implements metric.Descriptor.
func (m *Metric) Columns(vals metric.Values) ([]string, error) {
	return []string{"sentence_length"}, nil
}

// Process implements metric.Descriptor.
func (m *Metric) Process(doc corpus.Document, vals metric.Values) ([]any, error) {
	if m.Sentences == nil {
		return nil, &metric.MissingBackendError{Metric: m.Name(), Capability: "sentence-splitting"}
	}

	sentences, err := m.Sentences.SplitSentences(doc.Text)
	if err != nil {
		return nil, err
	}

	mean := 0.0
	if len(sentences) > 0 {
		total := 0
		for _, s := range sentences {
			total += s.Words
		}
		mean = float64(total) / float64(len(sentences))
	}

	if precision := vals.Int("precision"); precision > 0 {
		mean = metric.Round(mean, precision)
	}

	row := metric.Row(doc, 1)
	return append(row, mean), nil
}

var _ metric.Descriptor = (*Metric)(nil)
