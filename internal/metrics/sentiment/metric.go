// Package sentiment scores document polarity and subjectivity.
package sentiment

import (
	"github.com/jnelson16/quantgov/internal/corpus"
	"github.com/jnelson16/quantgov/internal/metric"
	"github.com/jnelson16/quantgov/internal/nlp"
)

func init() {
	metric.Register(&Metric{Scorer: nlp.Default().Sentiment})
}

// BackendLexicon is the only supported sentiment backend: the built-in
// valence-lexicon scorer.
const BackendLexicon = "lexicon"

// Metric scores sentiment over the full document text, producing a
// polarity in [-1, 1] and a subjectivity in [0, 1]. An unrecognized
// backend selection fails from Columns, before any document runs.
type Metric struct {
	// Scorer is the required sentiment backend.
	Scorer nlp.SentimentScorer
}

// Name implements metric.Descriptor.
func (m *Metric) Name() string { return "sentiment_analysis" }

// Help implements metric.Descriptor.
func (m *Metric) Help() string { return "Sentiment polarity and subjectivity" }

// Options implements metric.Descriptor.
func (m *Metric) Options() []metric.Option {
	return []metric.Option{
		{
			Name:    "backend",
			Help:    "scoring backend to use (supported: lexicon)",
			Kind:    metric.KindString,
			Default: BackendLexicon,
		},
		{
			Name:    "precision",
			Help:    "decimal places to round; 0 disables rounding",
			Kind:    metric.KindInt,
			Default: 2,
		},
	}
}

// Columns implements metric.Descriptor. Columns depend on the backend,
// so an unsupported backend makes the schema itself unresolvable.
func (m *Metric) Columns(vals metric.Values) ([]string, error) {
	if err := m.checkBackend(vals); err != nil {
		return nil, err
	}
	return []string{"sentiment_polarity", "sentiment_subjectivity"}, nil
}

// Process implements metric.Descriptor.
func (m *Metric) Process(doc corpus.Document, vals metric.Values) ([]any, error) {
	if err := m.checkBackend(vals); err != nil {
		return nil, err
	}
	if m.Scorer == nil {
		return nil, &metric.MissingBackendError{Metric: m.Name(), Capability: "sentiment"}
	}

	score, err := m.Scorer.ScoreSentiment(doc.Text)
	if err != nil {
		return nil, err
	}

	polarity := score.Polarity
	subjectivity := score.Subjectivity
	if precision := vals.Int("precision"); precision > 0 {
		polarity = metric.Round(polarity, precision)
		subjectivity = metric.Round(subjectivity, precision)
	}

	row := metric.Row(doc, 2)
	return append(row, polarity, subjectivity), nil
}

func (m *Metric) checkBackend(vals metric.Values) error {
	backend := vals.String("backend")
	if backend == "" || backend == BackendLexicon {
		return nil
	}
	return &metric.UnsupportedConfigError{Metric: m.Name(), Option: "backend", Value: backend}
}

var _ metric.Descriptor = (*Metric)(nil)
