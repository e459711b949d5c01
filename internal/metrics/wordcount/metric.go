// Package wordcount counts word-pattern matches in a document.
package wordcount

import (
	"regexp"

	"github.com/jnelson16/quantgov/internal/corpus"
	"github.com/jnelson16/quantgov/internal/metric"
)

func init() {
	metric.Register(&Metric{})
}

// DefaultWordPattern is a word-boundary-delimited run of word
// characters.
const DefaultWordPattern = `\b\w+\b`

var defaultWordRe = regexp.MustCompile(DefaultWordPattern)

// Metric counts non-overlapping word-pattern matches over the raw
// document text. Deterministic; no backend dependency.
type Metric struct{}

// Name implements metric.Descriptor.
func (m *Metric) Name() string { return "count_words" }

// Help implements metric.Descriptor.
func (m *Metric) Help() string { return "Count words in each document" }

// Options implements metric.Descriptor.
func (m *Metric) Options() []metric.Option {
	return []metric.Option{
		{
			Name:    "word_pattern",
			Short:   "w",
			Help:    `regular expression defining a "word"`,
			Kind:    metric.KindPattern,
			Default: DefaultWordPattern,
		},
	}
}

// Columns implements metric.Descriptor.
func (m *Metric) Columns(vals metric.Values) ([]string, error) {
	return []string{"words"}, nil
}

// Process implements metric.Descriptor.
func (m *Metric) Process(doc corpus.Document, vals metric.Values) ([]any, error) {
	re := vals.Pattern("word_pattern")
	if re == nil {
		re = defaultWordRe
	}

	row := metric.Row(doc, 1)
	return append(row, len(re.FindAllString(doc.Text, -1))), nil
}

var _ metric.Descriptor = (*Metric)(nil)
