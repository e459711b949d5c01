// Package conditionals counts conditional and logical connectives.
package conditionals

import (
	"regexp"
	"strings"

	"github.com/jnelson16/quantgov/internal/corpus"
	"github.com/jnelson16/quantgov/internal/metric"
)

func init() {
	metric.Register(&Metric{})
}

// pattern is the closed, case-sensitive set of conditional words and
// phrases; phrase variants allow flexible internal whitespace.
var pattern = regexp.MustCompile(
	`\b(if|but|except|provided|when|where` +
		`|whenever|unless|notwithstanding` +
		`|in\s+the\s+event|in\s+no\s+event)\b`,
)

var newlines = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Metric counts total non-overlapping matches of the fixed conditional
// term set. Counted terms: if, but, except, provided, when, where,
// whenever, unless, notwithstanding, in the event, in no event.
type Metric struct{}

// Name implements metric.Descriptor.
func (m *Metric) Name() string { return "count_conditionals" }

// Help implements metric.Descriptor.
func (m *Metric) Help() string { return "Count conditional words and phrases" }

// Options implements metric.Descriptor.
func (m *Metric) Options() []metric.Option { return nil }

// Columns implements metric.Descriptor.
func (m *Metric) Columns(vals metric.Values) ([]string, error) {
	return []string{"conditionals"}, nil
}

// Process implements metric.Descriptor.
func (m *Metric) Process(doc corpus.Document, vals metric.Values) ([]any, error) {
	text := newlines.Replace(doc.Text)
	row := metric.Row(doc, 1)
	return append(row, len(pattern.FindAllString(text, -1))), nil
}

var _ metric.Descriptor = (*Metric)(nil)
