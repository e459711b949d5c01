// Package occurrence counts occurrences of caller-specified terms.
package occurrence

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jnelson16/quantgov/internal/corpus"
	"github.com/jnelson16/quantgov/internal/metric"
)

func init() {
	metric.Register(&Metric{})
}

// DefaultPattern wraps the term alternation in word boundaries with a
// named capture group for the matched term.
const DefaultPattern = `\b(?P<match>%s)\b`

// Metric counts case-insensitive occurrences of an explicit term list.
// Longer terms match before shorter ones, so a multi-word term is never
// double-counted by one of its prefixes. Output columns follow the
// caller's term order, with an optional trailing total column.
type Metric struct{}

// Name implements metric.Descriptor.
func (m *Metric) Name() string { return "count_occurrences" }

// Help implements metric.Descriptor.
func (m *Metric) Help() string { return "Count occurrences of specific terms" }

// Options implements metric.Descriptor.
func (m *Metric) Options() []metric.Option {
	return []metric.Option{
		{
			Name:     "terms",
			Short:    "t",
			Help:     "terms to count, case-insensitive",
			Kind:     metric.KindStringList,
			Required: true,
		},
		{
			Name: "total_label",
			Help: "emit a trailing column with the sum of all term counts, under this name",
			Kind: metric.KindString,
		},
		{
			Name:    "pattern",
			Help:    "wrapping pattern for the term alternation; must keep the (?P<match>...) group",
			Kind:    metric.KindString,
			Default: DefaultPattern,
		},
	}
}

// Columns implements metric.Descriptor. Column names are the lowercased
// terms in caller order, matching how counts are keyed.
func (m *Metric) Columns(vals metric.Values) ([]string, error) {
	terms, err := normalizedTerms(vals)
	if err != nil {
		return nil, err
	}

	columns := append([]string(nil), terms...)
	if label := vals.String("total_label"); label != "" {
		columns = append(columns, label)
	}
	return columns, nil
}

// Process implements metric.Descriptor.
func (m *Metric) Process(doc corpus.Document, vals metric.Values) ([]any, error) {
	terms, err := normalizedTerms(vals)
	if err != nil {
		return nil, err
	}
	re, matchIdx, err := combinedPattern(vals, terms)
	if err != nil {
		return nil, err
	}

	// Collapse whitespace runs so multi-word terms match across line
	// breaks, then lowercase to match the normalized terms.
	text := strings.ToLower(strings.Join(strings.Fields(doc.Text), " "))

	counts := make(map[string]int, len(terms))
	for _, match := range re.FindAllStringSubmatch(text, -1) {
		counts[match[matchIdx]]++
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	row := metric.Row(doc, len(terms)+1)
	for _, term := range terms {
		row = append(row, counts[term])
	}
	if vals.String("total_label") != "" {
		row = append(row, total)
	}
	return row, nil
}

// normalizedTerms returns the caller's terms lowercased, preserving
// order. An empty list is a configuration error.
func normalizedTerms(vals metric.Values) ([]string, error) {
	raw := vals.Strings("terms")
	if len(raw) == 0 {
		return nil, fmt.Errorf("metric %q: option %q is required", "count_occurrences", "terms")
	}

	terms := make([]string, 0, len(raw))
	for _, t := range raw {
		terms = append(terms, strings.ToLower(t))
	}
	return terms, nil
}

// combinedPattern builds one alternation over the terms, longest first,
// wrapped by the configured template.
func combinedPattern(vals metric.Values, terms []string) (*regexp.Regexp, int, error) {
	template := vals.String("pattern")
	if template == "" {
		template = DefaultPattern
	}

	sorted := append([]string(nil), terms...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})

	re, err := regexp.Compile(fmt.Sprintf(template, strings.Join(sorted, "|")))
	if err != nil {
		return nil, 0, fmt.Errorf("compiling term pattern: %w", err)
	}

	matchIdx := re.SubexpIndex("match")
	if matchIdx < 0 {
		return nil, 0, fmt.Errorf("term pattern %q must define a (?P<match>...) group", template)
	}
	return re, matchIdx, nil
}

var _ metric.Descriptor = (*Metric)(nil)
