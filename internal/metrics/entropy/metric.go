// Package entropy computes the Shannon entropy of a document's lemma
// distribution.
package entropy

import (
	"math"
	"regexp"

	"github.com/jnelson16/quantgov/internal/corpus"
	"github.com/jnelson16/quantgov/internal/metric"
	"github.com/jnelson16/quantgov/internal/metrics/wordcount"
	"github.com/jnelson16/quantgov/internal/nlp"
)

func init() {
	backend := nlp.Default()
	metric.Register(&Metric{
		Lemmas:    backend.Lemmas,
		Stopwords: backend.Stopwords,
		Cache:     nlp.NewLemmaCache(),
	})
}

var defaultWordRe = regexp.MustCompile(wordcount.DefaultWordPattern)

// Metric tokenizes by word pattern, lemmatizes each token, drops
// stopword lemmas, and reports the Shannon entropy in bits of the
// retained-lemma distribution. A document with no retained lemmas has
// entropy 0: its distribution has a single outcome, so there is
// nothing unpredictable to measure.
type Metric struct {
	// Lemmas is the required lemmatizer backend.
	Lemmas nlp.Lemmatizer

	// Stopwords supplies the default stopword list when the option is
	// not set.
	Stopwords nlp.StopwordProvider

	// Cache memoizes lemmatization across documents. Latency only;
	// results never depend on it.
	Cache *nlp.LemmaCache
}

// Name implements metric.Descriptor.
func (m *Metric) Name() string { return "shannon_entropy" }

// Help implements metric.Descriptor.
func (m *Metric) Help() string { return "Shannon entropy of the lemma distribution, in bits" }

// Options implements metric.Descriptor.
func (m *Metric) Options() []metric.Option {
	return []metric.Option{
		{
			Name:    "word_pattern",
			Short:   "w",
			Help:    `regular expression defining a "word"`,
			Kind:    metric.KindPattern,
			Default: wordcount.DefaultWordPattern,
		},
		{
			Name:  "stopwords",
			Short: "s",
			Help:  "stopwords to ignore (default: built-in english list)",
			Kind:  metric.KindStringList,
		},
		{
			Name:    "precision",
			Help:    "decimal places to round",
			Kind:    metric.KindInt,
			Default: 2,
		},
	}
}

// Columns implements metric.Descriptor.
func (m *Metric) Columns(vals metric.Values) ([]string, error) {
	return []string{"shannon_entropy"}, nil
}

// Process implements metric.Descriptor.
func (m *Metric) Process(doc corpus.Document, vals metric.Values) ([]any, error) {
	if m.Lemmas == nil {
		return nil, &metric.MissingBackendError{Metric: m.Name(), Capability: "lemmatizer"}
	}
	stopwords, err := m.stopwordSet(vals)
	if err != nil {
		return nil, err
	}

	re := vals.Pattern("word_pattern")
	if re == nil {
		re = defaultWordRe
	}

	words := re.FindAllString(doc.Text, -1)
	counts := make(map[string]int)
	retained := 0
	for _, word := range words {
		lemma, err := m.lemma(word)
		if err != nil {
			return nil, err
		}
		if stopwords[lemma] {
			continue
		}
		counts[lemma]++
		retained++
	}

	entropy := 0.0
	if retained > 0 {
		n := float64(retained)
		for _, count := range counts {
			p := float64(count) / n
			entropy -= p * math.Log2(p)
		}
	}

	precision := vals.Int("precision")
	row := metric.Row(doc, 1)
	return append(row, metric.Round(entropy, precision)), nil
}

func (m *Metric) lemma(word string) (string, error) {
	if m.Cache == nil {
		return m.Lemmas.Lemma(word)
	}
	return m.Cache.Lemma(word, m.Lemmas.Lemma)
}

func (m *Metric) stopwordSet(vals metric.Values) (map[string]bool, error) {
	list := vals.Strings("stopwords")
	if list == nil {
		if m.Stopwords == nil {
			return nil, &metric.MissingBackendError{Metric: m.Name(), Capability: "stopword"}
		}
		var err error
		list, err = m.Stopwords.Stopwords("english")
		if err != nil {
			return nil, err
		}
	}

	set := make(map[string]bool, len(list))
	for _, word := range list {
		set[word] = true
	}
	return set, nil
}

var _ metric.Descriptor = (*Metric)(nil)
