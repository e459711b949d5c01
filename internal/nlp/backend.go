// Package nlp defines the language-processing capabilities metrics
// depend on, and provides a default backend assembled from an English
// lemmatizer, a statistical tokenizer/segmenter, an embedded stopword
// list, and a lexicon sentiment scorer.
//
// Metrics accept these interfaces individually so a missing capability
// is detectable per metric: a nil interface means the backend is
// absent, and the metric fails loudly instead of degrading.
package nlp

import "sync"

// Tokenizer splits text into word tokens.
type Tokenizer interface {
	Tokenize(text string) ([]string, error)
}

// Lemmatizer reduces a word to its dictionary base form.
type Lemmatizer interface {
	Lemma(word string) (string, error)
}

// Sentence is one segmented sentence with its word count.
type Sentence struct {
	Text  string
	Words int
}

// SentenceSplitter segments text into sentences.
type SentenceSplitter interface {
	SplitSentences(text string) ([]Sentence, error)
}

// Sentiment holds a polarity in [-1, 1] and a subjectivity in [0, 1].
type Sentiment struct {
	Polarity     float64
	Subjectivity float64
}

// SentimentScorer scores the sentiment of a full text.
type SentimentScorer interface {
	ScoreSentiment(text string) (Sentiment, error)
}

// StopwordProvider returns the stopword list for a language.
type StopwordProvider interface {
	Stopwords(language string) ([]string, error)
}

// Backend bundles every capability. Fields may be nil when a
// capability is unavailable.
type Backend struct {
	Tokenizer Tokenizer
	Lemmas    Lemmatizer
	Sentences SentenceSplitter
	Sentiment SentimentScorer
	Stopwords StopwordProvider
}

var (
	defaultOnce    sync.Once
	defaultBackend *Backend
)

// Default returns the process-wide default backend. Construction is
// cheap; expensive resources (the lemmatizer dictionary) load lazily
// on first use.
func Default() *Backend {
	defaultOnce.Do(func() {
		engine := ProseEngine{}
		defaultBackend = &Backend{
			Tokenizer: engine,
			Lemmas:    &DictLemmatizer{},
			Sentences: engine,
			Sentiment: LexiconScorer{},
			Stopwords: EmbeddedStopwords{},
		}
	})
	return defaultBackend
}
