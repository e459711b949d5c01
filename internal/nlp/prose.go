package nlp

import (
	"fmt"
	"regexp"

	prose "github.com/jdkato/prose/v2"
)

// wordRe matches a word token the way the word-count metric does, so
// per-sentence word counts stay consistent with document word counts.
var wordRe = regexp.MustCompile(`\b\w+\b`)

// ProseEngine provides tokenization and sentence segmentation backed by
// the prose NLP library.
type ProseEngine struct{}

// Tokenize implements Tokenizer.
func (ProseEngine) Tokenize(text string) ([]string, error) {
	doc, err := prose.NewDocument(
		text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, fmt.Errorf("tokenizing text: %w", err)
	}

	tokens := doc.Tokens()
	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		words = append(words, tok.Text)
	}
	return words, nil
}

// SplitSentences implements SentenceSplitter.
func (ProseEngine) SplitSentences(text string) ([]Sentence, error) {
	doc, err := prose.NewDocument(
		text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithTokenization(false),
	)
	if err != nil {
		return nil, fmt.Errorf("segmenting sentences: %w", err)
	}

	raw := doc.Sentences()
	sentences := make([]Sentence, 0, len(raw))
	for _, s := range raw {
		sentences = append(sentences, Sentence{
			Text:  s.Text,
			Words: len(wordRe.FindAllString(s.Text, -1)),
		})
	}
	return sentences, nil
}
