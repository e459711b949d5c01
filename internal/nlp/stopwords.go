package nlp

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed stopwords_en.txt
var stopwordsEN string

// EmbeddedStopwords serves the stopword list shipped with the binary.
// Only English is available.
type EmbeddedStopwords struct{}

// Stopwords implements StopwordProvider.
func (EmbeddedStopwords) Stopwords(language string) ([]string, error) {
	if strings.ToLower(language) != "english" {
		return nil, fmt.Errorf("no stopword list for language %q", language)
	}
	return strings.Fields(stopwordsEN), nil
}
