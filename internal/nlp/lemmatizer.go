package nlp

import (
	"fmt"
	"sync"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// DictLemmatizer lemmatizes English words using an embedded dictionary.
// The dictionary loads once, on first use; a load failure is reported
// from every call so metrics can surface it as a missing backend.
type DictLemmatizer struct {
	once sync.Once
	lem  *golem.Lemmatizer
	err  error
}

// Lemma implements Lemmatizer.
func (d *DictLemmatizer) Lemma(word string) (string, error) {
	d.once.Do(func() {
		d.lem, d.err = golem.New(en.New())
	})
	if d.err != nil {
		return "", fmt.Errorf("loading english lemma dictionary: %w", d.err)
	}
	return d.lem.Lemma(word), nil
}
