package nlp

import "sync"

// LemmaCache memoizes lemmatization across documents. Vocabulary is
// bounded by the corpus, so entries are never evicted. Safe for
// concurrent use: a race between two callers lemmatizing the same word
// costs a redundant lookup, never an inconsistent result.
type LemmaCache struct {
	mu     sync.RWMutex
	lemmas map[string]string
}

// NewLemmaCache returns an empty cache.
func NewLemmaCache() *LemmaCache {
	return &LemmaCache{lemmas: make(map[string]string)}
}

// Lemma returns the cached lemma for word, computing and storing it
// via lemmatize on a miss. The first stored value wins.
func (c *LemmaCache) Lemma(word string, lemmatize func(string) (string, error)) (string, error) {
	c.mu.RLock()
	lemma, ok := c.lemmas[word]
	c.mu.RUnlock()
	if ok {
		return lemma, nil
	}

	lemma, err := lemmatize(word)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	if existing, ok := c.lemmas[word]; ok {
		lemma = existing
	} else {
		c.lemmas[word] = lemma
	}
	c.mu.Unlock()
	return lemma, nil
}

// Len returns the number of cached lemmas.
func (c *LemmaCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.lemmas)
}
