// Package sanity runs a one-shot aggregate check over precomputed
// corpus metadata, flagging corpora where an unexpectedly large share
// of documents is suspiciously short.
package sanity

import (
	"fmt"
)

// DefaultCutoff is the fraction of minimum-word documents above which
// a warning is raised.
const DefaultCutoff = 0.01

// Stats holds whole-corpus totals.
type Stats struct {
	Documents  int   `json:"documents"`
	TotalWords int64 `json:"total_words"`
}

// Extremes identifies the longest and shortest documents. Document
// identifiers are reconstructed from the identifying columns, joined
// with "/" and given a .txt extension, matching how corpus documents
// are laid out on disk.
type Extremes struct {
	MaxDocument string `json:"max_words_document"`
	MaxWords    int    `json:"max_words"`
	MinDocument string `json:"min_words_document"`
	MinWords    int    `json:"min_words"`
	MinCount    int    `json:"min_words_count"`
}

// Report is the full sanity-check output.
type Report struct {
	Stats    Stats    `json:"statistics"`
	Extremes Extremes `json:"extremes"`
	Cutoff   float64  `json:"cutoff"`
	Warning  bool     `json:"warning"`
}

// BasicStatistics reports row count and the sum of the words column.
func (t *Table) BasicStatistics() Stats {
	var total int64
	for _, words := range t.Words {
		total += int64(words)
	}
	return Stats{
		Documents:  len(t.Words),
		TotalWords: total,
	}
}

// ExtremeDocuments locates the rows with maximum and minimum word
// counts (first occurrence wins ties for the identifier) and counts how
// many rows tie for the minimum.
func (t *Table) ExtremeDocuments() (Extremes, error) {
	if len(t.Words) == 0 {
		return Extremes{}, fmt.Errorf("metadata table is empty")
	}

	maxIdx, minIdx := 0, 0
	for i, words := range t.Words {
		if words > t.Words[maxIdx] {
			maxIdx = i
		}
		if words < t.Words[minIdx] {
			minIdx = i
		}
	}

	minCount := 0
	for _, words := range t.Words {
		if words == t.Words[minIdx] {
			minCount++
		}
	}

	return Extremes{
		MaxDocument: t.DocumentID(maxIdx),
		MaxWords:    t.Words[maxIdx],
		MinDocument: t.DocumentID(minIdx),
		MinWords:    t.Words[minIdx],
		MinCount:    minCount,
	}, nil
}

// RaiseWarning reports whether the count of minimum-word rows exceeds
// cutoff times the corpus size.
func (t *Table) RaiseWarning(cutoff float64) bool {
	if len(t.Words) == 0 {
		return false
	}

	extremes, err := t.ExtremeDocuments()
	if err != nil {
		return false
	}
	return float64(extremes.MinCount) > cutoff*float64(len(t.Words))
}

// Check runs the full sanity pass: statistics, extremes, and the
// warning flag. The input table is never mutated.
func Check(t *Table, cutoff float64) (Report, error) {
	extremes, err := t.ExtremeDocuments()
	if err != nil {
		return Report{}, err
	}
	return Report{
		Stats:    t.BasicStatistics(),
		Extremes: extremes,
		Cutoff:   cutoff,
		Warning:  t.RaiseWarning(cutoff),
	}, nil
}
