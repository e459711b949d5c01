// Package metric defines the descriptor contract every document metric
// implements, the declarative option schema, and the registry the CLI
// dispatches through.
package metric

import (
	"math"
	"regexp"

	"github.com/jnelson16/quantgov/internal/corpus"
)

// Descriptor is a self-describing unit of per-document computation. It
// declares its configurable options, the output columns it produces for
// a given configuration, and a pure per-document transform.
type Descriptor interface {
	// Name is the unique public name the metric registers under.
	Name() string

	// Help is a one-line description for CLI listings.
	Help() string

	// Options declares the metric's configurable options.
	Options() []Option

	// Columns returns the output column names for resolved options, in
	// the order Process emits values. It must be callable before any
	// document is processed; unsupported configurations fail here.
	Columns(vals Values) ([]string, error)

	// Process computes the metric for one document, returning the
	// document's index fields followed by exactly the values named by
	// Columns. It must be pure apart from latency-only caches.
	Process(doc corpus.Document, vals Values) ([]any, error)
}

// Values holds resolved option values keyed by option name.
type Values map[string]any

// String returns a string option value, or "" when unset.
func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

// Int returns an integer option value, or 0 when unset.
func (v Values) Int(name string) int {
	n, _ := v[name].(int)
	return n
}

// Float returns a float option value, or 0 when unset.
func (v Values) Float(name string) float64 {
	f, _ := v[name].(float64)
	return f
}

// Pattern returns a compiled regexp option value, or nil when unset.
func (v Values) Pattern(name string) *regexp.Regexp {
	re, _ := v[name].(*regexp.Regexp)
	return re
}

// Strings returns a string-list option value, or nil when unset.
func (v Values) Strings(name string) []string {
	s, _ := v[name].([]string)
	return s
}

// Row starts an output row with the document's index fields, reserving
// room for extra computed values.
func Row(doc corpus.Document, extra int) []any {
	row := make([]any, 0, len(doc.Index)+extra)
	for _, field := range doc.Index {
		row = append(row, field)
	}
	return row
}

// Round rounds v to prec decimal places. Metrics use it so rounded
// values render identically everywhere.
func Round(v float64, prec int) float64 {
	if prec < 0 {
		return v
	}
	scale := math.Pow10(prec)
	return math.Round(v*scale) / scale
}
