// Package corpus models documents and streams them from disk so that
// metric computations never have to know where text comes from.
package corpus

// Document is a single unit of text under analysis.
//
// Index is the ordered tuple of identifying key fields supplied by the
// corpus layer (typically relative path segments). Text is the raw
// content. Documents are immutable values; metrics never mutate them.
type Document struct {
	Index []string
	Text  string
}

// NewDocument constructs a Document from index fields and text.
func NewDocument(index []string, text string) Document {
	idx := make([]string, len(index))
	copy(idx, index)
	return Document{
		Index: idx,
		Text:  text,
	}
}
