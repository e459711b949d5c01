package metric

import (
	"fmt"

	"github.com/jnelson16/quantgov/internal/corpus"
)

// Result holds one corpus run: the output header (index labels followed
// by metric columns) and one row per document.
type Result struct {
	Header []string
	Rows   [][]any
}

// Run computes a metric over every document a streamer produces. The
// output schema is resolved once up front, so configuration errors
// surface before the first document is read. Every row is checked
// against the descriptor contract: index fields plus exactly the
// declared columns.
func Run(d Descriptor, vals Values, src corpus.Streamer) (*Result, error) {
	columns, err := d.Columns(vals)
	if err != nil {
		return nil, err
	}
	labels, err := src.IndexLabels()
	if err != nil {
		return nil, err
	}

	header := make([]string, 0, len(labels)+len(columns))
	header = append(header, labels...)
	header = append(header, columns...)

	var rows [][]any
	err = src.Stream(func(doc corpus.Document) error {
		row, err := d.Process(doc, vals)
		if err != nil {
			return fmt.Errorf("metric %q on %v: %w", d.Name(), doc.Index, err)
		}
		if len(row) != len(doc.Index)+len(columns) {
			return fmt.Errorf(
				"metric %q on %v: got %d fields, want %d index + %d columns",
				d.Name(), doc.Index, len(row), len(doc.Index), len(columns),
			)
		}
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Header: header,
		Rows:   rows,
	}, nil
}
