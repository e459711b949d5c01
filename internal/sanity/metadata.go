package sanity

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// MetadataError reports metadata that does not match the expected
// schema: a CSV with identifying columns followed by an integer
// "words" column.
type MetadataError struct {
	Path   string
	Reason string
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf(
		"metadata %s: %s (expected identifying columns followed by an integer \"words\" column)",
		e.Path, e.Reason,
	)
}

// Table is a validated, read-only metadata table. IDColumns are the
// identifying columns strictly before "words"; IDs holds their values
// row by row, parallel to Words.
type Table struct {
	IDColumns []string
	IDs       [][]string
	Words     []int
}

// DocumentID reconstructs the document identifier for row i.
func (t *Table) DocumentID(i int) string {
	return strings.Join(t.IDs[i], "/") + ".txt"
}

// LoadMetadata reads and validates a metadata CSV.
func LoadMetadata(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening metadata: %w", err)
	}
	defer func() { _ = file.Close() }()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, &MetadataError{Path: path, Reason: err.Error()}
	}
	if len(rows) == 0 {
		return nil, &MetadataError{Path: path, Reason: "file is empty"}
	}

	header := rows[0]
	wordsIdx := -1
	for i, column := range header {
		if column == "words" {
			wordsIdx = i
			break
		}
	}
	if wordsIdx < 0 {
		return nil, &MetadataError{Path: path, Reason: `no "words" column`}
	}
	if wordsIdx == 0 {
		return nil, &MetadataError{Path: path, Reason: "no identifying columns before \"words\""}
	}

	table := &Table{
		IDColumns: append([]string(nil), header[:wordsIdx]...),
		IDs:       make([][]string, 0, len(rows)-1),
		Words:     make([]int, 0, len(rows)-1),
	}
	for rowNum, row := range rows[1:] {
		words, err := strconv.Atoi(row[wordsIdx])
		if err != nil || words < 0 {
			return nil, &MetadataError{
				Path:   path,
				Reason: fmt.Sprintf("row %d: %q is not a non-negative integer word count", rowNum+2, row[wordsIdx]),
			}
		}
		table.IDs = append(table.IDs, append([]string(nil), row[:wordsIdx]...))
		table.Words = append(table.Words, words)
	}
	return table, nil
}
