package corpus

import (
	"encoding/csv"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"
)

// Streamer produces documents one at a time in a deterministic order.
type Streamer interface {
	// IndexLabels returns the names of the index fields every streamed
	// document carries, in order. It must be callable before Stream so
	// the output schema is known up front.
	IndexLabels() ([]string, error)

	// Stream calls fn for each document. A non-nil error from fn stops
	// the stream and is returned unchanged.
	Stream(fn func(Document) error) error
}

// DefaultInclude is the include pattern used when none is configured.
const DefaultInclude = "**/*.txt"

// DirStreamer streams documents from a directory tree. A document's
// index is a single "path" field: its slash-separated path relative to
// Root with the file extension stripped.
type DirStreamer struct {
	// Root is the directory to walk. Defaults to "." if empty.
	Root string

	// Include is the list of doublestar patterns (relative to Root) a
	// file must match. Empty means DefaultInclude.
	Include []string

	// Exclude patterns remove files that matched Include.
	Exclude []string

	// Name optionally restricts files by base name glob (e.g. "cfr_*").
	Name string

	// Markdown extracts plain text from files with a .md or .markdown
	// extension before handing them to metrics.
	Markdown bool
}

// IndexLabels implements Streamer.
func (s *DirStreamer) IndexLabels() ([]string, error) {
	return []string{"path"}, nil
}

// Stream implements Streamer.
func (s *DirStreamer) Stream(fn func(Document) error) error {
	root := s.Root
	if root == "" {
		root = "."
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving corpus root: %w", err)
	}

	include := s.Include
	if len(include) == 0 {
		include = []string{DefaultInclude}
	}
	if err := validatePatterns(include); err != nil {
		return err
	}
	if err := validatePatterns(s.Exclude); err != nil {
		return err
	}

	var nameGlob glob.Glob
	if s.Name != "" {
		nameGlob, err = glob.Compile(s.Name)
		if err != nil {
			return fmt.Errorf("invalid name pattern %q: %w", s.Name, err)
		}
	}

	paths, err := collectPaths(absRoot, include, s.Exclude, nameGlob)
	if err != nil {
		return err
	}

	for _, rel := range paths {
		doc, err := s.readDocument(absRoot, rel)
		if err != nil {
			return err
		}
		if err := fn(doc); err != nil {
			return err
		}
	}
	return nil
}

func (s *DirStreamer) readDocument(absRoot, rel string) (Document, error) {
	data, err := os.ReadFile(filepath.Join(absRoot, filepath.FromSlash(rel)))
	if err != nil {
		return Document{}, fmt.Errorf("reading document %q: %w", rel, err)
	}

	text := string(data)
	if s.Markdown && isMarkdownPath(rel) {
		text = MarkdownText(data)
	}
	return NewDocument(pathIndex(rel), text), nil
}

// collectPaths walks absRoot and returns slash-separated relative paths
// matching the configured patterns, deduplicated and sorted.
func collectPaths(absRoot string, include, exclude []string, name glob.Glob) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	err := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, err := filepath.Rel(absRoot, path)
		if err != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			return nil
		}
		if !matchesAny(include, rel) || matchesAny(exclude, rel) {
			return nil
		}
		if name != nil && !name.Match(filepath.Base(rel)) {
			return nil
		}
		if !seen[rel] {
			seen[rel] = true
			result = append(result, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking corpus root: %w", err)
	}

	sort.Strings(result)
	return result, nil
}

func validatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid corpus pattern %q", p)
		}
	}
	return nil
}

func matchesAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		matched, err := doublestar.Match(p, rel)
		if err == nil && matched {
			return true
		}
	}
	return false
}

// pathIndex converts a slash-separated relative path into the single
// index field used by DirStreamer: the path with its extension removed.
func pathIndex(rel string) []string {
	return []string{strings.TrimSuffix(rel, filepath.Ext(rel))}
}

func isMarkdownPath(rel string) bool {
	switch strings.ToLower(filepath.Ext(rel)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// IndexStreamer streams documents listed in a CSV index file. Each row
// holds the document's index fields followed by its path in the final
// column; relative paths are resolved against the index file's
// directory.
type IndexStreamer struct {
	// IndexPath is the CSV index file location.
	IndexPath string

	// Header skips the first row when true.
	Header bool

	// Markdown extracts plain text from Markdown files, as DirStreamer.
	Markdown bool
}

// IndexLabels implements Streamer. With Header set, labels come from
// the first row (all columns before the trailing path column);
// otherwise they are generated as index1..indexN from the first row's
// arity.
func (s *IndexStreamer) IndexLabels() ([]string, error) {
	file, err := os.Open(s.IndexPath)
	if err != nil {
		return nil, fmt.Errorf("opening corpus index: %w", err)
	}
	defer func() { _ = file.Close() }()

	row, err := csv.NewReader(file).Read()
	if err != nil {
		return nil, fmt.Errorf("reading corpus index %q: %w", s.IndexPath, err)
	}
	if len(row) < 2 {
		return nil, fmt.Errorf(
			"corpus index %q: need at least one index field and a path",
			s.IndexPath,
		)
	}

	if s.Header {
		return append([]string(nil), row[:len(row)-1]...), nil
	}
	labels := make([]string, len(row)-1)
	for i := range labels {
		labels[i] = fmt.Sprintf("index%d", i+1)
	}
	return labels, nil
}

// Stream implements Streamer.
func (s *IndexStreamer) Stream(fn func(Document) error) error {
	file, err := os.Open(s.IndexPath)
	if err != nil {
		return fmt.Errorf("opening corpus index: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("parsing corpus index %q: %w", s.IndexPath, err)
	}
	if s.Header && len(rows) > 0 {
		rows = rows[1:]
	}

	baseDir := filepath.Dir(s.IndexPath)
	for i, row := range rows {
		if len(row) < 2 {
			return fmt.Errorf(
				"corpus index %q row %d: need at least one index field and a path",
				s.IndexPath, i+1,
			)
		}

		docPath := row[len(row)-1]
		if !filepath.IsAbs(docPath) {
			docPath = filepath.Join(baseDir, docPath)
		}
		data, err := os.ReadFile(docPath)
		if err != nil {
			return fmt.Errorf("reading document %q: %w", row[len(row)-1], err)
		}

		text := string(data)
		if s.Markdown && isMarkdownPath(docPath) {
			text = MarkdownText(data)
		}
		if err := fn(NewDocument(row[:len(row)-1], text)); err != nil {
			return err
		}
	}
	return nil
}
