package corpus

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownText extracts plain prose from Markdown source. Inline markup
// (links, emphasis, code spans, images) is flattened to its visible
// text; fenced and indented code blocks are dropped, since code is not
// prose and would skew word-based metrics.
func MarkdownText(source []byte) string {
	reader := text.NewReader(source)
	doc := goldmark.DefaultParser().Parse(reader)
	return extractPlainText(doc, source)
}

// extractPlainText walks the AST below node collecting text content.
// Block boundaries become single newlines, soft and hard line breaks
// become spaces.
func extractPlainText(node ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Type() == ast.TypeBlock && n.Kind() != ast.KindDocument {
				b.WriteByte('\n')
			}
			return ast.WalkContinue, nil
		}

		switch t := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(collapseBlankRuns(b.String()))
}

// collapseBlankRuns reduces runs of blank lines to a single newline so
// block separation stays stable regardless of nesting depth.
func collapseBlankRuns(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
