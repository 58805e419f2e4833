package document

import (
	"bytes"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownExtractor handles Markdown files using goldmark.
type MarkdownExtractor struct{}

func (e *MarkdownExtractor) Extract(r io.Reader, filename string) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	var buf bytes.Buffer
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		// Headings never carry equations worth solving; everything
		// else is flattened block by block.
		if _, isHeading := n.(*ast.Heading); isHeading {
			continue
		}
		t := blockText(n, src)
		if t != "" {
			buf.WriteString(t)
			buf.WriteByte('\n')
		}
	}

	return &Document{
		Title: titleFromFilename(filename),
		Lines: splitLines(buf.String()),
	}, nil
}

// blockText gets the text content of a goldmark AST node, descending
// into nested blocks (lists, quotes). The raw source lines are
// preferred over the parsed inlines: the '*' in a term would
// otherwise be eaten as emphasis markup.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		if lines := n.Lines(); lines.Len() > 0 {
			for i := 0; i < lines.Len(); i++ {
				line := lines.At(i)
				buf.Write(line.Value(src))
				buf.WriteByte('\n')
			}
			return buf.String()
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if s := blockText(c, src); s != "" {
			buf.WriteString(s)
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}
