package document

import (
	"strings"
	"testing"
)

func TestMarkdownExtractor_EquationsSurviveEmphasisMarkup(t *testing.T) {
	// The '*' in a term must not be eaten as markdown emphasis.
	input := "# Quadratics\n\n5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0\n\nSome prose here.\n"
	e := &MarkdownExtractor{}
	doc, err := e.Extract(strings.NewReader(input), "quadratics.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	eqs := FindEquations(doc)
	if len(eqs) != 1 {
		t.Fatalf("expected 1 equation, got %d: %v", len(eqs), eqs)
	}
	if eqs[0] != "5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0" {
		t.Errorf("equation mangled: %q", eqs[0])
	}
}

func TestMarkdownExtractor_CodeBlock(t *testing.T) {
	input := "Example:\n\n```\n2 * X^1 + 3 * X^0 = 0\n```\n"
	e := &MarkdownExtractor{}
	doc, err := e.Extract(strings.NewReader(input), "example.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	eqs := FindEquations(doc)
	if len(eqs) != 1 {
		t.Fatalf("expected 1 equation, got %d: %v", len(eqs), eqs)
	}
}

func TestMarkdownExtractor_HeadingsSkipped(t *testing.T) {
	input := "# 1 * X^1 = 0\n\nplain text\n"
	e := &MarkdownExtractor{}
	doc, err := e.Extract(strings.NewReader(input), "headings.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(FindEquations(doc)) != 0 {
		t.Error("expected heading content to be skipped")
	}
}

func TestMarkdownExtractor_Title(t *testing.T) {
	e := &MarkdownExtractor{}
	doc, err := e.Extract(strings.NewReader("text\n"), "notes.markdown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "notes" {
		t.Errorf("expected title %q, got %q", "notes", doc.Title)
	}
}
