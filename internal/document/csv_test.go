package document

import (
	"strings"
	"testing"
)

func TestCSVExtractor_Cells(t *testing.T) {
	input := "id,equation\n1,2 * X^1 + 3 * X^0 = 0\n2,5 * X^0 = 4 * X^0\n"
	e := &CSVExtractor{}
	doc, err := e.Extract(strings.NewReader(input), "batch.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	eqs := FindEquations(doc)
	if len(eqs) != 2 {
		t.Fatalf("expected 2 equations, got %d: %v", len(eqs), eqs)
	}
	if doc.Title != "batch" {
		t.Errorf("expected title %q, got %q", "batch", doc.Title)
	}
}

func TestCSVExtractor_RaggedRows(t *testing.T) {
	input := "a,b,c\nonly,two\n1 * X^1 = 0\n"
	e := &CSVExtractor{}
	doc, err := e.Extract(strings.NewReader(input), "ragged.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(FindEquations(doc)) != 1 {
		t.Errorf("expected 1 equation from ragged csv, got %v", doc.Lines)
	}
}
