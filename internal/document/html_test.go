package document

import (
	"strings"
	"testing"
)

func TestHTMLExtractor_Paragraphs(t *testing.T) {
	input := `<html><head><title>Worksheet</title></head><body>
<h1>Quadratics</h1>
<p>2 * X^1 + 3 * X^0 = 0</p>
<script>var x = 1;</script>
<ul><li>1 * X^2 + 1 * X^0 = 0</li></ul>
</body></html>`
	e := &HTMLExtractor{}
	doc, err := e.Extract(strings.NewReader(input), "worksheet.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "Worksheet" {
		t.Errorf("expected title from <title>, got %q", doc.Title)
	}

	eqs := FindEquations(doc)
	if len(eqs) != 2 {
		t.Fatalf("expected 2 equations, got %d: %v", len(eqs), eqs)
	}
}

func TestHTMLExtractor_SkipsScriptContent(t *testing.T) {
	input := `<body><script>1 * X^1 = 0</script><p>prose</p></body>`
	e := &HTMLExtractor{}
	doc, err := e.Extract(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(FindEquations(doc)) != 0 {
		t.Error("expected script content to be skipped")
	}
}
