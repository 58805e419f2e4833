package document

import (
	"testing"
)

func TestFindEquations(t *testing.T) {
	doc := &Document{
		Title: "worksheet",
		Lines: []string{
			"Solve the following:",
			"1 * X^2 - 2 * X^1 + 1 * X^0 = 0",
			"the answer = perfection",
			"2 * X^1 + 3 * X^0 = 0",
			"a = b = c",
			"",
			"4 * X^0 = 4 * X^0",
		},
	}

	got := FindEquations(doc)
	want := []string{
		"1 * X^2 - 2 * X^1 + 1 * X^0 = 0",
		"2 * X^1 + 3 * X^0 = 0",
		"4 * X^0 = 4 * X^0",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d equations, got %d: %v", len(want), len(got), got)
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("equation[%d]: expected %q, got %q", i, w, got[i])
		}
	}
}

func TestFindEquations_KeepsMalformedButEquationLike(t *testing.T) {
	// Lines in the grammar's alphabet are candidates even when they
	// will not parse; the pipeline reports those per-line.
	doc := &Document{Lines: []string{"1 * + = 2"}}
	got := FindEquations(doc)
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
}

func TestForFile(t *testing.T) {
	cases := []struct {
		filename string
		wantErr  bool
	}{
		{"eqs.txt", false},
		{"eqs.md", false},
		{"eqs.markdown", false},
		{"eqs.csv", false},
		{"eqs.html", false},
		{"eqs.htm", false},
		{"eqs.pdf", false},
		{"eqs.docx", false},
		{"eqs.xlsx", true},
		{"eqs", true},
	}
	for _, tc := range cases {
		_, err := ForFile(tc.filename)
		if tc.wantErr && err == nil {
			t.Errorf("%s: expected error", tc.filename)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.filename, err)
		}
	}
}

func TestIsSupportedExtension_CaseInsensitive(t *testing.T) {
	if !IsSupportedExtension("EQS.TXT") {
		t.Error("expected uppercase extension to be supported")
	}
	if IsSupportedExtension("eqs.exe") {
		t.Error("expected .exe to be unsupported")
	}
}
