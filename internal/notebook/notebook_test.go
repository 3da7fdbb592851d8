package notebook

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuild_CellLayout(t *testing.T) {
	questions := []SolvedQuestion{
		{Number: "1", Markdown: "1. Compute $1+1$.", Code: "print(1+1)"},
		{Number: "2", Markdown: "2. Plot it.", Code: "plt.plot([1,2])"},
	}

	nb := Build(questions, "Exam - 풀이")
	// title + imports + 2*(markdown + code)
	if len(nb.Cells) != 6 {
		t.Fatalf("expected 6 cells, got %d", len(nb.Cells))
	}

	title, ok := nb.Cells[0].(markdownCell)
	if !ok {
		t.Fatalf("expected markdown title cell, got %T", nb.Cells[0])
	}
	if title.Source[0] != "# Exam - 풀이" {
		t.Errorf("unexpected title: %v", title.Source)
	}

	imports, ok := nb.Cells[1].(codeCell)
	if !ok {
		t.Fatalf("expected code imports cell, got %T", nb.Cells[1])
	}
	if !strings.Contains(strings.Join(imports.Source, ""), "import numpy as np") {
		t.Errorf("imports cell missing numpy: %v", imports.Source)
	}

	q1 := nb.Cells[2].(markdownCell)
	if q1.Source[0] != "## 문제 1\n" {
		t.Errorf("unexpected question heading: %q", q1.Source[0])
	}
}

func TestBuild_PreambleHeading(t *testing.T) {
	nb := Build([]SolvedQuestion{{Number: "0", Markdown: "Instructions."}}, "t")
	cell := nb.Cells[2].(markdownCell)
	if cell.Source[0] != "## 서문\n" {
		t.Errorf("expected preamble heading, got %q", cell.Source[0])
	}
	// No code for the preamble.
	if len(nb.Cells) != 3 {
		t.Errorf("expected no code cell after preamble, got %d cells", len(nb.Cells))
	}
}

func TestBuild_NotebookMetadata(t *testing.T) {
	nb := Build(nil, "t")
	if nb.NBFormat != 4 {
		t.Errorf("expected nbformat 4, got %d", nb.NBFormat)
	}
	if nb.Metadata.Kernelspec.Name != "python3" {
		t.Errorf("unexpected kernelspec: %+v", nb.Metadata.Kernelspec)
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "out.ipynb")

	nb := Build([]SolvedQuestion{{Number: "1", Markdown: "q", Code: "x = 1"}}, "t")
	if err := Write(nb, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["nbformat"].(float64) != 4 {
		t.Errorf("expected nbformat 4 in output")
	}
	cells := decoded["cells"].([]any)
	if len(cells) != 4 {
		t.Errorf("expected 4 cells in output, got %d", len(cells))
	}
	code := cells[3].(map[string]any)
	if code["execution_count"] != nil {
		t.Errorf("expected null execution_count, got %v", code["execution_count"])
	}
	if outputs, ok := code["outputs"].([]any); !ok || len(outputs) != 0 {
		t.Errorf("expected empty outputs array, got %v", code["outputs"])
	}
}

func TestSourceLines(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a\nb\n", []string{"a\n", "b\n"}},
		{"a\nb", []string{"a\n", "b"}},
		{"single", []string{"single"}},
		{"", []string{}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, sourceLines(tt.input)); diff != "" {
			t.Errorf("sourceLines(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}
