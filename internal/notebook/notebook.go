// Package notebook builds Jupyter notebooks (nbformat v4) pairing each
// question's markdown with its generated solution code.
package notebook

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SolvedQuestion is one question plus its generated solution code.
type SolvedQuestion struct {
	Number   string
	Markdown string
	Code     string
}

// commonImports is the shared setup cell every generated notebook starts
// with: the usual analysis stack plus Korean font settings for plots.
const commonImports = `import numpy as np
import pandas as pd
import matplotlib.pyplot as plt
from scipy import stats

plt.rcParams['font.family'] = 'Malgun Gothic'  # 한글 폰트
plt.rcParams['axes.unicode_minus'] = False      # 마이너스 부호
`

// Notebook is an nbformat v4 document.
type Notebook struct {
	Cells         []any    `json:"cells"`
	Metadata      metadata `json:"metadata"`
	NBFormat      int      `json:"nbformat"`
	NBFormatMinor int      `json:"nbformat_minor"`
}

type metadata struct {
	Kernelspec   kernelspec   `json:"kernelspec"`
	LanguageInfo languageInfo `json:"language_info"`
}

type kernelspec struct {
	DisplayName string `json:"display_name"`
	Language    string `json:"language"`
	Name        string `json:"name"`
}

type languageInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type markdownCell struct {
	CellType string   `json:"cell_type"`
	Metadata struct{} `json:"metadata"`
	Source   []string `json:"source"`
}

type codeCell struct {
	CellType       string     `json:"cell_type"`
	ExecutionCount *int       `json:"execution_count"`
	Metadata       struct{}   `json:"metadata"`
	Outputs        []struct{} `json:"outputs"`
	Source         []string   `json:"source"`
}

func newMarkdownCell(text string) markdownCell {
	return markdownCell{CellType: "markdown", Source: sourceLines(text)}
}

func newCodeCell(code string) codeCell {
	return codeCell{
		CellType: "code",
		Outputs:  []struct{}{},
		Source:   sourceLines(code),
	}
}

// Build assembles the notebook: title cell, common imports, then one
// markdown + code cell pair per question.
func Build(questions []SolvedQuestion, title string) *Notebook {
	nb := &Notebook{
		Metadata: metadata{
			Kernelspec: kernelspec{
				DisplayName: "Python 3",
				Language:    "python",
				Name:        "python3",
			},
			LanguageInfo: languageInfo{
				Name:    "python",
				Version: "3.10.0",
			},
		},
		NBFormat:      4,
		NBFormatMinor: 4,
	}

	nb.Cells = append(nb.Cells, newMarkdownCell("# "+title))
	nb.Cells = append(nb.Cells, newCodeCell(commonImports))

	for _, q := range questions {
		heading := "## 문제 " + q.Number
		if q.Number == "0" {
			heading = "## 서문"
		}
		nb.Cells = append(nb.Cells, newMarkdownCell(heading+"\n\n"+q.Markdown))
		if q.Code != "" {
			nb.Cells = append(nb.Cells, newCodeCell(q.Code))
		}
	}

	return nb
}

// Write persists the notebook as indented JSON.
func Write(nb *Notebook, path string) error {
	data, err := json.MarshalIndent(nb, "", " ")
	if err != nil {
		return fmt.Errorf("marshal notebook: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write notebook: %w", err)
	}
	return nil
}

// sourceLines splits cell text the way Jupyter stores it: one entry per
// line, each keeping its trailing newline.
func sourceLines(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	if len(lines) == 0 {
		return []string{}
	}
	return lines
}
