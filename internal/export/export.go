// Package export writes a completed session's result and missed questions
// as a shareable report.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/abhisek/quizday/internal/session"
)

// Format selects the report encoding.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatJSON     Format = "json"
)

// ParseFormat maps a file extension or name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "md", "markdown":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// Report is the data rendered into an export.
type Report struct {
	ThemeName string          `json:"theme_name"`
	ModeName  string          `json:"mode_name"`
	Summary   session.Summary `json:"summary"`
}

const markdownReport = `# {{.ThemeName}} - Day {{.Summary.Day}}

Mode: {{.ModeName}}
Completed: {{.Summary.CompletedAt.Format "2006-01-02 15:04"}}

| Score | Accuracy | Time |
|---|---|---|
| {{.Summary.Score}}/{{.Summary.Total}} | {{.Summary.AccuracyPercent}}% | {{.Summary.Elapsed}} |
{{if .Summary.WrongAnswers}}
## Wrong answers
{{range $i, $w := .Summary.WrongAnswers}}
### {{inc $i}}. {{$w.Question}}

- Your answer: {{$w.UserAnswer}}
- Correct answer: {{$w.CorrectAnswer}}
- Explanation: {{$w.Explanation}}
{{end}}{{else}}
No wrong answers.
{{end}}`

var markdownTmpl = template.Must(template.New("report").
	Funcs(template.FuncMap{"inc": func(i int) int { return i + 1 }}).
	Parse(markdownReport))

// Write renders r to w in format f.
func Write(w io.Writer, r Report, f Format) error {
	switch f {
	case FormatMarkdown:
		return markdownTmpl.Execute(w, r)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	default:
		return fmt.Errorf("unsupported export format %q", f)
	}
}

// FileName is the default report name for r.
func FileName(r Report, f Format) string {
	return fmt.Sprintf("quizday-%s-day%d-%s.%s",
		r.Summary.Theme, r.Summary.Day,
		r.Summary.CompletedAt.Format("20060102-150405"), f)
}

// WriteFile renders r into path, creating parent directories.
func WriteFile(path string, r Report, f Format) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := Write(file, r, f); err != nil {
		file.Close()
		return fmt.Errorf("write export: %w", err)
	}
	return file.Close()
}
