// Package surface defines output rendering for normscope reports.
// Implementations handle different output targets: terminal, markdown, JSON.
package surface

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/normscope/normscope/pkg/report"
	"github.com/normscope/normscope/pkg/scoring"
)

// Renderer produces formatted output from a report document.
type Renderer interface {
	// Render writes the formatted document to the writer.
	Render(w io.Writer, doc *report.Document) error
}

// ForFormat returns the renderer for an output format name.
func ForFormat(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return &TerminalRenderer{}, nil
	case "markdown", "md":
		return &MarkdownRenderer{}, nil
	case "json":
		return &JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, markdown or json)", format)
	}
}

func formatPercentile(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func formatOptional(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

const dateLayout = "2006-01-02"

func examineeLines(ex scoring.Examinee) [][2]string {
	lines := [][2]string{
		{"Examinee", ex.Name},
		{"Sex", ex.Sex},
		{"Birth date", ex.BirthDate.Format(dateLayout)},
		{"Assessment date", ex.AssessmentDate.Format(dateLayout)},
		{"Location", ex.Location},
		{"Examiner", ex.Examiner},
	}
	out := lines[:0]
	for _, l := range lines {
		if l[1] != "" {
			out = append(out, l)
		}
	}
	return out
}

func indexRows(result *scoring.Result) [][]string {
	all := append(append([]scoring.IndexResult{}, result.Indices...), result.FullScale)
	rows := make([][]string, 0, len(all))
	for _, ir := range all {
		rows = append(rows, []string{
			ir.Abbrev,
			ir.Name,
			strconv.Itoa(ir.ScaledSum),
			strconv.Itoa(ir.Composite),
			formatPercentile(ir.Percentile),
			ir.Category,
		})
	}
	return rows
}
