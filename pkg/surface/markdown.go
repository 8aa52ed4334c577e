package surface

import (
	"fmt"
	"io"
	"strings"

	"github.com/normscope/normscope/pkg/report"
	"github.com/normscope/normscope/pkg/scoring"
)

// MarkdownRenderer produces a markdown summary suitable for export.
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) Render(w io.Writer, doc *report.Document) error {
	_, err := io.WriteString(w, buildMarkdown(doc))
	return err
}

func buildMarkdown(doc *report.Document) string {
	var sb strings.Builder
	res := doc.Result

	sb.WriteString(fmt.Sprintf("# Score report %s\n\n", doc.ID))
	for _, l := range examineeLines(doc.Examinee) {
		sb.WriteString(fmt.Sprintf("- **%s:** %s\n", l[0], l[1]))
	}
	if res == nil {
		return sb.String()
	}
	sb.WriteString(fmt.Sprintf("- **Age:** %d years, %d months, %d days\n\n", res.Age.Years, res.Age.Months, res.Age.Days))

	sb.WriteString("## Subtests\n\n")
	sb.WriteString("| Subtest | Raw | Scaled |\n|---------|-----|--------|\n")
	for _, s := range res.Subtests {
		sb.WriteString(fmt.Sprintf("| %s (%s) | %s | %s |\n", s.Name, s.Abbrev, formatOptional(s.Raw), formatOptional(s.Scaled)))
	}
	sb.WriteString("\n")

	sb.WriteString("## Indices\n\n")
	sb.WriteString("| Index | Sum | Composite | Percentile | Category |\n|-------|-----|-----------|------------|----------|\n")
	for _, row := range indexRows(res) {
		sb.WriteString(fmt.Sprintf("| %s (%s) | %s | %s | %s | %s |\n", row[1], row[0], row[2], row[3], row[4], row[5]))
	}
	sb.WriteString("\n")

	writeFindings(&sb, "Strengths", res.Strengths)
	writeFindings(&sb, "Weaknesses", res.Weaknesses)

	return sb.String()
}

func writeFindings(sb *strings.Builder, title string, findings []scoring.Finding) {
	sb.WriteString(fmt.Sprintf("## %s\n\n", title))
	if len(findings) == 0 {
		sb.WriteString("_None._\n\n")
		return
	}
	for _, f := range findings {
		sb.WriteString(fmt.Sprintf("- %s: %d\n", f.Name, f.Scaled))
	}
	sb.WriteString("\n")
}
