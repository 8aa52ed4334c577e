package surface

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/normscope/normscope/pkg/norms"
	"github.com/normscope/normscope/pkg/report"
	"github.com/normscope/normscope/pkg/scoring"
)

// TerminalRenderer renders a report as plain tables with optional color.
type TerminalRenderer struct {
	// NoColor disables ANSI colors even on a terminal.
	NoColor bool
}

func (r *TerminalRenderer) colored() bool {
	if r.NoColor || color.NoColor {
		return false
	}
	_, ok := os.LookupEnv("NO_COLOR")
	return !ok
}

func (r *TerminalRenderer) paint(s string, attrs ...color.Attribute) string {
	if !r.colored() || len(attrs) == 0 {
		return s
	}
	return color.New(attrs...).Sprint(s)
}

func levelColor(level norms.NormativeLevel) []color.Attribute {
	switch level {
	case norms.LevelStrength:
		return []color.Attribute{color.FgGreen}
	case norms.LevelWeakness:
		return []color.Attribute{color.FgRed}
	default:
		return nil
	}
}

func (r *TerminalRenderer) Render(w io.Writer, doc *report.Document) error {
	res := doc.Result
	if res == nil {
		return fmt.Errorf("document %s has no result", doc.ID)
	}

	// Header
	fs := res.FullScale
	fmt.Fprintf(w, "%s\n\n", r.paint(fmt.Sprintf("%s %d — %s (percentile %s)",
		fs.Abbrev, fs.Composite, fs.Category, formatPercentile(fs.Percentile)),
		append([]color.Attribute{color.Bold}, levelColor(fs.Level)...)...))

	for _, l := range examineeLines(doc.Examinee) {
		fmt.Fprintf(w, "%-16s %s\n", l[0]+":", l[1])
	}
	fmt.Fprintf(w, "%-16s %s\n\n", "Age:", res.Age)

	// Subtests
	fmt.Fprintln(w, r.paint("Subtests", color.Bold))
	subtestRows := make([][]string, 0, len(res.Subtests))
	for _, s := range res.Subtests {
		subtestRows = append(subtestRows, []string{s.Abbrev, s.Name, formatOptional(s.Raw), formatOptional(s.Scaled)})
	}
	renderTable(w, []string{"Abbrev", "Subtest", "Raw", "Scaled"}, subtestRows)

	// Indices
	fmt.Fprintln(w, r.paint("Indices", color.Bold))
	rows := indexRows(res)
	all := append(append([]scoring.IndexResult{}, res.Indices...), res.FullScale)
	for i, ir := range all {
		rows[i][5] = r.paint(rows[i][5], levelColor(ir.Level)...)
	}
	renderTable(w, []string{"Index", "Name", "Sum", "Composite", "Percentile", "Category"}, rows)

	r.renderFindings(w, "Strengths", res.Strengths, color.FgGreen)
	r.renderFindings(w, "Weaknesses", res.Weaknesses, color.FgRed)
	return nil
}

func (r *TerminalRenderer) renderFindings(w io.Writer, title string, findings []scoring.Finding, c color.Attribute) {
	fmt.Fprintf(w, "%s:\n", r.paint(title, color.Bold))
	if len(findings) == 0 {
		fmt.Fprintln(w, "  none")
	}
	for _, f := range findings {
		fmt.Fprintf(w, "  %s %s (%s)\n", r.paint("●", c), f.Name, strconv.Itoa(f.Scaled))
	}
	fmt.Fprintln(w)
}

func renderTable(w io.Writer, headers []string, rows [][]string) {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
			},
			Row: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.Border{
				Left:   tw.Off,
				Right:  tw.Off,
				Top:    tw.Off,
				Bottom: tw.Off,
			},
			Settings: tw.Settings{
				Separators: tw.Separators{
					BetweenColumns: tw.Off,
				},
			},
		}),
	)

	table.Header(headers)
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
	fmt.Fprintln(w)
}
