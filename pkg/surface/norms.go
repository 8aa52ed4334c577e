package surface

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/normscope/normscope/pkg/norms"
)

// RenderBattery prints the subtests, index definitions and category bands of b.
func RenderBattery(w io.Writer, b *norms.Battery) error {
	fmt.Fprintln(w, "Subtests")
	var rows [][]string
	for _, s := range b.Subtests() {
		rows = append(rows, []string{string(s.Key), s.Abbrev, s.Name, "0.." + strconv.Itoa(s.MaxRaw())})
	}
	renderTable(w, []string{"Key", "Abbrev", "Name", "Raw"}, rows)

	fmt.Fprintln(w, "Indices")
	rows = nil
	for _, ix := range append(b.Indices(), b.FullScale()) {
		members := "all primary indices"
		if len(ix.Members) > 0 {
			names := make([]string, len(ix.Members))
			for i, m := range ix.Members {
				names[i] = string(m)
			}
			members = strings.Join(names, " + ")
		}
		pts := ix.Points()
		span := fmt.Sprintf("%d..%d -> %d..%d", pts[0].Sum, pts[len(pts)-1].Sum, pts[0].Composite, pts[len(pts)-1].Composite)
		rows = append(rows, []string{ix.Abbrev, ix.Name, members, span})
	}
	renderTable(w, []string{"Index", "Name", "Sum of", "Table"}, rows)

	fmt.Fprintln(w, "Categories")
	rows = nil
	for _, band := range b.Bands() {
		rows = append(rows, []string{">= " + strconv.Itoa(band.Min), band.Category, string(band.Level)})
	}
	renderTable(w, []string{"Composite", "Category", "Level"}, rows)
	return nil
}

// RenderSubtestTable prints the raw-to-scaled conversion table of s.
func RenderSubtestTable(w io.Writer, s norms.Subtest) error {
	fmt.Fprintf(w, "%s (%s)\n", s.Name, s.Abbrev)
	table := s.Table()
	rows := make([][]string, len(table))
	for raw, scaled := range table {
		rows[raw] = []string{strconv.Itoa(raw), strconv.Itoa(scaled)}
	}
	renderTable(w, []string{"Raw", "Scaled"}, rows)
	return nil
}
