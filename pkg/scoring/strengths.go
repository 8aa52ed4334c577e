package scoring

// Scaled-score thresholds for the strength/weakness partition.
const (
	StrengthMin = 13
	WeaknessMax = 7
)

// countsForAnalysis reports whether a subtest takes part in the
// strength/weakness partition. Only administered subtests do.
func countsForAnalysis(row SubtestScore) bool {
	return row.Scaled != nil
}

// partition splits administered subtests into strengths and weaknesses,
// keeping declaration order. Scores 8..12 land in neither list.
func partition(rows []SubtestScore) (strengths, weaknesses []Finding) {
	strengths = []Finding{}
	weaknesses = []Finding{}
	for _, row := range rows {
		if !countsForAnalysis(row) {
			continue
		}
		f := Finding{Key: row.Key, Name: row.Name, Scaled: *row.Scaled}
		switch {
		case f.Scaled >= StrengthMin:
			strengths = append(strengths, f)
		case f.Scaled <= WeaknessMax:
			weaknesses = append(weaknesses, f)
		}
	}
	return strengths, weaknesses
}
