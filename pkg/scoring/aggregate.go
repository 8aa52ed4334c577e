package scoring

import "github.com/normscope/normscope/pkg/norms"

// contributesToSum reports the value a subtest adds to an index sum. A
// subtest that was not administered adds zero.
func contributesToSum(scaled ScaledScores, key norms.SubtestKey) int {
	return scaled[key]
}

// indexSum adds the scaled scores of the index members.
func indexSum(ix norms.Index, scaled ScaledScores) int {
	sum := 0
	for _, m := range ix.Members {
		sum += contributesToSum(scaled, m)
	}
	return sum
}

// aggregate computes the scaled sum and composite of every primary index,
// then the full-scale composite from the sum of the five index sums.
func aggregate(b *norms.Battery, scaled ScaledScores) (primary []IndexResult, full IndexResult) {
	indices := b.Indices()
	primary = make([]IndexResult, 0, len(indices))

	total := 0
	for _, ix := range indices {
		sum := indexSum(ix, scaled)
		total += sum
		primary = append(primary, IndexResult{
			Key:       ix.Key,
			Abbrev:    ix.Abbrev,
			Name:      ix.Name,
			ScaledSum: sum,
			Composite: ix.Composite(sum),
		})
	}

	fs := b.FullScale()
	full = IndexResult{
		Key:       fs.Key,
		Abbrev:    fs.Abbrev,
		Name:      fs.Name,
		ScaledSum: total,
		Composite: fs.Composite(total),
	}
	return primary, full
}
