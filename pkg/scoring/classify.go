package scoring

import "github.com/normscope/normscope/pkg/norms"

// DefaultPercentile is reported for composites without a percentile table entry.
const DefaultPercentile = 50.0

// Percentile returns the percentile rank for composite, or DefaultPercentile
// when the table has no exact entry. No interpolation is attempted.
func Percentile(b *norms.Battery, composite int) float64 {
	if p, ok := b.Percentile(composite); ok {
		return p
	}
	return DefaultPercentile
}

// Classify returns the band of the highest threshold composite reaches.
func Classify(b *norms.Battery, composite int) norms.Band {
	bands := b.Bands()
	for _, band := range bands {
		if composite >= band.Min {
			return band
		}
	}
	return bands[len(bands)-1]
}

func classifyIndex(b *norms.Battery, ir IndexResult) IndexResult {
	band := Classify(b, ir.Composite)
	ir.Percentile = Percentile(b, ir.Composite)
	ir.Category = band.Category
	ir.Level = band.Level
	return ir
}
