package scoring

import (
	"errors"
	"slices"

	"github.com/normscope/normscope/pkg/norms"
)

// ScaledScores maps an administered subtest to its scaled score.
type ScaledScores map[norms.SubtestKey]int

// Convert maps a raw score to its scaled score by exact table lookup. A nil
// raw score (not administered) yields a nil scaled score, never zero.
func Convert(s norms.Subtest, raw *int) (*int, error) {
	if raw == nil {
		return nil, nil
	}
	scaled, ok := s.Scaled(*raw)
	if !ok {
		return nil, &RawScoreError{Subtest: s.Key, Raw: *raw, MaxRaw: s.MaxRaw()}
	}
	return &scaled, nil
}

// convertAll converts every administered subtest in declaration order. Every
// out-of-domain raw score and every key the battery does not define is
// reported, joined into one error.
func convertAll(subtests []norms.Subtest, raw RawScores) ([]SubtestScore, ScaledScores, error) {
	rows := make([]SubtestScore, 0, len(subtests))
	scaled := make(ScaledScores, len(raw))
	var errs []error

	for _, s := range subtests {
		row := SubtestScore{Key: s.Key, Abbrev: s.Abbrev, Name: s.Name}
		if r, ok := raw[s.Key]; ok {
			row.Raw = &r
		}
		ss, err := Convert(s, row.Raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ss != nil {
			row.Scaled = ss
			scaled[s.Key] = *ss
		}
		rows = append(rows, row)
	}

	var unknown []norms.SubtestKey
	for key := range raw {
		if !slices.ContainsFunc(subtests, func(s norms.Subtest) bool { return s.Key == key }) {
			unknown = append(unknown, key)
		}
	}
	slices.Sort(unknown)
	for _, key := range unknown {
		errs = append(errs, &UnknownSubtestError{Subtest: key})
	}

	if len(errs) > 0 {
		return nil, nil, errors.Join(errs...)
	}
	return rows, scaled, nil
}
