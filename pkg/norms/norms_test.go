package norms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/normscope/normscope/pkg/norms"
)

func TestSubtestTablesWellFormed(t *testing.T) {
	b := norms.Default()
	subtests := b.Subtests()
	require.Len(t, subtests, 10)

	seen := map[norms.SubtestKey]bool{}
	for _, s := range subtests {
		assert.False(t, seen[s.Key], "duplicate subtest %s", s.Key)
		seen[s.Key] = true

		table := s.Table()
		assert.Equal(t, 30, s.MaxRaw(), s.Key)
		require.Len(t, table, 31, s.Key)
		for raw, v := range table {
			assert.GreaterOrEqual(t, v, 1, "%s raw %d", s.Key, raw)
			assert.LessOrEqual(t, v, 19, "%s raw %d", s.Key, raw)
			if raw > 0 {
				assert.GreaterOrEqual(t, v, table[raw-1], "%s not monotonic at raw %d", s.Key, raw)
			}
		}
	}
}

func TestBlockDesignSpotChecks(t *testing.T) {
	bd, ok := norms.Default().Subtest(norms.BlockDesign)
	require.True(t, ok)

	tests := []struct {
		raw, want int
	}{
		{0, 1},
		{6, 3},
		{13, 10},
		{20, 17},
		{30, 19},
	}
	for _, tt := range tests {
		got, ok := bd.Scaled(tt.raw)
		require.True(t, ok, "raw %d", tt.raw)
		assert.Equal(t, tt.want, got, "raw %d", tt.raw)
	}
}

func TestSubtestScaledOutOfDomain(t *testing.T) {
	bd, _ := norms.Default().Subtest(norms.BlockDesign)
	for _, raw := range []int{-1, 31, 100} {
		_, ok := bd.Scaled(raw)
		assert.False(t, ok, "raw %d should be outside the table", raw)
	}
}

func TestTableCopiesAreIndependent(t *testing.T) {
	bd, _ := norms.Default().Subtest(norms.BlockDesign)
	table := bd.Table()
	table[6] = 99

	again, _ := norms.Default().Subtest(norms.BlockDesign)
	got, _ := again.Scaled(6)
	assert.Equal(t, 3, got)
}

func TestIndexMembersAreIndependent(t *testing.T) {
	b := norms.Default()
	ix := b.Indices()
	ix[0].Members[0] = norms.BlockDesign

	assert.Equal(t, []norms.SubtestKey{norms.Information, norms.Similarities}, b.Indices()[0].Members)

	fs := b.FullScale()
	fs.Members = append(fs.Members, norms.BlockDesign)
	assert.Empty(t, b.FullScale().Members)
}

func TestIndexTablesWellFormed(t *testing.T) {
	b := norms.Default()
	all := append(b.Indices(), b.FullScale())
	for _, ix := range all {
		pts := ix.Points()
		require.NotEmpty(t, pts, ix.Key)
		for i, p := range pts {
			assert.Zero(t, p.Sum%2, "%s key %d is odd", ix.Key, p.Sum)
			if i > 0 {
				assert.Greater(t, p.Sum, pts[i-1].Sum, "%s keys not ascending", ix.Key)
				assert.GreaterOrEqual(t, p.Composite, pts[i-1].Composite, "%s composites decrease", ix.Key)
			}
		}
	}
}

func TestIndexMembers(t *testing.T) {
	b := norms.Default()
	covered := map[norms.SubtestKey]int{}
	for _, ix := range b.Indices() {
		assert.Len(t, ix.Members, 2, ix.Key)
		for _, m := range ix.Members {
			_, ok := b.Subtest(m)
			assert.True(t, ok, "%s member %s unknown", ix.Key, m)
			covered[m]++
		}
	}
	assert.Len(t, covered, 10)
	for key, n := range covered {
		assert.Equal(t, 1, n, "%s belongs to %d indices", key, n)
	}
	assert.Empty(t, b.FullScale().Members)
}

func TestLookup(t *testing.T) {
	pts := []norms.Point{{Sum: 10, Composite: 70}, {Sum: 12, Composite: 75}, {Sum: 14, Composite: 81}}

	tests := []struct {
		name string
		sum  int
		want int
	}{
		{"below first key", 0, 70},
		{"exact first key", 10, 70},
		{"between keys rounds up", 11, 75},
		{"exact middle key", 12, 75},
		{"exact last key", 14, 81},
		{"above last key", 40, 81},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, norms.Lookup(pts, tt.sum))
		})
	}

	assert.Zero(t, norms.Lookup(nil, 5))
}

func TestLookupMonotonic(t *testing.T) {
	b := norms.Default()
	for _, ix := range append(b.Indices(), b.FullScale()) {
		prev := ix.Composite(0)
		for sum := 1; sum <= 200; sum++ {
			got := ix.Composite(sum)
			assert.GreaterOrEqual(t, got, prev, "%s decreased at sum %d", ix.Key, sum)
			prev = got
		}
	}
}

func TestFullScaleAtFifty(t *testing.T) {
	fs := norms.Default().FullScale()
	assert.Equal(t, 88, fs.Composite(50))
	assert.Equal(t, 90, fs.Composite(51))
	assert.Equal(t, 160, fs.Composite(190))
}

func TestPercentileGaps(t *testing.T) {
	b := norms.Default()
	for _, c := range []int{112, 113, 114} {
		_, ok := b.Percentile(c)
		assert.False(t, ok, "composite %d should have no entry", c)
	}

	p, ok := b.Percentile(100)
	require.True(t, ok)
	assert.Equal(t, 50.0, p)

	p, ok = b.Percentile(130)
	require.True(t, ok)
	assert.Equal(t, 98.0, p)
}

func TestBandsDescending(t *testing.T) {
	bands := norms.Default().Bands()
	require.Len(t, bands, 7)
	for i := 1; i < len(bands); i++ {
		assert.Less(t, bands[i].Min, bands[i-1].Min)
	}
	assert.Equal(t, "Very superior", bands[0].Category)
	assert.Equal(t, norms.LevelStrength, bands[0].Level)
	assert.Equal(t, "Very low", bands[len(bands)-1].Category)
}

func TestParseSubtestKey(t *testing.T) {
	b := norms.Default()
	key, ok := b.ParseSubtestKey("zoo_locations")
	assert.True(t, ok)
	assert.Equal(t, norms.ZooLocations, key)

	_, ok = b.ParseSubtestKey("coding")
	assert.False(t, ok)
}
