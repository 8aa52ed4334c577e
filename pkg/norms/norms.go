// Package norms holds the static reference data of the battery: per-subtest
// raw-to-scaled conversion tables, per-index sum-to-composite tables, the
// composite-to-percentile table and the descriptive category bands.
//
// All tables belong to a single age band and are built once at package
// initialisation. Nothing in this package mutates them afterwards; accessors
// hand out copies so callers cannot either.
package norms

import (
	"slices"
	"sort"
)

// SubtestKey identifies one of the ten subtests.
type SubtestKey string

const (
	BlockDesign     SubtestKey = "block_design"
	Information     SubtestKey = "information"
	MatrixReasoning SubtestKey = "matrix_reasoning"
	BugSearch       SubtestKey = "bug_search"
	PictureMemory   SubtestKey = "picture_memory"
	Similarities    SubtestKey = "similarities"
	PictureConcepts SubtestKey = "picture_concepts"
	Cancellation    SubtestKey = "cancellation"
	ZooLocations    SubtestKey = "zoo_locations"
	ObjectAssembly  SubtestKey = "object_assembly"
)

// IndexKey identifies a primary index or the full-scale composite.
type IndexKey string

const (
	VerbalComprehension IndexKey = "VCI"
	VisualSpatial       IndexKey = "VSI"
	FluidReasoning      IndexKey = "FRI"
	WorkingMemory       IndexKey = "WMI"
	ProcessingSpeed     IndexKey = "PSI"
	FullScale           IndexKey = "FSIQ"
)

// NormativeLevel is the coarse normative reading of a composite score.
type NormativeLevel string

const (
	LevelStrength NormativeLevel = "strength"
	LevelNormal   NormativeLevel = "normal"
	LevelWeakness NormativeLevel = "weakness"
)

// Subtest is a subtest definition with its raw-to-scaled conversion table.
type Subtest struct {
	Key    SubtestKey `json:"key"`
	Abbrev string     `json:"abbrev"`
	Name   string     `json:"name"`

	scaled []int // indexed by raw score
}

// MaxRaw returns the highest raw score covered by the conversion table.
func (s Subtest) MaxRaw() int { return len(s.scaled) - 1 }

// Scaled returns the scaled score for raw. ok is false when raw lies outside
// the table domain; the table is never extrapolated.
func (s Subtest) Scaled(raw int) (scaled int, ok bool) {
	if raw < 0 || raw >= len(s.scaled) {
		return 0, false
	}
	return s.scaled[raw], true
}

// Table returns a copy of the conversion table, indexed by raw score.
func (s Subtest) Table() []int {
	out := make([]int, len(s.scaled))
	copy(out, s.scaled)
	return out
}

// Point is one published entry of a sum-to-composite table.
type Point struct {
	Sum       int `json:"sum"`
	Composite int `json:"composite"`
}

// Index is an index definition. Members lists the subtests summed into a
// primary index; it is empty for the full-scale composite, whose input is the
// sum of the five primary index sums.
type Index struct {
	Key     IndexKey     `json:"key"`
	Abbrev  string       `json:"abbrev"`
	Name    string       `json:"name"`
	Members []SubtestKey `json:"members,omitempty"`

	points []Point // ascending by Sum
}

// Composite maps a scaled-score sum to its composite score with Lookup.
func (ix Index) Composite(sum int) int { return Lookup(ix.points, sum) }

// Points returns a copy of the sum-to-composite table.
func (ix Index) Points() []Point {
	out := make([]Point, len(ix.points))
	copy(out, ix.points)
	return out
}

// Lookup resolves sum against a table published only at discrete points:
// it returns the composite of the smallest key >= sum, or the composite of
// the largest key when sum exceeds every key. points must be sorted
// ascending by Sum.
func Lookup(points []Point, sum int) int {
	if len(points) == 0 {
		return 0
	}
	i := sort.Search(len(points), func(i int) bool { return points[i].Sum >= sum })
	if i == len(points) {
		i = len(points) - 1
	}
	return points[i].Composite
}

// Band is one descriptive category, matched when a composite is >= Min.
type Band struct {
	Min      int            `json:"min"`
	Category string         `json:"category"`
	Level    NormativeLevel `json:"level"`
}

// Battery bundles every reference table used by the scoring engine.
type Battery struct {
	subtests    []Subtest
	indices     []Index
	fullScale   Index
	percentiles map[int]float64
	bands       []Band // descending by Min, last entry is the floor
}

var defaultBattery = newBattery()

// Default returns the process-wide battery.
func Default() *Battery { return defaultBattery }

func newBattery() *Battery {
	b := &Battery{
		subtests:    subtestTables(),
		indices:     indexTables(),
		fullScale:   fullScaleTable(),
		percentiles: percentileTable(),
		bands:       categoryBands(),
	}
	sort.Slice(b.bands, func(i, j int) bool { return b.bands[i].Min > b.bands[j].Min })
	return b
}

// Subtests returns the subtest definitions in declaration order.
func (b *Battery) Subtests() []Subtest {
	out := make([]Subtest, len(b.subtests))
	copy(out, b.subtests)
	return out
}

// Subtest returns the definition for key.
func (b *Battery) Subtest(key SubtestKey) (Subtest, bool) {
	for _, s := range b.subtests {
		if s.Key == key {
			return s, true
		}
	}
	return Subtest{}, false
}

// Indices returns the five primary index definitions in declaration order.
func (b *Battery) Indices() []Index {
	out := make([]Index, len(b.indices))
	for i, ix := range b.indices {
		out[i] = ix.clone()
	}
	return out
}

// FullScale returns the full-scale (CIT) composite definition.
func (b *Battery) FullScale() Index { return b.fullScale.clone() }

// clone copies Members so callers never share the battery's arrays. points
// is unexported and only reachable through Points, which copies.
func (ix Index) clone() Index {
	ix.Members = slices.Clone(ix.Members)
	return ix
}

// Percentile returns the published percentile rank for composite. ok is
// false when the table has no exact entry.
func (b *Battery) Percentile(composite int) (pct float64, ok bool) {
	pct, ok = b.percentiles[composite]
	return pct, ok
}

// Bands returns the category bands, highest threshold first.
func (b *Battery) Bands() []Band {
	out := make([]Band, len(b.bands))
	copy(out, b.bands)
	return out
}

// ParseSubtestKey validates s against the battery's subtest keys.
func (b *Battery) ParseSubtestKey(s string) (SubtestKey, bool) {
	_, ok := b.Subtest(SubtestKey(s))
	return SubtestKey(s), ok
}
