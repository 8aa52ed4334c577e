// Package scoring implements the normscope scoring engine. It converts raw
// subtest scores into scaled scores, index composites, percentile ranks and
// descriptive categories using the static tables in package norms.
package scoring

import (
	"time"

	"github.com/normscope/normscope/pkg/age"
	"github.com/normscope/normscope/pkg/norms"
)

// RawScores maps a subtest to its raw score. A subtest without an entry was
// not administered; a key the battery does not define fails scoring with
// ErrUnknownSubtest.
type RawScores map[norms.SubtestKey]int

// Examinee carries the identifying fields of an evaluation. Apart from the
// required names and the two dates they are opaque to the engine.
type Examinee struct {
	Name           string    `json:"name"`
	Sex            string    `json:"sex,omitempty"`
	BirthDate      time.Time `json:"birth_date"`
	AssessmentDate time.Time `json:"assessment_date"`
	Location       string    `json:"location,omitempty"`
	Examiner       string    `json:"examiner"`
}

// Input is one evaluation session. It is passed by value and never modified.
type Input struct {
	Examinee Examinee
	Raw      RawScores
}

// Result is the complete output of scoring one session.
// Immutable once computed.
type Result struct {
	Age        age.Age        `json:"age"`
	Subtests   []SubtestScore `json:"subtests"`
	Indices    []IndexResult  `json:"indices"`
	FullScale  IndexResult    `json:"full_scale"`
	Strengths  []Finding      `json:"strengths"`
	Weaknesses []Finding      `json:"weaknesses"`
}

// SubtestScore is one row of the score table. Raw and Scaled are nil when
// the subtest was not administered.
type SubtestScore struct {
	Key    norms.SubtestKey `json:"key"`
	Abbrev string           `json:"abbrev"`
	Name   string           `json:"name"`
	Raw    *int             `json:"raw"`
	Scaled *int             `json:"scaled"`
}

// IndexResult is the outcome for a primary index or the full-scale composite.
type IndexResult struct {
	Key        norms.IndexKey       `json:"key"`
	Abbrev     string               `json:"abbrev"`
	Name       string               `json:"name"`
	ScaledSum  int                  `json:"scaled_sum"`
	Composite  int                  `json:"composite"`
	Percentile float64              `json:"percentile"`
	Category   string               `json:"category"`
	Level      norms.NormativeLevel `json:"level"`
}

// Finding is a subtest flagged as a strength or a weakness.
type Finding struct {
	Key    norms.SubtestKey `json:"key"`
	Name   string           `json:"name"`
	Scaled int              `json:"scaled"`
}

// Index returns the primary index result for key.
func (r *Result) Index(key norms.IndexKey) (IndexResult, bool) {
	if key == norms.FullScale {
		return r.FullScale, true
	}
	for _, ir := range r.Indices {
		if ir.Key == key {
			return ir, true
		}
	}
	return IndexResult{}, false
}
