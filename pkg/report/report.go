// Package report assembles the document handed to presentation and export
// collaborators: the examinee details, the scoring result and report metadata.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/normscope/normscope/pkg/scoring"
)

// Document is the export artifact for one evaluation.
type Document struct {
	ID          string           `json:"id"`
	GeneratedAt time.Time        `json:"generated_at"`
	Examinee    scoring.Examinee `json:"examinee"`
	Result      *scoring.Result  `json:"result"`
}

// Assembler builds documents. The zero value uses random UUIDs and the
// wall clock.
type Assembler struct {
	NewID func() string
	Now   func() time.Time
}

// Assemble wraps a scoring result with report metadata. The raw scores are
// already part of result.Subtests.
func (a Assembler) Assemble(ex scoring.Examinee, result *scoring.Result) *Document {
	newID := a.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	now := a.Now
	if now == nil {
		now = time.Now
	}
	return &Document{
		ID:          newID(),
		GeneratedAt: now().UTC().Truncate(time.Second),
		Examinee:    ex,
		Result:      result,
	}
}

// Build scores in with engine and assembles the document.
func (a Assembler) Build(engine *scoring.Engine, in scoring.Input) (*Document, error) {
	result, err := engine.Score(in)
	if err != nil {
		return nil, err
	}
	return a.Assemble(in.Examinee, result), nil
}
