package scoring

import (
	"fmt"
	"strings"

	"github.com/normscope/normscope/pkg/age"
	"github.com/normscope/normscope/pkg/norms"
)

// Engine scores sessions against one battery of norm tables. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	battery *norms.Battery
}

// NewEngine creates a scoring engine over b. A nil battery selects norms.Default().
func NewEngine(b *norms.Battery) *Engine {
	if b == nil {
		b = norms.Default()
	}
	return &Engine{battery: b}
}

// Battery returns the tables the engine scores against.
func (e *Engine) Battery() *norms.Battery { return e.battery }

// Score runs the full pipeline: validation, age, scale conversion, index
// aggregation, classification and strength/weakness analysis.
//
// Required fields and date order are checked before any table lookup; a
// failure there aborts scoring. Out-of-domain raw scores fail the whole
// operation and are all reported.
func (e *Engine) Score(in Input) (*Result, error) {
	if err := validate(in.Examinee); err != nil {
		return nil, err
	}

	a, err := age.Between(in.Examinee.BirthDate, in.Examinee.AssessmentDate)
	if err != nil {
		return nil, err
	}

	rows, scaled, err := convertAll(e.battery.Subtests(), in.Raw)
	if err != nil {
		return nil, err
	}

	primary, full := aggregate(e.battery, scaled)
	for i := range primary {
		primary[i] = classifyIndex(e.battery, primary[i])
	}
	full = classifyIndex(e.battery, full)

	strengths, weaknesses := partition(rows)

	return &Result{
		Age:        a,
		Subtests:   rows,
		Indices:    primary,
		FullScale:  full,
		Strengths:  strengths,
		Weaknesses: weaknesses,
	}, nil
}

var defaultEngine = NewEngine(nil)

// Score scores in with the default battery.
func Score(in Input) (*Result, error) {
	return defaultEngine.Score(in)
}

func validate(ex Examinee) error {
	if strings.TrimSpace(ex.Name) == "" {
		return &FieldError{Field: "examinee name"}
	}
	if strings.TrimSpace(ex.Examiner) == "" {
		return &FieldError{Field: "examiner name"}
	}
	if ex.BirthDate.IsZero() {
		return &FieldError{Field: "birth date"}
	}
	if ex.AssessmentDate.IsZero() {
		return &FieldError{Field: "assessment date"}
	}
	return nil
}

// Summary is a one-line description of a result, used in logs.
func (r *Result) Summary() string {
	return fmt.Sprintf("%s %d (%s), age %s, %d strengths, %d weaknesses",
		r.FullScale.Abbrev, r.FullScale.Composite, r.FullScale.Category,
		r.Age, len(r.Strengths), len(r.Weaknesses))
}
