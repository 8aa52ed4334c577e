package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/normscope/normscope/pkg/norms"
	"github.com/normscope/normscope/pkg/scoring"
)

func sampleInput() scoring.Input {
	return scoring.Input{
		Examinee: scoring.Examinee{
			Name:           "Lucia Ferrer",
			BirthDate:      time.Date(2020, 10, 1, 0, 0, 0, 0, time.UTC),
			AssessmentDate: time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC),
			Examiner:       "Dr. Ortega",
		},
		Raw: scoring.RawScores{norms.BlockDesign: 20},
	}
}

func TestAssemblerBuild(t *testing.T) {
	fixed := time.Date(2025, 9, 15, 10, 30, 15, 500, time.FixedZone("CET", 3600))
	a := Assembler{
		NewID: func() string { return "report-1" },
		Now:   func() time.Time { return fixed },
	}

	doc, err := a.Build(scoring.NewEngine(nil), sampleInput())
	require.NoError(t, err)

	assert.Equal(t, "report-1", doc.ID)
	assert.Equal(t, time.Date(2025, 9, 15, 9, 30, 15, 0, time.UTC), doc.GeneratedAt)
	assert.Equal(t, "Lucia Ferrer", doc.Examinee.Name)
	require.NotNil(t, doc.Result)
	assert.Equal(t, 4, doc.Result.Age.Years)
}

func TestAssemblerDefaults(t *testing.T) {
	doc := Assembler{}.Assemble(sampleInput().Examinee, &scoring.Result{})
	_, err := uuid.Parse(doc.ID)
	assert.NoError(t, err)
	assert.False(t, doc.GeneratedAt.IsZero())
}

func TestAssemblerBuildError(t *testing.T) {
	in := sampleInput()
	in.Examinee.Examiner = ""
	_, err := Assembler{}.Build(scoring.NewEngine(nil), in)
	assert.ErrorIs(t, err, scoring.ErrMissingRequiredField)
}
