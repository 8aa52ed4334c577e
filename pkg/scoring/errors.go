package scoring

import (
	"errors"
	"fmt"

	"github.com/normscope/normscope/pkg/age"
	"github.com/normscope/normscope/pkg/norms"
)

var (
	// ErrMissingRequiredField is returned when the examinee or examiner name is empty.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrInvalidDateOrder is returned when the assessment date precedes the birth date.
	ErrInvalidDateOrder = age.ErrInvalidDateOrder

	// ErrRawScoreOutOfDomain is returned when a raw score has no conversion table entry.
	ErrRawScoreOutOfDomain = errors.New("raw score out of domain")

	// ErrUnknownSubtest is returned for a raw score keyed by a subtest the battery does not define.
	ErrUnknownSubtest = errors.New("unknown subtest")
)

// FieldError names the required field that was empty.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingRequiredField, e.Field)
}

func (e *FieldError) Unwrap() error { return ErrMissingRequiredField }

// RawScoreError reports a raw score outside a subtest's conversion table.
type RawScoreError struct {
	Subtest norms.SubtestKey
	Raw     int
	MaxRaw  int
}

func (e *RawScoreError) Error() string {
	return fmt.Sprintf("%s: %s raw score %d not in 0..%d", ErrRawScoreOutOfDomain, e.Subtest, e.Raw, e.MaxRaw)
}

func (e *RawScoreError) Unwrap() error { return ErrRawScoreOutOfDomain }

// UnknownSubtestError names a raw-score key missing from the battery.
type UnknownSubtestError struct {
	Subtest norms.SubtestKey
}

func (e *UnknownSubtestError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownSubtest, string(e.Subtest))
}

func (e *UnknownSubtestError) Unwrap() error { return ErrUnknownSubtest }
