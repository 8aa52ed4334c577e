// Package session decodes evaluation sessions (examinee details plus raw
// scores) from YAML or JSON into scoring inputs.
package session

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/normscope/normscope/pkg/norms"
	"github.com/normscope/normscope/pkg/scoring"
)

// DateLayout is the wire format of birth and assessment dates.
const DateLayout = "2006-01-02"

// ErrUnknownSubtest is returned for a raw score keyed by an unknown subtest.
var ErrUnknownSubtest = scoring.ErrUnknownSubtest

// Session is the file and request shape of one evaluation. A raw score of
// null means the subtest was not administered.
type Session struct {
	Name           string          `yaml:"name" json:"name"`
	Sex            string          `yaml:"sex" json:"sex,omitempty"`
	BirthDate      string          `yaml:"birth_date" json:"birth_date"`
	AssessmentDate string          `yaml:"assessment_date" json:"assessment_date"`
	Location       string          `yaml:"location" json:"location,omitempty"`
	Examiner       string          `yaml:"examiner" json:"examiner"`
	RawScores      map[string]*int `yaml:"raw_scores" json:"raw_scores"`
}

// Load reads a session file. JSON files are accepted as well, being valid YAML.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML or JSON session document.
func Parse(data []byte) (*Session, error) {
	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing session: %w", err)
	}
	return &s, nil
}

// Input converts the session into a scoring input validated against b.
// Empty dates are left zero so the engine reports them as missing fields.
func (s *Session) Input(b *norms.Battery) (scoring.Input, error) {
	birth, err := parseDate("birth_date", s.BirthDate)
	if err != nil {
		return scoring.Input{}, err
	}
	assessed, err := parseDate("assessment_date", s.AssessmentDate)
	if err != nil {
		return scoring.Input{}, err
	}

	raw := make(scoring.RawScores, len(s.RawScores))
	var unknown []string
	for name, v := range s.RawScores {
		key, ok := b.ParseSubtestKey(strings.TrimSpace(name))
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		if v != nil {
			raw[key] = *v
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return scoring.Input{}, fmt.Errorf("%w: %s", ErrUnknownSubtest, strings.Join(unknown, ", "))
	}

	return scoring.Input{
		Examinee: scoring.Examinee{
			Name:           strings.TrimSpace(s.Name),
			Sex:            strings.TrimSpace(s.Sex),
			BirthDate:      birth,
			AssessmentDate: assessed,
			Location:       strings.TrimSpace(s.Location),
			Examiner:       strings.TrimSpace(s.Examiner),
		},
		Raw: raw,
	}, nil
}

// SetRaw records a raw score, allocating the map if needed.
func (s *Session) SetRaw(subtest string, raw int) {
	if s.RawScores == nil {
		s.RawScores = make(map[string]*int)
	}
	s.RawScores[subtest] = &raw
}

func parseDate(field, v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: want YYYY-MM-DD", field, v)
	}
	return t, nil
}
