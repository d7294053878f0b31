package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skillforge/skillcheck/validator"
)

// Summary aggregates results across one batch run.
type Summary struct {
	RunID         string              `json:"run_id"`
	StartedAt     time.Time           `json:"started_at"`
	SkillsChecked int                 `json:"skills_checked"`
	Errors        int                 `json:"errors"`
	Warnings      int                 `json:"warnings"`
	Results       []*validator.Result `json:"results"`
}

// NewSummary builds a Summary over a batch of results.
func NewSummary(results []*validator.Result) *Summary {
	s := &Summary{
		RunID:     uuid.New().String(),
		StartedAt: time.Now().UTC(),
		Results:   results,
	}
	s.SkillsChecked = len(results)
	for _, r := range results {
		s.Errors += r.ErrorCount()
		s.Warnings += r.WarningCount()
	}
	return s
}

// Passed reports whether the batch has no errors, or in strict mode no
// errors and no warnings.
func (s *Summary) Passed(strict bool) bool {
	if s.Errors > 0 {
		return false
	}
	if strict && s.Warnings > 0 {
		return false
	}
	return true
}

// Format renders the batch summary block.
func (s *Summary) Format() string {
	lines := []string{
		"",
		ruler,
		"SUMMARY",
		ruler,
		fmt.Sprintf("Skills checked: %d", s.SkillsChecked),
		fmt.Sprintf("Errors: %d", s.Errors),
		fmt.Sprintf("Warnings: %d", s.Warnings),
	}
	return strings.Join(lines, "\n")
}

// JSON renders the summary, including per-skill results, as indented
// JSON for machine consumption.
func (s *Summary) JSON() (string, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode summary: %w", err)
	}
	return string(data), nil
}
