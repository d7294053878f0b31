// Package validator evaluates the rule catalog against skill documents
// and aggregates findings into per-document results.
package validator

import "github.com/skillforge/skillcheck/rules"

// Issue is one finding emitted against a fragment or a whole document.
// Issues reference their rule by ID only; they never hold the rule
// itself, so results outlive any catalog.
type Issue struct {
	Severity rules.Severity `json:"severity"`
	RuleID   string         `json:"rule"`
	Message  string         `json:"message"`

	// Fragment is the 1-based ordinal of the code fragment the issue
	// was found in, 0 for whole-document issues.
	Fragment int `json:"fragment,omitempty"`

	// Line is the 1-based line within the fragment, 0 if not
	// attributable to a single line.
	Line int `json:"line,omitempty"`

	Suggestion string `json:"suggestion,omitempty"`
}

// Result is the outcome of validating one skill document. Created
// fresh per validation; never shared or persisted across runs.
type Result struct {
	SkillName        string  `json:"skill"`
	Path             string  `json:"path"`
	Issues           []Issue `json:"issues"`
	FragmentsChecked int     `json:"fragments_checked"`
}

// Passed reports whether the document has no error-severity issues.
func (r *Result) Passed() bool {
	for _, i := range r.Issues {
		if i.Severity == rules.SeverityError {
			return false
		}
	}
	return true
}

// ErrorCount returns the number of error-severity issues.
func (r *Result) ErrorCount() int {
	return r.countBySeverity(rules.SeverityError)
}

// WarningCount returns the number of warning-severity issues.
func (r *Result) WarningCount() int {
	return r.countBySeverity(rules.SeverityWarning)
}

func (r *Result) countBySeverity(sev rules.Severity) int {
	n := 0
	for _, i := range r.Issues {
		if i.Severity == sev {
			n++
		}
	}
	return n
}
