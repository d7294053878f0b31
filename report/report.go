// Package report renders validation results for humans and machines.
package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/skillforge/skillcheck/imports"
	"github.com/skillforge/skillcheck/rules"
	"github.com/skillforge/skillcheck/validator"
)

var (
	errorLabel = color.New(color.FgRed, color.Bold).Sprint("ERROR")
	warnLabel  = color.New(color.FgYellow).Sprint("WARN")
	passColor  = color.New(color.FgGreen).SprintFunc()
	failColor  = color.New(color.FgRed, color.Bold).SprintFunc()
)

const ruler = "============================================================"

// severityLabel returns the colored label for a severity.
func severityLabel(sev rules.Severity) string {
	if sev == rules.SeverityError {
		return errorLabel
	}
	return warnLabel
}

// FormatResult renders one validation result as a readable block.
func FormatResult(res *validator.Result) string {
	lines := []string{
		"",
		ruler,
		fmt.Sprintf("Skill: %s", res.SkillName),
		ruler,
		fmt.Sprintf("Code fragments checked: %d", res.FragmentsChecked),
	}

	switch {
	case res.Passed() && res.WarningCount() == 0:
		lines = append(lines, "Status: "+passColor("PASSED")+" (no issues)")
	case res.Passed():
		lines = append(lines, fmt.Sprintf("Status: %s (%d warnings)", passColor("PASSED"), res.WarningCount()))
	default:
		lines = append(lines, fmt.Sprintf("Status: %s (%d errors, %d warnings)",
			failColor("FAILED"), res.ErrorCount(), res.WarningCount()))
	}

	if len(res.Issues) > 0 {
		lines = append(lines, "", "Issues:")
		for _, issue := range res.Issues {
			loc := ""
			if issue.Fragment > 0 {
				loc = fmt.Sprintf("[block %d", issue.Fragment)
				if issue.Line > 0 {
					loc += fmt.Sprintf(", line %d", issue.Line)
				}
				loc += "] "
			}

			lines = append(lines, fmt.Sprintf("  [%s] %s%s", severityLabel(issue.Severity), loc, issue.Message))
			lines = append(lines, fmt.Sprintf("          Rule: %s", issue.RuleID))
			if issue.Suggestion != "" {
				lines = append(lines, fmt.Sprintf("          Fix: %s", issue.Suggestion))
			}
		}
	}

	return strings.Join(lines, "\n")
}

// FormatImportIssues renders import findings for one code fragment.
func FormatImportIssues(issues []imports.Issue) string {
	if len(issues) == 0 {
		return "  No import issues found"
	}

	var lines []string
	for _, issue := range issues {
		if issue.Item != "" {
			lines = append(lines, fmt.Sprintf("  [%s] %s from %s", severityLabel(issue.Severity), issue.Item, issue.Module))
		} else {
			lines = append(lines, fmt.Sprintf("  [%s] %s", severityLabel(issue.Severity), issue.Module))
		}
		lines = append(lines, fmt.Sprintf("          %s", issue.Message))
		if issue.Suggestion != "" {
			lines = append(lines, fmt.Sprintf("          Suggestion: %s", issue.Suggestion))
		}
	}

	return strings.Join(lines, "\n")
}

// FormatRules renders the rule catalog listing.
func FormatRules(rs []rules.Rule) string {
	lines := []string{"Validation Rules", ruler}
	for _, r := range rs {
		lines = append(lines, "", fmt.Sprintf("[%s] %s", severityLabel(r.Severity), r.ID))
		lines = append(lines, fmt.Sprintf("  %s", r.Message))
		if r.Suggestion != "" {
			lines = append(lines, fmt.Sprintf("  Fix: %s", r.Suggestion))
		}
	}
	return strings.Join(lines, "\n")
}
