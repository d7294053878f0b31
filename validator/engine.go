package validator

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/skillforge/skillcheck/imports"
	"github.com/skillforge/skillcheck/rules"
	"github.com/skillforge/skillcheck/skill"
	"github.com/skillforge/skillcheck/syntax"
)

// counterExampleRe marks fragments that intentionally demonstrate
// incorrect usage. Such fragments must not trigger pattern rules.
var counterExampleRe = regexp.MustCompile(`(?i)#\s*(WRONG|BAD|DON'T|INCORRECT)`)

// structureChecks are the whole-document section requirements. Each is
// evaluated independently; a section is present when any accepted
// spelling appears in the document.
var structureChecks = []struct {
	ruleID    string
	spellings []string
	message   string
}{
	{
		ruleID:    "structure/missing-critical-rules",
		spellings: []string{"## Critical Rules", "## Critical"},
		message:   "Skill should have a 'Critical Rules' section",
	},
	{
		ruleID:    "structure/missing-gotchas",
		spellings: []string{"## Common Gotchas", "## Gotchas"},
		message:   "Skill should have a 'Common Gotchas' section",
	},
}

// Rule IDs for issues not produced by the pattern catalog.
const (
	ruleImportDeprecated = "imports/deprecated-path"
	ruleImportUnknown    = "imports/unknown-item"
)

// languageName maps a fence language tag to the name used in syntax
// issue messages and rule IDs. Untagged fragments are checked as
// Python.
func languageName(tag string) string {
	switch strings.ToLower(tag) {
	case "", "py", "python":
		return "Python"
	}
	return tag
}

// Config assembles an Engine. Nil fields fall back to the built-in
// catalog, tables, checker registry, and default logger.
type Config struct {
	Catalog *rules.Catalog
	Tables  *imports.Tables
	Syntax  *syntax.Registry
	Logger  *slog.Logger
}

// Engine evaluates rules against skill documents. Validation is a pure
// function of (document, catalog, tables); an Engine is safe for
// concurrent use across documents.
type Engine struct {
	catalog  *rules.Catalog
	resolver *imports.Resolver
	syntax   *syntax.Registry
	logger   *slog.Logger
}

// New creates an Engine from the given configuration.
func New(cfg Config) *Engine {
	if cfg.Catalog == nil {
		cfg.Catalog = rules.Default()
	}
	if cfg.Tables == nil {
		t := imports.DefaultTables()
		cfg.Tables = &t
	}
	if cfg.Syntax == nil {
		cfg.Syntax = syntax.DefaultRegistry
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Engine{
		catalog:  cfg.Catalog,
		resolver: imports.NewResolver(*cfg.Tables),
		syntax:   cfg.Syntax,
		logger:   cfg.Logger,
	}
}

// NewDefault creates an Engine with the built-in catalog and tables.
func NewDefault() *Engine {
	return New(Config{})
}

// Rules returns the engine's rule catalog in evaluation order.
func (e *Engine) Rules() []rules.Rule {
	return e.catalog.Rules()
}

// Validate runs every check against one document and aggregates the
// findings. No fragment failure aborts evaluation of sibling fragments
// or remaining rules; aggregation always produces a Result.
func (e *Engine) Validate(doc *skill.Document) *Result {
	result := &Result{
		SkillName: doc.Name,
		Path:      doc.Path,
	}

	fragments := skill.ExtractFragments(doc.Body)
	result.FragmentsChecked = len(fragments)

	for _, frag := range fragments {
		if issue := e.CheckSyntax(frag); issue != nil {
			result.Issues = append(result.Issues, *issue)
		}
		result.Issues = append(result.Issues, e.ApplyPatternRules(frag)...)
		result.Issues = append(result.Issues, e.checkFragmentImports(frag)...)
	}

	result.Issues = append(result.Issues, e.CheckStructure(doc.Content)...)

	e.logger.Debug("validated skill",
		slog.String("skill", doc.Name),
		slog.Int("fragments", result.FragmentsChecked),
		slog.Int("errors", result.ErrorCount()),
		slog.Int("warnings", result.WarningCount()))

	return result
}

// ValidateFile loads and validates a single skill document. A missing
// or unreadable file is returned as an error, never as an Issue.
func (e *Engine) ValidateFile(path string) (*Result, error) {
	doc, err := skill.Load(path)
	if err != nil {
		return nil, err
	}
	return e.Validate(doc), nil
}

// ValidateMany validates documents in input order. The first unreadable
// document fails the whole call; the caller decides batch policy.
func (e *Engine) ValidateMany(paths []string) ([]*Result, error) {
	results := make([]*Result, 0, len(paths))
	for _, p := range paths {
		res, err := e.ValidateFile(p)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// ValidateAll discovers and validates every skill document under dir.
func (e *Engine) ValidateAll(dir string) ([]*Result, error) {
	paths, err := skill.Discover(dir)
	if err != nil {
		return nil, err
	}
	return e.ValidateMany(paths)
}

// CheckSyntax delegates the fragment to the registered language
// checker. Fragments with an unrecognized language tag are skipped.
// A parse failure surfaces as exactly one error issue.
func (e *Engine) CheckSyntax(frag skill.Fragment) *Issue {
	checker, ok := e.syntax.For(frag.Language)
	if !ok {
		return nil
	}
	serr := checker.Check(frag.Text)
	if serr == nil {
		return nil
	}
	name := languageName(frag.Language)
	return &Issue{
		Severity: rules.SeverityError,
		RuleID:   "syntax/invalid-" + strings.ToLower(name),
		Message:  fmt.Sprintf("Invalid %s syntax: %s", name, serr.Message),
		Fragment: frag.Ordinal,
		Line:     serr.Line,
	}
}

// ApplyPatternRules evaluates the catalog against one fragment, in
// catalog order. A fragment carrying a counter-example marker yields
// no pattern issues at all. Each rule emits at most one issue per
// fragment.
func (e *Engine) ApplyPatternRules(frag skill.Fragment) []Issue {
	if counterExampleRe.MatchString(frag.Text) {
		return nil
	}

	var issues []Issue
	lines := frag.Lines()

	e.catalog.Each(func(r *rules.Rule) {
		if !r.Matches(frag.Text) {
			return
		}
		if !r.ContextSatisfied(frag.Text) {
			return
		}
		if r.Suppressed(frag.Text) {
			return
		}

		issues = append(issues, Issue{
			Severity:   r.Severity,
			RuleID:     r.ID,
			Message:    r.Message,
			Fragment:   frag.Ordinal,
			Line:       r.LineOf(lines),
			Suggestion: r.Suggestion,
		})
	})

	return issues
}

// CheckImports classifies the import statements in a piece of code.
func (e *Engine) CheckImports(code string) []imports.Issue {
	return e.resolver.Check(code)
}

// checkFragmentImports maps import findings into the Issue shape.
// Only fragments in a recognized code language are scanned; a shell or
// prose fragment can mention an import line without being code.
func (e *Engine) checkFragmentImports(frag skill.Fragment) []Issue {
	if _, ok := e.syntax.For(frag.Language); !ok {
		return nil
	}

	var issues []Issue
	for _, imp := range e.resolver.Check(frag.Text) {
		ruleID := ruleImportUnknown
		if imp.Item == "" {
			ruleID = ruleImportDeprecated
		}
		issues = append(issues, Issue{
			Severity:   imp.Severity,
			RuleID:     ruleID,
			Message:    imp.Message,
			Fragment:   frag.Ordinal,
			Suggestion: imp.Suggestion,
		})
	}
	return issues
}

// CheckStructure verifies the document has its required sections. Each
// missing section yields one warning; checks are independent.
func (e *Engine) CheckStructure(content string) []Issue {
	var issues []Issue
	for _, check := range structureChecks {
		if containsAny(content, check.spellings) {
			continue
		}
		issues = append(issues, Issue{
			Severity: rules.SeverityWarning,
			RuleID:   check.ruleID,
			Message:  check.message,
		})
	}
	return issues
}

func containsAny(content string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(content, n) {
			return true
		}
	}
	return false
}
