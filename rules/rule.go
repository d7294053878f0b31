// Package rules provides the declarative validation rule catalog.
// Rules are data: a trigger pattern plus optional gating patterns,
// consumed by one generic evaluator. Catalog integrity (unique IDs,
// compilable patterns) is checked once at load time so evaluation
// never encounters a malformed rule.
package rules

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Severity classifies how serious a finding is.
type Severity string

const (
	// SeverityError marks findings that fail validation.
	SeverityError Severity = "error"
	// SeverityWarning marks findings that pass validation unless
	// strict mode is enabled.
	SeverityWarning Severity = "warning"
)

// Valid returns true for a recognized severity value.
func (s Severity) Valid() bool {
	return s == SeverityError || s == SeverityWarning
}

// Rule is one pattern-based validation rule. IDs are namespaced
// "category/name" and unique within a catalog.
type Rule struct {
	ID              string   `yaml:"id"`
	Pattern         string   `yaml:"pattern"`
	ContextPattern  string   `yaml:"context_pattern,omitempty"`
	NegativePattern string   `yaml:"negative_pattern,omitempty"`
	Message         string   `yaml:"message"`
	Severity        Severity `yaml:"severity"`
	Suggestion      string   `yaml:"suggestion,omitempty"`

	pattern  *regexp.Regexp
	context  *regexp.Regexp
	negative *regexp.Regexp
}

// compile validates the rule and compiles its patterns. The trigger
// and negative patterns match in multiline mode; the context pattern
// is case-insensitive.
func (r *Rule) compile() error {
	if r.ID == "" {
		return fmt.Errorf("rule has no id")
	}
	if r.Message == "" {
		return fmt.Errorf("rule %s has no message", r.ID)
	}
	if !r.Severity.Valid() {
		return fmt.Errorf("rule %s has invalid severity %q", r.ID, r.Severity)
	}

	var err error
	if r.pattern, err = regexp.Compile("(?m)" + r.Pattern); err != nil {
		return fmt.Errorf("rule %s: compile pattern: %w", r.ID, err)
	}
	if r.ContextPattern != "" {
		if r.context, err = regexp.Compile("(?i)" + r.ContextPattern); err != nil {
			return fmt.Errorf("rule %s: compile context pattern: %w", r.ID, err)
		}
	}
	if r.NegativePattern != "" {
		if r.negative, err = regexp.Compile("(?m)" + r.NegativePattern); err != nil {
			return fmt.Errorf("rule %s: compile negative pattern: %w", r.ID, err)
		}
	}
	return nil
}

// Matches reports whether the trigger pattern matches the text.
func (r *Rule) Matches(text string) bool {
	return r.pattern.MatchString(text)
}

// ContextSatisfied reports whether the context gate allows the rule to
// fire. Rules without a context pattern are always satisfied.
func (r *Rule) ContextSatisfied(text string) bool {
	return r.context == nil || r.context.MatchString(text)
}

// Suppressed reports whether the negative pattern is present, meaning
// the rule's concern is already addressed in the text.
func (r *Rule) Suppressed(text string) bool {
	return r.negative != nil && r.negative.MatchString(text)
}

// LineOf returns the 1-based number of the first line the trigger
// pattern matches directly, or 0 when no single line matches (the
// pattern spans lines).
func (r *Rule) LineOf(lines []string) int {
	for i, line := range lines {
		if r.pattern.MatchString(line) {
			return i + 1
		}
	}
	return 0
}

// Catalog is an ordered, validated collection of rules. Catalog order
// is an observable contract: rules evaluate, and issues emit, in this
// order.
type Catalog struct {
	rules []Rule
}

// NewCatalog validates and compiles a rule list into a Catalog.
// Duplicate IDs or malformed patterns fail here, before any document
// is evaluated.
func NewCatalog(rs []Rule) (*Catalog, error) {
	seen := make(map[string]bool, len(rs))
	compiled := make([]Rule, len(rs))
	for i := range rs {
		r := rs[i]
		if err := r.compile(); err != nil {
			return nil, err
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("duplicate rule id: %s", r.ID)
		}
		seen[r.ID] = true
		compiled[i] = r
	}
	return &Catalog{rules: compiled}, nil
}

// MustNewCatalog is NewCatalog for known-good rule lists, panicking on
// error. Use for built-in catalogs.
func MustNewCatalog(rs []Rule) *Catalog {
	c, err := NewCatalog(rs)
	if err != nil {
		panic(err)
	}
	return c
}

// Rules returns the rules in catalog order. The returned slice is a
// copy; callers cannot mutate the catalog.
func (c *Catalog) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Len returns the number of rules in the catalog.
func (c *Catalog) Len() int {
	return len(c.rules)
}

// Each calls fn for every rule in catalog order.
func (c *Catalog) Each(fn func(r *Rule)) {
	for i := range c.rules {
		fn(&c.rules[i])
	}
}

// LoadFile loads a rule catalog from a YAML file: a sequence of rule
// records matching the Rule field tags.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	var rs []Rule
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}
	return NewCatalog(rs)
}
