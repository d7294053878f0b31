// Package imports extracts import statements from code fragments and
// classifies referenced modules against known-valid and deprecated
// tables.
package imports

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/skillforge/skillcheck/rules"
)

var (
	// fromRe matches "from X import A, B as C".
	fromRe = regexp.MustCompile(`from\s+([\w.]+)\s+import\s+(.+)`)
	// importRe matches "import X" at the start of a line.
	importRe = regexp.MustCompile(`(?m)^import\s+([\w.]+)`)
)

// Reference is one import statement found in a fragment. Items is
// empty for a whole-module import.
type Reference struct {
	Module string
	Items  []string
}

// Issue is one finding about an import reference.
type Issue struct {
	Module     string
	Item       string // empty when the finding concerns the whole module
	Message    string
	Severity   rules.Severity
	Suggestion string
}

// Resolver checks import references against its tables. Tables are
// immutable for the resolver's lifetime; a resolver is safe for
// concurrent use.
type Resolver struct {
	tables Tables
	valid  map[string][]string
}

// NewResolver creates a resolver over the given tables.
func NewResolver(tables Tables) *Resolver {
	valid := make(map[string][]string, len(tables.Valid))
	for _, e := range tables.Valid {
		valid[e.Module] = e.Items
	}
	return &Resolver{tables: tables, valid: valid}
}

// ExtractReferences parses import statements out of code, in source
// order. Each textual occurrence yields one reference; duplicates are
// not collapsed. Rename clauses ("as X") are stripped from item names.
func (r *Resolver) ExtractReferences(code string) []Reference {
	type positioned struct {
		pos int
		ref Reference
	}
	var found []positioned

	for _, m := range fromRe.FindAllStringSubmatchIndex(code, -1) {
		module := code[m[2]:m[3]]
		rawItems := strings.Split(code[m[4]:m[5]], ",")
		items := make([]string, 0, len(rawItems))
		for _, it := range rawItems {
			name := strings.TrimSpace(it)
			if idx := strings.Index(name, " as "); idx >= 0 {
				name = name[:idx]
			}
			items = append(items, strings.TrimSpace(name))
		}
		found = append(found, positioned{pos: m[0], ref: Reference{Module: module, Items: items}})
	}

	for _, m := range importRe.FindAllStringSubmatchIndex(code, -1) {
		found = append(found, positioned{pos: m[0], ref: Reference{Module: code[m[2]:m[3]]}})
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].pos < found[j].pos })

	refs := make([]Reference, 0, len(found))
	for _, f := range found {
		refs = append(refs, f.ref)
	}
	return refs
}

// Check validates every import reference in code. For each reference:
// a deprecated-prefix match emits one warning and stops checking that
// reference (first table entry wins); otherwise an exact known-valid
// module has its imported items checked against the allow-list.
// Modules absent from both tables produce no issue.
func (r *Resolver) Check(code string) []Issue {
	var issues []Issue

	for _, ref := range r.ExtractReferences(code) {
		if issue, ok := r.checkDeprecated(ref); ok {
			issues = append(issues, issue)
			continue
		}
		issues = append(issues, r.checkItems(ref)...)
	}

	return issues
}

func (r *Resolver) checkDeprecated(ref Reference) (Issue, bool) {
	for _, entry := range r.tables.Deprecated {
		if strings.HasPrefix(ref.Module, entry.Prefix) {
			return Issue{
				Module:     ref.Module,
				Message:    fmt.Sprintf("Deprecated import path: %s", ref.Module),
				Severity:   rules.SeverityWarning,
				Suggestion: entry.Suggestion,
			}, true
		}
	}
	return Issue{}, false
}

func (r *Resolver) checkItems(ref Reference) []Issue {
	validItems, ok := r.valid[ref.Module]
	if !ok {
		return nil
	}

	var issues []Issue
	for _, item := range ref.Items {
		if item == "*" || contains(validItems, item) {
			continue
		}
		issues = append(issues, Issue{
			Module:     ref.Module,
			Item:       item,
			Message:    fmt.Sprintf("Unknown import: %s from %s", item, ref.Module),
			Severity:   rules.SeverityWarning,
			Suggestion: fmt.Sprintf("Valid imports from %s: %s...", ref.Module, strings.Join(firstN(validItems, 5), ", ")),
		})
	}
	return issues
}

func contains(items []string, name string) bool {
	for _, it := range items {
		if it == name {
			return true
		}
	}
	return false
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		return items
	}
	return items[:n]
}
