// Package syntax provides the language syntax-check capability used by
// the validation engine. Checkers delegate to a real language parser
// and report either success or a structured error with a message and
// optional line number; the engine never implements parsing itself.
package syntax

import "sync"

// Error describes a syntax failure in a code fragment.
type Error struct {
	// Message is the parser's description of the failure.
	Message string
	// Line is the 1-based line of the first failure, 0 if unknown.
	Line int
}

// Checker attempts to parse code in one language.
type Checker interface {
	// Check returns nil if code parses, or the first syntax error.
	Check(code string) *Error
}

// Registry maps declared language tags to checkers. Thread-safe.
type Registry struct {
	mu       sync.RWMutex
	checkers map[string]Checker
}

// NewRegistry creates an empty checker registry.
func NewRegistry() *Registry {
	return &Registry{checkers: make(map[string]Checker)}
}

// DefaultRegistry is the global registry populated by language
// packages at init time.
var DefaultRegistry = NewRegistry()

// Register adds a checker under the given language aliases. The empty
// alias means untagged fragments are checked with this language.
func (r *Registry) Register(c Checker, aliases ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range aliases {
		r.checkers[a] = c
	}
}

// For returns the checker registered for a language tag, if any.
func (r *Registry) For(language string) (Checker, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.checkers[language]
	return c, ok
}
