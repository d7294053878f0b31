package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_RejectsDuplicateIDs(t *testing.T) {
	_, err := NewCatalog([]Rule{
		{ID: "a/dup", Pattern: "x", Message: "m", Severity: SeverityError},
		{ID: "a/dup", Pattern: "y", Message: "m", Severity: SeverityWarning},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate rule id")
}

func TestNewCatalog_RejectsMalformedPatterns(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
	}{
		{
			name: "bad trigger pattern",
			rule: Rule{ID: "a/r", Pattern: "(unclosed", Message: "m", Severity: SeverityError},
		},
		{
			name: "bad context pattern",
			rule: Rule{ID: "a/r", Pattern: "x", ContextPattern: "[", Message: "m", Severity: SeverityError},
		},
		{
			name: "bad negative pattern",
			rule: Rule{ID: "a/r", Pattern: "x", NegativePattern: "*", Message: "m", Severity: SeverityError},
		},
		{
			name: "bad severity",
			rule: Rule{ID: "a/r", Pattern: "x", Message: "m", Severity: "fatal"},
		},
		{
			name: "missing id",
			rule: Rule{Pattern: "x", Message: "m", Severity: SeverityError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog([]Rule{tt.rule})
			assert.Error(t, err)
		})
	}
}

func TestRuleGating(t *testing.T) {
	catalog, err := NewCatalog([]Rule{{
		ID:              "test/gated",
		Pattern:         `foo\(`,
		ContextPattern:  `subsystem`,
		NegativePattern: `foo_handled`,
		Message:         "m",
		Severity:        SeverityWarning,
	}})
	require.NoError(t, err)

	r := catalog.Rules()[0]

	assert.True(t, r.Matches("foo(1)"))
	assert.False(t, r.Matches("bar(1)"))

	// Context matching is case-insensitive.
	assert.True(t, r.ContextSatisfied("the SubSystem code"))
	assert.False(t, r.ContextSatisfied("unrelated"))

	assert.True(t, r.Suppressed("foo(1) # foo_handled"))
	assert.False(t, r.Suppressed("foo(1)"))
}

func TestRuleLineOf(t *testing.T) {
	catalog := MustNewCatalog([]Rule{{
		ID: "test/line", Pattern: `x\s*=`, Message: "m", Severity: SeverityWarning,
	}})
	r := catalog.Rules()[0]

	assert.Equal(t, 2, r.LineOf([]string{"import os", "x = 1", "x = 2"}))
	assert.Equal(t, 0, r.LineOf([]string{"import os", "y = 1"}))
}

func TestDefaultCatalog(t *testing.T) {
	catalog := Default()
	require.Equal(t, 10, catalog.Len())

	// Catalog order is an observable contract.
	ids := make([]string, 0, catalog.Len())
	for _, r := range catalog.Rules() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{
		"langgraph/typeddict-state",
		"langgraph/missing-reducer",
		"langgraph/wrong-recursion-limit",
		"deprecated/langchain-agents",
		"deprecated/old-react-agent",
		"rag/faiss-deserialization",
		"rag/missing-chunk-overlap",
		"code/placeholder-todo",
		"code/ellipsis-placeholder",
		"code/pass-placeholder",
	}, ids)
}

func TestDefaultCatalog_LineAnchoredPatterns(t *testing.T) {
	var ellipsis Rule
	for _, r := range Default().Rules() {
		if r.ID == "code/ellipsis-placeholder" {
			ellipsis = r
		}
	}
	require.NotEmpty(t, ellipsis.ID)

	// Line anchors apply per line, not to the whole fragment.
	assert.True(t, ellipsis.Matches("def f():\n    ...\n"))
	assert.False(t, ellipsis.Matches("x = [1, ...]\ny = 2"))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")

	content := `
- id: custom/no-print
  pattern: 'print\('
  message: "Use logging instead of print"
  severity: warning
  suggestion: "Use logging.info(...)"
- id: custom/no-eval
  pattern: 'eval\('
  context_pattern: 'user'
  message: "Never eval user input"
  severity: error
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	catalog, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, catalog.Len())

	rs := catalog.Rules()
	assert.Equal(t, "custom/no-print", rs[0].ID)
	assert.Equal(t, SeverityWarning, rs[0].Severity)
	assert.Equal(t, "custom/no-eval", rs[1].ID)
	assert.True(t, rs[1].Matches("eval(x)"))
}

func TestLoadFile_FailsFastOnBadPattern(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	content := `
- id: custom/broken
  pattern: '(unclosed'
  message: "m"
  severity: error
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "custom/broken")
}
