package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPython_ValidCode(t *testing.T) {
	checker := NewPython()

	code := `from typing import TypedDict

class State(TypedDict):
    messages: list

def node(state: State) -> State:
    return state
`
	assert.Nil(t, checker.Check(code))
}

func TestPython_InvalidCode(t *testing.T) {
	checker := NewPython()

	serr := checker.Check("def broken(:\n    return 1\n")
	require.NotNil(t, serr)
	assert.NotEmpty(t, serr.Message)
	assert.Equal(t, 1, serr.Line)
}

func TestPython_EmptyCode(t *testing.T) {
	checker := NewPython()
	assert.Nil(t, checker.Check(""))
}

func TestRegistry(t *testing.T) {
	for _, alias := range []string{"python", "py", ""} {
		_, ok := DefaultRegistry.For(alias)
		assert.True(t, ok, "alias %q should be registered", alias)
	}

	_, ok := DefaultRegistry.For("bash")
	assert.False(t, ok)
}
