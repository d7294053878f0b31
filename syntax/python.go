package syntax

import (
	"context"
	"fmt"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

func init() {
	// Untagged fragments in skill documents are overwhelmingly Python,
	// so the empty alias maps here too.
	DefaultRegistry.Register(NewPython(), "python", "py", "")
}

// Python checks Python syntax using tree-sitter.
type Python struct {
	mu     sync.Mutex
	parser *sitter.Parser
}

// NewPython creates a Python syntax checker.
func NewPython() *Python {
	p := sitter.NewParser()
	p.SetLanguage(python.GetLanguage())
	return &Python{parser: p}
}

// Check parses code and returns the first syntax error, or nil when
// the code is valid. The underlying tree-sitter parser is not safe for
// concurrent use, so calls are serialized.
func (p *Python) Check(code string) *Error {
	p.mu.Lock()
	defer p.mu.Unlock()

	tree, err := p.parser.ParseCtx(context.Background(), nil, []byte(code))
	if err != nil {
		return &Error{Message: err.Error()}
	}
	defer tree.Close()

	root := tree.RootNode()
	if !root.HasError() {
		return nil
	}

	if node := firstErrorNode(root); node != nil {
		return &Error{
			Message: describeErrorNode(node, code),
			Line:    int(node.StartPoint().Row) + 1,
		}
	}
	return &Error{Message: "invalid syntax"}
}

// firstErrorNode finds the earliest ERROR or missing node in the tree.
func firstErrorNode(node *sitter.Node) *sitter.Node {
	if node.Type() == "ERROR" || node.IsMissing() {
		return node
	}
	if !node.HasError() {
		return nil
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if found := firstErrorNode(node.Child(i)); found != nil {
			return found
		}
	}
	// The error is attributed to this node but no child carries it.
	return node
}

// describeErrorNode builds a short parser-style message for the node.
func describeErrorNode(node *sitter.Node, code string) string {
	if node.IsMissing() {
		return fmt.Sprintf("missing %s", node.Type())
	}

	start, end := node.StartByte(), node.EndByte()
	if int(end) > len(code) {
		end = uint32(len(code))
	}
	snippet := code[start:end]
	const maxSnippet = 40
	if len(snippet) > maxSnippet {
		snippet = snippet[:maxSnippet] + "..."
	}
	if snippet == "" {
		return "invalid syntax"
	}
	return fmt.Sprintf("invalid syntax near %q", snippet)
}
