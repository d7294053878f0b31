package skill

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_NoFrontmatter(t *testing.T) {
	content := "# Title\n\nBody text.\n"
	doc := Parse("skills/langgraph/SKILL.md", content)

	assert.Equal(t, "langgraph", doc.Name)
	assert.Equal(t, content, doc.Body)
	assert.Equal(t, content, doc.Content)
	assert.False(t, doc.HasFrontmatter())
}

func TestParse_WithFrontmatter(t *testing.T) {
	content := `---
name: langgraph
description: Building stateful agents
---
# LangGraph Skill

Body.
`
	doc := Parse("skills/langgraph/SKILL.md", content)

	require.True(t, doc.HasFrontmatter())
	assert.Equal(t, "langgraph", doc.Frontmatter["name"])
	assert.Equal(t, "Building stateful agents", doc.Frontmatter["description"])
	assert.Equal(t, "# LangGraph Skill\n\nBody.\n", doc.Body)
	assert.Equal(t, content, doc.Content)
}

func TestParse_MalformedFrontmatter(t *testing.T) {
	content := "---\n[not yaml\n---\n# Title\n"
	doc := Parse("skills/broken/SKILL.md", content)

	// Unparseable frontmatter: whole content becomes the body.
	assert.False(t, doc.HasFrontmatter())
	assert.Equal(t, content, doc.Body)
}

func TestParse_NameFromLooseFile(t *testing.T) {
	doc := Parse("notes.md", "# Notes\n")
	assert.Equal(t, "notes", doc.Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope", "SKILL.md"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	skillDir := filepath.Join(dir, "langchain-rag")
	require.NoError(t, os.MkdirAll(skillDir, 0755))

	path := filepath.Join(skillDir, "SKILL.md")
	require.NoError(t, os.WriteFile(path, []byte("# RAG\n"), 0644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "langchain-rag", doc.Name)
	assert.Equal(t, path, doc.Path)
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"langgraph", "langchain-rag"} {
		skillDir := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(skillDir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(skillDir, "SKILL.md"), []byte("# "+name+"\n"), 0644))
	}
	// A directory without a SKILL.md is not a skill.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "empty"), 0755))

	paths, err := Discover(dir)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "langchain-rag", "SKILL.md"), paths[0])
	assert.Equal(t, filepath.Join(dir, "langgraph", "SKILL.md"), paths[1])

	names, err := Names(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"langchain-rag", "langgraph"}, names)
}
