// Package skill provides the skill document model: loading, frontmatter
// parsing, and extraction of fenced code fragments.
package skill

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is one skill document loaded for validation.
type Document struct {
	// Name is the skill name, taken from the parent directory of the
	// SKILL.md file (or the file base name for loose files).
	Name string

	// Path is the source path the document was read from. Empty for
	// documents built from raw text.
	Path string

	// Frontmatter holds parsed YAML frontmatter, nil if absent.
	Frontmatter map[string]any

	// Body is the document content with frontmatter stripped.
	Body string

	// Content is the full raw content including frontmatter.
	Content string
}

// HasFrontmatter returns true if the document has parsed frontmatter.
func (d *Document) HasFrontmatter() bool {
	return len(d.Frontmatter) > 0
}

// Load reads and parses a skill document from disk.
// An unreadable or missing file is a hard error; it is never converted
// into a validation issue.
func Load(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read skill document: %w", err)
	}

	doc := Parse(path, string(content))
	return doc, nil
}

// Parse builds a Document from raw text. The filename is used only to
// derive the skill name; it does not have to exist on disk.
func Parse(filename, content string) *Document {
	doc := &Document{
		Name:    skillName(filename),
		Path:    filename,
		Content: content,
	}

	if strings.HasPrefix(content, "---\n") || strings.HasPrefix(content, "---\r\n") {
		frontmatter, body, err := extractFrontmatter(content)
		if err != nil {
			// Unparseable frontmatter: treat entire content as body.
			doc.Body = content
		} else {
			doc.Frontmatter = frontmatter
			doc.Body = body
		}
	} else {
		doc.Body = content
	}

	return doc
}

// skillName derives the skill name from its path. Skills live at
// <dir>/<name>/SKILL.md, so the parent directory is the name; for any
// other layout the file base name without extension is used.
func skillName(path string) string {
	base := filepath.Base(path)
	if strings.EqualFold(base, DocumentFilename) {
		if parent := filepath.Base(filepath.Dir(path)); parent != "." && parent != string(filepath.Separator) {
			return parent
		}
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// extractFrontmatter parses YAML frontmatter delimited by "---" lines.
// Returns the parsed map, the remaining body, and any error.
func extractFrontmatter(content string) (map[string]any, string, error) {
	const delimiter = "---"

	start := len(delimiter)
	if len(content) > start && content[start] == '\r' {
		start++
	}
	if len(content) > start && content[start] == '\n' {
		start++
	}

	closeIdx := strings.Index(content[start:], "\n"+delimiter)
	if closeIdx == -1 {
		closeIdx = strings.Index(content[start:], "\r\n"+delimiter)
	}
	if closeIdx == -1 {
		return nil, content, fmt.Errorf("no closing frontmatter delimiter")
	}

	yamlContent := content[start : start+closeIdx]

	bodyStart := start + closeIdx + 1 + len(delimiter)
	for bodyStart < len(content) && (content[bodyStart] == '\n' || content[bodyStart] == '\r') {
		bodyStart++
	}

	body := ""
	if bodyStart < len(content) {
		body = content[bodyStart:]
	}

	var frontmatter map[string]any
	if err := yaml.Unmarshal([]byte(yamlContent), &frontmatter); err != nil {
		return nil, content, fmt.Errorf("parse YAML frontmatter: %w", err)
	}

	return frontmatter, body, nil
}
