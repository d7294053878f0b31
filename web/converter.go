package web

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"

	"github.com/skillforge/skillcheck/skill"
)

// excessiveLinesRe collapses runs of blank lines left over from
// conversion.
var excessiveLinesRe = regexp.MustCompile(`\n{4,}`)

// Converter converts HTML pages to markdown skill documents.
type Converter struct {
	converter *md.Converter
}

// NewConverter creates an HTML to markdown converter.
func NewConverter() *Converter {
	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())
	return &Converter{converter: converter}
}

// Convert transforms a fetched page into a skill document named after
// the URL. Markdown and plain-text responses are used as-is; HTML is
// reduced to its readable article content first.
func (c *Converter) Convert(pageURL string, res *FetchResult) (*skill.Document, error) {
	name := documentName(pageURL)

	contentType := strings.ToLower(res.ContentType)
	if strings.Contains(contentType, "markdown") || strings.Contains(contentType, "text/plain") {
		doc := skill.Parse(name+".md", string(res.Body))
		doc.Path = pageURL
		return doc, nil
	}

	markdown, err := c.htmlToMarkdown(pageURL, res.Body)
	if err != nil {
		return nil, err
	}

	// Give the page a top-level heading if conversion didn't produce one.
	if title := extractTitle(res.Body); title != "" && !strings.HasPrefix(markdown, "# ") {
		markdown = "# " + title + "\n\n" + markdown
	}

	doc := skill.Parse(name+".md", markdown)
	doc.Path = pageURL
	return doc, nil
}

// htmlToMarkdown extracts the readable article from an HTML page and
// converts it to markdown.
func (c *Converter) htmlToMarkdown(pageURL string, body []byte) (string, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("parse URL: %w", err)
	}

	content := string(body)
	if article, err := readability.FromReader(bytes.NewReader(body), parsedURL); err == nil && article.Content != "" {
		content = article.Content
	}

	markdown, err := c.converter.ConvertString(content)
	if err != nil {
		return "", fmt.Errorf("convert HTML to markdown: %w", err)
	}

	markdown = excessiveLinesRe.ReplaceAllString(markdown, "\n\n\n")
	return strings.TrimSpace(markdown) + "\n", nil
}

// FetchDocument fetches a page and converts it to a skill document.
func FetchDocument(ctx context.Context, pageURL string) (*skill.Document, error) {
	res, err := NewFetcher().Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	return NewConverter().Convert(pageURL, res)
}

// documentName derives a skill name from a URL: the last meaningful
// path segment, falling back to the host.
func documentName(pageURL string) string {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return "remote"
	}

	segment := path.Base(strings.TrimSuffix(parsed.Path, "/"))
	segment = strings.TrimSuffix(segment, path.Ext(segment))
	if segment == "" || segment == "." || segment == "/" {
		return parsed.Hostname()
	}
	return segment
}

// extractTitle returns the page's <title> text, if any. Used for
// log-friendly naming of fetched pages.
func extractTitle(body []byte) string {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "title" && n.FirstChild != nil {
			title = strings.TrimSpace(n.FirstChild.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if title != "" {
				return
			}
			walk(c)
		}
	}
	walk(doc)

	return title
}
