package search

import (
	"strings"

	"querysift/pkg/parser"
)

// Result is one item returned by the search collaborator. Immutable once
// fetched.
type Result struct {
	Title       string `json:"title"`
	Snippet     string `json:"snippet"`
	Link        string `json:"link"`
	FileFormat  string `json:"fileFormat,omitempty"`
	HTMLTitle   string `json:"htmlTitle,omitempty"`
	HTMLSnippet string `json:"htmlSnippet,omitempty"`
}

// Text returns the result's title and snippet with markup removed, falling
// back to the HTML fields when the plain ones are absent.
func (r Result) Text() string {
	title, snippet := r.Title, r.Snippet
	if title == "" && r.HTMLTitle != "" {
		title = parser.HTMLText(r.HTMLTitle)
	}
	if snippet == "" && r.HTMLSnippet != "" {
		snippet = parser.HTMLText(r.HTMLSnippet)
	}
	return strings.TrimSpace(parser.StripMarkup(title + " " + snippet))
}

// IsHTML reports whether the result is a regular web page. The engine tags
// non-HTML documents (pdf, doc, ...) with a file format.
func (r Result) IsHTML() bool {
	return r.FileFormat == ""
}
