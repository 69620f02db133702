package parser

import (
	"html"
	"regexp"
	"strings"

	xhtml "golang.org/x/net/html"

	"github.com/microcosm-cc/bluemonday"
)

var tokenRe = regexp.MustCompile(`[a-z0-9_]+`)

// Tokens returns the lowercase word tokens of s. A token is a maximal run
// of word characters.
func Tokens(s string) []string {
	return tokenRe.FindAllString(strings.ToLower(s), -1)
}

// Filter drops tokens present in stops or in exclude. Either set may be nil.
func Filter(tokens []string, stops StopWords, exclude map[string]struct{}) []string {
	filtered := []string{}
	for _, token := range tokens {
		if stops.Contains(token) {
			continue
		}
		if _, ok := exclude[token]; ok {
			continue
		}
		filtered = append(filtered, token)
	}
	return filtered
}

// KeywordSet tokenizes s into a membership set.
func KeywordSet(s string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, token := range Tokens(s) {
		set[token] = struct{}{}
	}
	return set
}

// StripMarkup removes tags and resolves entities. Punctuation survives so
// sentence boundaries can still be split on later.
func StripMarkup(s string) string {
	p := bluemonday.StripTagsPolicy()
	content := p.Sanitize(s)
	return html.UnescapeString(content)
}

// HTMLText extracts the text nodes of an HTML fragment, space-joined.
func HTMLText(s string) string {
	doc, err := xhtml.Parse(strings.NewReader(s))
	if err != nil {
		return StripMarkup(s)
	}

	parts := []string{}
	var crawl func(node *xhtml.Node)
	crawl = func(node *xhtml.Node) {
		if node.Type == xhtml.TextNode {
			if text := strings.Join(strings.Fields(node.Data), " "); text != "" {
				parts = append(parts, text)
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			crawl(c)
		}
	}
	crawl(doc)

	return html.UnescapeString(strings.Join(parts, " "))
}
