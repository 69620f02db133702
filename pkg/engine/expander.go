package engine

import (
	"regexp"
	"strings"

	"github.com/surgebase/porter2"

	"querysift/pkg/parser"
)

// QueryState couples the query text with its keyword set. The set is always
// regenerated from the text, never maintained incrementally.
type QueryState struct {
	Text     string
	Keywords map[string]struct{}
}

func NewQueryState(text string) QueryState {
	return QueryState{
		Text:     text,
		Keywords: parser.KeywordSet(text),
	}
}

// Excludes reports whether term may not be added to the query: it already is
// a keyword, or (with stem matching on) shares a Porter2 stem with one.
func (qs QueryState) Excludes(term string, stemAware bool) bool {
	if _, ok := qs.Keywords[term]; ok {
		return true
	}
	if !stemAware {
		return false
	}
	stem := porter2.Stem(term)
	for keyword := range qs.Keywords {
		if porter2.Stem(keyword) == stem {
			return true
		}
	}
	return false
}

// Expand builds the next query from the selected terms. With reordering on,
// the permutation of {query, terms...} matching the relevant documents most
// often wins; otherwise the new terms are appended in score order.
func Expand(state QueryState, terms []string, relevantTexts []string, reorder bool) string {
	if len(terms) == 0 {
		return state.Text
	}
	parts := append([]string{state.Text}, terms...)
	if reorder {
		parts = BestOrder(parts, state.Text, relevantTexts)
	}
	return strings.Join(parts, " ")
}

// BestOrder scores every permutation of parts by counting "A ... B ... C"
// style matches inside the sentence-like sections of the relevant texts,
// split on ".". Ties prefer a permutation leading with the original query;
// zero matches everywhere falls back to the given order.
func BestOrder(parts []string, originalQuery string, relevantTexts []string) []string {
	sections := strings.Split(strings.ToLower(strings.Join(relevantTexts, " ")), ".")

	best := parts
	bestCount := 0
	bestLeadsWithQuery := false
	for _, perm := range permutations(parts) {
		quoted := make([]string, len(perm))
		for i, part := range perm {
			quoted[i] = regexp.QuoteMeta(strings.ToLower(part))
		}
		re, err := regexp.Compile(strings.Join(quoted, ".*"))
		if err != nil {
			continue
		}

		count := 0
		for _, section := range sections {
			count += len(re.FindAllString(section, -1))
		}

		leadsWithQuery := perm[0] == originalQuery
		switch {
		case count > bestCount:
			best, bestCount, bestLeadsWithQuery = perm, count, leadsWithQuery
		case count == bestCount && count > 0 && leadsWithQuery && !bestLeadsWithQuery:
			best, bestLeadsWithQuery = perm, leadsWithQuery
		}
	}

	if bestCount == 0 {
		return parts
	}
	return best
}

func permutations(parts []string) [][]string {
	if len(parts) <= 1 {
		return [][]string{append([]string{}, parts...)}
	}
	perms := [][]string{}
	for i := range parts {
		rest := make([]string, 0, len(parts)-1)
		rest = append(rest, parts[:i]...)
		rest = append(rest, parts[i+1:]...)
		for _, sub := range permutations(rest) {
			perms = append(perms, append([]string{parts[i]}, sub...))
		}
	}
	return perms
}
