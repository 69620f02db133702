package engine

import (
	"fmt"
	"log"
	"strings"

	"querysift/pkg/feedback"
	"querysift/pkg/parser"
	"querysift/pkg/search"
)

type Reason int

const (
	ReasonTargetMet Reason = iota
	ReasonExhausted
	ReasonNoResults
)

func (r Reason) String() string {
	switch r {
	case ReasonTargetMet:
		return "target met"
	case ReasonExhausted:
		return "exhausted"
	case ReasonNoResults:
		return "no results"
	default:
		return "unknown"
	}
}

type Outcome struct {
	Query      string
	Precision  float64
	Iterations int
	Reason     Reason
}

// Loop drives search, feedback collection, precision evaluation and query
// expansion until the target precision is met or the query can no longer be
// refined. All per-iteration tables are rebuilt from scratch each pass.
type Loop struct {
	searcher search.Searcher
	judge    feedback.Judge
	stops    parser.StopWords
	cfg      Config
}

func NewLoop(searcher search.Searcher, judge feedback.Judge, stops parser.StopWords, cfg Config) *Loop {
	return &Loop{
		searcher: searcher,
		judge:    judge,
		stops:    stops,
		cfg:      cfg,
	}
}

func (l *Loop) Run(query string, target float64) (Outcome, error) {
	outcome := Outcome{Query: query}

	for {
		outcome.Query = query
		log.Printf("Query: %q. Target precision: %.2f.\n", query, target)

		results, err := l.searcher.Search(query, l.cfg.PageSize)
		if err != nil {
			return outcome, fmt.Errorf("search failed: %w", err)
		}

		relevant, irrelevant, err := l.collectFeedback(results)
		if err != nil {
			return outcome, err
		}

		outcome.Iterations++
		total := len(relevant) + len(irrelevant)
		if total == 0 {
			outcome.Precision = 0
			outcome.Reason = ReasonNoResults
			log.Println("No results to judge. Terminating.")
			return outcome, nil
		}

		precision := float64(len(relevant)) / float64(total)
		outcome.Precision = precision
		log.Printf("Precision: %.2f.\n", precision)

		if precision >= target {
			outcome.Reason = ReasonTargetMet
			log.Println("Desired precision reached, done.")
			return outcome, nil
		}
		if precision == 0 {
			outcome.Reason = ReasonExhausted
			log.Println("Below desired precision, but can no longer augment the query.")
			return outcome, nil
		}
		log.Printf("Still below the desired precision of %.2f.\n", target)

		next, terms := l.expand(query, relevant, irrelevant)
		if len(terms) == 0 {
			outcome.Reason = ReasonExhausted
			log.Println("No candidate terms left to augment the query.")
			return outcome, nil
		}
		log.Printf("Augmenting by %s.\n", strings.Join(terms, " "))
		query = next
	}
}

func (l *Loop) collectFeedback(results []search.Result) (relevant, irrelevant []search.Result, err error) {
	for i, result := range results {
		if l.cfg.FormatFilter == FormatFilterSkip && !result.IsHTML() {
			log.Printf("Non-HTML file format detected. Skipping result %d.\n", i+1)
			continue
		}
		ok, err := l.judge.Judge(result, i+1)
		if err != nil {
			return nil, nil, fmt.Errorf("feedback failed: %w", err)
		}
		if ok {
			relevant = append(relevant, result)
		} else {
			irrelevant = append(irrelevant, result)
		}
	}
	return relevant, irrelevant, nil
}

// expand returns the next query text and the newly selected terms. An empty
// term slice means scoring degenerated and the loop must stop.
func (l *Loop) expand(query string, relevant, irrelevant []search.Result) (string, []string) {
	state := NewQueryState(query)

	tokenize := func(results []search.Result) ([][]string, []string) {
		streams := make([][]string, 0, len(results))
		texts := make([]string, 0, len(results))
		for _, result := range results {
			text := result.Text()
			texts = append(texts, text)
			streams = append(streams, parser.Filter(parser.Tokens(text), l.stops, state.Keywords))
		}
		return streams, texts
	}

	relevantTokens, relevantTexts := tokenize(relevant)
	irrelevantTokens, _ := tokenize(irrelevant)

	stats := CollectStats(relevantTokens, irrelevantTokens, l.cfg.IDFScope)

	var scored []ScoredTerm
	switch l.cfg.Policy {
	case PolicyFreqRank:
		scored = FreqRankScores(stats)
	default:
		queryTF := TermFreq{}
		for _, token := range parser.Filter(parser.Tokens(query), l.stops, nil) {
			queryTF[token]++
		}
		scored = RocchioScores(stats, queryTF, l.cfg)
	}

	terms := TopTerms(scored, l.cfg.ExpandTerms, func(term string) bool {
		return state.Excludes(term, l.cfg.StemExclude)
	})
	if len(terms) == 0 {
		return query, nil
	}

	return Expand(state, terms, relevantTexts, l.cfg.Reorder), terms
}
