package engine

import (
	"math"

	pq "github.com/emirpasic/gods/v2/queues/priorityqueue"
)

type ScoredTerm struct {
	Term  string
	Score float64
}

// FreqRankScores scores a term by its total frequency across the relevant
// documents. Output keeps first-seen order so ties resolve deterministically.
func FreqRankScores(stats *DocStats) []ScoredTerm {
	totals := map[string]int{}
	for _, tf := range stats.RelevantTF {
		for term, count := range tf {
			totals[term] += count
		}
	}

	scored := []ScoredTerm{}
	for _, term := range stats.Terms {
		count, ok := totals[term]
		if !ok {
			continue
		}
		scored = append(scored, ScoredTerm{Term: term, Score: float64(count)})
	}
	return scored
}

// RocchioScores weights terms by TF-IDF, beta-scaled over the relevant
// partition and gamma-penalized over the irrelevant one. Terms with a
// non-positive net weight are dropped: a candidate must draw positive weight
// from the relevant partition to be eligible.
func RocchioScores(stats *DocStats, queryTF TermFreq, cfg Config) []ScoredTerm {
	if len(stats.RelevantTF) == 0 {
		return nil
	}

	idf := func(term string) (float64, bool) {
		df := stats.DocFreq[term]
		if cfg.SmoothIDF {
			return math.Log(float64(stats.TotalDocs+1) / float64(df+1)), true
		}
		if df == 0 {
			return 0, false
		}
		return math.Log(float64(stats.TotalDocs) / float64(df)), true
	}

	// Zero when the term does not occur in the document or carries no idf.
	tfidf := func(term string, tf TermFreq) float64 {
		count := tf[term]
		if count == 0 {
			return 0
		}
		weight, ok := idf(term)
		if !ok {
			return 0
		}
		return (1 + math.Log(float64(count))) * weight
	}

	scores := map[string]float64{}
	relNorm := cfg.Beta / float64(len(stats.RelevantTF))
	for _, tf := range stats.RelevantTF {
		for term := range tf {
			scores[term] += relNorm * tfidf(term, tf)
		}
	}
	if n := len(stats.IrrelevantTF); n > 0 {
		irrNorm := cfg.Gamma / float64(n)
		for _, tf := range stats.IrrelevantTF {
			for term := range tf {
				scores[term] -= irrNorm * tfidf(term, tf)
			}
		}
	}
	if cfg.Alpha > 0 {
		for term := range queryTF {
			scores[term] += cfg.Alpha * tfidf(term, queryTF)
		}
	}

	scored := []ScoredTerm{}
	for _, term := range stats.Terms {
		score, ok := scores[term]
		if !ok || score <= 0 {
			continue
		}
		scored = append(scored, ScoredTerm{Term: term, Score: score})
	}
	return scored
}

// TopTerms selects up to k terms by descending score through a priority
// queue, breaking ties by first-encountered order. Excluded terms are
// skipped and do not count against k.
func TopTerms(scored []ScoredTerm, k int, exclude func(string) bool) []string {
	type item struct {
		pos    int
		scored ScoredTerm
	}
	comparator := func(a, b item) int {
		if a.scored.Score != b.scored.Score {
			if a.scored.Score > b.scored.Score {
				return -1
			}
			return 1
		}
		return a.pos - b.pos
	}

	q := pq.NewWith(comparator)
	for i, st := range scored {
		if exclude != nil && exclude(st.Term) {
			continue
		}
		q.Enqueue(item{pos: i, scored: st})
	}

	terms := []string{}
	for len(terms) < k && !q.Empty() {
		it, ok := q.Dequeue()
		if !ok {
			break
		}
		terms = append(terms, it.scored.Term)
	}
	return terms
}
