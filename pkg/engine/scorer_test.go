package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFreqRankScores(t *testing.T) {
	stats := CollectStats([][]string{
		{"car", "speed", "car"},
		{"speed", "track"},
	}, [][]string{
		{"animal", "animal", "animal"},
	}, IDFScopeCorpus)

	scored := FreqRankScores(stats)
	require.Equal(t, []ScoredTerm{
		{Term: "car", Score: 2},
		{Term: "speed", Score: 2},
		{Term: "track", Score: 1},
	}, scored)
}

func TestRocchioScores(t *testing.T) {
	cfg := DefaultConfig()
	stats := CollectStats([][]string{
		{"car", "speed"},
		{"car", "speed"},
		{"car", "review"},
	}, [][]string{
		{"animal", "wildlife"},
		{"animal"},
	}, IDFScopeCorpus)

	scored := RocchioScores(stats, nil, cfg)

	byTerm := map[string]float64{}
	for _, st := range scored {
		byTerm[st.Term] = st.Score
	}

	// car: tf=1 in each of 3 relevant docs, df=3, N=5
	idfCar := math.Log(6.0 / 4.0)
	require.InDelta(t, 0.75*idfCar, byTerm["car"], 1e-9)

	// terms occurring only in irrelevant docs net a negative score and are
	// dropped
	require.NotContains(t, byTerm, "animal")
	require.NotContains(t, byTerm, "wildlife")

	require.Greater(t, byTerm["car"], byTerm["review"])
}

func TestRocchioScoreMonotonicity(t *testing.T) {
	cfg := DefaultConfig()

	score := func(relTF, irrTF int) float64 {
		// extra car-free documents keep the idf strictly positive
		doc := []string{"pad"}
		for i := 0; i < relTF; i++ {
			doc = append(doc, "car")
		}
		relevant := [][]string{doc, {"other"}}
		irrDoc := []string{"filler"}
		for i := 0; i < irrTF; i++ {
			irrDoc = append(irrDoc, "car")
		}
		irrelevant := [][]string{irrDoc}
		stats := CollectStats(relevant, irrelevant, IDFScopeCorpus)
		for _, st := range RocchioScores(stats, nil, cfg) {
			if st.Term == "car" {
				return st.Score
			}
		}
		return 0
	}

	// more occurrences in a relevant doc never lower the score
	require.GreaterOrEqual(t, score(2, 1), score(1, 1))
	require.GreaterOrEqual(t, score(5, 1), score(2, 1))

	// more occurrences in an irrelevant doc never raise the score
	require.LessOrEqual(t, score(2, 3), score(2, 1))
}

func TestRocchioScoresGuards(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SmoothIDF = false
	cfg.IDFScope = IDFScopeRelevant

	// a term present only in the irrelevant partition has df=0 under the
	// relevant-only scope; it must be skipped, not faulted
	stats := CollectStats([][]string{{"car"}}, [][]string{{"animal"}}, cfg.IDFScope)
	scored := RocchioScores(stats, nil, cfg)
	for _, st := range scored {
		require.False(t, math.IsNaN(st.Score))
		require.False(t, math.IsInf(st.Score, 0))
		require.NotEqual(t, "animal", st.Term)
	}

	// no relevant docs: nothing to score
	stats = CollectStats(nil, [][]string{{"animal"}}, IDFScopeCorpus)
	require.Empty(t, RocchioScores(stats, nil, DefaultConfig()))
}

func TestTopTerms(t *testing.T) {
	scored := []ScoredTerm{
		{Term: "car", Score: 1},
		{Term: "speed", Score: 1},
		{Term: "track", Score: 1},
		{Term: "review", Score: 2},
	}

	// ties resolve by first-encountered order, stable across runs
	first := TopTerms(scored, 2, nil)
	require.Equal(t, []string{"review", "car"}, first)
	require.Equal(t, first, TopTerms(scored, 2, nil))

	// excluded terms do not consume a slot
	terms := TopTerms(scored, 2, func(term string) bool { return term == "review" })
	require.Equal(t, []string{"car", "speed"}, terms)

	require.Empty(t, TopTerms(nil, 2, nil))
}
