package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectStats(t *testing.T) {
	relevant := [][]string{
		{"car", "speed", "car"},
		{"speed", "track"},
	}
	irrelevant := [][]string{
		{"animal", "wildlife"},
		{"animal"},
	}

	stats := CollectStats(relevant, irrelevant, IDFScopeCorpus)

	require.Len(t, stats.RelevantTF, 2)
	require.Len(t, stats.IrrelevantTF, 2)
	require.Equal(t, TermFreq{"car": 2, "speed": 1}, stats.RelevantTF[0])
	require.Equal(t, TermFreq{"speed": 1, "track": 1}, stats.RelevantTF[1])
	require.Equal(t, TermFreq{"animal": 1, "wildlife": 1}, stats.IrrelevantTF[0])

	require.Equal(t, 4, stats.TotalDocs)
	require.Equal(t, 1, stats.DocFreq["car"])
	require.Equal(t, 2, stats.DocFreq["speed"])
	require.Equal(t, 2, stats.DocFreq["animal"])

	// df never exceeds the number of scanned docs and is at least 1 for
	// every term present in any table.
	for _, term := range stats.Terms {
		require.GreaterOrEqual(t, stats.DocFreq[term], 1)
		require.LessOrEqual(t, stats.DocFreq[term], stats.TotalDocs)
	}

	// first-seen order, relevant partition first
	require.Equal(t, []string{"car", "speed", "track", "animal", "wildlife"}, stats.Terms)
}

func TestCollectStatsRelevantScope(t *testing.T) {
	relevant := [][]string{{"car"}}
	irrelevant := [][]string{{"animal"}, {"animal", "car"}}

	stats := CollectStats(relevant, irrelevant, IDFScopeRelevant)

	require.Equal(t, 1, stats.TotalDocs)
	require.Equal(t, 1, stats.DocFreq["car"])
	require.Equal(t, 0, stats.DocFreq["animal"])
	// irrelevant tables are still collected for the penalty term
	require.Len(t, stats.IrrelevantTF, 2)
	require.Equal(t, TermFreq{"animal": 1, "car": 1}, stats.IrrelevantTF[1])
}

func TestCollectStatsEmptyDoc(t *testing.T) {
	stats := CollectStats([][]string{{}, {"car"}}, nil, IDFScopeCorpus)

	require.Len(t, stats.RelevantTF, 2)
	require.Empty(t, stats.RelevantTF[0])
	require.Equal(t, 2, stats.TotalDocs)
	require.Equal(t, 1, stats.DocFreq["car"])
}
