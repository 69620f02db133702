package engine

// TermFreq counts term occurrences within one document. Never mutated after
// collection.
type TermFreq map[string]int

// DocStats holds the frequency tables for one iteration. RelevantTF and
// IrrelevantTF are aligned to the input document order. Terms records
// first-seen order across the scan (relevant partition first) and is the
// deterministic tie-break order for scoring.
type DocStats struct {
	RelevantTF   []TermFreq
	IrrelevantTF []TermFreq
	DocFreq      map[string]int
	Terms        []string
	TotalDocs    int
}

// CollectStats builds fresh tables from the filtered token streams of the
// relevant and irrelevant partitions. Under IDFScopeRelevant only the
// relevant partition contributes to DocFreq and TotalDocs; the irrelevant
// frequency tables are still collected for the negative Rocchio term. A
// document with no tokens still contributes an empty table.
func CollectStats(relevant, irrelevant [][]string, scope IDFScope) *DocStats {
	stats := &DocStats{
		DocFreq: map[string]int{},
	}
	seen := map[string]struct{}{}

	record := func(tokens []string, countDF bool) TermFreq {
		tf := TermFreq{}
		for _, token := range tokens {
			if _, ok := seen[token]; !ok {
				seen[token] = struct{}{}
				stats.Terms = append(stats.Terms, token)
			}
			tf[token]++
		}
		if countDF {
			for term := range tf {
				stats.DocFreq[term]++
			}
			stats.TotalDocs++
		}
		return tf
	}

	for _, tokens := range relevant {
		stats.RelevantTF = append(stats.RelevantTF, record(tokens, true))
	}
	for _, tokens := range irrelevant {
		stats.IrrelevantTF = append(stats.IrrelevantTF, record(tokens, scope == IDFScopeCorpus))
	}

	return stats
}
