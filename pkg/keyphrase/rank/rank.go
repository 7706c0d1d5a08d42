package rank

import "sort"

// Scored pairs a token with the score one of the rankers gave it
type Scored struct {
	Token string
	Score float64
}

// TopK returns the k highest scoring entries, sorted by score descending.
//
// Ties keep their input order, so callers that feed tokens in
// first-appearance order get first-appearance tie-breaking. k <= 0 returns
// every entry. The input slice is not modified.
func TopK(scored []Scored, k int) []Scored {
	sorted := make([]Scored, len(scored))
	copy(sorted, scored)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	if k > 0 && len(sorted) > k {
		sorted = sorted[:k]
	}
	return sorted
}

// Tokens strips the scores from a ranked slice
func Tokens(scored []Scored) []string {
	tokens := make([]string, len(scored))
	for i, s := range scored {
		tokens[i] = s.Token
	}
	return tokens
}
