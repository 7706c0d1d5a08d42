package idf

import (
	"github.com/cognicore/keyphrase/pkg/keyphrase/rank"
	"github.com/cognicore/keyphrase/pkg/keyphrase/textrank"
	"github.com/cognicore/keyphrase/pkg/keyphrase/tfidf"
)

// DefaultMinRatio drops TextRank candidates whose IDF is below a third of
// the dictionary average
const DefaultMinRatio = 1.0 / 3.0

// Selector returns a TextRank candidate selector backed by d. Tokens are
// taken best weight first, skipping any whose IDF falls below
// AvgIDF*ratio, until k are collected (k <= 0 keeps going to the end).
// The IDF handed to the selector is ignored; d is always consulted.
func (d *Dict) Selector(ratio float64) func(*textrank.WeightMap, int, tfidf.IDF) []string {
	threshold := d.meta.AvgIDF * ratio
	return func(weights *textrank.WeightMap, k int, _ tfidf.IDF) []string {
		var out []string
		for _, s := range rank.TopK(weights.Scored(), 0) {
			if d.IDF(s.Token) < threshold {
				continue
			}
			out = append(out, s.Token)
			if k > 0 && len(out) >= k {
				break
			}
		}
		return out
	}
}
