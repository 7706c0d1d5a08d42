package tfidf

import "github.com/cognicore/keyphrase/pkg/keyphrase/rank"

// IDF supplies inverse document frequency weights.
// ok is false when the dictionary has no entry for token.
type IDF interface {
	Weight(token string) (w float64, ok bool)
}

// Weights is an in-memory IDF table
type Weights map[string]float64

// Weight implements IDF
func (w Weights) Weight(token string) (float64, bool) {
	v, ok := w[token]
	return v, ok
}

// TermFreq counts token occurrences within one document
type TermFreq struct {
	tokens []string
	counts map[string]int
}

// CountTF counts how often each token occurs. Tokens keep the order of
// their first occurrence.
func CountTF(tokens []string) *TermFreq {
	tf := &TermFreq{counts: make(map[string]int, len(tokens))}
	for _, tok := range tokens {
		if _, ok := tf.counts[tok]; !ok {
			tf.tokens = append(tf.tokens, tok)
		}
		tf.counts[tok]++
	}
	return tf
}

// Tokens returns the distinct tokens in first-appearance order
func (tf *TermFreq) Tokens() []string {
	out := make([]string, len(tf.tokens))
	copy(out, tf.tokens)
	return out
}

// Count returns the number of occurrences of token
func (tf *TermFreq) Count(token string) int {
	return tf.counts[token]
}

// Len returns the number of distinct tokens
func (tf *TermFreq) Len() int {
	return len(tf.tokens)
}

// Score weights each term frequency by its IDF.
//
// Tokens missing from idf score zero but are still returned: with nothing
// scoring above them they can still be selected. A nil idf scores
// everything zero.
func Score(tf *TermFreq, idf IDF) []rank.Scored {
	out := make([]rank.Scored, len(tf.tokens))
	for i, tok := range tf.tokens {
		w := 0.0
		if idf != nil {
			if v, ok := idf.Weight(tok); ok {
				w = v
			}
		}
		out[i] = rank.Scored{Token: tok, Score: float64(tf.counts[tok]) * w}
	}
	return out
}

// Keywords returns the k best TF-IDF terms of tokens
func Keywords(tokens []string, idf IDF, k int) []rank.Scored {
	return rank.TopK(Score(CountTF(tokens), idf), k)
}
