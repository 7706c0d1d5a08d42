// Package keyphrase picks a handful of representative keywords from a
// tokenized document.
//
// Two independent rankers score the same stopword-filtered token sequence:
// TF-IDF against a caller-supplied IDF table, and TextRank over a weighted
// co-occurrence graph. Their top candidates are merged into one bounded,
// duplicate-free list, by default in the order the keywords are first read
// in the document.
//
// Extraction is a pure in-memory computation. Nothing is shared between
// calls, so independent documents may be processed concurrently.
package keyphrase

import (
	"strings"

	"github.com/cognicore/keyphrase/pkg/keyphrase/rank"
	"github.com/cognicore/keyphrase/pkg/keyphrase/textrank"
	"github.com/cognicore/keyphrase/pkg/keyphrase/tfidf"
)

const (
	DefaultTopK       = 12
	DefaultSpan       = 5
	DefaultIterations = 10
)

// Selector picks the TextRank candidates from a solved weight map.
// k <= 0 means no bound. idf may be consulted for secondary filtering.
type Selector func(weights *textrank.WeightMap, k int, idf tfidf.IDF) []string

// TopSelector keeps the k best weighted tokens, ties in node order
func TopSelector(weights *textrank.WeightMap, k int, _ tfidf.IDF) []string {
	return rank.Tokens(rank.TopK(weights.Scored(), k))
}

// Options configures one extraction
type Options struct {
	TopK          int                 // max keywords returned, 0 = unbounded
	UseTextRank   bool                // merge TextRank candidates into TF-IDF ones
	PreserveOrder bool                // return keywords in reading order
	Stopwords     map[string]struct{} // removed before any scoring
	Span          int                 // co-occurrence window width
	Iterations    int                 // rank solver passes
	SelfLoops     bool                // count a token co-occurring with itself
	Selector      Selector            // nil = TopSelector
}

// DefaultOptions returns the hybrid, reading-order configuration
func DefaultOptions() Options {
	return Options{
		TopK:          DefaultTopK,
		UseTextRank:   true,
		PreserveOrder: true,
		Span:          DefaultSpan,
		Iterations:    DefaultIterations,
		SelfLoops:     true,
	}
}

// Result carries both candidate lists next to the merged keywords
type Result struct {
	Keywords []string
	TFIDF    []rank.Scored
	TextRank []rank.Scored // empty unless UseTextRank
}

// Extract returns the merged keyword list for tokens
func Extract(tokens []string, idf tfidf.IDF, opts Options) []string {
	return ExtractDetailed(tokens, idf, opts).Keywords
}

// ExtractDetailed runs Extract and keeps the per-ranker candidates
func ExtractDetailed(tokens []string, idf tfidf.IDF, opts Options) Result {
	filtered := FilterStopwords(tokens, opts.Stopwords)
	if len(filtered) == 0 {
		return Result{}
	}

	var res Result
	res.TFIDF = tfidf.Keywords(filtered, idf, opts.TopK)
	candidates := rank.Tokens(res.TFIDF)

	if opts.UseTextRank {
		span := opts.Span
		if span <= 0 {
			span = DefaultSpan
		}
		g := textrank.Build(filtered, span, textrank.WithSelfLoops(opts.SelfLoops))
		weights := textrank.Rank(g, opts.Iterations)
		if opts.Iterations <= 0 {
			weights.Normalize()
		}

		sel := opts.Selector
		if sel == nil {
			sel = TopSelector
		}
		trKeys := sel(weights, opts.TopK, idf)

		res.TextRank = make([]rank.Scored, 0, len(trKeys))
		for _, tok := range trKeys {
			w, _ := weights.Weight(tok)
			res.TextRank = append(res.TextRank, rank.Scored{Token: tok, Score: w})
		}
		candidates = union(candidates, trKeys)
	}

	if opts.PreserveOrder {
		res.Keywords = orderByText(filtered, candidates, opts.TopK)
	} else {
		if opts.TopK > 0 && len(candidates) > opts.TopK {
			candidates = candidates[:opts.TopK]
		}
		res.Keywords = candidates
	}
	return res
}

// FilterStopwords drops every token found in stops. An empty set returns
// tokens unchanged.
func FilterStopwords(tokens []string, stops map[string]struct{}) []string {
	if len(stops) == 0 {
		return tokens
	}
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, ok := stops[tok]; ok {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// union appends the members of b missing from a, keeping both orders
func union(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, tok := range list {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			out = append(out, tok)
		}
	}
	return out
}

// orderByText emits candidates at their first occurrence in tokens
func orderByText(tokens, candidates []string, topK int) []string {
	keys := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		keys[c] = struct{}{}
	}

	var out []string
	for _, tok := range tokens {
		if _, ok := keys[tok]; !ok {
			continue
		}
		out = append(out, tok)
		delete(keys, tok)
		if len(keys) == 0 {
			break
		}
		if topK > 0 && len(out) >= topK {
			break
		}
	}
	return out
}

// Extractor bundles an IDF table and options for repeated use
type Extractor struct {
	idf      tfidf.IDF
	opts     Options
	tokenize func(string) []string
}

// NewExtractor creates an Extractor. tokenize is only needed by
// ExtractText and may be nil.
func NewExtractor(idf tfidf.IDF, opts Options, tokenize func(string) []string) *Extractor {
	return &Extractor{idf: idf, opts: opts, tokenize: tokenize}
}

// Options returns the extractor configuration
func (e *Extractor) Options() Options {
	return e.opts
}

// Extract runs the hybrid extraction over tokens
func (e *Extractor) Extract(tokens []string) []string {
	return Extract(tokens, e.idf, e.opts)
}

// ExtractDetailed runs the hybrid extraction and keeps the candidates
func (e *Extractor) ExtractDetailed(tokens []string) Result {
	return ExtractDetailed(tokens, e.idf, e.opts)
}

// ExtractText tokenizes text before extracting. Without a tokenizer the
// text is split on whitespace.
func (e *Extractor) ExtractText(text string) []string {
	return e.Extract(e.tokens(text))
}

func (e *Extractor) tokens(text string) []string {
	if e.tokenize != nil {
		return e.tokenize(text)
	}
	return strings.Fields(text)
}
