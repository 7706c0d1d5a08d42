package keyphrase

import (
	"slices"
	"strings"
	"testing"

	"github.com/cognicore/keyphrase/pkg/keyphrase/textrank"
	"github.com/cognicore/keyphrase/pkg/keyphrase/tfidf"
)

var worked = []string{"a", "b", "a", "c", "b", "d"}

func TestExtract(t *testing.T) {
	idf := tfidf.Weights{"c": 10, "d": 1}

	tests := []struct {
		name string
		opts func(*Options)
		want []string
	}{
		{
			name: "tfidf only, reading order",
			opts: func(o *Options) { o.TopK = 2; o.UseTextRank = false },
			want: []string{"c", "d"},
		},
		{
			name: "tfidf only, score order",
			opts: func(o *Options) { o.TopK = 2; o.UseTextRank = false; o.PreserveOrder = false },
			want: []string{"c", "d"},
		},
		{
			name: "hybrid reading order stops at topk",
			opts: func(o *Options) { o.TopK = 2; o.Iterations = 0 },
			want: []string{"a", "b"},
		},
		{
			name: "hybrid score order truncates union",
			opts: func(o *Options) { o.TopK = 2; o.Iterations = 0; o.PreserveOrder = false },
			want: []string{"c", "d"},
		},
		{
			name: "unbounded hybrid returns every candidate once",
			opts: func(o *Options) { o.TopK = 0; o.Iterations = 0 },
			want: []string{"a", "b", "c", "d"},
		},
		{
			name: "unbounded tfidf score order",
			opts: func(o *Options) { o.TopK = 0; o.UseTextRank = false; o.PreserveOrder = false },
			want: []string{"c", "d", "a", "b"},
		},
		{
			name: "stopwords removed before scoring",
			opts: func(o *Options) {
				o.TopK = 0
				o.Stopwords = map[string]struct{}{"a": {}, "c": {}}
			},
			want: []string{"b", "d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.opts(&opts)

			got := Extract(worked, idf, opts)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Extract() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractEmpty(t *testing.T) {
	if got := Extract(nil, tfidf.Weights{}, DefaultOptions()); len(got) != 0 {
		t.Errorf("Empty input should give empty output, got %v", got)
	}

	opts := DefaultOptions()
	opts.Stopwords = map[string]struct{}{"a": {}, "b": {}, "c": {}, "d": {}}
	for _, useTR := range []bool{true, false} {
		for _, preserve := range []bool{true, false} {
			opts.UseTextRank = useTR
			opts.PreserveOrder = preserve
			if got := Extract(worked, tfidf.Weights{"a": 1}, opts); len(got) != 0 {
				t.Errorf("All-stopword input should give empty output (tr=%v order=%v), got %v",
					useTR, preserve, got)
			}
		}
	}
}

func TestExtractBoundedAndUnique(t *testing.T) {
	tokens := strings.Fields("graph rank node graph edge weight rank damping node graph window span " +
		"token span window graph weight node edge rank solver iteration solver")
	idf := tfidf.Weights{"graph": 0.5, "solver": 3, "damping": 4, "span": 2, "token": 1}

	for _, topK := range []int{1, 3, 5, 12} {
		opts := DefaultOptions()
		opts.TopK = topK

		got := Extract(tokens, idf, opts)
		if len(got) > topK {
			t.Errorf("topK=%d: got %d keywords", topK, len(got))
		}

		seen := make(map[string]bool)
		for _, kw := range got {
			if seen[kw] {
				t.Errorf("topK=%d: duplicate keyword %q in %v", topK, kw, got)
			}
			seen[kw] = true
		}

		lastPos := -1
		for _, kw := range got {
			pos := slices.Index(tokens, kw)
			if pos < lastPos {
				t.Errorf("topK=%d: %q out of reading order in %v", topK, kw, got)
			}
			lastPos = pos
		}
	}
}

func TestExtractDeterministic(t *testing.T) {
	tokens := strings.Fields("alpha beta gamma alpha delta beta epsilon zeta gamma alpha eta theta beta")
	idf := tfidf.Weights{"alpha": 1, "beta": 1, "gamma": 2, "delta": 2, "theta": 5}

	for _, preserve := range []bool{true, false} {
		opts := DefaultOptions()
		opts.TopK = 4
		opts.PreserveOrder = preserve

		first := Extract(tokens, idf, opts)
		for range 50 {
			if again := Extract(tokens, idf, opts); !slices.Equal(first, again) {
				t.Fatalf("Non-deterministic output (preserve=%v): %v vs %v", preserve, first, again)
			}
		}
	}
}

func TestExtractCustomSelector(t *testing.T) {
	idf := tfidf.Weights{"a": 1}
	var gotK int
	var gotIDF tfidf.IDF

	opts := DefaultOptions()
	opts.TopK = 3
	opts.UseTextRank = true
	opts.Selector = func(w *textrank.WeightMap, k int, i tfidf.IDF) []string {
		gotK = k
		gotIDF = i
		return []string{"d"}
	}

	res := ExtractDetailed(worked, idf, opts)
	if gotK != 3 {
		t.Errorf("Selector got k=%d, want 3", gotK)
	}
	if gotIDF == nil {
		t.Error("Selector should receive the IDF table")
	}
	if len(res.TextRank) != 1 || res.TextRank[0].Token != "d" {
		t.Errorf("TextRank candidates = %v, want [d]", res.TextRank)
	}
	// a, b and c fill the bound before d is read
	if !slices.Equal(res.Keywords, []string{"a", "b", "c"}) {
		t.Errorf("Keywords = %v, want [a b c]", res.Keywords)
	}
}

func TestExtractDetailedCandidates(t *testing.T) {
	opts := DefaultOptions()
	opts.TopK = 2
	opts.UseTextRank = false

	res := ExtractDetailed(worked, tfidf.Weights{"c": 10, "d": 1}, opts)
	if len(res.TFIDF) != 2 || res.TFIDF[0].Token != "c" || res.TFIDF[0].Score != 10 {
		t.Errorf("Unexpected TF-IDF candidates: %v", res.TFIDF)
	}
	if len(res.TextRank) != 0 {
		t.Errorf("TextRank candidates should be empty when disabled, got %v", res.TextRank)
	}
}

func TestExtractDetailedZeroIterationsNormalized(t *testing.T) {
	opts := DefaultOptions()
	opts.TopK = 0
	opts.Iterations = 0

	res := ExtractDetailed(worked, nil, opts)
	if len(res.TextRank) != 4 {
		t.Fatalf("Expected 4 TextRank candidates, got %v", res.TextRank)
	}
	for _, s := range res.TextRank {
		if s.Score != 1 {
			t.Errorf("Uniform weight of %q should normalize to 1, got %f", s.Token, s.Score)
		}
	}
}

func TestExtractorText(t *testing.T) {
	ex := NewExtractor(tfidf.Weights{"keyword": 2}, DefaultOptions(), nil)

	got := ex.ExtractText("  keyword   extraction keyword  ")
	if !slices.Contains(got, "keyword") {
		t.Errorf("Expected keyword in %v", got)
	}

	upper := NewExtractor(tfidf.Weights{}, DefaultOptions(), func(s string) []string {
		return strings.Fields(strings.ToUpper(s))
	})
	for _, kw := range upper.ExtractText("one two") {
		if kw != strings.ToUpper(kw) {
			t.Errorf("Custom tokenizer not used: %q", kw)
		}
	}
}

func TestFilterStopwords(t *testing.T) {
	tokens := []string{"the", "cat", "the", "hat"}

	if got := FilterStopwords(tokens, nil); !slices.Equal(got, tokens) {
		t.Errorf("Empty stoplist should keep tokens, got %v", got)
	}

	got := FilterStopwords(tokens, map[string]struct{}{"the": {}})
	if !slices.Equal(got, []string{"cat", "hat"}) {
		t.Errorf("FilterStopwords() = %v", got)
	}
}
