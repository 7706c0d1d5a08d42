package tfidf

import (
	"math"
	"testing"
)

func TestCountTFFirstAppearanceOrder(t *testing.T) {
	tf := CountTF([]string{"b", "a", "b", "c", "a", "b"})

	want := []string{"b", "a", "c"}
	got := tf.Tokens()
	if len(got) != len(want) {
		t.Fatalf("Expected %d tokens, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Token %d: got %q, want %q", i, got[i], want[i])
		}
	}

	counts := map[string]int{"b": 3, "a": 2, "c": 1, "missing": 0}
	for tok, n := range counts {
		if tf.Count(tok) != n {
			t.Errorf("Count(%q) = %d, want %d", tok, tf.Count(tok), n)
		}
	}
}

func TestScoreMultipliesTFByIDF(t *testing.T) {
	tf := CountTF([]string{"go", "rust", "go", "zig"})
	idf := Weights{"go": 1.5, "rust": 2.0}

	scored := Score(tf, idf)
	want := map[string]float64{"go": 3.0, "rust": 2.0, "zig": 0}

	if len(scored) != 3 {
		t.Fatalf("Expected 3 scored terms, got %d", len(scored))
	}
	for _, s := range scored {
		if math.Abs(s.Score-want[s.Token]) > 1e-12 {
			t.Errorf("Score(%q) = %f, want %f", s.Token, s.Score, want[s.Token])
		}
	}
}

func TestMissingIDFStillEligible(t *testing.T) {
	got := Keywords([]string{"unknown", "other"}, Weights{}, 5)

	if len(got) != 2 {
		t.Fatalf("Zero-scored terms should pass through, got %v", got)
	}
	if got[0].Token != "unknown" || got[1].Token != "other" {
		t.Errorf("Zero ties should keep first-appearance order, got %v", got)
	}
}

func TestKeywordsTopK(t *testing.T) {
	tokens := []string{"a", "b", "c", "d", "a", "b", "a"}
	idf := Weights{"a": 1, "b": 1, "c": 5, "d": 0.1}

	got := Keywords(tokens, idf, 2)
	if len(got) != 2 {
		t.Fatalf("Expected 2 keywords, got %d", len(got))
	}
	if got[0].Token != "c" || got[1].Token != "a" {
		t.Errorf("Unexpected ranking: %v", got)
	}
}

func TestScoreNilIDF(t *testing.T) {
	scored := Score(CountTF([]string{"x"}), nil)
	if len(scored) != 1 || scored[0].Score != 0 {
		t.Errorf("Nil IDF should score zero, got %v", scored)
	}
}

func TestCountTFEmpty(t *testing.T) {
	tf := CountTF(nil)
	if tf.Len() != 0 {
		t.Errorf("Expected no tokens, got %d", tf.Len())
	}
	if got := Score(tf, Weights{}); len(got) != 0 {
		t.Errorf("Expected no scores, got %v", got)
	}
}
