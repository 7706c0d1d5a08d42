package idf

import (
	"crypto/rand"
	"math"
	"sort"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/keyphrase/pkg/keyphrase/internalerr"
	"github.com/cognicore/keyphrase/pkg/keyphrase/store"
)

// DefaultDigitRate scales the IDF assigned to single digit tokens
const DefaultDigitRate = 30

var digitTokens = []string{
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	"一", "二", "三", "四", "五", "六", "七", "八", "九", "十",
}

// Builder accumulates document frequencies over a corpus
type Builder struct {
	// DigitRate replaces the IDF of digit tokens with AvgTDF*DigitRate.
	// 0 disables the adjustment.
	DigitRate float64
	// AlphaRate does the same for the single letters a-z. Tokens are
	// expected lowercased, as ingest.Tokenizer emits them.
	AlphaRate float64
	// Epsilon is stored with the dictionary and used by Dict.IDF.
	Epsilon float64

	df       map[string]int64
	docs     int64
	totalLen int64
	entropy  *ulid.MonotonicEntropy
	now      func() time.Time
}

// NewBuilder creates a builder with the default digit adjustment
func NewBuilder() *Builder {
	return &Builder{
		DigitRate: DefaultDigitRate,
		df:        make(map[string]int64),
		entropy:   ulid.Monotonic(rand.Reader, 0),
		now:       time.Now,
	}
}

// Add counts one document. Each distinct token counts once no matter how
// often it repeats.
func (b *Builder) Add(tokens []string) {
	b.docs++
	b.totalLen += int64(len(tokens))

	seen := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		b.df[t]++
	}
}

// Docs returns the number of documents added so far
func (b *Builder) Docs() int64 {
	return b.docs
}

// Build computes the dictionary.
//
//	idf(t) = ln(D - df + 0.5) - ln(df + 0.5)
//
// AvgTDF is the summed document frequency over D. AvgIDF skips terms seen
// in a single document but still divides by the full term count.
func (b *Builder) Build() (*Dict, error) {
	if b.docs == 0 {
		return nil, internalerr.ErrEmptyCorpus
	}

	tokens := make([]string, 0, len(b.df))
	for t := range b.df {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)

	D := float64(b.docs)
	d := &Dict{
		idf: make(map[string]float64, len(tokens)),
		df:  make(map[string]int64, len(tokens)),
	}

	var totalDF int64
	for _, t := range tokens {
		v := b.df[t]
		d.df[t] = v
		d.idf[t] = math.Log(D-float64(v)+0.5) - math.Log(float64(v)+0.5)
		totalDF += v
	}
	avgTDF := float64(totalDF) / D

	if b.DigitRate > 0 {
		adj := avgTDF * b.DigitRate
		for i, t := range digitTokens {
			if _, ok := d.idf[t]; ok {
				d.idf[t] = adj + 0.0001*float64(i)
			}
		}
	}
	if b.AlphaRate > 0 {
		adj := avgTDF * b.AlphaRate
		for r := 'a'; r <= 'z'; r++ {
			if _, ok := d.idf[string(r)]; ok {
				d.idf[string(r)] = adj
			}
		}
	}

	avgIDF := 0.0
	if len(tokens) > 0 {
		total := 0.0
		for _, t := range tokens {
			if d.df[t] != 1 {
				total += d.idf[t]
			}
		}
		avgIDF = total / float64(len(tokens))
	}

	d.meta = store.Meta{
		Version:   ulid.MustNew(ulid.Now(), b.entropy).String(),
		Docs:      b.docs,
		AvgDocLen: float64(b.totalLen) / D,
		AvgIDF:    avgIDF,
		AvgTDF:    avgTDF,
		Epsilon:   b.Epsilon,
		DigitRate: b.DigitRate,
		BuiltAt:   b.now().UTC(),
	}
	return d, nil
}
