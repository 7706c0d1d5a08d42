// Package idf builds, stores and serves the corpus-wide inverse document
// frequency dictionary the keyphrase extractor scores against.
package idf

import (
	"context"
	"fmt"
	"sort"

	"github.com/cognicore/keyphrase/pkg/keyphrase/internalerr"
	"github.com/cognicore/keyphrase/pkg/keyphrase/store"
)

// Dict is an immutable IDF dictionary. It is safe for concurrent readers.
type Dict struct {
	meta store.Meta
	idf  map[string]float64
	df   map[string]int64
}

// FromSnapshot rebuilds a dictionary from its stored form
func FromSnapshot(snap store.Snapshot) *Dict {
	d := &Dict{
		meta: snap.Meta,
		idf:  make(map[string]float64, len(snap.Terms)),
		df:   make(map[string]int64, len(snap.Terms)),
	}
	for _, t := range snap.Terms {
		d.idf[t.Token] = t.IDF
		d.df[t.Token] = t.DF
	}
	return d
}

// Weight returns the raw IDF of token. Callers scoring with it treat a
// missing token as zero.
func (d *Dict) Weight(token string) (float64, bool) {
	w, ok := d.idf[token]
	return w, ok
}

// IDF returns the IDF used for candidate filtering: unknown tokens get the
// dictionary average, and with Epsilon set a negative IDF is replaced by
// Epsilon times the average.
func (d *Dict) IDF(token string) float64 {
	w, ok := d.idf[token]
	if !ok {
		return d.meta.AvgIDF
	}
	if d.meta.Epsilon != 0 && w < 0 {
		return d.meta.Epsilon * d.meta.AvgIDF
	}
	return w
}

// DF returns the number of documents that contained token
func (d *Dict) DF(token string) int64 {
	return d.df[token]
}

// TDF returns the fraction of documents containing token, or the average
// document frequency for unknown tokens
func (d *Dict) TDF(token string) float64 {
	df, ok := d.df[token]
	if !ok || d.meta.Docs == 0 {
		return d.meta.AvgTDF
	}
	return float64(df) / float64(d.meta.Docs)
}

// Meta returns the dictionary header
func (d *Dict) Meta() store.Meta {
	return d.meta
}

// Len returns the number of terms
func (d *Dict) Len() int {
	return len(d.idf)
}

// Terms returns every term sorted by token
func (d *Dict) Terms() []store.Term {
	terms := make([]store.Term, 0, len(d.idf))
	for tok, w := range d.idf {
		terms = append(terms, store.Term{Token: tok, DF: d.df[tok], IDF: w})
	}
	sort.Slice(terms, func(i, j int) bool {
		return terms[i].Token < terms[j].Token
	})
	return terms
}

// Snapshot returns the dictionary in its stored form
func (d *Dict) Snapshot() store.Snapshot {
	return store.Snapshot{Meta: d.meta, Terms: d.Terms()}
}

// Save writes the dictionary to st, replacing any previous one
func Save(ctx context.Context, st store.Store, d *Dict) error {
	if err := st.SaveDict(ctx, d.Snapshot()); err != nil {
		return fmt.Errorf("save dictionary %s: %w", d.meta.Version, err)
	}
	return nil
}

// Load reads the stored dictionary into memory
func Load(ctx context.Context, st store.Store) (*Dict, error) {
	snap, found, err := st.LoadDict(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("load dictionary: %w", internalerr.ErrNotFound)
	}
	return FromSnapshot(snap), nil
}
