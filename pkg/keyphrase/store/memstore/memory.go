package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/cognicore/keyphrase/pkg/keyphrase/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu       sync.RWMutex
	meta     store.Meta
	hasDict  bool
	terms    map[string]store.Term
	stoplist map[string]struct{}
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		terms:    make(map[string]store.Term),
		stoplist: make(map[string]struct{}),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveDict replaces the stored dictionary.
func (s *Store) SaveDict(ctx context.Context, snap store.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.meta = snap.Meta
	s.hasDict = true
	s.terms = make(map[string]store.Term, len(snap.Terms))
	for _, t := range snap.Terms {
		if t.Token == "" {
			continue
		}
		s.terms[t.Token] = t
	}
	return nil
}

// LoadDict returns the stored dictionary with terms sorted by token.
func (s *Store) LoadDict(ctx context.Context) (store.Snapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasDict {
		return store.Snapshot{}, false, nil
	}

	snap := store.Snapshot{Meta: s.meta, Terms: make([]store.Term, 0, len(s.terms))}
	for _, t := range s.terms {
		snap.Terms = append(snap.Terms, t)
	}
	sort.Slice(snap.Terms, func(i, j int) bool {
		return snap.Terms[i].Token < snap.Terms[j].Token
	})
	return snap, true, nil
}

// Meta returns the stored dictionary header.
func (s *Store) Meta(ctx context.Context) (store.Meta, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.meta, s.hasDict, nil
}

// LookupTerm returns a single term.
func (s *Store) LookupTerm(ctx context.Context, token string) (store.Term, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.terms[token]
	return t, ok, nil
}

// UpsertStoplist adds tokens to the stoplist.
func (s *Store) UpsertStoplist(ctx context.Context, tokens []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		s.stoplist[tok] = struct{}{}
	}
	return nil
}

// Stoplist returns the stored stopwords, sorted.
func (s *Store) Stoplist(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.stoplist))
	for tok := range s.stoplist {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out, nil
}
