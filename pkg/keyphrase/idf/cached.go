package idf

import (
	"context"
	"fmt"
	"log"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/cognicore/keyphrase/pkg/keyphrase/internalerr"
	"github.com/cognicore/keyphrase/pkg/keyphrase/store"
)

// DefaultCacheSize bounds the number of terms Cached keeps in memory
const DefaultCacheSize = 4096

type cachedTerm struct {
	idf   float64
	found bool
}

// Cached serves IDF weights straight from a store, keeping recently used
// terms (including misses) in an LRU cache. Lookup errors, including a
// cancelled context, are logged and score as missing terms without being
// cached.
type Cached struct {
	ctx    context.Context
	lookup store.TermLookup
	cache  *lru.Cache[string, cachedTerm]
}

// NewCached wraps lookup with an LRU cache of size entries. Every store
// lookup runs under ctx.
func NewCached(ctx context.Context, lookup store.TermLookup, size int) (*Cached, error) {
	if lookup == nil {
		return nil, fmt.Errorf("nil term lookup: %w", internalerr.ErrInvalidInput)
	}
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, cachedTerm](size)
	if err != nil {
		return nil, fmt.Errorf("create idf cache: %w", err)
	}
	return &Cached{ctx: ctx, lookup: lookup, cache: cache}, nil
}

// Weight implements tfidf.IDF
func (c *Cached) Weight(token string) (float64, bool) {
	if ct, ok := c.cache.Get(token); ok {
		return ct.idf, ct.found
	}

	term, found, err := c.lookup.LookupTerm(c.ctx, token)
	if err != nil {
		log.Printf("idf lookup %q: %v", token, err)
		return 0, false
	}

	c.cache.Add(token, cachedTerm{idf: term.IDF, found: found})
	return term.IDF, found
}

// Len returns the number of cached terms
func (c *Cached) Len() int {
	return c.cache.Len()
}
