package store

import (
	"context"
	"time"
)

// Store persists IDF dictionaries and the stoplist
type Store interface {
	TermLookup
	Close() error

	// Dictionary
	SaveDict(ctx context.Context, snap Snapshot) error
	LoadDict(ctx context.Context) (Snapshot, bool, error)
	Meta(ctx context.Context) (Meta, bool, error)

	// Stoplist
	UpsertStoplist(ctx context.Context, tokens []string) error
	Stoplist(ctx context.Context) ([]string, error)
}

// TermLookup resolves single dictionary terms without loading the whole
// dictionary
type TermLookup interface {
	LookupTerm(ctx context.Context, token string) (Term, bool, error)
}

// Snapshot is a complete dictionary: its header plus every term
type Snapshot struct {
	Meta  Meta
	Terms []Term
}

// Meta describes how a dictionary was built
type Meta struct {
	Version   string // ULID, unique per build
	Docs      int64  // documents counted
	AvgDocLen float64
	AvgIDF    float64
	AvgTDF    float64
	Epsilon   float64 // negative-IDF correction factor, 0 = off
	DigitRate float64
	BuiltAt   time.Time
}

// Term is one dictionary entry
type Term struct {
	Token string
	DF    int64
	IDF   float64
}
