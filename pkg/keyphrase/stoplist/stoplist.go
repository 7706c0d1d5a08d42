package stoplist

import (
	"sort"

	"github.com/cognicore/keyphrase/pkg/keyphrase/idf"
)

// Manager holds the stopwords removed before keyword scoring
type Manager struct {
	stops map[string]Reason
}

// Reason explains why a token is a stopword
type Reason struct {
	Configured bool    // listed in configuration
	HighDF     bool    // appears in a large share of documents
	LowIDF     bool    // IDF below the suggestion ceiling
	DFPercent  float64 // share of documents containing the token
	IDF        float64 // inverse document frequency
}

// NewManager creates a new stoplist manager
func NewManager(initialStops []string) *Manager {
	stops := make(map[string]Reason, len(initialStops))
	for _, s := range initialStops {
		if s == "" {
			continue
		}
		stops[s] = Reason{Configured: true}
	}
	return &Manager{stops: stops}
}

// IsStop checks if a token is a stopword
func (m *Manager) IsStop(token string) bool {
	_, ok := m.stops[token]
	return ok
}

// Add adds a token to the stoplist with a reason
func (m *Manager) Add(token string, reason Reason) {
	m.stops[token] = reason
}

// Remove removes a token from the stoplist
func (m *Manager) Remove(token string) {
	delete(m.stops, token)
}

// Why returns the reason token was added
func (m *Manager) Why(token string) (Reason, bool) {
	r, ok := m.stops[token]
	return r, ok
}

// All returns all stopwords, sorted
func (m *Manager) All() []string {
	result := make([]string, 0, len(m.stops))
	for s := range m.stops {
		result = append(result, s)
	}
	sort.Strings(result)
	return result
}

// Len returns the number of stopwords
func (m *Manager) Len() int {
	return len(m.stops)
}

// Set returns a copy of the stopwords in the shape keyphrase.Options takes
func (m *Manager) Set() map[string]struct{} {
	set := make(map[string]struct{}, len(m.stops))
	for s := range m.stops {
		set[s] = struct{}{}
	}
	return set
}

// Stats holds corpus statistics for candidate evaluation
type Stats struct {
	Token     string
	DF        int64
	DFPercent float64
	IDF       float64
}

// StatsFromDict derives per-term statistics from an IDF dictionary,
// sorted by token
func StatsFromDict(d *idf.Dict) []Stats {
	docs := d.Meta().Docs
	terms := d.Terms()
	stats := make([]Stats, 0, len(terms))
	for _, t := range terms {
		pct := 0.0
		if docs > 0 {
			pct = float64(t.DF) / float64(docs) * 100
		}
		stats = append(stats, Stats{Token: t.Token, DF: t.DF, DFPercent: pct, IDF: t.IDF})
	}
	return stats
}

// Candidate represents a candidate stopword
type Candidate struct {
	Token  string
	Reason Reason
	Score  float64 // confidence score
}

// Thresholds defines criteria for stopword identification
type Thresholds struct {
	DFPercent float64 // e.g. 60: appears in more than 60% of documents
	MaxIDF    float64 // IDF at or below this counts as low
	MinDF     int64   // ignore tokens seen in fewer documents
}

// DefaultThresholds returns sensible default thresholds.
// MaxIDF 0 matches tokens found in at least half of the documents.
func DefaultThresholds() Thresholds {
	return Thresholds{
		DFPercent: 60.0,
		MaxIDF:    0,
		MinDF:     2,
	}
}

// SuggestCandidates suggests tokens that should be stopwords, best first.
// A token qualifies when it is both high-DF and low-IDF.
func (m *Manager) SuggestCandidates(stats []Stats, thresholds Thresholds) []Candidate {
	var candidates []Candidate

	for _, s := range stats {
		if m.IsStop(s.Token) {
			continue // already a stopword
		}
		if s.DF < thresholds.MinDF {
			continue
		}

		reason := Reason{
			HighDF:    s.DFPercent > thresholds.DFPercent,
			LowIDF:    s.IDF <= thresholds.MaxIDF,
			DFPercent: s.DFPercent,
			IDF:       s.IDF,
		}
		if !reason.HighDF || !reason.LowIDF {
			continue
		}

		candidates = append(candidates, Candidate{
			Token:  s.Token,
			Reason: reason,
			Score:  s.DFPercent / 100.0,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates
}

// Apply adds every candidate to the stoplist and returns their tokens
func (m *Manager) Apply(candidates []Candidate) []string {
	tokens := make([]string, 0, len(candidates))
	for _, c := range candidates {
		m.Add(c.Token, c.Reason)
		tokens = append(tokens, c.Token)
	}
	return tokens
}
