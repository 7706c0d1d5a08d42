package ingest

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Tokenizer splits raw text into the normalized tokens the extractor
// consumes. Stopwords are not removed here; the extractor does that once
// for both rankers.
type Tokenizer struct {
	minRunes    int
	keepNumeric bool
}

// Option configures a Tokenizer
type Option func(*Tokenizer)

// WithMinRunes drops tokens shorter than n runes (default 2)
func WithMinRunes(n int) Option {
	return func(t *Tokenizer) {
		t.minRunes = n
	}
}

// WithNumeric keeps tokens made only of digits and hyphens
func WithNumeric(keep bool) Option {
	return func(t *Tokenizer) {
		t.keepNumeric = keep
	}
}

// NewTokenizer creates a tokenizer
func NewTokenizer(opts ...Option) *Tokenizer {
	t := &Tokenizer{minRunes: 2}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tokenize splits text into lowercase NFC tokens in reading order.
// Letters, digits and inner hyphens form a token; everything else
// separates tokens.
func (t *Tokenizer) Tokenize(text string) []string {
	text = norm.NFC.String(text)

	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		if word := t.processToken(current.String()); word != "" {
			tokens = append(tokens, word)
		}
		current.Reset()
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Mn, r) || r == '-' {
			current.WriteRune(unicode.ToLower(r))
			continue
		}
		flush()
	}
	flush()

	return tokens
}

// processToken applies cleaning and length/numeric filtering
func (t *Tokenizer) processToken(token string) string {
	word := cleanToken(token)
	if word == "" || utf8.RuneCountInString(word) < t.minRunes {
		return ""
	}

	// Mixed tokens like "gpt-4" or "utf-8" are kept.
	if !t.keepNumeric && isNumericOnly(word) {
		return ""
	}

	return word
}

// cleanToken strips leading/trailing hyphens and normalizes consecutive hyphens
func cleanToken(token string) string {
	token = strings.Trim(token, "-")

	for strings.Contains(token, "--") {
		token = strings.ReplaceAll(token, "--", "-")
	}

	return token
}

// isNumericOnly returns true if the token contains only digits and hyphens.
func isNumericOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '-' {
			return false
		}
	}
	return true
}
