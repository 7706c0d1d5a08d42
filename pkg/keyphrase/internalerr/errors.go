package internalerr

import "errors"

// Sentinel errors shared by the dictionary, store and config packages
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrEmptyCorpus      = errors.New("empty corpus")
)
