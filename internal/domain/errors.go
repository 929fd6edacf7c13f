package domain

import "errors"

var (
	// ErrNotTrained signals a recommend call before training completed.
	ErrNotTrained = errors.New("model not trained")
	// ErrInvalidTopK signals a non-positive top_k.
	ErrInvalidTopK = errors.New("top_k must be positive")
	// ErrInvalidWeights signals a weight table that cannot be normalized.
	ErrInvalidWeights = errors.New("invalid weights")
	// ErrNoData signals that no college records could be loaded.
	ErrNoData = errors.New("no college data loaded")
)
