package health

import "context"

// ModelChecker reports the state of the trained recommendation model.
type ModelChecker interface {
	Trained() bool
	Records() int
}

// CachePinger checks cache store availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}
