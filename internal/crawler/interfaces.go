package crawler

import "context"

// Fetcher fetches a single URL and returns the raw page. Any non-success
// outcome is reported uniformly as an error; the engine never branches on
// status codes.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (Page, error)
}

// Sink receives the final deduplicated, ordered record list for persistence.
type Sink interface {
	Write(ctx context.Context, records []Facility) error
}
