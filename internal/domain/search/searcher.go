package search

import (
	"context"
	"encoding/json"
)

// Result is what the upstream returns for one page
type Result struct {
	TotalCount int64
	// Items are passed through untouched
	Items []json.RawMessage
}

// RepositorySearcher is a domain service interface for the upstream search API
// Implementation lives in the infrastructure layer
type RepositorySearcher interface {
	// SearchRepositories performs exactly one upstream call. Failures are *Error.
	SearchRepositories(ctx context.Context, query Query) (*Result, error)
}
