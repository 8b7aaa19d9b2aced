package github

import (
	"context"
	"errors"
	"net"
	"net/url"
	"time"

	"repo-search/internal/domain/search"
	"repo-search/internal/github"
	"repo-search/internal/metrics"

	"go.uber.org/zap"
)

// SearchServiceImpl implements the domain search.RepositorySearcher interface
type SearchServiceImpl struct {
	client  *github.Client
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewSearchService creates a new GitHub search implementation
func NewSearchService(client *github.Client, m *metrics.Metrics, logger *zap.Logger) search.RepositorySearcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchServiceImpl{client: client, metrics: m, logger: logger}
}

// SearchRepositories runs one GitHub search and classifies any failure
func (g *SearchServiceImpl) SearchRepositories(ctx context.Context, query search.Query) (*search.Result, error) {
	start := time.Now()

	result, err := g.client.SearchRepositories(ctx, github.SearchParams{
		Q:       query.Q,
		Sort:    query.Sort,
		Order:   query.Order,
		PerPage: query.PerPage,
		Page:    query.Page,
	})
	if err != nil {
		domainErr := classify(err)
		g.metrics.ObserveUpstream(string(domainErr.Kind), time.Since(start))
		g.logger.Warn("github search failed",
			zap.String("kind", string(domainErr.Kind)),
			zap.Int("status", domainErr.StatusCode),
			zap.String("q", query.Q),
			zap.Error(err),
		)
		return nil, domainErr
	}
	g.metrics.ObserveUpstream("success", time.Since(start))

	if result.IncompleteResults {
		g.logger.Info("github search returned incomplete results", zap.String("q", query.Q))
	}

	return &search.Result{
		TotalCount: result.TotalCount,
		Items:      result.Items,
	}, nil
}

// classify maps a client failure onto a domain error kind
func classify(err error) *search.Error {
	var apiErr *github.APIError
	if errors.As(err, &apiErr) {
		return search.ErrUpstreamStatus(apiErr.StatusCode, apiErr.Message)
	}

	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) ||
		errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return search.ErrNetwork(err)
	}

	return search.ErrUnexpected(err)
}
