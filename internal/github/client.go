package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	DefaultBaseURL   = "https://api.github.com"
	DefaultUserAgent = "repo-search"
	DefaultTimeout   = 10 * time.Second

	apiVersion = "2022-11-28"

	// caps how much of an error body is kept in memory
	maxErrorBody = 64 << 10
)

// Client handles GitHub API interactions
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	userAgent  string
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at another API root, e.g. a GitHub Enterprise host or a test server
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithUserAgent sets the client-identifier header GitHub requires
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout bounds every request made by the client
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new GitHub API client authenticating with token
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		baseURL:   DefaultBaseURL,
		token:     token,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchParams are the parameters of GET /search/repositories
type SearchParams struct {
	// Q is sent verbatim; callers percent-encode clause values themselves
	Q       string
	Sort    string
	Order   string
	PerPage int
	Page    int
}

// SearchResult is the body of a repository search response
type SearchResult struct {
	TotalCount        int64             `json:"total_count"`
	IncompleteResults bool              `json:"incomplete_results"`
	Items             []json.RawMessage `json:"items"`
}

// APIError is returned when GitHub answers with a non-2xx status
type APIError struct {
	StatusCode int
	// Message is GitHub's "message" field, empty if the body had none
	Message string
	Body    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("github API returned status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("github API returned status %d", e.StatusCode)
}

// SearchRepositories runs a repository search. Transport failures are returned
// wrapped as-is; HTTP failures are *APIError.
func (c *Client) SearchRepositories(ctx context.Context, params SearchParams) (*SearchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(params), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("token %s", c.token))
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to search repositories: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    gjson.GetBytes(body, "message").String(),
			Body:       string(body),
		}
	}

	var result SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode search result: %w", err)
	}
	if result.Items == nil {
		result.Items = []json.RawMessage{}
	}

	return &result, nil
}

// searchURL builds the request URL. q goes in raw so its "+" separators
// reach GitHub as spaces rather than as an escaped %2B.
func (c *Client) searchURL(params SearchParams) string {
	rest := url.Values{}
	if params.Sort != "" {
		rest.Set("sort", params.Sort)
	}
	if params.Order != "" {
		rest.Set("order", params.Order)
	}
	if params.PerPage > 0 {
		rest.Set("per_page", strconv.Itoa(params.PerPage))
	}
	if params.Page > 0 {
		rest.Set("page", strconv.Itoa(params.Page))
	}

	query := "q=" + params.Q
	if encoded := rest.Encode(); encoded != "" {
		query += "&" + encoded
	}
	return fmt.Sprintf("%s/search/repositories?%s", c.baseURL, query)
}
