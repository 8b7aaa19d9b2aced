package search

import (
	"strconv"
	"strings"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MinPage        = 1
	MinPerPage     = 1
	MaxPerPage     = 100
)

// RawParams is the parameter bag as it arrives at the boundary
type RawParams struct {
	Topic    string
	Stars    string
	Language string
	Page     string
	PerPage  string
}

// Filters holds the trimmed filter values; an empty field means absent
type Filters struct {
	Topic    string
	Language string
	Stars    string
}

// IsEmpty reports whether no filter is present
func (f Filters) IsEmpty() bool {
	return f.Topic == "" && f.Language == "" && f.Stars == ""
}

// Request is a validated, normalized search request
type Request struct {
	filters Filters
	page    int
	perPage int
}

// NewRequest validates raw parameters and normalizes pagination.
// Filters are checked first so that an invalid request never parses pagination.
func NewRequest(raw RawParams) (*Request, error) {
	filters := Filters{
		Topic:    strings.TrimSpace(raw.Topic),
		Language: strings.TrimSpace(raw.Language),
		Stars:    strings.TrimSpace(raw.Stars),
	}
	if filters.IsEmpty() {
		return nil, ErrNoFilter()
	}

	return &Request{
		filters: filters,
		page:    NormalizePage(raw.Page),
		perPage: NormalizePerPage(raw.PerPage),
	}, nil
}

// NormalizePage parses page, falling back to 1 when absent, invalid or below 1.
func NormalizePage(value string) int {
	page, ok := parseInt(value)
	if !ok || page < MinPage {
		return DefaultPage
	}
	return page
}

// NormalizePerPage parses per_page into [1, 100]. Absent, invalid or
// non-positive values fall back to the default of 10.
func NormalizePerPage(value string) int {
	perPage, ok := parseInt(value)
	if !ok || perPage < MinPerPage {
		return DefaultPerPage
	}
	if perPage > MaxPerPage {
		return MaxPerPage
	}
	return perPage
}

func parseInt(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Filters returns the present filters
func (r *Request) Filters() Filters {
	return r.filters
}

// Page returns the effective page
func (r *Request) Page() int {
	return r.page
}

// PerPage returns the effective page size
func (r *Request) PerPage() int {
	return r.perPage
}

// Query builds the upstream query for this request
func (r *Request) Query() Query {
	return Query{
		Q:       BuildQuery(r.filters),
		Sort:    SortStars,
		Order:   OrderDesc,
		PerPage: r.perPage,
		Page:    r.page,
	}
}
