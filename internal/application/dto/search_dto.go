package dto

import "encoding/json"

// SearchRequest represents the query parameters accepted by the search endpoint
type SearchRequest struct {
	Topic    string `form:"topic" json:"topic,omitempty"`
	Stars    string `form:"stars" json:"stars,omitempty"`
	Language string `form:"language" json:"language,omitempty"`
	Page     string `form:"page" json:"page,omitempty"`
	PerPage  string `form:"per_page" json:"per_page,omitempty"`
}

// SearchResponse represents a page of repository search results
type SearchResponse struct {
	Total      int64              `json:"total"`
	Repos      []json.RawMessage  `json:"repos" swaggertype:"array,object"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse represents pagination metadata
type PaginationResponse struct {
	CurrentPage  int   `json:"currentPage"`
	PerPage      int   `json:"per_page"`
	TotalResults int64 `json:"total_results"`
	TotalPages   int64 `json:"total_pages"`
	HasNextPage  bool  `json:"has_next_page"`
	HasPrevPage  bool  `json:"has_prev_page"`
	NextPage     *int  `json:"next_page"`
	PrevPage     *int  `json:"prevPage"`
}
