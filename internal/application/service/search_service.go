package service

import (
	"context"
	"encoding/json"
	"fmt"

	"repo-search/internal/application/dto"
	"repo-search/internal/domain/search"
)

// SearchService handles the repository search use case
type SearchService struct {
	searcher search.RepositorySearcher
}

// NewSearchService creates a new search service
func NewSearchService(searcher search.RepositorySearcher) *SearchService {
	return &SearchService{
		searcher: searcher,
	}
}

// SearchRepositories validates the request, queries GitHub once and shapes the page.
// Errors carry a *search.Error describing what went wrong.
func (s *SearchService) SearchRepositories(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error) {
	request, err := search.NewRequest(search.RawParams{
		Topic:    req.Topic,
		Stars:    req.Stars,
		Language: req.Language,
		Page:     req.Page,
		PerPage:  req.PerPage,
	})
	if err != nil {
		return nil, err
	}

	result, err := s.searcher.SearchRepositories(ctx, request.Query())
	if err != nil {
		return nil, fmt.Errorf("failed to search repositories: %w", err)
	}

	pagination := search.NewPagination(request.Page(), request.PerPage(), result.TotalCount)

	repos := result.Items
	if repos == nil {
		repos = []json.RawMessage{}
	}

	return &dto.SearchResponse{
		Total:      result.TotalCount,
		Repos:      repos,
		Pagination: toPaginationDTO(pagination),
	}, nil
}

// toPaginationDTO converts domain pagination to DTO
func toPaginationDTO(p search.Pagination) dto.PaginationResponse {
	return dto.PaginationResponse{
		CurrentPage:  p.Page,
		PerPage:      p.PerPage,
		TotalResults: p.Total,
		TotalPages:   p.TotalPages,
		HasNextPage:  p.HasNext,
		HasPrevPage:  p.HasPrev,
		NextPage:     p.NextPage,
		PrevPage:     p.PrevPage,
	}
}
