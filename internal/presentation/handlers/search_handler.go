package handlers

import (
	"net/http"

	"repo-search/internal/application/dto"
	"repo-search/internal/application/service"
	"repo-search/internal/domain/search"
	"repo-search/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchHandler handles repository search HTTP requests
type SearchHandler struct {
	searchService *service.SearchService
	logger        *zap.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService *service.SearchService, logger *zap.Logger) *SearchHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchHandler{
		searchService: searchService,
		logger:        logger,
	}
}

// SearchRepositories handles POST /api/repos/
// @Summary Search GitHub repositories
// @Description Searches GitHub repositories by topic, language and star range, sorted by stars descending
// @Tags Repositories
// @Produce json
// @Param topic query string false "Topic filter"
// @Param stars query string false "Star range, e.g. >100 or 50..200"
// @Param language query string false "Language filter"
// @Param page query int false "Page number" default(1) minimum(1)
// @Param per_page query int false "Items per page" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/repos/ [post]
func (h *SearchHandler) SearchRepositories(c *gin.Context) {
	req := &dto.SearchRequest{
		Topic:    c.Query("topic"),
		Stars:    c.Query("stars"),
		Language: c.Query("language"),
		Page:     c.Query("page"),
		PerPage:  c.Query("per_page"),
	}

	response, err := h.searchService.SearchRepositories(c.Request.Context(), req)
	if err != nil {
		if kind := search.KindOf(err); kind != search.KindValidation {
			h.logger.Error("repository search failed",
				zap.String("request_id", middleware.GetRequestID(c)),
				zap.String("kind", string(kind)),
				zap.Error(err),
			)
		}
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
