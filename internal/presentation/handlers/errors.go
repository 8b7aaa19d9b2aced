package handlers

import (
	"errors"
	"net/http"

	"repo-search/internal/domain/search"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents an error returned by the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type errorMapping struct {
	status  int
	message string
}

// errorMappings is the single place error kinds become HTTP responses
var errorMappings = map[search.ErrorKind]errorMapping{
	search.KindValidation:        {http.StatusBadRequest, search.MsgFilterRequired},
	search.KindUpstreamAuth:      {http.StatusInternalServerError, "GitHub authentication failed"},
	search.KindUpstreamRateLimit: {http.StatusInternalServerError, "GitHub API rate limit exceeded"},
	search.KindUpstreamQuery:     {http.StatusBadRequest, "Invalid search query"},
	search.KindUpstreamGeneric:   {http.StatusInternalServerError, "GitHub API request failed"},
	search.KindNetwork:           {http.StatusInternalServerError, "Unable to reach GitHub API"},
	search.KindUnexpected:        {http.StatusInternalServerError, "Internal server error"},
}

// MapError converts any error into a status code and response body.
// Upstream bodies and credentials never leak; only GitHub's own message is
// surfaced, and only for otherwise unclassified upstream failures.
func MapError(err error) (int, ErrorResponse) {
	var se *search.Error
	if !errors.As(err, &se) {
		m := errorMappings[search.KindUnexpected]
		return m.status, ErrorResponse{Error: m.message}
	}

	m, ok := errorMappings[se.Kind]
	if !ok {
		m = errorMappings[search.KindUnexpected]
	}

	resp := ErrorResponse{Error: m.message}
	switch se.Kind {
	case search.KindUpstreamGeneric:
		if se.Message != "" {
			resp.Error = se.Message
		}
		resp.Details = http.StatusText(se.StatusCode)
	case search.KindUpstreamQuery:
		resp.Details = se.Message
	case search.KindNetwork:
		resp.Details = "no response received from upstream"
	}
	return m.status, resp
}

// abortWithError writes the mapped error response and stops the chain
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	status, body := MapError(err)
	c.AbortWithStatusJSON(status, body)
}

// Recovery turns panics into the same JSON body as any unexpected error
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		status, body := MapError(nil)
		c.AbortWithStatusJSON(status, body)
	})
}
