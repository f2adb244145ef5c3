package handler

import (
	"net/http"
	"strconv"

	"ai-solutions-go/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchHandler serves site search.
type SearchHandler struct {
	search service.SearchService
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(search service.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// Search handles GET /api/v1/search?q=&size=.
func (h *SearchHandler) Search(c *gin.Context) {
	if h.search == nil {
		fail(c, http.StatusServiceUnavailable, "search is not configured")
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.search.Search(c.Request.Context(), c.Query("q"), size)
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, http.StatusOK, "success", hits)
}
