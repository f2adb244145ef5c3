package handler

import (
	"context"
	"net/http"
	"strconv"

	"ai-solutions-go/internal/model"
	"ai-solutions-go/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public catalog pages.
type CatalogHandler struct {
	catalog service.CatalogService
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func listWith[T any](c *gin.Context, list func(ctx context.Context) ([]T, error)) {
	items, err := list(c.Request.Context())
	if err != nil {
		failErr(c, err)
		return
	}
	if items == nil {
		items = []T{}
	}
	success(c, http.StatusOK, "success", items)
}

func getWith[T any](c *gin.Context, get func(ctx context.Context, id uint) (*T, error)) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := get(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, http.StatusOK, "success", item)
}

func (h *CatalogHandler) ListServices(c *gin.Context)     { listWith(c, h.catalog.ListServices) }
func (h *CatalogHandler) FeaturedServices(c *gin.Context) { listWith(c, h.catalog.FeaturedServices) }
func (h *CatalogHandler) GetService(c *gin.Context)       { getWith(c, h.catalog.GetService) }
func (h *CatalogHandler) ListProjects(c *gin.Context)     { listWith(c, h.catalog.ListProjects) }
func (h *CatalogHandler) GetProject(c *gin.Context)       { getWith(c, h.catalog.GetProject) }
func (h *CatalogHandler) ListArticles(c *gin.Context)     { listWith(c, h.catalog.ListArticles) }
func (h *CatalogHandler) FeaturedArticles(c *gin.Context) { listWith(c, h.catalog.FeaturedArticles) }
func (h *CatalogHandler) GetArticle(c *gin.Context)       { getWith(c, h.catalog.GetArticle) }
func (h *CatalogHandler) GetEvent(c *gin.Context)         { getWith(c, h.catalog.GetEvent) }

func (h *CatalogHandler) ListTestimonials(c *gin.Context) {
	listWith(c, h.catalog.ListTestimonials)
}

func (h *CatalogHandler) FeaturedTestimonials(c *gin.Context) {
	listWith(c, h.catalog.FeaturedTestimonials)
}

// ListEvents handles GET /events with an optional past=true|false filter.
func (h *CatalogHandler) ListEvents(c *gin.Context) {
	var past *bool
	if raw := c.Query("past"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			fail(c, http.StatusBadRequest, "past must be true or false")
			return
		}
		past = &v
	}
	listWith(c, func(ctx context.Context) ([]model.Event, error) {
		return h.catalog.ListEvents(ctx, past)
	})
}

// ListGallery handles GET /gallery with an optional category filter.
func (h *CatalogHandler) ListGallery(c *gin.Context) {
	category := c.Query("category")
	listWith(c, func(ctx context.Context) ([]model.GalleryImage, error) {
		return h.catalog.ListGallery(ctx, category)
	})
}
