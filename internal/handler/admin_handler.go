package handler

import (
	"net/http"

	"ai-solutions-go/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the dashboard summary and image uploads.
type AdminHandler struct {
	dashboard service.DashboardService
	media     service.MediaService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(dashboard service.DashboardService, media service.MediaService) *AdminHandler {
	return &AdminHandler{dashboard: dashboard, media: media}
}

// Dashboard handles GET /admin/dashboard.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, http.StatusOK, "success", stats)
}

// UploadMedia handles POST /admin/media with a multipart "file" field.
func (h *AdminHandler) UploadMedia(c *gin.Context) {
	if h.media == nil {
		fail(c, http.StatusServiceUnavailable, "media storage is not configured")
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, "missing file")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		fail(c, http.StatusBadRequest, "unreadable file")
		return
	}
	defer file.Close()

	url, err := h.media.UploadImage(c.Request.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), fileHeader.Size, file)
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, http.StatusCreated, "uploaded", gin.H{"url": url})
}
