package handler

import (
	"net/http"

	"ai-solutions-go/internal/model"
	"ai-solutions-go/internal/service"

	"github.com/gin-gonic/gin"
)

// ModerationHandler serves the admin testimonial, inquiry and quote screens.
type ModerationHandler struct {
	moderation service.ModerationService
}

// NewModerationHandler creates a ModerationHandler.
func NewModerationHandler(moderation service.ModerationService) *ModerationHandler {
	return &ModerationHandler{moderation: moderation}
}

func (h *ModerationHandler) ListTestimonials(c *gin.Context) {
	listWith(c, h.moderation.ListTestimonials)
}

func (h *ModerationHandler) SetTestimonialStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var body model.StatusUpdate
	if !bindJSON(c, &body) {
		return
	}
	if err := h.moderation.SetTestimonialStatus(c.Request.Context(), id, body.Status); err != nil {
		failErr(c, err)
		return
	}
	success(c, http.StatusOK, "updated", nil)
}

func (h *ModerationHandler) SetTestimonialFeatured(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var body model.FeaturedUpdate
	if !bindJSON(c, &body) {
		return
	}
	if err := h.moderation.SetTestimonialFeatured(c.Request.Context(), id, *body.Featured); err != nil {
		failErr(c, err)
		return
	}
	success(c, http.StatusOK, "updated", nil)
}

func (h *ModerationHandler) DeleteTestimonial(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.moderation.DeleteTestimonial(c.Request.Context(), id); err != nil {
		failErr(c, err)
		return
	}
	success(c, http.StatusOK, "deleted", nil)
}

func (h *ModerationHandler) ListInquiries(c *gin.Context) {
	listWith(c, h.moderation.ListInquiries)
}

func (h *ModerationHandler) SetInquiryRead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var body model.ReadUpdate
	if !bindJSON(c, &body) {
		return
	}
	if err := h.moderation.SetInquiryRead(c.Request.Context(), id, *body.Read); err != nil {
		failErr(c, err)
		return
	}
	success(c, http.StatusOK, "updated", nil)
}

func (h *ModerationHandler) DeleteInquiry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.moderation.DeleteInquiry(c.Request.Context(), id); err != nil {
		failErr(c, err)
		return
	}
	success(c, http.StatusOK, "deleted", nil)
}

func (h *ModerationHandler) ListQuotes(c *gin.Context) {
	listWith(c, h.moderation.ListQuotes)
}

// SetQuoteStatus handles PUT /admin/quotes/:id/status. Quote ids are UUID strings.
func (h *ModerationHandler) SetQuoteStatus(c *gin.Context) {
	var body model.StatusUpdate
	if !bindJSON(c, &body) {
		return
	}
	if err := h.moderation.SetQuoteStatus(c.Request.Context(), c.Param("id"), body.Status); err != nil {
		failErr(c, err)
		return
	}
	success(c, http.StatusOK, "updated", nil)
}

func (h *ModerationHandler) DeleteQuote(c *gin.Context) {
	if err := h.moderation.DeleteQuote(c.Request.Context(), c.Param("id")); err != nil {
		failErr(c, err)
		return
	}
	success(c, http.StatusOK, "deleted", nil)
}
