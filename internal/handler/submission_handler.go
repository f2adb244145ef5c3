package handler

import (
	"net/http"

	"ai-solutions-go/internal/model"
	"ai-solutions-go/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmissionHandler accepts the public forms.
type SubmissionHandler struct {
	submissions service.SubmissionService
}

// NewSubmissionHandler creates a SubmissionHandler.
func NewSubmissionHandler(submissions service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions}
}

// Contact handles POST /api/v1/contact.
func (h *SubmissionHandler) Contact(c *gin.Context) {
	var form model.ContactForm
	if !bindJSON(c, &form) {
		return
	}
	sub, err := h.submissions.SubmitContact(c.Request.Context(), form)
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, http.StatusCreated, "Thank you for your message! We will get back to you shortly.", gin.H{"id": sub.ID})
}

// Quote handles POST /api/v1/quotes.
func (h *SubmissionHandler) Quote(c *gin.Context) {
	var form model.QuoteForm
	if !bindJSON(c, &form) {
		return
	}
	q, err := h.submissions.SubmitQuote(c.Request.Context(), form)
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, http.StatusCreated, "Your quote request has been received.", gin.H{"id": q.ID})
}

// Feedback handles POST /api/v1/feedback.
func (h *SubmissionHandler) Feedback(c *gin.Context) {
	var form model.FeedbackForm
	if !bindJSON(c, &form) {
		return
	}
	t, err := h.submissions.SubmitFeedback(c.Request.Context(), form)
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, http.StatusCreated, "Thank you for your feedback! It will appear once approved.", gin.H{"id": t.ID})
}
