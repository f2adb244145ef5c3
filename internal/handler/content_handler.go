package handler

import (
	"net/http"

	"ai-solutions-go/internal/model"
	"ai-solutions-go/internal/service"

	"github.com/gin-gonic/gin"
)

// ContentHandler exposes admin CRUD for one catalog collection.
type ContentHandler[T model.Entity] struct {
	svc service.ContentService[T]
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler[T model.Entity](svc service.ContentService[T]) *ContentHandler[T] {
	return &ContentHandler[T]{svc: svc}
}

func (h *ContentHandler[T]) List(c *gin.Context) { listWith(c, h.svc.List) }

func (h *ContentHandler[T]) Get(c *gin.Context) { getWith(c, h.svc.Get) }

func (h *ContentHandler[T]) Create(c *gin.Context) {
	var item T
	if !bindJSON(c, &item) {
		return
	}
	if err := h.svc.Create(c.Request.Context(), &item); err != nil {
		failErr(c, err)
		return
	}
	success(c, http.StatusCreated, "created", item)
}

// Update replaces the item; the id in the path wins over any id in the body.
func (h *ContentHandler[T]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var item T
	if !bindJSON(c, &item) {
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), id, &item)
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, http.StatusOK, "updated", updated)
}

func (h *ContentHandler[T]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		failErr(c, err)
		return
	}
	success(c, http.StatusOK, "deleted", nil)
}

// EventHandler is the event CRUD handler with gallery mirroring on create.
type EventHandler struct {
	*ContentHandler[model.Event]
	events service.EventService
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(events service.EventService) *EventHandler {
	return &EventHandler{ContentHandler: NewContentHandler[model.Event](events), events: events}
}

// Create handles POST /admin/events; addToGallery=true also creates a gallery image.
func (h *EventHandler) Create(c *gin.Context) {
	var form model.EventForm
	if !bindJSON(c, &form) {
		return
	}
	event, err := h.events.CreateEvent(c.Request.Context(), &form)
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, http.StatusCreated, "created", event)
}
