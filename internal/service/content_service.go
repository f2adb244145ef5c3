package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"ai-solutions-go/internal/model"
	"ai-solutions-go/internal/repository"
	"ai-solutions-go/pkg/log"
	"ai-solutions-go/pkg/tasks"
)

// EventPublisher hands site events to the message queue.
type EventPublisher interface {
	Publish(ctx context.Context, event tasks.Event) error
}

// ContentService is the admin CRUD surface of one catalog collection.
type ContentService[T model.Entity] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, id uint, item *T) (*T, error)
	Delete(ctx context.Context, id uint) error
}

type contentManager[T model.Entity] struct {
	kind      string
	store     repository.Store[T]
	publisher EventPublisher
}

// NewContentManager creates a ContentService for kind. Every mutation is published when
// publisher is non-nil.
func NewContentManager[T model.Entity](kind string, store repository.Store[T], publisher EventPublisher) ContentService[T] {
	return &contentManager[T]{kind: kind, store: store, publisher: publisher}
}

func (m *contentManager[T]) List(ctx context.Context) ([]T, error) {
	return m.store.FindAll(ctx)
}

func (m *contentManager[T]) Get(ctx context.Context, id uint) (*T, error) {
	item, err := m.store.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return item, nil
}

func (m *contentManager[T]) Create(ctx context.Context, item *T) error {
	if err := m.store.Create(ctx, item); err != nil {
		return fmt.Errorf("create %s: %w", m.kind, err)
	}
	publish(ctx, m.publisher, tasks.ContentChanged(m.kind, (*item).EntityID(), tasks.ActionUpsert))
	return nil
}

// Update replaces every field of the item with the given id and returns the stored result.
func (m *contentManager[T]) Update(ctx context.Context, id uint, item *T) (*T, error) {
	if err := m.store.Update(ctx, id, item); err != nil {
		return nil, translateNotFound(err)
	}
	updated, err := m.store.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	publish(ctx, m.publisher, tasks.ContentChanged(m.kind, id, tasks.ActionUpsert))
	return updated, nil
}

func (m *contentManager[T]) Delete(ctx context.Context, id uint) error {
	if err := m.store.Delete(ctx, id); err != nil {
		return translateNotFound(err)
	}
	publish(ctx, m.publisher, tasks.ContentChanged(m.kind, id, tasks.ActionDelete))
	return nil
}

// publish logs instead of failing: the store write already succeeded.
func publish(ctx context.Context, publisher EventPublisher, event tasks.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		log.Warnw("failed to publish site event", "type", event.Type, "key", event.Key(), "error", err)
	}
}

// EventService manages events and can mirror a new event into the gallery.
type EventService interface {
	ContentService[model.Event]
	CreateEvent(ctx context.Context, form *model.EventForm) (*model.Event, error)
}

type eventService struct {
	ContentService[model.Event]
	gallery ContentService[model.GalleryImage]
}

// NewEventService creates an EventService.
func NewEventService(events ContentService[model.Event], gallery ContentService[model.GalleryImage]) EventService {
	return &eventService{ContentService: events, gallery: gallery}
}

// galleryCaptionLimit is the number of description characters copied into a mirrored gallery caption.
const galleryCaptionLimit = 100

// CreateEvent stores the event and, when requested, a gallery image of category "Event" that
// reuses its title and image. A gallery failure is logged and does not undo the event.
func (s *eventService) CreateEvent(ctx context.Context, form *model.EventForm) (*model.Event, error) {
	event := form.Event
	if err := s.Create(ctx, &event); err != nil {
		return nil, err
	}
	if form.AddToGallery {
		img := &model.GalleryImage{
			Title:    event.Title,
			ImageURL: event.ImageURL,
			Caption:  firstRunes(event.Description, galleryCaptionLimit),
			Category: "Event",
		}
		if err := s.gallery.Create(ctx, img); err != nil {
			log.Error("failed to add event to gallery", err)
		}
	}
	return &event, nil
}

func firstRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
