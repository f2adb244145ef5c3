// Package pipeline applies consumed site events to the search index and the dashboard counters.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"ai-solutions-go/internal/model"
	"ai-solutions-go/internal/repository"
	"ai-solutions-go/pkg/log"
	"ai-solutions-go/pkg/tasks"

	"gorm.io/gorm"
)

// DocumentIndex is the search index the processor keeps in sync.
type DocumentIndex interface {
	Upsert(ctx context.Context, doc model.SearchDocument) error
	Delete(ctx context.Context, docID string) error
}

// Processor holds the dependencies for handling site events.
type Processor struct {
	index         DocumentIndex
	notifications repository.NotificationRepository
	services      repository.ServiceRepository
	projects      repository.ProjectRepository
	articles      repository.ArticleRepository
	events        repository.EventRepository
}

// NewProcessor creates a Processor. index may be nil when search is not configured.
func NewProcessor(
	index DocumentIndex,
	notifications repository.NotificationRepository,
	services repository.ServiceRepository,
	projects repository.ProjectRepository,
	articles repository.ArticleRepository,
	events repository.EventRepository,
) *Processor {
	return &Processor{
		index:         index,
		notifications: notifications,
		services:      services,
		projects:      projects,
		articles:      articles,
		events:        events,
	}
}

// Process handles one event. Unknown types and non-indexed kinds are ignored.
func (p *Processor) Process(ctx context.Context, event tasks.Event) error {
	switch event.Type {
	case tasks.TypeContentChanged:
		return p.syncDocument(ctx, event)
	case tasks.TypeSubmissionReceived:
		n, err := p.notifications.Increment(ctx, event.Kind)
		if err != nil {
			return err
		}
		log.Infow("submission counter updated", "kind", event.Kind, "unseen", n)
		return nil
	default:
		log.Warnf("[Processor] ignoring event of unknown type %q", event.Type)
		return nil
	}
}

func (p *Processor) syncDocument(ctx context.Context, event tasks.Event) error {
	if p.index == nil || !Indexed(event.Kind) {
		return nil
	}
	id, err := strconv.ParseUint(event.ID, 10, 64)
	if err != nil {
		log.Warnf("[Processor] invalid id %q for %s event", event.ID, event.Kind)
		return nil
	}
	docID := DocID(event.Kind, uint(id))

	if event.Action == tasks.ActionDelete {
		if err := p.index.Delete(ctx, docID); err != nil {
			return fmt.Errorf("remove %s from index: %w", docID, err)
		}
		log.Infof("[Processor] removed %s from the search index", docID)
		return nil
	}

	doc, err := p.loadDocument(ctx, event.Kind, uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// deleted before the upsert was consumed
		return p.index.Delete(ctx, docID)
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", docID, err)
	}
	if err := p.index.Upsert(ctx, doc); err != nil {
		return fmt.Errorf("index %s: %w", docID, err)
	}
	log.Infof("[Processor] indexed %s", docID)
	return nil
}

func (p *Processor) loadDocument(ctx context.Context, kind string, id uint) (model.SearchDocument, error) {
	doc := model.SearchDocument{DocID: DocID(kind, id), Kind: kind, ItemID: id}
	switch kind {
	case model.KindService:
		s, err := p.services.FindByID(ctx, id)
		if err != nil {
			return doc, err
		}
		doc.Title, doc.ImageURL = s.Title, s.ImageURL
		doc.Body = joinNonEmpty(s.ShortDescription, s.LongDescription, strings.Join(s.KeyBenefits, ", "))
	case model.KindProject:
		pr, err := p.projects.FindByID(ctx, id)
		if err != nil {
			return doc, err
		}
		doc.Title, doc.ImageURL = pr.Title, pr.ImageURL
		doc.Body = joinNonEmpty(pr.Summary, strings.Join(pr.Technologies, ", "))
	case model.KindArticle:
		a, err := p.articles.FindByID(ctx, id)
		if err != nil {
			return doc, err
		}
		doc.Title, doc.ImageURL = a.Title, a.ImageURL
		doc.Body = joinNonEmpty(a.Excerpt, a.Content)
	case model.KindEvent:
		e, err := p.events.FindByID(ctx, id)
		if err != nil {
			return doc, err
		}
		doc.Title, doc.ImageURL = e.Title, e.ImageURL
		doc.Body = joinNonEmpty(e.Date+" at "+e.Location, e.Description)
	}
	return doc, nil
}

// Indexed reports whether items of kind appear in site search.
func Indexed(kind string) bool {
	switch kind {
	case model.KindService, model.KindProject, model.KindArticle, model.KindEvent:
		return true
	}
	return false
}

// DocID is the search document id of a catalog item.
func DocID(kind string, id uint) string {
	return fmt.Sprintf("%s-%d", kind, id)
}

func joinNonEmpty(parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n")
}
