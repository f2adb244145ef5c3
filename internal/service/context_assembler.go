package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"ai-solutions-go/internal/config"
	"ai-solutions-go/internal/model"

	"golang.org/x/sync/errgroup"
)

// excerptLimit is the number of characters kept from event descriptions and testimonial messages.
const excerptLimit = 100

// ContentReader is the read-only view of the content store the chatbot is grounded with.
type ContentReader interface {
	ListServices(ctx context.Context) ([]model.Service, error)
	ListProjects(ctx context.Context) ([]model.Project, error)
	ListArticles(ctx context.Context) ([]model.Article, error)
	ListEvents(ctx context.Context) ([]model.Event, error)
	ListGalleryImages(ctx context.Context) ([]model.GalleryImage, error)
	ListApprovedTestimonials(ctx context.Context) ([]model.Testimonial, error)
}

// ContextAssembler turns the current site content into the chatbot's grounding text.
type ContextAssembler struct {
	reader ContentReader
	cfg    config.AssistantConfig
}

// NewContextAssembler creates a ContextAssembler.
func NewContextAssembler(reader ContentReader, cfg config.AssistantConfig) *ContextAssembler {
	return &ContextAssembler{reader: reader, cfg: cfg}
}

// Build reads all six collections and renders the context string. Any read failure aborts the
// whole build with ErrContentRead.
func (a *ContextAssembler) Build(ctx context.Context) (string, error) {
	var (
		services     []model.Service
		projects     []model.Project
		articles     []model.Article
		events       []model.Event
		gallery      []model.GalleryImage
		testimonials []model.Testimonial
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		services, err = a.reader.ListServices(gctx)
		return wrapRead("services", err)
	})
	g.Go(func() (err error) {
		projects, err = a.reader.ListProjects(gctx)
		return wrapRead("projects", err)
	})
	g.Go(func() (err error) {
		articles, err = a.reader.ListArticles(gctx)
		return wrapRead("articles", err)
	})
	g.Go(func() (err error) {
		events, err = a.reader.ListEvents(gctx)
		return wrapRead("events", err)
	})
	g.Go(func() (err error) {
		gallery, err = a.reader.ListGalleryImages(gctx)
		return wrapRead("gallery", err)
	})
	g.Go(func() (err error) {
		testimonials, err = a.reader.ListApprovedTestimonials(gctx)
		return wrapRead("testimonials", err)
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	limit := a.cfg.MaxItemsPerCollection
	var sb strings.Builder
	sb.WriteString("Company Information - Services: ")
	sb.WriteString(joinFragments(capItems(services, limit), serviceFragment))
	sb.WriteString(". Projects: ")
	sb.WriteString(joinFragments(capItems(projects, limit), projectFragment))
	sb.WriteString(". Articles: ")
	sb.WriteString(joinFragments(capItems(articles, limit), articleFragment))
	sb.WriteString(". Events: ")
	sb.WriteString(joinFragments(capItems(events, limit), eventFragment))
	sb.WriteString(". Gallery: ")
	sb.WriteString(joinFragments(capItems(gallery, limit), galleryFragment))
	sb.WriteString(". Testimonials: ")
	sb.WriteString(joinFragments(capItems(approvedOnly(testimonials), limit), testimonialFragment))
	sb.WriteString(". ")
	sb.WriteString(a.cfg.ContactInfo)
	sb.WriteString(" ")
	sb.WriteString(a.cfg.Persona)
	return sb.String(), nil
}

func wrapRead(collection string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %v", ErrContentRead, collection, err)
}

func serviceFragment(s model.Service) string {
	return s.Title + ": " + s.ShortDescription
}

func projectFragment(p model.Project) string {
	return p.Title + ": " + p.Summary
}

func articleFragment(a model.Article) string {
	return a.Title + ": " + a.Excerpt
}

func eventFragment(e model.Event) string {
	return fmt.Sprintf("%s: %s at %s - %s", e.Title, e.Date, e.Location, excerpt(e.Description, excerptLimit))
}

func galleryFragment(g model.GalleryImage) string {
	return fmt.Sprintf("%s: %s (%s)", g.Title, g.Caption, g.Category)
}

func testimonialFragment(t model.Testimonial) string {
	return fmt.Sprintf("\"%s\" - %s, %s", excerpt(t.Message, excerptLimit), t.Name, t.Company)
}

func joinFragments[T any](items []T, render func(T) string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = render(item)
	}
	return strings.Join(parts, "; ")
}

// capItems keeps the first limit items. A limit of zero or less keeps everything.
func capItems[T any](items []T, limit int) []T {
	if limit <= 0 || len(items) <= limit {
		return items
	}
	return items[:limit]
}

// approvedOnly filters out anything a reader returned that is not approved.
func approvedOnly(items []model.Testimonial) []model.Testimonial {
	out := items[:0:0]
	for _, t := range items {
		if t.Status == model.TestimonialApproved {
			out = append(out, t)
		}
	}
	return out
}

// excerpt trims s and cuts it to limit runes, marking a cut with "...".
func excerpt(s string, limit int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + "..."
}
