package service

import (
	"context"

	"ai-solutions-go/internal/model"
	"ai-solutions-go/internal/repository"
)

// CatalogService serves the public, read-only pages of the site.
type CatalogService interface {
	ListServices(ctx context.Context) ([]model.Service, error)
	FeaturedServices(ctx context.Context) ([]model.Service, error)
	GetService(ctx context.Context, id uint) (*model.Service, error)
	ListProjects(ctx context.Context) ([]model.Project, error)
	GetProject(ctx context.Context, id uint) (*model.Project, error)
	ListArticles(ctx context.Context) ([]model.Article, error)
	FeaturedArticles(ctx context.Context) ([]model.Article, error)
	GetArticle(ctx context.Context, id uint) (*model.Article, error)
	// ListEvents returns all events when past is nil, otherwise only past or upcoming ones.
	ListEvents(ctx context.Context, past *bool) ([]model.Event, error)
	GetEvent(ctx context.Context, id uint) (*model.Event, error)
	// ListGallery returns every image when category is empty.
	ListGallery(ctx context.Context, category string) ([]model.GalleryImage, error)
	ListTestimonials(ctx context.Context) ([]model.Testimonial, error)
	FeaturedTestimonials(ctx context.Context) ([]model.Testimonial, error)
}

type catalogService struct {
	services     repository.ServiceRepository
	projects     repository.ProjectRepository
	articles     repository.ArticleRepository
	events       repository.EventRepository
	gallery      repository.GalleryRepository
	testimonials repository.TestimonialRepository
}

// NewCatalogService creates a CatalogService.
func NewCatalogService(
	services repository.ServiceRepository,
	projects repository.ProjectRepository,
	articles repository.ArticleRepository,
	events repository.EventRepository,
	gallery repository.GalleryRepository,
	testimonials repository.TestimonialRepository,
) CatalogService {
	return &catalogService{
		services:     services,
		projects:     projects,
		articles:     articles,
		events:       events,
		gallery:      gallery,
		testimonials: testimonials,
	}
}

func (s *catalogService) ListServices(ctx context.Context) ([]model.Service, error) {
	return s.services.FindAll(ctx)
}

func (s *catalogService) FeaturedServices(ctx context.Context) ([]model.Service, error) {
	return s.services.FindFeatured(ctx)
}

func (s *catalogService) GetService(ctx context.Context, id uint) (*model.Service, error) {
	return findOne[model.Service](ctx, s.services, id)
}

func (s *catalogService) ListProjects(ctx context.Context) ([]model.Project, error) {
	return s.projects.FindAll(ctx)
}

func (s *catalogService) GetProject(ctx context.Context, id uint) (*model.Project, error) {
	return findOne[model.Project](ctx, s.projects, id)
}

func (s *catalogService) ListArticles(ctx context.Context) ([]model.Article, error) {
	return s.articles.FindAll(ctx)
}

func (s *catalogService) FeaturedArticles(ctx context.Context) ([]model.Article, error) {
	return s.articles.FindFeatured(ctx)
}

func (s *catalogService) GetArticle(ctx context.Context, id uint) (*model.Article, error) {
	return findOne[model.Article](ctx, s.articles, id)
}

func (s *catalogService) ListEvents(ctx context.Context, past *bool) ([]model.Event, error) {
	if past == nil {
		return s.events.FindAll(ctx)
	}
	return s.events.FindByPast(ctx, *past)
}

func (s *catalogService) GetEvent(ctx context.Context, id uint) (*model.Event, error) {
	return findOne[model.Event](ctx, s.events, id)
}

func (s *catalogService) ListGallery(ctx context.Context, category string) ([]model.GalleryImage, error) {
	if category == "" {
		return s.gallery.FindAll(ctx)
	}
	return s.gallery.FindByCategory(ctx, category)
}

func (s *catalogService) ListTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	return s.testimonials.FindApproved(ctx)
}

func (s *catalogService) FeaturedTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	return s.testimonials.FindFeatured(ctx)
}

func findOne[T any](ctx context.Context, store repository.Store[T], id uint) (*T, error) {
	item, err := store.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return item, nil
}
