package service

import (
	"context"

	"ai-solutions-go/internal/model"
	"ai-solutions-go/internal/repository"
)

type repositoryContentReader struct {
	services     repository.ServiceRepository
	projects     repository.ProjectRepository
	articles     repository.ArticleRepository
	events       repository.EventRepository
	gallery      repository.GalleryRepository
	testimonials repository.TestimonialRepository
}

// NewContentReader exposes the catalog repositories as a ContentReader.
func NewContentReader(
	services repository.ServiceRepository,
	projects repository.ProjectRepository,
	articles repository.ArticleRepository,
	events repository.EventRepository,
	gallery repository.GalleryRepository,
	testimonials repository.TestimonialRepository,
) ContentReader {
	return &repositoryContentReader{
		services:     services,
		projects:     projects,
		articles:     articles,
		events:       events,
		gallery:      gallery,
		testimonials: testimonials,
	}
}

func (r *repositoryContentReader) ListServices(ctx context.Context) ([]model.Service, error) {
	return r.services.FindAll(ctx)
}

func (r *repositoryContentReader) ListProjects(ctx context.Context) ([]model.Project, error) {
	return r.projects.FindAll(ctx)
}

func (r *repositoryContentReader) ListArticles(ctx context.Context) ([]model.Article, error) {
	return r.articles.FindAll(ctx)
}

func (r *repositoryContentReader) ListEvents(ctx context.Context) ([]model.Event, error) {
	return r.events.FindAll(ctx)
}

func (r *repositoryContentReader) ListGalleryImages(ctx context.Context) ([]model.GalleryImage, error) {
	return r.gallery.FindAll(ctx)
}

func (r *repositoryContentReader) ListApprovedTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	return r.testimonials.FindApproved(ctx)
}
