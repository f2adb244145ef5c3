package repository

import (
	"context"

	"ai-solutions-go/internal/model"

	"gorm.io/gorm"
)

// ServiceRepository stores service offerings.
type ServiceRepository interface {
	Store[model.Service]
	FindFeatured(ctx context.Context) ([]model.Service, error)
}

type serviceRepository struct {
	gormStore[model.Service]
}

// NewServiceRepository creates a ServiceRepository backed by gorm.
func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{gormStore[model.Service]{db: db}}
}

// FindFeatured returns services flagged for the home page.
func (r *serviceRepository) FindFeatured(ctx context.Context) ([]model.Service, error) {
	var services []model.Service
	err := r.db.WithContext(ctx).Where("featured = ?", true).Order("id asc").Find(&services).Error
	return services, err
}

// ProjectRepository stores featured projects.
type ProjectRepository interface {
	Store[model.Project]
}

// NewProjectRepository creates a ProjectRepository backed by gorm.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return gormStore[model.Project]{db: db}
}

// ArticleRepository stores blog articles.
type ArticleRepository interface {
	Store[model.Article]
	FindFeatured(ctx context.Context) ([]model.Article, error)
}

type articleRepository struct {
	gormStore[model.Article]
}

// NewArticleRepository creates an ArticleRepository backed by gorm.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{gormStore[model.Article]{db: db}}
}

func (r *articleRepository) FindFeatured(ctx context.Context) ([]model.Article, error) {
	var articles []model.Article
	err := r.db.WithContext(ctx).Where("featured = ?", true).Order("id asc").Find(&articles).Error
	return articles, err
}

// EventRepository stores company events.
type EventRepository interface {
	Store[model.Event]
	FindByPast(ctx context.Context, past bool) ([]model.Event, error)
}

type eventRepository struct {
	gormStore[model.Event]
}

// NewEventRepository creates an EventRepository backed by gorm.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{gormStore[model.Event]{db: db}}
}

// FindByPast returns either the past or the upcoming events.
func (r *eventRepository) FindByPast(ctx context.Context, past bool) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).Where("is_past = ?", past).Order("id asc").Find(&events).Error
	return events, err
}

// GalleryRepository stores gallery images.
type GalleryRepository interface {
	Store[model.GalleryImage]
	FindByCategory(ctx context.Context, category string) ([]model.GalleryImage, error)
}

type galleryRepository struct {
	gormStore[model.GalleryImage]
}

// NewGalleryRepository creates a GalleryRepository backed by gorm.
func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepository{gormStore[model.GalleryImage]{db: db}}
}

func (r *galleryRepository) FindByCategory(ctx context.Context, category string) ([]model.GalleryImage, error) {
	var images []model.GalleryImage
	err := r.db.WithContext(ctx).Where("category = ?", category).Order("id asc").Find(&images).Error
	return images, err
}
