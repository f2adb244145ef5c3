package repository

import (
	"context"
	"time"

	"ai-solutions-go/internal/model"

	"gorm.io/gorm"
)

// TestimonialRepository stores feedback submissions and their moderation state.
type TestimonialRepository interface {
	FindAll(ctx context.Context) ([]model.Testimonial, error)
	FindApproved(ctx context.Context) ([]model.Testimonial, error)
	FindFeatured(ctx context.Context) ([]model.Testimonial, error)
	Create(ctx context.Context, t *model.Testimonial) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	UpdateFeatured(ctx context.Context, id uint, featured bool) error
	Delete(ctx context.Context, id uint) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type testimonialRepository struct {
	db *gorm.DB
}

// NewTestimonialRepository creates a TestimonialRepository backed by gorm.
func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &testimonialRepository{db: db}
}

func (r *testimonialRepository) FindAll(ctx context.Context) ([]model.Testimonial, error) {
	var items []model.Testimonial
	err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error
	return items, err
}

// FindApproved returns only testimonials an admin has approved.
func (r *testimonialRepository) FindApproved(ctx context.Context) ([]model.Testimonial, error) {
	var items []model.Testimonial
	err := r.db.WithContext(ctx).Where("status = ?", model.TestimonialApproved).Order("id asc").Find(&items).Error
	return items, err
}

// FindFeatured returns approved testimonials that are also featured.
func (r *testimonialRepository) FindFeatured(ctx context.Context) ([]model.Testimonial, error) {
	var items []model.Testimonial
	err := r.db.WithContext(ctx).
		Where("status = ? AND featured = ?", model.TestimonialApproved, true).
		Order("id asc").
		Find(&items).Error
	return items, err
}

func (r *testimonialRepository) Create(ctx context.Context, t *model.Testimonial) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *testimonialRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return updateColumn(ctx, r.db, &model.Testimonial{}, "id = ?", id, "status", status)
}

func (r *testimonialRepository) UpdateFeatured(ctx context.Context, id uint, featured bool) error {
	return updateColumn(ctx, r.db, &model.Testimonial{}, "id = ?", id, "featured", featured)
}

func (r *testimonialRepository) Delete(ctx context.Context, id uint) error {
	return deleteWhere(ctx, r.db, &model.Testimonial{}, "id = ?", id)
}

func (r *testimonialRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Testimonial{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

// ContactRepository stores contact form inquiries.
type ContactRepository interface {
	FindAll(ctx context.Context) ([]model.ContactSubmission, error)
	FindRecent(ctx context.Context, limit int) ([]model.ContactSubmission, error)
	FindSince(ctx context.Context, since time.Time) ([]model.ContactSubmission, error)
	Create(ctx context.Context, s *model.ContactSubmission) error
	UpdateReadStatus(ctx context.Context, id uint, read bool) error
	Delete(ctx context.Context, id uint) error
	CountUnread(ctx context.Context) (int64, error)
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a ContactRepository backed by gorm.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// FindAll returns every inquiry, newest first.
func (r *contactRepository) FindAll(ctx context.Context) ([]model.ContactSubmission, error) {
	var items []model.ContactSubmission
	err := r.db.WithContext(ctx).Order("created_at desc").Order("id desc").Find(&items).Error
	return items, err
}

func (r *contactRepository) FindRecent(ctx context.Context, limit int) ([]model.ContactSubmission, error) {
	var items []model.ContactSubmission
	err := r.db.WithContext(ctx).Order("created_at desc").Order("id desc").Limit(limit).Find(&items).Error
	return items, err
}

// FindSince returns inquiries created at or after since.
func (r *contactRepository) FindSince(ctx context.Context, since time.Time) ([]model.ContactSubmission, error) {
	var items []model.ContactSubmission
	err := r.db.WithContext(ctx).Where("created_at >= ?", since).Order("created_at asc").Find(&items).Error
	return items, err
}

func (r *contactRepository) Create(ctx context.Context, s *model.ContactSubmission) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *contactRepository) UpdateReadStatus(ctx context.Context, id uint, read bool) error {
	return updateColumn(ctx, r.db, &model.ContactSubmission{}, "id = ?", id, "read_status", read)
}

func (r *contactRepository) Delete(ctx context.Context, id uint) error {
	return deleteWhere(ctx, r.db, &model.ContactSubmission{}, "id = ?", id)
}

func (r *contactRepository) CountUnread(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.ContactSubmission{}).Where("read_status = ?", false).Count(&n).Error
	return n, err
}

// QuoteRepository stores service quote requests.
type QuoteRepository interface {
	FindAll(ctx context.Context) ([]model.QuoteRequest, error)
	Create(ctx context.Context, q *model.QuoteRequest) error
	UpdateStatus(ctx context.Context, id string, status string) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type quoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository creates a QuoteRepository backed by gorm.
func NewQuoteRepository(db *gorm.DB) QuoteRepository {
	return &quoteRepository{db: db}
}

// FindAll returns every quote request, newest first.
func (r *quoteRepository) FindAll(ctx context.Context) ([]model.QuoteRequest, error) {
	var items []model.QuoteRequest
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&items).Error
	return items, err
}

func (r *quoteRepository) Create(ctx context.Context, q *model.QuoteRequest) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *quoteRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	return updateColumn(ctx, r.db, &model.QuoteRequest{}, "id = ?", id, "status", status)
}

func (r *quoteRepository) Delete(ctx context.Context, id string) error {
	return deleteWhere(ctx, r.db, &model.QuoteRequest{}, "id = ?", id)
}

func (r *quoteRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.QuoteRequest{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

// updateColumn sets one column on the row matching cond. A missing row yields gorm.ErrRecordNotFound.
// The existence check runs first because MySQL reports zero affected rows when the value is unchanged.
func updateColumn(ctx context.Context, db *gorm.DB, m interface{}, cond string, id interface{}, column string, value interface{}) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(m).Where(cond, id).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(m).Where(cond, id).Update(column, value).Error
	})
}

func deleteWhere(ctx context.Context, db *gorm.DB, m interface{}, cond string, id interface{}) error {
	res := db.WithContext(ctx).Where(cond, id).Delete(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
