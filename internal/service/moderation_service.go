package service

import (
	"context"
	"fmt"

	"ai-solutions-go/internal/model"
	"ai-solutions-go/internal/repository"
	"ai-solutions-go/pkg/log"
)

// ModerationService is the admin side of submissions: testimonials, inquiries and quote requests.
type ModerationService interface {
	ListTestimonials(ctx context.Context) ([]model.Testimonial, error)
	SetTestimonialStatus(ctx context.Context, id uint, status string) error
	SetTestimonialFeatured(ctx context.Context, id uint, featured bool) error
	DeleteTestimonial(ctx context.Context, id uint) error

	ListInquiries(ctx context.Context) ([]model.ContactSubmission, error)
	SetInquiryRead(ctx context.Context, id uint, read bool) error
	DeleteInquiry(ctx context.Context, id uint) error

	ListQuotes(ctx context.Context) ([]model.QuoteRequest, error)
	SetQuoteStatus(ctx context.Context, id string, status string) error
	DeleteQuote(ctx context.Context, id string) error
}

type moderationService struct {
	testimonials  repository.TestimonialRepository
	contacts      repository.ContactRepository
	quotes        repository.QuoteRepository
	notifications repository.NotificationRepository
}

// NewModerationService creates a ModerationService. notifications may be nil.
func NewModerationService(
	testimonials repository.TestimonialRepository,
	contacts repository.ContactRepository,
	quotes repository.QuoteRepository,
	notifications repository.NotificationRepository,
) ModerationService {
	return &moderationService{
		testimonials:  testimonials,
		contacts:      contacts,
		quotes:        quotes,
		notifications: notifications,
	}
}

// ListTestimonials returns every testimonial regardless of status and clears its unseen counter.
func (s *moderationService) ListTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	items, err := s.testimonials.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.markSeen(ctx, model.KindTestimonial)
	return items, nil
}

// SetTestimonialStatus approves or rejects a testimonial. Pending is only set on submission.
func (s *moderationService) SetTestimonialStatus(ctx context.Context, id uint, status string) error {
	switch status {
	case model.TestimonialApproved, model.TestimonialRejected:
	default:
		return fmt.Errorf("%w: testimonial status %q", ErrInvalidInput, status)
	}
	return translateNotFound(s.testimonials.UpdateStatus(ctx, id, status))
}

func (s *moderationService) SetTestimonialFeatured(ctx context.Context, id uint, featured bool) error {
	return translateNotFound(s.testimonials.UpdateFeatured(ctx, id, featured))
}

func (s *moderationService) DeleteTestimonial(ctx context.Context, id uint) error {
	return translateNotFound(s.testimonials.Delete(ctx, id))
}

// ListInquiries returns contact submissions newest first and clears their unseen counter.
func (s *moderationService) ListInquiries(ctx context.Context) ([]model.ContactSubmission, error) {
	items, err := s.contacts.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.markSeen(ctx, model.KindContact)
	return items, nil
}

func (s *moderationService) SetInquiryRead(ctx context.Context, id uint, read bool) error {
	return translateNotFound(s.contacts.UpdateReadStatus(ctx, id, read))
}

func (s *moderationService) DeleteInquiry(ctx context.Context, id uint) error {
	return translateNotFound(s.contacts.Delete(ctx, id))
}

func (s *moderationService) ListQuotes(ctx context.Context) ([]model.QuoteRequest, error) {
	items, err := s.quotes.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.markSeen(ctx, model.KindQuote)
	return items, nil
}

func (s *moderationService) SetQuoteStatus(ctx context.Context, id string, status string) error {
	switch status {
	case model.QuoteNew, model.QuoteContacted, model.QuoteClosed:
	default:
		return fmt.Errorf("%w: quote status %q", ErrInvalidInput, status)
	}
	return translateNotFound(s.quotes.UpdateStatus(ctx, id, status))
}

func (s *moderationService) DeleteQuote(ctx context.Context, id string) error {
	return translateNotFound(s.quotes.Delete(ctx, id))
}

func (s *moderationService) markSeen(ctx context.Context, kind string) {
	if s.notifications == nil {
		return
	}
	if err := s.notifications.Reset(ctx, kind); err != nil {
		log.Warnw("failed to reset notification counter", "kind", kind, "error", err)
	}
}
