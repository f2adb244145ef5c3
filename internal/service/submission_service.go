package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ai-solutions-go/internal/model"
	"ai-solutions-go/internal/repository"
	"ai-solutions-go/pkg/log"
	"ai-solutions-go/pkg/tasks"

	"github.com/google/uuid"
)

// SubmissionService accepts the public contact, quote and feedback forms.
type SubmissionService interface {
	SubmitContact(ctx context.Context, form model.ContactForm) (*model.ContactSubmission, error)
	SubmitQuote(ctx context.Context, form model.QuoteForm) (*model.QuoteRequest, error)
	SubmitFeedback(ctx context.Context, form model.FeedbackForm) (*model.Testimonial, error)
}

type submissionService struct {
	services     repository.ServiceRepository
	contacts     repository.ContactRepository
	quotes       repository.QuoteRepository
	testimonials repository.TestimonialRepository
	publisher    EventPublisher
}

// NewSubmissionService creates a SubmissionService. publisher may be nil.
func NewSubmissionService(
	services repository.ServiceRepository,
	contacts repository.ContactRepository,
	quotes repository.QuoteRepository,
	testimonials repository.TestimonialRepository,
	publisher EventPublisher,
) SubmissionService {
	return &submissionService{
		services:     services,
		contacts:     contacts,
		quotes:       quotes,
		testimonials: testimonials,
		publisher:    publisher,
	}
}

func (s *submissionService) SubmitContact(ctx context.Context, form model.ContactForm) (*model.ContactSubmission, error) {
	sub := &model.ContactSubmission{
		Name:     strings.TrimSpace(form.Name),
		Email:    strings.TrimSpace(form.Email),
		Company:  strings.TrimSpace(form.Company),
		Country:  strings.TrimSpace(form.Country),
		JobTitle: strings.TrimSpace(form.JobTitle),
		Message:  strings.TrimSpace(form.Message),
	}
	if err := s.contacts.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("save contact submission: %w", err)
	}
	log.Infow("contact submission received", "id", sub.ID, "company", sub.Company)
	publish(ctx, s.publisher, tasks.SubmissionReceived(model.KindContact, fmt.Sprint(sub.ID)))
	return sub, nil
}

// SubmitQuote records a quote request for an existing service. The service title is copied so the
// request stays readable if the service is renamed or removed.
func (s *submissionService) SubmitQuote(ctx context.Context, form model.QuoteForm) (*model.QuoteRequest, error) {
	svc, err := s.services.FindByID(ctx, form.ServiceID)
	if err != nil {
		if errors.Is(translateNotFound(err), ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown service %d", ErrInvalidInput, form.ServiceID)
		}
		return nil, err
	}

	q := &model.QuoteRequest{
		ID:           uuid.NewString(),
		ServiceID:    svc.ID,
		ServiceTitle: svc.Title,
		FullName:     strings.TrimSpace(form.FullName),
		Email:        strings.TrimSpace(form.Email),
		SelectedPlan: form.SelectedPlan,
		Message:      strings.TrimSpace(form.Message),
		Status:       model.QuoteNew,
	}
	if err := s.quotes.Create(ctx, q); err != nil {
		return nil, fmt.Errorf("save quote request: %w", err)
	}
	log.Infow("quote request received", "id", q.ID, "service", q.ServiceTitle, "plan", q.SelectedPlan)
	publish(ctx, s.publisher, tasks.SubmissionReceived(model.KindQuote, q.ID))
	return q, nil
}

// SubmitFeedback stores feedback as a pending testimonial awaiting moderation.
func (s *submissionService) SubmitFeedback(ctx context.Context, form model.FeedbackForm) (*model.Testimonial, error) {
	t := &model.Testimonial{
		Name:    strings.TrimSpace(form.Name),
		Company: strings.TrimSpace(form.Company),
		Country: strings.TrimSpace(form.Country),
		Role:    strings.TrimSpace(form.Role),
		Message: strings.TrimSpace(form.Message),
		Rating:  form.Rating,
		Status:  model.TestimonialPending,
	}
	if err := s.testimonials.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("save feedback: %w", err)
	}
	log.Infow("feedback received", "id", t.ID, "rating", t.Rating)
	publish(ctx, s.publisher, tasks.SubmissionReceived(model.KindTestimonial, fmt.Sprint(t.ID)))
	return t, nil
}
