package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-solutions-go/internal/model"
	"ai-solutions-go/pkg/database"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestServiceRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewServiceRepository(newTestDB(t))

	svc := &model.Service{
		Title:            "Predictive Analytics",
		ShortDescription: "Forecast trends with machine learning.",
		KeyBenefits:      []string{"Accuracy", "Speed"},
		Pricing:          []model.PricingPlan{{Plan: "Basic", Price: "$99", Features: []string{"Reports"}}},
		Featured:         true,
	}
	if err := repo.Create(ctx, svc); err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if svc.ID == 0 {
		t.Fatal("expected generated id")
	}

	got, err := repo.FindByID(ctx, svc.ID)
	if err != nil {
		t.Fatalf("FindByID err: %v", err)
	}
	if len(got.KeyBenefits) != 2 || got.Pricing[0].Plan != "Basic" {
		t.Fatalf("json columns not round-tripped: %+v", got)
	}

	update := &model.Service{Title: "Predictive Analytics Pro", ShortDescription: "Updated.", Featured: false}
	if err := repo.Update(ctx, svc.ID, update); err != nil {
		t.Fatalf("Update err: %v", err)
	}
	got, _ = repo.FindByID(ctx, svc.ID)
	if got.Title != "Predictive Analytics Pro" || got.Featured {
		t.Fatalf("update not applied (zero values included): %+v", got)
	}

	featured, err := repo.FindFeatured(ctx)
	if err != nil {
		t.Fatalf("FindFeatured err: %v", err)
	}
	if len(featured) != 0 {
		t.Fatalf("expected no featured services, got %d", len(featured))
	}

	if err := repo.Delete(ctx, svc.ID); err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	if err := repo.Delete(ctx, svc.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound on second delete, got %v", err)
	}
	if err := repo.Update(ctx, 999, &model.Service{Title: "x"}); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound on missing update, got %v", err)
	}
}

func TestFindAllKeepsIDOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository(newTestDB(t))
	for _, title := range []string{"Alpha", "Beta", "Gamma"} {
		if err := repo.Create(ctx, &model.Project{Title: title, Summary: title + " summary"}); err != nil {
			t.Fatalf("Create err: %v", err)
		}
	}

	projects, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll err: %v", err)
	}
	if len(projects) != 3 || projects[0].Title != "Alpha" || projects[2].Title != "Gamma" {
		t.Fatalf("unexpected order: %+v", projects)
	}
	n, err := repo.Count(ctx)
	if err != nil || n != 3 {
		t.Fatalf("expected count 3, got %d (%v)", n, err)
	}
}

func TestTestimonialRepositoryFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewTestimonialRepository(newTestDB(t))

	seed := []model.Testimonial{
		{Name: "Ann", Message: "Great", Status: model.TestimonialApproved, Featured: true},
		{Name: "Bob", Message: "Fine", Status: model.TestimonialApproved},
		{Name: "Cid", Message: "Meh", Status: model.TestimonialPending},
		{Name: "Dee", Message: "Bad", Status: model.TestimonialRejected, Featured: true},
	}
	for i := range seed {
		if err := repo.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("Create err: %v", err)
		}
	}

	approved, err := repo.FindApproved(ctx)
	if err != nil {
		t.Fatalf("FindApproved err: %v", err)
	}
	if len(approved) != 2 || approved[0].Name != "Ann" || approved[1].Name != "Bob" {
		t.Fatalf("unexpected approved set: %+v", approved)
	}

	featured, _ := repo.FindFeatured(ctx)
	if len(featured) != 1 || featured[0].Name != "Ann" {
		t.Fatalf("unexpected featured set: %+v", featured)
	}

	if err := repo.UpdateStatus(ctx, seed[2].ID, model.TestimonialApproved); err != nil {
		t.Fatalf("UpdateStatus err: %v", err)
	}
	pending, _ := repo.CountByStatus(ctx, model.TestimonialPending)
	if pending != 0 {
		t.Fatalf("expected 0 pending, got %d", pending)
	}
	if err := repo.UpdateFeatured(ctx, 404, true); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestContactRepositoryOrdering(t *testing.T) {
	ctx := context.Background()
	repo := NewContactRepository(newTestDB(t))
	now := time.Now()

	older := &model.ContactSubmission{Name: "Old", Email: "old@example.com", CreatedAt: now.Add(-48 * time.Hour)}
	newer := &model.ContactSubmission{Name: "New", Email: "new@example.com", CreatedAt: now}
	for _, s := range []*model.ContactSubmission{older, newer} {
		if err := repo.Create(ctx, s); err != nil {
			t.Fatalf("Create err: %v", err)
		}
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll err: %v", err)
	}
	if all[0].Name != "New" {
		t.Fatalf("expected newest first, got %+v", all)
	}

	since, err := repo.FindSince(ctx, now.Add(-time.Hour))
	if err != nil {
		t.Fatalf("FindSince err: %v", err)
	}
	if len(since) != 1 || since[0].Name != "New" {
		t.Fatalf("unexpected FindSince result: %+v", since)
	}

	if err := repo.UpdateReadStatus(ctx, older.ID, true); err != nil {
		t.Fatalf("UpdateReadStatus err: %v", err)
	}
	unread, _ := repo.CountUnread(ctx)
	if unread != 1 {
		t.Fatalf("expected 1 unread, got %d", unread)
	}
}

func TestQuoteRepositoryStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewQuoteRepository(newTestDB(t))

	q := &model.QuoteRequest{ID: "b6f1c1d2-0000-4000-8000-000000000001", ServiceID: 1, FullName: "John Doe", Email: "john@example.com", Status: model.QuoteNew, CreatedAt: time.Now()}
	if err := repo.Create(ctx, q); err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if err := repo.UpdateStatus(ctx, q.ID, model.QuoteContacted); err != nil {
		t.Fatalf("UpdateStatus err: %v", err)
	}
	n, _ := repo.CountByStatus(ctx, model.QuoteNew)
	if n != 0 {
		t.Fatalf("expected no new quotes, got %d", n)
	}
	if err := repo.Delete(ctx, "missing"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
