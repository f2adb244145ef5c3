package service

import (
	"context"
	"time"

	"ai-solutions-go/internal/model"
	"ai-solutions-go/internal/repository"
	"ai-solutions-go/pkg/log"

	"golang.org/x/sync/errgroup"
)

const (
	recentInquiryCount = 5
	inquiryStatsDays   = 7
)

// DashboardService computes the admin dashboard summary.
type DashboardService interface {
	Stats(ctx context.Context) (*model.DashboardStats, error)
}

type dashboardService struct {
	services      repository.ServiceRepository
	projects      repository.ProjectRepository
	articles      repository.ArticleRepository
	testimonials  repository.TestimonialRepository
	contacts      repository.ContactRepository
	quotes        repository.QuoteRepository
	notifications repository.NotificationRepository
	now           func() time.Time
}

// NewDashboardService creates a DashboardService. notifications may be nil.
func NewDashboardService(
	services repository.ServiceRepository,
	projects repository.ProjectRepository,
	articles repository.ArticleRepository,
	testimonials repository.TestimonialRepository,
	contacts repository.ContactRepository,
	quotes repository.QuoteRepository,
	notifications repository.NotificationRepository,
) DashboardService {
	return &dashboardService{
		services:      services,
		projects:      projects,
		articles:      articles,
		testimonials:  testimonials,
		contacts:      contacts,
		quotes:        quotes,
		notifications: notifications,
		now:           time.Now,
	}
}

func (s *dashboardService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	stats := &model.DashboardStats{Notifications: map[string]int64{}}
	today := startOfDay(s.now())
	since := today.AddDate(0, 0, -(inquiryStatsDays - 1))
	var lastWeek []model.ContactSubmission

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.PendingFeedback, err = s.testimonials.CountByStatus(gctx, model.TestimonialPending)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalArticles, err = s.articles.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalServices, err = s.services.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalProjects, err = s.projects.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.NewInquiries, err = s.contacts.CountUnread(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.NewQuotes, err = s.quotes.CountByStatus(gctx, model.QuoteNew)
		return err
	})
	g.Go(func() (err error) {
		stats.RecentInquiries, err = s.contacts.FindRecent(gctx, recentInquiryCount)
		return err
	})
	g.Go(func() (err error) {
		lastWeek, err = s.contacts.FindSince(gctx, since)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.InquiryStats = dailyCounts(lastWeek, since, inquiryStatsDays)
	if s.notifications != nil {
		counters, err := s.notifications.Counters(ctx)
		if err != nil {
			log.Warnw("failed to read notification counters", "error", err)
		} else {
			stats.Notifications = counters
		}
	}
	return stats, nil
}

// dailyCounts buckets inquiries into days consecutive local days starting at from, oldest first.
func dailyCounts(items []model.ContactSubmission, from time.Time, days int) []model.DailyCount {
	counts := make([]model.DailyCount, days)
	for i := range counts {
		day := from.AddDate(0, 0, i)
		counts[i] = model.DailyCount{Date: day.Format("Jan 2"), Day: day.Format("Mon")}
	}
	for _, item := range items {
		idx := daysBetween(from, startOfDay(item.CreatedAt.In(from.Location())))
		if idx >= 0 && idx < days {
			counts[idx].Inquiries++
		}
	}
	return counts
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days, so DST shifts do not skew the bucket.
func daysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
