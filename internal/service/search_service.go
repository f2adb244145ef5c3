package service

import (
	"context"
	"fmt"
	"strings"

	"ai-solutions-go/internal/model"
)

const (
	defaultSearchSize = 10
	maxSearchSize     = 50
)

// SearchIndex is the full-text index of the catalog.
type SearchIndex interface {
	Search(ctx context.Context, query string, size int) ([]model.SearchHit, error)
}

// SearchService answers the site search box.
type SearchService interface {
	Search(ctx context.Context, query string, size int) ([]model.SearchHit, error)
}

type searchService struct {
	index SearchIndex
}

// NewSearchService creates a SearchService.
func NewSearchService(index SearchIndex) SearchService {
	return &searchService{index: index}
}

// Search rejects a blank query and clamps size to 1..50, defaulting to 10.
func (s *searchService) Search(ctx context.Context, query string, size int) ([]model.SearchHit, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty search query", ErrInvalidInput)
	}
	if size <= 0 {
		size = defaultSearchSize
	}
	if size > maxSearchSize {
		size = maxSearchSize
	}
	hits, err := s.index.Search(ctx, query, size)
	if err != nil {
		return nil, fmt.Errorf("search index: %w", err)
	}
	return hits, nil
}
