package handlers

import (
	"context"
	"sync"

	"places-finder-api/core/domain"
)

// mockSearchService is a mock implementation of the search service
type mockSearchService struct {
	searchFunc         func(ctx context.Context, query domain.SearchQuery) (*domain.SearchResponse, error)
	searchMultipleFunc func(ctx context.Context, keyword string, locations []string) (*domain.MultiSearchResult, error)

	mu      sync.Mutex
	queries []domain.SearchQuery
}

func (m *mockSearchService) Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResponse, error) {
	m.mu.Lock()
	m.queries = append(m.queries, query)
	m.mu.Unlock()

	if m.searchFunc != nil {
		return m.searchFunc(ctx, query)
	}
	return &domain.SearchResponse{Page: domain.EmptyPage()}, nil
}

func (m *mockSearchService) SearchMultiple(ctx context.Context, keyword string, locations []string) (*domain.MultiSearchResult, error) {
	if m.searchMultipleFunc != nil {
		return m.searchMultipleFunc(ctx, keyword, locations)
	}
	return &domain.MultiSearchResult{Keyword: keyword, Results: map[string][]domain.BusinessResult{}}, nil
}

func (m *mockSearchService) receivedQueries() []domain.SearchQuery {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.SearchQuery, len(m.queries))
	copy(out, m.queries)
	return out
}
