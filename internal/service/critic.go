package service

import (
	"context"
	"log/slog"

	"github.com/heeyoungha/jazzmateShop/internal/domain"
	"github.com/heeyoungha/jazzmateShop/internal/errors"
	"github.com/heeyoungha/jazzmateShop/internal/store/sqlite"
)

// CriticService serves ingested professional reviews.
// Listing only exposes rows that carry a summary.
type CriticService struct {
	store  *sqlite.Store
	logger *slog.Logger
}

// NewCriticService creates a new critic service.
func NewCriticService(store *sqlite.Store, logger *slog.Logger) *CriticService {
	return &CriticService{store: store, logger: logger}
}

// CriticsPage is one page of critic reviews plus pagination metadata.
type CriticsPage struct {
	Content       []*domain.CriticsReview `json:"content"`
	TotalElements int                     `json:"total_elements"`
	Page          int                     `json:"page"`
	Size          int                     `json:"size"`
}

// List returns one page of summarized critic reviews newest-first, with the
// total count of summarized rows.
func (s *CriticService) List(ctx context.Context, page, size int) (*CriticsPage, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}

	total, err := s.store.CountCriticsReviews(ctx)
	if err != nil {
		return nil, err
	}

	content, err := s.store.ListCriticsReviews(ctx, size, page*size)
	if err != nil {
		return nil, err
	}

	return &CriticsPage{
		Content:       content,
		TotalElements: total,
		Page:          page,
		Size:          size,
	}, nil
}

// Get returns a critic review by id.
func (s *CriticService) Get(ctx context.Context, criticsID string) (*domain.CriticsReview, error) {
	review, err := s.store.GetCriticsReviewByID(ctx, criticsID)
	if errors.Is(err, errors.ErrNotFound) {
		return nil, errors.NotFound("critics review not found: " + criticsID)
	}
	if err != nil {
		return nil, err
	}
	return review, nil
}
