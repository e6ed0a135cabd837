package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/heeyoungha/jazzmateShop/internal/domain"
	"github.com/heeyoungha/jazzmateShop/internal/errors"
	"github.com/heeyoungha/jazzmateShop/internal/id"
	"github.com/heeyoungha/jazzmateShop/internal/store/sqlite"
)

// RecommendationService records scored track suggestions delivered by the
// external recommendation engine.
type RecommendationService struct {
	store  *sqlite.Store
	logger *slog.Logger
}

// NewRecommendationService creates a new recommendation service.
func NewRecommendationService(store *sqlite.Store, logger *slog.Logger) *RecommendationService {
	return &RecommendationService{store: store, logger: logger}
}

// RecommendationInput is the engine's callback payload for one suggestion.
type RecommendationInput struct {
	ReviewID string  `json:"user_review_id" validate:"required"`
	TrackID  string  `json:"track_id" validate:"required"`
	Score    float64 `json:"recommendation_score"`
	Reason   string  `json:"recommendation_reason"`
}

// Create stores one recommendation for an existing review. The score is
// normalized to 4 fractional digits at write.
func (s *RecommendationService) Create(ctx context.Context, input RecommendationInput) (*domain.RecommendTrack, error) {
	if _, err := s.store.GetReviewByID(ctx, input.ReviewID); err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return nil, errors.NotFound("review not found: " + input.ReviewID)
		}
		return nil, err
	}

	recID, err := id.Generate("rec")
	if err != nil {
		return nil, errors.Internal("recommendation creation failed").WithCause(err)
	}

	now := time.Now().UTC()
	rec := &domain.RecommendTrack{
		ID:        recID,
		ReviewID:  input.ReviewID,
		TrackID:   input.TrackID,
		Score:     input.Score,
		Reason:    input.Reason,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.CreateRecommendTrack(ctx, rec); err != nil {
		s.logger.Error("recommendation persistence failed", "error", err)
		return nil, errors.Internal("recommendation creation failed").WithCause(err)
	}

	s.logger.Info("recommendation recorded",
		"recommendation_id", rec.ID,
		"review_id", rec.ReviewID,
		"track_id", rec.TrackID,
		"score", rec.Score,
	)

	return rec, nil
}
