// Package service contains the business orchestration layer between the
// HTTP handlers and the store.
package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/heeyoungha/jazzmateShop/internal/domain"
	"github.com/heeyoungha/jazzmateShop/internal/errors"
	"github.com/heeyoungha/jazzmateShop/internal/id"
	"github.com/heeyoungha/jazzmateShop/internal/store/sqlite"
)

// DefaultPageSize is applied when a list request does not specify a size.
const DefaultPageSize = 20

// ReviewService orchestrates user review operations.
type ReviewService struct {
	store  *sqlite.Store
	logger *slog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(store *sqlite.Store, logger *slog.Logger) *ReviewService {
	return &ReviewService{store: store, logger: logger}
}

// ReviewInput carries the caller-settable fields of a review.
// IsFeatured and the counters are never part of the input contract.
type ReviewInput struct {
	AlbumID         *string  `json:"album_id"`
	UserID          *string  `json:"user_id"`
	TrackName       string   `json:"track_name" validate:"required,notblank"`
	ArtistName      string   `json:"artist_name" validate:"required,notblank"`
	ReviewContent   string   `json:"review_content" validate:"required,notblank"`
	Rating          *float64 `json:"rating"`
	Mood            string   `json:"mood"`
	Genre           string   `json:"genre"`
	EnergyLevel     *float64 `json:"energy_level"`
	BPM             *int     `json:"bpm"`
	VocalStyle      string   `json:"vocal_style"`
	Instrumentation string   `json:"instrumentation"`
	Tags            []string `json:"tags"`
	IsPublic        bool     `json:"is_public"`
}

// Create persists a new review. IsFeatured starts false and both counters
// start at zero regardless of input. Persistence failures surface as an
// internal error with a stable message.
func (s *ReviewService) Create(ctx context.Context, input ReviewInput) (*domain.UserReview, error) {
	if strings.TrimSpace(input.ReviewContent) == "" {
		return nil, errors.BusinessRule("review content cannot be empty")
	}

	reviewID, err := id.Generate("rev")
	if err != nil {
		return nil, errors.Internal("review creation failed").WithCause(err)
	}

	now := time.Now().UTC()
	review := &domain.UserReview{
		ID:              reviewID,
		AlbumID:         input.AlbumID,
		UserID:          input.UserID,
		TrackName:       input.TrackName,
		ArtistName:      input.ArtistName,
		ReviewContent:   input.ReviewContent,
		Rating:          input.Rating,
		Mood:            input.Mood,
		Genre:           input.Genre,
		EnergyLevel:     input.EnergyLevel,
		BPM:             input.BPM,
		VocalStyle:      input.VocalStyle,
		Instrumentation: input.Instrumentation,
		Tags:            input.Tags,
		IsPublic:        input.IsPublic,
		IsFeatured:      false,
		LikeCount:       0,
		CommentCount:    0,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if review.Tags == nil {
		review.Tags = []string{}
	}

	if err := s.store.CreateReview(ctx, review); err != nil {
		s.logger.Error("review persistence failed", "error", err)
		return nil, errors.Internal("review creation failed").WithCause(err)
	}

	s.logger.Info("review created",
		"review_id", review.ID,
		"track_name", review.TrackName,
		"artist_name", review.ArtistName,
	)

	return review, nil
}

// List returns one page of reviews newest-first. A non-blank userID selects
// that user's reviews; otherwise public reviews are returned. A page beyond
// the data is empty, never an error.
func (s *ReviewService) List(ctx context.Context, userID string, page, size int) ([]*domain.UserReview, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	offset := page * size

	if strings.TrimSpace(userID) != "" {
		return s.store.ListReviewsByUser(ctx, userID, size, offset)
	}
	return s.store.ListPublicReviews(ctx, size, offset)
}

// Get returns a review by id.
func (s *ReviewService) Get(ctx context.Context, reviewID string) (*domain.UserReview, error) {
	review, err := s.store.GetReviewByID(ctx, reviewID)
	if errors.Is(err, errors.ErrNotFound) {
		return nil, errors.NotFound("review not found: " + reviewID)
	}
	if err != nil {
		return nil, err
	}
	return review, nil
}

// Update overwrites a review's content-bearing fields, tags and visibility.
// Identity, ownership (user_id, album_id), creation time, featured flag and
// counters are preserved from the stored row.
func (s *ReviewService) Update(ctx context.Context, reviewID string, input ReviewInput) (*domain.UserReview, error) {
	review, err := s.Get(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	review.TrackName = input.TrackName
	review.ArtistName = input.ArtistName
	review.ReviewContent = input.ReviewContent
	review.Rating = input.Rating
	review.Mood = input.Mood
	review.Genre = input.Genre
	review.EnergyLevel = input.EnergyLevel
	review.BPM = input.BPM
	review.VocalStyle = input.VocalStyle
	review.Instrumentation = input.Instrumentation
	review.Tags = input.Tags
	review.IsPublic = input.IsPublic
	review.UpdatedAt = time.Now().UTC()
	if review.Tags == nil {
		review.Tags = []string{}
	}

	if err := s.store.UpdateReview(ctx, review); err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return nil, errors.NotFound("review not found: " + reviewID)
		}
		return nil, err
	}

	s.logger.Info("review updated", "review_id", review.ID)

	return review, nil
}

// Delete removes a review and, through cascade, its tags and recommendations.
func (s *ReviewService) Delete(ctx context.Context, reviewID string) error {
	err := s.store.DeleteReview(ctx, reviewID)
	if errors.Is(err, errors.ErrNotFound) {
		return errors.NotFound("review not found: " + reviewID)
	}
	if err != nil {
		return err
	}

	s.logger.Info("review deleted", "review_id", reviewID)
	return nil
}

// Recommendations returns a review's generated recommendations ordered by
// score descending.
func (s *ReviewService) Recommendations(ctx context.Context, reviewID string) ([]*domain.RecommendTrack, error) {
	return s.store.ListRecommendationsByReview(ctx, reviewID)
}
