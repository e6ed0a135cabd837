package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heeyoungha/jazzmateShop/internal/errors"
)

func TestRecommendationService_Create(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	review, err := NewReviewService(store, testLogger()).Create(ctx, reviewInput("So What"))
	require.NoError(t, err)

	svc := NewRecommendationService(store, testLogger())
	rec, err := svc.Create(ctx, RecommendationInput{
		ReviewID: review.ID,
		TrackID:  "trk-001",
		Score:    0.87654321,
		Reason:   "shares the same quintet lineup",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, review.ID, rec.ReviewID)
	assert.Equal(t, 0.8765, rec.Score)
}

func TestRecommendationService_Create_ReviewMissing(t *testing.T) {
	svc := NewRecommendationService(newTestStore(t), testLogger())

	_, err := svc.Create(context.Background(), RecommendationInput{
		ReviewID: "rev-missing",
		TrackID:  "trk-001",
		Score:    0.5,
	})
	require.Error(t, err)

	var domainErr *errors.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, errors.CodeNotFound, domainErr.Code)
}
