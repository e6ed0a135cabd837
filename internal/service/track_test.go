package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heeyoungha/jazzmateShop/internal/errors"
)

func TestTrackService_CreateOrGet_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc := NewTrackService(newTestStore(t), testLogger())

	first, created, err := svc.CreateOrGet(ctx, TrackInput{
		TrackTitle: "Blue in Green",
		ArtistName: "Miles Davis",
		Genre:      "modal jazz",
		Mood:       "melancholy",
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, first.ID)

	// Same natural key with different secondary fields returns the
	// original row untouched.
	second, created, err := svc.CreateOrGet(ctx, TrackInput{
		TrackTitle: "Blue in Green",
		ArtistName: "Miles Davis",
		Genre:      "fusion",
		Mood:       "upbeat",
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "modal jazz", second.Genre)
	assert.Equal(t, "melancholy", second.Mood)
}

func TestTrackService_Get_NotFound(t *testing.T) {
	svc := NewTrackService(newTestStore(t), testLogger())

	_, err := svc.Get(context.Background(), "trk-missing")
	require.Error(t, err)

	var domainErr *errors.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, errors.CodeNotFound, domainErr.Code)
}
