package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heeyoungha/jazzmateShop/internal/domain"
	"github.com/heeyoungha/jazzmateShop/internal/errors"
)

func TestCriticService_List_PageMetadata(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	summary := "worth hearing"
	for i := 1; i <= 5; i++ {
		require.NoError(t, store.CreateCriticsReview(ctx, &domain.CriticsReview{
			ID:            fmt.Sprintf("cr-%03d", i),
			Title:         fmt.Sprintf("Review %d", i),
			ReviewSummary: &summary,
			CreatedAt:     time.Now().UTC().Add(time.Duration(i) * time.Second),
		}))
	}
	// One row without a summary stays out of the listing and the total.
	require.NoError(t, store.CreateCriticsReview(ctx, &domain.CriticsReview{
		ID:        "cr-draft",
		Title:     "Unsummarized",
		CreatedAt: time.Now().UTC(),
	}))

	svc := NewCriticService(store, testLogger())

	page, err := svc.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, page.TotalElements)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.Size)
	require.Len(t, page.Content, 2)
	assert.Equal(t, "cr-003", page.Content[0].ID)

	// Past the end: empty content, same total.
	page, err = svc.List(ctx, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.Equal(t, 5, page.TotalElements)
}

func TestCriticService_Get_NotFound(t *testing.T) {
	svc := NewCriticService(newTestStore(t), testLogger())

	_, err := svc.Get(context.Background(), "cr-missing")
	require.Error(t, err)

	var domainErr *errors.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, errors.CodeNotFound, domainErr.Code)
}
