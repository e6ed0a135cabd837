package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heeyoungha/jazzmateShop/internal/domain"
	"github.com/heeyoungha/jazzmateShop/internal/errors"
	"github.com/heeyoungha/jazzmateShop/internal/store/sqlite"
)

func seedAlbums(t *testing.T, s *sqlite.Store) {
	t.Helper()

	ctx := context.Background()
	now := time.Now().UTC()
	for _, a := range []*domain.Album{
		{ID: "alb-001", AlbumArtist: "Miles Davis", AlbumTitle: "Kind of Blue", CreatedAt: now, UpdatedAt: now},
		{ID: "alb-002", AlbumArtist: "John Coltrane", AlbumTitle: "Blue Train", CreatedAt: now, UpdatedAt: now},
		{ID: "alb-003", AlbumArtist: "Dave Brubeck", AlbumTitle: "Time Out", CreatedAt: now, UpdatedAt: now},
	} {
		require.NoError(t, s.CreateAlbum(ctx, a))
	}
}

func TestAlbumService_Search(t *testing.T) {
	store := newTestStore(t)
	seedAlbums(t, store)
	svc := NewAlbumService(store, testLogger())

	got, err := svc.Search(context.Background(), "blue", 0, 20)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.Search(context.Background(), "brubeck", 0, 20)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "alb-003", got[0].ID)

	// Beyond the last page.
	got, err = svc.Search(context.Background(), "", 5, 20)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAlbumService_Get_NotFound(t *testing.T) {
	svc := NewAlbumService(newTestStore(t), testLogger())

	_, err := svc.Get(context.Background(), "alb-missing")
	require.Error(t, err)

	var domainErr *errors.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, errors.CodeNotFound, domainErr.Code)
	assert.Contains(t, domainErr.Message, "alb-missing")
}
