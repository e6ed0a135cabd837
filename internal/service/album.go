package service

import (
	"context"
	"log/slog"

	"github.com/heeyoungha/jazzmateShop/internal/domain"
	"github.com/heeyoungha/jazzmateShop/internal/errors"
	"github.com/heeyoungha/jazzmateShop/internal/store/sqlite"
)

// AlbumService serves the read-only album catalog.
type AlbumService struct {
	store  *sqlite.Store
	logger *slog.Logger
}

// NewAlbumService creates a new album service.
func NewAlbumService(store *sqlite.Store, logger *slog.Logger) *AlbumService {
	return &AlbumService{store: store, logger: logger}
}

// Search returns one page of albums whose title or artist contains the
// query, case-insensitively. A page beyond the data is empty, never an error.
func (s *AlbumService) Search(ctx context.Context, query string, page, size int) ([]*domain.Album, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	return s.store.SearchAlbums(ctx, query, size, page*size)
}

// Get returns an album by id.
func (s *AlbumService) Get(ctx context.Context, albumID string) (*domain.Album, error) {
	album, err := s.store.GetAlbumByID(ctx, albumID)
	if errors.Is(err, errors.ErrNotFound) {
		return nil, errors.NotFound("album not found: " + albumID)
	}
	if err != nil {
		return nil, err
	}
	return album, nil
}
