package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/heeyoungha/jazzmateShop/internal/domain"
	domainerrors "github.com/heeyoungha/jazzmateShop/internal/errors"
)

// albumColumns is the ordered list of columns selected in album queries.
// Must match the scan order in scanAlbum.
const albumColumns = `id, album_artist, album_title, album_year, album_label,
	track_listing, critics_review_id, created_at, updated_at`

// scanAlbum scans a sql.Row (or sql.Rows via its Scan method) into a domain.Album.
func scanAlbum(scanner interface{ Scan(dest ...any) error }) (*domain.Album, error) {
	var a domain.Album

	var (
		year      sql.NullInt64
		criticsID sql.NullString
		createdAt string
		updatedAt string
	)

	err := scanner.Scan(
		&a.ID,
		&a.AlbumArtist,
		&a.AlbumTitle,
		&year,
		&a.AlbumLabel,
		&a.TrackListing,
		&criticsID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.AlbumYear = intPtr(year)
	a.CriticsReviewID = stringPtr(criticsID)

	a.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	a.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// CreateAlbum inserts a new album into the database.
func (s *Store) CreateAlbum(ctx context.Context, a *domain.Album) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO albums (id, album_artist, album_title, album_year, album_label,
			track_listing, critics_review_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID,
		a.AlbumArtist,
		a.AlbumTitle,
		nullableInt(a.AlbumYear),
		a.AlbumLabel,
		a.TrackListing,
		nullableString(a.CriticsReviewID),
		formatTime(a.CreatedAt),
		formatTime(a.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert album: %w", err)
	}
	return nil
}

// GetAlbumByID retrieves an album by its ID.
// Returns errors.ErrNotFound if the album does not exist.
func (s *Store) GetAlbumByID(ctx context.Context, albumID string) (*domain.Album, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+albumColumns+` FROM albums WHERE id = ?`, albumID)

	a, err := scanAlbum(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// SearchAlbums returns albums whose title or artist contains the query,
// case-insensitively, ordered by title then artist. An empty query matches
// every album. The window is applied in the query.
func (s *Store) SearchAlbums(ctx context.Context, query string, limit, offset int) ([]*domain.Album, error) {
	pattern := "%" + query + "%"
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+albumColumns+` FROM albums
		WHERE album_title LIKE ? COLLATE NOCASE OR album_artist LIKE ? COLLATE NOCASE
		ORDER BY album_title ASC, album_artist ASC, id ASC
		LIMIT ? OFFSET ?`,
		pattern, pattern, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query albums: %w", err)
	}
	defer rows.Close()

	var albums []*domain.Album
	for rows.Next() {
		a, err := scanAlbum(rows)
		if err != nil {
			return nil, err
		}
		albums = append(albums, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if albums == nil {
		albums = []*domain.Album{}
	}

	return albums, nil
}
