package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/heeyoungha/jazzmateShop/internal/domain"
	domainerrors "github.com/heeyoungha/jazzmateShop/internal/errors"
	"github.com/heeyoungha/jazzmateShop/internal/id"
)

// trackColumns is the ordered list of columns selected in track queries.
// Must match the scan order in scanTrack.
const trackColumns = `id, album_id, track_title, artist_name, genre, mood,
	energy, bpm, vocal_style, instrumentation, lyrics, created_at, updated_at`

// scanTrack scans a sql.Row (or sql.Rows via its Scan method) into a domain.Track.
func scanTrack(scanner interface{ Scan(dest ...any) error }) (*domain.Track, error) {
	var t domain.Track

	var (
		albumID   sql.NullString
		energy    sql.NullFloat64
		bpm       sql.NullInt64
		createdAt string
		updatedAt string
	)

	err := scanner.Scan(
		&t.ID,
		&albumID,
		&t.TrackTitle,
		&t.ArtistName,
		&t.Genre,
		&t.Mood,
		&energy,
		&bpm,
		&t.VocalStyle,
		&t.Instrumentation,
		&t.Lyrics,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.AlbumID = stringPtr(albumID)
	t.Energy = floatPtr(energy)
	t.BPM = intPtr(bpm)

	t.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	t.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// CreateTrack inserts a new track into the database.
// Returns errors.ErrAlreadyExists on a duplicate (artist_name, track_title) pair.
func (s *Store) CreateTrack(ctx context.Context, t *domain.Track) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tracks (id, album_id, track_title, artist_name, genre, mood,
			energy, bpm, vocal_style, instrumentation, lyrics, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID,
		nullableString(t.AlbumID),
		t.TrackTitle,
		t.ArtistName,
		t.Genre,
		t.Mood,
		nullableFloat(t.Energy),
		nullableInt(t.BPM),
		t.VocalStyle,
		t.Instrumentation,
		t.Lyrics,
		formatTime(t.CreatedAt),
		formatTime(t.UpdatedAt),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return domainerrors.ErrAlreadyExists
		}
		return fmt.Errorf("insert track: %w", err)
	}
	return nil
}

// GetTrackByID retrieves a track by its ID.
// Returns errors.ErrNotFound if the track does not exist.
func (s *Store) GetTrackByID(ctx context.Context, trackID string) (*domain.Track, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+trackColumns+` FROM tracks WHERE id = ?`, trackID)

	t, err := scanTrack(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetTrackByArtistAndTitle retrieves a track by its natural key.
// Returns errors.ErrNotFound if no such track exists.
func (s *Store) GetTrackByArtistAndTitle(ctx context.Context, artistName, trackTitle string) (*domain.Track, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+trackColumns+` FROM tracks WHERE artist_name = ? AND track_title = ?`,
		artistName, trackTitle)

	t, err := scanTrack(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// FindOrCreateTrack finds a track by (artist_name, track_title) or creates it.
// When the track already exists the stored row is returned unchanged and the
// input's secondary fields are ignored. Returns (track, created, error).
func (s *Store) FindOrCreateTrack(ctx context.Context, t *domain.Track) (*domain.Track, bool, error) {
	existing, err := s.GetTrackByArtistAndTitle(ctx, t.ArtistName, t.TrackTitle)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, false, err
	}

	trackID, err := id.Generate("trk")
	if err != nil {
		return nil, false, fmt.Errorf("generate track id: %w", err)
	}

	now := time.Now().UTC()
	created := *t
	created.ID = trackID
	created.CreatedAt = now
	created.UpdatedAt = now

	if err := s.CreateTrack(ctx, &created); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			// Race: another request registered the same pair first.
			existing, err := s.GetTrackByArtistAndTitle(ctx, t.ArtistName, t.TrackTitle)
			if err != nil {
				return nil, false, err
			}
			return existing, false, nil
		}
		return nil, false, err
	}

	return &created, true, nil
}
