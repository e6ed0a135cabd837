package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/heeyoungha/jazzmateShop/internal/domain"
	domainerrors "github.com/heeyoungha/jazzmateShop/internal/errors"
)

// criticsColumns is the ordered list of columns selected in critics review
// queries. Must match the scan order in scanCriticsReview.
const criticsColumns = `id, title, reviewer, date, url, content, album_info,
	youtube_info, rating, track_listing, personnel, review_summary, created_at`

// scanCriticsReview scans a sql.Row (or sql.Rows via its Scan method) into
// a domain.CriticsReview.
func scanCriticsReview(scanner interface{ Scan(dest ...any) error }) (*domain.CriticsReview, error) {
	var c domain.CriticsReview

	var (
		rating    sql.NullFloat64
		summary   sql.NullString
		createdAt string
	)

	err := scanner.Scan(
		&c.ID,
		&c.Title,
		&c.Reviewer,
		&c.Date,
		&c.URL,
		&c.Content,
		&c.AlbumInfo,
		&c.YoutubeInfo,
		&rating,
		&c.TrackListing,
		&c.Personnel,
		&summary,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	c.Rating = floatPtr(rating)
	c.ReviewSummary = stringPtr(summary)

	c.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// CreateCriticsReview inserts a critics review into the database.
func (s *Store) CreateCriticsReview(ctx context.Context, c *domain.CriticsReview) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO critics_reviews (id, title, reviewer, date, url, content,
			album_info, youtube_info, rating, track_listing, personnel,
			review_summary, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID,
		c.Title,
		c.Reviewer,
		c.Date,
		c.URL,
		c.Content,
		c.AlbumInfo,
		c.YoutubeInfo,
		nullableFloat(c.Rating),
		c.TrackListing,
		c.Personnel,
		nullableString(c.ReviewSummary),
		formatTime(c.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert critics review: %w", err)
	}
	return nil
}

// GetCriticsReviewByID retrieves a critics review by its ID.
// Returns errors.ErrNotFound if the review does not exist.
func (s *Store) GetCriticsReviewByID(ctx context.Context, criticsID string) (*domain.CriticsReview, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+criticsColumns+` FROM critics_reviews WHERE id = ?`, criticsID)

	c, err := scanCriticsReview(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListCriticsReviews returns critics reviews with a non-null summary,
// newest-first, windowed in the query.
func (s *Store) ListCriticsReviews(ctx context.Context, limit, offset int) ([]*domain.CriticsReview, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+criticsColumns+` FROM critics_reviews
		WHERE review_summary IS NOT NULL
		ORDER BY created_at DESC, id ASC
		LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query critics reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*domain.CriticsReview
	for rows.Next() {
		c, err := scanCriticsReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if reviews == nil {
		reviews = []*domain.CriticsReview{}
	}

	return reviews, nil
}

// CountCriticsReviews returns the total number of critics reviews with a
// non-null summary.
func (s *Store) CountCriticsReviews(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM critics_reviews WHERE review_summary IS NOT NULL`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count critics reviews: %w", err)
	}
	return count, nil
}
