package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/heeyoungha/jazzmateShop/internal/domain"
	domainerrors "github.com/heeyoungha/jazzmateShop/internal/errors"
)

// reviewColumns is the ordered list of columns selected in review queries.
// Must match the scan order in scanReview.
const reviewColumns = `id, album_id, user_id, track_name, artist_name,
	review_content, rating, mood, genre, energy_level, bpm, vocal_style,
	instrumentation, is_public, is_featured, like_count, comment_count,
	created_at, updated_at`

// scanReview scans a sql.Row (or sql.Rows via its Scan method) into a
// domain.UserReview. Tags are loaded separately.
func scanReview(scanner interface{ Scan(dest ...any) error }) (*domain.UserReview, error) {
	var r domain.UserReview

	var (
		albumID     sql.NullString
		userID      sql.NullString
		rating      sql.NullFloat64
		energyLevel sql.NullFloat64
		bpm         sql.NullInt64
		createdAt   string
		updatedAt   string
	)

	err := scanner.Scan(
		&r.ID,
		&albumID,
		&userID,
		&r.TrackName,
		&r.ArtistName,
		&r.ReviewContent,
		&rating,
		&r.Mood,
		&r.Genre,
		&energyLevel,
		&bpm,
		&r.VocalStyle,
		&r.Instrumentation,
		&r.IsPublic,
		&r.IsFeatured,
		&r.LikeCount,
		&r.CommentCount,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	r.AlbumID = stringPtr(albumID)
	r.UserID = stringPtr(userID)
	r.Rating = floatPtr(rating)
	r.EnergyLevel = floatPtr(energyLevel)
	r.BPM = intPtr(bpm)

	r.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	r.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}

	return &r, nil
}

// insertReviewTags writes the ordered tag rows for a review inside tx.
func insertReviewTags(ctx context.Context, tx *sql.Tx, reviewID string, tags []string) error {
	for i, tag := range tags {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO user_review_tags (review_id, position, tag)
			VALUES (?, ?, ?)`,
			reviewID, i, tag)
		if err != nil {
			return fmt.Errorf("insert review tag: %w", err)
		}
	}
	return nil
}

// CreateReview inserts a review and its ordered tags in one transaction.
func (s *Store) CreateReview(ctx context.Context, r *domain.UserReview) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO user_reviews (id, album_id, user_id, track_name, artist_name,
			review_content, rating, mood, genre, energy_level, bpm, vocal_style,
			instrumentation, is_public, is_featured, like_count, comment_count,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		nullableString(r.AlbumID),
		nullableString(r.UserID),
		r.TrackName,
		r.ArtistName,
		r.ReviewContent,
		nullableFloat(r.Rating),
		r.Mood,
		r.Genre,
		nullableFloat(r.EnergyLevel),
		nullableInt(r.BPM),
		r.VocalStyle,
		r.Instrumentation,
		r.IsPublic,
		r.IsFeatured,
		r.LikeCount,
		r.CommentCount,
		formatTime(r.CreatedAt),
		formatTime(r.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}

	if err := insertReviewTags(ctx, tx, r.ID, r.Tags); err != nil {
		return err
	}

	return tx.Commit()
}

// GetReviewByID retrieves a review with its ordered tags.
// Returns errors.ErrNotFound if the review does not exist.
func (s *Store) GetReviewByID(ctx context.Context, reviewID string) (*domain.UserReview, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+reviewColumns+` FROM user_reviews WHERE id = ?`, reviewID)

	r, err := scanReview(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	r.Tags, err = s.getReviewTags(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// getReviewTags returns a review's tags in insertion order.
func (s *Store) getReviewTags(ctx context.Context, reviewID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT tag FROM user_review_tags
		WHERE review_id = ?
		ORDER BY position ASC`, reviewID)
	if err != nil {
		return nil, fmt.Errorf("query review tags: %w", err)
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("scan review tag: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tags, nil
}

// listReviews runs a review query and attaches each row's tags.
func (s *Store) listReviews(ctx context.Context, query string, args ...any) ([]*domain.UserReview, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*domain.UserReview
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, r := range reviews {
		r.Tags, err = s.getReviewTags(ctx, r.ID)
		if err != nil {
			return nil, err
		}
	}

	if reviews == nil {
		reviews = []*domain.UserReview{}
	}

	return reviews, nil
}

// ListReviewsByUser returns a user's reviews newest-first.
// The window is applied in the query.
func (s *Store) ListReviewsByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.UserReview, error) {
	return s.listReviews(ctx, `
		SELECT `+reviewColumns+` FROM user_reviews
		WHERE user_id = ?
		ORDER BY created_at DESC, id ASC
		LIMIT ? OFFSET ?`,
		userID, limit, offset)
}

// ListPublicReviews returns public reviews newest-first.
// The window is applied in the query.
func (s *Store) ListPublicReviews(ctx context.Context, limit, offset int) ([]*domain.UserReview, error) {
	return s.listReviews(ctx, `
		SELECT `+reviewColumns+` FROM user_reviews
		WHERE is_public = 1
		ORDER BY created_at DESC, id ASC
		LIMIT ? OFFSET ?`,
		limit, offset)
}

// UpdateReview overwrites a review's mutable columns and replaces its tags
// in one transaction. The caller controls which fields changed; id,
// created_at and the counter columns are never touched here.
func (s *Store) UpdateReview(ctx context.Context, r *domain.UserReview) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE user_reviews SET
			album_id = ?, user_id = ?, track_name = ?, artist_name = ?,
			review_content = ?, rating = ?, mood = ?, genre = ?,
			energy_level = ?, bpm = ?, vocal_style = ?, instrumentation = ?,
			is_public = ?, updated_at = ?
		WHERE id = ?`,
		nullableString(r.AlbumID),
		nullableString(r.UserID),
		r.TrackName,
		r.ArtistName,
		r.ReviewContent,
		nullableFloat(r.Rating),
		r.Mood,
		r.Genre,
		nullableFloat(r.EnergyLevel),
		nullableInt(r.BPM),
		r.VocalStyle,
		r.Instrumentation,
		r.IsPublic,
		formatTime(r.UpdatedAt),
		r.ID,
	)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domainerrors.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM user_review_tags WHERE review_id = ?`, r.ID); err != nil {
		return fmt.Errorf("delete review tags: %w", err)
	}
	if err := insertReviewTags(ctx, tx, r.ID, r.Tags); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteReview removes a review; tags and recommendations cascade.
// Returns errors.ErrNotFound if the review does not exist.
func (s *Store) DeleteReview(ctx context.Context, reviewID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM user_reviews WHERE id = ?`, reviewID)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
