package sqlite

import (
	"context"
	"fmt"
	"math"

	"github.com/heeyoungha/jazzmateShop/internal/domain"
)

// recommendColumns is the ordered list of columns selected in
// recommendation queries. Must match the scan order in scanRecommendTrack.
const recommendColumns = `id, user_review_id, track_id, recommendation_score,
	recommendation_reason, created_at, updated_at`

// roundScore normalizes a similarity score to exactly 4 fractional digits,
// half away from zero.
func roundScore(score float64) float64 {
	return math.Round(score*10000) / 10000
}

// scanRecommendTrack scans a sql.Row (or sql.Rows via its Scan method) into
// a domain.RecommendTrack.
func scanRecommendTrack(scanner interface{ Scan(dest ...any) error }) (*domain.RecommendTrack, error) {
	var r domain.RecommendTrack

	var (
		createdAt string
		updatedAt string
	)

	err := scanner.Scan(
		&r.ID,
		&r.ReviewID,
		&r.TrackID,
		&r.Score,
		&r.Reason,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

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

// CreateRecommendTrack inserts a recommendation row.
// The score is rounded to 4 fractional digits before storage and the
// rounded value is written back to r.
func (s *Store) CreateRecommendTrack(ctx context.Context, r *domain.RecommendTrack) error {
	r.Score = roundScore(r.Score)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO recommend_tracks (id, user_review_id, track_id,
			recommendation_score, recommendation_reason, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.ReviewID,
		r.TrackID,
		r.Score,
		r.Reason,
		formatTime(r.CreatedAt),
		formatTime(r.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert recommend track: %w", err)
	}
	return nil
}

// ListRecommendationsByReview returns a review's recommendations ordered by
// score descending, with insertion order breaking ties.
func (s *Store) ListRecommendationsByReview(ctx context.Context, reviewID string) ([]*domain.RecommendTrack, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+recommendColumns+` FROM recommend_tracks
		WHERE user_review_id = ?
		ORDER BY recommendation_score DESC, created_at ASC, id ASC`,
		reviewID)
	if err != nil {
		return nil, fmt.Errorf("query recommend tracks: %w", err)
	}
	defer rows.Close()

	var recs []*domain.RecommendTrack
	for rows.Next() {
		r, err := scanRecommendTrack(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if recs == nil {
		recs = []*domain.RecommendTrack{}
	}

	return recs, nil
}
