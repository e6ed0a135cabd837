package domain

import "time"

// RecommendTrack is a scored suggestion linking a review to a catalog track.
// Rows are created exclusively by the external recommendation engine calling
// back into the write endpoint; end users never create them directly.
//
// Score carries exactly 4 fractional digits; it represents a similarity value
// expected in [0,1] but the range is not enforced.
type RecommendTrack struct {
	ID        string    `json:"id"`
	ReviewID  string    `json:"user_review_id"`
	TrackID   string    `json:"track_id"`
	Score     float64   `json:"recommendation_score"`
	Reason    string    `json:"recommendation_reason"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
