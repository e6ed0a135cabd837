package domain

import "time"

// UserReview is a listening review written by a user for a track/artist.
//
// IsFeatured, LikeCount and CommentCount are initialized at creation
// (false/0/0) and are never settable through the update contract.
type UserReview struct {
	ID              string    `json:"id"`
	AlbumID         *string   `json:"album_id,omitempty"`
	UserID          *string   `json:"user_id,omitempty"`
	TrackName       string    `json:"track_name"`
	ArtistName      string    `json:"artist_name"`
	ReviewContent   string    `json:"review_content"`
	Rating          *float64  `json:"rating,omitempty"`
	Mood            string    `json:"mood,omitempty"`
	Genre           string    `json:"genre,omitempty"`
	EnergyLevel     *float64  `json:"energy_level,omitempty"`
	BPM             *int      `json:"bpm,omitempty"`
	VocalStyle      string    `json:"vocal_style,omitempty"`
	Instrumentation string    `json:"instrumentation,omitempty"`
	Tags            []string  `json:"tags"`
	IsPublic        bool      `json:"is_public"`
	IsFeatured      bool      `json:"is_featured"`
	LikeCount       int       `json:"like_count"`
	CommentCount    int       `json:"comment_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
