// Package domain defines the core entities of the JazzMate catalog.
// Entities are plain records; behavior lives in the service layer.
package domain

import "time"

// Album is a catalog album ingested by batch import.
// TrackListing holds serialized JSON text and is passed through verbatim.
type Album struct {
	ID              string    `json:"id"`
	AlbumArtist     string    `json:"album_artist"`
	AlbumTitle      string    `json:"album_title"`
	AlbumYear       *int      `json:"album_year,omitempty"`
	AlbumLabel      string    `json:"album_label,omitempty"`
	TrackListing    string    `json:"track_listing,omitempty"`
	CriticsReviewID *string   `json:"critics_review_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
