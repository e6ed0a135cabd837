package domain

import "time"

// Track is a catalog track registered on demand by the recommendation engine.
// Identity is the (ArtistName, TrackTitle) pair; creation is upsert-by-natural-key.
type Track struct {
	ID              string    `json:"id"`
	AlbumID         *string   `json:"album_id,omitempty"`
	TrackTitle      string    `json:"track_title"`
	ArtistName      string    `json:"artist_name"`
	Genre           string    `json:"genre,omitempty"`
	Mood            string    `json:"mood,omitempty"`
	Energy          *float64  `json:"energy,omitempty"`
	BPM             *int      `json:"bpm,omitempty"`
	VocalStyle      string    `json:"vocal_style,omitempty"`
	Instrumentation string    `json:"instrumentation,omitempty"`
	Lyrics          string    `json:"lyrics,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
