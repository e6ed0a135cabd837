package domain

import "time"

// CriticsReview is an ingested professional review.
// AlbumInfo, YoutubeInfo, TrackListing and Personnel hold serialized
// structured data treated as opaque text and passed through verbatim.
type CriticsReview struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Reviewer      string    `json:"reviewer,omitempty"`
	Date          string    `json:"date,omitempty"`
	URL           string    `json:"url,omitempty"`
	Content       string    `json:"content,omitempty"`
	AlbumInfo     string    `json:"album_info,omitempty"`
	YoutubeInfo   string    `json:"youtube_info,omitempty"`
	Rating        *float64  `json:"rating,omitempty"`
	TrackListing  string    `json:"track_listing,omitempty"`
	Personnel     string    `json:"personnel,omitempty"`
	ReviewSummary *string   `json:"review_summary,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
