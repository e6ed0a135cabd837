package service

import (
	"context"
	"log/slog"

	"github.com/heeyoungha/jazzmateShop/internal/domain"
	"github.com/heeyoungha/jazzmateShop/internal/errors"
	"github.com/heeyoungha/jazzmateShop/internal/store/sqlite"
)

// TrackService registers and serves catalog tracks.
type TrackService struct {
	store  *sqlite.Store
	logger *slog.Logger
}

// NewTrackService creates a new track service.
func NewTrackService(store *sqlite.Store, logger *slog.Logger) *TrackService {
	return &TrackService{store: store, logger: logger}
}

// TrackInput carries the fields of a track registration request.
type TrackInput struct {
	AlbumID         *string  `json:"album_id"`
	TrackTitle      string   `json:"track_title" validate:"required,notblank"`
	ArtistName      string   `json:"artist_name" validate:"required,notblank"`
	Genre           string   `json:"genre"`
	Mood            string   `json:"mood"`
	Energy          *float64 `json:"energy"`
	BPM             *int     `json:"bpm"`
	VocalStyle      string   `json:"vocal_style"`
	Instrumentation string   `json:"instrumentation"`
	Lyrics          string   `json:"lyrics"`
}

// CreateOrGet upserts a track by its (artist, title) natural key.
// An existing track is returned unchanged; the input's secondary fields are
// ignored in that case. Returns (track, created, error).
func (s *TrackService) CreateOrGet(ctx context.Context, input TrackInput) (*domain.Track, bool, error) {
	track := &domain.Track{
		AlbumID:         input.AlbumID,
		TrackTitle:      input.TrackTitle,
		ArtistName:      input.ArtistName,
		Genre:           input.Genre,
		Mood:            input.Mood,
		Energy:          input.Energy,
		BPM:             input.BPM,
		VocalStyle:      input.VocalStyle,
		Instrumentation: input.Instrumentation,
		Lyrics:          input.Lyrics,
	}

	result, created, err := s.store.FindOrCreateTrack(ctx, track)
	if err != nil {
		return nil, false, err
	}

	if created {
		s.logger.Info("track registered",
			"track_id", result.ID,
			"artist_name", result.ArtistName,
			"track_title", result.TrackTitle,
		)
	}

	return result, created, nil
}

// Get returns a track by id.
func (s *TrackService) Get(ctx context.Context, trackID string) (*domain.Track, error) {
	track, err := s.store.GetTrackByID(ctx, trackID)
	if errors.Is(err, errors.ErrNotFound) {
		return nil, errors.NotFound("track not found: " + trackID)
	}
	if err != nil {
		return nil, err
	}
	return track, nil
}
