package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/heeyoungha/jazzmateShop/internal/domain"
	domainerrors "github.com/heeyoungha/jazzmateShop/internal/errors"
)

func testTrack(artist, title string) *domain.Track {
	now := time.Now().UTC()
	return &domain.Track{
		ID:         "trk-" + title,
		TrackTitle: title,
		ArtistName: artist,
		Genre:      "jazz",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestCreateTrack_DuplicateNaturalKey(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateTrack(ctx, testTrack("Miles Davis", "So What")); err != nil {
		t.Fatalf("CreateTrack() error = %v", err)
	}

	dup := testTrack("Miles Davis", "So What")
	dup.ID = "trk-other"
	err := s.CreateTrack(ctx, dup)
	if !errors.Is(err, domainerrors.ErrAlreadyExists) {
		t.Fatalf("err = %v, want ErrAlreadyExists", err)
	}
}

func TestGetTrackByID_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetTrackByID(context.Background(), "trk-missing")
	if !errors.Is(err, domainerrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestFindOrCreateTrack_CreatesThenReturnsExisting(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	energy := 0.42
	in := &domain.Track{
		TrackTitle: "Blue in Green",
		ArtistName: "Miles Davis",
		Genre:      "modal jazz",
		Energy:     &energy,
	}

	first, created, err := s.FindOrCreateTrack(ctx, in)
	if err != nil {
		t.Fatalf("FindOrCreateTrack() error = %v", err)
	}
	if !created {
		t.Error("created = false on first call, want true")
	}
	if first.ID == "" {
		t.Error("first.ID is empty")
	}

	// Second call with differing secondary fields returns the stored row unchanged.
	again := &domain.Track{
		TrackTitle: "Blue in Green",
		ArtistName: "Miles Davis",
		Genre:      "something else entirely",
	}
	second, created, err := s.FindOrCreateTrack(ctx, again)
	if err != nil {
		t.Fatalf("FindOrCreateTrack() second error = %v", err)
	}
	if created {
		t.Error("created = true on second call, want false")
	}
	if second.ID != first.ID {
		t.Errorf("second.ID = %s, want %s", second.ID, first.ID)
	}
	if second.Genre != "modal jazz" {
		t.Errorf("Genre = %q, want original %q", second.Genre, "modal jazz")
	}
	if second.Energy == nil || *second.Energy != energy {
		t.Errorf("Energy = %v, want %v", second.Energy, energy)
	}
}
