package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/heeyoungha/jazzmateShop/internal/domain"
	domainerrors "github.com/heeyoungha/jazzmateShop/internal/errors"
)

func testAlbum(id, artist, title string) *domain.Album {
	now := time.Now().UTC()
	return &domain.Album{
		ID:          id,
		AlbumArtist: artist,
		AlbumTitle:  title,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestCreateAndGetAlbum(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	year := 1959
	a := testAlbum("alb-001", "Miles Davis", "Kind of Blue")
	a.AlbumYear = &year
	a.AlbumLabel = "Columbia"
	a.TrackListing = `["So What","Freddie Freeloader","Blue in Green"]`

	if err := s.CreateAlbum(ctx, a); err != nil {
		t.Fatalf("CreateAlbum() error = %v", err)
	}

	got, err := s.GetAlbumByID(ctx, "alb-001")
	if err != nil {
		t.Fatalf("GetAlbumByID() error = %v", err)
	}
	if got.AlbumTitle != "Kind of Blue" {
		t.Errorf("AlbumTitle = %q, want %q", got.AlbumTitle, "Kind of Blue")
	}
	if got.AlbumYear == nil || *got.AlbumYear != year {
		t.Errorf("AlbumYear = %v, want %d", got.AlbumYear, year)
	}
	if got.TrackListing != a.TrackListing {
		t.Errorf("TrackListing = %q, want pass-through", got.TrackListing)
	}
}

func TestGetAlbumByID_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetAlbumByID(context.Background(), "alb-missing")
	if !errors.Is(err, domainerrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSearchAlbums_CaseInsensitiveTitleOrArtist(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	albums := []*domain.Album{
		testAlbum("alb-001", "Miles Davis", "Kind of Blue"),
		testAlbum("alb-002", "John Coltrane", "Blue Train"),
		testAlbum("alb-003", "Dave Brubeck", "Time Out"),
	}
	for _, a := range albums {
		if err := s.CreateAlbum(ctx, a); err != nil {
			t.Fatalf("CreateAlbum(%s) error = %v", a.ID, err)
		}
	}

	// "blue" matches two titles regardless of case.
	got, err := s.SearchAlbums(ctx, "BLUE", 20, 0)
	if err != nil {
		t.Fatalf("SearchAlbums() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	// Artist substring matches too.
	got, err = s.SearchAlbums(ctx, "coltrane", 20, 0)
	if err != nil {
		t.Fatalf("SearchAlbums() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "alb-002" {
		t.Errorf("artist search got %d results, want alb-002", len(got))
	}
}

func TestSearchAlbums_Window(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, a := range []*domain.Album{
		testAlbum("alb-001", "A", "Alpha"),
		testAlbum("alb-002", "B", "Beta"),
		testAlbum("alb-003", "C", "Gamma"),
	} {
		if err := s.CreateAlbum(ctx, a); err != nil {
			t.Fatalf("CreateAlbum() error = %v", err)
		}
	}

	got, err := s.SearchAlbums(ctx, "", 2, 2)
	if err != nil {
		t.Fatalf("SearchAlbums() error = %v", err)
	}
	if len(got) != 1 || got[0].AlbumTitle != "Gamma" {
		t.Errorf("window past end = %v, want single Gamma", got)
	}

	got, err = s.SearchAlbums(ctx, "", 20, 10)
	if err != nil {
		t.Fatalf("SearchAlbums() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0 past the end", len(got))
	}
}
