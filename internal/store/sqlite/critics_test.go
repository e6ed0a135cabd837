package sqlite

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/heeyoungha/jazzmateShop/internal/domain"
	domainerrors "github.com/heeyoungha/jazzmateShop/internal/errors"
)

func testCriticsReview(i int, summary *string) *domain.CriticsReview {
	return &domain.CriticsReview{
		ID:            fmt.Sprintf("cr-%03d", i),
		Title:         fmt.Sprintf("Review %d", i),
		Reviewer:      "DownBeat",
		ReviewSummary: summary,
		CreatedAt:     time.Now().UTC().Add(time.Duration(i) * time.Second),
	}
}

func TestCreateAndGetCriticsReview(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	summary := "A landmark session."
	rating := 5.0
	c := testCriticsReview(1, &summary)
	c.Rating = &rating
	c.AlbumInfo = `{"label":"Columbia","year":1959}`

	if err := s.CreateCriticsReview(ctx, c); err != nil {
		t.Fatalf("CreateCriticsReview() error = %v", err)
	}

	got, err := s.GetCriticsReviewByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetCriticsReviewByID() error = %v", err)
	}
	if got.Title != c.Title {
		t.Errorf("Title = %q, want %q", got.Title, c.Title)
	}
	if got.ReviewSummary == nil || *got.ReviewSummary != summary {
		t.Errorf("ReviewSummary = %v, want %q", got.ReviewSummary, summary)
	}
	if got.AlbumInfo != c.AlbumInfo {
		t.Errorf("AlbumInfo = %q, want pass-through", got.AlbumInfo)
	}
}

func TestGetCriticsReviewByID_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetCriticsReviewByID(context.Background(), "cr-missing")
	if !errors.Is(err, domainerrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListCriticsReviews_FiltersNullSummary(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	summary := "worth hearing"
	for i := 1; i <= 3; i++ {
		if err := s.CreateCriticsReview(ctx, testCriticsReview(i, &summary)); err != nil {
			t.Fatalf("CreateCriticsReview(%d) error = %v", i, err)
		}
	}
	if err := s.CreateCriticsReview(ctx, testCriticsReview(4, nil)); err != nil {
		t.Fatalf("CreateCriticsReview(no summary) error = %v", err)
	}

	got, err := s.ListCriticsReviews(ctx, 20, 0)
	if err != nil {
		t.Fatalf("ListCriticsReviews() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	// Newest-first.
	if got[0].ID != "cr-003" {
		t.Errorf("first = %s, want cr-003", got[0].ID)
	}

	count, err := s.CountCriticsReviews(ctx)
	if err != nil {
		t.Fatalf("CountCriticsReviews() error = %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestListCriticsReviews_Window(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	summary := "s"
	for i := 1; i <= 5; i++ {
		if err := s.CreateCriticsReview(ctx, testCriticsReview(i, &summary)); err != nil {
			t.Fatalf("CreateCriticsReview(%d) error = %v", i, err)
		}
	}

	got, err := s.ListCriticsReviews(ctx, 2, 2)
	if err != nil {
		t.Fatalf("ListCriticsReviews() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "cr-003" || got[1].ID != "cr-002" {
		t.Errorf("ids = %s, %s, want cr-003, cr-002", got[0].ID, got[1].ID)
	}
}
