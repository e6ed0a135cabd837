package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/heeyoungha/jazzmateShop/internal/domain"
)

func TestCreateRecommendTrack_RoundsScore(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	r := testReview(1)
	if err := s.CreateReview(ctx, r); err != nil {
		t.Fatalf("CreateReview() error = %v", err)
	}

	now := time.Now().UTC()
	rec := &domain.RecommendTrack{
		ID:        "rec-001",
		ReviewID:  r.ID,
		TrackID:   "trk-001",
		Score:     0.123456789,
		Reason:    "shares modal harmony",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.CreateRecommendTrack(ctx, rec); err != nil {
		t.Fatalf("CreateRecommendTrack() error = %v", err)
	}
	if rec.Score != 0.1235 {
		t.Errorf("Score after create = %v, want 0.1235", rec.Score)
	}

	got, err := s.ListRecommendationsByReview(ctx, r.ID)
	if err != nil {
		t.Fatalf("ListRecommendationsByReview() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Score != 0.1235 {
		t.Errorf("stored score = %v, want 0.1235", got[0].Score)
	}
	if got[0].Reason != rec.Reason {
		t.Errorf("Reason = %q, want %q", got[0].Reason, rec.Reason)
	}
}

func TestListRecommendationsByReview_ScoreDescending(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	r := testReview(1)
	if err := s.CreateReview(ctx, r); err != nil {
		t.Fatalf("CreateReview() error = %v", err)
	}

	scores := []float64{0.5, 0.9, 0.7}
	now := time.Now().UTC()
	for i, score := range scores {
		rec := &domain.RecommendTrack{
			ID:        fmt.Sprintf("rec-%03d", i),
			ReviewID:  r.ID,
			TrackID:   fmt.Sprintf("trk-%03d", i),
			Score:     score,
			Reason:    "similar",
			CreatedAt: now.Add(time.Duration(i) * time.Second),
			UpdatedAt: now.Add(time.Duration(i) * time.Second),
		}
		if err := s.CreateRecommendTrack(ctx, rec); err != nil {
			t.Fatalf("CreateRecommendTrack(%d) error = %v", i, err)
		}
	}

	got, err := s.ListRecommendationsByReview(ctx, r.ID)
	if err != nil {
		t.Fatalf("ListRecommendationsByReview() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Errorf("scores not descending at %d: %v then %v", i, got[i-1].Score, got[i].Score)
		}
	}
}

func TestListRecommendationsByReview_Empty(t *testing.T) {
	s := newTestStore(t)

	got, err := s.ListRecommendationsByReview(context.Background(), "rev-missing")
	if err != nil {
		t.Fatalf("ListRecommendationsByReview() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
