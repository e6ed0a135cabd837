package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heeyoungha/jazzmateShop/internal/domain"
	"github.com/heeyoungha/jazzmateShop/internal/http/response"
	"github.com/heeyoungha/jazzmateShop/internal/service"
)

// reviewDetail is the single-review read shape: the review with its
// recommendations inlined.
type reviewDetail struct {
	domain.UserReview
	Recommendations    []*domain.RecommendTrack `json:"recommendations"`
	HasRecommendations bool                     `json:"has_recommendations"`
}

// handleCreateReview saves a review and then asks the recommendation engine
// for suggestions. The engine call is best-effort; the response does not
// wait for it or reflect its outcome.
func (s *Server) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input service.ReviewInput
	if !s.decodeBody(w, r, &input) {
		return
	}
	if err := s.validator.Validate(input); err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	review, err := s.reviewService.Create(ctx, input)
	if err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	// Dispatch strictly after the row is committed.
	s.recommender.Trigger(review.ID, review.ReviewContent)

	response.Success(w, "감상문이 저장되었습니다.", review, s.logger.Logger)
}

// handleListReviews returns one page of reviews. A userId query selects that
// user's reviews; otherwise public reviews are listed.
func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.URL.Query().Get("userId")
	page, size := parsePageSize(r)

	reviews, err := s.reviewService.List(ctx, userID, page, size)
	if err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	response.Raw(w, http.StatusOK, reviews, s.logger.Logger)
}

// handleGetReview returns a review with its recommendations inlined.
func (s *Server) handleGetReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reviewID := chi.URLParam(r, "id")

	review, err := s.reviewService.Get(ctx, reviewID)
	if err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	recs, err := s.reviewService.Recommendations(ctx, reviewID)
	if err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	response.Raw(w, http.StatusOK, reviewDetail{
		UserReview:         *review,
		Recommendations:    recs,
		HasRecommendations: len(recs) > 0,
	}, s.logger.Logger)
}

// handleUpdateReview overwrites a review's caller-settable fields.
func (s *Server) handleUpdateReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reviewID := chi.URLParam(r, "id")

	var input service.ReviewInput
	if !s.decodeBody(w, r, &input) {
		return
	}
	if err := s.validator.Validate(input); err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	review, err := s.reviewService.Update(ctx, reviewID, input)
	if err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	response.Success(w, "감상문이 수정되었습니다.", review, s.logger.Logger)
}

// handleDeleteReview removes a review and its dependent rows.
func (s *Server) handleDeleteReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reviewID := chi.URLParam(r, "id")

	if err := s.reviewService.Delete(ctx, reviewID); err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	response.Success(w, "감상문이 삭제되었습니다.", nil, s.logger.Logger)
}

// handleListReviewRecommendations returns a review's recommendations ordered
// by score descending.
func (s *Server) handleListReviewRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reviewID := chi.URLParam(r, "id")

	recs, err := s.reviewService.Recommendations(ctx, reviewID)
	if err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	response.Raw(w, http.StatusOK, recs, s.logger.Logger)
}
