package api

import (
	"net/http"

	"github.com/heeyoungha/jazzmateShop/internal/http/response"
	"github.com/heeyoungha/jazzmateShop/internal/service"
)

// handleCreateRecommendation stores one suggestion delivered by the
// recommendation engine's callback.
func (s *Server) handleCreateRecommendation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input service.RecommendationInput
	if !s.decodeBody(w, r, &input) {
		return
	}
	if err := s.validator.Validate(input); err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	rec, err := s.recommendationService.Create(ctx, input)
	if err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	response.Raw(w, http.StatusCreated, rec, s.logger.Logger)
}
