package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heeyoungha/jazzmateShop/internal/http/response"
)

// handleListCritics returns one page of summarized critic reviews with the
// total count.
func (s *Server) handleListCritics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, size := parsePageSize(r)

	result, err := s.criticService.List(ctx, page, size)
	if err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	response.Raw(w, http.StatusOK, result, s.logger.Logger)
}

// handleGetCritic returns a single critic review.
func (s *Server) handleGetCritic(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	criticsID := chi.URLParam(r, "id")

	review, err := s.criticService.Get(ctx, criticsID)
	if err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	response.Raw(w, http.StatusOK, review, s.logger.Logger)
}
