package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heeyoungha/jazzmateShop/internal/http/response"
	"github.com/heeyoungha/jazzmateShop/internal/service"
)

// handleCreateTrack registers a track, or returns the existing one when the
// (artist, title) pair is already known. The status distinguishes the two.
func (s *Server) handleCreateTrack(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input service.TrackInput
	if !s.decodeBody(w, r, &input) {
		return
	}
	if err := s.validator.Validate(input); err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	track, created, err := s.trackService.CreateOrGet(ctx, input)
	if err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	response.Raw(w, status, track, s.logger.Logger)
}

// handleGetTrack returns a single track.
func (s *Server) handleGetTrack(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	trackID := chi.URLParam(r, "id")

	track, err := s.trackService.Get(ctx, trackID)
	if err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	response.Raw(w, http.StatusOK, track, s.logger.Logger)
}
