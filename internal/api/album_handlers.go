package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heeyoungha/jazzmateShop/internal/http/response"
)

// handleSearchAlbums returns one page of albums matching the query over
// title or artist.
func (s *Server) handleSearchAlbums(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query().Get("q")
	page, size := parsePageSize(r)

	albums, err := s.albumService.Search(ctx, query, page, size)
	if err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	response.Raw(w, http.StatusOK, albums, s.logger.Logger)
}

// handleGetAlbum returns a single album.
func (s *Server) handleGetAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	albumID := chi.URLParam(r, "id")

	album, err := s.albumService.Get(ctx, albumID)
	if err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	response.Raw(w, http.StatusOK, album, s.logger.Logger)
}
