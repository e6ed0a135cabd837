package api

import (
	"encoding/json/v2"
	"net/http"
	"strconv"

	"github.com/heeyoungha/jazzmateShop/internal/http/response"
)

// parsePageSize reads page/size query parameters.
// Missing or malformed values fall back to page 0 and the default size;
// the services clamp negatives.
func parsePageSize(r *http.Request) (page, size int) {
	page = 0
	size = 0

	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page = n
		}
	}
	if v := r.URL.Query().Get("size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			size = n
		}
	}
	return page, size
}

// decodeBody decodes a JSON request body into dst, writing a 400 on failure.
// Returns false when decoding failed and a response was already written.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.UnmarshalRead(r.Body, dst); err != nil {
		response.BadRequest(w, "invalid request body", s.logger.Logger)
		return false
	}
	return true
}
