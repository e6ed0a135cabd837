// Package api provides the HTTP server and handlers for the JazzMate service.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/heeyoungha/jazzmateShop/internal/http/response"
	"github.com/heeyoungha/jazzmateShop/internal/logger"
	"github.com/heeyoungha/jazzmateShop/internal/recommender"
	"github.com/heeyoungha/jazzmateShop/internal/service"
	"github.com/heeyoungha/jazzmateShop/internal/validation"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	reviewService         *service.ReviewService
	trackService          *service.TrackService
	albumService          *service.AlbumService
	criticService         *service.CriticService
	recommendationService *service.RecommendationService
	recommender           *recommender.Client
	validator             *validation.Validator
	allowedOrigins        []string
	router                *chi.Mux
	logger                *logger.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(
	reviewService *service.ReviewService,
	trackService *service.TrackService,
	albumService *service.AlbumService,
	criticService *service.CriticService,
	recommendationService *service.RecommendationService,
	recommenderClient *recommender.Client,
	allowedOrigins []string,
	log *logger.Logger,
) *Server {
	s := &Server{
		reviewService:         reviewService,
		trackService:          trackService,
		albumService:          albumService,
		criticService:         criticService,
		recommendationService: recommendationService,
		recommender:           recommenderClient,
		validator:             validation.New(),
		allowedOrigins:        allowedOrigins,
		router:                chi.NewRouter(),
		logger:                log,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	s.router.Route("/api", func(r chi.Router) {
		r.Route("/albums", func(r chi.Router) {
			r.Get("/search", s.handleSearchAlbums)
			r.Get("/{id}", s.handleGetAlbum)
		})

		r.Route("/critics", func(r chi.Router) {
			r.Get("/", s.handleListCritics)
			r.Get("/{id}", s.handleGetCritic)
		})

		r.Route("/user-reviews", func(r chi.Router) {
			r.Post("/", s.handleCreateReview)
			r.Get("/", s.handleListReviews)
			r.Get("/{id}", s.handleGetReview)
			r.Put("/{id}", s.handleUpdateReview)
			r.Delete("/{id}", s.handleDeleteReview)
			r.Get("/{id}/recommendations", s.handleListReviewRecommendations)
		})

		r.Route("/tracks", func(r chi.Router) {
			r.Post("/", s.handleCreateTrack)
			r.Get("/{id}", s.handleGetTrack)
		})

		r.Post("/recommend-tracks", s.handleCreateRecommendation)
	})
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Raw(w, http.StatusOK, map[string]string{
		"status": "healthy",
	}, s.logger.Logger)
}
