package providers

import (
	"context"
	"errors"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/heeyoungha/jazzmateShop/internal/api"
	"github.com/heeyoungha/jazzmateShop/internal/config"
	"github.com/heeyoungha/jazzmateShop/internal/logger"
	"github.com/heeyoungha/jazzmateShop/internal/recommender"
	"github.com/heeyoungha/jazzmateShop/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server and starts it in the background.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	handler := api.NewServer(
		do.MustInvoke[*service.ReviewService](i),
		do.MustInvoke[*service.TrackService](i),
		do.MustInvoke[*service.AlbumService](i),
		do.MustInvoke[*service.CriticService](i),
		do.MustInvoke[*service.RecommendationService](i),
		do.MustInvoke[*recommender.Client](i),
		cfg.CORS.AllowedOrigins,
		log,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
		}
	}()

	return &HTTPServerHandle{Server: srv}, nil
}
