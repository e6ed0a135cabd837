// Package di provides dependency injection configuration for the JazzMate server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/heeyoungha/jazzmateShop/internal/config"
	"github.com/heeyoungha/jazzmateShop/internal/di/providers"
	"github.com/heeyoungha/jazzmateShop/internal/logger"
	"github.com/heeyoungha/jazzmateShop/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Outbound clients
	do.Provide(injector, providers.ProvideRecommenderClient)

	// Business services
	do.Provide(injector, providers.ProvideReviewService)
	do.Provide(injector, providers.ProvideTrackService)
	do.Provide(injector, providers.ProvideAlbumService)
	do.Provide(injector, providers.ProvideCriticService)
	do.Provide(injector, providers.ProvideRecommendationService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns once everything is running.
// This triggers lazy initialization through the dependency graph.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)

	_ = do.MustInvoke[*service.ReviewService](injector)
	_ = do.MustInvoke[*service.TrackService](injector)
	_ = do.MustInvoke[*service.AlbumService](injector)
	_ = do.MustInvoke[*service.CriticService](injector)
	_ = do.MustInvoke[*service.RecommendationService](injector)

	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
