package providers

import (
	"github.com/samber/do/v2"

	"github.com/heeyoungha/jazzmateShop/internal/logger"
	"github.com/heeyoungha/jazzmateShop/internal/service"
)

// ProvideReviewService provides the user review service.
func ProvideReviewService(i do.Injector) (*service.ReviewService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewReviewService(storeHandle.Store, log.Logger), nil
}

// ProvideTrackService provides the track registration service.
func ProvideTrackService(i do.Injector) (*service.TrackService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewTrackService(storeHandle.Store, log.Logger), nil
}

// ProvideAlbumService provides the album catalog service.
func ProvideAlbumService(i do.Injector) (*service.AlbumService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewAlbumService(storeHandle.Store, log.Logger), nil
}

// ProvideCriticService provides the critic review service.
func ProvideCriticService(i do.Injector) (*service.CriticService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewCriticService(storeHandle.Store, log.Logger), nil
}

// ProvideRecommendationService provides the recommendation callback service.
func ProvideRecommendationService(i do.Injector) (*service.RecommendationService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewRecommendationService(storeHandle.Store, log.Logger), nil
}
