package providers

import (
	"github.com/samber/do/v2"

	"github.com/heeyoungha/jazzmateShop/internal/config"
	"github.com/heeyoungha/jazzmateShop/internal/logger"
	"github.com/heeyoungha/jazzmateShop/internal/recommender"
)

// ProvideRecommenderClient provides the recommendation trigger client.
func ProvideRecommenderClient(i do.Injector) (*recommender.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := recommender.NewClient(recommender.Config{
		BaseURL:        cfg.Recommender.BaseURL,
		ConnectTimeout: cfg.Recommender.ConnectTimeout,
		RequestTimeout: cfg.Recommender.RequestTimeout,
	}, log.Logger)

	log.Info("Recommendation client ready", "base_url", cfg.Recommender.BaseURL)

	return client, nil
}
