package placesfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"jetfriend/internal/repositories"
	"jetfriend/internal/services"
	"jetfriend/pkg/config"
)

var Module = fx.Provide(
	ProvidePlacesRepository,
	ProvidePlacesService,
)

// ProvidePlacesRepository selects the live Google Places strategy when a key
// is configured, falling back to the fixture-backed mock otherwise.
func ProvidePlacesRepository(cfg *config.Config, logger *zap.Logger) repositories.PlacesRepository {
	if cfg.Places.Configured() {
		logger.Info("using live Google Places repository")
		return repositories.NewGooglePlacesRepository(cfg.Places.APIKey, logger)
	}

	logger.Warn("no Places API key configured, using mock fixtures")
	return repositories.NewMockPlacesRepository(repositories.DefaultFixtures())
}

func ProvidePlacesService(repo repositories.PlacesRepository, cfg *config.Config, logger *zap.Logger) services.PlacesServiceInterface {
	return services.NewPlacesService(repo, cfg.Places.MaxResults, logger)
}
