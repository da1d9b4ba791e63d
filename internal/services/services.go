package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/vistream/discovery/internal/catalog"
	"github.com/vistream/discovery/internal/config"
	"github.com/vistream/discovery/internal/database"
	"github.com/vistream/discovery/internal/messaging"
	"github.com/vistream/discovery/internal/storage"
)

type Services struct {
	Auth           *AuthService
	Health         *HealthService
	Telemetry      *TelemetryService
	Trending       *TrendingService
	Search         *SearchService
	Recommendation *RecommendationService
	Metrics        *Metrics

	bus *messaging.TelemetryBus
}

func New(cfg *config.Config, logger *logrus.Logger, db *database.Database, registry prometheus.Registerer) (*Services, error) {
	metrics := NewMetrics(registry)

	var cat catalog.Catalog
	if db != nil && db.PG != nil {
		cat = catalog.NewPostgresCatalog(db.PG, logger)
	} else {
		cat = catalog.NewMemoryCatalog(catalog.SampleItems())
	}

	var store storage.Store
	if db != nil && db.Redis != nil {
		store = storage.NewRedisStore(db.Redis)
	} else {
		store = storage.NewMemoryStore()
	}

	trending := NewTrendingService(store, cat, &cfg.Discovery.Trending, metrics, logger)
	search := NewSearchService(cat, trending, &cfg.Discovery, metrics, logger)
	recommendation := NewRecommendationService(search, trending, &cfg.Discovery, metrics, logger)

	bus := messaging.NewTelemetryBus(cfg, logger)
	telemetry := NewTelemetryService(bus, metrics, logger)

	var auth *AuthService
	if cfg.Auth.Enabled {
		auth = NewAuthService(cfg, logger)
	}

	return &Services{
		Auth:           auth,
		Health:         NewHealthService(db, logger),
		Telemetry:      telemetry,
		Trending:       trending,
		Search:         search,
		Recommendation: recommendation,
		Metrics:        metrics,
		bus:            bus,
	}, nil
}

// Close releases messaging resources.
func (s *Services) Close() error {
	return s.bus.Close()
}
