package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/vistream/discovery/internal/services"
	"github.com/vistream/discovery/internal/validation"
)

type Handlers struct {
	Health         *HealthHandler
	Search         *SearchHandler
	Recommendation *RecommendationHandler
	Trending       *TrendingHandler
	Telemetry      *TelemetryHandler
}

func New(logger *logrus.Logger, services *services.Services) (*Handlers, error) {
	validator, err := validation.NewSchemaValidator()
	if err != nil {
		return nil, err
	}

	return &Handlers{
		Health:         NewHealthHandler(logger, services.Health),
		Search:         NewSearchHandler(services.Search, validator, logger),
		Recommendation: NewRecommendationHandler(services.Recommendation, logger),
		Trending:       NewTrendingHandler(services.Trending, logger),
		Telemetry:      NewTelemetryHandler(services.Telemetry, logger),
	}, nil
}
