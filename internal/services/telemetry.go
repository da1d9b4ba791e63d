package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vistream/discovery/internal/messaging"
)

// TelemetryService records click-throughs on surfaced items. Both operations
// are fire-and-forget: they never fail the caller, with or without a bus.
type TelemetryService struct {
	bus     *messaging.TelemetryBus
	metrics *Metrics
	logger  *logrus.Logger
}

func NewTelemetryService(bus *messaging.TelemetryBus, metrics *Metrics, logger *logrus.Logger) *TelemetryService {
	return &TelemetryService{bus: bus, metrics: metrics, logger: logger}
}

func (s *TelemetryService) TrackRecommendationClick(ctx context.Context, itemID, reason string) {
	if s.metrics != nil {
		s.metrics.ClickEvents.WithLabelValues(messaging.ClickKindRecommendation).Inc()
	}
	s.logger.WithFields(logrus.Fields{
		"item_id": itemID,
		"reason":  reason,
	}).Debug("Recommendation click")

	s.bus.Publish(ctx, messaging.ClickEvent{
		Kind:   messaging.ClickKindRecommendation,
		ItemID: itemID,
		Reason: reason,
	})
}

func (s *TelemetryService) TrackSearchClick(ctx context.Context, query, itemID string) {
	if s.metrics != nil {
		s.metrics.ClickEvents.WithLabelValues(messaging.ClickKindSearch).Inc()
	}
	s.logger.WithFields(logrus.Fields{
		"item_id": itemID,
		"query":   query,
	}).Debug("Search result click")

	s.bus.Publish(ctx, messaging.ClickEvent{
		Kind:   messaging.ClickKindSearch,
		ItemID: itemID,
		Query:  query,
	})
}
