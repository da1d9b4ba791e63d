package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vistream/discovery/internal/database"
)

type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
	CheckedAt  time.Time         `json:"checked_at"`
}

// HealthService reports backing-store reachability. Embedded backends are
// always healthy.
type HealthService struct {
	db     *database.Database
	logger *logrus.Logger
}

func NewHealthService(db *database.Database, logger *logrus.Logger) *HealthService {
	return &HealthService{db: db, logger: logger}
}

func (s *HealthService) Check(ctx context.Context) HealthStatus {
	var catalogPing, storePing func(context.Context) error
	if s.db != nil && s.db.PG != nil {
		catalogPing = s.db.PG.Ping
	}
	if s.db != nil && s.db.Redis != nil {
		storePing = func(ctx context.Context) error {
			return s.db.Redis.Ping(ctx).Err()
		}
	}
	return s.check(ctx, catalogPing, storePing)
}

// check probes the configured external backends. A nil ping means the
// component is served in process. Some backends down is "degraded"; every
// external backend down is "unhealthy".
func (s *HealthService) check(ctx context.Context, catalogPing, storePing func(context.Context) error) HealthStatus {
	status := HealthStatus{
		Status:     "ok",
		Components: make(map[string]string),
		CheckedAt:  time.Now(),
	}

	external, unreachable := 0, 0

	if catalogPing == nil {
		status.Components["catalog"] = "embedded"
	} else {
		external++
		if err := catalogPing(ctx); err != nil {
			s.logger.WithError(err).Warn("Catalog database unreachable")
			status.Components["catalog"] = "unreachable"
			unreachable++
		} else {
			status.Components["catalog"] = "ok"
		}
	}

	if storePing == nil {
		status.Components["store"] = "memory"
	} else {
		external++
		if err := storePing(ctx); err != nil {
			s.logger.WithError(err).Warn("Durable store unreachable")
			status.Components["store"] = "unreachable"
			unreachable++
		} else {
			status.Components["store"] = "ok"
		}
	}

	switch {
	case unreachable == 0:
	case unreachable < external:
		status.Status = "degraded"
	default:
		status.Status = "unhealthy"
	}

	return status
}
