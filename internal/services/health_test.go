package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheck_Statuses(t *testing.T) {
	ctx := context.Background()
	svc := NewHealthService(nil, testLogger())

	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	t.Run("embedded backends report ok", func(t *testing.T) {
		status := svc.check(ctx, nil, nil)
		assert.Equal(t, "ok", status.Status)
		assert.Equal(t, "embedded", status.Components["catalog"])
		assert.Equal(t, "memory", status.Components["store"])
	})

	t.Run("reachable backends report ok", func(t *testing.T) {
		status := svc.check(ctx, up, up)
		assert.Equal(t, "ok", status.Status)
		assert.Equal(t, "ok", status.Components["catalog"])
		assert.Equal(t, "ok", status.Components["store"])
	})

	t.Run("one backend down is degraded", func(t *testing.T) {
		status := svc.check(ctx, down, up)
		assert.Equal(t, "degraded", status.Status)
		assert.Equal(t, "unreachable", status.Components["catalog"])
		assert.Equal(t, "ok", status.Components["store"])
	})

	t.Run("every external backend down is unhealthy", func(t *testing.T) {
		status := svc.check(ctx, down, down)
		assert.Equal(t, "unhealthy", status.Status)
		assert.Equal(t, "unreachable", status.Components["catalog"])
		assert.Equal(t, "unreachable", status.Components["store"])
	})

	t.Run("sole configured backend down is unhealthy", func(t *testing.T) {
		status := svc.check(ctx, nil, down)
		assert.Equal(t, "unhealthy", status.Status)
		assert.Equal(t, "embedded", status.Components["catalog"])
		assert.Equal(t, "unreachable", status.Components["store"])
	})
}
