package loader

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/x88a9/edge-lab/internal/api"
	"github.com/x88a9/edge-lab/internal/metrics"
	"github.com/x88a9/edge-lab/internal/model"
)

// ErrPollExhausted is returned when the snapshot never materialized
// within the configured attempt budget.
var ErrPollExhausted = errors.New("analytics snapshot poll exhausted")

// SnapshotPoller waits for an analytics snapshot to materialize after a
// compute has been triggered. It polls at a fixed interval, treats "not
// computed yet" as keep-going and anything else as terminal, and gives
// up after MaxRetries attempts.
type SnapshotPoller struct {
	client     *api.Client
	Interval   time.Duration
	MaxRetries int
}

// NewSnapshotPoller creates a poller with the given cadence.
func NewSnapshotPoller(client *api.Client, interval time.Duration, maxRetries int) *SnapshotPoller {
	return &SnapshotPoller{client: client, Interval: interval, MaxRetries: maxRetries}
}

// Wait polls until the snapshot resolves, the attempt budget runs out
// or the context is canceled. The first attempt fires immediately.
func (p *SnapshotPoller) Wait(ctx context.Context, runID string) (model.AnalyticsSnapshot, error) {
	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	for attempt := 0; attempt < p.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return model.AnalyticsSnapshot{}, ctx.Err()
			case <-ticker.C:
			}
		}

		snapshot, err := p.client.GetAnalytics(ctx, runID)
		switch {
		case err == nil:
			metrics.SnapshotPollsTotal.WithLabelValues("resolved").Inc()
			return snapshot, nil
		case errors.Is(err, api.ErrNotComputed):
			metrics.SnapshotPollsTotal.WithLabelValues("pending").Inc()
		default:
			metrics.SnapshotPollsTotal.WithLabelValues("error").Inc()
			return model.AnalyticsSnapshot{}, err
		}
	}

	metrics.SnapshotPollsTotal.WithLabelValues("exhausted").Inc()
	return model.AnalyticsSnapshot{}, fmt.Errorf("%w: run %s after %d attempts", ErrPollExhausted, runID, p.MaxRetries)
}

// ComputeAndWait triggers a snapshot compute and waits for the result.
func (p *SnapshotPoller) ComputeAndWait(ctx context.Context, runID string) (model.AnalyticsSnapshot, error) {
	if err := p.client.ComputeAnalytics(ctx, runID); err != nil {
		return model.AnalyticsSnapshot{}, fmt.Errorf("failed to trigger compute: %w", err)
	}
	return p.Wait(ctx, runID)
}
