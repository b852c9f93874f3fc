package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/tonyawino/News-App/internal/domain"
	"github.com/tonyawino/News-App/internal/metrics"
)

// Refresh performs one cache refresh: connectivity check, a single fetch
// from the remote API, then a write-through of items and images. There is no
// retry here; callers that want periodic refreshes schedule them.
func (r *NewsRepository) Refresh(ctx context.Context) error {
	start := time.Now()

	stats, err := r.refresh(ctx)

	duration := time.Since(start)
	metrics.RefreshDuration.Observe(duration.Seconds())

	if err != nil {
		metrics.RefreshTotal.WithLabelValues("failure").Inc()
		r.logger.Warn("refresh failed", "error", err, "duration", duration)
		return err
	}

	metrics.RefreshTotal.WithLabelValues("success").Inc()
	metrics.NewsUpserted.Add(float64(stats.Fetched))
	r.logger.Info("refresh completed",
		"fetched", stats.Fetched,
		"created", stats.Created,
		"updated", stats.Updated,
		"published", stats.Published,
		"errors", stats.Errors,
		"duration", duration,
	)
	return nil
}

func (r *NewsRepository) refresh(ctx context.Context) (*domain.RefreshStats, error) {
	if !r.connectivity.Reachable(ctx) {
		return nil, domain.ErrNoConnectivity
	}

	items, err := r.source.FetchPopular(ctx)
	if err != nil {
		return nil, err
	}

	// A cancelled caller must not write to the cache.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats := &domain.RefreshStats{Fetched: len(items)}

	// Only needed to tag change events; skipped entirely without a publisher.
	var existing map[int64]struct{}
	if r.publisher != nil {
		ids := lo.Map(items, func(n domain.News, _ int) int64 { return n.ID })
		existing, err = r.store.ExistingIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("existing ids: %w", err)
		}
	}

	if err := r.store.UpsertNews(ctx, items); err != nil {
		return nil, fmt.Errorf("upsert news: %w", err)
	}
	if err := r.store.ReplaceImages(ctx, items); err != nil {
		return nil, fmt.Errorf("upsert images: %w", err)
	}

	if r.publisher != nil {
		for i := range items {
			_, exists := existing[items[i].ID]
			if exists {
				stats.Updated++
			} else {
				stats.Created++
			}
			if err := r.publisher.Publish(ctx, &items[i], !exists); err != nil {
				stats.Errors++
				r.logger.Warn("publish change event failed", "id", items[i].ID, "error", err)
				continue
			}
			stats.Published++
		}
	}

	return stats, nil
}
