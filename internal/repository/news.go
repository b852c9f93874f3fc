// Package repository reconciles the remote news API with the local cache.
//
// The cache is the source of truth for everything a caller sees; the network
// is a best-effort refresh. Every operation emits a stream of states:
// loading, loading with the current cached value, then a terminal success or
// failure that keeps re-emitting as the cache changes underneath it.
package repository

import (
	"context"
	"log/slog"
	"strings"

	"github.com/tonyawino/News-App/internal/domain"
)

// NewsRepository is the data access layer for news items.
type NewsRepository struct {
	store        Store
	source       Source
	connectivity Connectivity
	publisher    Publisher
	logger       *slog.Logger
}

// New creates a NewsRepository. The publisher may be nil to disable change
// events.
func New(
	store Store,
	source Source,
	connectivity Connectivity,
	publisher Publisher,
	logger *slog.Logger,
) *NewsRepository {
	return &NewsRepository{
		store:        store,
		source:       source,
		connectivity: connectivity,
		publisher:    publisher,
		logger:       logger.With("component", "repository"),
	}
}

// GetNews streams the news list matching query (blank means no filter),
// sorted by orderBy, while refreshing the cache from the remote API exactly
// once.
//
// Emission order: Loading with no data, Loading with the current cache
// contents, then one terminal Success or Failure. The terminal kind repeats
// with fresh data whenever the cache changes, until ctx is cancelled. The
// channel closes on cancellation.
func (r *NewsRepository) GetNews(ctx context.Context, query string, orderBy domain.OrderBy) <-chan domain.Result[[]domain.News] {
	out := make(chan domain.Result[[]domain.News])

	go func() {
		defer close(out)

		if !emit(ctx, out, domain.Loading[[]domain.News]()) {
			return
		}

		sortKey := orderBy.SortKey()
		q := strings.TrimSpace(query)

		var snapshots <-chan []domain.News
		if q != "" {
			snapshots = r.store.WatchFiltered(ctx, q, sortKey)
		} else {
			snapshots = r.store.WatchAll(ctx, sortKey)
		}

		var current []domain.News
		select {
		case <-ctx.Done():
			return
		case first, ok := <-snapshots:
			if !ok {
				return
			}
			current = first
		}

		if !emit(ctx, out, domain.LoadingWith(current)) {
			return
		}

		// One network attempt per invocation. The live subscription keeps
		// streaming while it runs, so the write-through shows up through the
		// same channel.
		refreshDone := make(chan error, 1)
		go func() {
			refreshDone <- r.Refresh(ctx)
		}()

		terminal := false
		var refreshErr error

		for {
			select {
			case <-ctx.Done():
				return
			case err := <-refreshDone:
				refreshDone = nil
				terminal = true
				refreshErr = err
				if !emit(ctx, out, listResult(refreshErr, current)) {
					return
				}
			case items, ok := <-snapshots:
				if !ok {
					return
				}
				current = items
				next := domain.LoadingWith(current)
				if terminal {
					next = listResult(refreshErr, current)
				}
				if !emit(ctx, out, next) {
					return
				}
			}
		}
	}()

	return out
}

// GetNewsByID streams the current state of one item straight from the cache.
// A missing row is a NotFoundError failure; the stream stays open and flips
// between found and not-found as the row comes and goes.
func (r *NewsRepository) GetNewsByID(ctx context.Context, id int64) <-chan domain.Result[*domain.News] {
	out := make(chan domain.Result[*domain.News])

	go func() {
		defer close(out)

		if !emit(ctx, out, domain.Loading[*domain.News]()) {
			return
		}

		snapshots := r.store.WatchByID(ctx, id)
		for {
			select {
			case <-ctx.Done():
				return
			case item, ok := <-snapshots:
				if !ok {
					return
				}
				var next domain.Result[*domain.News]
				if item == nil {
					next = domain.Failure[*domain.News](&domain.NotFoundError{ID: id})
				} else {
					next = domain.Success(item)
				}
				if !emit(ctx, out, next) {
					return
				}
			}
		}
	}()

	return out
}

// CreateNews persists a new item (ID 0) and streams the write-then-read-back
// outcome. A rejected insert fails with the original, unmodified item as the
// payload; a successful insert is followed by a live read of the new row.
func (r *NewsRepository) CreateNews(ctx context.Context, item domain.News) <-chan domain.Result[domain.News] {
	out := make(chan domain.Result[domain.News])

	go func() {
		defer close(out)

		if !emit(ctx, out, domain.Loading[domain.News]()) {
			return
		}

		id, err := r.store.InsertNews(ctx, item)
		if err != nil || id < 1 {
			if err != nil {
				r.logger.Error("insert news failed", "error", err)
			}
			emit(ctx, out, domain.FailureWith(domain.ErrCreateFailed, item))
			return
		}

		if err := r.store.InsertImages(ctx, id, item.Images); err != nil {
			r.logger.Error("insert images failed", "news_id", id, "error", err)
			emit(ctx, out, domain.FailureWith(domain.ErrCreateFailed, item))
			return
		}

		snapshots := r.store.WatchByID(ctx, id)
		for {
			select {
			case <-ctx.Done():
				return
			case created, ok := <-snapshots:
				if !ok {
					return
				}
				var next domain.Result[domain.News]
				if created == nil {
					next = domain.FailureWith(domain.ErrCreateFailed, item)
				} else {
					next = domain.Success(*created)
				}
				if !emit(ctx, out, next) {
					return
				}
			}
		}
	}()

	return out
}

// DeleteAll wipes the cache. Images cascade with their parents.
func (r *NewsRepository) DeleteAll(ctx context.Context) error {
	return r.store.DeleteAll(ctx)
}

func listResult(err error, data []domain.News) domain.Result[[]domain.News] {
	if err != nil {
		return domain.FailureWith(err, data)
	}
	return domain.Success(data)
}

// emit delivers one state, or reports false when the subscriber is gone.
func emit[T any](ctx context.Context, out chan<- domain.Result[T], res domain.Result[T]) bool {
	select {
	case out <- res:
		return true
	case <-ctx.Done():
		return false
	}
}
