package sqlite

import (
	"context"

	"github.com/tonyawino/News-App/internal/domain"
)

// WatchAll is the live version of QueryAll: it emits the current result set
// immediately and again after every write that changes it, until ctx is
// cancelled. The channel holds only the latest value; slow consumers skip
// intermediate states rather than stall the store.
func (s *Store) WatchAll(ctx context.Context, sortKey string) <-chan []domain.News {
	return s.watchList(ctx, func(ctx context.Context) ([]domain.News, error) {
		return s.QueryAll(ctx, sortKey)
	})
}

// WatchFiltered is the live version of QueryFiltered.
func (s *Store) WatchFiltered(ctx context.Context, q, sortKey string) <-chan []domain.News {
	return s.watchList(ctx, func(ctx context.Context) ([]domain.News, error) {
		return s.QueryFiltered(ctx, q, sortKey)
	})
}

func (s *Store) watchList(ctx context.Context, query func(context.Context) ([]domain.News, error)) <-chan []domain.News {
	out := make(chan []domain.News, 1)
	wake, unsubscribe := s.subscribe()

	go func() {
		defer close(out)
		defer unsubscribe()

		var last []domain.News
		first := true

		for {
			items, err := query(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				s.logger.Error("live query failed", "error", err)
			} else if first || !domain.EqualLists(last, items) {
				first = false
				last = items
				push(out, items)
			}

			select {
			case <-ctx.Done():
				return
			case <-wake:
			}
		}
	}()

	return out
}

// WatchByID emits the current state of one row (nil when absent) and again
// after every write that changes it, until ctx is cancelled.
func (s *Store) WatchByID(ctx context.Context, id int64) <-chan *domain.News {
	out := make(chan *domain.News, 1)
	wake, unsubscribe := s.subscribe()

	go func() {
		defer close(out)
		defer unsubscribe()

		var last *domain.News
		first := true

		for {
			item, err := s.QueryByID(ctx, id)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				s.logger.Error("live query failed", "id", id, "error", err)
			} else if first || !sameItem(last, item) {
				first = false
				last = item
				push(out, item)
			}

			select {
			case <-ctx.Done():
				return
			case <-wake:
			}
		}
	}()

	return out
}

func sameItem(a, b *domain.News) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// push replaces any undelivered value with the newest one. The watcher
// goroutine is the only sender, so the drain-then-send cannot race another
// producer.
func push[T any](ch chan T, v T) {
	select {
	case ch <- v:
	default:
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- v:
		default:
		}
	}
}
