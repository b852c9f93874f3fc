package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/tonyawino/News-App/internal/domain"
)

// Store is the local news cache. Watch methods are live queries: they emit
// the current result immediately and again after every relevant write, until
// the context is cancelled.
type Store interface {
	WatchAll(ctx context.Context, sortKey string) <-chan []domain.News
	WatchFiltered(ctx context.Context, query, sortKey string) <-chan []domain.News
	WatchByID(ctx context.Context, id int64) <-chan *domain.News

	UpsertNews(ctx context.Context, items []domain.News) error
	ReplaceImages(ctx context.Context, items []domain.News) error
	InsertNews(ctx context.Context, item domain.News) (int64, error)
	InsertImages(ctx context.Context, newsID int64, images []domain.NewsImage) error
	ExistingIDs(ctx context.Context, ids []int64) (map[int64]struct{}, error)
	DeleteAll(ctx context.Context) error
}

// Source fetches the bounded popular news list from the remote API.
type Source interface {
	FetchPopular(ctx context.Context) ([]domain.News, error)
}

// Connectivity reports whether the network is currently reachable.
type Connectivity interface {
	Reachable(ctx context.Context) bool
}

// Publisher broadcasts cache changes to external consumers.
type Publisher interface {
	Publish(ctx context.Context, item *domain.News, isNew bool) error
	Close() error
}
