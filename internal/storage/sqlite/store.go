// Package sqlite implements the local news cache on an embedded SQLite
// database. It is the source of truth for everything the application
// displays; the network only refreshes it.
package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go driver, no CGO

	"github.com/tonyawino/News-App/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS news (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	title        TEXT NOT NULL,
	abstract     TEXT NOT NULL,
	publish_date INTEGER NOT NULL,
	category     TEXT NOT NULL,
	author       TEXT NOT NULL,
	source       TEXT NOT NULL,
	url          TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_news_title ON news(title);
CREATE INDEX IF NOT EXISTS idx_news_publish_date ON news(publish_date);
CREATE INDEX IF NOT EXISTS idx_news_category ON news(category);
CREATE INDEX IF NOT EXISTS idx_news_author ON news(author);
CREATE INDEX IF NOT EXISTS idx_news_source ON news(source);

CREATE TABLE IF NOT EXISTS news_image (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	news_id   INTEGER NOT NULL REFERENCES news(id) ON DELETE CASCADE,
	caption   TEXT NOT NULL DEFAULT '',
	copyright TEXT NOT NULL DEFAULT '',
	url       TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_news_image_news_id ON news_image(news_id);
`

// Store is the local news cache. It is safe for concurrent use; every write
// wakes all live watchers so they can re-run their query.
type Store struct {
	db     *sqlx.DB
	logger *slog.Logger

	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

// Open opens (creating if needed) the cache database at path and applies the
// schema. WAL mode and foreign keys are enabled per connection via the DSN so
// image rows cascade with their parent.
func Open(path string, logger *slog.Logger) (*Store, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		path,
	)

	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{
		db:     db,
		logger: logger.With("component", "store"),
		subs:   make(map[chan struct{}]struct{}),
	}, nil
}

// Close closes the underlying database. Live watchers are stopped by
// cancelling their contexts, not by Close.
func (s *Store) Close() error {
	return s.db.Close()
}

// subscribe registers a wakeup channel that receives a tick after every
// write. The returned func removes the registration.
func (s *Store) subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	return ch, func() {
		s.mu.Lock()
		delete(s.subs, ch)
		s.mu.Unlock()
	}
}

// notifyAll wakes every watcher. Sends are non-blocking; a watcher that has
// not consumed its previous tick already re-runs its query.
func (s *Store) notifyAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// UpsertNews inserts or replaces news rows by primary key.
func (s *Store) UpsertNews(ctx context.Context, items []domain.News) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO news (id, title, abstract, publish_date, category, author, source, url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			abstract = excluded.abstract,
			publish_date = excluded.publish_date,
			category = excluded.category,
			author = excluded.author,
			source = excluded.source,
			url = excluded.url`

	for _, n := range items {
		if _, err := tx.ExecContext(ctx, query,
			n.ID,
			n.Title,
			n.Abstract,
			n.PublishDate.UnixMilli(),
			n.Category,
			n.Author,
			n.Source,
			n.URL,
		); err != nil {
			return fmt.Errorf("upsert news %d: %w", n.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.notifyAll()
	return nil
}

// ReplaceImages replaces the image set of each given item with the images it
// carries. Image rows have no stable identity of their own, so insert-or-
// replace for them means replacing the whole set under the owning id.
func (s *Store) ReplaceImages(ctx context.Context, items []domain.News) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, n := range items {
		if _, err := tx.ExecContext(ctx, "DELETE FROM news_image WHERE news_id = ?", n.ID); err != nil {
			return fmt.Errorf("clear images for %d: %w", n.ID, err)
		}
		for _, img := range n.Images {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO news_image (news_id, caption, copyright, url) VALUES (?, ?, ?, ?)",
				n.ID, img.Caption, img.Copyright, img.URL,
			); err != nil {
				return fmt.Errorf("insert image for %d: %w", n.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.notifyAll()
	return nil
}

// InsertNews inserts a single row and returns the assigned id. An item with
// ID 0 gets a fresh autoincrement id; a non-zero ID is kept as-is.
func (s *Store) InsertNews(ctx context.Context, n domain.News) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO news (id, title, abstract, publish_date, category, author, source, url)
		VALUES (NULLIF(?, 0), ?, ?, ?, ?, ?, ?, ?)`,
		n.ID,
		n.Title,
		n.Abstract,
		n.PublishDate.UnixMilli(),
		n.Category,
		n.Author,
		n.Source,
		n.URL,
	)
	if err != nil {
		return 0, fmt.Errorf("insert news: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}

	s.notifyAll()
	return id, nil
}

// InsertImages appends image rows under the given news id.
func (s *Store) InsertImages(ctx context.Context, newsID int64, images []domain.NewsImage) error {
	if len(images) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, img := range images {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO news_image (news_id, caption, copyright, url) VALUES (?, ?, ?, ?)",
			newsID, img.Caption, img.Copyright, img.URL,
		); err != nil {
			return fmt.Errorf("insert image: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.notifyAll()
	return nil
}

// ExistingIDs returns which of the given ids already have a row.
func (s *Store) ExistingIDs(ctx context.Context, ids []int64) (map[int64]struct{}, error) {
	result := make(map[int64]struct{}, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In("SELECT id FROM news WHERE id IN (?)", ids)
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var found []int64
	if err := s.db.SelectContext(ctx, &found, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select existing: %w", err)
	}

	for _, id := range found {
		result[id] = struct{}{}
	}
	return result, nil
}

// DeleteAll removes every news row; image rows cascade.
func (s *Store) DeleteAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM news"); err != nil {
		return fmt.Errorf("delete all: %w", err)
	}
	s.notifyAll()
	return nil
}
