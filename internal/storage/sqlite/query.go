package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"github.com/tonyawino/News-App/internal/domain"
)

// newsOrderBy resolves a sort directive ("column", or "-column" for
// descending) into the matching branch. A directive that matches no branch
// leaves every CASE NULL and the trailing id ASC takes over, so unknown
// directives sort by insertion order instead of failing. The id tiebreaker
// also keeps equal values in a deterministic order.
const newsOrderBy = ` ORDER BY
	CASE WHEN ? = 'title' THEN title END ASC,
	CASE WHEN ? = '-title' THEN title END DESC,
	CASE WHEN ? = 'date' THEN publish_date END ASC,
	CASE WHEN ? = '-date' THEN publish_date END DESC,
	CASE WHEN ? = 'category' THEN category END ASC,
	CASE WHEN ? = '-category' THEN category END DESC,
	CASE WHEN ? = 'source' THEN source END ASC,
	CASE WHEN ? = '-source' THEN source END DESC,
	CASE WHEN ? = 'author' THEN author END ASC,
	CASE WHEN ? = '-author' THEN author END DESC,
	id ASC`

const newsFilter = ` WHERE title LIKE ? OR abstract LIKE ? OR category LIKE ? OR source LIKE ? OR author LIKE ?`

type newsRow struct {
	ID          int64  `db:"id"`
	Title       string `db:"title"`
	Abstract    string `db:"abstract"`
	PublishDate int64  `db:"publish_date"`
	Category    string `db:"category"`
	Author      string `db:"author"`
	Source      string `db:"source"`
	URL         string `db:"url"`
}

type imageRow struct {
	ID        int64  `db:"id"`
	NewsID    int64  `db:"news_id"`
	Caption   string `db:"caption"`
	Copyright string `db:"copyright"`
	URL       string `db:"url"`
}

func (r newsRow) toDomain(images []domain.NewsImage) domain.News {
	return domain.News{
		ID:          r.ID,
		Title:       r.Title,
		Abstract:    r.Abstract,
		PublishDate: time.UnixMilli(r.PublishDate),
		Category:    r.Category,
		Author:      r.Author,
		Source:      r.Source,
		URL:         r.URL,
		Images:      images,
	}
}

// QueryAll returns every news item sorted by the given directive.
func (s *Store) QueryAll(ctx context.Context, sortKey string) ([]domain.News, error) {
	args := make([]any, 10)
	for i := range args {
		args[i] = sortKey
	}

	var rows []newsRow
	if err := s.db.SelectContext(ctx, &rows, "SELECT * FROM news"+newsOrderBy, args...); err != nil {
		return nil, fmt.Errorf("select news: %w", err)
	}

	return s.attachImages(ctx, rows)
}

// QueryFiltered returns the news items whose title, abstract, category,
// source or author contains q (case-insensitive), sorted by the directive.
func (s *Store) QueryFiltered(ctx context.Context, q, sortKey string) ([]domain.News, error) {
	pattern := "%" + q + "%"
	args := make([]any, 0, 15)
	for i := 0; i < 5; i++ {
		args = append(args, pattern)
	}
	for i := 0; i < 10; i++ {
		args = append(args, sortKey)
	}

	var rows []newsRow
	if err := s.db.SelectContext(ctx, &rows, "SELECT * FROM news"+newsFilter+newsOrderBy, args...); err != nil {
		return nil, fmt.Errorf("select filtered news: %w", err)
	}

	return s.attachImages(ctx, rows)
}

// QueryByID returns one item with its images, or nil when no row exists.
func (s *Store) QueryByID(ctx context.Context, id int64) (*domain.News, error) {
	var row newsRow
	err := s.db.GetContext(ctx, &row, "SELECT * FROM news WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select news by id: %w", err)
	}

	items, err := s.attachImages(ctx, []newsRow{row})
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}

// attachImages loads the image rows of the given news rows in one query and
// maps everything to domain items, preserving image insertion order.
func (s *Store) attachImages(ctx context.Context, rows []newsRow) ([]domain.News, error) {
	if len(rows) == 0 {
		return []domain.News{}, nil
	}

	ids := lo.Map(rows, func(r newsRow, _ int) int64 { return r.ID })

	query, args, err := sqlx.In("SELECT * FROM news_image WHERE news_id IN (?) ORDER BY news_id, id", ids)
	if err != nil {
		return nil, fmt.Errorf("build image query: %w", err)
	}

	var imgRows []imageRow
	if err := s.db.SelectContext(ctx, &imgRows, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select images: %w", err)
	}

	byNews := make(map[int64][]domain.NewsImage, len(rows))
	for _, img := range imgRows {
		byNews[img.NewsID] = append(byNews[img.NewsID], domain.NewsImage{
			Caption:   img.Caption,
			Copyright: img.Copyright,
			URL:       img.URL,
		})
	}

	return lo.Map(rows, func(r newsRow, _ int) domain.News {
		return r.toDomain(byNews[r.ID])
	}), nil
}
