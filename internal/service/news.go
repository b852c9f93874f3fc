// Package service holds the use cases the presentation layer calls.
package service

import (
	"context"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/tonyawino/News-App/internal/domain"
)

// NewsRepository is the data access layer the use cases sit on.
type NewsRepository interface {
	GetNews(ctx context.Context, query string, orderBy domain.OrderBy) <-chan domain.Result[[]domain.News]
	GetNewsByID(ctx context.Context, id int64) <-chan domain.Result[*domain.News]
	CreateNews(ctx context.Context, item domain.News) <-chan domain.Result[domain.News]
}

// NewsService validates input and forwards to the repository.
type NewsService struct {
	repo NewsRepository
}

func NewNewsService(repo NewsRepository) *NewsService {
	return &NewsService{repo: repo}
}

// GetNews streams the news list for query and orderBy. A blank query means
// no filter.
func (s *NewsService) GetNews(ctx context.Context, query string, orderBy domain.OrderBy) <-chan domain.Result[[]domain.News] {
	return s.repo.GetNews(ctx, query, orderBy)
}

// GetNewsByID streams the state of one item.
func (s *NewsService) GetNewsByID(ctx context.Context, id int64) <-chan domain.Result[*domain.News] {
	return s.repo.GetNewsByID(ctx, id)
}

// CreateNews validates the required text fields and persists a new item.
// Blank fields short-circuit with a single ValidationError failure before
// any storage access.
func (s *NewsService) CreateNews(
	ctx context.Context,
	title, abstract string,
	publishDate time.Time,
	category, author, source, url string,
	images []domain.NewsImage,
) <-chan domain.Result[domain.News] {
	required := map[string]string{
		"title":    title,
		"abstract": abstract,
		"category": category,
		"author":   author,
		"source":   source,
		"url":      url,
	}

	blank := lo.Filter(lo.Keys(required), func(name string, _ int) bool {
		return strings.TrimSpace(required[name]) == ""
	})
	if len(blank) > 0 {
		out := make(chan domain.Result[domain.News], 1)
		out <- domain.Failure[domain.News](&domain.ValidationError{Fields: blank})
		close(out)
		return out
	}

	return s.repo.CreateNews(ctx, domain.News{
		Title:       title,
		Abstract:    abstract,
		PublishDate: publishDate,
		Category:    category,
		Author:      author,
		Source:      source,
		URL:         url,
		Images:      images,
	})
}
