package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/tonyawino/News-App/internal/domain"
)

type fakeRepository struct {
	getNewsCalls    int
	getByIDCalls    int
	createCalls     int
	lastQuery       string
	lastOrderBy     domain.OrderBy
	lastCreated     domain.News
	createResult    domain.Result[domain.News]
}

func (f *fakeRepository) GetNews(ctx context.Context, query string, orderBy domain.OrderBy) <-chan domain.Result[[]domain.News] {
	f.getNewsCalls++
	f.lastQuery = query
	f.lastOrderBy = orderBy
	out := make(chan domain.Result[[]domain.News], 1)
	out <- domain.Loading[[]domain.News]()
	close(out)
	return out
}

func (f *fakeRepository) GetNewsByID(ctx context.Context, id int64) <-chan domain.Result[*domain.News] {
	f.getByIDCalls++
	out := make(chan domain.Result[*domain.News], 1)
	out <- domain.Loading[*domain.News]()
	close(out)
	return out
}

func (f *fakeRepository) CreateNews(ctx context.Context, item domain.News) <-chan domain.Result[domain.News] {
	f.createCalls++
	f.lastCreated = item
	out := make(chan domain.Result[domain.News], 1)
	out <- f.createResult
	close(out)
	return out
}

type NewsServiceTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo *fakeRepository
	svc  *NewsService
}

func (s *NewsServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = &fakeRepository{}
	s.svc = NewNewsService(s.repo)
}

func TestNewsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NewsServiceTestSuite))
}

func (s *NewsServiceTestSuite) TestGetNewsForwardsQueryAndOrder() {
	orderBy := domain.NewOrderBy(domain.OrderByAuthor)

	<-s.svc.GetNews(s.ctx, "ukraine", orderBy)

	s.Equal(1, s.repo.getNewsCalls)
	s.Equal("ukraine", s.repo.lastQuery)
	s.Equal(orderBy, s.repo.lastOrderBy)
}

func (s *NewsServiceTestSuite) TestCreateNewsRejectsBlankFields() {
	out := s.svc.CreateNews(s.ctx,
		"title", "  ", time.Now(), "category", "", "source", "url", nil)

	res, ok := <-out
	s.Require().True(ok)
	s.Equal(domain.KindFailure, res.Kind)
	s.False(res.HasData)

	var validationErr *domain.ValidationError
	s.Require().ErrorAs(res.Err, &validationErr)
	s.ElementsMatch([]string{"abstract", "author"}, validationErr.Fields)

	_, open := <-out
	s.False(open, "validation failure must be the only emission")

	s.Zero(s.repo.createCalls, "storage must not be touched on invalid input")
}

func (s *NewsServiceTestSuite) TestCreateNewsForwardsValidInput() {
	publishDate := time.Date(2022, 3, 2, 0, 0, 0, 0, time.UTC)
	images := []domain.NewsImage{{Caption: "c", URL: "https://example.com/i.jpg"}}
	s.repo.createResult = domain.Success(domain.News{ID: 9, Title: "title"})

	out := s.svc.CreateNews(s.ctx,
		"title", "abstract", publishDate, "category", "author", "source", "url", images)

	res := <-out
	s.Equal(domain.KindSuccess, res.Kind)

	s.Equal(1, s.repo.createCalls)
	s.Equal(int64(0), s.repo.lastCreated.ID, "a new item must reach the store without an id")
	s.Equal("title", s.repo.lastCreated.Title)
	s.Equal(publishDate, s.repo.lastCreated.PublishDate)
	s.Equal(images, s.repo.lastCreated.Images)
}
