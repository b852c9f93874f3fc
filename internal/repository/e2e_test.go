package repository_test

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/tonyawino/News-App/internal/domain"
	"github.com/tonyawino/News-App/internal/repository"
	"github.com/tonyawino/News-App/internal/repository/mocks"
	"github.com/tonyawino/News-App/internal/storage/sqlite"
)

// EndToEndTestSuite runs the repository against a real on-disk store, with
// only the network side mocked out.
type EndToEndTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	store        *sqlite.Store
	source       *mocks.MockSource
	connectivity *mocks.MockConnectivity

	repo *repository.NewsRepository
}

func (s *EndToEndTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	store, err := sqlite.Open(filepath.Join(s.T().TempDir(), "news.db"), logger)
	s.Require().NoError(err)
	s.store = store

	s.source = mocks.NewMockSource(s.ctrl)
	s.connectivity = mocks.NewMockConnectivity(s.ctrl)

	s.repo = repository.New(store, s.source, s.connectivity, nil, logger)
}

func (s *EndToEndTestSuite) TearDownTest() {
	s.NoError(s.store.Close())
	s.ctrl.Finish()
}

func TestEndToEndTestSuite(t *testing.T) {
	suite.Run(t, new(EndToEndTestSuite))
}

func randomItems(n int) []domain.News {
	rng := rand.New(rand.NewSource(7))
	items := make([]domain.News, n)
	for i := range items {
		items[i] = domain.News{
			ID:          int64(i + 1),
			Title:       fmt.Sprintf("headline %04d", rng.Intn(10000)),
			Abstract:    "abstract",
			PublishDate: time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, rng.Intn(30)),
			Category:    "world",
			Author:      "By Somebody",
			Source:      "New York Times",
			URL:         fmt.Sprintf("https://www.nytimes.com/story-%d.html", i+1),
		}
	}
	return items
}

// awaitTerminal drains emissions until a terminal result with want items
// arrives.
func (s *EndToEndTestSuite) awaitTerminal(out <-chan domain.Result[[]domain.News], want int) domain.Result[[]domain.News] {
	deadline := time.After(5 * time.Second)
	for {
		select {
		case res, ok := <-out:
			s.Require().True(ok, "stream closed before a terminal result")
			if res.Terminal() && len(res.Data) == want {
				return res
			}
		case <-deadline:
			s.Require().FailNow("timed out waiting for terminal result")
			return domain.Result[[]domain.News]{}
		}
	}
}

func (s *EndToEndTestSuite) TestGetNews_MergesFetchIntoSeededCacheSorted() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seeded := randomItems(50)
	s.Require().NoError(s.store.UpsertNews(ctx, seeded))

	fetched := []domain.News{
		{ID: 51, Title: "zz late breaking", Abstract: "abstract", PublishDate: time.Date(2022, 3, 2, 0, 0, 0, 0, time.UTC), Category: "world", Author: "By Somebody", Source: "New York Times", URL: "https://www.nytimes.com/story-51.html"},
		{ID: 52, Title: "aa quiet update", Abstract: "abstract", PublishDate: time.Date(2022, 3, 2, 0, 0, 0, 0, time.UTC), Category: "world", Author: "By Somebody", Source: "New York Times", URL: "https://www.nytimes.com/story-52.html"},
	}

	s.connectivity.EXPECT().Reachable(gomock.Any()).Return(true)
	s.source.EXPECT().FetchPopular(gomock.Any()).Return(fetched, nil)

	out := s.repo.GetNews(ctx, "", domain.OrderBy{Column: domain.OrderByTitle, Direction: domain.Descending})

	first := <-out
	s.Equal(domain.KindLoading, first.Kind)
	s.False(first.HasData)

	final := s.awaitTerminal(out, 52)
	s.Equal(domain.KindSuccess, final.Kind)

	var want []string
	for _, n := range append(append([]domain.News{}, seeded...), fetched...) {
		want = append(want, n.Title)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(want)))

	var got []string
	for _, n := range final.Data {
		got = append(got, n.Title)
	}
	s.Equal(want, got)
}

func (s *EndToEndTestSuite) TestGetNews_OfflineServesSeededCache() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seeded := randomItems(10)
	s.Require().NoError(s.store.UpsertNews(ctx, seeded))

	s.connectivity.EXPECT().Reachable(gomock.Any()).Return(false)

	out := s.repo.GetNews(ctx, "", domain.DefaultOrder())

	final := s.awaitTerminal(out, 10)
	s.Equal(domain.KindFailure, final.Kind)
	s.ErrorIs(final.Err, domain.ErrNoConnectivity)
	s.True(final.HasData)
}

func (s *EndToEndTestSuite) TestCreateNews_ShowsUpInLiveList() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.connectivity.EXPECT().Reachable(gomock.Any()).Return(false).AnyTimes()

	list := s.repo.GetNews(ctx, "", domain.DefaultOrder())
	s.awaitTerminal(list, 0)

	item := domain.News{
		Title:       "written locally",
		Abstract:    "abstract",
		PublishDate: time.Date(2022, 3, 2, 0, 0, 0, 0, time.UTC),
		Category:    "local",
		Author:      "By Me",
		Source:      "Me",
		URL:         "https://example.com/mine",
		Images:      []domain.NewsImage{{Caption: "mine", URL: "https://example.com/mine.jpg"}},
	}

	created := s.repo.CreateNews(ctx, item)

	s.Equal(domain.KindLoading, (<-created).Kind)
	res := <-created
	s.Require().Equal(domain.KindSuccess, res.Kind)
	s.Greater(res.Data.ID, int64(0))
	s.Len(res.Data.Images, 1)

	// The open list stream sees the write without another fetch.
	final := s.awaitTerminal(list, 1)
	s.Equal(domain.KindFailure, final.Kind)
	s.Equal("written locally", final.Data[0].Title)
}
