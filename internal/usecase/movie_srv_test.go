package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"movie-master/internal/data/entity"
	"movie-master/internal/data/repository"
	"movie-master/internal/dto/request"
	"movie-master/internal/mock"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"
)

type MovieServiceSuite struct {
	suite.Suite
	ctx    context.Context
	movies *mock.MovieRepository
	cache  *mock.MovieCache
	now    time.Time
	srv    *movieService
}

func TestMovieServiceSuite(t *testing.T) {
	suite.Run(t, new(MovieServiceSuite))
}

func (s *MovieServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.movies = mock.NewMovieRepository(
		entity.Document{"_id": "inception", "title": "Inception", "genre": "Sci-Fi", "rating": 8.8, "addedBy": "a@b.com",
			"createdAt": s.now.Add(-2 * time.Hour)},
		entity.Document{"_id": "arrival", "title": "Arrival", "genre": "Sci-Fi", "rating": 7.9, "userEmail": "c@d.com",
			"createdAt": s.now.Add(-time.Hour)},
		entity.Document{"_id": "heat", "title": "Heat", "genre": "Crime", "rating": 8.3, "addedBy": "a@b.com",
			"createdAt": s.now.Add(-3 * time.Hour)},
	)
	s.cache = mock.NewMovieCache()

	repo := &repository.Repository{Movie: s.movies, Watchlist: mock.NewWatchlistRepository()}
	s.srv = NewMovieService(repo, s.cache, zap.NewNop()).(*movieService)
	s.srv.now = func() time.Time { return s.now }
}

func titles(docs []entity.Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d["title"].(string))
	}
	return out
}

func (s *MovieServiceSuite) TestGetMoviesDefaultsToLatest() {
	movies, err := s.srv.GetMovies(s.ctx, &request.MovieQuery{})
	s.Require().NoError(err)
	s.Equal([]string{"Arrival", "Inception", "Heat"}, titles(movies))
	s.Require().Len(s.movies.Filters, 1)
	s.Equal(repository.SortLatest, s.movies.Filters[0].Sort)
}

func (s *MovieServiceSuite) TestGetMoviesPassesFilter() {
	lo := 8.0
	movies, err := s.srv.GetMovies(s.ctx, &request.MovieQuery{Genre: "Sci-Fi", MinRating: &lo, Sort: "rating"})
	s.Require().NoError(err)
	s.Equal([]string{"Inception"}, titles(movies))

	filter := s.movies.Filters[0]
	s.Equal("Sci-Fi", filter.Genre)
	s.Equal(&lo, filter.MinRating)
	s.Equal(repository.SortRating, filter.Sort)
}

func (s *MovieServiceSuite) TestGetMoviesRejectsUnknownSort() {
	_, err := s.srv.GetMovies(s.ctx, &request.MovieQuery{Sort: "oldest"})
	s.ErrorIs(err, ErrValidation)

	var serviceErr *ServiceError
	s.Require().True(errors.As(err, &serviceErr))
	s.Contains(serviceErr.Fields, "sort")
	s.Empty(s.movies.Filters)
}

func (s *MovieServiceSuite) TestGetMoviesStoreError() {
	s.movies.Err = errors.New("socket closed")
	_, err := s.srv.GetMovies(s.ctx, &request.MovieQuery{})
	s.Error(err)
	s.NotErrorIs(err, ErrValidation)
	s.NotErrorIs(err, ErrNotFound)
}

func (s *MovieServiceSuite) TestGetMoviesByOwnerMatchesEitherField() {
	movies, err := s.srv.GetMoviesByOwner(s.ctx, " a@b.com ")
	s.Require().NoError(err)
	s.Equal([]string{"Inception", "Heat"}, titles(movies))

	movies, err = s.srv.GetMoviesByOwner(s.ctx, "c@d.com")
	s.Require().NoError(err)
	s.Equal([]string{"Arrival"}, titles(movies))
}

func (s *MovieServiceSuite) TestGetMoviesByOwnerRequiresEmail() {
	_, err := s.srv.GetMoviesByOwner(s.ctx, "  ")
	s.ErrorIs(err, ErrValidation)
}

func (s *MovieServiceSuite) TestGetMovieByIDReadsThroughCache() {
	movie, err := s.srv.GetMovieByID(s.ctx, "heat")
	s.Require().NoError(err)
	s.Equal("Heat", movie["title"])
	s.Equal(1, s.cache.Misses)
	s.Contains(s.cache.Items, "raw:heat")

	movie, err = s.srv.GetMovieByID(s.ctx, "heat")
	s.Require().NoError(err)
	s.Equal("Heat", movie["title"])
	s.Equal(1, s.cache.Hits)
}

func (s *MovieServiceSuite) TestGetMovieByIDCacheFailureFallsBack() {
	s.cache.GetErr = errors.New("redis down")
	s.cache.SetErr = errors.New("redis down")

	movie, err := s.srv.GetMovieByID(s.ctx, "heat")
	s.Require().NoError(err)
	s.Equal("Heat", movie["title"])
}

func (s *MovieServiceSuite) TestGetMovieByIDNotFound() {
	_, err := s.srv.GetMovieByID(s.ctx, bson.NewObjectID().Hex())
	s.ErrorIs(err, ErrNotFound)
	s.Empty(s.cache.Items)
}

func (s *MovieServiceSuite) TestCreateMovieAssignsIDAndCreatedAt() {
	res, err := s.srv.CreateMovie(s.ctx, entity.Document{"title": "Dune", "rating": 8.0, "createdAt": "yesterday"})
	s.Require().NoError(err)
	s.True(res.Success)

	id, ok := res.InsertedID.(bson.ObjectID)
	s.Require().True(ok)

	stored, err := s.movies.FindByID(s.ctx, id.Hex())
	s.Require().NoError(err)
	s.Equal("Dune", stored["title"])
	s.Equal(s.now, stored["createdAt"])
}

func (s *MovieServiceSuite) TestCreateMovieKeepsSuppliedID() {
	res, err := s.srv.CreateMovie(s.ctx, entity.Document{"_id": "dune-2021", "title": "Dune"})
	s.Require().NoError(err)
	s.Equal("dune-2021", res.InsertedID)

	res, err = s.srv.CreateMovie(s.ctx, entity.Document{"_id": "", "title": "Dune Part Two"})
	s.Require().NoError(err)
	s.IsType(bson.ObjectID{}, res.InsertedID)
}

func (s *MovieServiceSuite) TestCreateMovieRejectsNilBody() {
	_, err := s.srv.CreateMovie(s.ctx, nil)
	s.ErrorIs(err, ErrValidation)
}

func (s *MovieServiceSuite) TestUpdateMovieMergesAndEvicts() {
	_, err := s.srv.GetMovieByID(s.ctx, "heat")
	s.Require().NoError(err)
	s.Require().Contains(s.cache.Items, "raw:heat")

	res, err := s.srv.UpdateMovie(s.ctx, "heat", entity.Document{"_id": "ignored", "rating": 9.0})
	s.Require().NoError(err)
	s.Equal(int64(1), res.ModifiedCount)
	s.NotContains(s.cache.Items, "raw:heat")

	movie, err := s.srv.GetMovieByID(s.ctx, "heat")
	s.Require().NoError(err)
	s.Equal("Heat", movie["title"])
	s.Equal(9.0, movie["rating"])
	s.Equal("heat", movie["_id"])
	s.Equal(s.now, movie["updatedAt"])
}

func (s *MovieServiceSuite) TestUpdateMovieEmptyBody() {
	_, err := s.srv.UpdateMovie(s.ctx, "heat", entity.Document{"_id": "heat"})
	s.ErrorIs(err, ErrValidation)
}

func (s *MovieServiceSuite) TestUpdateMovieNotFound() {
	_, err := s.srv.UpdateMovie(s.ctx, "missing", entity.Document{"rating": 1.0})
	s.ErrorIs(err, ErrNotFound)
	s.Zero(s.cache.Deletes)
}

func (s *MovieServiceSuite) TestDeleteMovie() {
	s.Require().NoError(s.srv.DeleteMovie(s.ctx, "arrival"))
	s.Equal(1, s.cache.Deletes)

	_, err := s.srv.GetMovieByID(s.ctx, "arrival")
	s.ErrorIs(err, ErrNotFound)

	s.ErrorIs(s.srv.DeleteMovie(s.ctx, "arrival"), ErrNotFound)
}

func (s *MovieServiceSuite) TestCacheKeyIgnoresHexCase() {
	oid := bson.NewObjectID()
	s.movies.Docs = append(s.movies.Docs, entity.Document{"_id": oid, "title": "Dune"})
	lower := oid.Hex()
	upper := strings.ToUpper(lower)

	movie, err := s.srv.GetMovieByID(s.ctx, upper)
	s.Require().NoError(err)
	s.Equal("Dune", movie["title"])
	s.Contains(s.cache.Items, "object_id:"+lower)

	_, err = s.srv.GetMovieByID(s.ctx, lower)
	s.Require().NoError(err)
	s.Equal(1, s.cache.Hits)

	s.Require().NoError(s.srv.DeleteMovie(s.ctx, lower))
	s.Empty(s.cache.Items)

	_, err = s.srv.GetMovieByID(s.ctx, upper)
	s.ErrorIs(err, ErrNotFound)
}

func (s *MovieServiceSuite) TestUpdateEvictsOtherHexSpelling() {
	oid := bson.NewObjectID()
	s.movies.Docs = append(s.movies.Docs, entity.Document{"_id": oid, "title": "Dune", "rating": 8.0})
	upper := strings.ToUpper(oid.Hex())

	_, err := s.srv.GetMovieByID(s.ctx, upper)
	s.Require().NoError(err)

	_, err = s.srv.UpdateMovie(s.ctx, oid.Hex(), entity.Document{"rating": 9.0})
	s.Require().NoError(err)

	movie, err := s.srv.GetMovieByID(s.ctx, upper)
	s.Require().NoError(err)
	s.Equal(9.0, movie["rating"])
}

func (s *MovieServiceSuite) TestCreateMovieDuplicateIDConflicts() {
	_, err := s.srv.CreateMovie(s.ctx, entity.Document{"_id": "heat", "title": "Heat (1995)"})
	s.ErrorIs(err, ErrConflict)

	var serviceErr *ServiceError
	s.Require().True(errors.As(err, &serviceErr))
	s.Equal("Movie with this id already exists", serviceErr.Message)
}
