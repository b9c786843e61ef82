package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"movie-master/internal/data/cache"
	"movie-master/internal/data/entity"
	"movie-master/internal/data/repository"
	"movie-master/internal/dto/request"
	"movie-master/internal/dto/response"
	"movie-master/pkg/utils"

	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context, query *request.MovieQuery) ([]entity.Document, error)
	GetMoviesByOwner(ctx context.Context, email string) ([]entity.Document, error)
	GetMovieByID(ctx context.Context, movieID string) (entity.Document, error)
	CreateMovie(ctx context.Context, body entity.Document) (*response.InsertResponse, error)
	UpdateMovie(ctx context.Context, movieID string, body entity.Document) (*response.UpdateResponse, error)
	DeleteMovie(ctx context.Context, movieID string) error
}

type movieService struct {
	repo  *repository.Repository
	cache cache.MovieCache
	log   *zap.Logger
	now   func() time.Time
}

func NewMovieService(
	repo *repository.Repository,
	movieCache cache.MovieCache,
	log *zap.Logger,
) MovieService {
	if movieCache == nil {
		movieCache = cache.Noop{}
	}
	return &movieService{
		repo:  repo,
		cache: movieCache,
		log:   log.With(zap.String("service", "movie")),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *movieService) GetMovies(ctx context.Context, query *request.MovieQuery) ([]entity.Document, error) {
	if errs := utils.ValidateStruct(query); len(errs) > 0 {
		s.log.Warn("List movies validation failed", zap.Any("errors", errs))
		return nil, validationError("Invalid query parameters", errs)
	}

	filter := repository.MovieFilter{
		Search:    query.Search,
		Genre:     query.Genre,
		Genres:    query.Genres,
		MinRating: query.MinRating,
		MaxRating: query.MaxRating,
		Language:  query.Language,
		Country:   query.Country,
		Sort:      repository.SortOrder(query.Sort),
	}
	if filter.Sort == "" {
		filter.Sort = repository.SortLatest
	}

	movies, err := s.repo.Movie.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get movies: %w", err)
	}

	s.log.Info("Movies retrieved",
		zap.Int("count", len(movies)),
		zap.String("sort", string(filter.Sort)),
	)

	return movies, nil
}

func (s *movieService) GetMoviesByOwner(ctx context.Context, email string) ([]entity.Document, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, validationError("Email is required", map[string]string{"email": "This field is required"})
	}

	movies, err := s.repo.Movie.FindAll(ctx, repository.MovieFilter{
		Owner: email,
		Sort:  repository.SortLatest,
	})
	if err != nil {
		return nil, fmt.Errorf("get movies by owner: %w", err)
	}

	s.log.Info("Collection retrieved",
		zap.String("email", email),
		zap.Int("count", len(movies)),
	)

	return movies, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (entity.Document, error) {
	// only the preferred interpretation is read from the cache; a raw key that
	// looks like an ObjectID is always read from the store
	primary := repository.ResolveKeys(movieID)[0].CacheKey()
	if cached, ok, err := s.cache.Get(ctx, primary); err != nil {
		s.log.Warn("Movie cache read failed", zap.Error(err), zap.String("movie_id", movieID))
	} else if ok {
		return cached, nil
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get movie by id: %w", err)
	}
	if movie == nil {
		return nil, notFoundError("Movie not found")
	}

	if key, ok := repository.KeyOf(movie.ID()); ok {
		if err := s.cache.Set(ctx, key.CacheKey(), movie); err != nil {
			s.log.Warn("Movie cache write failed", zap.Error(err), zap.String("movie_id", movieID))
		}
	}

	return movie, nil
}

func (s *movieService) CreateMovie(ctx context.Context, body entity.Document) (*response.InsertResponse, error) {
	if body == nil {
		return nil, validationError("Request body must be a JSON object", nil)
	}

	movie := body.Clone()
	if !movie.HasUsableID() {
		delete(movie, entity.FieldID)
	}
	movie[entity.MovieFieldCreatedAt] = s.now()

	insertedID, err := s.repo.Movie.Create(ctx, movie)
	if errors.Is(err, repository.ErrDuplicateID) {
		return nil, conflictError("Movie with this id already exists")
	}
	if err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.Any("movie_id", insertedID),
		zap.Any("title", movie[entity.MovieFieldTitle]),
	)

	return response.NewInsertResponse(insertedID), nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, body entity.Document) (*response.UpdateResponse, error) {
	fields := body.WithoutID()
	if len(fields) == 0 {
		return nil, validationError("Nothing to update", nil)
	}
	fields[entity.MovieFieldUpdatedAt] = s.now()

	matched, modified, err := s.repo.Movie.Update(ctx, movieID, fields)
	if err != nil {
		return nil, fmt.Errorf("update movie: %w", err)
	}
	if !matched {
		return nil, notFoundError("Movie not found")
	}

	s.evict(ctx, movieID)

	s.log.Info("Movie updated",
		zap.String("movie_id", movieID),
		zap.Int64("modified", modified),
	)

	return response.NewUpdateResponse(modified), nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	deleted, err := s.repo.Movie.Delete(ctx, movieID)
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	if !deleted {
		return notFoundError("Movie not found")
	}

	s.evict(ctx, movieID)

	return nil
}

// evict drops every cache entry movieID could have been stored under.
func (s *movieService) evict(ctx context.Context, movieID string) {
	for _, key := range repository.ResolveKeys(movieID) {
		if err := s.cache.Delete(ctx, key.CacheKey()); err != nil {
			s.log.Warn("Movie cache eviction failed",
				zap.Error(err),
				zap.String("movie_id", movieID),
				zap.Stringer("key_kind", key.Kind),
			)
		}
	}
}
