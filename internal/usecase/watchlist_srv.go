package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"movie-master/internal/data/entity"
	"movie-master/internal/data/repository"
	"movie-master/internal/dto/request"
	"movie-master/internal/dto/response"
	"movie-master/pkg/utils"

	"go.uber.org/zap"
)

type WatchlistService interface {
	AddToWatchlist(ctx context.Context, req *request.WatchlistRequest) (*response.InsertResponse, error)
	GetWatchlist(ctx context.Context, email string) ([]entity.Document, error)
	// RemoveFromWatchlist deletes entry id. An empty email skips the owner check.
	RemoveFromWatchlist(ctx context.Context, entryID, email string) error
}

type watchlistService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewWatchlistService(repo *repository.Repository, log *zap.Logger) WatchlistService {
	return &watchlistService{
		repo: repo,
		log:  log.With(zap.String("service", "watchlist")),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// AddToWatchlist rejects a second entry for the same user and movie with a
// conflict. The check and the insert are separate round trips.
func (s *watchlistService) AddToWatchlist(ctx context.Context, req *request.WatchlistRequest) (*response.InsertResponse, error) {
	req.UserEmail = strings.TrimSpace(req.UserEmail)
	req.MovieID = strings.TrimSpace(req.MovieID)

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add to watchlist validation failed", zap.Any("errors", errs))
		return nil, validationError("Validation failed", errs)
	}

	exists, err := s.repo.Watchlist.Exists(ctx, req.UserEmail, req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("check watchlist: %w", err)
	}
	if exists {
		s.log.Info("Duplicate watchlist entry rejected",
			zap.String("user_email", req.UserEmail),
			zap.String("movie_id", req.MovieID),
		)
		return nil, conflictError("Movie already in watchlist")
	}

	movie, err := s.repo.Movie.FindByID(ctx, req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("find movie for watchlist: %w", err)
	}
	if movie == nil {
		return nil, notFoundError("Movie not found")
	}

	entry := &entity.WatchlistEntry{
		UserEmail: req.UserEmail,
		MovieID:   req.MovieID,
		Movie:     movie.WithoutID(),
		AddedAt:   s.now(),
	}

	insertedID, err := s.repo.Watchlist.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("add to watchlist: %w", err)
	}

	s.log.Info("Watchlist entry added",
		zap.Any("entry_id", insertedID),
		zap.String("user_email", req.UserEmail),
		zap.String("movie_id", req.MovieID),
	)

	return response.NewInsertResponse(insertedID), nil
}

func (s *watchlistService) GetWatchlist(ctx context.Context, email string) ([]entity.Document, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, validationError("Email is required", map[string]string{"email": "This field is required"})
	}

	entries, err := s.repo.Watchlist.FindByUser(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get watchlist: %w", err)
	}

	return entries, nil
}

func (s *watchlistService) RemoveFromWatchlist(ctx context.Context, entryID, email string) error {
	deleted, err := s.repo.Watchlist.Delete(ctx, entryID, strings.TrimSpace(email))
	if err != nil {
		return fmt.Errorf("remove from watchlist: %w", err)
	}
	if !deleted {
		return notFoundError("Watchlist item not found")
	}

	s.log.Info("Watchlist entry removed",
		zap.String("entry_id", entryID),
		zap.String("user_email", email),
	)

	return nil
}
