package usecase

import (
	"movie-master/internal/data/cache"
	"movie-master/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Movie     MovieService
	Watchlist WatchlistService
}

func NewService(repo *repository.Repository, movieCache cache.MovieCache, log *zap.Logger) *Service {
	return &Service{
		Movie:     NewMovieService(repo, movieCache, log),
		Watchlist: NewWatchlistService(repo, log),
	}
}
