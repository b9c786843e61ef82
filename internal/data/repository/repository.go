package repository

import (
	"movie-master/pkg/database"

	"go.uber.org/zap"
)

const (
	MoviesCollection    = "movies"
	WatchlistCollection = "watchlist"
)

type Repository struct {
	Movie     MovieRepository
	Watchlist WatchlistRepository
}

func NewRepository(db database.MongoIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie:     NewMovieRepository(db.Collection(MoviesCollection), log),
		Watchlist: NewWatchlistRepository(db.Collection(WatchlistCollection), log),
	}
}
