package wire

import (
	"movie-master/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireWatchlist(r chi.Router, watchlistHandler *adaptor.WatchlistHandler) {
	r.Route("/watchlist", func(r chi.Router) {
		r.Post("/", watchlistHandler.AddToWatchlist) // POST /watchlist {userEmail, movieId}
		r.Get("/", watchlistHandler.GetWatchlist)    // GET /watchlist?email=

		// chi keeps one param name per segment: {key} is the owner email for
		// GET and the entry id for the single-segment DELETE
		r.Get("/{key}", watchlistHandler.GetUserWatchlist)
		r.Delete("/{key}", watchlistHandler.RemoveEntry)
		r.Delete("/{key}/{id}", watchlistHandler.RemoveUserEntry)
	})
}
