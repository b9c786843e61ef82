package wire

import (
	"movie-master/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Route("/movies", func(r chi.Router) {
		r.Get("/", movieHandler.GetMovies)   // GET /movies?search=&genre=&genres=&minRating=&maxRating=&language=&country=&sort=
		r.Post("/", movieHandler.CreateMovie) // POST /movies

		// static segments win over {id}
		r.Get("/filter", movieHandler.GetMovies)              // GET /movies/filter
		r.Get("/user/{email}", movieHandler.GetMoviesByOwner) // GET /movies/user/{email}

		r.Get("/{id}", movieHandler.GetMovieByID)
		r.Put("/{id}", movieHandler.UpdateMovie)
		r.Delete("/{id}", movieHandler.DeleteMovie)
	})

	// GET /my-collection?email= - same listing as /movies/user/{email}
	r.Get("/my-collection", movieHandler.GetMyCollection)
}
