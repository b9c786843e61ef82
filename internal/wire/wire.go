// internal/wire/wire.go
package wire

import (
	"net/http"

	"movie-master/internal/adaptor"
	"movie-master/internal/data/cache"
	"movie-master/internal/data/repository"
	"movie-master/internal/usecase"
	"movie-master/pkg/database"
	"movie-master/pkg/middleware"
	"movie-master/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the assembled HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router from already opened resources
func Wiring(
	repo *repository.Repository,
	movieCache cache.MovieCache,
	db database.Pinger,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, movieCache, logger)
	handler := adaptor.NewHandler(service, db, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseMethodNotAllowed(w, "Method not allowed")
	})

	r.Get("/", handler.Root.Index)
	r.Get("/health", handler.Root.Health)

	wireMovie(r, handler.Movie)
	wireWatchlist(r, handler.Watchlist)

	return r
}
