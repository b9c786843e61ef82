package adaptor

import (
	"errors"
	"net/http"
	"net/url"

	"movie-master/internal/usecase"
	"movie-master/pkg/database"
	"movie-master/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Root      *RootHandler
	Movie     *MovieHandler
	Watchlist *WatchlistHandler
}

func NewHandler(service *usecase.Service, db database.Pinger, log *zap.Logger) *Handler {
	return &Handler{
		Root:      NewRootHandler(db, log),
		Movie:     NewMovieHandler(service.Movie, log),
		Watchlist: NewWatchlistHandler(service.Watchlist, log),
	}
}

// handleServiceError is the single place service errors become HTTP answers.
// Internal details are logged, never sent to the client.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var serviceErr *usecase.ServiceError
	message := ""
	var fields map[string]string
	if errors.As(err, &serviceErr) {
		message = serviceErr.Message
		fields = serviceErr.Fields
	}

	switch {
	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, message)

	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		if len(fields) == 0 {
			utils.ResponseBadRequest(w, message, nil)
			return
		}
		utils.ResponseBadRequest(w, message, fields)

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - already exists",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, message)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// pathParam returns a decoded route parameter. chi routes on RawPath when the
// request has one, so the value is still escaped (e.g. "%40" in an email);
// otherwise it was decoded once already and must not be decoded again.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return raw
	}
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
