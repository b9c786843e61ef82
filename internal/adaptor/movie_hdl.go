package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-master/internal/data/entity"
	"movie-master/internal/dto/request"
	"movie-master/internal/dto/response"
	"movie-master/internal/usecase"
	"movie-master/pkg/utils"

	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /movies and GET /movies/filter
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	query, errs := request.ParseMovieQuery(r.URL.Query())
	if len(errs) > 0 {
		utils.ResponseBadRequest(w, "Invalid query parameters", errs)
		return
	}

	movies, err := h.service.GetMovies(r.Context(), query)
	if err != nil {
		handleServiceError(w, h.log, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, movies)
}

// GetMoviesByOwner handles GET /movies/user/{email}
func (h *MovieHandler) GetMoviesByOwner(w http.ResponseWriter, r *http.Request) {
	h.listByOwner(w, r, pathParam(r, "email"))
}

// GetMyCollection handles GET /my-collection?email=
func (h *MovieHandler) GetMyCollection(w http.ResponseWriter, r *http.Request) {
	h.listByOwner(w, r, r.URL.Query().Get("email"))
}

func (h *MovieHandler) listByOwner(w http.ResponseWriter, r *http.Request, email string) {
	movies, err := h.service.GetMoviesByOwner(r.Context(), email)
	if err != nil {
		handleServiceError(w, h.log, err, "get movies by owner")
		return
	}

	utils.ResponseSuccess(w, movies)
}

// GetMovieByID handles GET /movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.GetMovieByID(r.Context(), pathParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, movie)
}

// CreateMovie handles POST /movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	body, ok := h.decodeBody(w, r)
	if !ok {
		return
	}

	result, err := h.service.CreateMovie(r.Context(), body)
	if err != nil {
		handleServiceError(w, h.log, err, "create movie")
		return
	}

	utils.ResponseSuccess(w, result)
}

// UpdateMovie handles PUT /movies/{id}
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	body, ok := h.decodeBody(w, r)
	if !ok {
		return
	}

	result, err := h.service.UpdateMovie(r.Context(), pathParam(r, "id"), body)
	if err != nil {
		handleServiceError(w, h.log, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, result)
}

// DeleteMovie handles DELETE /movies/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteMovie(r.Context(), pathParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, response.NewSuccessResponse(""))
}

// decodeBody reads a JSON object body; anything else is a 400.
func (h *MovieHandler) decodeBody(w http.ResponseWriter, r *http.Request) (entity.Document, bool) {
	var body entity.Document
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body == nil {
		h.log.Warn("Invalid movie body", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return nil, false
	}
	return body, true
}
