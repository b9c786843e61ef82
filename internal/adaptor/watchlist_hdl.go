package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-master/internal/dto/request"
	"movie-master/internal/dto/response"
	"movie-master/internal/usecase"
	"movie-master/pkg/utils"

	"go.uber.org/zap"
)

type WatchlistHandler struct {
	service usecase.WatchlistService
	log     *zap.Logger
}

func NewWatchlistHandler(service usecase.WatchlistService, log *zap.Logger) *WatchlistHandler {
	return &WatchlistHandler{
		service: service,
		log:     log.With(zap.String("handler", "watchlist")),
	}
}

// AddToWatchlist handles POST /watchlist
func (h *WatchlistHandler) AddToWatchlist(w http.ResponseWriter, r *http.Request) {
	var req request.WatchlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("Invalid watchlist body", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.AddToWatchlist(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add to watchlist")
		return
	}

	utils.ResponseSuccess(w, result)
}

// GetWatchlist handles GET /watchlist?email=
func (h *WatchlistHandler) GetWatchlist(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, r.URL.Query().Get("email"))
}

// GetUserWatchlist handles GET /watchlist/{email}
func (h *WatchlistHandler) GetUserWatchlist(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, pathParam(r, "key"))
}

func (h *WatchlistHandler) list(w http.ResponseWriter, r *http.Request, email string) {
	entries, err := h.service.GetWatchlist(r.Context(), email)
	if err != nil {
		handleServiceError(w, h.log, err, "get watchlist")
		return
	}

	utils.ResponseSuccess(w, entries)
}

// RemoveUserEntry handles DELETE /watchlist/{email}/{id}
func (h *WatchlistHandler) RemoveUserEntry(w http.ResponseWriter, r *http.Request) {
	email := pathParam(r, "key")
	if email == "" {
		utils.ResponseBadRequest(w, "Email is required", nil)
		return
	}
	h.remove(w, r, pathParam(r, "id"), email)
}

// RemoveEntry handles DELETE /watchlist/{id}
func (h *WatchlistHandler) RemoveEntry(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, pathParam(r, "key"), "")
}

func (h *WatchlistHandler) remove(w http.ResponseWriter, r *http.Request, entryID, email string) {
	if err := h.service.RemoveFromWatchlist(r.Context(), entryID, email); err != nil {
		handleServiceError(w, h.log, err, "remove from watchlist")
		return
	}

	utils.ResponseSuccess(w, response.NewSuccessResponse(""))
}
